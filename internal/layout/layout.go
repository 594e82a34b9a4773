// Package layout places floating popovers next to their reference rectangle
// inside a bounded terminal area. It offsets along the main axis, flips to
// the opposite side when the preferred side overflows, and then shifts the
// result back inside the bounds.
package layout

import "github.com/atomicstack/cascade-menu/internal/menu"

// Placer implements menu.Positioner.
type Placer struct{}

var _ menu.Positioner = Placer{}

// Position returns where a floating element of the given size goes.
func (p Placer) Position(ref menu.Rect, size menu.Size, placement menu.Placement, offset menu.Offset, bounds menu.Rect) menu.Rect {
	rect, _ := p.Place(ref, size, placement, offset, bounds)
	return rect
}

// Place is Position that also reports the placement finally used.
func (Placer) Place(ref menu.Rect, size menu.Size, placement menu.Placement, offset menu.Offset, bounds menu.Rect) (menu.Rect, menu.Placement) {
	if placement == menu.PlacementAuto {
		placement = menu.BottomStart
	}
	rect := compute(ref, size, placement, offset)
	if !bounds.Empty() {
		if over := overflow(rect, placement, bounds); over > 0 {
			flipped := Flip(placement)
			alt := compute(ref, size, flipped, offset)
			if overflow(alt, flipped, bounds) < over {
				rect, placement = alt, flipped
			}
		}
		rect = shift(rect, bounds)
	}
	return rect, placement
}

// Flip returns the placement on the opposite side of the reference.
func Flip(p menu.Placement) menu.Placement {
	switch p {
	case menu.BottomStart:
		return menu.TopStart
	case menu.BottomEnd:
		return menu.TopEnd
	case menu.TopStart:
		return menu.BottomStart
	case menu.TopEnd:
		return menu.BottomEnd
	case menu.RightStart:
		return menu.LeftStart
	case menu.RightEnd:
		return menu.LeftEnd
	case menu.LeftStart:
		return menu.RightStart
	case menu.LeftEnd:
		return menu.RightEnd
	default:
		return p
	}
}

func compute(ref menu.Rect, size menu.Size, placement menu.Placement, offset menu.Offset) menu.Rect {
	r := menu.Rect{W: size.W, H: size.H}
	switch placement {
	case menu.BottomStart, menu.BottomEnd:
		r.Y = ref.Bottom() + offset.Main
	case menu.TopStart, menu.TopEnd:
		r.Y = ref.Y - size.H - offset.Main
	case menu.RightStart, menu.RightEnd:
		r.X = ref.Right() + offset.Main
	case menu.LeftStart, menu.LeftEnd:
		r.X = ref.X - size.W - offset.Main
	}
	switch placement {
	case menu.BottomStart, menu.TopStart:
		r.X = ref.X + offset.Align
	case menu.BottomEnd, menu.TopEnd:
		r.X = ref.Right() - size.W - offset.Align
	case menu.RightStart, menu.LeftStart:
		r.Y = ref.Y + offset.Align
	case menu.RightEnd, menu.LeftEnd:
		r.Y = ref.Bottom() - size.H - offset.Align
	}
	return r
}

// overflow measures how many cells r spills past bounds along the main axis
// of placement.
func overflow(r menu.Rect, placement menu.Placement, bounds menu.Rect) int {
	switch placement {
	case menu.BottomStart, menu.BottomEnd:
		return max(0, r.Bottom()-bounds.Bottom())
	case menu.TopStart, menu.TopEnd:
		return max(0, bounds.Y-r.Y)
	case menu.RightStart, menu.RightEnd:
		return max(0, r.Right()-bounds.Right())
	case menu.LeftStart, menu.LeftEnd:
		return max(0, bounds.X-r.X)
	}
	return 0
}

// shift slides r back inside bounds, keeping the top-left corner visible
// when r is larger than bounds.
func shift(r menu.Rect, bounds menu.Rect) menu.Rect {
	if r.Right() > bounds.Right() {
		r.X = bounds.Right() - r.W
	}
	if r.X < bounds.X {
		r.X = bounds.X
	}
	if r.Bottom() > bounds.Bottom() {
		r.Y = bounds.Bottom() - r.H
	}
	if r.Y < bounds.Y {
		r.Y = bounds.Y
	}
	return r
}
