package menu

// Point is a pointer position. Terminal hosts use CellPoint so a pointer sits
// in the middle of its cell.
type Point struct {
	X float64
	Y float64
}

// CellPoint returns the centre of the cell at column x, row y.
func CellPoint(x, y int) Point {
	return Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

// Size is a width and height in cells.
type Size struct {
	W int
	H int
}

// Rect is an axis-aligned rectangle in cells. The zero Rect is empty and
// contains nothing.
type Rect struct {
	X int
	Y int
	W int
	H int
}

func (r Rect) Empty() bool   { return r.W <= 0 || r.H <= 0 }
func (r Rect) Right() int    { return r.X + r.W }
func (r Rect) Bottom() int   { return r.Y + r.H }
func (r Rect) Size() Size    { return Size{W: r.W, H: r.H} }
func (r Rect) Origin() Point { return Point{X: float64(r.X), Y: float64(r.Y)} }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	return p.X >= float64(r.X) && p.X < float64(r.Right()) &&
		p.Y >= float64(r.Y) && p.Y < float64(r.Bottom())
}

// Polygon is a closed convex polygon. Vertices may wind either way.
type Polygon []Point

// Contains reports whether p lies inside or on the edge of the polygon.
func (poly Polygon) Contains(p Point) bool {
	if len(poly) < 3 {
		return false
	}
	var sign float64
	for i := range poly {
		a := poly[i]
		b := poly[(i+1)%len(poly)]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
			continue
		}
		if (cross > 0) != (sign > 0) {
			return false
		}
	}
	return true
}

func rectPolygon(x0, y0, x1, y1 float64) Polygon {
	return Polygon{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

// safeRegion is the grace area a pointer may cross between a sub trigger and
// its open popover without the popover closing.
type safeRegion struct {
	triangle Polygon
	gap      Polygon
}

func (s safeRegion) Contains(p Point) bool {
	return s.triangle.Contains(p) || s.gap.Contains(p)
}

// apexBacktrack pulls the triangle apex one cell away from the popover so a
// pointer drifting off the trigger row still lands inside it.
const apexBacktrack = 1.0

// newSafeRegion builds the triangle from the pointer's exit point to the near
// edge of the popover, plus the gap strip between trigger and popover.
func newSafeRegion(exit Point, trigger, popover Rect) safeRegion {
	var region safeRegion
	if trigger.Empty() || popover.Empty() {
		return region
	}
	px0, py0 := float64(popover.X), float64(popover.Y)
	px1, py1 := float64(popover.Right()), float64(popover.Bottom())
	tx0, ty0 := float64(trigger.X), float64(trigger.Y)
	tx1, ty1 := float64(trigger.Right()), float64(trigger.Bottom())
	switch {
	case popover.X >= trigger.Right()-1:
		apex := Point{X: exit.X - apexBacktrack, Y: exit.Y}
		region.triangle = Polygon{apex, {px0, py0}, {px0, py1}}
		region.gap = rectPolygon(minFloat(tx1, px0), ty0, px0, ty1)
	case popover.Right() <= trigger.X+1:
		apex := Point{X: exit.X + apexBacktrack, Y: exit.Y}
		region.triangle = Polygon{apex, {px1, py0}, {px1, py1}}
		region.gap = rectPolygon(px1, ty0, maxFloat(tx0, px1), ty1)
	case popover.Y >= trigger.Bottom()-1:
		apex := Point{X: exit.X, Y: exit.Y - apexBacktrack}
		region.triangle = Polygon{apex, {px0, py0}, {px1, py0}}
		region.gap = rectPolygon(tx0, minFloat(ty1, py0), tx1, py0)
	case popover.Bottom() <= trigger.Y+1:
		apex := Point{X: exit.X, Y: exit.Y + apexBacktrack}
		region.triangle = Polygon{apex, {px0, py1}, {px1, py1}}
		region.gap = rectPolygon(tx0, py1, tx1, maxFloat(ty0, py1))
	}
	return region
}

// exitsAway reports whether p left the trigger through the side facing away
// from the popover.
func exitsAway(p Point, trigger, popover Rect) bool {
	switch {
	case popover.X >= trigger.Right()-1:
		return p.X < float64(trigger.X)
	case popover.Right() <= trigger.X+1:
		return p.X >= float64(trigger.Right())
	case popover.Y >= trigger.Bottom()-1:
		return p.Y < float64(trigger.Y)
	case popover.Bottom() <= trigger.Y+1:
		return p.Y >= float64(trigger.Bottom())
	}
	return false
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Placement selects where a popover sits relative to its reference.
type Placement int

const (
	PlacementAuto Placement = iota
	BottomStart
	BottomEnd
	TopStart
	TopEnd
	RightStart
	RightEnd
	LeftStart
	LeftEnd
)

func (p Placement) String() string {
	switch p {
	case BottomStart:
		return "bottom-start"
	case BottomEnd:
		return "bottom-end"
	case TopStart:
		return "top-start"
	case TopEnd:
		return "top-end"
	case RightStart:
		return "right-start"
	case RightEnd:
		return "right-end"
	case LeftStart:
		return "left-start"
	case LeftEnd:
		return "left-end"
	default:
		return "auto"
	}
}

// Offset shifts a popover away from its reference (Main) and along the
// reference edge (Align).
type Offset struct {
	Main  int
	Align int
}

// Positioner computes where a floating element goes. Implementations flip and
// shift to stay inside bounds.
type Positioner interface {
	Position(ref Rect, size Size, placement Placement, offset Offset, bounds Rect) Rect
}
