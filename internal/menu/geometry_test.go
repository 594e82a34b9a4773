package menu

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 1, W: 3, H: 2}
	if !r.Contains(CellPoint(2, 1)) || !r.Contains(CellPoint(4, 2)) {
		t.Fatalf("expected corner cells inside")
	}
	if r.Contains(CellPoint(5, 1)) || r.Contains(CellPoint(2, 3)) {
		t.Fatalf("expected cells past the edge outside")
	}
	if (Rect{}).Contains(Point{}) {
		t.Fatalf("expected empty rect to contain nothing")
	}
}

func TestPolygonContains(t *testing.T) {
	tri := Polygon{{0, 0}, {10, 0}, {0, 10}}
	if !tri.Contains(Point{X: 1, Y: 1}) {
		t.Fatalf("expected interior point inside")
	}
	if !tri.Contains(Point{X: 5, Y: 0}) {
		t.Fatalf("expected edge point inside")
	}
	if tri.Contains(Point{X: 6, Y: 6}) {
		t.Fatalf("expected point past the hypotenuse outside")
	}
}

func TestSafeRegionTowardsRightPopover(t *testing.T) {
	trigger := Rect{X: 0, Y: 5, W: 10, H: 1}
	popover := Rect{X: 12, Y: 3, W: 10, H: 8}
	exit := Point{X: 10.5, Y: 5.5}
	region := newSafeRegion(exit, trigger, popover)
	if !region.Contains(Point{X: 11.5, Y: 7}) {
		t.Fatalf("expected diagonal path towards the popover inside")
	}
	if !region.Contains(Point{X: 11, Y: 5.5}) {
		t.Fatalf("expected gap between trigger and popover inside")
	}
	if region.Contains(Point{X: 10.5, Y: 9.5}) {
		t.Fatalf("expected steep downward move outside")
	}
}

func TestSafeRegionTowardsLeftPopover(t *testing.T) {
	trigger := Rect{X: 20, Y: 5, W: 10, H: 1}
	popover := Rect{X: 5, Y: 2, W: 10, H: 8}
	region := newSafeRegion(Point{X: 19.5, Y: 5.5}, trigger, popover)
	if !region.Contains(Point{X: 16, Y: 4}) {
		t.Fatalf("expected point towards the popover inside")
	}
	if region.Contains(Point{X: 21, Y: 5.5}) {
		t.Fatalf("expected point behind the apex outside")
	}
}

func TestExitsAway(t *testing.T) {
	trigger := Rect{X: 2, Y: 5, W: 10, H: 1}
	popover := Rect{X: 13, Y: 4, W: 10, H: 5}
	if !exitsAway(Point{X: 1.5, Y: 5.5}, trigger, popover) {
		t.Fatalf("expected leaving left to count as away")
	}
	if exitsAway(Point{X: 12.5, Y: 5.5}, trigger, popover) {
		t.Fatalf("expected leaving right to head towards the popover")
	}
}

func TestPlacementString(t *testing.T) {
	if BottomStart.String() != "bottom-start" || RightStart.String() != "right-start" {
		t.Fatalf("unexpected placement names")
	}
}
