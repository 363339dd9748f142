package geom

import "testing"

func TestWindingNumberInsideOutside(t *testing.T) {
	ps := PolygonSet{square(0, 0, 100, 100)}

	if !Inside(ps, Point{X: 50, Y: 50}) {
		t.Fatal("centre point should be inside")
	}
	if Inside(ps, Point{X: 200, Y: 200}) {
		t.Fatal("far point should be outside")
	}
}

func TestWindingNumberHole(t *testing.T) {
	outer := square(0, 0, 100, 100)
	inner := square(25, 25, 75, 75)
	// Reverse the inner ring so it winds opposite to the outer ring,
	// matching spec's "a point is inside when its winding number is
	// positive" convention for holes.
	rev := make(Path, len(inner))
	for i, p := range inner {
		rev[len(inner)-1-i] = p
	}
	ps := PolygonSet{outer, rev}

	if Inside(ps, Point{X: 50, Y: 50}) {
		t.Fatal("point inside the hole should not be inside the set")
	}
	if !Inside(ps, Point{X: 10, Y: 10}) {
		t.Fatal("point in the annulus should be inside the set")
	}
}
