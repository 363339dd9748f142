package vcarve

import (
	"math"
	"testing"

	"github.com/tbfleming/jscut/geom"
)

func TestBuildSkeletonSquareMeetsAtCentroid(t *testing.T) {
	square := geom.Path{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}

	sk, err := BuildSkeleton(square, math.Pi/2)
	if err != nil {
		t.Fatalf("BuildSkeleton failed: %v", err)
	}
	edges := sk.Edges()
	if len(edges) == 0 {
		t.Fatal("expected a non-empty skeleton for a square")
	}

	// At least one skeleton edge should terminate at the square's
	// centroid: a square's medial axis is exactly its two diagonals
	// meeting at the centre (spec.md S5).
	foundCentre := false
	for _, e := range edges {
		if e.P1.X == 50 && e.P1.Y == 50 {
			foundCentre = true
		}
		if e.P0.X == 50 && e.P0.Y == 50 {
			foundCentre = true
		}
	}
	if !foundCentre {
		t.Fatal("expected at least one skeleton edge to reach the square's centroid (50,50)")
	}
}

func TestBuildSkeletonDegenerateOutline(t *testing.T) {
	if _, err := BuildSkeleton(geom.Path{{X: 0, Y: 0}, {X: 1, Y: 1}}, math.Pi/2); err != ErrDegenerateVoronoi {
		t.Fatalf("expected ErrDegenerateVoronoi for a 2-point outline, got %v", err)
	}
}

func TestVPocketSquareProducesCentredDeepestPoint(t *testing.T) {
	outline := geom.PolygonSet{{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}}

	paths, err := VPocket(outline, 90, 10000, -1000000)
	if err != nil {
		t.Fatalf("VPocket failed: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("expected at least one toolpath")
	}

	var deepest geom.Point
	deepestZ := int32(1)
	for _, p := range paths {
		for _, pt := range p {
			if pt.Z < deepestZ {
				deepestZ = pt.Z
				deepest = pt
			}
		}
	}
	if deepestZ >= 0 {
		t.Fatal("expected at least one point cut below the surface")
	}
	if deepest.X != 50 || deepest.Y != 50 {
		t.Fatalf("expected the deepest point at the square's centre (50,50), got (%d,%d)", deepest.X, deepest.Y)
	}
}

// TestVPocketSquareMatchesS5NumericExpectations checks spec.md S5's own
// stated numbers for a 100×100 square at cutter angle α=60°,
// passDepth=10, maxDepth=−100: the medial axis lifts the centre to
// Z = −50/tan(30°), and that span is split into ceil(50·cot(30°)/10)
// depth passes — not just "some negative Z at the centre", as
// TestVPocketSquareProducesCentredDeepestPoint checks above.
func TestVPocketSquareMatchesS5NumericExpectations(t *testing.T) {
	outline := geom.PolygonSet{{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}}

	const alphaDeg = 60.0
	const passDepth = 10.0
	const maxDepth = -100.0

	halfAngleRad := alphaDeg * math.Pi / 180
	wantZFloat := -50 / math.Tan(halfAngleRad/2)
	wantZ := roundCoord(wantZFloat)
	wantPassesPerSpan := int(math.Ceil(-wantZFloat / passDepth))

	paths, err := VPocket(outline, alphaDeg, passDepth, maxDepth)
	if err != nil {
		t.Fatalf("VPocket failed: %v", err)
	}

	var deepest geom.Point
	deepestZ := int32(1)
	for _, p := range paths {
		for _, pt := range p {
			if pt.Z < deepestZ {
				deepestZ = pt.Z
				deepest = pt
			}
		}
	}
	if deepestZ != wantZ {
		t.Fatalf("expected deepest Z = %d (= round(-50/tan(30°))), got %d", wantZ, deepestZ)
	}
	if deepest.X != 50 || deepest.Y != 50 {
		t.Fatalf("expected the deepest point at the square's centre (50,50), got (%d,%d)", deepest.X, deepest.Y)
	}

	// A square's medial axis under this ray-pairing skeleton is four
	// corner-to-centre spokes, which OrderTravel threads into two
	// corner-to-centre-to-corner travel paths; each has one span
	// (the centre point), so the total pass count should be
	// exactly twice the single-span count spec.md S5 implies.
	if len(paths) != 2*wantPassesPerSpan {
		t.Fatalf("expected %d total depth-pass paths (2 spans × %d passes), got %d",
			2*wantPassesPerSpan, wantPassesPerSpan, len(paths))
	}
}
