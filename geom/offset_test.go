package geom

import "testing"

func TestOffsetSquareGrows(t *testing.T) {
	a := PolygonSet{square(0, 0, 100, 100)}

	grown, err := Offset(a, 10, DefaultArcTolerance, Closed)
	if err != nil {
		t.Fatalf("Offset failed: %v", err)
	}
	if len(grown) != 1 {
		t.Fatalf("expected one ring, got %d", len(grown))
	}
	area := abs64(SignedArea(grown[0]))
	if area <= 100*100*2 {
		t.Fatalf("grown area %d should exceed original doubled area %d", area, 100*100*2)
	}
}

func TestOffsetSquareShrinks(t *testing.T) {
	a := PolygonSet{square(0, 0, 100, 100)}

	shrunk, err := Offset(a, -10, DefaultArcTolerance, Closed)
	if err != nil {
		t.Fatalf("Offset failed: %v", err)
	}
	if len(shrunk) != 1 {
		t.Fatalf("expected one ring, got %d", len(shrunk))
	}
	area := abs64(SignedArea(shrunk[0]))
	if area >= 100*100*2 {
		t.Fatalf("shrunk area %d should be below original doubled area %d", area, 100*100*2)
	}
}

func TestOffsetThenUnoffsetApproximatelyRecoversArea(t *testing.T) {
	a := PolygonSet{square(0, 0, 1000, 1000)}

	out, err := Offset(a, 50, DefaultArcTolerance, Closed)
	if err != nil {
		t.Fatalf("Offset out: %v", err)
	}
	back, err := Offset(out, -50, DefaultArcTolerance, Closed)
	if err != nil {
		t.Fatalf("Offset back: %v", err)
	}
	if len(back) != 1 {
		t.Fatalf("expected one ring, got %d", len(back))
	}

	original := abs64(SignedArea(a[0]))
	roundTrip := abs64(SignedArea(back[0]))
	diff := original - roundTrip
	if diff < 0 {
		diff = -diff
	}
	// Corner arc linearization means this is approximate, not exact;
	// allow a tolerance proportional to the perimeter.
	if diff > original/20 {
		t.Fatalf("round-trip area %d too far from original %d (diff %d)", roundTrip, original, diff)
	}
}

func TestOffsetMonotonic(t *testing.T) {
	a := PolygonSet{square(0, 0, 100, 100)}

	small, err := Offset(a, 5, DefaultArcTolerance, Closed)
	if err != nil {
		t.Fatalf("Offset small: %v", err)
	}
	large, err := Offset(a, 20, DefaultArcTolerance, Closed)
	if err != nil {
		t.Fatalf("Offset large: %v", err)
	}
	if abs64(SignedArea(large[0])) <= abs64(SignedArea(small[0])) {
		t.Fatalf("larger offset amount should produce larger area")
	}
}
