package geom

import "testing"

func square(x0, y0, x1, y1 int32) Path {
	return Path{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestUnionOverlappingSquares(t *testing.T) {
	a := PolygonSet{square(0, 0, 100, 100)}
	b := PolygonSet{square(50, 50, 150, 150)}

	result, err := Union64(a, b)
	if err != nil {
		t.Fatalf("Union64 failed: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected one merged ring, got %d", len(result))
	}

	area := SignedArea(result[0])
	if area < 0 {
		area = -area
	}
	// SignedArea returns twice the enclosed area.
	want := int64(2 * (100*100 + 100*100 - 50*50))
	if area != want {
		t.Fatalf("merged area = %d, want %d", area, want)
	}
}

func TestIntersectOverlappingSquares(t *testing.T) {
	a := PolygonSet{square(0, 0, 100, 100)}
	b := PolygonSet{square(50, 50, 150, 150)}

	result, err := Intersect64(a, b)
	if err != nil {
		t.Fatalf("Intersect64 failed: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected one overlap ring, got %d", len(result))
	}
	area := SignedArea(result[0])
	if area < 0 {
		area = -area
	}
	// SignedArea returns twice the enclosed area.
	if area != 2*50*50 {
		t.Fatalf("overlap area = %d, want %d", area, 2*50*50)
	}
}

func TestDifferenceDisjointSquaresIsIdentity(t *testing.T) {
	a := PolygonSet{square(0, 0, 100, 100)}
	b := PolygonSet{square(200, 200, 300, 300)}

	result, err := Difference64(a, b)
	if err != nil {
		t.Fatalf("Difference64 failed: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected a untouched, got %d rings", len(result))
	}
}

func TestUnionOppositeWindingSquaresCancels(t *testing.T) {
	// A square and its exact reverse-wound duplicate: spec.md's
	// opposite-edge cancellation scenario (S2).
	fwd := square(0, 0, 100, 100)
	rev := make(Path, len(fwd))
	for i, p := range fwd {
		rev[len(fwd)-1-i] = p
	}

	result, err := Union64(PolygonSet{fwd}, PolygonSet{rev})
	if err != nil {
		t.Fatalf("Union64 failed: %v", err)
	}
	for _, ring := range result {
		if len(ring) > 0 {
			t.Fatalf("expected opposite-wound overlap to cancel, got ring with %d points", len(ring))
		}
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	a := PolygonSet{square(0, 0, 100, 100)}

	once, err := Clean(a)
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	twice, err := Clean(once)
	if err != nil {
		t.Fatalf("Clean (second pass) failed: %v", err)
	}

	area1, area2 := int64(0), int64(0)
	for _, r := range once {
		area1 += SignedArea(r)
	}
	for _, r := range twice {
		area2 += SignedArea(r)
	}
	if area1 != area2 {
		t.Fatalf("Clean not idempotent: area %d then %d", area1, area2)
	}
}

func TestDeMorganUnionViaIntersectAndDifference(t *testing.T) {
	a := PolygonSet{square(0, 0, 100, 100)}
	b := PolygonSet{square(50, 50, 150, 150)}

	union, err := Union64(a, b)
	if err != nil {
		t.Fatalf("Union64: %v", err)
	}
	inter, err := Intersect64(a, b)
	if err != nil {
		t.Fatalf("Intersect64: %v", err)
	}
	aMinusB, err := Difference64(a, b)
	if err != nil {
		t.Fatalf("Difference64 a-b: %v", err)
	}
	bMinusA, err := Difference64(b, a)
	if err != nil {
		t.Fatalf("Difference64 b-a: %v", err)
	}

	var unionArea, sumArea int64
	for _, r := range union {
		unionArea += abs64(SignedArea(r))
	}
	for _, r := range inter {
		sumArea += abs64(SignedArea(r))
	}
	for _, r := range aMinusB {
		sumArea += abs64(SignedArea(r))
	}
	for _, r := range bMinusA {
		sumArea += abs64(SignedArea(r))
	}
	if unionArea != sumArea {
		t.Fatalf("union area %d != (a-b)+(b-a)+(a∩b) area %d", unionArea, sumArea)
	}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
