package ffi

import "testing"

func squareWire(x0, y0, x1, y1 int32) WirePath {
	return WirePath{x0, y0, x1, y0, x1, y1, x0, y1}
}

func TestBooleanCombineUnion(t *testing.T) {
	a := WirePolygonSet{squareWire(0, 0, 100, 100)}
	b := WirePolygonSet{squareWire(50, 50, 150, 150)}

	result := BooleanCombine("UNION", a, b)
	if result.Err != nil {
		t.Fatalf("BooleanCombine failed: %v", result.Err)
	}
	if result.OperationID == "" {
		t.Fatal("expected a non-empty operation id")
	}
	if len(result.Paths) != 1 {
		t.Fatalf("expected one merged path, got %d", len(result.Paths))
	}
}

func TestBooleanCombineInvalidOp(t *testing.T) {
	result := BooleanCombine("XOR", nil, nil)
	if result.Err == nil {
		t.Fatal("expected an error for an unsupported op name")
	}
	if result.Paths != nil {
		t.Fatal("expected nil Paths alongside a non-nil Err")
	}
	if result.OperationID == "" {
		t.Fatal("expected an operation id even on failure")
	}
}

func TestOffsetPolygonsGrows(t *testing.T) {
	a := WirePolygonSet{squareWire(0, 0, 100, 100)}
	result := OffsetPolygons(a, 10, 0, "CLOSED")
	if result.Err != nil {
		t.Fatalf("OffsetPolygons failed: %v", result.Err)
	}
	if len(result.Paths) != 1 {
		t.Fatalf("expected one path, got %d", len(result.Paths))
	}
}

func TestOffsetPolygonsInvalidKind(t *testing.T) {
	a := WirePolygonSet{squareWire(0, 0, 100, 100)}
	result := OffsetPolygons(a, 10, 0, "SIDEWAYS")
	if result.Err == nil {
		t.Fatal("expected an error for an unsupported offset kind")
	}
}

func TestSeparateTabsNoTabsSingleSpan(t *testing.T) {
	path := WirePath{0, 0, 1000, 0}
	result := SeparateTabs(path, nil)
	if result.Err != nil {
		t.Fatalf("SeparateTabs failed: %v", result.Err)
	}
	if len(result.Spans) != 1 {
		t.Fatalf("expected a single span, got %d", len(result.Spans))
	}
	if result.Spans[0].OverTab {
		t.Fatal("expected the single span to not be over a tab")
	}
}

func TestVPocketToolpathSquare(t *testing.T) {
	outline := WirePolygonSet{squareWire(0, 0, 100, 100)}
	result := VPocketToolpath(outline, 90, 10, -1000000)
	if result.Err != nil {
		t.Fatalf("VPocketToolpath failed: %v", result.Err)
	}
	if len(result.Paths) == 0 {
		t.Fatal("expected at least one 3D toolpath")
	}
}

func TestHSPocketToolpathSquare(t *testing.T) {
	outline := WirePolygonSet{squareWire(0, 0, 10000, 10000)}
	result := HSPocketToolpath(outline, 2000, 5000, 5000, 4000, 1000, 200)
	if result.Err != nil {
		t.Fatalf("HSPocketToolpath failed: %v", result.Err)
	}
	if len(result.Paths) == 0 {
		t.Fatal("expected at least one pocket toolpath")
	}
	if result.OperationID == "" {
		t.Fatal("expected a non-empty operation id")
	}
}
