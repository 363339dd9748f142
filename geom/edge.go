package geom

// Edge is a canonical oriented edge with a winding-delta (spec.md §3).
// After normalization, Point1 is in scan order: x(Point1) < x(Point2), or
// x equal and y(Point1) <= y(Point2).
type Edge struct {
	Point1, Point2 Point
	// DeltaWindingNumber is +1 or -1: the winding delta seen crossing the
	// edge left-to-right (non-vertical) or crossing upward (vertical),
	// per the double-flip convention of spec.md §3.
	DeltaWindingNumber int

	// SetID selects which input set this edge belongs to in a two-operand
	// Boolean (0 or 1). Unused (0) for single-set operations.
	SetID int

	// Next links an edge to its reassembled successor once CombinePairs
	// has paired it (spec.md §4.4, §4.5). Nil until paired.
	Next *Edge
	// Prev is used only by open-polyline reassembly (spec.md §4.8 step d,
	// §9 "Open-polyline reassembly").
	Prev *Edge

	// Swapped records whether normalization exchanged the caller's
	// original (a, b) into (Point1, Point2); the reassembler must emit
	// Point2 for a swapped edge and Point1 otherwise (spec.md §4.5 step 5).
	Swapped bool

	// Aux is a generic auxiliary payload for the "small booleans/ids used
	// by V-carve and tab passes" spec.md §3 anticipates composing onto
	// Edge per algorithm (e.g. the pocket planner's spiral sample index,
	// the tab cutter's original path segment index). Zero-valued and
	// untouched by the core engine.
	Aux int
}

// NewEdge normalizes a raw (a, b) pair into scan order, applying the
// double-flip convention: the delta is negated once if the points are
// swapped into scan order, and negated again if the edge is vertical
// (spec.md §4.2). Zero-length edges (a == b, ignoring Z) return ok=false
// unless keepZeroLength is set.
func NewEdge(a, b Point, setID int, keepZeroLength bool) (e Edge, ok bool) {
	if a.Eq2D(b) && !keepZeroLength {
		return Edge{}, false
	}

	delta := 1
	swapped := false
	if a.X > b.X || (a.X == b.X && a.Y > b.Y) {
		a, b = b, a
		delta = -delta
		swapped = true
	}
	if a.X == b.X {
		delta = -delta
	}

	return Edge{
		Point1:             a,
		Point2:             b,
		DeltaWindingNumber: delta,
		SetID:              setID,
		Swapped:            swapped,
	}, true
}

// IsVertical reports whether the edge's scan-ordered endpoints share an X.
func (e Edge) IsVertical() bool {
	return e.Point1.X == e.Point2.X
}

// TrueStart returns the edge's endpoint in its original input direction,
// undoing the scan-order swap (spec.md §4.5 step 5).
func (e Edge) TrueStart() Point {
	if e.Swapped {
		return e.Point2
	}
	return e.Point1
}

// TrueEnd returns the edge's other endpoint in original input direction.
func (e Edge) TrueEnd() Point {
	if e.Swapped {
		return e.Point1
	}
	return e.Point2
}

// InsertPath decomposes a closed ring (or, if closed is false, an open
// polyline) into canonical edges and appends them to dest. allowZeroLength
// keeps degenerate edges instead of dropping them (spec.md §4.2).
func InsertPath(dest []Edge, path Path, setID int, closed bool, allowZeroLength bool) []Edge {
	n := len(path)
	for i := 0; i < n; i++ {
		var j int
		if i+1 < n {
			j = i + 1
		} else if closed {
			j = 0
		} else {
			break
		}
		if e, ok := NewEdge(path[i], path[j], setID, allowZeroLength); ok {
			dest = append(dest, e)
		}
	}
	return dest
}

// InsertPolygonSet decomposes every polygon in ps into canonical edges.
func InsertPolygonSet(dest []Edge, ps PolygonSet, setID int) []Edge {
	for _, path := range ps {
		dest = InsertPath(dest, path, setID, true, false)
	}
	return dest
}
