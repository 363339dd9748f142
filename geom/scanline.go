package geom

import "sort"

// ScanlineEdge is a transient projection of an Edge onto the current scan
// x (spec.md §3). Scanline-edge records live only inside one scan; they
// carry the optional accumulator fields as plain struct fields rather than
// the teacher's template-trait mix-ins (spec.md §9 "Trait composition").
type ScanlineEdge struct {
	Edge *Edge

	YIntercept Rational
	AtEndpoint bool
	AtPoint1   bool
	AtPoint2   bool

	// WindingBefore/WindingAfter: the single-operand AccumulateWindingNumber
	// accumulator pair (spec.md §4.4).
	WindingBefore, WindingAfter int
	// WindingBefore2/WindingAfter2: the second, independent accumulator
	// pair used by the two-operand form for Boolean combinations.
	WindingBefore2, WindingAfter2 int

	// Excluded marks the edge as cancelled by ExcludeOppositeEdges for the
	// remainder of this scan.
	Excluded bool
}

// Callback is invoked once per scanline group, in the order supplied to
// Scan (spec.md §4.3 step 4, §9 "Callback chains").
type Callback func(scanX int32, group []ScanlineEdge)

// SortEdges orders edges by ascending x(Point1), the precondition for Scan
// (spec.md §3 "After sort").
func SortEdges(edges []Edge) {
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Point1.X < edges[j].Point1.X
	})
}

// Scan sweeps edges left-to-right in x; at each event it hands a
// contiguous group of co-located edges to every callback in turn
// (spec.md §4.3). edges must already be sorted (SortEdges). Scan assumes
// intersectAllEdges has already been applied so no two edges properly
// cross.
func Scan(edges []Edge, callbacks ...Callback) {
	n := len(edges)
	if n == 0 {
		return
	}

	idx := 0
	scanX := edges[0].Point1.X
	active := make([]ScanlineEdge, 0, n)

	for idx < n || len(active) > 0 {
		for idx < n && edges[idx].Point1.X == scanX {
			active = append(active, ScanlineEdge{Edge: &edges[idx], AtPoint1: true})
			idx++
		}

		for i := range active {
			e := active[i].Edge
			if e.IsVertical() {
				// A vertical edge is active only for the single scanX
				// equal to both its endpoints' x; its yIntercept stands
				// in for the low end of its span so it still sorts
				// deterministically against co-located edges (spec.md §4.4
				// "Vertical" case handles the winding contribution
				// separately from this ordering key).
				active[i].YIntercept = newRational(NewInt128(int64(e.Point1.Y)), 1)
			} else {
				active[i].YIntercept = yAtX(scanX, e.Point1, e.Point2)
			}
			active[i].AtEndpoint = scanX == e.Point1.X || scanX == e.Point2.X
		}

		sort.SliceStable(active, func(i, j int) bool {
			return lessScanlineEdge(active[i], active[j])
		})

		groupStart := 0
		for groupStart < len(active) {
			groupEnd := groupStart + 1
			if active[groupStart].AtEndpoint {
				for groupEnd < len(active) &&
					active[groupEnd].AtEndpoint &&
					active[groupEnd].YIntercept.Equal(active[groupStart].YIntercept) {
					groupEnd++
				}
			}
			for i := groupStart; i < groupEnd; i++ {
				e := active[i].Edge
				if !e.IsVertical() {
					active[i].AtPoint1 = scanX == e.Point1.X
					active[i].AtPoint2 = scanX == e.Point2.X
				} else {
					active[i].AtPoint1 = true
					active[i].AtPoint2 = true
				}
			}
			group := active[groupStart:groupEnd]
			for _, cb := range callbacks {
				cb(scanX, group)
			}
			groupStart = groupEnd
		}

		kept := active[:0]
		for _, se := range active {
			if !se.AtPoint2 {
				kept = append(kept, se)
			}
		}
		active = kept

		nextX := int32(0)
		haveNext := false
		for _, se := range active {
			if !haveNext || se.Edge.Point2.X < nextX {
				nextX = se.Edge.Point2.X
				haveNext = true
			}
		}
		if idx < n && (!haveNext || edges[idx].Point1.X < nextX) {
			nextX = edges[idx].Point1.X
			haveNext = true
		}
		if !haveNext {
			break
		}
		scanX = nextX
	}
}

// lessScanlineEdge orders active edges by (yIntercept asc, atEndpoint asc,
// slope), the compound key of spec.md §3.
func lessScanlineEdge(a, b ScanlineEdge) bool {
	if !a.YIntercept.Equal(b.YIntercept) {
		return a.YIntercept.Less(b.YIntercept)
	}
	if a.AtEndpoint != b.AtEndpoint {
		return !a.AtEndpoint && b.AtEndpoint
	}
	dx1 := int64(a.Edge.Point2.X) - int64(a.Edge.Point1.X)
	dy1 := int64(a.Edge.Point2.Y) - int64(a.Edge.Point1.Y)
	dx2 := int64(b.Edge.Point2.X) - int64(b.Edge.Point1.X)
	dy2 := int64(b.Edge.Point2.Y) - int64(b.Edge.Point1.Y)
	return lessSlope(dx1, dy1, dx2, dy2)
}
