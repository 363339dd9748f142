package geom

// This file implements the reusable scanline passes of spec.md §4.4:
// AccumulateWindingNumber (with an independent two-operand variant),
// ExcludeOppositeEdges, and CombinePairs. AccumulateWindingNumber and
// ExcludeOppositeEdges are ported near-verbatim from
// original_source/cpp/FlexScan.h's FillCount and ExcludeOppositeEdges
// structs (the one complete reference implementation kept in the pack);
// CombinePairs has no surviving FlexScan.h body to port (the kept excerpt
// is truncated before it) and is built fresh from spec.md §4.4's
// description of the standard Clipper/Vatti vertex-pairing rule, the same
// rule port/vatti_engine.go's addOutputPoint applies.

// AccumulateWindingNumber returns a Callback implementing the single-
// operand accumulator (spec.md §4.4). selectEdge chooses which edges
// contribute their DeltaWindingNumber; edges excluded by
// ExcludeOppositeEdges never contribute regardless of selectEdge.
func AccumulateWindingNumber(selectEdge func(*Edge) bool) Callback {
	current := 0
	return func(scanX int32, group []ScanlineEdge) {
		for i := range group {
			se := &group[i]
			if se.Edge.IsVertical() {
				if se.AtPoint1 {
					se.WindingBefore = current - se.Edge.DeltaWindingNumber
					se.WindingAfter = current
				}
				continue
			}
			se.WindingBefore = current
			if !se.Excluded && selectEdge(se.Edge) {
				current += se.Edge.DeltaWindingNumber
			}
			se.WindingAfter = current
		}
	}
}

// AccumulateWindingNumber2 is the two-operand form: an independent second
// pair of counters (WindingBefore2/WindingAfter2), used together with
// AccumulateWindingNumber in a two-set Boolean so each scanline group
// carries the winding state of both operands (spec.md §4.4, §4.5 step 4).
func AccumulateWindingNumber2(selectEdge func(*Edge) bool) Callback {
	current := 0
	return func(scanX int32, group []ScanlineEdge) {
		for i := range group {
			se := &group[i]
			if se.Edge.IsVertical() {
				if se.AtPoint1 {
					se.WindingBefore2 = current - se.Edge.DeltaWindingNumber
					se.WindingAfter2 = current
				}
				continue
			}
			se.WindingBefore2 = current
			if !se.Excluded && selectEdge(se.Edge) {
				current += se.Edge.DeltaWindingNumber
			}
			se.WindingAfter2 = current
		}
	}
}

// ExcludeOppositeEdges pairs edges with identical geometric image and
// opposite delta within a group, marking both excluded so later passes
// ignore them: two opposite-winding duplicates net to zero (spec.md §4.4).
func ExcludeOppositeEdges(scanX int32, group []ScanlineEdge) {
	for i := range group {
		if group[i].Excluded {
			continue
		}
		for j := i + 1; j < len(group); j++ {
			if group[j].Excluded {
				continue
			}
			ei, ej := group[i].Edge, group[j].Edge
			if ei.DeltaWindingNumber == -ej.DeltaWindingNumber &&
				ei.Point1.Eq2D(ej.Point1) && ei.Point2.Eq2D(ej.Point2) {
				group[i].Excluded = true
				group[j].Excluded = true
				break
			}
		}
	}
}

// PositiveWinding is the single-set CombinePairs condition: an edge is a
// boundary of the filled region when the winding flips between zero and
// one across it (spec.md §4.4).
func PositiveWinding(se *ScanlineEdge) bool {
	return (se.WindingBefore == 0 && se.WindingAfter == 1) ||
		(se.WindingBefore == 1 && se.WindingAfter == 0)
}

// TwoOperandCondition builds a CombinePairs condition from a comparison of
// the two operands' winding states before and after an edge, realizing
// union, intersection, and difference (UnionCondition,
// IntersectCondition, DifferenceCondition) per spec.md §4.4's
// "compareWinding(before1, before2) != compareWinding(after1, after2)"
// rule, where compare tests set-membership (winding > 0) for each
// operand.
func TwoOperandCondition(compare func(w1, w2 int) bool) func(se *ScanlineEdge) bool {
	return func(se *ScanlineEdge) bool {
		before := compare(se.WindingBefore, se.WindingBefore2)
		after := compare(se.WindingAfter, se.WindingAfter2)
		return before != after
	}
}

// UnionCondition realizes UNION: inside a or inside b.
func UnionCondition(w1, w2 int) bool { return w1 > 0 || w2 > 0 }

// IntersectCondition realizes INTERSECT: inside a and inside b.
func IntersectCondition(w1, w2 int) bool { return w1 > 0 && w2 > 0 }

// DifferenceCondition realizes DIFFERENCE: inside a and not inside b.
func DifferenceCondition(w1, w2 int) bool { return w1 > 0 && w2 <= 0 }

// CombinePairs selects, within a group, edges that are endpoint-incident,
// non-trivial, and satisfy condition, then pairs each incoming edge
// (ends at the shared point) with the farthest matching outgoing edge
// (starts at the shared point) in reverse order, calling combine(in, out)
// for each pair — the standard polygon-reassembly rule: at each vertex of
// the output boundary, the edge arriving must pair with the edge
// departing (spec.md §4.4).
func CombinePairs(condition func(se *ScanlineEdge) bool, combine func(in, out *Edge)) Callback {
	return func(scanX int32, group []ScanlineEdge) {
		var incoming, outgoing []*Edge
		for i := range group {
			se := &group[i]
			if se.Excluded || !condition(se) {
				continue
			}
			if se.AtPoint2 {
				incoming = append(incoming, se.Edge)
			}
			if se.AtPoint1 {
				outgoing = append(outgoing, se.Edge)
			}
		}
		n := len(incoming)
		if len(outgoing) < n {
			n = len(outgoing)
		}
		for i := 0; i < n; i++ {
			combine(incoming[i], outgoing[len(outgoing)-1-i])
		}
	}
}
