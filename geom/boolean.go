package geom

// This file implements the Boolean engine pipeline of spec.md §4.5:
// decompose -> tag -> intersectAllEdges -> SortEdges -> Scan (with
// ExcludeOppositeEdges, the winding accumulator(s), and CombinePairs) ->
// ring reassembly by walking Edge.Next. Grounded on port/clipper.go's
// public surface (Union64/Intersect64/Difference64/BooleanOp64 naming and
// the single-call-site convenience wrappers) while the internal mechanics
// follow FlexScan.h/spec.md rather than port/vatti_engine.go's Vatti
// active-edge-list sweep, per DESIGN.md.

// BooleanOp computes the Boolean combination of two polygon sets under
// the positive-winding rule (spec.md §4.5). ClipOp selects the condition applied to
// each edge's two-operand winding transition.
func BooleanOp(op ClipOp, a, b PolygonSet) (PolygonSet, error) {
	opID := newOperationID()
	var compare func(w1, w2 int) bool
	switch op {
	case Union:
		compare = UnionCondition
	case Intersect:
		compare = IntersectCondition
	case Difference:
		compare = DifferenceCondition
	default:
		return nil, ErrInvalidClipOp
	}

	edges := make([]Edge, 0, pathsEdgeCount(a)+pathsEdgeCount(b))
	edges = InsertPolygonSet(edges, a, 0)
	edges = InsertPolygonSet(edges, b, 1)

	edges, err := intersectAllEdges(edges)
	if err != nil {
		return nil, err
	}
	SortEdges(edges)

	selectSet := func(setID int) func(*Edge) bool {
		return func(e *Edge) bool { return e.SetID == setID }
	}
	condition := TwoOperandCondition(compare)

	Scan(edges,
		ExcludeOppositeEdges,
		AccumulateWindingNumber(selectSet(0)),
		AccumulateWindingNumber2(selectSet(1)),
		CombinePairs(condition, linkPair),
	)

	debugLogOperation("BooleanOp reassembly", opID)
	return reassembleRings(edges)
}

// Union64 combines a and b under UNION. Named to echo
// port/clipper.go's Union64/Intersect64/Difference64 family.
func Union64(a, b PolygonSet) (PolygonSet, error) { return BooleanOp(Union, a, b) }

// Intersect64 combines a and b under INTERSECT.
func Intersect64(a, b PolygonSet) (PolygonSet, error) { return BooleanOp(Intersect, a, b) }

// Difference64 combines a and b under DIFFERENCE.
func Difference64(a, b PolygonSet) (PolygonSet, error) { return BooleanOp(Difference, a, b) }

// Clean normalizes a single polygon set: self-intersections are split and
// resolved under the positive-winding rule, duplicate/opposite edges cancel, and the
// result is reassembled into simple rings (spec.md §4.5 "Clean", the
// single-operand instantiation of the same pipeline).
func Clean(a PolygonSet) (PolygonSet, error) {
	opID := newOperationID()
	edges := make([]Edge, 0, pathsEdgeCount(a))
	edges = InsertPolygonSet(edges, a, 0)

	edges, err := intersectAllEdges(edges)
	if err != nil {
		return nil, err
	}
	SortEdges(edges)

	Scan(edges,
		ExcludeOppositeEdges,
		AccumulateWindingNumber(func(e *Edge) bool { return true }),
		CombinePairs(PositiveWinding, linkPair),
	)

	debugLogOperation("Clean reassembly", opID)
	return reassembleRings(edges)
}

func linkPair(in, out *Edge) {
	in.Next = out
	out.Prev = in
}

func pathsEdgeCount(ps PolygonSet) int {
	n := 0
	for _, p := range ps {
		n += len(p)
	}
	return n
}

// reassembleRings walks the Next chains CombinePairs produced and emits
// one closed Path per cycle (spec.md §4.5 step 5). Every edge reached by a
// chain must eventually return to its own start; a chain that runs off the
// end of the edge slice without closing signals inconsistent pairing
// (ErrPathReconstructionFailed).
func reassembleRings(edges []Edge) (PolygonSet, error) {
	visited := make(map[*Edge]bool, len(edges))
	var result PolygonSet

	for i := range edges {
		start := &edges[i]
		if start.Next == nil || visited[start] {
			continue
		}
		var ring Path
		cur := start
		steps := 0
		for {
			if visited[cur] {
				if cur == start {
					break
				}
				return nil, ErrPathReconstructionFailed
			}
			visited[cur] = true
			ring = append(ring, cur.TrueStart())
			cur = cur.Next
			steps++
			if cur == nil || steps > len(edges)+1 {
				return nil, ErrPathReconstructionFailed
			}
		}
		if len(ring) >= 3 {
			result = append(result, ring)
		}
	}
	return result, nil
}
