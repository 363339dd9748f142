// Package tabs splits an open toolpath into alternating "over-tab" and
// "normal" spans wherever it crosses a tab footprint (spec.md §4.9).
package tabs

import (
	"sort"

	"github.com/tbfleming/jscut/geom"
)

// Span is one contiguous sub-path of the original toolpath, tagged with
// whether it runs over a tab (spec.md §4.9 "alternating categories").
type Span struct {
	Path    geom.Path
	OverTab bool
}

const (
	pathSet = 0
	tabSet  = 1
)

// Separate decomposes path's edges and tabs' edges into a common edge
// list, accumulates winding over the tab set, labels each path edge
// isOverTab = windingBefore>0 && windingAfter>0, then walks path's edges
// in original order, emitting a new span each time isOverTab flips
// (spec.md §4.9). Returns geom.ErrPathReconstructionFailed if the walk
// cannot find a contiguous next edge — the same failure mode spec.md §9
// calls out for the swapped-edge reorientation rule.
func Separate(path geom.Path, tabPolygons geom.PolygonSet) ([]Span, error) {
	if len(path) < 2 {
		return nil, geom.ErrIllegalInput
	}

	var edges []geom.Edge
	for i := 0; i+1 < len(path); i++ {
		e, ok := geom.NewEdge(path[i], path[i+1], pathSet, true)
		if !ok {
			continue
		}
		e.Aux = i
		edges = append(edges, e)
	}
	edges = geom.InsertPolygonSet(edges, tabPolygons, tabSet)

	edges, err := geom.IntersectAll(edges)
	if err != nil {
		return nil, err
	}
	geom.SortEdges(edges)

	isOverTab := make(map[*geom.Edge]bool)
	geom.Scan(edges,
		geom.AccumulateWindingNumber(func(e *geom.Edge) bool { return e.SetID == tabSet }),
		func(scanX int32, group []geom.ScanlineEdge) {
			for i := range group {
				se := &group[i]
				if se.Edge.SetID != pathSet {
					continue
				}
				isOverTab[se.Edge] = se.WindingBefore > 0 && se.WindingAfter > 0
			}
		},
	)

	// Collect the path's fragments, grouped by the original segment index
	// (Aux) they came from, then ordered within each group by distance
	// from that segment's original start — recovering "P's edges in
	// original order" after intersectAll has split them.
	byAux := make(map[int][]*geom.Edge)
	for i := range edges {
		e := &edges[i]
		if e.SetID != pathSet {
			continue
		}
		byAux[e.Aux] = append(byAux[e.Aux], e)
	}

	var ordered []*geom.Edge
	for i := 0; i+1 < len(path); i++ {
		group := byAux[i]
		if len(group) == 0 {
			continue
		}
		origin := path[i]
		sort.Slice(group, func(a, b int) bool {
			return geom.DistanceSquared128(origin, group[a].TrueStart()).Cmp(
				geom.DistanceSquared128(origin, group[b].TrueStart())) < 0
		})
		ordered = append(ordered, group...)
	}
	if len(ordered) == 0 {
		return nil, geom.ErrPathReconstructionFailed
	}

	var spans []Span
	cur := geom.Path{ordered[0].TrueStart()}
	curCategory := isOverTab[ordered[0]]
	for i, e := range ordered {
		if i > 0 && !e.TrueStart().Eq2D(ordered[i-1].TrueEnd()) {
			return nil, geom.ErrPathReconstructionFailed
		}
		if isOverTab[e] != curCategory {
			spans = append(spans, Span{Path: cur, OverTab: curCategory})
			cur = geom.Path{e.TrueStart()}
			curCategory = isOverTab[e]
		}
		cur = append(cur, e.TrueEnd())
	}
	spans = append(spans, Span{Path: cur, OverTab: curCategory})

	return spans, nil
}
