package vcarve

import "github.com/tbfleming/jscut/geom"

// ClipToInterior drops every skeleton edge that does not lie inside the
// outline it was derived from (spec.md §4.7 Step 2: "compute, for each
// Voronoi edge, whether it lies inside G; drop those that don't").
// Membership is tested at each edge's midpoint via geom.Inside, which is
// the same positive-winding membership test the scanline's
// AccumulateWindingNumber callback establishes (spec.md GLOSSARY
// "Winding number"); a dedicated scanline pass over every skeleton edge
// individually would cost an O(n log n) sort per edge for no benefit
// here, since skeleton edges are few relative to boundary segments.
func ClipToInterior(outline geom.PolygonSet, edges []SkelEdge) []SkelEdge {
	kept := make([]SkelEdge, 0, len(edges))
	for _, e := range edges {
		mid := geom.Point{
			X: (e.P0.X + e.P1.X) / 2,
			Y: (e.P0.Y + e.P1.Y) / 2,
		}
		if geom.Inside(outline, mid) {
			kept = append(kept, e)
		}
	}
	return kept
}
