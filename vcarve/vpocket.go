package vcarve

import (
	"math"

	"github.com/tbfleming/jscut/geom"
)

// VPocket runs the full pipeline of spec.md §4.7 over one outline: build
// the medial-axis skeleton, clip it to the outline's interior, order it
// into continuous travel, and split into conical-cutter depth passes.
// cutterAngleDeg is the cutter's full included angle in degrees (spec.md
// §6 "Cutter angle is in degrees in public API, converted to radians
// internally"); passDepth and maxDepth are in the same integer coordinate
// units as the outline (maxDepth ≤ 0).
func VPocket(outline geom.PolygonSet, cutterAngleDeg, passDepth, maxDepth float64) ([]geom.Path, error) {
	halfAngle := cutterAngleDeg * math.Pi / 180

	var allEdges []SkelEdge
	for _, ring := range outline {
		sk, err := BuildSkeleton(ring, halfAngle)
		if err != nil {
			return nil, err
		}
		allEdges = append(allEdges, sk.Edges()...)
	}

	clipped := ClipToInterior(outline, allEdges)
	travels := OrderTravel(clipped)

	var result []geom.Path
	for _, t := range travels {
		result = append(result, SplitDepthPasses(t, passDepth, maxDepth)...)
	}
	return result, nil
}
