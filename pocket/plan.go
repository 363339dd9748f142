package pocket

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"

	"github.com/tbfleming/jscut/geom"
)

// MaxIterations bounds the candidate-front loop (spec.md §4.8 step 5,
// "stop when no acceptable candidate exists or maximum iterations
// reached"); original_source/cpp/hspocket.cpp's loop has no such bound
// (it printf-traced indefinitely during development), so this is a
// defensive cap appropriate for a library that must always return.
const MaxIterations = 100000

// DefaultMinRadiusFraction is hspocket.cpp's minRadius = cutterDia/8
// smoothing-pass constant (spec.md §4.8 step c names the smoothing pass
// but not this fraction; it is only in the original).
const DefaultMinRadiusFraction = 0.125

// History is an optional, additive diagnostic record of the pocket
// planner's iterations: one node per accepted candidate path, linked to
// the frontier iteration that produced it. Building it costs nothing the
// core algorithm needs — HSPocket works identically whether or not the
// caller asks for it.
type History struct {
	Graph *core.Graph
}

func newHistory() *History {
	return &History{Graph: core.NewGraph(core.WithWeighted(), core.WithDirected(true))}
}

func (h *History) recordSeed(seedID string) {
	_ = h.Graph.AddVertex(seedID)
}

func (h *History) recordCandidate(iteration int, fromID string, area int64) string {
	id := fmt.Sprintf("iter%d", iteration)
	_ = h.Graph.AddVertex(id)
	_, _ = h.Graph.AddEdge(fromID, id, area)
	return id
}

// HSPocket synthesizes a high-speed pocket toolpath over outline
// (spec.md §4.8): a spiral seed trimmed to the cutter-centre-safe region,
// then an iterative frontier-offset loop that clears the interior one
// stepover-and-candidate at a time. history is optional (pass nil to
// skip it).
func HSPocket(outline geom.PolygonSet, cutterDia int32, start geom.Point, spiralR float64, stepover, minProgress int32, history *History) ([]geom.Path, error) {
	arcTol := geom.DefaultArcTolerance

	safeArea, err := geom.Offset(outline, -cutterDia/2, arcTol, geom.Closed)
	if err != nil {
		return nil, err
	}

	spiral := CreateSpiral(stepover, start.X, start.Y, spiralR)
	spiral = TrimSpiral(spiral, safeArea)

	cutterPaths := []geom.Path{spiral}
	cutArea, err := geom.Offset(geom.PolygonSet{spiral}, cutterDia/2, arcTol, geom.Open)
	if err != nil {
		return nil, err
	}

	if history != nil {
		history.recordSeed("seed")
	}
	lastID := "seed"

	currentPos := spiral[len(spiral)-1]
	minRadius := int32(float64(cutterDia) * DefaultMinRadiusFraction)

	for iter := 0; iter < MaxIterations; iter++ {
		front, err := geom.Offset(cutArea, -cutterDia/2+stepover, arcTol, geom.Closed)
		if err != nil {
			return cutterPaths, nil
		}
		back, err := geom.Offset(front, minProgress-stepover, arcTol, geom.Closed)
		if err != nil {
			return cutterPaths, nil
		}

		q, err := geom.Intersect64(front, safeArea)
		if err != nil {
			return cutterPaths, nil
		}
		q, err = geom.Offset(q, -minRadius, arcTol, geom.Closed)
		if err != nil {
			return cutterPaths, nil
		}
		q, err = geom.Offset(q, minRadius, arcTol, geom.Closed)
		if err != nil {
			return cutterPaths, nil
		}
		if len(q) == 0 {
			// NoProgress (spec.md §7): the candidate frontier is empty;
			// terminate cleanly with what has been cut so far.
			break
		}

		// q \ back: the approximation of spec.md §4.8 step d's open-
		// polyline difference — see DESIGN.md for why each resulting
		// ring is treated directly as a candidate path rather than
		// reconstructed through a genuinely open-edge walk.
		candidates, err := geom.Difference64(q, back)
		if err != nil {
			return cutterPaths, nil
		}
		if len(candidates) == 0 {
			break
		}

		best, bestIdx, found := pickNearest(candidates, currentPos)
		accepted := false
		for found {
			reversed := reversePath(best)
			newCutArea, err := geom.Offset(geom.PolygonSet{reversed}, cutterDia/2, arcTol, geom.Closed)
			if err == nil {
				added, err := geom.Difference64(newCutArea, cutArea)
				if err == nil && len(added) > 0 {
					cutterPaths = append(cutterPaths, reversed)
					cutArea, err = geom.Union64(cutArea, newCutArea)
					if err != nil {
						return cutterPaths, nil
					}
					currentPos = reversed[len(reversed)-1]
					if history != nil {
						var area int64
						for _, r := range newCutArea {
							area += geom.SignedArea(r)
						}
						lastID = history.recordCandidate(iter, lastID, area)
					}
					accepted = true
					break
				}
			}
			candidates = append(candidates[:bestIdx], candidates[bestIdx+1:]...)
			best, bestIdx, found = pickNearest(candidates, currentPos)
		}

		if !accepted {
			// NoProgress: no candidate extends the cut area.
			break
		}
	}

	return cutterPaths, nil
}

func reversePath(p geom.Path) geom.Path {
	out := make(geom.Path, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

// pickNearest ranks candidates by planar distance from the candidate's
// tail to the current cutter position (spec.md §4.8 step e) and returns
// the nearest.
func pickNearest(candidates geom.PolygonSet, currentPos geom.Point) (geom.Path, int, bool) {
	bestIdx := -1
	var bestDist int64
	for i, c := range candidates {
		if len(c) == 0 {
			continue
		}
		tail := c[len(c)-1]
		d := geom.DistanceSquared128(tail, currentPos).ToFloat64()
		if bestIdx < 0 || int64(d) < bestDist {
			bestIdx = i
			bestDist = int64(d)
		}
	}
	if bestIdx < 0 {
		return nil, -1, false
	}
	return candidates[bestIdx], bestIdx, true
}
