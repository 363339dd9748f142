package vcarve

import (
	"math"

	"github.com/tbfleming/jscut/geom"
)

// travelSegment is a mutable, orientable copy of a SkelEdge used while
// building travel order (spec.md §4.7 Step 3).
type travelSegment struct {
	SkelEdge
	taken bool
}

func isSurfaceLevel(z float64) bool { return z == 0 }

func sqDist(ax, ay, bx, by float64) float64 {
	dx, dy := ax-bx, ay-by
	return dx*dx + dy*dy
}

// OrderTravel greedily threads the clipped skeleton edges into one or
// more continuous travel paths (spec.md §4.7 Step 3). It implements the
// same rank/tie-break rule spec.md specifies; it omits the sorted-
// endpoint-index early-exit (`|Δx| > bestDistSoFar`) the original uses
// purely as a search-pruning optimization over a linear scan of the
// (small, per-pocket) candidate set — behaviorally identical, just O(n)
// per step instead of index-bounded.
func OrderTravel(edges []SkelEdge) []TravelPath {
	segs := make([]travelSegment, len(edges))
	for i, e := range edges {
		segs[i] = travelSegment{SkelEdge: e}
	}

	var paths []TravelPath
	remaining := len(segs)

	for remaining > 0 {
		// Start a new path: prefer a surface-level (z==0) endpoint among
		// untaken segments; otherwise take the first untaken segment's
		// first endpoint.
		startIdx, startAtP1 := -1, false
		for i := range segs {
			if segs[i].taken {
				continue
			}
			if startIdx < 0 {
				startIdx, startAtP1 = i, false
			}
			if isSurfaceLevel(segs[i].Z0) {
				startIdx, startAtP1 = i, false
				break
			}
			if isSurfaceLevel(segs[i].Z1) {
				startIdx, startAtP1 = i, true
				break
			}
		}

		s := &segs[startIdx]
		s.taken = true
		remaining--
		var path TravelPath
		var curX, curY float64
		var curZ float64
		if !startAtP1 {
			path = append(path, TravelPoint{Point: s.P0, Z: s.Z0}, TravelPoint{Point: s.P1, Z: s.Z1})
			curX, curY, curZ = float64(s.P1.X), float64(s.P1.Y), s.Z1
		} else {
			path = append(path, TravelPoint{Point: s.P1, Z: s.Z1}, TravelPoint{Point: s.P0, Z: s.Z0})
			curX, curY, curZ = float64(s.P0.X), float64(s.P0.Y), s.Z0
		}

		for {
			bestIdx := -1
			bestAtP1 := false
			bestRank := -1
			var bestNearAbsZ, bestFarAbsZ, bestDist float64

			for i := range segs {
				if segs[i].taken {
					continue
				}
				consider := func(atP1 bool) {
					var nearX, nearY, nearZ, farX, farY, farZ float64
					if !atP1 {
						nearX, nearY, nearZ = float64(segs[i].P0.X), float64(segs[i].P0.Y), segs[i].Z0
						farX, farY, farZ = float64(segs[i].P1.X), float64(segs[i].P1.Y), segs[i].Z1
					} else {
						nearX, nearY, nearZ = float64(segs[i].P1.X), float64(segs[i].P1.Y), segs[i].Z1
						farX, farY, farZ = float64(segs[i].P0.X), float64(segs[i].P0.Y), segs[i].Z0
					}

					shares := nearX == curX && nearY == curY
					rank := 0
					if shares {
						switch {
						case isSurfaceLevel(farZ):
							rank = 3
						case isSurfaceLevel(nearZ):
							rank = 2
						default:
							rank = 1
						}
					}
					d := sqDist(curX, curY, nearX, nearY)
					better := rank > bestRank
					if rank == bestRank && bestIdx >= 0 {
						na, fa := math.Abs(nearZ), math.Abs(farZ)
						if na < bestNearAbsZ ||
							(na == bestNearAbsZ && fa < bestFarAbsZ) ||
							(na == bestNearAbsZ && fa == bestFarAbsZ && d < bestDist) {
							better = true
						} else {
							better = false
						}
					}
					if better {
						bestIdx, bestAtP1, bestRank = i, atP1, rank
						bestNearAbsZ, bestFarAbsZ, bestDist = math.Abs(nearZ), math.Abs(farZ), d
					}
				}
				consider(false)
				consider(true)
			}

			if bestIdx < 0 {
				break
			}
			if bestRank == 0 {
				// No untaken segment touches the current position: this
				// travel path is finished.
				break
			}

			b := &segs[bestIdx]
			b.taken = true
			remaining--
			if !bestAtP1 {
				path = append(path, TravelPoint{Point: b.P1, Z: b.Z1})
				curX, curY, curZ = float64(b.P1.X), float64(b.P1.Y), b.Z1
			} else {
				path = append(path, TravelPoint{Point: b.P0, Z: b.Z0})
				curX, curY, curZ = float64(b.P0.X), float64(b.P0.Y), b.Z0
			}
			_ = curZ
		}

		paths = append(paths, path)
	}

	return paths
}

// TravelPoint is one point of an ordered travel path, carrying its lifted
// Z separately from geom.Point.Z since the lift is computed in float64
// (spec.md §4.7 Step 1) and only rounded to the integer grid at emission.
type TravelPoint struct {
	Point geom.Point
	Z     float64
}

// TravelPath is a sequence of TravelPoints forming one continuous cut.
type TravelPath []TravelPoint
