// Package pocket synthesizes high-speed-machining (HSM) pocket
// toolpaths: an Archimedean spiral seed trimmed to a safe region, then an
// iterative frontier-offset loop that progressively clears the interior
// (spec.md §4.8). Ported from original_source/cpp/hspocket.cpp.
package pocket

import (
	"math"

	"github.com/tbfleming/jscut/geom"
)

// SpiralArcTolerance is the coarser arc-linearization tolerance used only
// for spiral generation (spec.md §6 "spiral arcTolerance is coarser at 1
// unit / 1000 inch").
const SpiralArcTolerance = float64(geom.UnitsPerInch) / 1000

// deltaAngleForError mirrors geom's offset arc-segmentation formula
// (original_source/cpp/offset.h's deltaAngleForError, reused unchanged by
// hspocket.cpp for the spiral).
func deltaAngleForError(arcTolerance, radius float64) float64 {
	if radius <= 0 {
		return math.Pi
	}
	ratio := 1 - arcTolerance/radius
	ratio = math.Min(1, math.Max(-1, ratio))
	return 2 * math.Acos(ratio)
}

// CreateSpiral builds a clockwise Archimedean spiral, centre-line for the
// cutter, starting at (startX, startY) and growing until its radius
// reaches spiralR (original_source/cpp/hspocket.cpp createSpiral).
func CreateSpiral(stepover int32, startX, startY int32, spiralR float64) geom.Path {
	var spiral geom.Path
	angle := 0.0
	for {
		r := angle / math.Pi / 2 * float64(stepover)
		spiral = append(spiral, geom.Point{
			X: startX + roundCoord(r*math.Cos(-angle)),
			Y: startY + roundCoord(r*math.Sin(-angle)),
		})
		step := deltaAngleForError(SpiralArcTolerance, math.Max(r, SpiralArcTolerance))
		angle += step
		if r >= spiralR {
			break
		}
	}
	return spiral
}

// TrimSpiral truncates spiral at the first sample that leaves safeArea,
// detected via a scanline winding pass exactly as
// original_source/cpp/hspocket.cpp's trimSpiral: the spiral is inserted
// as an open polyline alongside safeArea's closed rings, tagging each
// spiral edge with its sample index (geom.Edge.Aux) and each safeArea
// edge's SetID as the geometry marker; the first spiral edge whose
// windingBefore/windingAfter pair shows it outside safeArea (and isn't
// itself a geometry edge) marks the cutoff index.
func TrimSpiral(spiral geom.Path, safeArea geom.PolygonSet) geom.Path {
	const geometrySet = 1
	const spiralSet = 0

	edges := geom.InsertPolygonSet(nil, safeArea, geometrySet)
	spiralStart := len(edges)
	edges = geom.InsertPath(edges, spiral, spiralSet, false, true)
	for i := spiralStart; i < len(edges); i++ {
		edges[i].Aux = i - spiralStart
	}

	edges, err := geom.IntersectAll(edges)
	if err != nil {
		return spiral
	}
	geom.SortEdges(edges)

	endIndex := len(spiral)
	geom.Scan(edges,
		geom.AccumulateWindingNumber(func(e *geom.Edge) bool { return e.SetID == geometrySet }),
		func(scanX int32, group []geom.ScanlineEdge) {
			for i := range group {
				se := &group[i]
				if se.Edge.SetID == geometrySet {
					continue
				}
				insideSafe := se.WindingBefore > 0 && se.WindingAfter > 0
				if !insideSafe && se.Edge.Aux < endIndex {
					endIndex = se.Edge.Aux
				}
			}
		},
	)

	if endIndex >= len(spiral) {
		return spiral
	}
	return spiral[:endIndex]
}

func roundCoord(v float64) int32 {
	if v >= 0 {
		return int32(v + 0.5)
	}
	return int32(v - 0.5)
}
