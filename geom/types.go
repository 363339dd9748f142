// Package geom implements the scanline-driven polygon algebra engine:
// exact primitives, the Edge model, the scanline driver and its callbacks,
// the Boolean engine, and the offsetter. Coordinates are 32-bit signed
// integers; arithmetic that can overflow uses 64/128-bit accumulators.
package geom

import "fmt"

// Point is an integer 2D coordinate with an optional Z, used only by the
// V-carve planner. Equality ignores Z except where explicitly stated.
type Point struct {
	X, Y, Z int32
}

// Eq2D reports whether two points have the same X and Y, ignoring Z.
func (p Point) Eq2D(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

// Path is an ordered sequence of points forming a closed ring (last vertex's
// closing segment implicit) or, in V-carve output, an open polyline.
type Path []Point

// PolygonSet is an ordered sequence of polygons. A point is "inside" the set
// when its winding number at that point is positive (spec.md §3).
type PolygonSet []Path

// PathXYZ is an open toolpath with per-vertex Z, as produced by the V-carve
// planner.
type PathXYZ = Path

// ClipOp names a Boolean combination (spec.md §6).
type ClipOp uint8

const (
	Union ClipOp = iota
	Intersect
	Difference
)

func (op ClipOp) String() string {
	switch op {
	case Union:
		return "UNION"
	case Intersect:
		return "INTERSECT"
	case Difference:
		return "DIFFERENCE"
	default:
		return fmt.Sprintf("ClipOp(%d)", uint8(op))
	}
}

// OffsetKind names how open/closed treatment is applied during offsetting
// (spec.md §6).
type OffsetKind uint8

const (
	Closed OffsetKind = iota
	Open
	OpenRight
)

// Numeric conventions (spec.md §6).
const (
	// UnitsPerInch: one inch is 100000 coordinate units.
	UnitsPerInch = 100000
	// DefaultArcTolerance is the default arc-approximation error budget,
	// 1 unit / 10000 inch.
	DefaultArcTolerance = float64(UnitsPerInch) / 10000
	// SpiralArcTolerance is the coarser tolerance used for spiral seeding
	// in the pocket planner, 1 unit / 1000 inch.
	SpiralArcTolerance = float64(UnitsPerInch) / 1000
	// CleanPolyDistance is the snapping tolerance for near-duplicate
	// vertices before scanline insertion (ported from jscut's
	// cleanPolyDist = inchToClipperScale / 100000).
	CleanPolyDistance = float64(UnitsPerInch) / 100000
)

// SignedArea returns twice the signed area of path under the shoelace
// formula (ManhattanArea accumulator, spec.md §3): positive for
// counter-clockwise winding. Uses a 64-bit accumulator since 32-bit
// coordinates squared can overflow a 32-bit product.
func SignedArea(path Path) int64 {
	n := len(path)
	if n < 3 {
		return 0
	}
	var area int64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += int64(path[i].X)*int64(path[j].Y) - int64(path[j].X)*int64(path[i].Y)
	}
	return area
}

// Area returns the signed area (not doubled) of path as a float64.
func Area(path Path) float64 {
	return float64(SignedArea(path)) / 2
}
