package geom

import "sort"

// This file implements the ExactLib contract of spec.md §4.1
// (intersectAll, lessSlope, yAtX) in Go. The teacher (go-clipper/clipper2)
// has no equivalent adapter of its own — Clipper2's Vatti engine resolves
// crossings inline — so this is grounded directly on spec.md §4.1 plus
// the exact-cross-product idiom of port/math128.go and port/geometry.go
// (CrossProduct128, IsCollinear), which is the same robustness principle
// spec.md §4.1 calls for.

// Rational is a high-precision rational number (numerator/denominator),
// used for scanline yIntercept values (spec.md §3: "do not reduce through
// floating-point"). Den is always > 0.
type Rational struct {
	Num Int128
	Den int64
}

func newRational(num Int128, den int64) Rational {
	if den < 0 {
		den = -den
		num = num.Negate()
	}
	return Rational{Num: num, Den: den}
}

// Less reports whether a < b, via cross-multiplication (both denominators
// positive, so the comparison direction is preserved).
func (a Rational) Less(b Rational) bool {
	lhs := a.Num.Mul64(b.Den)
	rhs := b.Num.Mul64(a.Den)
	return lhs.Cmp(rhs) < 0
}

// Equal reports whether a == b.
func (a Rational) Equal(b Rational) bool {
	lhs := a.Num.Mul64(b.Den)
	rhs := b.Num.Mul64(a.Den)
	return lhs.Cmp(rhs) == 0
}

// ToFloat64 converts a rational to float64 for callers (e.g. V-carve Z
// lifting) that need a numeric value, not a scanline-order comparison.
func (a Rational) ToFloat64() float64 {
	return a.Num.ToFloat64() / float64(a.Den)
}

// yAtX returns the exact rational y where the line through p1,p2 has
// abscissa x. Undefined (panics) for a vertical edge — callers never
// evaluate yAtX on vertical edges, which instead contribute their winding
// only to the local accumulator per spec.md §4.4.
func yAtX(x int32, p1, p2 Point) Rational {
	dx := int64(p2.X) - int64(p1.X)
	if dx == 0 {
		panic("geom: yAtX called on a vertical edge")
	}
	dy := int64(p2.Y) - int64(p1.Y)
	// y = p1.Y + (x - p1.X) * dy / dx
	num := NewInt128(int64(p1.Y)).Mul64(dx).Add(NewInt128(int64(x) - int64(p1.X)).Mul64(dy))
	return newRational(num, dx)
}

// lessSlope is a strict weak order on directed slopes (dx1,dy1) and
// (dx2,dy2): vectors in the upper half-plane (including the positive X
// axis) sort before those in the lower half-plane, and within a
// half-plane a vector sorts before another when it lies counter-clockwise
// of it. For the scan-ordered edges Scan compares (dx >= 0) this is
// descending slope, from straight up to straight down. Undefined if
// either vector is zero-length (spec.md §4.1).
func lessSlope(dx1, dy1, dx2, dy2 int64) bool {
	h1 := slopeHalfPlane(dx1, dy1)
	h2 := slopeHalfPlane(dx2, dy2)
	if h1 != h2 {
		return h1 < h2
	}
	cross := NewInt128(dx1).Mul64(dy2).Sub(NewInt128(dy1).Mul64(dx2))
	return cross.IsNegative()
}

// slopeHalfPlane classifies a direction vector into the upper half-plane
// (0: dy > 0, or the positive X axis) or the lower half-plane (1: dy < 0,
// or the negative X axis).
func slopeHalfPlane(dx, dy int64) int {
	if dy > 0 || (dy == 0 && dx > 0) {
		return 0
	}
	return 1
}

// intersectionPoint computes, for two segments known to properly cross
// (by an orientation test), the rounded integer crossing point. The
// topological decision of *whether* two segments cross is exact
// (Int128 cross products); only the final emitted coordinate of a new
// vertex is rounded to the integer grid, matching the pervasive lround()
// convention of original_source/cpp (offset.h, hspocket.cpp) — never used
// to decide scanline order or winding.
func intersectionPoint(a1, a2, b1, b2 Point) Point {
	// Line-line intersection via Cramer's rule in float64; safe because
	// the orientation test upstream has already established the lines are
	// not parallel within this segment pair.
	x1, y1 := float64(a1.X), float64(a1.Y)
	x2, y2 := float64(a2.X), float64(a2.Y)
	x3, y3 := float64(b1.X), float64(b1.Y)
	x4, y4 := float64(b2.X), float64(b2.Y)

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return a1
	}
	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	px := x1 + t*(x2-x1)
	py := y1 + t*(y2-y1)
	return Point{X: roundInt32(px), Y: roundInt32(py)}
}

func roundInt32(v float64) int32 {
	if v >= 0 {
		return int32(v + 0.5)
	}
	return int32(v - 0.5)
}

// orientation2D returns the sign of the cross product of (p2-p1) and
// (p3-p1): positive for counter-clockwise, negative for clockwise, zero
// for collinear.
func orientation2D(p1, p2, p3 Point) int {
	return CrossProduct128(p1, p2, p3).Sign()
}

func onSegment(p, a, b Point) bool {
	if orientation2D(a, b, p) != 0 {
		return false
	}
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

// intersectAllEdges implements ExactLib.intersectAll (spec.md §4.1):
// splits every edge at every point where it properly crosses, touches, or
// collinearly overlaps another edge, so that afterward no two edges
// properly cross (spec.md §3 invariant). Each output sub-segment inherits
// the originating edge's fields (DeltaWindingNumber, SetID, Swapped);
// overlapping collinear parts are reported once per originating input by
// construction, since each input edge is split independently rather than
// merged with the edge it overlaps.
//
// This is an O(n^2) pairwise scan rather than boost.polygon's sweep-line
// validate_scan (no Go equivalent exists in the pack, per DESIGN.md); it
// is exact (Int128 orientation tests) and appropriate for the small part
// outlines this kernel targets.
// IntersectAll exposes intersectAllEdges for callers that need a raw
// split-and-sort scan without running the full Boolean/Clean pipeline
// (the pocket planner's spiral trim, the tab cutter).
func IntersectAll(edges []Edge) ([]Edge, error) {
	return intersectAllEdges(edges)
}

func intersectAllEdges(edges []Edge) ([]Edge, error) {
	n := len(edges)
	cuts := make([][]Point, n)

	for i := 0; i < n; i++ {
		a1, a2 := edges[i].Point1, edges[i].Point2
		for j := i + 1; j < n; j++ {
			b1, b2 := edges[j].Point1, edges[j].Point2

			collinear := orientation2D(a1, a2, b1) == 0 && orientation2D(a1, a2, b2) == 0
			if collinear {
				// Overlap interval along the shared line: clip each
				// edge's own span at the other edge's endpoints that
				// fall strictly inside it.
				if onSegment(b1, a1, a2) {
					cuts[i] = append(cuts[i], b1)
				}
				if onSegment(b2, a1, a2) {
					cuts[i] = append(cuts[i], b2)
				}
				if onSegment(a1, b1, b2) {
					cuts[j] = append(cuts[j], a1)
				}
				if onSegment(a2, b1, b2) {
					cuts[j] = append(cuts[j], a2)
				}
				continue
			}

			d1 := orientation2D(b1, b2, a1)
			d2 := orientation2D(b1, b2, a2)
			d3 := orientation2D(a1, a2, b1)
			d4 := orientation2D(a1, a2, b2)

			if ((d1 > 0) != (d2 > 0)) && d1 != 0 && d2 != 0 &&
				((d3 > 0) != (d4 > 0)) && d3 != 0 && d4 != 0 {
				p := intersectionPoint(a1, a2, b1, b2)
				cuts[i] = append(cuts[i], p)
				cuts[j] = append(cuts[j], p)
				continue
			}
			// Endpoint-on-segment touches.
			if d1 == 0 && onSegment(a1, b1, b2) {
				cuts[j] = append(cuts[j], a1)
			}
			if d2 == 0 && onSegment(a2, b1, b2) {
				cuts[j] = append(cuts[j], a2)
			}
			if d3 == 0 && onSegment(b1, a1, a2) {
				cuts[i] = append(cuts[i], b1)
			}
			if d4 == 0 && onSegment(b2, a1, a2) {
				cuts[i] = append(cuts[i], b2)
			}
		}
	}

	result := make([]Edge, 0, n)
	for i, e := range edges {
		pts := cuts[i]
		if len(pts) == 0 {
			result = append(result, e)
			continue
		}
		pts = append(pts, e.Point1, e.Point2)
		sort.Slice(pts, func(a, b int) bool {
			if pts[a].X != pts[b].X {
				return pts[a].X < pts[b].X
			}
			return pts[a].Y < pts[b].Y
		})
		uniq := pts[:0:0]
		for k, p := range pts {
			if k == 0 || !p.Eq2D(pts[k-1]) {
				uniq = append(uniq, p)
			}
		}
		for k := 0; k+1 < len(uniq); k++ {
			frag := e
			frag.Point1, frag.Point2 = uniq[k], uniq[k+1]
			if frag.Point1.Eq2D(frag.Point2) {
				continue
			}
			result = append(result, frag)
		}
	}
	return result, nil
}
