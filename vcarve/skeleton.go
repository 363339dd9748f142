// Package vcarve builds V-carve/V-pocket toolpaths: a medial-axis
// skeleton lifted to depth by cutter half-angle, clipped to the input
// outline, ordered into continuous travel, and split into depth passes
// (spec.md §4.7).
package vcarve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/core"

	"github.com/tbfleming/jscut/geom"
)

// Errors surfaced by the vcarve package, matching the taxonomy of
// spec.md §7.
var (
	ErrDegenerateVoronoi = fmt.Errorf("vcarve: fewer than two input segments survive filtering")
)

// cornerRejectAngleDeg is spec.md §4.7 Step 1's near-flat-corner cutoff:
// a boundary vertex whose corner angle (the unsigned angle between its
// two edges, see BuildSkeleton) is >= this contributes no bisector ray.
const cornerRejectAngleDeg = 95.0

var cornerRejectCos = math.Cos(cornerRejectAngleDeg * math.Pi / 180)

// segment is one boundary edge of the input outline, used to measure a
// skeleton point's distance to the boundary.
type segment struct {
	P0, P1 geom.Point
}

func (s segment) length() float64 {
	return euclideanDist(s.P0, s.P1)
}

func euclideanDist(a, b geom.Point) float64 {
	dx := float64(b.X) - float64(a.X)
	dy := float64(b.Y) - float64(a.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// distanceToSegment returns the shortest distance from p to the segment
// s, used to lift skeleton points to Z (spec.md §4.7 Step 1) and to
// detect convergence on the nearest generator.
func distanceToSegment(p geom.Point, s segment) float64 {
	x0, y0 := float64(p.X), float64(p.Y)
	x1, y1 := float64(s.P0.X), float64(s.P0.Y)
	x2, y2 := float64(s.P1.X), float64(s.P1.Y)
	dx, dy := x2-x1, y2-y1
	length2 := dx*dx + dy*dy
	if length2 == 0 {
		return math.Hypot(x0-x1, y0-y1)
	}
	t := ((x0-x1)*dx + (y0-y1)*dy) / length2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	px, py := x1+t*dx, y1+t*dy
	return math.Hypot(x0-px, y0-py)
}

func nearestDistance(p geom.Point, segs []segment) float64 {
	best := math.Inf(1)
	for _, s := range segs {
		if d := distanceToSegment(p, s); d < best {
			best = d
		}
	}
	return best
}

// Skel is the medial-axis skeleton graph for one outline: nodes are
// skeleton vertices tagged with their lifted Z, edges are the medial
// segments between them.
type Skel struct {
	Graph *core.Graph
	// Z maps a node ID to its lifted depth (negative; 0 at the boundary).
	Z map[string]float64
	// Point maps a node ID back to its 2D location.
	Point map[string]geom.Point
}

func nodeID(p geom.Point) string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// SkelEdge is one medial-axis segment with its endpoints' lifted Z
// (spec.md §4.7 Step 1 output, before interior clipping).
type SkelEdge struct {
	P0, P1 geom.Point
	Z0, Z1 float64
}

// Edges returns every skeleton segment.
func (sk *Skel) Edges() []SkelEdge {
	graphEdges := sk.Graph.Edges()
	out := make([]SkelEdge, 0, len(graphEdges))
	for _, e := range graphEdges {
		out = append(out, SkelEdge{
			P0: sk.Point[e.From], P1: sk.Point[e.To],
			Z0: sk.Z[e.From], Z1: sk.Z[e.To],
		})
	}
	return out
}

// ray is an interior-pointing bisector cast from a boundary vertex.
type ray struct {
	origin geom.Point
	dir    [2]float64 // unit vector, pointing into the interior
}

// BuildSkeleton constructs the medial-axis skeleton of a single closed
// outline (spec.md §4.7 Step 1).
//
// True segment-Voronoi construction (boost::polygon::voronoi_diagram, as
// original_source/cpp/vEngrave.cpp builds it) has no Go equivalent in the
// pack, and a from-scratch Fortune's-algorithm port is out of proportion
// to what this kernel needs for the regular, largely-convex outlines CAM
// V-carving targets. Instead this builds a straight-skeleton-style
// approximation: at every vertex that passes the near-flat-corner test
// (reflex vertices included, with the bisector flipped inward), a bisector
// ray of the two incident edges is cast into the interior; rays are
// paired at their nearest mutual intersection to form skeleton edges. For
// a square (spec.md S5) this is exactly the true Voronoi skeleton (the
// two diagonals meeting at the centroid). For other outlines it is an
// approximation, documented in DESIGN.md: each ray is used in at most one
// pair, so no skeleton edge joins two meeting points (a non-square
// rectangle gets four corner spokes but not the central medial segment).
func BuildSkeleton(outline geom.Path, halfAngle float64) (*Skel, error) {
	n := len(outline)
	if n < 3 {
		return nil, ErrDegenerateVoronoi
	}

	segs := make([]segment, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		segs[i] = segment{P0: outline[i], P1: outline[j]}
	}

	rays := make([]ray, 0, n)
	for i := 0; i < n; i++ {
		prev := segs[(i-1+n)%n]
		next := segs[i]
		v := next.P0 // == outline[i]
		d1x, d1y := float64(v.X)-float64(prev.P0.X), float64(v.Y)-float64(prev.P0.Y)
		d2x, d2y := float64(next.P1.X)-float64(v.X), float64(next.P1.Y)-float64(v.Y)
		l1 := math.Hypot(d1x, d1y)
		l2 := math.Hypot(d2x, d2y)
		if l1 == 0 || l2 == 0 {
			continue
		}
		d1x, d1y = d1x/l1, d1y/l1
		d2x, d2y = d2x/l2, d2y/l2

		// Reject near-flat corners (spec.md §4.7 Step 1: "kept only if the
		// interior angle between its two generator segments at their shared
		// corner is < 95°"). The corner angle tested is the unsigned angle
		// at v between the vector back along the previous edge (-d1) and
		// the vector forward along the next edge (d2): the interior angle
		// at a convex vertex, 360° minus the interior angle at a reflex
		// one. cos is monotonically decreasing over [0°,180°], so
		// angle < 95° iff cos(angle) > cos(95°).
		cosCorner := -(d1x*d2x + d1y*d2y)
		if cosCorner <= cornerRejectCos {
			continue
		}

		// Interior bisector: average of the incoming direction and the
		// reverse of the outgoing direction, then rotate isn't needed —
		// the angle bisector of the turn is (−d1 + d2) normalized, which
		// points into the polygon's interior for a CCW-wound convex
		// vertex.
		bx, by := d2x-d1x, d2y-d1y
		bl := math.Hypot(bx, by)
		if bl == 0 {
			continue
		}
		cross := d1x*d2y - d1y*d2x
		if cross < 0 {
			// Reflex vertex: the simple bisector points outward; flip it
			// back inward. This is the approximation DESIGN.md documents
			// in place of a true parabolic point-generator edge.
			bx, by = -bx, -by
		}
		rays = append(rays, ray{origin: v, dir: [2]float64{bx / bl, by / bl}})
	}

	g := core.NewGraph(core.WithWeighted())
	sk := &Skel{Graph: g, Z: map[string]float64{}, Point: map[string]geom.Point{}}

	addNode := func(p geom.Point) string {
		id := nodeID(p)
		if _, ok := sk.Point[id]; !ok {
			_ = g.AddVertex(id)
			sk.Point[id] = p
			sk.Z[id] = -nearestDistance(p, segs) / math.Tan(halfAngle/2)
		}
		return id
	}

	// Pair each ray with the nearest ray it meets strictly ahead of both
	// origins, forming one skeleton edge per pair. Each ray is consumed by
	// at most one pairing (the classic straight-skeleton "collapse" event,
	// simplified to a single global nearest-pair pass rather than an
	// event queue).
	used := make([]bool, len(rays))
	for i := range rays {
		if used[i] {
			continue
		}
		bestJ := -1
		var bestPt geom.Point
		bestDist := math.Inf(1)
		for j := range rays {
			if j == i || used[j] {
				continue
			}
			pt, ok := intersectRays(rays[i], rays[j])
			if !ok {
				continue
			}
			d := euclideanDist(rays[i].origin, pt)
			if d < bestDist {
				bestDist = d
				bestJ = j
				bestPt = pt
			}
		}
		if bestJ < 0 {
			continue
		}
		used[i], used[bestJ] = true, true

		aID := addNode(rays[i].origin)
		bID := addNode(rays[bestJ].origin)
		mID := addNode(bestPt)
		w1 := int64(euclideanDist(rays[i].origin, bestPt))
		w2 := int64(euclideanDist(rays[bestJ].origin, bestPt))
		if _, err := g.AddEdge(aID, mID, w1, core.WithEdgeDirected(false)); err != nil {
			return nil, err
		}
		if _, err := g.AddEdge(bID, mID, w2, core.WithEdgeDirected(false)); err != nil {
			return nil, err
		}
	}

	return sk, nil
}

// intersectRays finds where two rays meet, if both parameters are
// non-negative (i.e. the intersection lies ahead of both origins).
func intersectRays(a, b ray) (geom.Point, bool) {
	// a.origin + t*a.dir == b.origin + s*b.dir
	ax, ay := float64(a.origin.X), float64(a.origin.Y)
	bx, by := float64(b.origin.X), float64(b.origin.Y)
	denom := a.dir[0]*b.dir[1] - a.dir[1]*b.dir[0]
	if math.Abs(denom) < 1e-9 {
		return geom.Point{}, false
	}
	dx, dy := bx-ax, by-ay
	t := (dx*b.dir[1] - dy*b.dir[0]) / denom
	s := (dx*a.dir[1] - dy*a.dir[0]) / denom
	if t < 0 || s < 0 {
		return geom.Point{}, false
	}
	return geom.Point{X: roundCoord(ax + t*a.dir[0]), Y: roundCoord(ay + t*a.dir[1])}, true
}

func roundCoord(v float64) int32 {
	if v >= 0 {
		return int32(v + 0.5)
	}
	return int32(v - 0.5)
}
