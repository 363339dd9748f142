package geom

import "math"

// This file implements polygon offsetting (spec.md §4.6), ported from
// original_source/cpp/offset.h's rawOffset/processSegment: per-vertex
// normal offset, corner classification (left/straight/right) via the
// orientation of the two adjacent offset normals, and bounded-error arc
// linearization on outside (convex) turns. The teacher's Clipper2 offsetter
// (port/offset.go, if still present) uses a different join-style model
// (miter/round/square flags); this follows the original's single
// arc-tolerance-bounded round join instead, since that is what spec.md
// §4.6 and the original source actually specify.

// deltaAngleForError returns the largest per-segment sweep angle (radians)
// for which a circular arc of the given radius deviates from its chord by
// at most arcTolerance (the sagitta bound): arcTolerance = r*(1-cos(a/2)).
func deltaAngleForError(arcTolerance, radius float64) float64 {
	if radius <= 0 {
		return math.Pi
	}
	ratio := 1 - arcTolerance/radius
	ratio = math.Min(1, math.Max(-1, ratio))
	return 2 * math.Acos(ratio)
}

func euclideanDistance(p1, p2 Point) float64 {
	dx := float64(p2.X) - float64(p1.X)
	dy := float64(p2.Y) - float64(p1.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// offsetNormal returns the right-hand normal of segment p1->p2, scaled to
// length amount (signed; a negative amount points left).
func offsetNormal(p1, p2 Point, amount int32) Point {
	length := euclideanDistance(p1, p2)
	if length == 0 {
		return Point{}
	}
	dy := float64(p2.Y) - float64(p1.Y)
	dx := float64(p1.X) - float64(p2.X)
	return Point{
		X: roundInt32(dy * float64(amount) / length),
		Y: roundInt32(dx * float64(amount) / length),
	}
}

// processSegment appends the raw offset contour for the vertex p1, given
// its neighbors p0 and p2, to raw (original_source/cpp/offset.h
// processSegment). amount's sign selects which side of the path is
// offset; arcTolerance bounds the chord error of arcs inserted at outside
// corners.
func processSegment(raw Path, p0, p1, p2 Point, amount int32, arcTolerance float64) Path {
	if p1.Eq2D(p0) {
		return raw
	}

	normal01 := offsetNormal(p0, p1, amount)
	normal12 := offsetNormal(p1, p2, amount)

	a := Point{X: p1.X + normal01.X, Y: p1.Y + normal01.Y}
	b := Point{X: p1.X + normal12.X, Y: p1.Y + normal12.Y}
	o := orientation2D(p1, a, b)
	if amount < 0 {
		o = -o
	}
	dot := int64(normal01.X)*int64(normal12.X) + int64(normal01.Y)*int64(normal12.Y)

	switch {
	case o > 0 || (o == 0 && dot < 0):
		// Outside (convex) turn: arc from normal01 to normal12 about p1,
		// linearized to within arcTolerance.
		raw = append(raw, a)

		baseAngle := math.Atan2(float64(normal01.Y), float64(normal01.X))
		q := (float64(normal01.X)*float64(normal12.X) + float64(normal01.Y)*float64(normal12.Y)) / float64(amount) / float64(amount)
		q = math.Min(1, math.Max(-1, q))
		sweepAngle := math.Acos(q)
		numSegments := int(math.Ceil(sweepAngle / deltaAngleForError(arcTolerance, math.Abs(float64(amount)))))
		if amount < 0 {
			baseAngle += math.Pi
			sweepAngle = -sweepAngle
		}

		for i := 1; i < numSegments; i++ {
			angle := baseAngle + sweepAngle*float64(i)/float64(numSegments)
			raw = append(raw, Point{
				X: p1.X + roundInt32(float64(amount)*math.Cos(angle)),
				Y: p1.Y + roundInt32(float64(amount)*math.Sin(angle)),
			})
		}

		raw = append(raw, b)

	case o == 0:
		raw = append(raw, a)

	default:
		// Inside (reflex) turn: step through the vertex itself so the
		// self-intersection this creates is resolved by Clean downstream.
		raw = append(raw, a, p1, b)
	}

	return raw
}

// rawOffset offsets a single path by amount, without cleaning
// self-intersections (original_source/cpp/offset.h rawOffset). kind=Closed
// wraps the contour around both ends; kind=Open traces the forward side
// then doubles back along the reverse side (the original's non-closed
// branch, producing a closed loop that encircles the open path); kind=
// OpenRight traces only the forward side, the one-sided curve spec.md
// §4.6/§6 names OPEN_RIGHT (not present in the original source, since
// jscut's own callers never needed a one-sided toolpath offset; grounded
// on truncating the original's two-pass open case to its first pass).
func rawOffset(path Path, amount int32, arcTolerance float64, kind OffsetKind) Path {
	if amount == 0 {
		return append(Path{}, path...)
	}
	if len(path) < 2 {
		return nil
	}

	var raw Path
	switch kind {
	case Closed:
		p0 := path[len(path)-1]
		p1 := path[0]
		for i := 0; i+1 < len(path); i++ {
			p2 := path[i+1]
			raw = processSegment(raw, p0, p1, p2, amount, arcTolerance)
			p0, p1 = p1, p2
		}
		raw = processSegment(raw, p0, p1, path[0], amount, arcTolerance)
	case Open, OpenRight:
		p0 := path[1]
		p1 := path[0]
		for i := 0; i+1 < len(path); i++ {
			p2 := path[i+1]
			raw = processSegment(raw, p0, p1, p2, amount, arcTolerance)
			p0, p1 = p1, p2
		}
		if kind == Open {
			for i := len(path) - 1; i > 0; i-- {
				p2 := path[i-1]
				raw = processSegment(raw, p0, p1, p2, amount, arcTolerance)
				p0, p1 = p1, p2
			}
		}
	}
	return raw
}

// Offset grows or shrinks every path in ps by amount (positive grows,
// negative shrinks for a closed contour wound CCW), then cleans the raw
// result under the positive-winding rule (spec.md §4.6). kind selects closed,
// open-both-sides, or open-right-only offsetting of each path.
func Offset(ps PolygonSet, amount int32, arcTolerance float64, kind OffsetKind) (PolygonSet, error) {
	opID := newOperationID()
	if kind != Closed && kind != Open && kind != OpenRight {
		return nil, ErrInvalidOffsetKind
	}

	raw := make(PolygonSet, 0, len(ps))
	for _, path := range ps {
		r := rawOffset(path, amount, arcTolerance, kind)
		if r != nil {
			raw = append(raw, r)
		}
	}

	if kind == OpenRight {
		// A one-sided curve is not itself a closed contour to clean;
		// return the raw per-path results untouched.
		return raw, nil
	}

	debugLogOperation("Offset clean", opID)
	return Clean(raw)
}
