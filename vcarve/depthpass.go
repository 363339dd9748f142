package vcarve

import "github.com/tbfleming/jscut/geom"

// SplitDepthPasses turns one travel path into the XYZ passes a conical
// cutter can actually take in one engagement (spec.md §4.7 Step 4): a
// maximal run of non-zero-Z points is flushed as a cycle of progressively
// deeper passes, each limited to passDepth below the previous, bottoming
// out at the span's true minimum Z (clamped to maxDepth) and rapid in/out
// at z=0 at the ends.
func SplitDepthPasses(path TravelPath, passDepth float64, maxDepth float64) []geom.Path {
	if len(path) == 0 {
		return nil
	}

	var passes []geom.Path
	var span TravelPath

	flush := func() {
		if len(span) == 0 {
			return
		}
		passes = append(passes, emitSpanPasses(span, passDepth, maxDepth)...)
		span = nil
	}

	for _, p := range path {
		if p.Z == 0 {
			flush()
			continue
		}
		span = append(span, p)
	}
	flush()

	return passes
}

// emitSpanPasses implements the per-span decreasing-depth-offset loop of
// spec.md §4.7 Step 4.
func emitSpanPasses(span TravelPath, passDepth, maxDepth float64) []geom.Path {
	minZ := span[0].Z
	for _, p := range span {
		if p.Z < minZ {
			minZ = p.Z
		}
	}
	if minZ < maxDepth {
		minZ = maxDepth
	}

	var out []geom.Path

	// deltaZ = max(0, -Δz - minZ) at the first pass, where Δz is the
	// per-pass depth budget (passDepth); each subsequent pass reduces the
	// remaining offset by passDepth (never below zero) until it reaches
	// zero, at which point the cutter has reached the span's true bottom.
	offset := maxOf(0, -passDepth-minZ)
	forward := true
	for {
		out = append(out, renderSpan(span, offset, forward, maxDepth))
		if offset == 0 {
			break
		}
		offset = maxOf(0, offset-passDepth)
		forward = !forward
	}
	return out
}

func renderSpan(span TravelPath, offset float64, forward bool, maxDepth float64) geom.Path {
	n := len(span)
	out := make(geom.Path, 0, n+2)

	emit := func(p TravelPoint) {
		z := p.Z + offset
		if z < maxDepth {
			z = maxDepth
		}
		out = append(out, geom.Point{X: p.Point.X, Y: p.Point.Y, Z: roundCoord(z)})
	}

	if !forward {
		for i := n - 1; i >= 0; i-- {
			emit(span[i])
		}
	} else {
		for i := 0; i < n; i++ {
			emit(span[i])
		}
	}

	if len(out) > 0 && out[0].Z != 0 {
		first := out[0]
		first.Z = 0
		out = append(geom.Path{first}, out...)
	}
	if len(out) > 0 && out[len(out)-1].Z != 0 {
		last := out[len(out)-1]
		last.Z = 0
		out = append(out, last)
	}
	return out
}

func maxOf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
