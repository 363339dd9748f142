// Package ffi exposes the kernel's operations over the flat, pointer-free
// wire format spec.md §6 defines for crossing a foreign-function
// boundary, and assigns each call a correlation id for diagnostics.
// Adapted from port/CWBudde-Go-Clipper2's capi/clipper_cgo.go packing
// convention (header-prefixed flat int array), but with no cgo: nothing
// in this kernel has a real C caller, so the "packed array" is a plain Go
// slice a caller marshals across whatever boundary it actually has.
package ffi

import "github.com/tbfleming/jscut/geom"

// WirePath is one path's coordinates packed as
// paths[j*stride+0 .. j*stride+stride-1] (spec.md §6). Stride is 2 for a
// plain 2D path, 3 for a 2.5D path carrying Z.
type WirePath []int32

// WirePolygonSet is an ordered sequence of WirePaths — the wire
// representation of a geom.PolygonSet or a V-carve []geom.Path.
type WirePolygonSet []WirePath

// PackPaths2D flattens a PolygonSet into its 2D wire form (stride 2).
func PackPaths2D(ps geom.PolygonSet) WirePolygonSet {
	out := make(WirePolygonSet, len(ps))
	for i, p := range ps {
		flat := make(WirePath, 0, len(p)*2)
		for _, pt := range p {
			flat = append(flat, pt.X, pt.Y)
		}
		out[i] = flat
	}
	return out
}

// PackPaths3D flattens a set of XYZ paths into wire form (stride 3), used
// for V-carve output.
func PackPaths3D(ps []geom.Path) WirePolygonSet {
	out := make(WirePolygonSet, len(ps))
	for i, p := range ps {
		flat := make(WirePath, 0, len(p)*3)
		for _, pt := range p {
			flat = append(flat, pt.X, pt.Y, pt.Z)
		}
		out[i] = flat
	}
	return out
}

// UnpackPaths2D expands a stride-2 wire polygon set back into a
// PolygonSet. Malformed input (an odd-length path) is dropped, matching
// spec.md §7's "the kernel never partially mutates caller-owned storage
// on failure" by simply ignoring the offending path rather than
// panicking on it.
func UnpackPaths2D(w WirePolygonSet) geom.PolygonSet {
	ps := make(geom.PolygonSet, 0, len(w))
	for _, flat := range w {
		if len(flat)%2 != 0 {
			continue
		}
		p := make(geom.Path, len(flat)/2)
		for j := range p {
			p[j] = geom.Point{X: flat[j*2], Y: flat[j*2+1]}
		}
		ps = append(ps, p)
	}
	return ps
}

// UnpackPaths3D expands a stride-3 wire polygon set into XYZ paths.
func UnpackPaths3D(w WirePolygonSet) []geom.Path {
	ps := make([]geom.Path, 0, len(w))
	for _, flat := range w {
		if len(flat)%3 != 0 {
			continue
		}
		p := make(geom.Path, len(flat)/3)
		for j := range p {
			p[j] = geom.Point{X: flat[j*3], Y: flat[j*3+1], Z: flat[j*3+2]}
		}
		ps = append(ps, p)
	}
	return ps
}
