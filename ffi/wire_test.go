package ffi

import (
	"testing"

	"github.com/tbfleming/jscut/geom"
)

func TestPackUnpackPaths2DRoundTrip(t *testing.T) {
	ps := geom.PolygonSet{
		{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}},
		{{X: -5, Y: -5}, {X: 5, Y: -5}},
	}

	wire := PackPaths2D(ps)
	back := UnpackPaths2D(wire)

	if len(back) != len(ps) {
		t.Fatalf("expected %d paths, got %d", len(ps), len(back))
	}
	for i, p := range ps {
		if len(back[i]) != len(p) {
			t.Fatalf("path %d: expected %d points, got %d", i, len(p), len(back[i]))
		}
		for j, pt := range p {
			if back[i][j].X != pt.X || back[i][j].Y != pt.Y {
				t.Fatalf("path %d point %d: got (%d,%d), want (%d,%d)", i, j, back[i][j].X, back[i][j].Y, pt.X, pt.Y)
			}
		}
	}
}

func TestUnpackPaths2DDropsMalformedPath(t *testing.T) {
	wire := WirePolygonSet{{0, 0, 100}} // odd length: malformed
	back := UnpackPaths2D(wire)
	if len(back) != 0 {
		t.Fatalf("expected malformed path to be dropped, got %d paths", len(back))
	}
}

func TestPackUnpackPaths3DRoundTrip(t *testing.T) {
	ps := []geom.Path{
		{{X: 0, Y: 0, Z: 0}, {X: 100, Y: 0, Z: -50}},
	}
	wire := PackPaths3D(ps)
	back := UnpackPaths3D(wire)
	if len(back) != 1 || len(back[0]) != 2 {
		t.Fatalf("unexpected shape after round-trip: %+v", back)
	}
	if back[0][1].Z != -50 {
		t.Fatalf("expected Z=-50, got %d", back[0][1].Z)
	}
}
