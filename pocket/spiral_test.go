package pocket

import (
	"testing"

	"github.com/tbfleming/jscut/geom"
)

func TestCreateSpiralGrowsOutward(t *testing.T) {
	spiral := CreateSpiral(1000, 0, 0, 5000)
	if len(spiral) < 2 {
		t.Fatalf("expected a multi-point spiral, got %d points", len(spiral))
	}
	first := spiral[0]
	if first.X != 0 || first.Y != 0 {
		t.Fatalf("expected spiral to start at the centre, got (%d,%d)", first.X, first.Y)
	}
	last := spiral[len(spiral)-1]
	d := geom.DistanceSquared128(geom.Point{}, last).ToFloat64()
	if d < 4000*4000 {
		t.Fatalf("expected the spiral's last point to be near radius 5000, got distance^2=%v", d)
	}
}

func TestTrimSpiralStopsAtBoundary(t *testing.T) {
	outline := geom.PolygonSet{{
		{X: -1000, Y: -1000}, {X: 1000, Y: -1000}, {X: 1000, Y: 1000}, {X: -1000, Y: 1000},
	}}
	spiral := CreateSpiral(500, 0, 0, 5000)

	trimmed := TrimSpiral(spiral, outline)
	if len(trimmed) == 0 {
		t.Fatal("expected a non-empty trimmed spiral")
	}
	if len(trimmed) >= len(spiral) {
		t.Fatalf("expected trimming to shorten the spiral (had %d, got %d)", len(spiral), len(trimmed))
	}
	for _, p := range trimmed {
		if p.X < -1000 || p.X > 1000 || p.Y < -1000 || p.Y > 1000 {
			t.Fatalf("trimmed spiral point (%d,%d) escaped the boundary", p.X, p.Y)
		}
	}
}
