package pocket

import (
	"testing"

	"github.com/tbfleming/jscut/geom"
)

func TestHSPocketRoundHoleProducesToolpath(t *testing.T) {
	// A roughly round pocket, approximated as an octagon (spec.md S6:
	// "pocket in a round hole").
	outline := geom.PolygonSet{{
		{X: 10000, Y: 0}, {X: 7071, Y: 7071}, {X: 0, Y: 10000}, {X: -7071, Y: 7071},
		{X: -10000, Y: 0}, {X: -7071, Y: -7071}, {X: 0, Y: -10000}, {X: 7071, Y: -7071},
	}}

	paths, err := HSPocket(outline, 2000, geom.Point{}, 4000, 1000, 200, nil)
	if err != nil {
		t.Fatalf("HSPocket failed: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("expected at least the spiral seed as a toolpath")
	}
	for _, p := range paths {
		for _, pt := range p {
			d := geom.DistanceSquared128(geom.Point{}, pt).ToFloat64()
			if d > 10000.0*10000.0 {
				t.Fatalf("toolpath point (%d,%d) escaped the pocket boundary", pt.X, pt.Y)
			}
		}
	}
}

func TestHSPocketRecordsHistoryWhenRequested(t *testing.T) {
	outline := geom.PolygonSet{{
		{X: 0, Y: 0}, {X: 10000, Y: 0}, {X: 10000, Y: 10000}, {X: 0, Y: 10000},
	}}
	history := newHistory()

	_, err := HSPocket(outline, 2000, geom.Point{X: 5000, Y: 5000}, 4000, 1000, 200, history)
	if err != nil {
		t.Fatalf("HSPocket failed: %v", err)
	}
	if _, err := history.Graph.Neighbors("seed"); err != nil {
		t.Fatalf("expected the seed vertex to exist in history: %v", err)
	}
}
