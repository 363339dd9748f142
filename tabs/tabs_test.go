package tabs

import (
	"testing"

	"github.com/tbfleming/jscut/geom"
)

func TestSeparateSplitsOverSingleTab(t *testing.T) {
	// A straight horizontal toolpath crossing one square tab footprint in
	// the middle (spec.md §4.9 / S4 "tab split").
	path := geom.Path{{X: 0, Y: 0}, {X: 1000, Y: 0}}
	tab := geom.PolygonSet{{
		{X: 400, Y: -100}, {X: 600, Y: -100}, {X: 600, Y: 100}, {X: 400, Y: 100},
	}}

	spans, err := Separate(path, tab)
	if err != nil {
		t.Fatalf("Separate failed: %v", err)
	}
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans (normal/over-tab/normal), got %d", len(spans))
	}
	if spans[0].OverTab || !spans[1].OverTab || spans[2].OverTab {
		t.Fatalf("expected over-tab pattern [false,true,false], got [%v,%v,%v]",
			spans[0].OverTab, spans[1].OverTab, spans[2].OverTab)
	}
}

func TestSeparateNoTabsReturnsSingleSpan(t *testing.T) {
	path := geom.Path{{X: 0, Y: 0}, {X: 1000, Y: 0}}

	spans, err := Separate(path, nil)
	if err != nil {
		t.Fatalf("Separate failed: %v", err)
	}
	if len(spans) != 1 {
		t.Fatalf("expected a single span with no tabs, got %d", len(spans))
	}
	if spans[0].OverTab {
		t.Fatal("expected the single span to not be over a tab")
	}
}
