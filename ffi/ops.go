package ffi

import (
	"github.com/google/uuid"

	"github.com/tbfleming/jscut/geom"
	"github.com/tbfleming/jscut/pocket"
	"github.com/tbfleming/jscut/tabs"
	"github.com/tbfleming/jscut/vcarve"
)

// Result is the outcome of one ffi call: spec.md §6/§7's "errors surface
// as a distinguished return value" convention rendered in Go as a result
// struct with a nil Paths and a non-nil Err rather than as a panic or a
// partially-filled output. OperationID correlates a call across logs
// regardless of whether it succeeded.
type Result struct {
	OperationID string
	Paths       WirePolygonSet
	Err         error
}

// Result3D is Result for operations that return Z-bearing toolpaths
// (V-carve).
type Result3D struct {
	OperationID string
	Paths       WirePolygonSet
	Err         error
}

func newOperationID() string {
	return uuid.NewString()
}

func clipOpFromName(name string) (geom.ClipOp, bool) {
	switch name {
	case "UNION":
		return geom.Union, true
	case "INTERSECT":
		return geom.Intersect, true
	case "DIFFERENCE":
		return geom.Difference, true
	default:
		return 0, false
	}
}

func offsetKindFromName(name string) (geom.OffsetKind, bool) {
	switch name {
	case "CLOSED", "":
		return geom.Closed, true
	case "OPEN":
		return geom.Open, true
	case "OPEN_RIGHT":
		return geom.OpenRight, true
	default:
		return 0, false
	}
}

// BooleanCombine runs a, b through the named Boolean operation ("UNION",
// "INTERSECT", "DIFFERENCE") and returns the wire-packed result (spec.md
// §6 "Boolean combine").
func BooleanCombine(opName string, a, b WirePolygonSet) Result {
	id := newOperationID()
	op, ok := clipOpFromName(opName)
	if !ok {
		return Result{OperationID: id, Err: geom.ErrInvalidClipOp}
	}
	out, err := geom.BooleanOp(op, UnpackPaths2D(a), UnpackPaths2D(b))
	if err != nil {
		return Result{OperationID: id, Err: err}
	}
	return Result{OperationID: id, Paths: PackPaths2D(out)}
}

// CleanNormalize runs a through the single-operand clean/reassembly pass
// (spec.md §6 "Clean/normalize"), resolving self-intersections and
// canceling opposite-wound overlaps without combining against a second
// operand.
func CleanNormalize(a WirePolygonSet) Result {
	id := newOperationID()
	out, err := geom.Clean(UnpackPaths2D(a))
	if err != nil {
		return Result{OperationID: id, Err: err}
	}
	return Result{OperationID: id, Paths: PackPaths2D(out)}
}

// OffsetPolygons grows or shrinks a by amount (spec.md §6 "Offset"). kind
// is "CLOSED", "OPEN", or "OPEN_RIGHT"; empty defaults to CLOSED.
func OffsetPolygons(a WirePolygonSet, amount int32, arcTolerance float64, kind string) Result {
	id := newOperationID()
	k, ok := offsetKindFromName(kind)
	if !ok {
		return Result{OperationID: id, Err: geom.ErrInvalidOffsetKind}
	}
	if arcTolerance <= 0 {
		arcTolerance = geom.DefaultArcTolerance
	}
	out, err := geom.Offset(UnpackPaths2D(a), amount, arcTolerance, k)
	if err != nil {
		return Result{OperationID: id, Err: err}
	}
	return Result{OperationID: id, Paths: PackPaths2D(out)}
}

// HSPocketToolpath synthesizes a high-speed pocket toolpath over outline
// (spec.md §6 "HSM pocket toolpath"). startX/startY is the spiral seed
// centre, spiralR its maximum radius, stepover and minProgress in the
// same coordinate units as outline.
func HSPocketToolpath(outline WirePolygonSet, cutterDia int32, startX, startY int32, spiralR float64, stepover, minProgress int32) Result {
	id := newOperationID()
	start := geom.Point{X: startX, Y: startY}
	paths, err := pocket.HSPocket(UnpackPaths2D(outline), cutterDia, start, spiralR, stepover, minProgress, nil)
	if err != nil {
		return Result{OperationID: id, Err: err}
	}
	return Result{OperationID: id, Paths: PackPaths2D(paths)}
}

// VPocketToolpath synthesizes a V-carve/V-pocket toolpath over outline
// (spec.md §6 "V-engrave/V-pocket toolpath"). cutterAngleDeg is the
// cutter's full included angle in degrees; passDepth and maxDepth are in
// the same coordinate units as outline (maxDepth ≤ 0).
func VPocketToolpath(outline WirePolygonSet, cutterAngleDeg, passDepth, maxDepth float64) Result3D {
	id := newOperationID()
	paths, err := vcarve.VPocket(UnpackPaths2D(outline), cutterAngleDeg, passDepth, maxDepth)
	if err != nil {
		return Result3D{OperationID: id, Err: err}
	}
	return Result3D{OperationID: id, Paths: PackPaths3D(paths)}
}

// TabResult is the outcome of SeparateTabs: an ordered sequence of spans,
// each flagged as running over a tab or not, plus the usual correlation
// id and distinguished error.
type TabResult struct {
	OperationID string
	Spans       []TabSpan
	Err         error
}

// TabSpan is the wire form of tabs.Span.
type TabSpan struct {
	Path    WirePath
	OverTab bool
}

// SeparateTabs splits path wherever it crosses a tab polygon's footprint
// into alternating over-tab/normal spans (spec.md §6 "Tab separation").
func SeparateTabs(path WirePath, tabPolygons WirePolygonSet) TabResult {
	id := newOperationID()
	if len(path)%2 != 0 {
		return TabResult{OperationID: id, Err: geom.ErrIllegalInput}
	}
	p := make(geom.Path, len(path)/2)
	for i := range p {
		p[i] = geom.Point{X: path[i*2], Y: path[i*2+1]}
	}
	spans, err := tabs.Separate(p, UnpackPaths2D(tabPolygons))
	if err != nil {
		return TabResult{OperationID: id, Err: err}
	}
	out := make([]TabSpan, len(spans))
	for i, s := range spans {
		flat := make(WirePath, 0, len(s.Path)*2)
		for _, pt := range s.Path {
			flat = append(flat, pt.X, pt.Y)
		}
		out[i] = TabSpan{Path: flat, OverTab: s.OverTab}
	}
	return TabResult{OperationID: id, Spans: out}
}
