package geom

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// Debug logging infrastructure for the scanline engine, mirroring the
// teacher's VattiDebug gate. Off by default; every call site checks Debug
// before formatting so the hot path pays nothing when disabled.
var (
	// Debug enables detailed scanline/boolean/offset tracing when true.
	Debug = false
	// DebugOutput is where debug output goes (default: os.Stdout).
	DebugOutput io.Writer = os.Stdout
)

func debugLog(format string, args ...interface{}) {
	if Debug {
		fmt.Fprintf(DebugOutput, "[geom] "+format+"\n", args...)
	}
}

func debugLogPhase(phase string) {
	if Debug {
		fmt.Fprintf(DebugOutput, "\n--- %s ---\n", phase)
	}
}

// newOperationID tags one top-level entry point call (BooleanOp, Clean,
// Offset) with a correlation id threaded through its debug trace, the same
// way ffi.Result.OperationID correlates a call across a host's own logs
// (SPEC_FULL.md Domain Stack). Always generated, not just under Debug, so
// a caller that flips Debug on mid-run still sees a stable id for calls
// already in flight.
func newOperationID() string {
	return uuid.NewString()
}

func debugLogOperation(name, id string) {
	if Debug {
		fmt.Fprintf(DebugOutput, "\n--- %s op=%s ---\n", name, id)
	}
}
