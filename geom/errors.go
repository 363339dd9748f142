package geom

import "errors"

// Error taxonomy (spec.md §7). Recoverable errors are documented per
// function; all others are surfaced immediately and the operation's
// transient buffers are released without partially mutating caller-owned
// storage.
var (
	// ErrIllegalInput indicates a zero-length edge where disallowed, or a
	// non-finite coordinate.
	ErrIllegalInput = errors.New("geom: illegal input")

	// ErrExactPrimitiveFailure indicates the exact-primitives adapter
	// reported contradictory comparisons (a precondition violation).
	ErrExactPrimitiveFailure = errors.New("geom: exact primitive failure")

	// ErrPathReconstructionFailed indicates walking next pointers failed
	// to close a ring or advance an open chain.
	ErrPathReconstructionFailed = errors.New("geom: path reconstruction failed")

	// ErrInvalidClipOp indicates an out-of-range ClipOp value.
	ErrInvalidClipOp = errors.New("geom: invalid clip operation")

	// ErrInvalidOffsetKind indicates an out-of-range OffsetKind value.
	ErrInvalidOffsetKind = errors.New("geom: invalid offset kind")
)
