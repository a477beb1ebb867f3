// Package errs defines the sentinel errors returned by decimate packages.
//
// Call sites wrap these with fmt.Errorf("%w: ...") to add detail, so callers
// should match with errors.Is rather than comparing error strings.
package errs

import (
	"errors"
	"fmt"
)

// Top-level error classes.
var (
	// ErrInvalidConfiguration is returned for an unknown algorithm, a non-positive width,
	// a width incompatible with the chosen algorithm, or a malformed x-range.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrPreconditionViolation is returned when the input series breaks a contract
	// that must hold before any indexing happens.
	ErrPreconditionViolation = errors.New("precondition violation")

	// ErrDegenerateInput is returned when downsampling is attempted on a series
	// too short to produce a well-formed selection.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrInvalidSnapshot is returned when snapshot bytes cannot be decoded.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// Configuration errors.
var (
	ErrUnknownAlgorithm = fmt.Errorf("%w: unknown algorithm", ErrInvalidConfiguration)
	ErrInvalidWidth     = fmt.Errorf("%w: invalid width", ErrInvalidConfiguration)
	ErrInvalidRange     = fmt.Errorf("%w: invalid x-range", ErrInvalidConfiguration)
	ErrInvalidOption    = fmt.Errorf("%w: invalid option", ErrInvalidConfiguration)
)

// Precondition errors.
var (
	ErrLengthMismatch      = fmt.Errorf("%w: x and y lengths differ", ErrPreconditionViolation)
	ErrEmptyBucket         = fmt.Errorf("%w: empty bucket", ErrPreconditionViolation)
	ErrRowOutOfRange       = fmt.Errorf("%w: row index out of range", ErrPreconditionViolation)
	ErrDimensionOutOfRange = fmt.Errorf("%w: dimension index out of range", ErrPreconditionViolation)
)

// Snapshot errors.
var (
	ErrChecksumMismatch = fmt.Errorf("%w: checksum mismatch", ErrInvalidSnapshot)
)
