// Package ortho: sentinel error set.
// All public functions return these sentinels (possibly wrapped with
// context via fmt.Errorf("...: %w", ErrX)); callers match with errors.Is.
// Panics are reserved for programmer errors in private helpers.

package ortho

import "errors"

var (
	// ErrBadDimension is returned when a requested parameter dimension
	// is not strictly positive.
	ErrBadDimension = errors.New("ortho: dimension must be positive")

	// ErrNotSquare signals that a square matrix was required but the
	// input wasn't.
	ErrNotSquare = errors.New("ortho: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands (e.g. a gradient that does not match the parameter size).
	ErrDimensionMismatch = errors.New("ortho: dimension mismatch")

	// ErrSolveFailed indicates that the Cayley map's linear solve hit a
	// singular system. Near-singular (ill-conditioned) systems are
	// tolerated with degraded precision and do NOT produce this error.
	ErrSolveFailed = errors.New("ortho: linear solve failed")

	// ErrNoForward is returned by Backward when no Value call has primed
	// the cached forward state for the current raw matrix.
	ErrNoForward = errors.New("ortho: backward requires a prior value computation")
)
