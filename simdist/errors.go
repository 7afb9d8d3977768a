// SPDX-License-Identifier: MIT
// Package simdist: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors. All operations
// return these sentinels and tests check them via errors.Is. Wrapping with
// fmt.Errorf("ctx: %w", ErrX) is allowed where context is essential;
// callers still match with errors.Is.

package simdist

import (
	"errors"

	"github.com/katalvlaran/procrust/ortho"
)

var (
	// ErrNonSquare signals that an input matrix is not square. Checked
	// before any other precondition.
	ErrNonSquare = errors.New("simdist: matrix is not square")

	// ErrDimensionMismatch indicates that A and B differ in size, or that
	// an input does not match the fitted transform's size during scoring.
	ErrDimensionMismatch = errors.New("simdist: dimension mismatch")

	// ErrNotFitted is returned by Score (and the fitted-state accessors)
	// before any successful Fit.
	ErrNotFitted = errors.New("simdist: no fitted transform, call Fit first")

	// ErrNaNInf signals a NaN or ±Inf entry in an input matrix while
	// finite-value validation is enabled (the default).
	ErrNaNInf = errors.New("simdist: NaN or Inf encountered")

	// ErrBadOption is returned when a configuration value is out of range
	// (non-positive iterations or rate, negative jitter, unknown method).
	ErrBadOption = errors.New("simdist: invalid option value")
)

// ErrSolveFailed surfaces a singular system inside the Cayley map's linear
// solve. Aliased from package ortho so callers can match it without
// importing the parametrization internals.
var ErrSolveFailed = ortho.ErrSolveFailed
