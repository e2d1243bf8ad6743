// SPDX-License-Identifier: MIT

package location

import "errors"

var (
	// ErrEmptySample indicates that no observation was given.
	ErrEmptySample = errors.New("location: empty sample")

	// ErrNoSupport indicates that every observation received zero weight,
	// which happens with Tukey when all residuals exceed the cutoff.
	ErrNoSupport = errors.New("location: no observation inside the cutoff")

	// ErrNotConverged indicates that the iteration cap was reached.
	ErrNotConverged = errors.New("location: estimate did not converge")
)
