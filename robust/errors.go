// SPDX-License-Identifier: MIT

package robust

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownEstimator indicates an estimator outside l2, l1, huber and tukey.
	ErrUnknownEstimator = errors.New("robust: unknown estimator")

	// ErrInvalidCutoff indicates a cutoff that is not finite and positive for
	// an estimator that needs one.
	ErrInvalidCutoff = errors.New("robust: cutoff must be finite and positive")

	// ErrSampleSize indicates that the design matrix disagrees with the number
	// of directions (rows) or observations (columns), or that either is empty.
	ErrSampleSize = errors.New("robust: sample size mismatch")

	// ErrDimensionMismatch indicates that the base point, directions and
	// observations do not share one ambient dimension.
	ErrDimensionMismatch = errors.New("robust: dimension mismatch")
)

// robustErrorf tags err with the operation name.
func robustErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
