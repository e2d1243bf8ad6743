// SPDX-License-Identifier: MIT
// Package manifold: sentinel error set.
//
// Every message is prefixed with "manifold: ..." so it can be grepped in logs.
// Operations return these sentinels wrapped with the operation tag
// (fmt.Errorf("Exp: ...: %w", ErrX)); callers match with errors.Is.
//
// ERROR CLASSES:
//   shape      -> ErrEmptyVector, ErrDimensionMismatch
//   domain     -> ErrNotOnManifold, ErrNotTangent, ErrNotCentered
//   degeneracy -> ErrAntipodal, ErrDegenerate
//   parameter  -> ErrUnknownManifold, ErrCoordinateType

package manifold

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyVector is returned when a point or tangent vector has no coordinates.
	ErrEmptyVector = errors.New("manifold: empty vector")

	// ErrDimensionMismatch indicates that arguments do not share one ambient dimension.
	ErrDimensionMismatch = errors.New("manifold: dimension mismatch")

	// ErrNotOnManifold indicates that a point violates the manifold constraint
	// (unit norm, unit Minkowski pseudo-norm on the upper sheet, finite coordinates)
	// beyond the configured tolerance.
	ErrNotOnManifold = errors.New("manifold: point is not on the manifold")

	// ErrNotTangent indicates that a vector is not in the tangent space of its base point.
	ErrNotTangent = errors.New("manifold: vector is not tangent at the base point")

	// ErrNotCentered indicates a Kendall preshape point or vector with non-zero mean.
	ErrNotCentered = errors.New("manifold: vector is not centered")

	// ErrAntipodal is returned by the sphere logarithm (and transport) for
	// antipodal points, where the minimizing geodesic is not unique.
	ErrAntipodal = errors.New("manifold: antipodal points have no unique geodesic")

	// ErrDegenerate is returned when a vector cannot be projected onto the
	// manifold (zero norm after centering, NaN or Inf coordinates).
	ErrDegenerate = errors.New("manifold: degenerate vector cannot be projected")

	// ErrUnknownManifold indicates an unrecognised manifold tag.
	ErrUnknownManifold = errors.New("manifold: unknown manifold")

	// ErrCoordinateType indicates that a manifold was requested with the wrong
	// coordinate type (Kendall is complex-valued, the others are real-valued).
	ErrCoordinateType = errors.New("manifold: coordinate type does not match manifold")
)

// manifoldErrorf tags err with the operation name.
func manifoldErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
