// SPDX-License-Identifier: MIT

package manifold

// Scalar is the coordinate type of a manifold: float64 for the real
// manifolds, complex128 for Kendall's shape space.
type Scalar interface {
	float64 | complex128
}

// Manifold is the geometric-operation surface shared by the four variants.
// The interface is sealed (it carries an unexported method), so the set of
// implementations is exactly Euclidean, Sphere, Hyperbolic and Kendall.
//
// Contract shared by every method:
//   - arguments are never mutated; results are freshly allocated;
//   - shape violations return ErrEmptyVector / ErrDimensionMismatch;
//   - points and tangent vectors are validated against the tolerance of the
//     variant and rejected with ErrNotOnManifold / ErrNotTangent /
//     ErrNotCentered rather than silently corrected;
//   - valid inputs are reprojected before use and results are reprojected
//     after computation, so floating-point drift does not accumulate.
type Manifold[T Scalar] interface {
	// Kind returns the tag of the variant.
	Kind() Kind

	// Dim returns the intrinsic (tangent-space) dimension for points with
	// the given number of ambient coordinates.
	Dim(ambient int) int

	// Dot returns the inner product of two ambient vectors: Euclidean,
	// Minkowski (hyperbolic) or the real part of the Hermitian product (Kendall).
	Dot(v1, v2 []T) (float64, error)

	// Norm returns sqrt(Dot(v, v)).
	Norm(v []T) (float64, error)

	// Exp follows the geodesic from p with initial velocity v for unit time.
	Exp(p, v []T) ([]T, error)

	// Log returns the initial velocity at p1 of the minimizing geodesic to p2.
	Log(p1, p2 []T) ([]T, error)

	// Dist returns the geodesic distance Norm(Log(p1, p2)).
	Dist(p1, p2 []T) (float64, error)

	// Transport moves v, tangent at p1, along the minimizing geodesic to p2.
	Transport(p1, p2, v []T) ([]T, error)

	// CheckPoint validates that p lies on the manifold within tolerance.
	CheckPoint(p []T) error

	// CheckTangent validates p and that v lies in the tangent space at p.
	CheckTangent(p, v []T) error

	// Project maps an ambient vector onto the manifold.
	Project(y []T) ([]T, error)

	// ProjectTangent maps an ambient vector onto the tangent space at p.
	ProjectTangent(p, v []T) ([]T, error)

	sealed()
}

// Compile-time checks of the variant set.
var (
	_ Manifold[float64]    = Euclidean{}
	_ Manifold[float64]    = Sphere{}
	_ Manifold[float64]    = Hyperbolic{}
	_ Manifold[complex128] = Kendall{}
)

// Lookup returns the variant tagged by kind with coordinates of type T.
// Requesting Kendall with float64 coordinates (or a real manifold with
// complex128 coordinates) fails with ErrCoordinateType.
//
// Example:
//
//	s, err := manifold.Lookup[float64](manifold.KindSphere)
//	q, err := s.Exp([]float64{1, 0, 0}, []float64{0, math.Pi / 2, 0})
func Lookup[T Scalar](kind Kind, opts ...Option) (Manifold[T], error) {
	o := gatherOptions(opts...)

	var m any
	switch kind {
	case KindEuclidean:
		m = Euclidean{opts: o}
	case KindSphere:
		m = Sphere{opts: o}
	case KindHyperbolic:
		m = Hyperbolic{opts: o}
	case KindKendall:
		m = Kendall{opts: o}
	default:
		return nil, manifoldErrorf("Lookup", ErrUnknownManifold)
	}

	typed, ok := m.(Manifold[T])
	if !ok {
		return nil, manifoldErrorf("Lookup("+kind.String()+")", ErrCoordinateType)
	}

	return typed, nil
}

// LookupName is Lookup keyed by the manifold name ("euclidean", "sphere",
// "hyperbolic", "kendall").
func LookupName[T Scalar](name string, opts ...Option) (Manifold[T], error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}

	return Lookup[T](kind, opts...)
}

// Real is Lookup for the real-valued manifolds.
func Real(kind Kind, opts ...Option) (Manifold[float64], error) {
	return Lookup[float64](kind, opts...)
}

// NewEuclidean returns flat space with the given options.
func NewEuclidean(opts ...Option) Euclidean { return Euclidean{opts: gatherOptions(opts...)} }

// NewSphere returns the unit sphere with the given options.
func NewSphere(opts ...Option) Sphere { return Sphere{opts: gatherOptions(opts...)} }

// NewHyperbolic returns the hyperboloid model with the given options.
func NewHyperbolic(opts ...Option) Hyperbolic { return Hyperbolic{opts: gatherOptions(opts...)} }

// NewKendall returns Kendall's shape space with the given options.
func NewKendall(opts ...Option) Kendall { return Kendall{opts: gatherOptions(opts...)} }
