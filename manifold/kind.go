// SPDX-License-Identifier: MIT

package manifold

import (
	"fmt"
	"strings"
)

// Kind tags one of the four supported manifolds. The set is closed: Lookup
// switches over it exhaustively and anything else is ErrUnknownManifold.
type Kind int

const (
	// KindEuclidean is flat space R^n.
	KindEuclidean Kind = iota + 1

	// KindSphere is the unit sphere S^n embedded in R^{n+1}.
	KindSphere

	// KindHyperbolic is hyperbolic space H^n in the hyperboloid model,
	// the upper sheet of ⟨p,p⟩_M = −1 in Minkowski space R^{1,n}.
	KindHyperbolic

	// KindKendall is Kendall's planar shape space, represented by centered
	// unit-norm complex preshape vectors of K landmarks.
	KindKendall
)

// kindNames maps tags onto their canonical lower-case names.
var kindNames = map[Kind]string{
	KindEuclidean:  "euclidean",
	KindSphere:     "sphere",
	KindHyperbolic: "hyperbolic",
	KindKendall:    "kendall",
}

// String returns the canonical name of k ("sphere", ...).
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the four supported manifolds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind maps a manifold name onto its Kind. Matching ignores case and
// surrounding whitespace.
func ParseKind(name string) (Kind, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == norm {
			return k, nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", name, ErrUnknownManifold)
}
