package curve

import (
	"math/big"

	"github.com/AndrewCLu/baby-jubjub/field"
)

// Point is the capability interface shared by SWPoint, MontPoint and
// TwEdPoint. It is self-referential (P appears both as the receiver and in
// argument/return position) so that generic code such as ScalarMul and all of
// package ecdsa is monomorphized per representation at compile time, with no
// runtime branching on a form tag.
type Point[P any] interface {
	// IsOnCurve reports whether the point satisfies its form's curve
	// equation. True for every point this package can construct; exposed
	// mainly so callers can re-validate after manual coordinate surgery.
	IsOnCurve() bool
	// IsInfinity reports whether the point is the group identity.
	IsInfinity() bool
	// Equal reports whether two points of the same representation are the
	// same group element.
	Equal(other P) bool
	// Neg returns the additive inverse.
	Neg() P
	// Add returns the group sum of the receiver and other.
	Add(other P) P
	// Double returns the receiver added to itself.
	Double() P
	// Identity returns the group identity (the receiver's value is
	// irrelevant; Identity exists as a method only so generic code can reach
	// a representation's identity element without a separate constructor
	// parameter).
	Identity() P
	// AffineX returns the affine x-coordinate used by ECDSA's r value.
	AffineX() field.BaseElt
}

// ScalarMul computes k*p for k >= 0 using the iterative double-and-add loop
// recommended by the specification in place of the doubly-recursive
// reference algorithm: it is observably equivalent and avoids recursion
// depth proportional to log(k) + popcount(k). A negative k is rejected with
// InvalidScalarError.
func ScalarMul[P Point[P]](p P, k *big.Int) (P, error) {
	if k.Sign() < 0 {
		var zero P
		return zero, &InvalidScalarError{Scalar: k.String()}
	}

	acc := p.Identity()
	base := p
	kk := new(big.Int).Set(k)
	for kk.Sign() > 0 {
		if kk.Bit(0) == 1 {
			acc = acc.Add(base)
		}
		base = base.Double()
		kk.Rsh(kk, 1)
	}
	return acc, nil
}

// Representation bundles the fixed points and helpers that package ecdsa
// needs for a given point type P, playing the role of the spec's "R" type
// parameter to every ECDSA operation.
type Representation[P Point[P]] struct {
	Name string
	// Generator is the fixed full-order generator G.
	Generator P
	// Base is 8*G, the fixed generator of the prime-order subgroup; all
	// ECDSA operations scalar-multiply against Base, never Generator.
	Base P
	// RecoverFromX returns every curve point (of either sign) whose affine
	// x-coordinate, reduced mod n, equals x mod n.
	RecoverFromX func(x *big.Int) []P
}
