package curve

import (
	"math/big"

	"github.com/AndrewCLu/baby-jubjub/field"
)

// MontPoint is a Baby Jubjub point in Montgomery form: B*y^2 = x^3 + A*x^2 + x.
// Like SWPoint, the point at infinity is a distinct sum-type case rather than
// an encoding of the affine coordinates.
type MontPoint struct {
	infinity bool
	x, y     field.BaseElt
}

// InfinityMont returns the Montgomery point at infinity.
func InfinityMont() MontPoint {
	return MontPoint{infinity: true}
}

// NewMontPoint constructs a Montgomery point from affine coordinates,
// rejecting coordinates that do not satisfy the curve equation.
func NewMontPoint(x, y *big.Int) (MontPoint, error) {
	xe, err := field.New[field.Base](x)
	if err != nil {
		return MontPoint{}, err
	}
	ye, err := field.New[field.Base](y)
	if err != nil {
		return MontPoint{}, err
	}
	p := MontPoint{x: xe, y: ye}
	if !p.IsOnCurve() {
		return MontPoint{}, &NotOnCurveError{Representation: "MontPoint", X: xe, Y: ye}
	}
	return p, nil
}

// IsOnCurve implements Point[MontPoint].
func (p MontPoint) IsOnCurve() bool {
	if p.infinity {
		return true
	}
	lhs := montB.Mul(p.y).Mul(p.y)
	rhs := p.x.Mul(p.x).Mul(p.x).Add(montA.Mul(p.x).Mul(p.x)).Add(p.x)
	return lhs.Equal(rhs)
}

// IsInfinity implements Point[MontPoint].
func (p MontPoint) IsInfinity() bool {
	return p.infinity
}

// Equal implements Point[MontPoint].
func (p MontPoint) Equal(q MontPoint) bool {
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Neg implements Point[MontPoint].
func (p MontPoint) Neg() MontPoint {
	if p.infinity {
		return p
	}
	return MontPoint{x: p.x, y: p.y.Neg()}
}

// Add implements Point[MontPoint].
func (p MontPoint) Add(q MontPoint) MontPoint {
	if p.infinity {
		return q
	}
	if q.infinity {
		return p
	}
	if p.x.Equal(q.x) && p.y.Equal(q.y.Neg()) {
		return InfinityMont()
	}

	var lambda field.BaseElt
	if p.x.Equal(q.x) && p.y.Equal(q.y) {
		three := field.FromUint64[field.Base](3)
		two := field.FromUint64[field.Base](2)
		one := field.One[field.Base]()
		num := three.Mul(p.x).Mul(p.x).Add(two.Mul(montA).Mul(p.x)).Add(one)
		den := two.Mul(montB).Mul(p.y)
		lambda = num.Div(den)
	} else {
		lambda = q.y.Sub(p.y).Div(q.x.Sub(p.x))
	}

	x3 := montB.Mul(lambda).Mul(lambda).Sub(montA).Sub(p.x).Sub(q.x)
	two := field.FromUint64[field.Base](2)
	coeff := two.Mul(p.x).Add(q.x).Add(montA)
	y3 := coeff.Mul(lambda).Sub(montB.Mul(lambda).Mul(lambda).Mul(lambda)).Sub(p.y)
	return MontPoint{x: x3, y: y3}
}

// Double implements Point[MontPoint].
func (p MontPoint) Double() MontPoint {
	return p.Add(p)
}

// Identity implements Point[MontPoint].
func (p MontPoint) Identity() MontPoint {
	return InfinityMont()
}

// AffineX implements Point[MontPoint].
func (p MontPoint) AffineX() field.BaseElt {
	return p.x
}

// X, Y return the affine coordinates; meaningless at infinity.
func (p MontPoint) X() field.BaseElt { return p.x }
func (p MontPoint) Y() field.BaseElt { return p.y }

// MontGenerator is the image of SWGenerator under the SW->Mont map.
var MontGenerator = MontPoint{x: swGx.Sub(montAlpha), y: swGy}

// MontBase is the image of SWBase under the SW->Mont map.
var MontBase = MontPoint{x: swBx.Sub(montAlpha), y: swBy}

// RecoverMontFromX returns every Montgomery point (of either sign) whose
// affine x-coordinate, reduced mod n, equals xInt mod n.
func RecoverMontFromX(xInt *big.Int) []MontPoint {
	return recoverFromX(xInt, func(x field.BaseElt) field.BaseElt {
		numerator := x.Mul(x).Mul(x).Add(montA.Mul(x).Mul(x)).Add(x)
		return numerator.Mul(montBInv)
	}, func(x, y field.BaseElt) MontPoint {
		return MontPoint{x: x, y: y}
	})
}

// MontRepresentation bundles MontPoint's fixed points and helpers for
// package ecdsa.
var MontRepresentation = Representation[MontPoint]{
	Name:         "MontPoint",
	Generator:    MontGenerator,
	Base:         MontBase,
	RecoverFromX: RecoverMontFromX,
}
