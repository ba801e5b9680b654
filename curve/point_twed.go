package curve

import (
	"math/big"

	"github.com/AndrewCLu/baby-jubjub/field"
)

// TwEdPoint is a Baby Jubjub point in Twisted Edwards form:
// A_E*x^2 + y^2 = 1 + d*x^2*y^2. Unlike SWPoint and MontPoint, the identity
// (0, 1) is an ordinary affine point -- no infinity sentinel is needed, and
// the addition law below has no case split.
type TwEdPoint struct {
	x, y field.BaseElt
}

// NewTwEdPoint constructs a Twisted Edwards point from affine coordinates,
// rejecting coordinates that do not satisfy the curve equation.
func NewTwEdPoint(x, y *big.Int) (TwEdPoint, error) {
	xe, err := field.New[field.Base](x)
	if err != nil {
		return TwEdPoint{}, err
	}
	ye, err := field.New[field.Base](y)
	if err != nil {
		return TwEdPoint{}, err
	}
	p := TwEdPoint{x: xe, y: ye}
	if !p.IsOnCurve() {
		return TwEdPoint{}, &NotOnCurveError{Representation: "TwEdPoint", X: xe, Y: ye}
	}
	return p, nil
}

// InfinityTwEd returns the Twisted Edwards group identity (0, 1). The name
// mirrors InfinitySW/InfinityMont for symmetry across representations, even
// though this identity is an ordinary affine point, not a sentinel.
func InfinityTwEd() TwEdPoint {
	return TwEdPoint{x: field.Zero[field.Base](), y: field.One[field.Base]()}
}

// IsOnCurve implements Point[TwEdPoint].
func (p TwEdPoint) IsOnCurve() bool {
	lhs := twedA.Mul(p.x).Mul(p.x).Add(p.y.Mul(p.y))
	rhs := field.One[field.Base]().Add(twedD.Mul(p.x).Mul(p.x).Mul(p.y).Mul(p.y))
	return lhs.Equal(rhs)
}

// IsInfinity implements Point[TwEdPoint]: true iff the point is (0, 1).
func (p TwEdPoint) IsInfinity() bool {
	return p.x.IsZero() && p.y.IsOne()
}

// Equal implements Point[TwEdPoint].
func (p TwEdPoint) Equal(q TwEdPoint) bool {
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Neg implements Point[TwEdPoint].
func (p TwEdPoint) Neg() TwEdPoint {
	return TwEdPoint{x: p.x.Neg(), y: p.y}
}

// Add implements Point[TwEdPoint] using the complete twisted Edwards
// addition law; the identity arises naturally, with no case split for
// infinity or self-addition.
func (p TwEdPoint) Add(q TwEdPoint) TwEdPoint {
	one := field.One[field.Base]()
	x1y2 := p.x.Mul(q.y)
	y1x2 := p.y.Mul(q.x)
	y1y2 := p.y.Mul(q.y)
	x1x2 := p.x.Mul(q.x)
	dx1x2y1y2 := twedD.Mul(x1x2).Mul(y1y2)

	x3 := x1y2.Add(y1x2).Div(one.Add(dx1x2y1y2))
	y3 := y1y2.Sub(twedA.Mul(x1x2)).Div(one.Sub(dx1x2y1y2))
	return TwEdPoint{x: x3, y: y3}
}

// Double implements Point[TwEdPoint].
func (p TwEdPoint) Double() TwEdPoint {
	return p.Add(p)
}

// Identity implements Point[TwEdPoint].
func (p TwEdPoint) Identity() TwEdPoint {
	return InfinityTwEd()
}

// AffineX implements Point[TwEdPoint].
func (p TwEdPoint) AffineX() field.BaseElt {
	return p.x
}

// X, Y return the affine coordinates.
func (p TwEdPoint) X() field.BaseElt { return p.x }
func (p TwEdPoint) Y() field.BaseElt { return p.y }

// TwEdGenerator is the image of SWGenerator under the SW->Mont->TwEd map.
var TwEdGenerator = MontToTwEd(MontGenerator)

// TwEdBase is the image of SWBase under the SW->Mont->TwEd map.
var TwEdBase = MontToTwEd(MontBase)

// RecoverTwEdFromX returns every Twisted Edwards point (of either sign) whose
// affine x-coordinate, reduced mod n, equals xInt mod n.
func RecoverTwEdFromX(xInt *big.Int) []TwEdPoint {
	return recoverFromX(xInt, func(x field.BaseElt) field.BaseElt {
		numerator := twedA.Mul(x).Mul(x).Sub(field.One[field.Base]())
		denominator := twedD.Mul(x).Mul(x).Sub(field.One[field.Base]())
		return numerator.Div(denominator)
	}, func(x, y field.BaseElt) TwEdPoint {
		return TwEdPoint{x: x, y: y}
	})
}

// TwEdRepresentation bundles TwEdPoint's fixed points and helpers for
// package ecdsa.
var TwEdRepresentation = Representation[TwEdPoint]{
	Name:         "TwEdPoint",
	Generator:    TwEdGenerator,
	Base:         TwEdBase,
	RecoverFromX: RecoverTwEdFromX,
}
