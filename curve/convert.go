package curve

import "github.com/AndrewCLu/baby-jubjub/field"

// This file implements the birational maps between the three representations
// (§4.4). Every map sends infinity to infinity (or to the Twisted Edwards
// identity (0,1)) and preserves the group law: phi(P+Q) = phi(P)+phi(Q) and
// phi(k*P) = k*phi(P).

// SWToMont converts a Short Weierstrass point to Montgomery form:
// (x, y) |-> (x - alpha, y), valid since Montgomery's B == 1 here.
func SWToMont(p SWPoint) MontPoint {
	if p.IsInfinity() {
		return InfinityMont()
	}
	return MontPoint{x: p.x.Sub(montAlpha), y: p.y}
}

// MontToSW converts a Montgomery point to Short Weierstrass form:
// (x, y) |-> ((x + A/3) / B, y / B).
func MontToSW(p MontPoint) SWPoint {
	if p.IsInfinity() {
		return InfinitySW()
	}
	nx := p.x.Add(montAlpha).Mul(montBInv)
	ny := p.y.Mul(montBInv)
	return SWPoint{x: nx, y: ny}
}

// MontToTwEd converts a Montgomery point to Twisted Edwards form:
// (x, y) |-> (x/y, (x-1)/(x+1)); infinity maps to the in-band identity (0,1).
func MontToTwEd(p MontPoint) TwEdPoint {
	if p.IsInfinity() {
		return InfinityTwEd()
	}
	one := field.One[field.Base]()
	nx := p.x.Div(p.y)
	ny := p.x.Sub(one).Div(p.x.Add(one))
	return TwEdPoint{x: nx, y: ny}
}

// TwEdToMont converts a Twisted Edwards point to Montgomery form:
// (x, y) |-> ((1+y)/(1-y), (1+y)/((1-y)*x)); the identity (0,1) maps to
// Montgomery infinity.
func TwEdToMont(p TwEdPoint) MontPoint {
	if p.IsInfinity() {
		return InfinityMont()
	}
	one := field.One[field.Base]()
	onePlusY := one.Add(p.y)
	oneMinusY := one.Sub(p.y)
	nx := onePlusY.Div(oneMinusY)
	ny := onePlusY.Div(oneMinusY.Mul(p.x))
	return MontPoint{x: nx, y: ny}
}

// SWToTwEd converts a Short Weierstrass point to Twisted Edwards form by
// composing through Montgomery, as specified.
func SWToTwEd(p SWPoint) TwEdPoint {
	return MontToTwEd(SWToMont(p))
}

// TwEdToSW converts a Twisted Edwards point to Short Weierstrass form by
// composing through Montgomery, as specified.
func TwEdToSW(p TwEdPoint) SWPoint {
	return MontToSW(TwEdToMont(p))
}
