// Package curve implements the Baby Jubjub group in three birationally
// equivalent affine forms -- Short Weierstrass (SWPoint), Montgomery
// (MontPoint) and Twisted Edwards (TwEdPoint) -- plus the conversions
// between them. All three share the capability interface Point[P], letting
// package ecdsa stay generic over the chosen representation.
package curve

import (
	"github.com/AndrewCLu/baby-jubjub/field"
	"github.com/AndrewCLu/baby-jubjub/internal/bigutil"
)

// Curve parameters, reproduced bit-exact from EIP-2494.

// Short Weierstrass coefficients: y^2 = x^3 + a*x + b.
var (
	swA = field.MustNew[field.Base](bigutil.InitIntFromString("7296080957279758407415468581752425029516121466805344781232734728849116493472"))
	swB = field.MustNew[field.Base](bigutil.InitIntFromString("16213513238399463127589930181672055621146936592900766180517188641980520820846"))

	swGx = field.MustNew[field.Base](bigutil.InitIntFromString("7296080957279758407415468581752425029516121466805344781232734728858602888112"))
	swGy = field.MustNew[field.Base](bigutil.InitIntFromString("4258727773875940690362607550498304598101071202821725296872974770776423442226"))

	swBx = field.MustNew[field.Base](bigutil.InitIntFromString("14414009007687342025526645003307639786191886886413750648631138442071909631647"))
	swBy = field.MustNew[field.Base](bigutil.InitIntFromString("14577268218881899420966779687690205425227431577728659819975198491127179315626"))
)

// Montgomery coefficients: B*y^2 = x^3 + A*x^2 + x.
var (
	montA = field.FromUint64[field.Base](168698)
	montB = field.FromUint64[field.Base](1)

	// alpha = A/3, used by the SW<->Mont maps.
	montAlpha = montA.Div(field.FromUint64[field.Base](3))
	// montBInv = 1/B, used by the SW<->Mont maps.
	montBInv = montB.Inv()
)

// Twisted Edwards coefficients: A_E*x^2 + y^2 = 1 + d*x^2*y^2.
var (
	twedA = field.FromUint64[field.Base](168700)
	twedD = field.FromUint64[field.Base](168696)
)
