package curve

import (
	"testing"

	"github.com/AndrewCLu/baby-jubjub/field"
	"github.com/stretchr/testify/require"
)

// TestParameterRelations checks the six curve-parameter identities of §3
// that tie the Short Weierstrass, Montgomery and Twisted Edwards
// coefficients together.
func TestParameterRelations(t *testing.T) {
	one := field.One[field.Base]()
	two := field.FromUint64[field.Base](2)
	three := field.FromUint64[field.Base](3)
	four := field.FromUint64[field.Base](4)
	nine := field.FromUint64[field.Base](9)

	// (A+2)/B = A_E
	require.True(t, montA.Add(two).Div(montB).Equal(twedA))

	// (A-2)/B = d
	require.True(t, montA.Sub(two).Div(montB).Equal(twedD))

	// 2(A_E+d)/(A_E-d) = A
	lhs := two.Mul(twedA.Add(twedD)).Div(twedA.Sub(twedD))
	require.True(t, lhs.Equal(montA))

	// 4/(A_E-d) = B
	require.True(t, four.Div(twedA.Sub(twedD)).Equal(montB))

	// (1/B^2)(1 - A^2/3) = a
	invBSq := montB.Inv().Mul(montB.Inv())
	rhs := invBSq.Mul(one.Sub(montA.Mul(montA).Div(three)))
	require.True(t, rhs.Equal(swA))

	// (A/(3B^3))(2A^2/9 - 1) = b
	threeBCubed := three.Mul(montB).Mul(montB).Mul(montB)
	term := two.Mul(montA).Mul(montA).Div(nine).Sub(one)
	rhs2 := montA.Div(threeBCubed).Mul(term)
	require.True(t, rhs2.Equal(swB))
}
