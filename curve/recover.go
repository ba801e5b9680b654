package curve

import (
	"math/big"

	"github.com/AndrewCLu/baby-jubjub/field"
)

// recoverFromX implements the shared shell of section 4.5's recover_from_x
// algorithm: try all Cofactor shifts of xInt by the prime subgroup order n,
// keep any shift whose right-hand side is a quadratic residue, and return
// both sign choices for the resulting y. rhs and build are supplied per
// representation since the curve equation and point constructor differ.
func recoverFromX[P any](xInt *big.Int, rhs func(field.BaseElt) field.BaseElt, build func(x, y field.BaseElt) P) []P {
	var results []P
	n := field.ScalarModulus()
	p := field.BaseModulus()

	for m := 0; m < field.Cofactor; m++ {
		shift := new(big.Int).Mul(big.NewInt(int64(m)), n)
		xRaw := new(big.Int).Add(xInt, shift)
		if xRaw.Cmp(p) >= 0 {
			// This shift leaves F_p; no point has this x-coordinate.
			continue
		}
		x := field.MustNew[field.Base](xRaw)

		y2 := rhs(x)
		y, err := field.Sqrt(y2)
		if err != nil {
			continue
		}
		results = append(results, build(x, y))
		results = append(results, build(x, y.Neg()))
	}
	return results
}
