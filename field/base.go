package field

import (
	"math/big"

	"github.com/AndrewCLu/baby-jubjub/internal/bigutil"
)

// Base names the field of definition of the Baby Jubjub curve, F_p, where p
// is the BN254 scalar field prime. BaseElt is F_p's element type.
type Base struct{}

func (Base) modulus() *big.Int { return baseModulus }
func (Base) name() string      { return "F_p" }

// BaseElt is an element of F_p, the field over which all three Baby Jubjub
// representations' affine coordinates live.
type BaseElt = Elt[Base]

// BaseModulusString is the decimal string form of p, reproduced here for
// documentation; BaseModulus below is the parsed value actually used.
const BaseModulusString = "21888242871839275222246405745257275088548364400416034343698204186575808495617"

var baseModulus = bigutil.InitIntFromString(BaseModulusString)

// BaseModulus returns p, the modulus of F_p.
func BaseModulus() *big.Int {
	return new(big.Int).Set(baseModulus)
}
