package field

import (
	"math/big"

	"github.com/AndrewCLu/baby-jubjub/internal/bigutil"
)

// Scalar names the prime-order subgroup's order, F_n, where n = N/8 and N is
// the full order of the Baby Jubjub group. ScalarElt is F_n's element type,
// used for ECDSA private keys, nonces, digests and signature components.
type Scalar struct{}

func (Scalar) modulus() *big.Int { return scalarModulus }
func (Scalar) name() string      { return "F_n" }

// ScalarElt is an element of F_n, the prime subgroup order used by ECDSA.
type ScalarElt = Elt[Scalar]

// GroupOrderString is N, the full order of the Baby Jubjub group (cofactor 8
// times the prime subgroup order).
const GroupOrderString = "21888242871839275222246405745257275088614511777268538073601725287587578984328"

// Cofactor is the ratio of the full group order to the prime subgroup order.
const Cofactor = 8

var groupOrder = bigutil.InitIntFromString(GroupOrderString)

var scalarModulus = func() *big.Int {
	n := new(big.Int).Div(groupOrder, big.NewInt(Cofactor))
	return n
}()

// GroupOrder returns N, the full order of the Baby Jubjub group.
func GroupOrder() *big.Int {
	return new(big.Int).Set(groupOrder)
}

// ScalarModulus returns n = N/8, the order of the prime-order subgroup.
func ScalarModulus() *big.Int {
	return new(big.Int).Set(scalarModulus)
}
