package field

import (
	"fmt"
	"math/big"
)

// errorPrefix is prepended to every error message originating in this
// package, following the teacher repository's convention of a per-package
// error prefix constant.
const errorPrefix = "babyjubjub / field: "

// ValueOutOfRangeError is returned by New when the supplied value does not
// satisfy 0 <= value < modulus.
type ValueOutOfRangeError struct {
	Field string
	Value *big.Int
}

func (e *ValueOutOfRangeError) Error() string {
	return fmt.Sprintf("%svalue %s is out of range for field %s", errorPrefix, e.Value.String(), e.Field)
}

// NoSquareRootError is returned by Sqrt when the argument is a quadratic
// non-residue modulo p.
type NoSquareRootError struct {
	Value *big.Int
}

func (e *NoSquareRootError) Error() string {
	return fmt.Sprintf("%s%s has no square root mod p", errorPrefix, e.Value.String())
}

// FieldMismatchError documents the taxonomy entry for arithmetic attempted
// between elements of different moduli. Under the type-level field-tag
// design (see field.go), Elt[Base] and Elt[Scalar] cannot be mixed in a call
// that type-checks, so this error is not raised anywhere in this package; it
// is kept so that a future dynamically-typed entry point (e.g. a reflection
// driven fixture loader) has a named error to report instead of inventing
// one ad hoc.
type FieldMismatchError struct {
	LeftField, RightField string
}

func (e *FieldMismatchError) Error() string {
	return fmt.Sprintf("%sarithmetic between field %s and field %s", errorPrefix, e.LeftField, e.RightField)
}
