// Package field implements modular arithmetic for the two prime fields used
// throughout Baby Jubjub: the base field F_p (the field of definition of the
// curve, equal to the BN254 scalar field) and the scalar field F_n (the
// prime-order subgroup's order).
//
// Field elements are realized as a single generic type, field.Elt[T], where T
// is a zero-size marker type naming the modulus. This follows the design note
// in the specification this package implements: encoding the field choice in
// the type rather than behind a runtime pointer turns a mismatched-field
// addition into a compile error instead of a runtime FieldMismatch check.
package field

import "math/big"

// Tag identifies a modulus at the type level. The only implementations are
// Base and Scalar, both defined in this package; the unexported method seals
// the interface so no other package can introduce a third field by accident.
type Tag interface {
	modulus() *big.Int
	name() string
}

// Elt is an element of the field named by T, always held in [0, modulus).
// The zero value is the additive identity 0 and is ready to use.
type Elt[T Tag] struct {
	v big.Int
}

// New constructs an element from value, which must already satisfy
// 0 <= value < modulus. Callers that have an unreduced integer must reduce it
// themselves; New never silently reduces, per the specification's decision to
// reject out-of-range values rather than tolerate them (see DESIGN.md).
func New[T Tag](value *big.Int) (Elt[T], error) {
	var tag T
	if value.Sign() < 0 || value.Cmp(tag.modulus()) >= 0 {
		return Elt[T]{}, &ValueOutOfRangeError{Field: tag.name(), Value: new(big.Int).Set(value)}
	}
	var e Elt[T]
	e.v.Set(value)
	return e, nil
}

// MustNew is New, but panics on error. Intended for initializing package-level
// curve/field constants from literal values known to be in range.
func MustNew[T Tag](value *big.Int) Elt[T] {
	e, err := New[T](value)
	if err != nil {
		panic(err)
	}
	return e
}

// FromUint64 constructs an element from a small non-negative literal.
func FromUint64[T Tag](value uint64) Elt[T] {
	return MustNew[T](new(big.Int).SetUint64(value))
}

// Zero returns the additive identity of the field named by T.
func Zero[T Tag]() Elt[T] {
	return Elt[T]{}
}

// One returns the multiplicative identity of the field named by T.
func One[T Tag]() Elt[T] {
	return FromUint64[T](1)
}

// IsZero reports whether a is the additive identity.
func (a Elt[T]) IsZero() bool {
	return a.v.Sign() == 0
}

// IsOne reports whether a is the multiplicative identity.
func (a Elt[T]) IsOne() bool {
	return a.v.Cmp(big.NewInt(1)) == 0
}

// Add returns a + b mod the field's modulus.
func (a Elt[T]) Add(b Elt[T]) Elt[T] {
	var tag T
	var r big.Int
	r.Add(&a.v, &b.v)
	r.Mod(&r, tag.modulus())
	return Elt[T]{v: r}
}

// Sub returns a - b mod the field's modulus.
func (a Elt[T]) Sub(b Elt[T]) Elt[T] {
	var tag T
	var r big.Int
	r.Sub(&a.v, &b.v)
	r.Mod(&r, tag.modulus())
	return Elt[T]{v: r}
}

// Mul returns a * b mod the field's modulus.
func (a Elt[T]) Mul(b Elt[T]) Elt[T] {
	incrementMulCounter()
	var tag T
	var r big.Int
	r.Mul(&a.v, &b.v)
	r.Mod(&r, tag.modulus())
	return Elt[T]{v: r}
}

// Neg returns -a mod the field's modulus, i.e. modulus-a for nonzero a and 0
// for a == 0.
func (a Elt[T]) Neg() Elt[T] {
	if a.IsZero() {
		return a
	}
	var tag T
	var r big.Int
	r.Sub(tag.modulus(), &a.v)
	return Elt[T]{v: r}
}

// Inv returns a^-1 mod the field's modulus, computed via Fermat's little
// theorem (a^(modulus-2)). Inv(0) returns 0, which will fail any subsequent
// on-curve or signature invariant check, per the specification's division
// contract: the caller is responsible for b != 0.
func (a Elt[T]) Inv() Elt[T] {
	incrementInvCounter()
	var tag T
	m := tag.modulus()
	var exponent big.Int
	exponent.Sub(m, big.NewInt(2))
	var r big.Int
	r.Exp(&a.v, &exponent, m)
	return Elt[T]{v: r}
}

// Div returns a / b, i.e. a * b.Inv().
func (a Elt[T]) Div(b Elt[T]) Elt[T] {
	return a.Mul(b.Inv())
}

// Equal reports whether a and b hold the same reduced value.
func (a Elt[T]) Equal(b Elt[T]) bool {
	return a.v.Cmp(&b.v) == 0
}

// ToBigInt returns the element's value as a freshly allocated big.Int in
// [0, modulus).
func (a Elt[T]) ToBigInt() *big.Int {
	return new(big.Int).Set(&a.v)
}

// String renders the element's reduced integer value.
func (a Elt[T]) String() string {
	return a.v.String()
}
