package curve

import (
	"fmt"

	"github.com/AndrewCLu/baby-jubjub/field"
)

const errorPrefix = "babyjubjub / curve: "

// NotOnCurveError is returned by a point constructor when the supplied
// coordinates do not satisfy the representation's curve equation. This is
// always treated as fatal by this package's constructors: an off-curve point
// indicates a programming bug or corrupted input, never an adversarial
// condition that should be tolerated.
type NotOnCurveError struct {
	Representation string
	X, Y           field.BaseElt
}

func (e *NotOnCurveError) Error() string {
	return fmt.Sprintf("%spoint (%s, %s) is not on the %s curve", errorPrefix, e.X.String(), e.Y.String(), e.Representation)
}

// FormMismatchError documents the taxonomy entry for addition or comparison
// of points from different representations. Because Point[P] is a
// self-referential generic interface, SWPoint, MontPoint and TwEdPoint can
// never be mixed in a call that compiles, so -- like field.FieldMismatchError
// -- this error is never actually raised; it is retained for API
// completeness and so the error taxonomy documented in the specification has
// a concrete type to point to.
type FormMismatchError struct {
	Left, Right string
}

func (e *FormMismatchError) Error() string {
	return fmt.Sprintf("%scannot combine a %s point with a %s point", errorPrefix, e.Left, e.Right)
}

// InvalidScalarError is returned by ScalarMul when given a negative scalar.
type InvalidScalarError struct {
	Scalar string
}

func (e *InvalidScalarError) Error() string {
	return fmt.Sprintf("%sscalar %s is negative", errorPrefix, e.Scalar)
}
