// Package bigutil collects the small big.Int helpers shared by field and
// curve for turning string constants into parsed values at package-init
// time.
package bigutil

import "math/big"

// InitIntFromString parses input into a *big.Int, accepting any base
// *big.Int.SetString(s, 0) recognizes (decimal, or 0x/0o/0b prefixed).
// It panics on a malformed string: the only callers are package-level var
// initializers for curve and field constants, where a bad literal is a
// programming error caught at import time, not a runtime condition to
// recover from.
func InitIntFromString(input string) *big.Int {
	v, ok := new(big.Int).SetString(input, 0)
	if !ok {
		panic("bigutil: string does not represent a valid integer: " + input)
	}
	return v
}
