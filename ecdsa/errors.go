package ecdsa

import "fmt"

const errorPrefix = "babyjubjub / ecdsa: "

// SigningFailedError is returned by Sign when the chosen nonce reduces to 0
// mod n or produces r == 0 or s == 0. The caller must retry with a fresh nonce; this package
// never generates or retries nonces itself (see DESIGN.md: nonce derivation
// is explicitly out of scope).
type SigningFailedError struct {
	Reason string
}

func (e *SigningFailedError) Error() string {
	return fmt.Sprintf("%ssigning failed: %s; retry with a different nonce", errorPrefix, e.Reason)
}

// InvalidSeedError is returned by KeyGen when the seed does not satisfy
// 1 <= seed < n.
type InvalidSeedError struct {
	Seed string
}

func (e *InvalidSeedError) Error() string {
	return fmt.Sprintf("%sseed %s must satisfy 1 <= seed < n", errorPrefix, e.Seed)
}
