// Package ecdsa implements ECDSA keygen, sign, verify, advice-verify and
// public-key recovery generic over a Baby Jubjub point representation. Every
// function is parameterized by a curve.Representation[P], so the same code
// runs unmodified whether P is curve.SWPoint, curve.MontPoint or
// curve.TwEdPoint -- there is no runtime branching on which representation
// is in use.
//
// Nonce generation and message hashing are explicitly out of scope: digest
// and k are integers supplied by the caller, reduced mod n by this package.
package ecdsa

import (
	"math/big"

	"github.com/AndrewCLu/baby-jubjub/curve"
	"github.com/AndrewCLu/baby-jubjub/field"
)

// reduceToScalar reduces an arbitrary integer into F_n. ECDSA's inputs
// (digests, private keys, nonces) are ordinary integers with no guarantee of
// already lying in [0, n); field.New rejects out-of-range values outright
// (per the specification's decision to make field constructors strict), so
// this package -- as field's caller -- takes on the responsibility of
// pre-reducing before constructing scalar field elements.
func reduceToScalar(x *big.Int) field.ScalarElt {
	n := field.ScalarModulus()
	reduced := new(big.Int).Mod(x, n)
	return field.MustNew[field.Scalar](reduced)
}

// inRange reports whether 0 < x < n, the bound the specification requires of
// r and s both in verify and in recovery.
func inRange(x *big.Int, n *big.Int) bool {
	return x.Sign() > 0 && x.Cmp(n) < 0
}

// KeyGen derives a keypair from seed, which must satisfy 1 <= seed < n. The
// public key is seed times the representation's Base point (8*G), never the
// full-order Generator.
func KeyGen[P curve.Point[P]](rep curve.Representation[P], seed *big.Int) (priv *big.Int, pub P, err error) {
	n := field.ScalarModulus()
	if seed.Sign() <= 0 || seed.Cmp(n) >= 0 {
		var zero P
		return nil, zero, &InvalidSeedError{Seed: seed.String()}
	}

	privElt := field.MustNew[field.Scalar](seed)
	pub, err = curve.ScalarMul(rep.Base, privElt.ToBigInt())
	if err != nil {
		var zero P
		return nil, zero, err
	}
	return privElt.ToBigInt(), pub, nil
}

// Sign computes a signature (r, s) for digest under priv using the supplied
// nonce k. The caller owns nonce generation entirely: this package neither
// derives nonces deterministically nor draws them from a CSPRNG.
func Sign[P curve.Point[P]](rep curve.Representation[P], digest, priv, k *big.Int) (r, s *big.Int, err error) {
	digestElt := reduceToScalar(digest)
	privElt := reduceToScalar(priv)
	kElt := reduceToScalar(k)

	if kElt.IsZero() {
		return nil, nil, &SigningFailedError{Reason: "nonce reduces to 0 mod n"}
	}

	rPoint, err := curve.ScalarMul(rep.Base, kElt.ToBigInt())
	if err != nil {
		return nil, nil, err
	}
	rElt := reduceToScalar(rPoint.AffineX().ToBigInt())
	if rElt.IsZero() {
		return nil, nil, &SigningFailedError{Reason: "r == 0"}
	}

	sElt := digestElt.Add(rElt.Mul(privElt)).Div(kElt)
	if sElt.IsZero() {
		return nil, nil, &SigningFailedError{Reason: "s == 0"}
	}

	return rElt.ToBigInt(), sElt.ToBigInt(), nil
}

// Verify checks a signature (r, s) over digest against pub, using the
// standard ECDSA equation u1*Base + u2*pub and comparing its affine
// x-coordinate (mod n) against r. It never errors: a malformed or
// adversarially chosen (r, s) simply fails verification.
func Verify[P curve.Point[P]](rep curve.Representation[P], digest *big.Int, pub P, r, s *big.Int) bool {
	n := field.ScalarModulus()
	if !inRange(r, n) || !inRange(s, n) {
		return false
	}

	digestElt := reduceToScalar(digest)
	rElt := reduceToScalar(r)
	sElt := reduceToScalar(s)

	u1 := digestElt.Div(sElt)
	u2 := rElt.Div(sElt)

	u1Base, err := curve.ScalarMul(rep.Base, u1.ToBigInt())
	if err != nil {
		return false
	}
	u2Pub, err := curve.ScalarMul(pub, u2.ToBigInt())
	if err != nil {
		return false
	}
	candidate := u1Base.Add(u2Pub)
	if candidate.IsInfinity() {
		return false
	}

	candidateX := reduceToScalar(candidate.AffineX().ToBigInt())
	return candidateX.Equal(rElt)
}

// VerifyWithAdvice checks a signature using the efficient-ECDSA equation
// s*advice == digest*Base + r*pub, where advice is the transported signing
// point k*Base (computed in, or converted into, the same representation as
// pub).
// This replaces the u1*Base + u2*pub computation of Verify with three fixed
// scalar multiplications once the advice point is available, which is the
// whole point of carrying it across representations.
func VerifyWithAdvice[P curve.Point[P]](rep curve.Representation[P], digest *big.Int, pub P, r, s *big.Int, advice P) bool {
	n := field.ScalarModulus()
	if !inRange(r, n) || !inRange(s, n) {
		return false
	}

	digestElt := reduceToScalar(digest)
	rElt := reduceToScalar(r)
	sElt := reduceToScalar(s)

	sAdvice, err := curve.ScalarMul(advice, sElt.ToBigInt())
	if err != nil {
		return false
	}
	digestBase, err := curve.ScalarMul(rep.Base, digestElt.ToBigInt())
	if err != nil {
		return false
	}
	rPub, err := curve.ScalarMul(pub, rElt.ToBigInt())
	if err != nil {
		return false
	}

	return sAdvice.Equal(digestBase.Add(rPub))
}

// RecoverPublicKey returns every public key consistent with signature
// (r, s) over digest, i.e. every Q such that Verify(rep, digest, Q, r, s)
// holds. It never errors: malformed (r, s) simply yield an empty slice.
func RecoverPublicKey[P curve.Point[P]](rep curve.Representation[P], digest, r, s *big.Int) []P {
	n := field.ScalarModulus()
	if !inRange(r, n) || !inRange(s, n) {
		return nil
	}

	digestElt := reduceToScalar(digest)
	rElt := reduceToScalar(r)
	sElt := reduceToScalar(s)

	negDigestOverR := field.Zero[field.Scalar]().Sub(digestElt.Div(rElt))
	sOverR := sElt.Div(rElt)

	var results []P
	for _, candidate := range rep.RecoverFromX(rElt.ToBigInt()) {
		u1Base, err := curve.ScalarMul(rep.Base, negDigestOverR.ToBigInt())
		if err != nil {
			continue
		}
		u2R, err := curve.ScalarMul(candidate, sOverR.ToBigInt())
		if err != nil {
			continue
		}
		pub := u1Base.Add(u2R)
		if Verify(rep, digest, pub, r, s) {
			results = append(results, pub)
		}
	}
	return results
}
