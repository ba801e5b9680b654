// Package fixtures loads signature test vectors from JSON for the
// verify-fixtures CLI command and for cross-checking the library against
// externally generated vectors.
package fixtures

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
)

// Signature is one signing test vector: a keypair derived from Seed, a
// signature (R, S) over Digest, and the representation it was produced in.
// All big integers are carried as decimal strings on the wire and converted
// on load, since encoding/json has no native big.Int support.
type Signature struct {
	Seed           string `json:"seed"`
	Digest         string `json:"digest"`
	Representation string `json:"representation"`
	Priv           string `json:"priv"`
	PubX           string `json:"pub_x"`
	PubY           string `json:"pub_y"`
	R              string `json:"r"`
	S              string `json:"s"`
}

// ParsedSignature is Signature with every field converted to *big.Int and
// validated as a well-formed decimal integer.
type ParsedSignature struct {
	Seed           *big.Int
	Digest         *big.Int
	Representation string
	Priv           *big.Int
	PubX           *big.Int
	PubY           *big.Int
	R              *big.Int
	S              *big.Int
}

// Load reads a JSON array of Signature vectors from path and parses every
// entry's decimal fields into big integers.
func Load(path string) ([]ParsedSignature, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixtures: reading %s: %w", path, err)
	}

	var entries []Signature
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("fixtures: parsing %s: %w", path, err)
	}

	parsed := make([]ParsedSignature, len(entries))
	for i, e := range entries {
		p, err := e.parse()
		if err != nil {
			return nil, fmt.Errorf("fixtures: entry %d in %s: %w", i, path, err)
		}
		parsed[i] = p
	}
	return parsed, nil
}

func (s Signature) parse() (ParsedSignature, error) {
	fields := map[string]string{
		"seed": s.Seed, "digest": s.Digest, "priv": s.Priv,
		"pub_x": s.PubX, "pub_y": s.PubY, "r": s.R, "s": s.S,
	}
	values := make(map[string]*big.Int, len(fields))
	for name, str := range fields {
		v, ok := new(big.Int).SetString(str, 10)
		if !ok {
			return ParsedSignature{}, fmt.Errorf("field %q is not a decimal integer: %q", name, str)
		}
		values[name] = v
	}
	if s.Representation == "" {
		return ParsedSignature{}, fmt.Errorf("representation is required")
	}

	return ParsedSignature{
		Seed:           values["seed"],
		Digest:         values["digest"],
		Representation: s.Representation,
		Priv:           values["priv"],
		PubX:           values["pub_x"],
		PubY:           values["pub_y"],
		R:              values["r"],
		S:              values["s"],
	}, nil
}
