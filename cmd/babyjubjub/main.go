// Command babyjubjub is a CLI front end for the Baby Jubjub curve and ECDSA
// packages: it can generate keys, sign and verify digests, recover candidate
// public keys from a signature, and replay JSON test vectors.
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/AndrewCLu/baby-jubjub/curve"
	"github.com/AndrewCLu/baby-jubjub/ecdsa"
	"github.com/AndrewCLu/baby-jubjub/internal/fixtures"
	"github.com/AndrewCLu/baby-jubjub/internal/logging"
	"github.com/urfave/cli/v2"
)

var log = logging.Default()

var repFlag = &cli.StringFlag{
	Name:  "rep",
	Value: "sw",
	Usage: "curve representation to operate in: sw, mont or twed",
}

var seedFlag = &cli.StringFlag{
	Name:     "seed",
	Usage:    "decimal keygen seed, 1 <= seed < n",
	Required: true,
}

var digestFlag = &cli.StringFlag{
	Name:     "digest",
	Usage:    "decimal message digest",
	Required: true,
}

var privFlag = &cli.StringFlag{
	Name:     "priv",
	Usage:    "decimal private key",
	Required: true,
}

var nonceFlag = &cli.StringFlag{
	Name:     "k",
	Usage:    "decimal nonce",
	Required: true,
}

var pubXFlag = &cli.StringFlag{Name: "pub-x", Usage: "decimal public key x-coordinate", Required: true}
var pubYFlag = &cli.StringFlag{Name: "pub-y", Usage: "decimal public key y-coordinate", Required: true}
var rFlag = &cli.StringFlag{Name: "r", Usage: "decimal signature r", Required: true}
var sFlag = &cli.StringFlag{Name: "s", Usage: "decimal signature s", Required: true}

var fixturesPathFlag = &cli.StringFlag{
	Name:     "file",
	Usage:    "path to a JSON array of signature fixtures",
	Required: true,
}

func main() {
	app := &cli.App{
		Name:  "babyjubjub",
		Usage: "Baby Jubjub curve arithmetic and ECDSA from the command line",
		Commands: []*cli.Command{
			{
				Name:   "keygen",
				Usage:  "derive a keypair from a seed",
				Flags:  []cli.Flag{repFlag, seedFlag},
				Action: keygenCmd,
			},
			{
				Name:   "sign",
				Usage:  "sign a digest with a private key and nonce",
				Flags:  []cli.Flag{repFlag, digestFlag, privFlag, nonceFlag},
				Action: signCmd,
			},
			{
				Name:   "verify",
				Usage:  "verify a signature against a public key",
				Flags:  []cli.Flag{repFlag, digestFlag, pubXFlag, pubYFlag, rFlag, sFlag},
				Action: verifyCmd,
			},
			{
				Name:   "recover",
				Usage:  "recover candidate public keys from a signature",
				Flags:  []cli.Flag{repFlag, digestFlag, rFlag, sFlag},
				Action: recoverCmd,
			},
			{
				Name:   "verify-fixtures",
				Usage:  "replay a JSON file of signature fixtures and report failures",
				Flags:  []cli.Flag{fixturesPathFlag},
				Action: verifyFixturesCmd,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func parseDecimal(name, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%s: %q is not a decimal integer", name, s)
	}
	return v, nil
}

func keygenCmd(c *cli.Context) error {
	seed, err := parseDecimal("seed", c.String("seed"))
	if err != nil {
		return err
	}

	switch c.String("rep") {
	case "sw":
		priv, pub, err := ecdsa.KeyGen(curve.SWRepresentation, seed)
		if err != nil {
			return err
		}
		log.Info().Str("priv", priv.String()).Str("pub_x", pub.X().ToBigInt().String()).Str("pub_y", pub.Y().ToBigInt().String()).Msg("keygen")
	case "mont":
		priv, pub, err := ecdsa.KeyGen(curve.MontRepresentation, seed)
		if err != nil {
			return err
		}
		log.Info().Str("priv", priv.String()).Str("pub_x", pub.X().ToBigInt().String()).Str("pub_y", pub.Y().ToBigInt().String()).Msg("keygen")
	case "twed":
		priv, pub, err := ecdsa.KeyGen(curve.TwEdRepresentation, seed)
		if err != nil {
			return err
		}
		log.Info().Str("priv", priv.String()).Str("pub_x", pub.X().ToBigInt().String()).Str("pub_y", pub.Y().ToBigInt().String()).Msg("keygen")
	default:
		return unknownRepresentation(c.String("rep"))
	}
	return nil
}

func signCmd(c *cli.Context) error {
	digest, err := parseDecimal("digest", c.String("digest"))
	if err != nil {
		return err
	}
	priv, err := parseDecimal("priv", c.String("priv"))
	if err != nil {
		return err
	}
	k, err := parseDecimal("k", c.String("k"))
	if err != nil {
		return err
	}

	var r, s *big.Int
	switch c.String("rep") {
	case "sw":
		r, s, err = ecdsa.Sign(curve.SWRepresentation, digest, priv, k)
	case "mont":
		r, s, err = ecdsa.Sign(curve.MontRepresentation, digest, priv, k)
	case "twed":
		r, s, err = ecdsa.Sign(curve.TwEdRepresentation, digest, priv, k)
	default:
		return unknownRepresentation(c.String("rep"))
	}
	if err != nil {
		return err
	}
	log.Info().Str("r", r.String()).Str("s", s.String()).Msg("sign")
	return nil
}

func verifyCmd(c *cli.Context) error {
	digest, pubX, pubY, r, s, err := parseVerifyArgs(c)
	if err != nil {
		return err
	}

	var ok bool
	switch c.String("rep") {
	case "sw":
		pub, perr := curve.NewSWPoint(pubX, pubY)
		if perr != nil {
			return perr
		}
		ok = ecdsa.Verify(curve.SWRepresentation, digest, pub, r, s)
	case "mont":
		pub, perr := curve.NewMontPoint(pubX, pubY)
		if perr != nil {
			return perr
		}
		ok = ecdsa.Verify(curve.MontRepresentation, digest, pub, r, s)
	case "twed":
		pub, perr := curve.NewTwEdPoint(pubX, pubY)
		if perr != nil {
			return perr
		}
		ok = ecdsa.Verify(curve.TwEdRepresentation, digest, pub, r, s)
	default:
		return unknownRepresentation(c.String("rep"))
	}

	logVerifyResult(ok)
	return nil
}

func recoverCmd(c *cli.Context) error {
	digest, err := parseDecimal("digest", c.String("digest"))
	if err != nil {
		return err
	}
	r, err := parseDecimal("r", c.String("r"))
	if err != nil {
		return err
	}
	s, err := parseDecimal("s", c.String("s"))
	if err != nil {
		return err
	}

	var coords [][2]*big.Int
	switch c.String("rep") {
	case "sw":
		for _, p := range ecdsa.RecoverPublicKey(curve.SWRepresentation, digest, r, s) {
			coords = append(coords, [2]*big.Int{p.X().ToBigInt(), p.Y().ToBigInt()})
		}
	case "mont":
		for _, p := range ecdsa.RecoverPublicKey(curve.MontRepresentation, digest, r, s) {
			coords = append(coords, [2]*big.Int{p.X().ToBigInt(), p.Y().ToBigInt()})
		}
	case "twed":
		for _, p := range ecdsa.RecoverPublicKey(curve.TwEdRepresentation, digest, r, s) {
			coords = append(coords, [2]*big.Int{p.X().ToBigInt(), p.Y().ToBigInt()})
		}
	default:
		return unknownRepresentation(c.String("rep"))
	}

	for i, xy := range coords {
		log.Info().Int("candidate", i).Str("x", xy[0].String()).Str("y", xy[1].String()).Msg("recovered public key")
	}
	if len(coords) == 0 {
		log.Warn().Msg("no candidate public keys recovered")
	}
	return nil
}

func verifyFixturesCmd(c *cli.Context) error {
	vectors, err := fixtures.Load(c.String("file"))
	if err != nil {
		return err
	}

	failures := 0
	for i, v := range vectors {
		ok, verr := verifyFixture(v)
		if verr != nil {
			log.Error().Int("index", i).Err(verr).Msg("fixture error")
			failures++
			continue
		}
		if !ok {
			log.Error().Int("index", i).Str("representation", v.Representation).Msg("fixture failed verification")
			failures++
			continue
		}
		log.Info().Int("index", i).Str("representation", v.Representation).Msg("fixture verified")
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d fixtures failed", failures, len(vectors))
	}
	return nil
}

// verifyFixture dispatches on the representation tag as documented for the
// fixture file format ("SWPoint", "MontPoint", "TwEdPoint"), not the --rep
// flag's shorthand accepted by the other subcommands.
func verifyFixture(v fixtures.ParsedSignature) (bool, error) {
	switch v.Representation {
	case "SWPoint":
		pub, err := curve.NewSWPoint(v.PubX, v.PubY)
		if err != nil {
			return false, err
		}
		return ecdsa.Verify(curve.SWRepresentation, v.Digest, pub, v.R, v.S), nil
	case "MontPoint":
		pub, err := curve.NewMontPoint(v.PubX, v.PubY)
		if err != nil {
			return false, err
		}
		return ecdsa.Verify(curve.MontRepresentation, v.Digest, pub, v.R, v.S), nil
	case "TwEdPoint":
		pub, err := curve.NewTwEdPoint(v.PubX, v.PubY)
		if err != nil {
			return false, err
		}
		return ecdsa.Verify(curve.TwEdRepresentation, v.Digest, pub, v.R, v.S), nil
	default:
		return false, fmt.Errorf("unknown representation %q: want SWPoint, MontPoint or TwEdPoint", v.Representation)
	}
}

func parseVerifyArgs(c *cli.Context) (digest, pubX, pubY, r, s *big.Int, err error) {
	if digest, err = parseDecimal("digest", c.String("digest")); err != nil {
		return
	}
	if pubX, err = parseDecimal("pub-x", c.String("pub-x")); err != nil {
		return
	}
	if pubY, err = parseDecimal("pub-y", c.String("pub-y")); err != nil {
		return
	}
	if r, err = parseDecimal("r", c.String("r")); err != nil {
		return
	}
	if s, err = parseDecimal("s", c.String("s")); err != nil {
		return
	}
	return
}

func logVerifyResult(ok bool) {
	if ok {
		log.Info().Bool("valid", true).Msg("verify")
		return
	}
	log.Warn().Bool("valid", false).Msg("verify")
}

func unknownRepresentation(name string) error {
	return fmt.Errorf("unknown representation %q: want sw, mont or twed", name)
}
