package curve

import (
	"math/big"
	"testing"

	"github.com/AndrewCLu/baby-jubjub/field"
	"github.com/stretchr/testify/require"
)

func TestGeneratorsAndBasesAreOnCurve(t *testing.T) {
	require.True(t, SWGenerator.IsOnCurve())
	require.True(t, SWBase.IsOnCurve())
	require.True(t, MontGenerator.IsOnCurve())
	require.True(t, MontBase.IsOnCurve())
	require.True(t, TwEdGenerator.IsOnCurve())
	require.True(t, TwEdBase.IsOnCurve())
}

func TestBaseIsEightTimesGenerator(t *testing.T) {
	eight := big.NewInt(8)

	swB, err := ScalarMul(SWGenerator, eight)
	require.NoError(t, err)
	require.True(t, swB.Equal(SWBase))

	montB, err := ScalarMul(MontGenerator, eight)
	require.NoError(t, err)
	require.True(t, montB.Equal(MontBase))

	twedB, err := ScalarMul(TwEdGenerator, eight)
	require.NoError(t, err)
	require.True(t, twedB.Equal(TwEdBase))
}

func TestSubgroupOrderAnnihilatesBase(t *testing.T) {
	n := field.ScalarModulus()

	swResult, err := ScalarMul(SWBase, n)
	require.NoError(t, err)
	require.True(t, swResult.IsInfinity())

	montResult, err := ScalarMul(MontBase, n)
	require.NoError(t, err)
	require.True(t, montResult.IsInfinity())

	twedResult, err := ScalarMul(TwEdBase, n)
	require.NoError(t, err)
	require.True(t, twedResult.IsInfinity())
}

func TestSWGroupLaws(t *testing.T) {
	P := SWBase
	two, _ := ScalarMul(P, big.NewInt(2))
	require.True(t, P.Add(P).Equal(two))
	require.True(t, P.Double().Equal(two))

	require.True(t, P.Add(InfinitySW()).Equal(P))
	require.True(t, InfinitySW().Add(P).Equal(P))
	require.True(t, P.Add(P.Neg()).IsInfinity())

	Q, _ := ScalarMul(P, big.NewInt(5))
	require.True(t, P.Add(Q).Equal(Q.Add(P)))

	R, _ := ScalarMul(P, big.NewInt(3))
	sum1 := P.Add(Q).Add(R)
	sum2 := P.Add(Q.Add(R))
	require.True(t, sum1.Equal(sum2))
}

func TestMontGroupLaws(t *testing.T) {
	P := MontBase
	two, _ := ScalarMul(P, big.NewInt(2))
	require.True(t, P.Add(P).Equal(two))
	require.True(t, P.Add(InfinityMont()).Equal(P))
	require.True(t, P.Add(P.Neg()).IsInfinity())

	Q, _ := ScalarMul(P, big.NewInt(7))
	require.True(t, P.Add(Q).Equal(Q.Add(P)))
}

func TestTwEdGroupLaws(t *testing.T) {
	P := TwEdBase
	two, _ := ScalarMul(P, big.NewInt(2))
	require.True(t, P.Add(P).Equal(two))
	require.True(t, P.Add(InfinityTwEd()).Equal(P))
	require.True(t, P.Add(P.Neg()).IsInfinity())

	Q, _ := ScalarMul(P, big.NewInt(11))
	require.True(t, P.Add(Q).Equal(Q.Add(P)))
}

func TestScalarMulMatchesRepeatedAddition(t *testing.T) {
	P := TwEdBase
	acc := InfinityTwEd()
	for i := 0; i < 9; i++ {
		acc = acc.Add(P)
	}
	viaMul, err := ScalarMul(P, big.NewInt(9))
	require.NoError(t, err)
	require.True(t, acc.Equal(viaMul))
}

func TestScalarMulDistributesOverScalarAddition(t *testing.T) {
	P := SWBase
	k := big.NewInt(13)
	j := big.NewInt(29)
	kj := new(big.Int).Add(k, j)

	kP, _ := ScalarMul(P, k)
	jP, _ := ScalarMul(P, j)
	kjP, _ := ScalarMul(P, kj)
	require.True(t, kP.Add(jP).Equal(kjP))
}

func TestScalarMulDistributesOverPointAddition(t *testing.T) {
	P := SWBase
	Q, _ := ScalarMul(P, big.NewInt(3))
	k := big.NewInt(17)

	kP, _ := ScalarMul(P, k)
	kQ, _ := ScalarMul(Q, k)
	sumFirst := P.Add(Q)
	kSum, _ := ScalarMul(sumFirst, k)
	require.True(t, kSum.Equal(kP.Add(kQ)))
}

func TestScalarMulRejectsNegative(t *testing.T) {
	_, err := ScalarMul(SWBase, big.NewInt(-1))
	require.Error(t, err)
}

func TestRoundTripConversions(t *testing.T) {
	k := big.NewInt(12345)
	P, err := ScalarMul(SWBase, k)
	require.NoError(t, err)

	mont := SWToMont(P)
	back := MontToSW(mont)
	require.True(t, P.Equal(back))

	twed := MontToTwEd(mont)
	mont2 := TwEdToMont(twed)
	require.True(t, mont.Equal(mont2))

	twed2 := SWToTwEd(P)
	require.True(t, twed.Equal(twed2))

	back2 := TwEdToSW(twed)
	require.True(t, P.Equal(back2))
}

func TestConversionsPreserveInfinity(t *testing.T) {
	require.True(t, SWToMont(InfinitySW()).IsInfinity())
	require.True(t, MontToSW(InfinityMont()).IsInfinity())
	require.True(t, MontToTwEd(InfinityMont()).IsInfinity())
	require.True(t, TwEdToMont(InfinityTwEd()).IsInfinity())
	require.True(t, SWToTwEd(InfinitySW()).IsInfinity())
	require.True(t, TwEdToSW(InfinityTwEd()).IsInfinity())
}

func TestConversionsPreserveGroupLaw(t *testing.T) {
	P, _ := ScalarMul(SWBase, big.NewInt(7))
	Q, _ := ScalarMul(SWBase, big.NewInt(11))
	sum := P.Add(Q)

	require.True(t, SWToMont(sum).Equal(SWToMont(P).Add(SWToMont(Q))))
	require.True(t, SWToTwEd(sum).Equal(SWToTwEd(P).Add(SWToTwEd(Q))))

	k := big.NewInt(19)
	kP, _ := ScalarMul(P, k)
	kPMont, _ := ScalarMul(SWToMont(P), k)
	require.True(t, SWToMont(kP).Equal(kPMont))
}

func TestConstructorsRejectOffCurvePoints(t *testing.T) {
	_, err := NewSWPoint(big.NewInt(1), big.NewInt(1))
	require.Error(t, err)

	_, err = NewMontPoint(big.NewInt(1), big.NewInt(1))
	require.Error(t, err)

	_, err = NewTwEdPoint(big.NewInt(1), big.NewInt(1))
	require.Error(t, err)
}

func TestRecoverFromXContainsOriginalPoint(t *testing.T) {
	k := big.NewInt(9999)

	sw, _ := ScalarMul(SWBase, k)
	candidates := RecoverSWFromX(sw.AffineX().ToBigInt())
	require.True(t, containsSW(candidates, sw) || containsSW(candidates, sw.Neg()))

	twed, _ := ScalarMul(TwEdBase, k)
	twedCandidates := RecoverTwEdFromX(twed.AffineX().ToBigInt())
	require.True(t, containsTwEd(twedCandidates, twed) || containsTwEd(twedCandidates, twed.Neg()))
}

func containsSW(points []SWPoint, target SWPoint) bool {
	for _, p := range points {
		if p.Equal(target) {
			return true
		}
	}
	return false
}

func containsTwEd(points []TwEdPoint, target TwEdPoint) bool {
	for _, p := range points {
		if p.Equal(target) {
			return true
		}
	}
	return false
}
