package encoding

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/stretchr/testify/require"
)

const (
	nbLimbBits = 55
	nbLimbs    = 7
)

func TestBigToLimbsRoundTrip(t *testing.T) {
	modulus := fp.Modulus()

	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(5),
		new(big.Int).Lsh(big.NewInt(1), 55),
		new(big.Int).Sub(modulus, big.NewInt(1)),
		new(big.Int).Set(modulus),
	}

	for _, v := range values {
		limbs, err := BigToLimbs(v, nbLimbBits, nbLimbs)
		require.NoError(t, err, "failed to encode %s", v)
		require.Len(t, limbs, nbLimbs)

		got := LimbsToBig(limbs, nbLimbBits)
		require.Zero(t, got.Cmp(v), "round trip mismatch for %s: got %s", v, got)
	}
}

func TestBigToLimbsSmallValue(t *testing.T) {
	limbs, err := BigToLimbs(big.NewInt(5), nbLimbBits, nbLimbs)
	require.NoError(t, err)

	require.Equal(t, int64(5), limbs[0].Int64())
	for i := 1; i < nbLimbs; i++ {
		require.Zero(t, limbs[i].Sign(), "limb %d should be zero-padded", i)
	}
}

func TestBigToLimbsCapacityBoundary(t *testing.T) {
	capacity := new(big.Int).Lsh(big.NewInt(1), nbLimbBits*nbLimbs)

	// 2^(n*k) - 1 is the largest representable value
	max := new(big.Int).Sub(capacity, big.NewInt(1))
	limbs, err := BigToLimbs(max, nbLimbBits, nbLimbs)
	require.NoError(t, err)
	require.Zero(t, LimbsToBig(limbs, nbLimbBits).Cmp(max))

	// 2^(n*k) does not fit
	_, err = BigToLimbs(capacity, nbLimbBits, nbLimbs)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestBigToLimbsNegative(t *testing.T) {
	_, err := BigToLimbs(big.NewInt(-1), nbLimbBits, nbLimbs)
	require.ErrorIs(t, err, ErrNegative)

	_, err = BigToLimbs(nil, nbLimbBits, nbLimbs)
	require.ErrorIs(t, err, ErrNegative)
}

func TestBigToLimbsWidth(t *testing.T) {
	limbBound := new(big.Int).Lsh(big.NewInt(1), nbLimbBits)

	v := new(big.Int).Sub(fp.Modulus(), big.NewInt(1))
	limbs, err := BigToLimbs(v, nbLimbBits, nbLimbs)
	require.NoError(t, err)

	for i, l := range limbs {
		require.True(t, l.Sign() >= 0, "limb %d is negative", i)
		require.True(t, l.Cmp(limbBound) < 0, "limb %d exceeds %d bits: %s", i, nbLimbBits, l)
	}
}

func TestLimbCapacityCoversModulus(t *testing.T) {
	// 55*7 = 385 bits must cover the 381-bit base field modulus
	require.GreaterOrEqual(t, nbLimbBits*nbLimbs, fp.Modulus().BitLen())
}
