package encoding

import (
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/stretchr/testify/require"

	"github.com/zklight/sc-witness/types"
)

func g2GenHex(t *testing.T) string {
	t.Helper()
	_, _, _, g2 := bls12381.Generators()
	bz := g2.Bytes()
	return "0x" + hex.EncodeToString(bz[:])
}

func TestEncodeSignatureObject(t *testing.T) {
	_, _, _, g2 := bls12381.Generators()

	enc, err := EncodeSignatureObject(g2GenHex(t), nbLimbBits, nbLimbs)
	require.NoError(t, err)

	require.Zero(t, LimbsToBig(enc.X[0], nbLimbBits).Cmp(g2.X.A0.BigInt(new(big.Int))))
	require.Zero(t, LimbsToBig(enc.X[1], nbLimbBits).Cmp(g2.X.A1.BigInt(new(big.Int))))
	require.Zero(t, LimbsToBig(enc.Y[0], nbLimbBits).Cmp(g2.Y.A0.BigInt(new(big.Int))))
	require.Zero(t, LimbsToBig(enc.Y[1], nbLimbBits).Cmp(g2.Y.A1.BigInt(new(big.Int))))
}

func TestEncodeSignatureArrayFlattenOrder(t *testing.T) {
	sigHex := g2GenHex(t)

	enc, err := EncodeSignatureObject(sigHex, nbLimbBits, nbLimbs)
	require.NoError(t, err)
	flat, err := EncodeSignatureArray(sigHex, nbLimbBits, nbLimbs)
	require.NoError(t, err)

	require.Len(t, flat, 4*nbLimbs)
	require.Equal(t, enc.Flatten(), flat)

	// x before y, real before imaginary
	require.Equal(t, enc.X[0], flat[:nbLimbs])
	require.Equal(t, enc.X[1], flat[nbLimbs:2*nbLimbs])
	require.Equal(t, enc.Y[0], flat[2*nbLimbs:3*nbLimbs])
	require.Equal(t, enc.Y[1], flat[3*nbLimbs:])
}

func TestEncodeSignatureMalformedHex(t *testing.T) {
	_, err := EncodeSignatureArray("0x123", nbLimbBits, nbLimbs)
	require.ErrorIs(t, err, types.ErrMalformedHex)

	_, err = EncodeSignatureArray("0xzz", nbLimbBits, nbLimbs)
	require.ErrorIs(t, err, types.ErrMalformedHex)
}

func TestEncodeSignatureInvalidPoint(t *testing.T) {
	// Right length, not a valid compressed G2 encoding
	garbage := "0x" + strings.Repeat("ff", 96)

	_, err := EncodeSignatureArray(garbage, nbLimbBits, nbLimbs)
	require.ErrorIs(t, err, ErrDecompression)
}

func TestEncodeSignatureHexDispatch(t *testing.T) {
	sigHex := g2GenHex(t)

	flat, err := EncodeSignatureArray(sigHex, nbLimbBits, nbLimbs)
	require.NoError(t, err)

	sig, err := EncodeSignatureHex(sigHex, SigModeArray, nbLimbBits, nbLimbs)
	require.NoError(t, err)
	require.Nil(t, sig.Object)
	require.Equal(t, flat, sig.Flat)

	sig, err = EncodeSignatureHex(sigHex, SigModeObject, nbLimbBits, nbLimbs)
	require.NoError(t, err)
	require.Nil(t, sig.Flat)
	require.NotNil(t, sig.Object)
	require.Equal(t, flat, sig.Object.Flatten())

	_, err = EncodeSignatureHex(sigHex, SigMode(7), nbLimbBits, nbLimbs)
	require.ErrorIs(t, err, ErrInvalidMode)
}

func TestSigModeValid(t *testing.T) {
	require.True(t, SigModeArray.Valid())
	require.True(t, SigModeObject.Valid())
	require.False(t, SigMode(7).Valid())
}
