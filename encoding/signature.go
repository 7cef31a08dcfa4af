package encoding

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/zklight/sc-witness/types"
)

// SigMode selects the output shape of the signature encoder.
type SigMode int

const (
	// SigModeArray flattens all limb arrays into one sequence in the order
	// X.A0, X.A1, Y.A0, Y.A1 (real before imaginary, x before y).
	SigModeArray SigMode = iota
	// SigModeObject returns a structured record keyed by coordinate.
	SigModeObject
)

func (m SigMode) Valid() bool {
	return m == SigModeArray || m == SigModeObject
}

// EncodeSignatureHex encodes a compressed G2 signature hex string into the
// shape selected by mode. Unrecognized modes surface ErrInvalidMode.
func EncodeSignatureHex(sigHex string, mode SigMode, n, k int) (*types.Signature, error) {
	switch mode {
	case SigModeArray:
		flat, err := EncodeSignatureArray(sigHex, n, k)
		if err != nil {
			return nil, err
		}
		return &types.Signature{Flat: flat}, nil
	case SigModeObject:
		enc, err := EncodeSignatureObject(sigHex, n, k)
		if err != nil {
			return nil, err
		}
		return &types.Signature{Object: enc}, nil
	default:
		return nil, fmt.Errorf("%w: signature mode %d", ErrInvalidMode, int(mode))
	}
}

// EncodeSignatureObject decompresses a compressed G2 signature hex string
// and limb-encodes its four base-field components.
func EncodeSignatureObject(sigHex string, n, k int) (*types.EncodedG2, error) {
	p, err := decompressG2(sigHex)
	if err != nil {
		return nil, err
	}

	var enc types.EncodedG2
	coords := []struct {
		dst *types.Limbs
		val *big.Int
	}{
		{&enc.X[0], p.X.A0.BigInt(new(big.Int))},
		{&enc.X[1], p.X.A1.BigInt(new(big.Int))},
		{&enc.Y[0], p.Y.A0.BigInt(new(big.Int))},
		{&enc.Y[1], p.Y.A1.BigInt(new(big.Int))},
	}
	for _, c := range coords {
		limbs, err := BigToLimbs(c.val, n, k)
		if err != nil {
			return nil, err
		}
		*c.dst = limbs
	}
	return &enc, nil
}

// EncodeSignatureArray is EncodeSignatureObject flattened into one limb
// array, the shape the step circuit consumes.
func EncodeSignatureArray(sigHex string, n, k int) (types.Limbs, error) {
	enc, err := EncodeSignatureObject(sigHex, n, k)
	if err != nil {
		return nil, err
	}
	return enc.Flatten(), nil
}

// decompressG2 decodes a compressed G2 point from hex. Subgroup and
// on-curve checks are delegated to gnark-crypto; the point at infinity is
// rejected since it is never a valid aggregate signature input.
func decompressG2(sigHex string) (*bls12381.G2Affine, error) {
	bz, err := types.HexToBytes(sigHex)
	if err != nil {
		return nil, err
	}
	var p bls12381.G2Affine
	if _, err := p.SetBytes(bz); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
	}
	if p.IsInfinity() {
		return nil, fmt.Errorf("%w: point at infinity", ErrDecompression)
	}
	return &p, nil
}
