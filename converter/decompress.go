package converter

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/zklight/sc-witness/encoding"
	"github.com/zklight/sc-witness/types"
)

// Decompressor turns a compressed hex-encoded public key into affine
// coordinates. Curve validity is the implementation's concern; the
// conversion pipeline stays testable with synthetic points.
type Decompressor interface {
	DecompressG1(pubkeyHex string) (x, y *big.Int, err error)
}

// CurveDecompressor implements Decompressor with gnark-crypto. SetBytes
// performs the on-curve and subgroup checks; the point at infinity is
// rejected since it has no affine encoding.
type CurveDecompressor struct{}

func (CurveDecompressor) DecompressG1(pubkeyHex string) (*big.Int, *big.Int, error) {
	bz, err := types.HexToBytes(pubkeyHex)
	if err != nil {
		return nil, nil, err
	}
	var p bls12381.G1Affine
	if _, err := p.SetBytes(bz); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", encoding.ErrDecompression, err)
	}
	if p.IsInfinity() {
		return nil, nil, fmt.Errorf("%w: point at infinity", encoding.ErrDecompression)
	}
	return p.X.BigInt(new(big.Int)), p.Y.BigInt(new(big.Int)), nil
}
