package encoding

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/zklight/sc-witness/types"
)

// EncodedPoint is the limb decomposition of an affine curve point.
type EncodedPoint struct {
	X types.Limbs `json:"x"`
	Y types.Limbs `json:"y"`
}

// EncodeAffine limb-encodes the affine coordinates of a point
// independently. Coordinates are expected in reduced form (below the base
// field modulus); values beyond n*k bits surface ErrOutOfRange.
func EncodeAffine(x, y *big.Int, n, k int) (*EncodedPoint, error) {
	xl, err := BigToLimbs(x, n, k)
	if err != nil {
		return nil, fmt.Errorf("x coordinate: %w", err)
	}
	yl, err := BigToLimbs(y, n, k)
	if err != nil {
		return nil, fmt.Errorf("y coordinate: %w", err)
	}
	return &EncodedPoint{X: xl, Y: yl}, nil
}

// EncodeG1 limb-encodes a decompressed G1 point.
func EncodeG1(p *bls12381.G1Affine, n, k int) (*EncodedPoint, error) {
	var x, y big.Int
	p.X.BigInt(&x)
	p.Y.BigInt(&y)
	return EncodeAffine(&x, &y, n, k)
}
