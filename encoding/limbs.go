// Package encoding re-encodes BLS12-381 field elements, curve points and
// compressed signatures as fixed-width limb arrays for use as non-native
// circuit inputs.
package encoding

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/zklight/sc-witness/types"
)

var (
	// ErrNegative is returned for negative inputs; limb decomposition is
	// defined on non-negative integers only.
	ErrNegative = errors.New("negative value")
	// ErrOutOfRange is returned when a value does not fit in n*k bits.
	ErrOutOfRange = errors.New("value exceeds limb capacity")
	// ErrDecompression is returned when bytes do not decode to a valid,
	// finite curve point.
	ErrDecompression = errors.New("invalid curve point encoding")
	// ErrInvalidMode is returned for unrecognized mode selector values.
	ErrInvalidMode = errors.New("invalid signature output mode")
)

// BigToLimbs decomposes v into exactly k limbs of n bits each,
// little-endian: v == Σ limb[i] * 2^(n*i). The most significant limbs are
// zero-padded when v is small.
func BigToLimbs(v *big.Int, n, k int) (types.Limbs, error) {
	if v == nil || v.Sign() < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegative, v)
	}
	if v.BitLen() > n*k {
		return nil, fmt.Errorf("%w: %d bits > %d*%d", ErrOutOfRange, v.BitLen(), n, k)
	}

	mask := new(big.Int).Lsh(big.NewInt(1), uint(n))
	mask.Sub(mask, big.NewInt(1))

	limbs := make(types.Limbs, k)
	rest := new(big.Int).Set(v)
	for i := 0; i < k; i++ {
		limbs[i] = new(big.Int).And(rest, mask)
		rest.Rsh(rest, uint(n))
	}
	return limbs, nil
}

// LimbsToBig reassembles a little-endian limb array produced with n bits per
// limb. It is the exact inverse of BigToLimbs for any matching (n, k).
func LimbsToBig(limbs types.Limbs, n int) *big.Int {
	v := new(big.Int)
	for i := len(limbs) - 1; i >= 0; i-- {
		v.Lsh(v, uint(n))
		v.Add(v, limbs[i])
	}
	return v
}
