package types

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// Limbs is a little-endian multi-word decomposition of a field element.
// Index 0 is the least significant limb.
//
// Limbs serialize as JSON arrays of decimal strings: a 55-bit limb does not
// fit the float64-exact integer range, so emitting native JSON numbers would
// lose precision in downstream witness tooling.
type Limbs []*big.Int

func (ls Limbs) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, len(ls)*20+2)
	out = append(out, '[')
	for i, l := range ls {
		if i > 0 {
			out = append(out, ',')
		}
		if l == nil || l.Sign() < 0 {
			return nil, fmt.Errorf("limb %d is not a non-negative integer", i)
		}
		out = append(out, '"')
		out = append(out, l.String()...)
		out = append(out, '"')
	}
	out = append(out, ']')
	return out, nil
}

func (ls *Limbs) UnmarshalJSON(data []byte) error {
	var strs []string
	if err := json.Unmarshal(data, &strs); err != nil {
		return err
	}
	out := make(Limbs, len(strs))
	for i, s := range strs {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return fmt.Errorf("limb %d: invalid decimal string %q", i, s)
		}
		out[i] = v
	}
	*ls = out
	return nil
}
