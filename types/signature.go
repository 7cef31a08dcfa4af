package types

import (
	"bytes"
	"encoding/json"
)

// EncodedG2 is the limb decomposition of an affine G2 point over the
// quadratic extension field. Index 0 of each coordinate pair is the real
// component (A0), index 1 the imaginary component (A1).
type EncodedG2 struct {
	X [2]Limbs `json:"x"`
	Y [2]Limbs `json:"y"`
}

// Flatten concatenates the limb arrays in the fixed order
// X.A0, X.A1, Y.A0, Y.A1.
func (e *EncodedG2) Flatten() Limbs {
	out := make(Limbs, 0, 4*len(e.X[0]))
	out = append(out, e.X[0]...)
	out = append(out, e.X[1]...)
	out = append(out, e.Y[0]...)
	out = append(out, e.Y[1]...)
	return out
}

// Signature carries the encoded aggregate signature in whichever shape the
// signature encoder produced: the flattened limb sequence the step circuit
// consumes, or the structured record keyed by coordinate.
type Signature struct {
	Flat   Limbs
	Object *EncodedG2
}

func (s Signature) MarshalJSON() ([]byte, error) {
	if s.Object != nil {
		return json.Marshal(s.Object)
	}
	return json.Marshal(s.Flat)
}

func (s *Signature) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		s.Object = new(EncodedG2)
		return json.Unmarshal(data, s.Object)
	}
	return json.Unmarshal(data, &s.Flat)
}
