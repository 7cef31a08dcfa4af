package types

import (
	"encoding/json"
)

// StepData is the raw sync-committee snapshot consumed by the converter:
// compressed public keys and signature as hex strings, the participation
// bitfield expanded to 0/1 flags, and auxiliary commitment fields that flow
// through to the circuit input untouched.
type StepData struct {
	Pubkeys               []string    `json:"pubkeys"`
	Pubkeybits            []int       `json:"pubkeybits"`
	Signature             string      `json:"signature"`
	SigningRoot           string      `json:"signing_root"`
	Participation         json.Number `json:"participation"`
	SyncCommitteePoseidon string      `json:"syncCommitteePoseidon"`
}

// StepInput is the circuit-input document produced by the converter.
// PubkeysX[i]/PubkeysY[i] are the limb decompositions of the affine
// coordinates of Pubkeys[i]; the index order matches the input exactly.
// Signature holds the limb encoding of the decompressed G2 point, in the
// flattened or structured shape depending on the selected signature mode.
type StepInput struct {
	PubkeysX              []Limbs     `json:"pubkeysX"`
	PubkeysY              []Limbs     `json:"pubkeysY"`
	AggregationBits       []int       `json:"aggregationBits"`
	Signature             Signature   `json:"signature"`
	SigningRoot           []int       `json:"signingRoot"`
	Participation         json.Number `json:"participation"`
	SyncCommitteePoseidon string      `json:"syncCommitteePoseidon"`
}
