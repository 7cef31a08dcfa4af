package circuit

import (
	"github.com/consensys/gnark/frontend"
)

const (
	// SyncCommitteeSize is the mainnet sync committee size.
	SyncCommitteeSize = 512

	// Non-native BLS12-381 base-field elements enter the circuit as 7 limbs
	// of 55 bits each, little-endian: 385 bits of capacity for the 381-bit
	// modulus. Changing either value requires regenerating the circuit's
	// constraint system in lockstep with the converter.
	NbLimbBits = 55
	NbLimbs    = 7
)

// StepCircuit declares the input shape of the sync-committee step circuit.
// It is the data-interchange contract between the witness converter and the
// proving system; the constraint system itself lives with the circuit
// tooling and is not defined here.
type StepCircuit struct {
	// Limb-decomposed affine coordinates of the committee public keys,
	// index-aligned with the raw snapshot (private inputs)
	PubkeysX [SyncCommitteeSize][NbLimbs]frontend.Variable
	PubkeysY [SyncCommitteeSize][NbLimbs]frontend.Variable

	// Participation flags, 0 or 1 per committee member
	AggregationBits [SyncCommitteeSize]frontend.Variable

	// Aggregate G2 signature, flattened X.A0 || X.A1 || Y.A0 || Y.A1
	Signature [4 * NbLimbs]frontend.Variable

	// Signed message root, one variable per byte
	SigningRoot [32]frontend.Variable

	// Public inputs
	Participation         frontend.Variable `gnark:",public"`
	SyncCommitteePoseidon frontend.Variable `gnark:",public"`
}

func (c *StepCircuit) Define(api frontend.API) error {
	return nil
}
