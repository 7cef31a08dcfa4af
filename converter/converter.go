// Package converter assembles the circuit-input document for the
// sync-committee step circuit from a raw validator snapshot.
package converter

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	ethmath "github.com/ethereum/go-ethereum/common/math"
	"github.com/rs/zerolog"

	circuit "github.com/zklight/sc-witness/circuits"
	cfgtypes "github.com/zklight/sc-witness/converter/types"
	"github.com/zklight/sc-witness/encoding"
	"github.com/zklight/sc-witness/types"
)

var (
	// ErrInputNotFound is returned when the step-data file is absent.
	ErrInputNotFound = errors.New("step data not found")
	// ErrMalformedInput is returned when the step data is not valid JSON or
	// violates the declared schema.
	ErrMalformedInput = errors.New("malformed step data")
)

// Converter re-encodes a StepData snapshot into the StepInput document.
type Converter struct {
	dec     Decompressor
	sigMode encoding.SigMode

	// bits per limb and limb count, fixed per circuit target
	n, k int
}

// New creates a Converter using the given point decompressor and signature
// output mode. The step circuit consumes the flattened array shape; the
// structured shape exists for inspection of individual coordinates.
func New(dec Decompressor, sigMode encoding.SigMode) *Converter {
	return &Converter{
		dec:     dec,
		sigMode: sigMode,
		n:       circuit.NbLimbBits,
		k:       circuit.NbLimbs,
	}
}

// Convert runs the single-pass conversion pipeline. Any failure aborts the
// whole run; the error names the field (and index) that triggered it.
func (c *Converter) Convert(data *types.StepData) (*types.StepInput, error) {
	// Shape-check the poseidon commitment: it must be a 256-bit integer
	// (decimal or 0x hex), though it is copied verbatim.
	if data.SyncCommitteePoseidon != "" {
		if _, ok := ethmath.ParseBig256(data.SyncCommitteePoseidon); !ok {
			return nil, fmt.Errorf("syncCommitteePoseidon: %w: %q", ErrMalformedInput, data.SyncCommitteePoseidon)
		}
	}

	pubkeysX := make([]types.Limbs, len(data.Pubkeys))
	pubkeysY := make([]types.Limbs, len(data.Pubkeys))
	for i, pkHex := range data.Pubkeys {
		x, y, err := c.dec.DecompressG1(pkHex)
		if err != nil {
			return nil, fmt.Errorf("pubkeys[%d]: %w", i, err)
		}
		enc, err := encoding.EncodeAffine(x, y, c.n, c.k)
		if err != nil {
			return nil, fmt.Errorf("pubkeys[%d]: %w", i, err)
		}
		pubkeysX[i] = enc.X
		pubkeysY[i] = enc.Y
	}

	signature, err := encoding.EncodeSignatureHex(data.Signature, c.sigMode, c.n, c.k)
	if err != nil {
		return nil, fmt.Errorf("signature: %w", err)
	}

	rootBytes, err := types.HexToBytes(data.SigningRoot)
	if err != nil {
		return nil, fmt.Errorf("signing_root: %w", err)
	}
	signingRoot := make([]int, len(rootBytes))
	for i, b := range rootBytes {
		signingRoot[i] = int(b)
	}

	bits := make([]int, len(data.Pubkeybits))
	copy(bits, data.Pubkeybits)

	return &types.StepInput{
		PubkeysX:              pubkeysX,
		PubkeysY:              pubkeysY,
		AggregationBits:       bits,
		Signature:             *signature,
		SigningRoot:           signingRoot,
		Participation:         data.Participation,
		SyncCommitteePoseidon: data.SyncCommitteePoseidon,
	}, nil
}

// Run loads the snapshot from the configured source, converts it, and
// writes the circuit-input JSON in one shot. Nothing is written on failure.
func Run(config *cfgtypes.Config, logger zerolog.Logger) error {
	sigMode := encoding.SigMode(config.SigMode)
	if !sigMode.Valid() {
		return fmt.Errorf("%w: signature mode %d", encoding.ErrInvalidMode, config.SigMode)
	}

	var source cfgtypes.Source
	switch config.Mode {
	case cfgtypes.ModeFile:
		source = NewFileSource(config.InPath)
	case cfgtypes.ModeAPI:
		src, err := NewAPISource(config)
		if err != nil {
			return err
		}
		source = src
	default:
		return fmt.Errorf("%w: mode %d", encoding.ErrInvalidMode, config.Mode)
	}

	data, err := source.StepData()
	if err != nil {
		return err
	}
	logger.Info().Int("pubkeys", len(data.Pubkeys)).Msg("loaded step data")

	input, err := New(CurveDecompressor{}, sigMode).Convert(data)
	if err != nil {
		return err
	}

	blob, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal step input: %w", err)
	}
	if err := os.WriteFile(config.OutPath, blob, 0644); err != nil {
		return fmt.Errorf("failed to write step input: %w", err)
	}
	logger.Info().Str("path", config.OutPath).Msg("step input written")
	return nil
}
