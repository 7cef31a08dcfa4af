package types

import (
	"fmt"
	"os"
	"strconv"

	"github.com/zklight/sc-witness/types"
)

// Source modes selectable by the numeric --mode parameter.
const (
	ModeFile = 0
	ModeAPI  = 1
)

// Config holds the converter configuration
type Config struct {
	// Mode selects the step-data source: 0 reads InPath, 1 derives the
	// snapshot from a beacon node light client update
	Mode int

	// SigMode selects the signature output shape (see encoding.SigMode):
	// 0 emits the flattened limb array the step circuit consumes, 1 the
	// structured per-coordinate record
	SigMode int

	InPath  string
	OutPath string

	// RPCEndpoint and Period are used when Mode is ModeAPI
	RPCEndpoint string
	Period      uint64

	// Domain parameters for signing-root derivation (ModeAPI only)
	ForkVersion           string
	GenesisValidatorsRoot string
}

func NewConfig(args ...string) *Config {
	// Parse configuration from environment variables or command line args
	config := Config{
		Mode:                  ModeFile,
		InPath:                getEnv("STEP_DATA", "data/step.json"),
		OutPath:               getEnv("STEP_INPUT", "data/step_input.json"),
		RPCEndpoint:           getEnv("RPC_ENDPOINT", "https://lodestar-sepolia.chainsafe.io/"),
		Period:                0,
		ForkVersion:           getEnv("FORK_VERSION", "0x90000075"),
		GenesisValidatorsRoot: getEnv("GENESIS_VALIDATORS_ROOT", "0xd8ea171f3c94aea21ebc42a1ed61052acf3f9209c00e4efbaaddac09ed9b8078"),
	}

	for i := 0; i < len(args); i++ {
		flag := args[i]
		switch flag {
		case "--mode", "--sig-mode", "--in", "--out", "--rpc", "--period", "--fork-version", "--genesis-root":
		default:
			// not a recognized flag
			continue
		}
		if len(args) <= i+1 {
			panic(fmt.Errorf("missing argument for %s", flag))
		}
		value := args[i+1]
		i++

		switch flag {
		case "--mode":
			config.Mode = parseMode(value)
		case "--sig-mode":
			config.SigMode = parseMode(value)
		case "--in":
			config.InPath = value
		case "--out":
			config.OutPath = value
		case "--rpc":
			config.RPCEndpoint = value
		case "--period":
			config.Period, _ = strconv.ParseUint(value, 10, 64)
		case "--fork-version":
			config.ForkVersion = value
		case "--genesis-root":
			config.GenesisValidatorsRoot = value
		}
	}

	return &config
}

// parseMode maps non-numeric mode values to an out-of-range selector, so
// the run fails with an invalid-mode error instead of silently falling back
// to the default mode.
func parseMode(value string) int {
	mode, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}
	return mode
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Source defines the interface for loading the raw step-data snapshot
type Source interface {
	StepData() (*types.StepData, error)
}
