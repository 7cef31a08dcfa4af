package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	config := NewConfig()
	require.Equal(t, ModeFile, config.Mode)
	require.Equal(t, 0, config.SigMode)
	require.NotEmpty(t, config.InPath)
	require.NotEmpty(t, config.OutPath)
	require.NotEmpty(t, config.ForkVersion)
	require.NotEmpty(t, config.GenesisValidatorsRoot)
}

func TestNewConfigArgs(t *testing.T) {
	config := NewConfig(
		"--mode", "1",
		"--sig-mode", "1",
		"--in", "in.json",
		"--out", "out.json",
		"--rpc", "http://localhost:9596",
		"--period", "1105",
	)
	require.Equal(t, ModeAPI, config.Mode)
	require.Equal(t, 1, config.SigMode)
	require.Equal(t, "in.json", config.InPath)
	require.Equal(t, "out.json", config.OutPath)
	require.Equal(t, "http://localhost:9596", config.RPCEndpoint)
	require.Equal(t, uint64(1105), config.Period)
}

func TestNewConfigBadModeValue(t *testing.T) {
	// A non-numeric mode must not silently select a valid mode.
	config := NewConfig("--mode", "file")
	require.Equal(t, -1, config.Mode)

	config = NewConfig("--sig-mode", "object")
	require.Equal(t, -1, config.SigMode)
}

func TestNewConfigIgnoresPositionalArgs(t *testing.T) {
	config := NewConfig("stray")
	require.Equal(t, ModeFile, config.Mode)

	config = NewConfig("--mode", "1", "stray")
	require.Equal(t, ModeAPI, config.Mode)
}

func TestNewConfigMissingFlagValue(t *testing.T) {
	require.Panics(t, func() { NewConfig("--in") })
	require.Panics(t, func() { NewConfig("--mode", "1", "--out") })
}
