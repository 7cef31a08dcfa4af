package types

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedHex is returned when a hex string has odd length or contains
// non-hex characters.
var ErrMalformedHex = errors.New("malformed hex string")

// HexToBytes decodes a hex string into raw bytes. A leading "0x" marker is
// stripped before decoding.
func HexToBytes(hexStr string) ([]byte, error) {
	s := strings.TrimPrefix(hexStr, "0x")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrMalformedHex, len(s))
	}
	bz, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}
	return bz, nil
}

// BytesToHex is the inverse of HexToBytes: lowercase hex, no prefix.
func BytesToHex(bz []byte) string {
	return hex.EncodeToString(bz)
}
