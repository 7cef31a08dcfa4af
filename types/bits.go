package types

// ParseSyncCommitteeBits expands a sync committee participation bitfield
// into 512 booleans, LSB-first within each byte.
func ParseSyncCommitteeBits(bitsBytes []byte) []bool {
	bits := make([]bool, 512)
	for i := 0; i < 512; i++ {
		byteIndex := i / 8
		bitIndex := i % 8
		if byteIndex < len(bitsBytes) {
			bits[i] = (bitsBytes[byteIndex] & (1 << bitIndex)) != 0
		}
	}
	return bits
}

// BitsToFlags converts a boolean participation vector to the 0/1 flag array
// carried in StepData.
func BitsToFlags(bits []bool) []int {
	flags := make([]int, len(bits))
	for i, b := range bits {
		if b {
			flags[i] = 1
		}
	}
	return flags
}
