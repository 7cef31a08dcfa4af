package converter

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/zklight/sc-witness/types"
)

// FileSource implements Source by reading a raw step-data JSON file
type FileSource struct {
	FilePath string
}

// NewFileSource creates a new FileSource with the given file path
func NewFileSource(filePath string) *FileSource {
	return &FileSource{
		FilePath: filePath,
	}
}

// StepData reads and parses the step-data snapshot from the file
func (f *FileSource) StepData() (*types.StepData, error) {
	data, err := os.ReadFile(f.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, f.FilePath)
		}
		return nil, fmt.Errorf("failed to read file %s: %w", f.FilePath, err)
	}

	var step types.StepData
	if err := json.Unmarshal(data, &step); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return &step, nil
}
