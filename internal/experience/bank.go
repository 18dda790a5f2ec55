// Package experience converts parsed résumés into the experience-bank format
// consumed by downstream tailoring tools, and normalizes existing banks.
package experience

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-parser/internal/types"
)

// LoadExperienceBank reads and decodes the bank stored at path.
func LoadExperienceBank(path string) (*types.ExperienceBank, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "failed to read file", Cause: err}
	}

	var bank types.ExperienceBank
	if err := json.Unmarshal(content, &bank); err != nil {
		return nil, &LoadError{Path: path, Reason: "failed to unmarshal JSON", Cause: err}
	}
	return &bank, nil
}

// SaveExperienceBank writes bank to path as indented JSON.
func SaveExperienceBank(path string, bank *types.ExperienceBank) error {
	content, err := json.MarshalIndent(bank, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal experience bank: %w", err)
	}
	if err := os.WriteFile(path, append(content, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
