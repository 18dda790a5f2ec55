// Package schemas holds the JSON Schema documents describing the artifacts
// this repository produces.
package schemas

import (
	"embed"
	"fmt"
)

const (
	// ResumeRecordFile is the schema for types.ResumeRecord.
	ResumeRecordFile = "resume_record.schema.json"
	// ExperienceBankFile is the schema for types.ExperienceBank.
	ExperienceBankFile = "experience_bank.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Load returns the raw contents of a bundled schema file.
func Load(name string) (string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("unknown schema %s: %w", name, err)
	}
	return string(data), nil
}

// Names lists the bundled schema files.
func Names() []string {
	return []string{ResumeRecordFile, ExperienceBankFile}
}
