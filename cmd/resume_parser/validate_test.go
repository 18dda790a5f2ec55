package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_Record(t *testing.T) {
	bare := writeFile(t, t.TempDir(), "record.json", `{
		"personal": {"name": "Jane Doe", "email": "", "phone": "", "location": "",
		             "website": "", "linkedin": "", "github": "", "summary": ""},
		"experience": [], "education": [], "skills": [], "projects": [],
		"certifications": [], "languages": [], "publications": [], "awards": [], "volunteer": []
	}`)
	stdout, _, err := executeCommand(t, "validate", bare)
	require.NoError(t, err)
	assert.Contains(t, stdout, "valid record")
}

func TestValidateCommand_Invalid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "record.json", `{"personal": {}}`)

	_, _, err := executeCommand(t, "validate", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "experience")
}

func TestValidateCommand_UnknownKind(t *testing.T) {
	path := writeFile(t, t.TempDir(), "record.json", `{}`)

	_, _, err := executeCommand(t, "validate", "--kind", "job", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown --kind")
}

func TestValidateCommand_MissingFile(t *testing.T) {
	_, _, err := executeCommand(t, "validate", filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}
