package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
	bundled "github.com/jonathan/resume-parser/schemas"
)

const nameSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"}
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", nameSchema)

	tests := []struct {
		name      string
		document  string
		wantError bool
	}{
		{"valid", `{"name": "Jane"}`, false},
		{"missing field", `{"age": 30}`, true},
		{"wrong type", `{"name": 42}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jsonPath := writeFile(t, dir, tt.name+".json", tt.document)
			err := ValidateJSON(schemaPath, jsonPath)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "got %T: %v", err, err)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", nameSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"name": "Jane"}`)

	err := ValidateJSON(filepath.Join(dir, "nope.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, filepath.Join(dir, "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString_Invalid(t *testing.T) {
	err := ValidateJSONString(nameSchema, `{"person": {}}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidateJSONString_MalformedSchema(t *testing.T) {
	err := ValidateJSONString(`{ not json`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "1. name: is required")
	assert.Contains(t, msg, "2. age: must be a number")
}

func TestValidateResumeRecord(t *testing.T) {
	t.Run("empty record", func(t *testing.T) {
		assert.NoError(t, ValidateResumeRecord(types.NewResumeRecord()))
	})

	t.Run("populated record", func(t *testing.T) {
		record := &types.ResumeRecord{
			Personal:   types.Personal{Name: "Jane Doe", Email: "jane.doe@example.com"},
			Experience: []types.Experience{{Title: "Engineer", Company: "Acme", Description: []string{"Built things"}}},
			Skills:     []types.SkillGroup{{Category: "Technical Skills", Items: []string{"Go"}}},
			Languages:  []types.Language{{Language: "English", Proficiency: "Native"}},
		}
		record.FillDefaults()
		assert.NoError(t, ValidateResumeRecord(record))
	})

	t.Run("nil lists are rejected", func(t *testing.T) {
		err := ValidateResumeRecord(&types.ResumeRecord{})
		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.NotEmpty(t, validationErr.Errors)
	})
}

func TestValidateBytes(t *testing.T) {
	t.Run("missing list field", func(t *testing.T) {
		err := ValidateBytes(bundled.ExperienceBankFile, []byte(`{}`))
		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr))
	})

	t.Run("bad evidence strength", func(t *testing.T) {
		doc := `{"stories": [{"id": "story_001", "company": "Acme", "role": "Engineer", "bullets": [
			{"id": "story_001_b01", "text": "Built", "skills": [], "length_chars": 5,
			 "evidence_strength": "extreme", "risk_flags": []}]}]}`
		err := ValidateBytes(bundled.ExperienceBankFile, []byte(doc))
		require.Error(t, err)
	})

	t.Run("unknown schema", func(t *testing.T) {
		err := ValidateBytes("nope.schema.json", []byte(`{}`))
		var loadErr *SchemaLoadError
		assert.True(t, errors.As(err, &loadErr))
	})
}
