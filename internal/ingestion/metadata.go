package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// Metadata describes one parsed upload. It travels beside the résumé record,
// never inside it.
type Metadata struct {
	Filename     string `json:"filename"`
	Format       string `json:"format"`
	DetectedMIME string `json:"detected_mime,omitempty"`
	SizeBytes    int    `json:"size_bytes"`
	Hash         string `json:"hash"` // SHA256 hex digest of the uploaded bytes
	Pages        int    `json:"pages,omitempty"`
	Chars        int    `json:"chars"`
	Lines        int    `json:"lines"`
	Blocks       int    `json:"blocks"`
}

// NewMetadata creates Metadata for the raw upload bytes
func NewMetadata(filename string, data []byte) *Metadata {
	return &Metadata{
		Filename:  filename,
		SizeBytes: len(data),
		Hash:      computeHash(data),
	}
}

// SetText records size statistics of the cleaned text
func (m *Metadata) SetText(text string, blocks int) {
	m.Chars = len([]rune(text))
	m.Blocks = blocks
	if text == "" {
		m.Lines = 0
		return
	}
	m.Lines = strings.Count(text, "\n") + 1
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
