package documents

import (
	"bytes"
	"context"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// TextExtractor passes UTF-8 text through unchanged apart from a leading BOM.
type TextExtractor struct{}

// NewTextExtractor creates a TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Extract implements Extractor
func (e *TextExtractor) Extract(_ context.Context, data []byte) (*Extraction, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, decodeError(FormatPlainText, "text is not valid UTF-8", nil)
	}
	return &Extraction{Text: string(data)}, nil
}
