package documents

import (
	"context"
	"fmt"
)

// Extraction is the linear text recovered from a document.
type Extraction struct {
	Text string
	// Pages is the number of pages read; zero for formats without pagination.
	Pages int
}

// Extractor converts a document of a known format into plain text.
// Implementations must fail with *DocumentDecodeError rather than return
// partial text when the container cannot be read.
type Extractor interface {
	Extract(ctx context.Context, data []byte) (*Extraction, error)
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(ctx context.Context, data []byte) (*Extraction, error)

// Extract implements Extractor
func (f ExtractorFunc) Extract(ctx context.Context, data []byte) (*Extraction, error) {
	return f(ctx, data)
}

// Options configures the default extractor set. It is resolved once when
// the registry is built and never read from process-wide state.
type Options struct {
	PDF PDFOptions
}

// Registry maps formats to extractors.
type Registry struct {
	extractors map[Format]Extractor
}

// NewRegistry returns a registry populated with the PDF, DOCX and plain-text extractors.
func NewRegistry(opts Options) *Registry {
	r := &Registry{extractors: make(map[Format]Extractor, 3)}
	r.Register(FormatPDF, NewPDFExtractor(opts.PDF))
	r.Register(FormatDocx, NewDocxExtractor())
	r.Register(FormatPlainText, NewTextExtractor())
	return r
}

// Register installs or replaces the extractor for a format.
func (r *Registry) Register(format Format, e Extractor) {
	r.extractors[format] = e
}

// Lookup returns the extractor for a format.
func (r *Registry) Lookup(format Format) (Extractor, error) {
	e, ok := r.extractors[format]
	if !ok {
		return nil, fmt.Errorf("no extractor registered for format %q", format)
	}
	return e, nil
}
