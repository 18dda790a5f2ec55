package documents

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFOptions configures the PDF backend.
type PDFOptions struct {
	// MaxPages rejects documents with more pages than this. Zero means no limit.
	MaxPages int
}

// PDFExtractor reads the text layer of every page with github.com/ledongthuc/pdf.
// Multi-column layouts are not re-flowed.
type PDFExtractor struct {
	opts PDFOptions
}

// NewPDFExtractor creates a PDFExtractor.
func NewPDFExtractor(opts PDFOptions) *PDFExtractor {
	return &PDFExtractor{opts: opts}
}

// Extract implements Extractor. Pages are joined with a newline, in page order.
func (e *PDFExtractor) Extract(ctx context.Context, data []byte) (out *Extraction, err error) {
	// The PDF library panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = decodeError(FormatPDF, "malformed document", fmt.Errorf("panic: %v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, decodeError(FormatPDF, "cannot open document", err)
	}

	pages := reader.NumPage()
	if pages <= 0 {
		return nil, decodeError(FormatPDF, "document has no pages", nil)
	}
	if e.opts.MaxPages > 0 && pages > e.opts.MaxPages {
		return nil, decodeError(FormatPDF, fmt.Sprintf("document has %d pages, limit is %d", pages, e.opts.MaxPages), nil)
	}

	var sb strings.Builder
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, decodeError(FormatPDF, fmt.Sprintf("cannot read page %d", i), err)
		}
		sb.WriteString(text)
		sb.WriteByte('\n')
	}

	return &Extraction{Text: sb.String(), Pages: pages}, nil
}
