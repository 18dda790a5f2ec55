// Package pipeline is the single entry point for turning an uploaded résumé
// into a types.ResumeRecord: sniff, extract, clean, segment, extract fields
// and assemble. Every call is independent; a Parser holds only configuration
// and is safe for concurrent use.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/jonathan/resume-parser/internal/documents"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/types"
)

// Upload is one file handed to the parser. Body is read exactly once.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// NewUpload wraps an in-memory buffer as an Upload.
func NewUpload(filename, contentType string, data []byte) Upload {
	return Upload{Filename: filename, ContentType: contentType, Body: bytes.NewReader(data)}
}

// Result is a successful parse: the record plus facts about the upload.
type Result struct {
	Record   *types.ResumeRecord `json:"record"`
	Metadata *ingestion.Metadata `json:"metadata"`
	Warnings []Warning           `json:"warnings"`
}

// HasWarning reports whether a warning of the given kind was raised.
func (r *Result) HasWarning(kind string) bool {
	for _, w := range r.Warnings {
		if w.Kind == kind {
			return true
		}
	}
	return false
}

// Parser runs the parse pipeline.
type Parser struct {
	logger     *zap.Logger
	registry   *documents.Registry
	overrides  map[documents.Format]documents.Extractor
	sniff      documents.SniffOptions
	extractors []parsing.FieldExtractor
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithRegistry replaces the default extractor registry.
func WithRegistry(registry *documents.Registry) Option {
	return func(p *Parser) {
		if registry != nil {
			p.registry = registry
		}
	}
}

// WithExtractor substitutes the extractor for one format. It applies on top
// of whichever registry is in effect.
func WithExtractor(format documents.Format, e documents.Extractor) Option {
	return func(p *Parser) {
		p.overrides[format] = e
	}
}

// WithSniffOptions sets which formats the sniffer accepts.
func WithSniffOptions(opts documents.SniffOptions) Option {
	return func(p *Parser) {
		p.sniff = opts
	}
}

// WithFieldExtractors replaces the default field extractors.
func WithFieldExtractors(extractors ...parsing.FieldExtractor) Option {
	return func(p *Parser) {
		p.extractors = extractors
	}
}

// New creates a Parser. Without options it accepts PDF, DOCX and plain text
// with no page limit.
func New(opts ...Option) *Parser {
	p := &Parser{
		logger:     zap.NewNop(),
		overrides:  make(map[documents.Format]documents.Extractor),
		sniff:      documents.SniffOptions{AllowPlainText: true},
		extractors: parsing.DefaultExtractors(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.registry == nil {
		p.registry = documents.NewRegistry(documents.Options{})
	}
	for format, e := range p.overrides {
		p.registry.Register(format, e)
	}
	return p
}

// ParseResume parses one upload. It returns either a complete Result or a
// *ParseError, never both and never a partially built record. Panics raised
// anywhere below are recovered and reported as KindInternal.
func (p *Parser) ParseResume(ctx context.Context, upload Upload) (result *Result, err error) {
	log := p.logger.With(zap.String("filename", upload.Filename))

	defer func() {
		if r := recover(); r != nil {
			log.Error("recovered panic while parsing", zap.Any("panic", r), zap.Stack("stack"))
			result = nil
			err = newParseError(KindInternal, fmt.Sprintf("panic: %v", r), nil)
		}
	}()

	data, err := readUpload(upload)
	if err != nil {
		log.Warn("failed to read upload", zap.Error(err))
		return nil, newParseError(KindReadFailed, "failed to read upload", err)
	}

	sniffed := documents.Sniff(upload.Filename, upload.ContentType, data, p.sniff)
	if err := sniffed.Err(upload.Filename); err != nil {
		log.Info("rejected upload",
			zap.String("extension", sniffed.Extension),
			zap.String("detected_mime", sniffed.DetectedMIME))
		return nil, newParseError(KindUnsupportedFormat, "unsupported document format", err)
	}
	log = log.With(zap.Stringer("format", sniffed.Format))
	log.Debug("detected format", zap.String("detected_mime", sniffed.DetectedMIME))
	if sniffed.Mismatch() {
		log.Warn("file contents do not match extension",
			zap.String("extension", sniffed.Extension),
			zap.String("detected_mime", sniffed.DetectedMIME),
			zap.String("declared_content_type", sniffed.DeclaredContentType))
	}

	extractor, err := p.registry.Lookup(sniffed.Format)
	if err != nil {
		return nil, newParseError(KindInternal, "no extractor available", err)
	}

	extraction, err := extractor.Extract(ctx, data)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, newParseError(KindInternal, "parse cancelled", ctxErr)
		}
		if documents.IsDecodeError(err) {
			log.Error("document decode failed", zap.Error(err))
			return nil, newParseError(KindDecodeFailed, "failed to decode document", err)
		}
		log.Error("extractor failed", zap.Error(err))
		return nil, newParseError(KindInternal, "extraction failed", err)
	}

	text := ingestion.CleanText(extraction.Text)
	doc := parsing.NewDocument(text)
	log.Debug("extracted text",
		zap.Int("chars", len(text)),
		zap.Int("pages", extraction.Pages),
		zap.Int("blocks", len(doc.Blocks)))

	record := parsing.ParseDocument(doc, p.extractors...)

	// A caller that gave up must not observe a record.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, newParseError(KindInternal, "parse cancelled", ctxErr)
	}

	meta := ingestion.NewMetadata(upload.Filename, data)
	meta.Format = sniffed.Format.String()
	meta.DetectedMIME = sniffed.DetectedMIME
	meta.Pages = extraction.Pages
	meta.SetText(text, len(doc.Blocks))

	warnings := []Warning{}
	if text == "" {
		log.Warn("document produced no text")
		warnings = append(warnings, EmptyContentWarning)
	}

	return &Result{Record: record, Metadata: meta, Warnings: warnings}, nil
}

func readUpload(upload Upload) ([]byte, error) {
	if upload.Body == nil {
		return []byte{}, nil
	}
	return io.ReadAll(upload.Body)
}
