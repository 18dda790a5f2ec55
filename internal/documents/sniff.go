package documents

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Sniffed is the outcome of classifying an upload.
type Sniffed struct {
	Format              Format
	Extension           string
	DeclaredContentType string
	// DetectedMIME is the magic-byte classification of the buffer. It is
	// informational and never overrides the extension decision.
	DetectedMIME string
}

// expectedMIME maps each format to the MIME type its magic bytes should produce.
var expectedMIME = map[Format]string{
	FormatPDF:       "application/pdf",
	FormatDocx:      "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	FormatPlainText: "text/plain",
}

// SniffOptions controls which formats the sniffer accepts.
type SniffOptions struct {
	AllowPlainText bool
}

// Sniff classifies a document from its filename and bytes.
// The file extension decides the format; a declared content type is recorded
// but never trusted, since browsers and clients send generic or spoofed values.
// Plain text is accepted only when enabled and the buffer really is text.
func Sniff(filename, contentType string, data []byte, opts SniffOptions) Sniffed {
	ext := strings.ToLower(filepath.Ext(filename))
	detected := mimetype.Detect(data)

	s := Sniffed{
		Format:              FormatUnsupported,
		Extension:           ext,
		DeclaredContentType: contentType,
		DetectedMIME:        detected.String(),
	}

	switch ext {
	case ".pdf":
		s.Format = FormatPDF
	case ".docx":
		s.Format = FormatDocx
	case ".txt", ".text":
		if opts.AllowPlainText && isText(detected) {
			s.Format = FormatPlainText
		}
	}

	return s
}

// Mismatch reports whether the magic bytes disagree with the chosen format.
func (s Sniffed) Mismatch() bool {
	want, ok := expectedMIME[s.Format]
	if !ok {
		return false
	}
	for m := mimetype.Lookup(s.DetectedMIME); m != nil; m = m.Parent() {
		if m.Is(want) {
			return false
		}
	}
	return true
}

// Err returns an *UnsupportedFormatError when the upload was not classified
// as a supported format, nil otherwise.
func (s Sniffed) Err(filename string) error {
	if s.Format.Supported() {
		return nil
	}
	return &UnsupportedFormatError{
		Filename:    filename,
		Extension:   s.Extension,
		ContentType: s.DeclaredContentType,
	}
}

func isText(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
