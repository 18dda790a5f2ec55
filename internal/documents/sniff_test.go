package documents

import (
	"testing"

	"github.com/jonathan/resume-parser/internal/documents/doctest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniff_ExtensionDecides(t *testing.T) {
	pdfBytes := doctest.PDF([]string{"Jane Doe"})
	docxBytes := doctest.Docx("Jane Doe")

	tests := []struct {
		name        string
		filename    string
		contentType string
		data        []byte
		want        Format
	}{
		{"pdf", "resume.pdf", "application/pdf", pdfBytes, FormatPDF},
		{"uppercase pdf", "RESUME.PDF", "", pdfBytes, FormatPDF},
		{"docx", "resume.docx", "", docxBytes, FormatDocx},
		{"pdf with generic content type", "resume.pdf", "application/octet-stream", pdfBytes, FormatPDF},
		{"pdf extension with random bytes", "resume.pdf", "", []byte{0x00, 0x13, 0x37, 0xff}, FormatPDF},
		{"png", "resume.png", "image/png", []byte("\x89PNG\r\n\x1a\n"), FormatUnsupported},
		{"pdf content type without extension", "resume", "application/pdf", pdfBytes, FormatUnsupported},
		{"doc", "resume.doc", "application/msword", []byte("binary"), FormatUnsupported},
		{"plain text", "resume.txt", "text/plain", []byte("Jane Doe\njane@example.com\n"), FormatPlainText},
		{"binary disguised as text", "resume.txt", "text/plain", pdfBytes, FormatUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Sniff(tt.filename, tt.contentType, tt.data, SniffOptions{AllowPlainText: true})
			assert.Equal(t, tt.want, s.Format)
			assert.Equal(t, tt.contentType, s.DeclaredContentType)
		})
	}
}

func TestSniff_PlainTextDisabled(t *testing.T) {
	s := Sniff("resume.txt", "", []byte("Jane Doe"), SniffOptions{})
	assert.Equal(t, FormatUnsupported, s.Format)
}

func TestSniffed_Err(t *testing.T) {
	s := Sniff("resume.png", "image/png", []byte("\x89PNG\r\n\x1a\n"), SniffOptions{})
	err := s.Err("resume.png")
	require.Error(t, err)

	var ue *UnsupportedFormatError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, ".png", ue.Extension)
	assert.Equal(t, "image/png", ue.ContentType)
	assert.True(t, IsUnsupportedFormat(err))

	ok := Sniff("resume.pdf", "", doctest.PDF([]string{"x"}), SniffOptions{})
	assert.NoError(t, ok.Err("resume.pdf"))
}

func TestSniffed_Mismatch(t *testing.T) {
	good := Sniff("resume.pdf", "", doctest.PDF([]string{"Jane Doe"}), SniffOptions{})
	assert.False(t, good.Mismatch())
	assert.Equal(t, "application/pdf", good.DetectedMIME)

	bad := Sniff("resume.pdf", "", []byte("just some words"), SniffOptions{})
	assert.True(t, bad.Mismatch())

	unsupported := Sniff("resume.png", "", []byte("just some words"), SniffOptions{})
	assert.False(t, unsupported.Mismatch())
}
