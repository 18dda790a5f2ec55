// Package documents classifies uploaded résumé documents and extracts their plain text.
//
// Supported formats:
//   - .pdf : text layer of each page, in page order (github.com/ledongthuc/pdf)
//   - .docx: word/document.xml body paragraphs (archive/zip + encoding/xml)
//   - .txt : UTF-8 passthrough
//
// Every extractor works on an in-memory buffer and performs no I/O.
package documents

// Format identifies a document type.
type Format string

const (
	FormatPDF         Format = "pdf"
	FormatDocx        Format = "docx"
	FormatPlainText   Format = "text"
	FormatUnsupported Format = "unsupported"
)

// String implements fmt.Stringer
func (f Format) String() string {
	return string(f)
}

// Supported reports whether an extractor exists for the format.
func (f Format) Supported() bool {
	switch f {
	case FormatPDF, FormatDocx, FormatPlainText:
		return true
	default:
		return false
	}
}

// SupportedExtensions returns the file extensions accepted for upload.
func SupportedExtensions() []string {
	return []string{".pdf", ".docx", ".txt"}
}
