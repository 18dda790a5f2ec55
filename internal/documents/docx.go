package documents

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

const docxBodyPart = "word/document.xml"

// DocxExtractor reads the body of a WordprocessingML package. Styling is
// discarded; each paragraph becomes one line, so an empty paragraph yields a
// blank line.
type DocxExtractor struct{}

// NewDocxExtractor creates a DocxExtractor.
func NewDocxExtractor() *DocxExtractor {
	return &DocxExtractor{}
}

// Extract implements Extractor
func (e *DocxExtractor) Extract(ctx context.Context, data []byte) (*Extraction, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, decodeError(FormatDocx, "not a valid package", err)
	}

	var body *zip.File
	for _, f := range zr.File {
		if f.Name == docxBodyPart {
			body = f
			break
		}
	}
	if body == nil {
		return nil, decodeError(FormatDocx, docxBodyPart+" not found in package", nil)
	}

	rc, err := body.Open()
	if err != nil {
		return nil, decodeError(FormatDocx, "cannot open "+docxBodyPart, err)
	}
	defer func() { _ = rc.Close() }()

	text, err := docxText(ctx, rc)
	if err != nil {
		return nil, err
	}
	return &Extraction{Text: text}, nil
}

// docxText walks the document XML. Only character data inside <w:t> runs is
// kept; <w:tab/> becomes a tab and <w:br/>, <w:cr/> become line breaks.
//
// Paragraphs nest when a run carries a text box. A nested paragraph never
// interrupts its host: its line is held back and written after the outermost
// paragraph closes. The mc:Fallback branch of mc:AlternateContent repeats the
// mc:Choice content and is skipped.
func docxText(ctx context.Context, r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var sb strings.Builder
	var open []*strings.Builder
	var deferred []string
	inText := false

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", decodeError(FormatDocx, "malformed document body", err)
		}

		var current *strings.Builder
		if len(open) > 0 {
			current = open[len(open)-1]
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "Fallback":
				if err := decoder.Skip(); err != nil {
					return "", decodeError(FormatDocx, "malformed document body", err)
				}
			case "p":
				open = append(open, &strings.Builder{})
			case "t":
				inText = current != nil
			case "tab":
				if current != nil {
					current.WriteByte('\t')
				}
			case "br", "cr":
				if current != nil {
					current.WriteByte('\n')
				}
			}

		case xml.CharData:
			if inText && current != nil {
				current.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if current == nil {
					continue
				}
				open = open[:len(open)-1]
				line := strings.TrimRight(current.String(), " \t")
				if len(open) > 0 {
					deferred = append(deferred, line)
					continue
				}
				sb.WriteString(line)
				sb.WriteByte('\n')
				for _, nested := range deferred {
					sb.WriteString(nested)
					sb.WriteByte('\n')
				}
				deferred = deferred[:0]
			}
		}
	}

	return sb.String(), nil
}
