package documents

import (
	"context"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/jonathan/resume-parser/internal/documents/doctest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFExtractor_PagesInOrder(t *testing.T) {
	data := doctest.PDF(
		[]string{"Jane Doe", "jane.doe@example.com"},
		[]string{"Experience", "Staff Engineer"},
	)

	out, err := NewPDFExtractor(PDFOptions{}).Extract(context.Background(), data)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 2, out.Pages)
	assert.Contains(t, out.Text, "Jane Doe")
	assert.Contains(t, out.Text, "jane.doe@example.com")
	first := strings.Index(out.Text, "Jane Doe")
	second := strings.Index(out.Text, "Staff Engineer")
	assert.Less(t, first, second, "page 1 text should precede page 2 text")
}

func TestPDFExtractor_RandomBytes(t *testing.T) {
	data := make([]byte, 2048)
	_, err := rand.Read(data)
	require.NoError(t, err)

	out, err := NewPDFExtractor(PDFOptions{}).Extract(context.Background(), data)
	require.Error(t, err)
	assert.Nil(t, out)

	var de *DocumentDecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, FormatPDF, de.Format)
}

func TestPDFExtractor_Truncated(t *testing.T) {
	data := doctest.PDF([]string{"Jane Doe"})
	out, err := NewPDFExtractor(PDFOptions{}).Extract(context.Background(), data[:len(data)/2])
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, IsDecodeError(err))
}

func TestPDFExtractor_MaxPages(t *testing.T) {
	data := doctest.PDF([]string{"one"}, []string{"two"}, []string{"three"})
	_, err := NewPDFExtractor(PDFOptions{MaxPages: 2}).Extract(context.Background(), data)
	require.Error(t, err)
	assert.True(t, IsDecodeError(err))
	assert.Contains(t, err.Error(), "limit is 2")
}

func TestPDFExtractor_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := NewPDFExtractor(PDFOptions{}).Extract(ctx, doctest.PDF([]string{"Jane Doe"}))
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, out)
}

func TestDocxExtractor_Paragraphs(t *testing.T) {
	data := doctest.Docx("Jane Doe", "jane.doe@example.com", "", "Experience", "Engineer & Lead")

	out, err := NewDocxExtractor().Extract(context.Background(), data)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\njane.doe@example.com\n\nExperience\nEngineer & Lead\n", out.Text)
	assert.Zero(t, out.Pages)
}

func TestDocxExtractor_TabsAndBreaks(t *testing.T) {
	body := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:p><w:r><w:t>Go</w:t><w:tab/><w:t>SQL</w:t><w:br/><w:t>Docker</w:t></w:r></w:p>` +
		`<w:p><w:r><w:instrText>HYPERLINK "x"</w:instrText><w:t>Site</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	out, err := NewDocxExtractor().Extract(context.Background(), doctest.DocxRaw(body))
	require.NoError(t, err)
	assert.Equal(t, "Go\tSQL\nDocker\nSite\n", out.Text)
}

func TestDocxExtractor_TextBoxInsideParagraph(t *testing.T) {
	textBox := `<w:txbxContent><w:p><w:r><w:t>Sidebar</w:t></w:r></w:p></w:txbxContent>`
	body := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
		` xmlns:mc="http://schemas.openxmlformats.org/markup-compatibility/2006"` +
		` xmlns:v="urn:schemas-microsoft-com:vml"><w:body>` +
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r><w:r><mc:AlternateContent>` +
		`<mc:Choice Requires="wps"><w:drawing>` + textBox + `</w:drawing></mc:Choice>` +
		`<mc:Fallback><w:pict><v:textbox>` + textBox + `</v:textbox></w:pict></mc:Fallback>` +
		`</mc:AlternateContent></w:r><w:r><w:t xml:space="preserve"> Engineer</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>jane.doe@example.com</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	out, err := NewDocxExtractor().Extract(context.Background(), doctest.DocxRaw(body))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe Engineer\nSidebar\njane.doe@example.com\n", out.Text)
}

func TestDocxExtractor_Failures(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"not a zip", []byte("this is not a zip archive")},
		{"missing body part", doctest.Zip(map[string]string{"word/styles.xml": "<x/>"}, []string{"word/styles.xml"})},
		{"malformed xml", doctest.DocxRaw(`<w:document><w:body><w:p><w:t>Jane</w:body>`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NewDocxExtractor().Extract(context.Background(), tt.data)
			require.Error(t, err)
			assert.Nil(t, out)

			var de *DocumentDecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, FormatDocx, de.Format)
		})
	}
}

func TestTextExtractor(t *testing.T) {
	out, err := NewTextExtractor().Extract(context.Background(), []byte("\xEF\xBB\xBFJane Doe\n"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n", out.Text)

	_, err = NewTextExtractor().Extract(context.Background(), []byte{0xff, 0xfe, 0x00})
	require.Error(t, err)
	assert.True(t, IsDecodeError(err))
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(Options{})

	for _, f := range []Format{FormatPDF, FormatDocx, FormatPlainText} {
		e, err := r.Lookup(f)
		require.NoError(t, err, f)
		assert.NotNil(t, e)
	}

	_, err := r.Lookup(FormatUnsupported)
	assert.Error(t, err)

	fake := ExtractorFunc(func(context.Context, []byte) (*Extraction, error) {
		return &Extraction{Text: "fake"}, nil
	})
	r.Register(FormatPDF, fake)
	e, err := r.Lookup(FormatPDF)
	require.NoError(t, err)
	out, err := e.Extract(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "fake", out.Text)
}
