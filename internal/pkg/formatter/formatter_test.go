package formatter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mlevkov/contentproc/internal/entity"
)

func TestFactoryCreate(t *testing.T) {
	factory := NewFactory()

	cases := []struct {
		format      entity.ExportFormat
		extension   string
		contentType string
	}{
		{entity.FormatMarkdown, ".md", "text/markdown; charset=utf-8"},
		{entity.FormatDOCX, ".docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{entity.FormatPDF, ".pdf", "application/pdf"},
	}

	for _, c := range cases {
		f, err := factory.Create(c.format)
		require.NoError(t, err, "format %s", c.format)
		require.Equal(t, c.extension, f.FileExtension())
		require.Equal(t, c.contentType, f.ContentType())
	}
}

func TestFactoryCreateUnsupported(t *testing.T) {
	factory := NewFactory()

	_, err := factory.Create(entity.ExportFormat("xlsx"))
	require.ErrorIs(t, err, entity.ErrUnsupportedFormat)
}

func TestMarkdownFormat(t *testing.T) {
	f := NewMarkdownFormatter()

	out, err := f.Format("Meeting Minutes", "- decided things")
	require.NoError(t, err)
	require.Equal(t, "# Meeting Minutes\n\n- decided things\n", string(out))
}

func TestPDFFormatProducesDocument(t *testing.T) {
	f := NewPDFFormatter()

	out, err := f.Format("Meeting Minutes", "Line one.\nLine two.")
	require.NoError(t, err)
	require.True(t, len(out) > 4)
	require.Equal(t, "%PDF", string(out[:4]))
}

func TestDOCXFormatProducesDocument(t *testing.T) {
	f := NewDOCXFormatter()

	out, err := f.Format("Meeting Minutes", "Line one.\nLine two.")
	require.NoError(t, err)
	// DOCX files are zip archives.
	require.True(t, len(out) > 2)
	require.Equal(t, "PK", string(out[:2]))
}
