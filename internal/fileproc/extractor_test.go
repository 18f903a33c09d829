package fileproc

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildZip creates an in-memory archive. Names ending in "/" become directories.
func buildZip(t *testing.T, files []struct{ name, body string }) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		w, err := zw.Create(f.name)
		require.NoError(t, err)
		if f.body != "" {
			_, err = w.Write([]byte(f.body))
			require.NoError(t, err)
		}
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// buildPDF writes a single-page PDF showing text with a standard font.
func buildPDF(t *testing.T, text string) []byte {
	t.Helper()

	stream := fmt.Sprintf("BT /F1 24 Tf 72 700 Td (%s) Tj ET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

func TestParseFileType(t *testing.T) {
	tests := []struct {
		declared string
		want     FileType
	}{
		{"application/pdf", FileTypePDF},
		{"pdf", FileTypePDF},
		{"PDF", FileTypePDF},
		{"application/zip", FileTypeZip},
		{"zip", FileTypeZip},
		{"text/plain", FileTypeText},
		{"txt", FileTypeText},
		{"text/markdown", FileTypeUnknown},
		{"", FileTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.declared, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFileType(tt.declared))
		})
	}
}

func TestDetectFileType(t *testing.T) {
	t.Run("suffix wins", func(t *testing.T) {
		assert.Equal(t, FileTypePDF, DetectFileType("https://bucket.s3.amazonaws.com/guide.PDF", []byte("plain")))
		assert.Equal(t, FileTypeZip, DetectFileType("https://bucket/kit.zip?X-Amz-Signature=abc", nil))
		assert.Equal(t, FileTypeText, DetectFileType("https://bucket/notes.txt", nil))
	})

	t.Run("sniffs bytes without suffix", func(t *testing.T) {
		zipData := buildZip(t, []struct{ name, body string }{{"a.txt", "hello"}})
		assert.Equal(t, FileTypeZip, DetectFileType("https://bucket/download", zipData))
		assert.Equal(t, FileTypePDF, DetectFileType("https://bucket/download", buildPDF(t, "Hi")))
	})

	t.Run("defaults to text", func(t *testing.T) {
		assert.Equal(t, FileTypeText, DetectFileType("https://bucket/file.bin", []byte("just words")))
	})
}

func TestExtractor_Text(t *testing.T) {
	e := NewExtractor()

	t.Run("plain text passes through", func(t *testing.T) {
		text, err := e.Extract([]byte("Product guide\nChapter 1"), FileTypeText)
		require.NoError(t, err)
		assert.Equal(t, "Product guide\nChapter 1", text)
	})

	t.Run("unknown passes through", func(t *testing.T) {
		text, err := e.Extract([]byte("whatever"), FileTypeUnknown)
		require.NoError(t, err)
		assert.Equal(t, "whatever", text)
	})
}

func TestExtractor_PDF(t *testing.T) {
	e := NewExtractor()

	t.Run("extracts page text", func(t *testing.T) {
		text, err := e.Extract(buildPDF(t, "Hello PDF"), FileTypePDF)
		require.NoError(t, err)
		assert.Contains(t, text, "Hello PDF")
	})

	t.Run("invalid pdf", func(t *testing.T) {
		_, err := e.Extract([]byte("not a pdf"), FileTypePDF)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExtract)
		assert.Contains(t, err.Error(), "failed to parse PDF")
	})
}

func TestExtractor_Zip(t *testing.T) {
	e := NewExtractor()

	t.Run("labels each readable member", func(t *testing.T) {
		data := buildZip(t, []struct{ name, body string }{
			{"docs/", ""},
			{"docs/intro.txt", "Welcome"},
			{"README.md", "# Kit"},
			{"logo.png", "\x89PNG"},
		})

		text, err := e.Extract(data, FileTypeZip)
		require.NoError(t, err)
		assert.Equal(t, "\n\n--- docs/intro.txt ---\nWelcome\n\n--- README.md ---\n# Kit", text)
	})

	t.Run("upper case suffixes are skipped", func(t *testing.T) {
		data := buildZip(t, []struct{ name, body string }{
			{"README.TXT", "hello"},
			{"notes.Md", "skip"},
			{"notes.txt", "kept"},
		})

		text, err := e.Extract(data, FileTypeZip)
		require.NoError(t, err)
		assert.Equal(t, "\n\n--- notes.txt ---\nkept", text)
	})

	t.Run("extracts member pdf", func(t *testing.T) {
		data := buildZip(t, []struct{ name, body string }{
			{"guide.pdf", string(buildPDF(t, "Inside zip"))},
		})

		text, err := e.Extract(data, FileTypeZip)
		require.NoError(t, err)
		assert.Contains(t, text, "--- guide.pdf ---\n")
		assert.Contains(t, text, "Inside zip")
	})

	t.Run("no readable members", func(t *testing.T) {
		data := buildZip(t, []struct{ name, body string }{{"payload.bin", "\x00\x01"}})

		text, err := e.Extract(data, FileTypeZip)
		require.NoError(t, err)
		assert.Equal(t, "No readable content found in ZIP file", text)
	})

	t.Run("empty archive", func(t *testing.T) {
		text, err := e.Extract(buildZip(t, nil), FileTypeZip)
		require.NoError(t, err)
		assert.Equal(t, NoZipContent, text)
	})

	t.Run("corrupt archive", func(t *testing.T) {
		_, err := e.Extract([]byte("PK not really"), FileTypeZip)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExtract)
	})

	t.Run("broken member pdf", func(t *testing.T) {
		data := buildZip(t, []struct{ name, body string }{{"bad.pdf", "garbage"}})

		_, err := e.Extract(data, FileTypeZip)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExtract)
	})
}

func TestFileType_String(t *testing.T) {
	assert.Equal(t, "pdf", FileTypePDF.String())
	assert.Equal(t, "zip", FileTypeZip.String())
	assert.Equal(t, "txt", FileTypeText.String())
	assert.Equal(t, "unknown", FileTypeUnknown.String())
}
