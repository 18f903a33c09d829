package fileproc

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"rsc.io/pdf"
)

// NoZipContent is returned for archives without any readable member.
const NoZipContent = "No readable content found in ZIP file"

// ErrExtract is wrapped by every extraction failure.
var ErrExtract = errors.New("failed to process file")

// FileType is the declared kind of a product file.
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeText
	FileTypePDF
	FileTypeZip
)

// String returns the short name of the type.
func (t FileType) String() string {
	switch t {
	case FileTypeText:
		return "txt"
	case FileTypePDF:
		return "pdf"
	case FileTypeZip:
		return "zip"
	default:
		return "unknown"
	}
}

// ParseFileType maps a declared content type or short name to a FileType.
func ParseFileType(declared string) FileType {
	switch strings.ToLower(strings.TrimSpace(declared)) {
	case "application/pdf", "pdf":
		return FileTypePDF
	case "application/zip", "application/x-zip-compressed", "zip":
		return FileTypeZip
	case "text/plain", "txt":
		return FileTypeText
	default:
		return FileTypeUnknown
	}
}

// DetectFileType picks the type of a fetched file.
// A known suffix on the URL path wins; otherwise the bytes are sniffed.
func DetectFileType(name string, data []byte) FileType {
	p := name
	if u, err := url.Parse(name); err == nil && u.Path != "" {
		p = u.Path
	}

	switch strings.ToLower(path.Ext(p)) {
	case ".pdf":
		return FileTypePDF
	case ".zip":
		return FileTypeZip
	case ".txt":
		return FileTypeText
	}

	mt := mimetype.Detect(data)
	switch {
	case mt.Is("application/pdf"):
		return FileTypePDF
	case mt.Is("application/zip"):
		return FileTypeZip
	default:
		return FileTypeText
	}
}

// Extractor turns product files into plain text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the plain text held in data.
func (e *Extractor) Extract(data []byte, ft FileType) (string, error) {
	switch ft {
	case FileTypePDF:
		text, err := extractPDF(data)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrExtract, err)
		}
		return text, nil
	case FileTypeZip:
		text, err := e.extractZip(data)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrExtract, err)
		}
		return text, nil
	default:
		return string(data), nil
	}
}

func (e *Extractor) extractZip(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to process ZIP file: %w", err)
	}

	var content strings.Builder
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}

		// Member suffixes are matched case-sensitively.
		name := f.Name

		var text string
		switch {
		case strings.HasSuffix(name, ".txt"), strings.HasSuffix(name, ".md"):
			raw, err := readMember(f)
			if err != nil {
				return "", fmt.Errorf("failed to process ZIP file: %w", err)
			}
			text = string(raw)
		case strings.HasSuffix(name, ".pdf"):
			raw, err := readMember(f)
			if err != nil {
				return "", fmt.Errorf("failed to process ZIP file: %w", err)
			}
			text, err = extractPDF(raw)
			if err != nil {
				return "", fmt.Errorf("failed to process ZIP file: %s: %w", name, err)
			}
		default:
			slog.Debug("skipping unsupported archive member", "name", name)
			continue
		}

		fmt.Fprintf(&content, "\n\n--- %s ---\n%s", name, text)
	}

	if content.Len() == 0 {
		return NoZipContent, nil
	}
	return content.String(), nil
}

func readMember(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer rc.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rc); err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Name, err)
	}
	return buf.Bytes(), nil
}

// extractPDF returns the text of every page in order.
// The pdf reader panics on malformed content streams.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to parse PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse PDF: %w", err)
	}

	var out strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		if out.Len() > 0 {
			out.WriteString("\n")
		}
		writePageText(&out, page.Content().Text)
	}

	return out.String(), nil
}

// writePageText joins positioned glyph runs into lines.
func writePageText(out *strings.Builder, runs []pdf.Text) {
	var prev *pdf.Text
	for i := range runs {
		t := &runs[i]
		if prev != nil {
			switch {
			case math.Abs(t.Y-prev.Y) > t.FontSize/2:
				out.WriteString("\n")
			case t.X-(prev.X+prev.W) > t.FontSize/4:
				out.WriteString(" ")
			}
		}
		out.WriteString(t.S)
		prev = t
	}
}
