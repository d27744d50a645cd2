package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedFormat is returned for anything but .pdf, .docx and .txt.
var ErrUnsupportedFormat = errors.New("unsupported file format: only pdf, docx and txt are allowed")

// warnTextLen marks extractions that technically succeeded but recovered
// very little text, usually an image-heavy or partially protected PDF.
const warnTextLen = 100

// Extraction is what the reader hands to the analysis pipeline. A failed
// read keeps Success=false with a human-readable Error; near-empty text is
// left for the pipeline guard to classify.
type Extraction struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
	Error   string `json:"error,omitempty"`
	Warning string `json:"warning,omitempty"`
}

// Read extracts plain text from a resume file. The format is chosen by file
// extension; decoding failures never panic out of this function.
func Read(filename string, data []byte) Extraction {
	text, err := extract(filename, data)
	if err != nil {
		return Extraction{Error: err.Error()}
	}
	out := Extraction{Success: true, Text: text}
	if trimmed := strings.TrimSpace(text); len(trimmed) > 0 && len(trimmed) < warnTextLen {
		out.Warning = "very little text was extracted; results may be incomplete"
	}
	return out
}

func extract(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDocx(data)
	case ".txt":
		return normalizeWhitespace(string(data)), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()
	// GetContent returns the raw document XML; convert paragraph boundaries
	// to newlines and drop the remaining tags.
	xml := doc.Editable().GetContent()
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	txt := reTags.ReplaceAllString(xml, " ")
	return normalizeWhitespace(txt), nil
}

var (
	reTags   = regexp.MustCompile(`<[^>]+>`)
	reBlanks = regexp.MustCompile(`[ \t\r\f\v]+`)
)

// normalizeWhitespace collapses horizontal whitespace only. Blank-line runs
// are kept as-is: the ATS scorer treats them as a formatting signal.
func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = reBlanks.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
