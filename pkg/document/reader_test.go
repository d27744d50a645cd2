package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadTxt(t *testing.T) {
	data := []byte("Jane Doe\njane.doe@example.com\n\n\nSkills:\tPython,   SQL and plenty of other text to stay over the warning floor")
	out := Read("resume.txt", data)

	assert.True(t, out.Success)
	assert.Empty(t, out.Error)
	assert.Empty(t, out.Warning)
	assert.Contains(t, out.Text, "Jane Doe")
	assert.Contains(t, out.Text, "Skills: Python, SQL")
	// blank-line runs survive normalization; the scorer reads them
	assert.Contains(t, out.Text, "\n\n\n")
}

func TestReadTxtShortTextWarns(t *testing.T) {
	out := Read("tiny.TXT", []byte("Jane Doe"))
	assert.True(t, out.Success)
	assert.NotEmpty(t, out.Warning)
	assert.Equal(t, "Jane Doe", out.Text)
}

func TestReadUnsupportedFormat(t *testing.T) {
	for _, name := range []string{"resume.doc", "resume.rtf", "resume", "resume.png"} {
		out := Read(name, []byte("whatever"))
		assert.False(t, out.Success, "file %q", name)
		assert.Equal(t, ErrUnsupportedFormat.Error(), out.Error)
		assert.Empty(t, out.Text)
	}
}

func TestReadCorruptPDF(t *testing.T) {
	out := Read("broken.pdf", []byte("this is not a pdf"))
	assert.False(t, out.Success)
	assert.NotEmpty(t, out.Error)
}

func TestReadCorruptDocx(t *testing.T) {
	out := Read("broken.docx", []byte("this is not a zip archive"))
	assert.False(t, out.Success)
	assert.NotEmpty(t, out.Error)
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tabs and runs collapse", "a\t\tb   c", "a b c"},
		{"nbsp collapses", "a b", "a b"},
		{"newlines preserved", "a\n\n\nb", "a\n\n\nb"},
		{"surrounding space trimmed", "  a  ", "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeWhitespace(tt.in))
		})
	}
}

func TestExtractDocxTagStripping(t *testing.T) {
	xml := `<w:document><w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p><w:p><w:r><w:t>Engineer</w:t></w:r></w:p></w:document>`
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	txt := normalizeWhitespace(reTags.ReplaceAllString(xml, " "))
	assert.Contains(t, txt, "Jane Doe")
	assert.Contains(t, txt, "\n")
	assert.Contains(t, txt, "Engineer")
	assert.NotContains(t, txt, "<")
}
