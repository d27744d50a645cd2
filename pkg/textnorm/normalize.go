package textnorm

import (
	"regexp"
	"strings"
)

var (
	reLineBreak = regexp.MustCompile(`\r\n|\r|\n`)
	reSpaces    = regexp.MustCompile(`[ \t\f\v]+`)
	reNonWord   = regexp.MustCompile(`[^a-z0-9]+`)
)

// Normalized is the cleaned view of raw extracted text: trimmed non-empty
// lines for positional scans plus a newline-joined flat block for global
// regex scans.
type Normalized struct {
	Lines []string
	Flat  string
}

// Normalize segments raw extracted text. It is a pure function: already
// flattened input (no newlines) degenerates to a single line.
func Normalize(raw string) Normalized {
	raw = strings.ReplaceAll(raw, " ", " ")
	parts := reLineBreak.Split(raw, -1)

	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(reSpaces.ReplaceAllString(p, " "))
		if p == "" {
			continue
		}
		lines = append(lines, p)
	}
	return Normalized{
		Lines: lines,
		Flat:  strings.Join(lines, "\n"),
	}
}

// Fold lowercases s and replaces every non-alphanumeric run with a single
// space, so phrases can be matched as whole words.
func Fold(s string) string {
	s = strings.ToLower(s)
	s = reNonWord.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ContainsWord reports whether the folded phrase occurs in the folded text
// as whole words. Example: "rest api" is found in "... rest api ..." but
// not in "... rest apis ...".
func ContainsWord(text, phrase string) bool {
	folded := Fold(phrase)
	if folded == "" {
		return false
	}
	hay := " " + Fold(text) + " "
	return strings.Contains(hay, " "+folded+" ")
}

// CountWords returns the number of whole-word occurrences of the folded
// phrase inside the folded text. Adjacent occurrences are counted
// separately, which plain substring counting on padded text would miss.
func CountWords(text, phrase string) int {
	want := strings.Fields(Fold(phrase))
	if len(want) == 0 {
		return 0
	}
	toks := strings.Fields(Fold(text))
	n := 0
	for i := 0; i+len(want) <= len(toks); i++ {
		match := true
		for j, w := range want {
			if toks[i+j] != w {
				match = false
				break
			}
		}
		if match {
			n++
		}
	}
	return n
}
