package skills

import "regexp"

// Master terms carry symbols ("C#", "Node.js", "CI/CD") that a plain \b
// boundary or alphanumeric folding would destroy, so each term gets its own
// pattern with explicit alphanumeric boundaries.
var masterPatterns = buildPatterns(Master)

func buildPatterns(terms []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(terms))
	for i, t := range terms {
		out[i] = regexp.MustCompile(`(?i)(?:\A|[^A-Za-z0-9])` + regexp.QuoteMeta(t) + `(?:[^A-Za-z0-9]|\z)`)
	}
	return out
}

// Match returns every master-dictionary skill present in the text as a
// case-insensitive whole-word occurrence. Output order is dictionary order,
// not text order, and duplicates collapse to a single entry.
func Match(text string) []string {
	found := make([]string, 0, 8)
	for i, re := range masterPatterns {
		if re.MatchString(text) {
			found = append(found, Master[i])
		}
	}
	return found
}
