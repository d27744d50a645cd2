package extract

import (
	"strconv"
	"strings"
	"time"

	"github.com/artem13815/resumeai/pkg/textnorm"
)

// Unknown is the sentinel for fields that could not be detected. Downstream
// rendering relies on it being a non-empty string.
const Unknown = "Unknown"

// Fields is the structured contact block recovered from free text.
type Fields struct {
	Name              string `json:"candidateName"`
	Email             string `json:"candidateEmail"`
	Phone             string `json:"candidatePhone"`
	YearsOfExperience int    `json:"yearsOfExperience"`
}

const (
	// name detection only looks at the top of the document
	nameScanLines = 15
	minNameLine   = 3
	maxNameLen    = 40
)

// Extractor runs the detection rule tables over normalized text. The zero
// value is not usable; construct with New.
type Extractor struct {
	now func() time.Time
}

func New() *Extractor {
	return &Extractor{now: time.Now}
}

// NewAt pins the extractor clock, so year ranges ending in "present" resolve
// deterministically.
func NewAt(now func() time.Time) *Extractor {
	return &Extractor{now: now}
}

// Extract recovers name, email, phone and experience duration. It is
// idempotent: identical input always yields identical output.
func (e *Extractor) Extract(n textnorm.Normalized) Fields {
	return Fields{
		Name:              e.extractName(n),
		Email:             e.extractEmail(n.Flat),
		Phone:             e.extractPhone(n.Flat),
		YearsOfExperience: e.extractYears(n.Flat),
	}
}

func (e *Extractor) extractName(n textnorm.Normalized) string {
	// Rules are prioritized over line position: a lower-priority pattern on
	// an earlier line never shadows a higher-priority one further down.
	var head []string
	for _, line := range n.Lines {
		if len(line) < minNameLine {
			continue
		}
		head = append(head, line)
		if len(head) == nameScanLines {
			break
		}
	}
	for _, rule := range nameLineRules {
		for _, line := range head {
			if len(line) >= maxNameLen || strings.ContainsRune(line, '@') {
				continue
			}
			m := rule.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			name := m[rule.group]
			if rule.recase {
				name = titleCase(name)
			}
			return name
		}
	}
	for _, rule := range nameFallbackRules {
		if m := rule.re.FindStringSubmatch(n.Flat); m != nil {
			return m[rule.group]
		}
	}
	return Unknown
}

func (e *Extractor) extractEmail(flat string) string {
	if m := emailRe.FindString(flat); m != "" {
		return m
	}
	return Unknown
}

func (e *Extractor) extractPhone(flat string) string {
	for _, rule := range phoneRules {
		m := rule.re.FindStringSubmatch(flat)
		if m == nil {
			continue
		}
		if rule.reformat {
			d := m[1]
			return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
		}
		return strings.TrimSpace(m[0])
	}
	return Unknown
}

// extractYears sums the deltas of every detected year range. Overlapping
// ranges double-count on purpose: the historical scoring behavior is
// additive, and consumers depend on it (see DESIGN.md).
func (e *Extractor) extractYears(flat string) int {
	total := 0
	currentYear := e.now().Year()
	for _, m := range yearRangeRe.FindAllStringSubmatch(flat, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := currentYear
		switch strings.ToLower(m[2]) {
		case "present", "current", "now":
		default:
			end, err = strconv.Atoi(m[2])
			if err != nil {
				continue
			}
		}
		if delta := end - start; delta > 0 {
			total += delta
		}
	}
	return total
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 {
			words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
		}
	}
	return strings.Join(words, " ")
}
