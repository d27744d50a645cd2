package ats

import (
	"regexp"

	"github.com/artem13815/resumeai/pkg/textnorm"
)

// Impact grades how strongly a formatting issue hurts machine parsing.
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Issue is one detected structural red flag.
type Issue struct {
	Name   string `json:"name"`
	Impact Impact `json:"impactLevel"`
}

// patternCheck flags an issue when its pattern occurs anywhere in the raw
// text. Checks run in declaration order so reports stay deterministic.
type patternCheck struct {
	issue Issue
	re    *regexp.Regexp
}

var patternChecks = []patternCheck{
	{
		issue: Issue{Name: "Tables detected", Impact: ImpactHigh},
		re:    regexp.MustCompile(`(?i)<table\b|\|[^|\n]+\|[^|\n]+\|`),
	},
	{
		issue: Issue{Name: "Headers or footers detected", Impact: ImpactMedium},
		re:    regexp.MustCompile(`(?i)<header\b|<footer\b|\bpage\s+\d+\s+of\s+\d+\b`),
	},
	{
		issue: Issue{Name: "Inline styling detected", Impact: ImpactMedium},
		re:    regexp.MustCompile(`(?i)style\s*=|font-family\s*:|text-align\s*:`),
	},
	{
		issue: Issue{Name: "Non-standard bullet characters", Impact: ImpactLow},
		re:    regexp.MustCompile(`[■◆▪●♦★➤»✓✔]`),
	},
	{
		issue: Issue{Name: "Multiple consecutive blank lines", Impact: ImpactLow},
		re:    regexp.MustCompile(`\n[ \t]*\n[ \t]*\n`),
	},
}

// sectionCheck flags a missing standard section when none of its marker
// keywords occur as whole words.
type sectionCheck struct {
	issue    Issue
	keywords []string
}

var sectionChecks = []sectionCheck{
	{
		issue:    Issue{Name: "Missing Education section", Impact: ImpactMedium},
		keywords: []string{"education", "academic", "degree", "university", "college"},
	},
	{
		issue:    Issue{Name: "Missing Experience section", Impact: ImpactHigh},
		keywords: []string{"experience", "employment", "work history", "job history", "professional background"},
	},
	{
		issue:    Issue{Name: "Missing Skills section", Impact: ImpactMedium},
		keywords: []string{"skills", "proficiencies", "competencies", "qualifications"},
	},
}

func detectIssues(text string) []Issue {
	issues := make([]Issue, 0, 4)
	for _, c := range patternChecks {
		if c.re.MatchString(text) {
			issues = append(issues, c.issue)
		}
	}
	for _, c := range sectionChecks {
		present := false
		for _, kw := range c.keywords {
			if textnorm.ContainsWord(text, kw) {
				present = true
				break
			}
		}
		if !present {
			issues = append(issues, c.issue)
		}
	}
	return issues
}
