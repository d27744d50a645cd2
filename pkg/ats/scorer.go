package ats

import (
	"math"
	"regexp"

	"github.com/artem13815/resumeai/pkg/extract"
	"github.com/artem13815/resumeai/pkg/skills"
	"github.com/artem13815/resumeai/pkg/textnorm"
)

// Report is the ATS compatibility breakdown for one resume. It is derived
// purely from the text and extracted fields and can be recomputed at any
// time.
type Report struct {
	OverallScore     int             `json:"atsScore"`
	KeywordScore     int             `json:"keywordScore"`
	FormattingScore  int             `json:"formattingScore"`
	ContactInfoScore int             `json:"contactInfoScore"`
	DetectedIndustry skills.Industry `json:"detectedIndustry"`
	FormattingIssues []Issue         `json:"formattingIssues"`
	ImprovementTips  []string        `json:"improvementTips"`
}

const (
	keywordWeight    = 0.5
	formattingWeight = 0.3
	contactWeight    = 0.2
)

var (
	contactNameRe  = regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`)
	contactEmailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	contactPhoneRe = regexp.MustCompile(`\(?\d{3}\)?[-.\s]\d{3}[-.\s]\d{4}|\b\d{10}\b`)
	contactPlaceRe = regexp.MustCompile(`\b[A-Z][a-z]+,\s*[A-Z]{2}\b|\b\d{5}(?:-\d{4})?\b`)
)

// Score computes the ATS report for raw resume text. It never returns an
// error: any internal failure produces the neutral degraded report instead
// of reaching the caller.
func Score(text string, fields extract.Fields) (rep Report) {
	defer func() {
		if r := recover(); r != nil {
			rep = DegradedReport()
		}
	}()

	industry, matched, total := detectIndustry(text)

	keywordScore := 0
	if total > 0 {
		keywordScore = int(math.Round(float64(matched) / float64(total) * 100))
		if keywordScore > 100 {
			keywordScore = 100
		}
	}

	issues := detectIssues(text)
	formattingScore := 100
	for _, is := range issues {
		switch is.Impact {
		case ImpactHigh:
			formattingScore -= 20
		case ImpactMedium:
			formattingScore -= 10
		case ImpactLow:
			formattingScore -= 5
		}
	}
	if formattingScore < 0 {
		formattingScore = 0
	}

	contactScore := contactInfoScore(text)

	overall := int(math.Round(float64(keywordScore)*keywordWeight +
		float64(formattingScore)*formattingWeight +
		float64(contactScore)*contactWeight))

	return Report{
		OverallScore:     overall,
		KeywordScore:     keywordScore,
		FormattingScore:  formattingScore,
		ContactInfoScore: contactScore,
		DetectedIndustry: industry,
		FormattingIssues: issues,
		ImprovementTips:  buildTips(industry, keywordScore, contactScore, issues),
	}
}

// detectIndustry counts whole-word hits per non-general industry keyword
// list. Ties keep the earlier-declared industry; zero hits everywhere means
// general.
func detectIndustry(text string) (industry skills.Industry, matched, total int) {
	best := skills.IndustryGeneral
	bestCount := 0
	bestMatched := 0
	for _, ind := range skills.IndustryOrder {
		count := 0
		found := 0
		for _, kw := range skills.IndustryKeywords[ind] {
			n := textnorm.CountWords(text, kw)
			count += n
			if n > 0 {
				found++
			}
		}
		if count > bestCount {
			best = ind
			bestCount = count
			bestMatched = found
		}
	}
	if best == skills.IndustryGeneral {
		found := 0
		for _, kw := range skills.IndustryKeywords[skills.IndustryGeneral] {
			if textnorm.CountWords(text, kw) > 0 {
				found++
			}
		}
		bestMatched = found
	}
	return best, bestMatched, len(skills.IndustryKeywords[best])
}

// contactInfoScore awards 25 points per present contact element: a
// two-word capitalized name, an email, a phone number, a location or ZIP.
func contactInfoScore(text string) int {
	score := 0
	for _, re := range []*regexp.Regexp{contactNameRe, contactEmailRe, contactPhoneRe, contactPlaceRe} {
		if re.MatchString(text) {
			score += 25
		}
	}
	return score
}

// DegradedReport is the neutral fallback when scoring fails internally.
func DegradedReport() Report {
	return Report{
		OverallScore:     50,
		KeywordScore:     50,
		FormattingScore:  50,
		ContactInfoScore: 50,
		DetectedIndustry: skills.IndustryGeneral,
		FormattingIssues: []Issue{},
		ImprovementTips:  []string{"We could not fully analyze this resume. Please try again with a different file."},
	}
}
