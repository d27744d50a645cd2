package ats

import (
	"fmt"

	"github.com/artem13815/resumeai/pkg/skills"
)

const (
	keywordTipThreshold = 70
	contactTipThreshold = 75
)

// buildTips assembles the deterministic improvement checklist. Rules fire in
// a fixed order; the two closing formatting tips are always present.
func buildTips(industry skills.Industry, keywordScore, contactScore int, issues []Issue) []string {
	tips := make([]string, 0, 8)

	if keywordScore < keywordTipThreshold {
		tips = append(tips,
			fmt.Sprintf("Add more %s industry keywords throughout your resume.", industry),
			fmt.Sprintf("Mirror the terminology used in %s job postings you are applying to.", industry),
			fmt.Sprintf("Include a summary section highlighting your %s background.", industry),
		)
	}

	for _, is := range issues {
		if is.Impact == ImpactHigh {
			tips = append(tips, fmt.Sprintf("Fix critical issue: %s.", is.Name))
		}
	}

	if contactScore < contactTipThreshold {
		tips = append(tips, "Make sure your name, email, phone number and location appear near the top of the resume.")
	}

	tips = append(tips,
		"Use standard section headings like Experience, Education and Skills.",
		"Prefer a simple single-column layout with standard bullet points.",
	)
	return tips
}
