package scan

import (
	"fmt"
	"strings"

	"github.com/artem13815/resumeai/pkg/extract"
)

const insightSkillCount = 5

// buildInsights renders the fixed-size human-readable summary for a
// successful analysis: identity, contact details, experience, top skills.
func buildInsights(p Profile) []string {
	insights := make([]string, 0, 4)

	if p.Name != extract.Unknown {
		insights = append(insights, fmt.Sprintf("Candidate identified as %s.", p.Name))
	} else {
		insights = append(insights, "Candidate name could not be detected.")
	}

	switch {
	case p.Email != extract.Unknown && p.Phone != extract.Unknown:
		insights = append(insights, fmt.Sprintf("Contact details found: %s, %s.", p.Email, p.Phone))
	case p.Email != extract.Unknown:
		insights = append(insights, fmt.Sprintf("Contact details found: %s.", p.Email))
	case p.Phone != extract.Unknown:
		insights = append(insights, fmt.Sprintf("Contact details found: %s.", p.Phone))
	default:
		insights = append(insights, "No contact details were detected.")
	}

	if p.YearsOfExperience > 0 {
		insights = append(insights, fmt.Sprintf("Approximately %d years of experience detected.", p.YearsOfExperience))
	} else {
		insights = append(insights, "No dated experience ranges were detected.")
	}

	if len(p.Skills) > 0 {
		top := p.Skills
		if len(top) > insightSkillCount {
			top = top[:insightSkillCount]
		}
		insights = append(insights, fmt.Sprintf("Key skills: %s.", strings.Join(top, ", ")))
	} else {
		insights = append(insights, "No specific skills were detected in this resume.")
	}

	return insights
}
