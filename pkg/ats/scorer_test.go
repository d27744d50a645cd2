package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeai/pkg/extract"
	"github.com/artem13815/resumeai/pkg/skills"
)

const cleanResume = `Jane Doe
jane.doe@example.com
(555) 111-2222
Experience
2019 - Present
Skills: Python, SQL
Education: BSc Computer Science`

func TestScoreBounds(t *testing.T) {
	inputs := []string{
		"",
		"short",
		cleanResume,
		"||||| garbage ||||| \n\n\n\n ● ● ●",
		"software developer engineer code api cloud devops testing backend frontend",
	}
	for _, text := range inputs {
		rep := Score(text, extract.Fields{})
		for name, score := range map[string]int{
			"overall":    rep.OverallScore,
			"keyword":    rep.KeywordScore,
			"formatting": rep.FormattingScore,
			"contact":    rep.ContactInfoScore,
		} {
			assert.GreaterOrEqual(t, score, 0, "%s score for %q", name, text)
			assert.LessOrEqual(t, score, 100, "%s score for %q", name, text)
		}
		assert.NotEmpty(t, rep.DetectedIndustry)
		assert.NotNil(t, rep.FormattingIssues)
		assert.NotEmpty(t, rep.ImprovementTips)
	}
}

func TestScoreCleanResume(t *testing.T) {
	rep := Score(cleanResume, extract.Fields{})

	// "experience", "skills" and "education" hit the general list
	assert.Equal(t, skills.IndustryGeneral, rep.DetectedIndustry)
	assert.Equal(t, 30, rep.KeywordScore)
	assert.Equal(t, 100, rep.FormattingScore)
	assert.Empty(t, rep.FormattingIssues)
	// name, email and phone present, no location
	assert.Equal(t, 75, rep.ContactInfoScore)
	assert.Equal(t, 60, rep.OverallScore)
}

func TestDetectIndustry(t *testing.T) {
	tests := []struct {
		name string
		text string
		want skills.Industry
	}{
		{
			name: "software keywords dominate",
			text: "software developer writing code for cloud api backends",
			want: skills.IndustrySoftware,
		},
		{
			name: "marketing keywords dominate",
			text: "seo campaign audience engagement conversion brand",
			want: skills.IndustryMarketing,
		},
		{
			name: "finance keywords dominate",
			text: "audit budget tax compliance forecasting portfolio",
			want: skills.IndustryFinance,
		},
		{
			name: "healthcare keywords dominate",
			text: "patient clinical nursing hospital hipaa treatment",
			want: skills.IndustryHealthcare,
		},
		{
			name: "tie keeps earlier declared industry",
			text: "software marketing",
			want: skills.IndustrySoftware,
		},
		{
			name: "no hits means general",
			text: "completely unrelated words here",
			want: skills.IndustryGeneral,
		},
		{
			name: "empty text means general",
			text: "",
			want: skills.IndustryGeneral,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, total := detectIndustry(tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(skills.IndustryKeywords[tt.want]), total)
		})
	}
}

func TestDetectIssues(t *testing.T) {
	text := "| col | col |\nPage 1 of 2\nstyle=\"font-weight:bold\"\n● point\n\n\n\nnothing else"
	issues := detectIssues(text)

	names := make([]string, 0, len(issues))
	for _, is := range issues {
		names = append(names, is.Name)
	}
	assert.Equal(t, []string{
		"Tables detected",
		"Headers or footers detected",
		"Inline styling detected",
		"Non-standard bullet characters",
		"Multiple consecutive blank lines",
		"Missing Education section",
		"Missing Experience section",
		"Missing Skills section",
	}, names)

	rep := Score(text, extract.Fields{})
	// 20+10+10+5+5 pattern hits plus 10+20+10 missing sections
	assert.Equal(t, 10, rep.FormattingScore)
}

func TestDetectIssuesSectionsPresent(t *testing.T) {
	text := "EXPERIENCE at a company\nEducation details\nSkills list"
	for _, is := range detectIssues(text) {
		assert.NotContains(t, is.Name, "Missing")
	}
}

func TestBuildTips(t *testing.T) {
	t.Run("low keyword score yields industry tips", func(t *testing.T) {
		tips := buildTips(skills.IndustrySoftware, 40, 100, nil)
		require.Len(t, tips, 5)
		assert.Contains(t, tips[0], "software")
		assert.Contains(t, tips[1], "software")
		assert.Contains(t, tips[2], "software")
	})

	t.Run("high impact issues become critical tips", func(t *testing.T) {
		issues := []Issue{
			{Name: "Tables detected", Impact: ImpactHigh},
			{Name: "Non-standard bullet characters", Impact: ImpactLow},
		}
		tips := buildTips(skills.IndustryGeneral, 90, 100, issues)
		assert.Contains(t, tips, "Fix critical issue: Tables detected.")
		assert.NotContains(t, tips, "Fix critical issue: Non-standard bullet characters.")
	})

	t.Run("low contact score adds contact tip", func(t *testing.T) {
		tips := buildTips(skills.IndustryGeneral, 90, 50, nil)
		assert.Contains(t, tips[0], "name, email, phone number and location")
	})

	t.Run("closing tips always present", func(t *testing.T) {
		tips := buildTips(skills.IndustryGeneral, 100, 100, nil)
		require.Len(t, tips, 2)
		assert.Contains(t, tips[0], "standard section headings")
		assert.Contains(t, tips[1], "single-column layout")
	})
}

func TestDegradedReport(t *testing.T) {
	rep := DegradedReport()
	assert.Equal(t, 50, rep.OverallScore)
	assert.Equal(t, 50, rep.KeywordScore)
	assert.Equal(t, 50, rep.FormattingScore)
	assert.Equal(t, 50, rep.ContactInfoScore)
	assert.Equal(t, skills.IndustryGeneral, rep.DetectedIndustry)
	assert.Empty(t, rep.FormattingIssues)
	require.Len(t, rep.ImprovementTips, 1)
}
