package scan

import (
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/resumeai/pkg/ats"
	"github.com/artem13815/resumeai/pkg/extract"
)

// ResumeText is the decoded text payload handed to the pipeline by the
// document reader. The pipeline has no awareness of how it was decoded.
type ResumeText struct {
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	Text     string `json:"-"`
}

// Profile is the structured record recovered from a resume. It is built
// once per analysis and replaced, never patched, afterwards. Every field
// carries a defined sentinel instead of a null.
type Profile struct {
	Name              string   `json:"candidateName"`
	Email             string   `json:"candidateEmail"`
	Phone             string   `json:"candidatePhone"`
	Skills            []string `json:"matchingSkills"`
	YearsOfExperience int      `json:"yearsOfExperience"`
}

// QueryAnswer pairs the user's question with the rendered HTML-safe answer.
type QueryAnswer struct {
	Query      string `json:"queryPrompt"`
	AnswerHTML string `json:"queryResponse"`
}

// AnalysisResult is the single record surfaced to callers for one
// upload+query submission. This schema is canonical: call sites must not
// invent ad hoc extra fields.
type AnalysisResult struct {
	ID            uuid.UUID   `json:"id"`
	FileName      string      `json:"fileName"`
	FileSize      int64       `json:"fileSize"`
	Timestamp     time.Time   `json:"timestamp"`
	Profile       Profile     `json:"profile"`
	ATS           ats.Report  `json:"ats"`
	Query         QueryAnswer `json:"query"`
	AnalysisError bool        `json:"analysisError"`
	Insights      []string    `json:"insights"`
}

// emptyProfile is the defined-sentinel profile used on error paths.
func emptyProfile() Profile {
	return Profile{
		Name:   extract.Unknown,
		Email:  extract.Unknown,
		Phone:  extract.Unknown,
		Skills: []string{},
	}
}
