package scan

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/resumeai/pkg/ats"
	"github.com/artem13815/resumeai/pkg/extract"
	"github.com/artem13815/resumeai/pkg/query"
	"github.com/artem13815/resumeai/pkg/skills"
	"github.com/artem13815/resumeai/pkg/textnorm"
)

// MinTextLen is the guard threshold: shorter payloads are treated as a
// failed extraction and never reach the field detectors.
const MinTextLen = 50

const extractionFailedMessage = "We could not read enough text from this file. " +
	"If it is a PDF, make sure the text is selectable, or upload a .docx or .txt version instead."

// Pipeline orchestrates normalization, field extraction, skill matching,
// ATS scoring and query answering over one text payload. It holds no
// mutable state across calls and is safe for concurrent use.
type Pipeline struct {
	extractor *extract.Extractor
	log       *zap.Logger
	now       func() time.Time
}

// NewPipeline returns a pipeline using the wall clock.
func NewPipeline(log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		extractor: extract.New(),
		log:       log,
		now:       time.Now,
	}
}

// Analyze produces one AnalysisResult for a document and a free-text query.
// It has exactly three terminal outcomes: a successful result, a structured
// extraction-error result, or a degraded fallback. It never panics into the
// caller.
func (p *Pipeline) Analyze(rt ResumeText, queryText string) (res AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("analysis recovered from internal failure",
				zap.Any("panic", r), zap.String("file", rt.FileName))
			res = p.degradedResult(rt, queryText)
		}
	}()

	text := strings.TrimSpace(rt.Text)
	if len(text) < MinTextLen {
		return p.errorResult(rt, queryText)
	}

	normalized := textnorm.Normalize(text)
	fields := p.extractor.Extract(normalized)
	matched := skills.Match(normalized.Flat)

	profile := Profile{
		Name:              fields.Name,
		Email:             fields.Email,
		Phone:             fields.Phone,
		Skills:            matched,
		YearsOfExperience: fields.YearsOfExperience,
	}

	report := ats.Score(text, fields)

	answer := query.Answer(queryText, query.Profile{
		Name:              profile.Name,
		Email:             profile.Email,
		Phone:             profile.Phone,
		Skills:            profile.Skills,
		YearsOfExperience: profile.YearsOfExperience,
	})

	return AnalysisResult{
		ID:        uuid.New(),
		FileName:  rt.FileName,
		FileSize:  rt.FileSize,
		Timestamp: p.now().UTC(),
		Profile:   profile,
		ATS:       report,
		Query:     QueryAnswer{Query: queryText, AnswerHTML: answer},
		Insights:  buildInsights(profile),
	}
}

// errorResult is the structured outcome for unreadable or near-empty input.
func (p *Pipeline) errorResult(rt ResumeText, queryText string) AnalysisResult {
	return AnalysisResult{
		ID:            uuid.New(),
		FileName:      rt.FileName,
		FileSize:      rt.FileSize,
		Timestamp:     p.now().UTC(),
		Profile:       emptyProfile(),
		ATS:           ats.DegradedReport(),
		Query:         QueryAnswer{Query: queryText, AnswerHTML: extractionFailedMessage},
		AnalysisError: true,
		Insights: []string{
			"Unable to process this file.",
			"No usable text could be extracted - the document may be image-based or protected.",
			"Try uploading a .docx or plain-text version of the resume.",
		},
	}
}

// degradedResult absorbs unexpected internal failures into a valid record.
func (p *Pipeline) degradedResult(rt ResumeText, queryText string) AnalysisResult {
	return AnalysisResult{
		ID:            uuid.New(),
		FileName:      rt.FileName,
		FileSize:      rt.FileSize,
		Timestamp:     p.now().UTC(),
		Profile:       emptyProfile(),
		ATS:           ats.DegradedReport(),
		Query:         QueryAnswer{Query: queryText, AnswerHTML: "Sorry, I couldn't analyze this resume. Please try again."},
		AnalysisError: true,
		Insights:      []string{"Error processing the resume. Please check the file and try again."},
	}
}
