package scan

import (
	"fmt"
	"sort"
	"sync"

	"github.com/artem13815/resumeai/pkg/extract"
)

// Experience bucket labels used by the batch histogram.
const (
	BucketJunior = "Junior (0-2 years)"
	BucketMid    = "Mid-level (3-5 years)"
	BucketSenior = "Senior (6+ years)"
)

// BestMatch ranks one candidate inside a batch by ATS score.
type BestMatch struct {
	Name      string `json:"name"`
	FileName  string `json:"fileName"`
	Score     int    `json:"score"`
	Relevance string `json:"relevance"`
}

// Correlation is the cross-resume aggregation computed after every
// individual analysis has finished. It is an explicit fan-in step, not part
// of the per-resume pipeline.
type Correlation struct {
	CandidateCount         int            `json:"candidateCount"`
	BestMatches            []BestMatch    `json:"bestMatches"`
	CommonSkills           []string       `json:"commonSkills"`
	ExperienceDistribution map[string]int `json:"experienceDistribution"`
	Insights               []string       `json:"insights"`
}

// BatchResult is the outcome of a multi-resume scan.
type BatchResult struct {
	QueryPrompt string           `json:"queryPrompt"`
	Results     []AnalysisResult `json:"individualResults"`
	Correlation *Correlation     `json:"correlationAnalysis,omitempty"`
}

// AnalyzeBatch analyzes each document independently and, when more than one
// succeeded, correlates the results. Per-document failures stay in the
// output as structured error records and are excluded from correlation.
func (p *Pipeline) AnalyzeBatch(docs []ResumeText, queryText string) BatchResult {
	results := make([]AnalysisResult, len(docs))

	var wg sync.WaitGroup
	for i, doc := range docs {
		wg.Add(1)
		go func(i int, doc ResumeText) {
			defer wg.Done()
			results[i] = p.Analyze(doc, queryText)
		}(i, doc)
	}
	wg.Wait()

	out := BatchResult{QueryPrompt: queryText, Results: results}

	ok := make([]AnalysisResult, 0, len(results))
	for _, r := range results {
		if !r.AnalysisError {
			ok = append(ok, r)
		}
	}
	if len(ok) > 1 {
		out.Correlation = correlate(ok)
	}
	return out
}

func correlate(results []AnalysisResult) *Correlation {
	c := &Correlation{
		CandidateCount: len(results),
		ExperienceDistribution: map[string]int{
			BucketJunior: 0,
			BucketMid:    0,
			BucketSenior: 0,
		},
	}

	for _, r := range results {
		c.BestMatches = append(c.BestMatches, BestMatch{
			Name:      r.Profile.Name,
			FileName:  r.FileName,
			Score:     r.ATS.OverallScore,
			Relevance: relevanceLabel(r.ATS.OverallScore),
		})
		c.ExperienceDistribution[bucketFor(r.Profile.YearsOfExperience)]++
	}
	sort.SliceStable(c.BestMatches, func(i, j int) bool {
		return c.BestMatches[i].Score > c.BestMatches[j].Score
	})

	c.CommonSkills = commonSkills(results)
	c.Insights = correlationInsights(c, results)
	return c
}

func relevanceLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent match"
	case score >= 60:
		return "Good match"
	case score >= 40:
		return "Moderate match"
	default:
		return "Low match"
	}
}

func bucketFor(years int) string {
	switch {
	case years <= 2:
		return BucketJunior
	case years <= 5:
		return BucketMid
	default:
		return BucketSenior
	}
}

// commonSkills intersects skill sets across all results, preserving the
// first result's ordering (which is dictionary order).
func commonSkills(results []AnalysisResult) []string {
	common := make([]string, 0, len(results[0].Profile.Skills))
	for _, skill := range results[0].Profile.Skills {
		everywhere := true
		for _, r := range results[1:] {
			found := false
			for _, s := range r.Profile.Skills {
				if s == skill {
					found = true
					break
				}
			}
			if !found {
				everywhere = false
				break
			}
		}
		if everywhere {
			common = append(common, skill)
		}
	}
	return common
}

func correlationInsights(c *Correlation, results []AnalysisResult) []string {
	insights := make([]string, 0, 3)

	top := c.BestMatches[0]
	if top.Name != extract.Unknown {
		insights = append(insights, fmt.Sprintf("%s has the strongest ATS compatibility (%d%%).", top.Name, top.Score))
	} else {
		insights = append(insights, fmt.Sprintf("%s has the strongest ATS compatibility (%d%%).", top.FileName, top.Score))
	}

	if len(c.CommonSkills) > 0 {
		insights = append(insights, fmt.Sprintf("%d skills are shared by every candidate.", len(c.CommonSkills)))
	} else {
		insights = append(insights, "No single skill is shared by every candidate.")
	}

	if n := c.ExperienceDistribution[BucketSenior]; n > 0 {
		insights = append(insights, fmt.Sprintf("%d of %d candidates have senior-level experience.", n, len(results)))
	}
	return insights
}
