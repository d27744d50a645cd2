package scan

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeai/pkg/extract"
)

const sampleResume = "Jane Doe\njane.doe@example.com\n(555) 111-2222\n2019 - Present\nSkills: Python, SQL"

func TestAnalyzeRoundTrip(t *testing.T) {
	p := NewPipeline(nil)
	rt := ResumeText{FileName: "jane.txt", FileSize: int64(len(sampleResume)), Text: sampleResume}

	res := p.Analyze(rt, "what is their name")

	require.False(t, res.AnalysisError)
	assert.NotEqual(t, uuid.Nil, res.ID)
	assert.Equal(t, "jane.txt", res.FileName)
	assert.WithinDuration(t, time.Now().UTC(), res.Timestamp, time.Minute)

	assert.Equal(t, "Jane Doe", res.Profile.Name)
	assert.Equal(t, "jane.doe@example.com", res.Profile.Email)
	assert.Equal(t, "(555) 111-2222", res.Profile.Phone)
	assert.Equal(t, []string{"Python", "SQL"}, res.Profile.Skills)
	assert.Equal(t, time.Now().Year()-2019, res.Profile.YearsOfExperience)

	assert.Equal(t, "what is their name", res.Query.Query)
	assert.Contains(t, res.Query.AnswerHTML, `<span class="query-highlight">Jane Doe</span>`)

	assert.GreaterOrEqual(t, res.ATS.OverallScore, 0)
	assert.LessOrEqual(t, res.ATS.OverallScore, 100)
	require.Len(t, res.Insights, 4)
	assert.Contains(t, res.Insights[0], "Jane Doe")
}

func TestAnalyzeShortInput(t *testing.T) {
	p := NewPipeline(nil)
	for _, text := range []string{"", "   ", "too short to analyze"} {
		res := p.Analyze(ResumeText{FileName: "x.txt", Text: text}, "name?")

		require.True(t, res.AnalysisError, "text %q", text)
		assert.Equal(t, extract.Unknown, res.Profile.Name)
		assert.Equal(t, extract.Unknown, res.Profile.Email)
		assert.Empty(t, res.Profile.Skills)
		assert.Equal(t, 50, res.ATS.OverallScore)
		assert.Contains(t, res.Query.AnswerHTML, "could not read enough text")
		assert.NotEmpty(t, res.Insights)
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	p := NewPipeline(nil)
	rt := ResumeText{FileName: "jane.txt", Text: sampleResume}

	a := p.Analyze(rt, "skills")
	b := p.Analyze(rt, "skills")

	// IDs and timestamps differ per call; everything derived from the text
	// must not.
	assert.Equal(t, a.Profile, b.Profile)
	assert.Equal(t, a.ATS, b.ATS)
	assert.Equal(t, a.Query, b.Query)
	assert.Equal(t, a.Insights, b.Insights)
}

func TestBuildInsightsFallbacks(t *testing.T) {
	insights := buildInsights(emptyProfile())
	assert.Equal(t, []string{
		"Candidate name could not be detected.",
		"No contact details were detected.",
		"No dated experience ranges were detected.",
		"No specific skills were detected in this resume.",
	}, insights)
}

func TestRelevanceLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Excellent match"},
		{80, "Excellent match"},
		{79, "Good match"},
		{60, "Good match"},
		{59, "Moderate match"},
		{40, "Moderate match"},
		{39, "Low match"},
		{0, "Low match"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, relevanceLabel(tt.score), "score %d", tt.score)
	}
}

func TestBucketFor(t *testing.T) {
	assert.Equal(t, BucketJunior, bucketFor(0))
	assert.Equal(t, BucketJunior, bucketFor(2))
	assert.Equal(t, BucketMid, bucketFor(3))
	assert.Equal(t, BucketMid, bucketFor(5))
	assert.Equal(t, BucketSenior, bucketFor(6))
	assert.Equal(t, BucketSenior, bucketFor(40))
}
