package pipeline

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/skills"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

const pipelineTaxonomyJSON = `{
	"version": "test",
	"total_unique_skills": 6,
	"skills_by_industry": {
		"programming_languages": [
			{"skill": "Python", "count": 100},
			{"skill": "JavaScript", "count": 90}
		],
		"frameworks": [
			{"skill": "React", "count": 80}
		],
		"cloud_devops": [
			{"skill": "AWS", "count": 85},
			{"skill": "Docker", "count": 75}
		],
		"databases": [
			{"skill": "PostgreSQL", "count": 60}
		]
	}
}`

const sampleResumeText = `Jane Smith
jane.smith@example.com
(555) 123-4567

EXPERIENCE
Software Engineer | Acme Corp | 01/2020 - Present
- Built Python services on AWS

EDUCATION
Bachelor of Science in Computer Science, State University, 2018

SKILLS
Python, React, AWS`

const sampleJobText = `Backend Engineer
Acme Corp
Austin, TX

Requirements:
- Python
- Docker
- AWS
- 5+ years of experience`

func newTestRunner(t *testing.T, opts Options) *Runner {
	t.Helper()
	tax, err := skills.ParseTaxonomy([]byte(pipelineTaxonomyJSON))
	require.NoError(t, err)
	opts.Logger = zerolog.Nop()
	return NewRunner(tax, opts)
}

func txtDoc(name, text string) types.Document {
	return types.Document{Name: name, Format: "txt", Data: []byte(text)}
}

func TestParseResume_FullDocument(t *testing.T) {
	runner := newTestRunner(t, Options{})

	resume := runner.ParseResume(context.Background(), txtDoc("jane.txt", sampleResumeText))

	require.True(t, resume.Success)
	assert.Equal(t, "txt", resume.FileType)
	assert.Equal(t, "text", resume.ExtractionMethod)
	assert.Equal(t, "Jane Smith", resume.Name)
	assert.Equal(t, []string{"jane.smith@example.com"}, resume.ContactInfo.Emails)
	assert.Len(t, resume.ContactInfo.Phones, 1)

	assert.Contains(t, resume.SectionsFound, "experience")
	assert.Contains(t, resume.SectionsFound, "education")
	assert.Contains(t, resume.SectionsFound, "skills")

	assert.ElementsMatch(t, []string{"Python", "React", "AWS"}, resume.Skills.AllSkills)

	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "Software Engineer", resume.Experience[0].Title)
	assert.Equal(t, "Acme Corp", resume.Experience[0].Company)

	require.Len(t, resume.Education, 1)
	assert.Equal(t, "Bachelor's", resume.Education[0].Degree)
}

func TestParseResume_EmptyFileIsSuccess(t *testing.T) {
	runner := newTestRunner(t, Options{})

	resume := runner.ParseResume(context.Background(), txtDoc("empty.txt", ""))

	assert.True(t, resume.Success)
	assert.Zero(t, resume.CharCount)
	assert.Zero(t, resume.WordCount)
	assert.Empty(t, resume.SectionsFound)
	assert.NotNil(t, resume.Skills.AllSkills)
	assert.NotNil(t, resume.Experience)
}

func TestParseResume_UnsupportedFormat(t *testing.T) {
	runner := newTestRunner(t, Options{})

	resume := runner.ParseResume(context.Background(), types.Document{
		Name: "resume.rtf", Format: "rtf", Data: []byte("{\\rtf1}"),
	})

	assert.False(t, resume.Success)
	assert.Contains(t, resume.Error, "unsupported format")
}

func TestParseResume_JSONRoundTrip(t *testing.T) {
	runner := newTestRunner(t, Options{})

	first := runner.ParseResume(context.Background(), txtDoc("jane.txt", sampleResumeText))
	require.True(t, first.Success)
	data, err := json.Marshal(first)
	require.NoError(t, err)

	reloaded := runner.ParseResume(context.Background(), types.Document{
		Name: "jane.json", Format: "json", Data: data,
	})

	require.True(t, reloaded.Success)
	assert.Equal(t, first.Name, reloaded.Name)
	assert.Equal(t, first.Skills.AllSkills, reloaded.Skills.AllSkills)
	assert.Equal(t, first.Experience, reloaded.Experience)

	// the reloaded parse scores identically to the original
	job := runner.ParseJob(sampleJobText)
	fromReloaded := runner.Match(context.Background(), reloaded, job)
	assert.InDelta(t, 66.7, fromReloaded.SkillMatch, 0.001)
}

func TestParseResume_JSONLegacySkillShapes(t *testing.T) {
	runner := newTestRunner(t, Options{})
	job := runner.ParseJob(sampleJobText)

	for name, doc := range map[string]string{
		"flat list":    `{"name": "Jane Smith", "skills": ["Python", "React", "AWS"]}`,
		"category map": `{"name": "Jane Smith", "skills": {"languages": ["Python"], "frontend": ["React"], "cloud": ["AWS"]}}`,
	} {
		t.Run(name, func(t *testing.T) {
			resume := runner.ParseResume(context.Background(), types.Document{
				Name: "legacy.json", Format: "json", Data: []byte(doc),
			})
			require.True(t, resume.Success)

			result := runner.Match(context.Background(), resume, job)
			assert.InDelta(t, 66.7, result.SkillMatch, 0.001)
			assert.ElementsMatch(t, []string{"Python", "AWS"}, result.MatchedSkills)
		})
	}
}

func TestParseResume_JSONMalformed(t *testing.T) {
	runner := newTestRunner(t, Options{})

	resume := runner.ParseResume(context.Background(), types.Document{
		Name: "broken.json", Format: "json", Data: []byte("not json"),
	})

	assert.False(t, resume.Success)
	assert.Contains(t, resume.Error, "failed to decode resume JSON")
}

func TestParseResume_Timeout(t *testing.T) {
	runner := newTestRunner(t, Options{Timeout: time.Nanosecond})

	resume := runner.ParseResume(context.Background(), txtDoc("jane.txt", sampleResumeText))

	assert.False(t, resume.Success)
	assert.Equal(t, "document processing timed out", resume.Error)
}

func TestParseJob(t *testing.T) {
	runner := newTestRunner(t, Options{})

	job := runner.ParseJob(sampleJobText)

	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, "Acme Corp", job.Company)
	assert.Equal(t, "Austin, TX", job.Location)
	assert.Len(t, job.RequiredSkills, 4)
	assert.Contains(t, job.ExperienceRequired, "5+ years")
}

func TestParseJobHTML(t *testing.T) {
	runner := newTestRunner(t, Options{})

	job, err := runner.ParseJobHTML(`<html><body>
<h1>Backend Engineer</h1>
<p>Acme Corp</p>
<h2>Requirements</h2>
<ul><li>Python</li><li>AWS</li></ul>
<script>ignore();</script>
</body></html>`)

	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, "Acme Corp", job.Company)
}

func TestMatch_EndToEnd(t *testing.T) {
	runner := newTestRunner(t, Options{})

	resume := runner.ParseResume(context.Background(), txtDoc("jane.txt", sampleResumeText))
	require.True(t, resume.Success)
	job := runner.ParseJob(sampleJobText)

	result := runner.Match(context.Background(), resume, job)

	assert.InDelta(t, 66.7, result.SkillMatch, 0.001)
	assert.ElementsMatch(t, []string{"Python", "AWS"}, result.MatchedSkills)
	assert.Equal(t, []string{"Docker"}, result.MissingSkills)
	assert.Equal(t, 2, result.MatchCount)
	assert.Equal(t, 3, result.TotalRequired)
	assert.Greater(t, result.OverallScore, 0.0)
	assert.LessOrEqual(t, result.OverallScore, 100.0)
	assert.NotEmpty(t, result.Explanation)
}

func TestMatch_FallsBackToResponsibilities(t *testing.T) {
	runner := newTestRunner(t, Options{})

	resume := runner.ParseResume(context.Background(), txtDoc("jane.txt", sampleResumeText))
	job := runner.ParseJob(`Python Platform Engineer
Acme Corp

Responsibilities:
- Maintain Python tooling and AWS infrastructure`)

	result := runner.Match(context.Background(), resume, job)

	assert.NotZero(t, result.TotalRequired)
	assert.Contains(t, result.MatchedSkills, "Python")
}

func TestParseBatch(t *testing.T) {
	runner := newTestRunner(t, Options{})

	docs := []types.Document{
		txtDoc("a.txt", sampleResumeText),
		txtDoc("b.txt", "Short note without resume structure"),
		{Name: "c.rtf", Format: "rtf", Data: []byte("nope")},
	}

	var updates []Progress
	batch := runner.ParseBatch(context.Background(), docs, 2, func(p Progress) {
		updates = append(updates, p)
	})

	assert.NotEmpty(t, batch.RunID)
	assert.Equal(t, 3, batch.Total)
	assert.Equal(t, 2, batch.Success)
	assert.Equal(t, 1, batch.Failed)

	// results stay in input order regardless of completion order
	require.Len(t, batch.Results, 3)
	assert.True(t, batch.Results[0].Success)
	assert.True(t, batch.Results[1].Success)
	assert.False(t, batch.Results[2].Success)

	require.Len(t, updates, 3)
	assert.Equal(t, 3, updates[2].Processed)
	assert.Equal(t, batch.RunID, updates[0].RunID)
}

func TestRank_BestMatchFirst(t *testing.T) {
	runner := newTestRunner(t, Options{})

	strongCandidate := sampleResumeText
	weakCandidate := `John Doe
john.doe@example.com

SKILLS
JavaScript, PostgreSQL`

	docs := []types.Document{
		txtDoc("weak.txt", weakCandidate),
		txtDoc("broken.rtf", "x"),
		txtDoc("strong.txt", strongCandidate),
	}
	docs[1].Format = "rtf"

	batch := runner.ParseBatch(context.Background(), docs, 2, nil)
	job := runner.ParseJob(sampleJobText)

	ranked := runner.Rank(context.Background(), docs, batch.Results, job)

	// failed parses are excluded; the stronger skill overlap ranks first
	require.Len(t, ranked, 2)
	assert.Equal(t, "strong.txt", ranked[0].FileName)
	assert.Equal(t, "weak.txt", ranked[1].FileName)
	assert.Greater(t, ranked[0].Result.OverallScore, ranked[1].Result.OverallScore)
}

func TestParseBatch_ZeroDocs(t *testing.T) {
	runner := newTestRunner(t, Options{})

	batch := runner.ParseBatch(context.Background(), nil, 4, nil)

	assert.Zero(t, batch.Total)
	assert.Empty(t, batch.Results)
	assert.NotEmpty(t, batch.RunID)
}
