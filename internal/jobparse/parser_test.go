package jobparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

const samplePosting = `Senior Backend Engineer
Acme Corp
San Francisco, CA

Responsibilities:
• Design and build distributed services
• Own the deployment pipeline

Requirements:
• 5+ years of backend development experience
• Bachelor's degree in Computer Science or related field
• Proficiency with Go and PostgreSQL

Nice to Have:
• Experience with Kubernetes

Benefits:
• Health insurance
• $150,000 - $180,000 per year`

func TestParse_FullPosting(t *testing.T) {
	job := NewParser().Parse(samplePosting)

	assert.Equal(t, "Senior Backend Engineer", job.Title)
	assert.Equal(t, "Acme Corp", job.Company)
	assert.Equal(t, "San Francisco, CA", job.Location)

	require.Len(t, job.Responsibilities, 2)
	assert.Equal(t, "Design and build distributed services", job.Responsibilities[0])

	require.Len(t, job.RequiredSkills, 3)
	assert.Contains(t, job.RequiredSkills[2], "Go and PostgreSQL")

	require.Len(t, job.PreferredSkills, 1)
	assert.Contains(t, job.PreferredSkills[0], "Kubernetes")

	assert.Len(t, job.Benefits, 2)
}

func TestParse_RequirementSummaries(t *testing.T) {
	job := NewParser().Parse(samplePosting)

	assert.Contains(t, job.ExperienceRequired, "5+ years")
	assert.Contains(t, job.EducationRequired, "Bachelor")
	assert.Contains(t, job.SalaryRange, "150,000")
}

func TestParse_LabeledFields(t *testing.T) {
	job := NewParser().Parse(`Data Engineer
Company: Beta Analytics
Location: Remote
Job Type: Contract
Salary: $90/hr

Requirements:
3-5 years working with data pipelines
Master's degree preferred`)

	assert.Equal(t, "Data Engineer", job.Title)
	assert.Equal(t, "Beta Analytics", job.Company)
	assert.Equal(t, "Remote", job.Location)
	assert.Equal(t, "Contract", job.JobType)
	assert.Equal(t, "$90/hr", job.SalaryRange)

	// unbulleted requirement lines combine into a single entry
	require.Len(t, job.RequiredSkills, 1)
	assert.Contains(t, job.ExperienceRequired, "3-5 years")
	assert.Contains(t, job.EducationRequired, "Master")
}

func TestParse_EmptyInput(t *testing.T) {
	job := NewParser().Parse("")

	assert.Empty(t, job.Title)
	require.NotNil(t, job.Responsibilities)
	require.NotNil(t, job.RequiredSkills)
	require.NotNil(t, job.PreferredSkills)
	require.NotNil(t, job.Benefits)
	assert.Empty(t, job.RequiredSkills)
}

func TestParse_NonLocationThirdLine(t *testing.T) {
	job := NewParser().Parse(`Platform Engineer
Gamma Systems
We build infrastructure tooling

Responsibilities:
• Keep the lights on`)

	assert.Equal(t, "Platform Engineer", job.Title)
	assert.Equal(t, "Gamma Systems", job.Company)
	assert.Empty(t, job.Location)
	assert.Len(t, job.Responsibilities, 1)
}

func TestParseLeading_LeavesUnrecognizedLinesForBody(t *testing.T) {
	p := NewParser()
	var job types.ParsedJob

	next := p.parseLeading([]string{
		"Platform Engineer",
		"Gamma Systems",
		"We build infrastructure tooling",
		"and run it in production",
	}, &job)

	// scanning resumes at the unrecognized third line, not past it
	assert.Equal(t, 2, next)
	assert.Equal(t, "Platform Engineer", job.Title)
	assert.Equal(t, "Gamma Systems", job.Company)
	assert.Empty(t, job.Location)
}

func TestMatchJobHeading(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"Responsibilities:", "responsibilities"},
		{"What You'll Do", "responsibilities"},
		{"Qualifications", "requirements"},
		{"Minimum Qualifications:", "requirements"},
		{"Preferred Qualifications", "preferred"},
		{"Nice to Have", "preferred"},
		{"What We Offer", "benefits"},
		{"Random paragraph text", ""},
		{"A line that is far too long to ever be treated as a section heading by anyone", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, matchJobHeading(tt.line))
		})
	}
}

func TestSplitItems_MixedBulletsAndPlain(t *testing.T) {
	items := splitItems([]string{
		"We are looking for someone who can",
		"work across the stack.",
		"- Build APIs",
		"- Review code",
	})

	require.Len(t, items, 3)
	assert.Equal(t, "We are looking for someone who can work across the stack.", items[0])
	assert.Equal(t, "Build APIs", items[1])
	assert.Equal(t, "Review code", items[2])
}
