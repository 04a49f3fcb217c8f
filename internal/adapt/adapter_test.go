package adapt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

func months(n int) *int { return &n }

func TestSkillsInput_FlatArray(t *testing.T) {
	var in SkillsInput
	require.NoError(t, json.Unmarshal([]byte(`["Python", "Go", "AWS"]`), &in))
	assert.Equal(t, []string{"Python", "Go", "AWS"}, in.Names)
}

func TestSkillsInput_CategoryMap(t *testing.T) {
	var in SkillsInput
	require.NoError(t, json.Unmarshal([]byte(`{
		"programming_languages": ["Python", "Go"],
		"cloud_devops": ["AWS", "python"]
	}`), &in))

	assert.Len(t, in.Names, 3)
	assert.Contains(t, in.Names, "Go")
	assert.Contains(t, in.Names, "AWS")
}

func TestSkillsInput_Malformed(t *testing.T) {
	var in SkillsInput
	assert.Error(t, json.Unmarshal([]byte(`42`), &in))
}

func TestTotalExperienceYears(t *testing.T) {
	entries := []types.Experience{
		{DurationMonths: months(18)},
		{DurationMonths: months(30)},
	}
	assert.InDelta(t, 4.0, totalExperienceYears(entries), 0.001)
}

func TestTotalExperienceYears_SkipsUnknownDurations(t *testing.T) {
	entries := []types.Experience{
		{DurationMonths: months(24)},
		{DurationMonths: nil},
	}
	assert.InDelta(t, 2.0, totalExperienceYears(entries), 0.001)
	assert.Zero(t, totalExperienceYears(nil))
}

func TestExperienceLevel(t *testing.T) {
	tests := []struct {
		years float64
		want  string
	}{
		{0, "entry"},
		{1.9, "entry"},
		{2, "junior"},
		{4.9, "junior"},
		{5, "mid"},
		{9.9, "mid"},
		{10, "senior"},
		{25, "senior"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, experienceLevel(tt.years), "years=%v", tt.years)
	}
}

func TestHighestDegree(t *testing.T) {
	entries := []types.Education{
		{Degree: "Bachelor's"},
		{Degree: "PhD"},
		{Degree: "Master's"},
	}
	assert.Equal(t, "PhD", highestDegree(entries))
}

func TestHighestDegree_DefaultsToBachelors(t *testing.T) {
	assert.Equal(t, "Bachelor's", highestDegree(nil))
	assert.Equal(t, "Bachelor's", highestDegree([]types.Education{{Degree: "Certificate"}}))
}

func TestHighestDegree_DiplomaIsRecognized(t *testing.T) {
	// a diploma must rank alongside an associate degree, below a bachelor's,
	// not fall through to the bachelor's default
	assert.Equal(t, "Diploma", highestDegree([]types.Education{{Degree: "Diploma"}}))

	diploma := AdaptCandidate(types.ParsedResume{
		Education: []types.Education{{Degree: "Diploma"}},
	})
	assert.Equal(t, "Diploma", diploma.EducationLevel)
	assert.Equal(t, 1, DegreeRank(diploma.EducationLevel))
	assert.Less(t, DegreeRank("Diploma"), DegreeRank("Bachelor's"))
}

func TestDegreeRank(t *testing.T) {
	tests := []struct {
		degree string
		want   int
	}{
		{"PhD", 4},
		{"Doctorate in Physics", 4},
		{"Master's", 3},
		{"MBA", 3},
		{"Bachelor's degree in Computer Science", 2},
		{"Associate", 1},
		{"Diploma", 1},
		{"Diploma in Graphic Design", 1},
		{"Certificate", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DegreeRank(tt.degree), tt.degree)
	}
}

func TestParseRequiredYears(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"3+ years of experience", 3},
		{"5-7 years in backend development", 5},
		{"10 years", 10},
		{"Senior role", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, parseRequiredYears(tt.in), 0.001, tt.in)
	}
}

func TestAdaptCandidate(t *testing.T) {
	resume := types.ParsedResume{
		Name: "Jane Smith",
		Skills: types.SkillSet{
			AllSkills: []string{"Python", "React", "AWS"},
		},
		Experience: []types.Experience{
			{Title: "Engineer", DurationMonths: months(72)},
		},
		Education: []types.Education{{Degree: "Master's"}},
		Text:      "resume body",
	}

	candidate := AdaptCandidate(resume)

	assert.Equal(t, "Jane Smith", candidate.Name)
	assert.Equal(t, []string{"Python", "React", "AWS"}, candidate.Skills)
	assert.InDelta(t, 6.0, candidate.TotalExperienceYears, 0.001)
	assert.Equal(t, "mid", candidate.ExperienceLevel)
	assert.Equal(t, "Master's", candidate.EducationLevel)
}

func TestAdaptJob(t *testing.T) {
	job := types.ParsedJob{
		Title:              "Backend Engineer",
		Responsibilities:   []string{"Build services"},
		RequiredSkills:     []string{"5+ years with Go"},
		ExperienceRequired: "5+ years of backend experience",
		EducationRequired:  "Bachelor's degree required",
	}

	target := AdaptJob(job, []string{"Go", "PostgreSQL"})

	assert.Equal(t, "Backend Engineer", target.Title)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, target.RequiredSkills)
	assert.InDelta(t, 5.0, target.RequiredYears, 0.001)
	assert.Equal(t, 2, target.RequiredDegreeRank)
	assert.Contains(t, target.Text, "Build services")
	assert.Contains(t, target.Text, "Backend Engineer")
}
