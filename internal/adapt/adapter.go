// Package adapt converts parser output into the flattened candidate and
// job shapes the scorer consumes.
package adapt

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

// Experience level thresholds in years.
const (
	seniorYears = 10
	midYears    = 5
	juniorYears = 2
)

// degreeRanks orders degree levels for comparison. Unlisted degrees rank 0.
var degreeRanks = map[string]int{
	"doctorate": 4,
	"phd":       4,
	"master":    3,
	"mba":       3,
	"bachelor":  2,
	"associate": 1,
	"diploma":   1,
}

var requiredYearsRe = regexp.MustCompile(`(\d+)\s*\+?\s*(?:-\s*\d+\s*)?years?`)

// SkillsInput accepts either shape skills arrive in: a flat list of names
// or a map of category to names. Both decode into the flat Names slice.
type SkillsInput struct {
	Names []string
}

// UnmarshalJSON decodes a JSON array of strings or an object whose values
// are arrays of strings. Category keys are sorted-insensitive: map order
// follows the encoded object where possible, otherwise name order.
func (s *SkillsInput) UnmarshalJSON(data []byte) error {
	data = []byte(strings.TrimSpace(string(data)))
	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, &s.Names)
	}

	var byCategory map[string][]string
	if err := json.Unmarshal(data, &byCategory); err != nil {
		return err
	}
	seen := make(map[string]bool)
	for _, names := range byCategory {
		for _, name := range names {
			key := strings.ToLower(name)
			if !seen[key] {
				seen[key] = true
				s.Names = append(s.Names, name)
			}
		}
	}
	return nil
}

// AdaptCandidate flattens a parsed resume into the candidate shape the
// scorer consumes.
func AdaptCandidate(resume types.ParsedResume) types.Candidate {
	years := totalExperienceYears(resume.Experience)

	return types.Candidate{
		Name:                 resume.Name,
		Skills:               resume.Skills.AllSkills,
		Experience:           resume.Experience,
		Education:            resume.Education,
		TotalExperienceYears: years,
		ExperienceLevel:      experienceLevel(years),
		EducationLevel:       highestDegree(resume.Education),
		Text:                 resume.Text,
	}
}

// AdaptJob flattens a parsed job into the target shape the scorer
// consumes. Required skill names come through as written; the scorer
// canonicalizes both sides before matching.
func AdaptJob(job types.ParsedJob, requiredSkills []string) types.JobTarget {
	text := strings.Join(append([]string{job.Title}, job.Responsibilities...), "\n")
	text = strings.TrimSpace(text + "\n" + strings.Join(job.RequiredSkills, "\n"))

	return types.JobTarget{
		Title:              job.Title,
		RequiredSkills:     requiredSkills,
		RequiredYears:      parseRequiredYears(job.ExperienceRequired),
		RequiredDegreeRank: DegreeRank(job.EducationRequired),
		Text:               text,
	}
}

// totalExperienceYears sums entry durations and converts to years,
// rounded to one decimal.
func totalExperienceYears(entries []types.Experience) float64 {
	months := 0
	for _, entry := range entries {
		if entry.DurationMonths != nil {
			months += *entry.DurationMonths
		}
	}
	return math.Round(float64(months)/12*10) / 10
}

// experienceLevel buckets years into a seniority label.
func experienceLevel(years float64) string {
	switch {
	case years >= seniorYears:
		return "senior"
	case years >= midYears:
		return "mid"
	case years >= juniorYears:
		return "junior"
	default:
		return "entry"
	}
}

// highestDegree returns the highest-ranked degree name across education
// entries, defaulting to "Bachelor's" when none are recognized.
func highestDegree(entries []types.Education) string {
	best := ""
	bestRank := 0
	for _, entry := range entries {
		if rank := DegreeRank(entry.Degree); rank > bestRank {
			best = entry.Degree
			bestRank = rank
		}
	}
	if best == "" {
		return "Bachelor's"
	}
	return best
}

// DegreeRank maps a degree description to its comparison rank. Text that
// names no recognized degree ranks 0.
func DegreeRank(degree string) int {
	lower := strings.ToLower(degree)
	best := 0
	for keyword, rank := range degreeRanks {
		if strings.Contains(lower, keyword) && rank > best {
			best = rank
		}
	}
	return best
}

// parseRequiredYears pulls the leading number from requirement phrasing
// like "3+ years" or "5-7 years of experience". Zero means unstated.
func parseRequiredYears(requirement string) float64 {
	m := requiredYearsRe.FindStringSubmatch(strings.ToLower(requirement))
	if m == nil {
		return 0
	}
	years := 0
	for _, ch := range m[1] {
		years = years*10 + int(ch-'0')
	}
	return float64(years)
}
