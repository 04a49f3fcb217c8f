package scoring

import (
	"fmt"
	"strings"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

// explain renders a natural-language rationale for a match result,
// naming the strongest matching skills and the most important gaps.
func explain(candidate types.Candidate, job types.JobTarget, result types.MatchResult) string {
	var parts []string

	name := candidate.Name
	if name == "" {
		name = "The candidate"
	}
	title := job.Title
	if title == "" {
		title = "this role"
	}

	parts = append(parts, fmt.Sprintf("%s scores %.1f/100 for %s.", name, result.OverallScore, title))

	switch {
	case result.TotalRequired == 0:
		parts = append(parts, "The job lists no required skills, so skill overlap could not be assessed.")
	case result.MatchCount == result.TotalRequired:
		parts = append(parts, fmt.Sprintf("All %d required skills are present (%s).",
			result.TotalRequired, joinSkills(result.MatchedSkills)))
	case result.MatchCount > 0:
		parts = append(parts, fmt.Sprintf("%d of %d required skills matched, strongest being %s.",
			result.MatchCount, result.TotalRequired, joinSkills(result.MatchedSkills)))
		parts = append(parts, fmt.Sprintf("Missing: %s.", joinSkills(result.MissingSkills)))
	default:
		parts = append(parts, fmt.Sprintf("None of the %d required skills were found; missing %s.",
			result.TotalRequired, joinSkills(result.MissingSkills)))
	}

	if job.RequiredYears > 0 {
		if candidate.TotalExperienceYears >= job.RequiredYears {
			parts = append(parts, fmt.Sprintf("Experience meets the %.0f-year requirement (%.1f years).",
				job.RequiredYears, candidate.TotalExperienceYears))
		} else {
			parts = append(parts, fmt.Sprintf("Experience falls short of the %.0f-year requirement (%.1f years).",
				job.RequiredYears, candidate.TotalExperienceYears))
		}
	}

	if job.RequiredDegreeRank > 0 {
		if result.EducationMatch >= 100 {
			parts = append(parts, "Education meets the stated requirement.")
		} else {
			parts = append(parts, fmt.Sprintf("Education (%s) is below the stated requirement.",
				candidate.EducationLevel))
		}
	}

	if result.SemanticSimilarity > 0 {
		parts = append(parts, fmt.Sprintf("Overall resume-to-job text similarity is %.2f.",
			result.SemanticSimilarity))
	}

	return strings.Join(parts, " ")
}

// joinSkills renders up to five skills as a readable list.
func joinSkills(names []string) string {
	const limit = 5
	if len(names) <= limit {
		return strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s and %d more", strings.Join(names[:limit], ", "), len(names)-limit)
}
