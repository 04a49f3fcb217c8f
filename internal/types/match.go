package types

// MatchStats is the set arithmetic between a resume's skills and a job's
// required skills, computed on canonicalized skill names.
type MatchStats struct {
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	ExtraSkills     []string `json:"extra_skills"`
	MatchCount      int      `json:"match_count"`
	TotalRequired   int      `json:"total_required"`
	MatchPercentage float64  `json:"match_percentage"` // in [0,100]; 0 when total_required is 0
}

// MatchResult is the composite candidate-to-job fit score with its component
// signals and a human-readable rationale. Computed fresh per (resume, job)
// pair and never cached across calls.
type MatchResult struct {
	OverallScore       float64  `json:"overall_score"` // in [0,100]
	SkillMatch         float64  `json:"skill_match"`
	ExperienceMatch    float64  `json:"experience_match"`
	EducationMatch     float64  `json:"education_match"`
	SemanticSimilarity float64  `json:"semantic_similarity"` // in [0,1]; 0 when no embedder configured
	MatchedSkills      []string `json:"matched_skills"`
	MissingSkills      []string `json:"missing_skills"`
	ExtraSkills        []string `json:"extra_skills"`
	MatchCount         int      `json:"match_count"`
	TotalRequired      int      `json:"total_required"`
	Explanation        string   `json:"explanation"`
}
