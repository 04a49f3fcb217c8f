package types

// ParsedJob is a job description segmented into its structural parts.
// List fields preserve document order.
type ParsedJob struct {
	Title              string   `json:"title"`
	Company            string   `json:"company"`
	Location           string   `json:"location"`
	JobType            string   `json:"job_type"`
	ExperienceRequired string   `json:"experience_required"`
	EducationRequired  string   `json:"education_required"`
	SalaryRange        string   `json:"salary_range"`
	Responsibilities   []string `json:"responsibilities"`
	RequiredSkills     []string `json:"required_skills"`
	PreferredSkills    []string `json:"preferred_skills"`
	Benefits           []string `json:"benefits"`
}

// Candidate is the canonical candidate shape the scorer consumes, produced
// by the data adapter from a ParsedResume (or a legacy upstream shape).
type Candidate struct {
	Name                 string       `json:"name,omitempty"`
	Skills               []string     `json:"skills"`
	Experience           []Experience `json:"experience"`
	Education            []Education  `json:"education"`
	TotalExperienceYears float64      `json:"total_experience_years"`
	ExperienceLevel      string       `json:"experience_level"` // entry, junior, mid, senior
	EducationLevel       string       `json:"education_level"`  // highest-ranked degree label
	Text                 string       `json:"text,omitempty"`   // full resume text, used for semantic similarity
}

// JobTarget is the canonical job shape the scorer consumes, produced by the
// data adapter from a ParsedJob.
type JobTarget struct {
	Title          string   `json:"title"`
	RequiredSkills []string `json:"required_skills"`
	// RequiredYears is parsed from the experience_required phrase; 0 means unspecified
	RequiredYears float64 `json:"required_years"`
	// RequiredDegreeRank uses the fixed degree hierarchy; 0 means unspecified
	RequiredDegreeRank int    `json:"required_degree_rank"`
	Text               string `json:"text,omitempty"` // full job text, used for semantic similarity
}
