// Package types provides type definitions for the structured parse and match
// results produced by the screening pipeline.
//
// Field names and nesting are a stable contract: downstream consumers
// (storage, UI) depend on the JSON shapes defined here.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Document is a raw input document plus its declared format.
// It is immutable input owned by the caller; the pipeline never mutates it.
type Document struct {
	// Name is the original file name, used for format detection and reporting
	Name string
	// Format is the declared format: "pdf", "docx", "doc", or "txt"
	Format string
	// Data is the raw file content
	Data []byte
}

// ExtractionResult is the normalized text produced by a format-specific
// extractor, plus metadata about the extraction run. Produced once per
// Document and never mutated after creation.
type ExtractionResult struct {
	Text     string             `json:"text"`
	Method   string             `json:"method"` // which extractor path produced the text (primary vs fallback)
	Metadata ExtractionMetadata `json:"extraction_metadata"`
}

// ExtractionMetadata records page/paragraph/table counts and timing for one
// extraction run. Zero values mean "not applicable for this format".
type ExtractionMetadata struct {
	Pages      int   `json:"pages,omitempty"`
	Paragraphs int   `json:"paragraphs,omitempty"`
	Tables     int   `json:"tables,omitempty"`
	DurationMS int64 `json:"duration_ms,omitempty"`
}

// Section is a named, bounded span of resume text with a confidence score.
// Confidence reflects header-pattern strength and contextual signals; it is
// a quality signal, not a calibrated probability.
type Section struct {
	RawHeader  string  `json:"raw_header"`
	Content    string  `json:"content"`
	CharCount  int     `json:"char_count"`
	Confidence float64 `json:"confidence"` // in [0,1]
}

// ContactInfo holds deduplicated contact details pulled from raw text.
// Emails and phones collect all matches; the profile links keep only the
// first plausible match per category. Location is the least reliable field
// and must be treated as a weak signal.
type ContactInfo struct {
	Emails   []string `json:"emails"`
	Phones   []string `json:"phones"`
	LinkedIn string   `json:"linkedin,omitempty"`
	GitHub   string   `json:"github,omitempty"`
	Website  string   `json:"website,omitempty"`
	Location string   `json:"location,omitempty"`
}

// SkillSet is a category-partitioned view over one canonical skill list.
// Categories are derived from taxonomy lookup, not independently extracted.
type SkillSet struct {
	AllTechnical         []string `json:"all_technical"`
	ProgrammingLanguages []string `json:"programming_languages"`
	Frameworks           []string `json:"frameworks"`
	CloudDevOps          []string `json:"cloud_devops"`
	Databases            []string `json:"databases"`
	AllSkills            []string `json:"all_skills"`
}

// Sentinel values used when a dated experience entry was detected but its
// label could not be parsed. Callers must distinguish a sentinel from a
// genuinely absent field when computing quality metrics.
const (
	UnknownCompany  = "Unknown Company"
	UnknownPosition = "Unknown Position"
)

// Experience is one work-history entry parsed from the experience section.
type Experience struct {
	Title     string `json:"title"`
	Company   string `json:"company"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	// DurationMonths is nil when the date range could not be resolved
	DurationMonths *int   `json:"duration_months,omitempty"`
	Description    string `json:"description"`
}

// Education is one education entry parsed from the education section.
type Education struct {
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	Institution    string `json:"institution"`
	GraduationDate string `json:"graduation_date"`
}

// ParsedResume is the aggregate output of one full pipeline run over one
// Document. Each extractor stage writes exactly its own fields and reads
// only the normalized text.
type ParsedResume struct {
	Text             string             `json:"text"`
	CharCount        int                `json:"char_count"`
	WordCount        int                `json:"word_count"`
	FileType         string             `json:"file_type"`
	ExtractionMethod string             `json:"extraction_method"`
	Name             string             `json:"name,omitempty"`
	ContactInfo      ContactInfo        `json:"contact_info"`
	Sections         map[string]Section `json:"sections"`
	SectionsFound    []string           `json:"sections_found"` // document order, not taxonomy order
	Skills           SkillSet           `json:"skills"`
	Experience       []Experience       `json:"experience"`
	Education        []Education        `json:"education"`
	Success          bool               `json:"success"`
	Error            string             `json:"error,omitempty"`
}
