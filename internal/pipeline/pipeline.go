// Package pipeline orchestrates the extraction stages over one document
// and the scoring of a parsed resume against a parsed job.
package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/adapt"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/contact"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/extract"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/history"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/jobparse"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/name"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/scoring"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/sections"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/skills"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

// Options configures a Runner.
type Options struct {
	// NameModel is optional; without it name extraction runs rules-only.
	NameModel name.Model
	// Embedder is optional; without it the semantic score term is dropped.
	Embedder scoring.Embedder
	// Timeout bounds one document's extraction and scoring. Zero disables it.
	Timeout time.Duration
	// Weights for the composite score; zero value means DefaultWeights.
	Weights scoring.Weights
	Logger  zerolog.Logger
}

// Runner runs the extraction pipeline. It holds only shared read-only
// state (taxonomy, model, configuration), so one Runner serves concurrent
// batch runs without locking.
type Runner struct {
	extractor *extract.Extractor
	detector  *sections.Detector
	names     *name.Extractor
	skills    *skills.Extractor
	jobs      *jobparse.Parser
	scorer    *scoring.Scorer
	timeout   time.Duration
	log       zerolog.Logger
}

// NewRunner wires the pipeline stages over a loaded taxonomy.
func NewRunner(tax *skills.Taxonomy, opts Options) *Runner {
	weights := opts.Weights
	if weights == (scoring.Weights{}) {
		weights = scoring.DefaultWeights()
	}

	skillExtractor := skills.NewExtractor(tax)

	return &Runner{
		extractor: extract.NewExtractor(opts.Logger),
		detector:  sections.NewDetector(sections.DefaultConfig()),
		names:     name.NewExtractor(opts.NameModel, name.DefaultConfig(), opts.Logger),
		skills:    skillExtractor,
		jobs:      jobparse.NewParser(),
		scorer:    scoring.NewScorer(skillExtractor, opts.Embedder, weights, opts.Logger),
		timeout:   opts.Timeout,
		log:       opts.Logger.With().Str("component", "pipeline").Logger(),
	}
}

// ParseResume runs the full extraction pipeline over one document. A
// document declared "json" is treated as a previously emitted parse and
// decoded instead of extracted, accepting the legacy skills shapes. It
// never returns an error: extraction failure yields success=false with
// the failure message, and field-level misses yield absent fields. Only
// the document timeout and unsupported formats produce a failed parse.
func (r *Runner) ParseResume(ctx context.Context, doc types.Document) types.ParsedResume {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	resume := emptyResume(doc.Format)

	// a .json input is a previously emitted parse, not a document to extract
	if strings.EqualFold(strings.TrimSpace(doc.Format), "json") {
		decoded, err := adapt.DecodeResume(doc.Data)
		if err != nil {
			resume.Error = err.Error()
			return resume
		}
		if decoded.FileType == "" {
			decoded.FileType = "json"
		}
		decoded.Success = decoded.Error == ""
		return decoded
	}

	extraction, err := r.extractor.Extract(ctx, doc)
	if err != nil {
		resume.Error = err.Error()
		return resume
	}
	if err := ctx.Err(); err != nil {
		resume.Error = "document processing timed out"
		return resume
	}

	resume.Text = extraction.Text
	resume.ExtractionMethod = extraction.Method
	resume.CharCount = len(extraction.Text)
	resume.WordCount = len(strings.Fields(extraction.Text))
	resume.Success = true

	if extraction.Text == "" {
		// empty text is reported as success; usability policy is the caller's
		return resume
	}

	sectionMap, found := r.detector.Detect(extraction.Text)
	resume.Sections = sectionMap
	resume.SectionsFound = found

	resume.ContactInfo = contact.Extract(extraction.Text)
	resume.Skills = r.skills.Extract(extraction.Text)

	nameDetails := r.names.ExtractWithDetails(ctx, extraction.Text)
	resume.Name = nameDetails.Name

	if section, ok := sectionMap["experience"]; ok {
		resume.Experience = history.ParseExperience(section.Content)
	}
	if section, ok := sectionMap["education"]; ok {
		resume.Education = history.ParseEducation(section.Content)
	}

	if err := ctx.Err(); err != nil {
		resume.Success = false
		resume.Error = "document processing timed out"
	}

	r.log.Debug().
		Str("file", doc.Name).
		Str("method", resume.ExtractionMethod).
		Int("chars", resume.CharCount).
		Int("sections", len(resume.SectionsFound)).
		Bool("success", resume.Success).
		Msg("parsed resume")

	return resume
}

// ParseJob segments a job-description text into its structural parts.
func (r *Runner) ParseJob(jobText string) types.ParsedJob {
	return r.jobs.Parse(jobText)
}

// ParseJobHTML strips HTML before segmenting, for postings saved from the
// web.
func (r *Runner) ParseJobHTML(rawHTML string) (types.ParsedJob, error) {
	text, err := jobparse.StripHTML(rawHTML)
	if err != nil {
		return types.ParsedJob{}, err
	}
	return r.jobs.Parse(text), nil
}

// Match scores a parsed resume against a parsed job. Skill names on both
// sides are resolved through the taxonomy before comparison.
func (r *Runner) Match(ctx context.Context, resume types.ParsedResume, job types.ParsedJob) types.MatchResult {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	candidate := adapt.AdaptCandidate(resume)
	target := adapt.AdaptJob(job, r.jobRequiredSkills(job))

	return r.scorer.Score(ctx, candidate, target)
}

// jobRequiredSkills resolves the job's requirement lines to taxonomy
// skills, falling back to the whole posting when the requirements section
// was not found.
func (r *Runner) jobRequiredSkills(job types.ParsedJob) []string {
	text := strings.Join(job.RequiredSkills, "\n")
	if text == "" {
		text = strings.Join(append(job.Responsibilities, job.Title), "\n")
	}
	return r.skills.Extract(text).AllSkills
}

// emptyResume is a failed-or-empty parse with all collections initialized,
// so the JSON shape stays stable for consumers.
func emptyResume(fileType string) types.ParsedResume {
	return types.ParsedResume{
		FileType:      fileType,
		ContactInfo:   types.ContactInfo{Emails: []string{}, Phones: []string{}},
		Sections:      map[string]types.Section{},
		SectionsFound: []string{},
		Skills: types.SkillSet{
			AllTechnical:         []string{},
			ProgrammingLanguages: []string{},
			Frameworks:           []string{},
			CloudDevOps:          []string{},
			Databases:            []string{},
			AllSkills:            []string{},
		},
		Experience: []types.Experience{},
		Education:  []types.Education{},
	}
}
