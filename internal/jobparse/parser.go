// Package jobparse segments a job-description text into its structural
// parts: title, company, location, responsibilities, required and preferred
// skills, and benefits.
package jobparse

import (
	"regexp"
	"strings"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/extract"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

// jobHeadings maps canonical job-section names to their heading vocabulary.
// This mirrors the resume section detector but against job-specific
// vocabulary; the more specific alias wins a shared line.
var jobHeadings = map[string][]string{
	"responsibilities": {
		"responsibilities", "duties", "what you'll do", "what you will do",
		"the role", "your role", "about the role", "day to day",
	},
	"requirements": {
		"requirements", "qualifications", "required qualifications",
		"required skills", "must have", "what we're looking for",
		"what you'll need", "who you are", "minimum qualifications",
	},
	"preferred": {
		"preferred", "preferred qualifications", "preferred skills",
		"nice to have", "bonus points", "bonus", "plus",
	},
	"benefits": {
		"benefits", "perks", "what we offer", "compensation and benefits",
		"why join us",
	},
}

var (
	bulletLineRe = regexp.MustCompile(`^[•\-*·▪o]\s+`)
	labelRe      = regexp.MustCompile(`(?i)^(company|employer|location|job type|employment type|salary)\s*:\s*(.+)$`)
	salaryRe     = regexp.MustCompile(`(?i)\$\s?\d[\d,]*(?:k)?(?:\s*[-–—to]+\s*\$?\s?\d[\d,]*(?:k)?)?(?:\s*(?:per|/)\s*(?:year|yr|annum|hour|hr))?`)
	jobTypeRe    = regexp.MustCompile(`(?i)\b(full[- ]time|part[- ]time|contract|internship|temporary|freelance|remote|hybrid|on[- ]site)\b`)
	yearsReqRe   = regexp.MustCompile(`(?i)\b\d+\+?\s*(?:-\s*\d+\s*)?years?\b[^.\n]*`)
	degreeReqRe  = regexp.MustCompile(`(?i)\b(?:ph\.?d|doctorate|master|bachelor|associate|degree)[^.\n]*`)
)

// Parser segments job text. It needs no taxonomy; skill resolution happens
// in the skills package over the line fragments returned here.
type Parser struct{}

// NewParser creates a job parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse segments a job-description text into a ParsedJob. Missing parts are
// empty fields, never errors.
func (p *Parser) Parse(jobText string) types.ParsedJob {
	text := extract.NormalizeText(jobText)
	lines := strings.Split(text, "\n")

	job := types.ParsedJob{
		Responsibilities: []string{},
		RequiredSkills:   []string{},
		PreferredSkills:  []string{},
		Benefits:         []string{},
	}

	bodyStart := p.parseLeading(lines, &job)
	sections := p.segment(lines[bodyStart:])

	job.Responsibilities = splitItems(sections["responsibilities"])
	job.RequiredSkills = splitItems(sections["requirements"])
	job.PreferredSkills = splitItems(sections["preferred"])
	job.Benefits = splitItems(sections["benefits"])

	p.deriveRequirementSummaries(text, &job)

	return job
}

// parseLeading extracts title/company/location from the head of the
// document: first non-empty line as title, following lines as company and
// location, with "Label: value" overrides taking precedence. Returns the
// index where section scanning should begin; a line it does not recognize
// is left for the section scanner rather than consumed.
func (p *Parser) parseLeading(lines []string, job *types.ParsedJob) int {
	consumed := 0
	position := 0 // 0=title, 1=company, 2=location

	for idx, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if isJobHeading(line) {
			break
		}

		if m := labelRe.FindStringSubmatch(line); m != nil {
			p.applyLabel(job, strings.ToLower(m[1]), strings.TrimSpace(m[2]))
			consumed = idx + 1
			continue
		}

		switch position {
		case 0:
			job.Title = line
		case 1:
			job.Company = line
		case 2:
			if !looksLikeLocation(line) {
				// not header metadata; leave it for the section scanner
				return consumed
			}
			job.Location = line
		}
		position++
		consumed = idx + 1

		if position > 2 {
			break
		}
	}

	return consumed
}

// applyLabel handles explicit "Label: value" overrides.
func (p *Parser) applyLabel(job *types.ParsedJob, label, value string) {
	switch label {
	case "company", "employer":
		job.Company = value
	case "location":
		job.Location = value
	case "job type", "employment type":
		job.JobType = value
	case "salary":
		job.SalaryRange = value
	}
}

// segment walks the remaining lines, assigning content to the current
// heading until the next recognized heading.
func (p *Parser) segment(lines []string) map[string][]string {
	sections := make(map[string][]string)
	current := ""

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if name := matchJobHeading(line); name != "" {
			current = name
			continue
		}
		if current != "" {
			sections[current] = append(sections[current], line)
		}
	}

	return sections
}

// splitItems turns a section body into discrete list entries: bullet-like
// lines become one entry each; a run of lines without bullet markers is
// treated as a single combined entry.
func splitItems(lines []string) []string {
	items := []string{}
	var plain []string

	flushPlain := func() {
		if len(plain) > 0 {
			items = append(items, strings.Join(plain, " "))
			plain = nil
		}
	}

	for _, line := range lines {
		if bulletLineRe.MatchString(line) {
			flushPlain()
			items = append(items, strings.TrimSpace(bulletLineRe.ReplaceAllString(line, "")))
		} else {
			plain = append(plain, line)
		}
	}
	flushPlain()

	return items
}

// deriveRequirementSummaries fills the scalar requirement fields from
// patterns anywhere in the text, preferring matches inside the
// requirements section lines already captured.
func (p *Parser) deriveRequirementSummaries(text string, job *types.ParsedJob) {
	scan := strings.Join(job.RequiredSkills, "\n")
	if scan == "" {
		scan = text
	}

	if m := yearsReqRe.FindString(scan); m != "" {
		job.ExperienceRequired = strings.TrimSpace(m)
	} else if m := yearsReqRe.FindString(text); m != "" {
		job.ExperienceRequired = strings.TrimSpace(m)
	}

	if m := degreeReqRe.FindString(scan); m != "" {
		job.EducationRequired = strings.TrimSpace(m)
	} else if m := degreeReqRe.FindString(text); m != "" {
		job.EducationRequired = strings.TrimSpace(m)
	}

	if job.SalaryRange == "" {
		job.SalaryRange = strings.TrimSpace(salaryRe.FindString(text))
	}
	if job.JobType == "" {
		job.JobType = strings.TrimSpace(jobTypeRe.FindString(text))
	}
}

// isJobHeading reports whether a line is a recognized section heading.
func isJobHeading(line string) bool {
	return matchJobHeading(line) != ""
}

// matchJobHeading returns the canonical heading name for a line, or "".
// Longer aliases win shared lines ("preferred qualifications" beats
// "qualifications").
func matchJobHeading(line string) string {
	if len(line) > 60 {
		return ""
	}
	normalized := normalizeHeading(line)
	if normalized == "" {
		return ""
	}

	var (
		bestName  string
		bestAlias string
	)
	for name, aliases := range jobHeadings {
		for _, alias := range aliases {
			if normalized != alias && !strings.HasPrefix(normalized, alias+" ") &&
				!strings.HasSuffix(normalized, " "+alias) {
				continue
			}
			if len(alias) > len(bestAlias) {
				bestName, bestAlias = name, alias
			}
		}
	}
	return bestName
}

// normalizeHeading lowercases and strips decoration from a heading line.
func normalizeHeading(line string) string {
	line = strings.TrimLeft(line, "•-*#|> \t")
	line = strings.TrimRight(line, ": \t")
	line = strings.Join(strings.Fields(line), " ")
	return strings.ToLower(line)
}

// looksLikeLocation is a weak check for "City, ST"-shaped or
// remote-keyword lines.
func looksLikeLocation(line string) bool {
	if len(line) > 60 {
		return false
	}
	lower := strings.ToLower(line)
	if strings.Contains(lower, "remote") || strings.Contains(lower, "hybrid") {
		return true
	}
	return strings.Contains(line, ",")
}
