// Package observability provides structured logging setup and formatted
// output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeSummary outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintResumeSummary(resume *types.ParsedResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	name := resume.Name
	if name == "" {
		name = "(not found)"
	}
	sb.WriteString(fmt.Sprintf("Name:       %s\n", name))
	sb.WriteString(fmt.Sprintf("Format:     %s (%s)\n", resume.FileType, resume.ExtractionMethod))
	sb.WriteString(fmt.Sprintf("Text:       %d chars, %d words\n", resume.CharCount, resume.WordCount))

	if len(resume.ContactInfo.Emails) > 0 {
		sb.WriteString(fmt.Sprintf("Email:      %s\n", resume.ContactInfo.Emails[0]))
	}
	if len(resume.ContactInfo.Phones) > 0 {
		sb.WriteString(fmt.Sprintf("Phone:      %s\n", resume.ContactInfo.Phones[0]))
	}

	if len(resume.SectionsFound) > 0 {
		sb.WriteString(fmt.Sprintf("Sections:   %s\n", strings.Join(resume.SectionsFound, ", ")))
	} else {
		sb.WriteString("Sections:   none detected\n")
	}

	sb.WriteString(itemList("Skills", resume.Skills.AllSkills))

	if len(resume.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(resume.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := resume.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s\n", entry.Title, entry.Company))
		}
		if len(resume.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Experience)-maxItemsToShow))
		}
	}

	for _, entry := range resume.Education {
		sb.WriteString(fmt.Sprintf("Education:  %s", entry.Degree))
		if entry.Institution != "" {
			sb.WriteString(fmt.Sprintf(", %s", entry.Institution))
		}
		sb.WriteString("\n")
	}

	if !resume.Success {
		sb.WriteString(fmt.Sprintf("FAILED:     %s\n", resume.Error))
	}

	p.printBox("Parsed Resume", strings.TrimRight(sb.String(), "\n"))
}

// PrintJobSummary outputs a human-readable summary of a parsed job.
func (p *Printer) PrintJobSummary(job *types.ParsedJob) {
	if job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:      %s\n", job.Title))
	if job.Company != "" {
		sb.WriteString(fmt.Sprintf("Company:    %s\n", job.Company))
	}
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:   %s\n", job.Location))
	}
	if job.JobType != "" {
		sb.WriteString(fmt.Sprintf("Type:       %s\n", job.JobType))
	}
	if job.ExperienceRequired != "" {
		sb.WriteString(fmt.Sprintf("Experience: %s\n", job.ExperienceRequired))
	}
	if job.EducationRequired != "" {
		sb.WriteString(fmt.Sprintf("Education:  %s\n", job.EducationRequired))
	}
	if job.SalaryRange != "" {
		sb.WriteString(fmt.Sprintf("Salary:     %s\n", job.SalaryRange))
	}

	sb.WriteString(itemList("Required", job.RequiredSkills))
	sb.WriteString(itemList("Preferred", job.PreferredSkills))

	p.printBox("Parsed Job", strings.TrimRight(sb.String(), "\n"))
}

// PrintMatchSummary outputs a human-readable summary of a match result.
func (p *Printer) PrintMatchSummary(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:    %.1f / 100\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Skills:     %.1f (%d of %d required)\n",
		result.SkillMatch, result.MatchCount, result.TotalRequired))
	sb.WriteString(fmt.Sprintf("Experience: %.1f\n", result.ExperienceMatch))
	sb.WriteString(fmt.Sprintf("Education:  %.1f\n", result.EducationMatch))
	if result.SemanticSimilarity > 0 {
		sb.WriteString(fmt.Sprintf("Semantic:   %.2f\n", result.SemanticSimilarity))
	}

	sb.WriteString(itemList("Matched", result.MatchedSkills))
	sb.WriteString(itemList("Missing", result.MissingSkills))

	p.printBox("Match Result", strings.TrimRight(sb.String(), "\n"))
}

// itemList renders a labeled bullet list capped at maxItemsToShow, or
// nothing when the list is empty.
func itemList(label string, items []string) string {
	if len(items) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s:\n", label))
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	return sb.String()
}
