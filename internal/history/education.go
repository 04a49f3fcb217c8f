package history

import (
	"regexp"
	"strings"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

// degreeKeywords maps detection keywords to a normalized degree label.
// Checked in order so the most specific spelling wins.
var degreeKeywords = []struct {
	keyword string
	label   string
}{
	{"doctorate", "Doctorate"},
	{"ph.d", "PhD"},
	{"phd", "PhD"},
	{"master of business administration", "MBA"},
	{"mba", "MBA"},
	{"master", "Master's"},
	{"m.s.", "Master's"},
	{"m.a.", "Master's"},
	{"msc", "Master's"},
	{"bachelor", "Bachelor's"},
	{"b.s.", "Bachelor's"},
	{"b.a.", "Bachelor's"},
	{"bsc", "Bachelor's"},
	{"associate", "Associate"},
	{"diploma", "Diploma"},
}

var (
	institutionRe = regexp.MustCompile(`(?i)\b(university|college|institute|school|polytechnic|academy)\b`)
	gradYearRe    = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	fieldInRe     = regexp.MustCompile(`(?i)\b(?:in|of)\s+([A-Za-z][A-Za-z &/-]+)`)
)

// ParseEducation extracts education entries from an education section body.
// Entries anchor on degree-bearing lines; institution and graduation year
// attach from the same line or the neighbors that follow.
func ParseEducation(content string) []types.Education {
	entries := []types.Education{}
	var current *types.Education

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(bulletRe.ReplaceAllString(strings.TrimSpace(raw), ""))
		if line == "" {
			continue
		}

		if degree := detectDegree(line); degree != "" {
			if current != nil {
				entries = append(entries, *current)
			}
			entry := types.Education{Degree: degree}
			entry.Field = extractField(line)
			if institutionRe.MatchString(line) {
				entry.Institution = extractInstitution(line)
			}
			if year := gradYearRe.FindString(line); year != "" {
				entry.GraduationDate = year
			}
			current = &entry
			continue
		}

		// non-degree lines fill gaps in the open entry
		if current == nil {
			continue
		}
		if current.Institution == "" && institutionRe.MatchString(line) {
			current.Institution = extractInstitution(line)
		}
		if current.GraduationDate == "" {
			if year := gradYearRe.FindString(line); year != "" {
				current.GraduationDate = year
			}
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

// detectDegree returns the normalized degree label for a line, or "".
func detectDegree(line string) string {
	lower := strings.ToLower(line)
	for _, dk := range degreeKeywords {
		if strings.Contains(lower, dk.keyword) {
			return dk.label
		}
	}
	return ""
}

// extractField pulls the field of study from "Bachelor of Science in X" or
// "B.S., Computer Science" shapes.
func extractField(line string) string {
	// prefer an explicit "in <field>" phrase
	if m := fieldInRe.FindStringSubmatch(line); len(m) == 2 {
		field := strings.TrimSpace(m[1])
		// "of Science in Computer Science" matches twice; take the last
		if idx := strings.LastIndex(strings.ToLower(line), " in "); idx >= 0 {
			field = strings.TrimSpace(line[idx+4:])
		}
		return trimFieldTail(field)
	}

	// "Degree, Field" shape
	if idx := strings.Index(line, ","); idx >= 0 && idx+1 < len(line) {
		return trimFieldTail(strings.TrimSpace(line[idx+1:]))
	}

	return ""
}

// trimFieldTail drops trailing dates, institutions, and punctuation from a
// field candidate.
func trimFieldTail(field string) string {
	if m := institutionRe.FindStringIndex(field); m != nil {
		field = field[:m[0]]
	}
	if m := gradYearRe.FindStringIndex(field); m != nil {
		field = field[:m[0]]
	}
	return strings.Trim(field, " ,.-–|")
}

// extractInstitution isolates the institution phrase around the matched
// keyword, trimming dates and separators.
func extractInstitution(line string) string {
	// take the comma/pipe-delimited segment containing the keyword
	for _, seg := range strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == '|' }) {
		if institutionRe.MatchString(seg) {
			seg = gradYearRe.ReplaceAllString(seg, "")
			return strings.Trim(seg, " ,.-–|()")
		}
	}
	return ""
}
