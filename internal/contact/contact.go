// Package contact pulls emails, phone numbers, profile links, and location
// from raw resume text via pattern matching. It is deliberately not ML:
// contact details follow tight enough formats that regexes outperform
// anything heavier, and header placement varies too much to trust a
// detected "contact" section.
package contact

import (
	"regexp"
	"strings"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`(\+?\d{1,2}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`)

	linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_-]+/?`)
	githubRe   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_-]+/?`)
	websiteRe  = regexp.MustCompile(`(?i)https?://[A-Za-z0-9.-]+\.[A-Za-z]{2,}(?:/\S*)?`)

	// City, ST or City, Country. Weak signal; callers must not treat a
	// present location as reliable.
	locationRe = regexp.MustCompile(`\b([A-Z][a-z]+(?: [A-Z][a-z]+)?),\s*([A-Z]{2}|[A-Z][a-z]+)\b`)
)

// Extract scans the full text (not only a contact section) and returns
// deduplicated contact details. Emails and phones collect every match in
// first-seen order; the profile links keep only the first plausible match
// per category. A field with no match is left empty, never an error.
func Extract(text string) types.ContactInfo {
	info := types.ContactInfo{
		Emails: dedupe(emailRe.FindAllString(text, -1)),
		Phones: dedupePhones(phoneRe.FindAllString(text, -1)),
	}

	if m := linkedinRe.FindString(text); m != "" {
		info.LinkedIn = strings.TrimRight(m, "/")
	}
	if m := githubRe.FindString(text); m != "" {
		info.GitHub = strings.TrimRight(m, "/")
	}
	info.Website = firstPlainWebsite(text, info.LinkedIn, info.GitHub)
	info.Location = extractLocation(text)

	return info
}

// firstPlainWebsite returns the first URL that is not the already-captured
// linkedin/github profile.
func firstPlainWebsite(text, linkedin, github string) string {
	for _, m := range websiteRe.FindAllString(text, -1) {
		trimmed := strings.TrimRight(m, "/.,;")
		lower := strings.ToLower(trimmed)
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			continue
		}
		return trimmed
	}
	return ""
}

// extractLocation looks for a city/state-like token pair in the leading
// lines, where contact headers usually live.
func extractLocation(text string) string {
	lines := strings.Split(text, "\n")
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for _, line := range lines[:limit] {
		// skip lines that are clearly something else
		if emailRe.MatchString(line) && !strings.Contains(line, ",") {
			continue
		}
		if m := locationRe.FindString(line); m != "" {
			return m
		}
	}
	return ""
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		key := strings.ToLower(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}

// dedupePhones normalizes each candidate to its digit string before
// comparing, so "(555) 123-4567" and "555.123.4567" collapse to one entry.
// The original formatting of the first occurrence is kept.
func dedupePhones(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		digits := digitsOnly(v)
		if len(digits) < 10 || seen[digits] {
			continue
		}
		seen[digits] = true
		out = append(out, v)
	}
	return out
}

func digitsOnly(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
