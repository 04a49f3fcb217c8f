// Package history parses work-experience and education entries out of the
// section bodies the detector produced.
package history

import (
	"regexp"
	"strings"
	"time"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

var (
	// mm/yyyy, Month YYYY, or bare yyyy, plus open-ended markers
	dateTokenRe = regexp.MustCompile(`(?i)\b(?:(?:0?[1-9]|1[0-2])/\d{4}|(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|(?:19|20)\d{2}|present|current|now)\b`)
	bulletRe    = regexp.MustCompile(`^[•\-*·]\s*`)
)

// headerSeparators split a job header line into title and company parts.
// Order matters: the more explicit separators are tried first.
var headerSeparators = []string{" | ", " at ", " @ ", " — ", " - ", ", "}

// ParseExperience extracts work-history entries from an experience section
// body. Entries are anchored on dated header lines; description lines
// accumulate under the most recent entry. Uses the current time to resolve
// open-ended ranges.
func ParseExperience(content string) []types.Experience {
	return ParseExperienceAt(content, time.Now())
}

// ParseExperienceAt is ParseExperience with an explicit reference time for
// "Present" ranges.
func ParseExperienceAt(content string, ref time.Time) []types.Experience {
	entries := []types.Experience{}
	var current *types.Experience

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if isEntryHeader(line) {
			if current != nil {
				entries = append(entries, *current)
			}
			entry := parseEntryHeader(line, ref)
			current = &entry
			continue
		}

		if current != nil {
			text := bulletRe.ReplaceAllString(line, "")
			if current.Description == "" {
				current.Description = text
			} else {
				current.Description += "\n" + text
			}
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

// isEntryHeader reports whether a line starts a new experience entry: it
// carries a date token and is not a bullet continuation.
func isEntryHeader(line string) bool {
	if bulletRe.MatchString(line) {
		return false
	}
	return dateTokenRe.MatchString(line)
}

// parseEntryHeader splits a dated header line into title, company, and date
// range. A structural signal (the dates) was detected, so when the labels
// cannot be parsed the sentinel values stand in rather than leaving the
// entry absent; downstream scoring treats sentinels as missing data.
func parseEntryHeader(line string, ref time.Time) types.Experience {
	entry := types.Experience{
		Title:   types.UnknownPosition,
		Company: types.UnknownCompany,
	}

	dates := dateTokenRe.FindAllString(line, -1)
	remainder := line
	for _, d := range dates {
		remainder = strings.Replace(remainder, d, "", 1)
	}
	remainder = strings.Trim(remainder, " \t|,-–—()")

	switch len(dates) {
	case 0:
		// unreachable from isEntryHeader, kept for direct callers
	case 1:
		if isOpenEnded(dates[0]) {
			entry.EndDate = "Present"
		} else {
			entry.StartDate = dates[0]
		}
	default:
		entry.StartDate = dates[0]
		entry.EndDate = dates[len(dates)-1]
		if isOpenEnded(entry.EndDate) {
			entry.EndDate = "Present"
		}
		if months, ok := monthsBetween(entry.StartDate, entry.EndDate, ref); ok {
			entry.DurationMonths = &months
		}
	}

	title, company := splitTitleCompany(remainder)
	if title != "" {
		entry.Title = title
	}
	if company != "" {
		entry.Company = company
	}

	return entry
}

// splitTitleCompany tries each separator in turn; no separator means the
// whole remainder is the title.
func splitTitleCompany(remainder string) (title, company string) {
	remainder = strings.Join(strings.Fields(remainder), " ")
	if remainder == "" {
		return "", ""
	}

	for _, sep := range headerSeparators {
		if !strings.Contains(remainder, sep) {
			continue
		}
		parts := strings.SplitN(remainder, sep, 2)
		return strings.TrimSpace(parts[0]), strings.Trim(strings.TrimSpace(parts[1]), ",|-– ")
	}

	return remainder, ""
}

func isOpenEnded(token string) bool {
	switch strings.ToLower(token) {
	case "present", "current", "now":
		return true
	}
	return false
}

var monthNames = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// parseDateToken resolves one date token to a year/month. Bare years assume
// January; open-ended markers resolve to ref.
func parseDateToken(token string, ref time.Time) (time.Time, bool) {
	token = strings.ToLower(strings.TrimSpace(token))

	if isOpenEnded(token) {
		return ref, true
	}

	// mm/yyyy
	if idx := strings.Index(token, "/"); idx > 0 {
		month := atoi(token[:idx])
		year := atoi(token[idx+1:])
		if month >= 1 && month <= 12 && year > 0 {
			return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), true
		}
		return time.Time{}, false
	}

	// month-name yyyy
	fields := strings.Fields(token)
	if len(fields) == 2 && len(fields[0]) >= 3 {
		if month, ok := monthNames[fields[0][:3]]; ok {
			if year := atoi(fields[1]); year > 0 {
				return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
			}
		}
		return time.Time{}, false
	}

	// bare year
	if year := atoi(token); year >= 1900 && year <= 2100 {
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true
	}

	return time.Time{}, false
}

// monthsBetween computes the whole-month span of a date range. Negative or
// unparseable ranges report no duration.
func monthsBetween(start, end string, ref time.Time) (int, bool) {
	from, okFrom := parseDateToken(start, ref)
	to, okTo := parseDateToken(end, ref)
	if !okFrom || !okTo {
		return 0, false
	}

	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if months < 0 {
		return 0, false
	}
	return months, true
}

// atoi is a strict non-negative integer parse; anything non-numeric
// returns -1.
func atoi(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return -1
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return -1
		}
		n = n*10 + int(r-'0')
	}
	return n
}
