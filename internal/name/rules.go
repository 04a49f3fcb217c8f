// Package name identifies the candidate's name from resume text by
// combining a rule-based path with a model-based path and reconciling the
// two with an agreement/priority policy.
package name

import (
	"regexp"
	"strings"
)

const (
	// ruleLineLimit is how many leading non-empty lines the rule path
	// inspects. Names almost always appear in the header block.
	ruleLineLimit = 5
	// ruleMaxWords bounds a plausible name length
	ruleMaxWords = 4
)

var (
	nameWordRe = regexp.MustCompile(`^[A-Z][A-Za-z'.-]*$`)
	digitRe    = regexp.MustCompile(`\d`)
)

// ExtractByRules inspects the first few non-empty lines for a name-shaped
// line: a short sequence of capitalized words with no digits, emails, or
// URLs. Works well on conventional layouts; returns "" when nothing
// qualifies.
func ExtractByRules(text string) string {
	seen := 0
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		seen++
		if seen > ruleLineLimit {
			break
		}

		if looksLikeName(line) {
			return line
		}
	}
	return ""
}

// looksLikeName applies the name-shape rules to one line.
func looksLikeName(line string) bool {
	if digitRe.MatchString(line) {
		return false
	}
	if strings.ContainsAny(line, "@:/|,") {
		return false
	}

	words := strings.Fields(line)
	if len(words) < 2 || len(words) > ruleMaxWords {
		return false
	}

	for _, word := range words {
		if len(word) < 2 && !strings.HasSuffix(word, ".") {
			return false
		}
		if !nameWordRe.MatchString(word) {
			return false
		}
	}

	// all-caps section headers ("WORK EXPERIENCE") pass the word regex;
	// require at least one lowercase letter somewhere in the line
	if line == strings.ToUpper(line) {
		return false
	}

	return true
}
