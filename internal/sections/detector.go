// Package sections segments normalized resume text into named sections with
// per-section confidence scores.
package sections

import (
	"sort"
	"strings"
	"unicode"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

// sectionAliases maps canonical section names to the header vocabulary that
// identifies them. Longer aliases are preferred when two match one line.
var sectionAliases = map[string][]string{
	"experience": {
		"experience", "work experience", "work history", "employment",
		"employment history", "professional experience", "career history",
	},
	"education": {
		"education", "academic background", "academics", "qualifications",
		"education and training",
	},
	"skills": {
		"skills", "technical skills", "core competencies", "competencies",
		"technologies", "technical expertise", "skills and abilities",
	},
	"summary": {
		"summary", "professional summary", "career summary", "profile",
		"objective", "about me", "about",
	},
	"projects": {
		"projects", "personal projects", "selected projects", "portfolio",
	},
	"certifications": {
		"certifications", "certificates", "licenses and certifications",
	},
	"awards": {
		"awards", "honors", "achievements", "recognition",
	},
	"languages": {
		"languages",
	},
	"contact": {
		"contact", "contact information", "contact info",
	},
}

// sectionNames is the fixed scan order over sectionAliases. Sorting pins
// the winner when two sections' aliases tie on strength and length.
var sectionNames = func() []string {
	names := make([]string, 0, len(sectionAliases))
	for name := range sectionAliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// Config holds the hand-tuned confidence constants. They are named and
// overridable so tests can probe boundary behavior deterministically.
type Config struct {
	// AliasWeight scales the alias-match strength signal (exact vs fuzzy)
	AliasWeight float64
	// FormatWeight scales the header-formatting signal (all-caps, short line)
	FormatWeight float64
	// BodyWeight scales the non-empty-body signal
	BodyWeight float64
	// FuzzyMatchStrength is the alias strength for a contains-match,
	// relative to 1.0 for an exact match
	FuzzyMatchStrength float64
	// MinConfidence is the floor below which a section is dropped from the
	// ordered found list (it stays queryable in the map)
	MinConfidence float64
	// MaxHeaderLen is the longest line still considered header-shaped
	MaxHeaderLen int
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		AliasWeight:        0.5,
		FormatWeight:       0.3,
		BodyWeight:         0.2,
		FuzzyMatchStrength: 0.6,
		MinConfidence:      0.35,
		MaxHeaderLen:       48,
	}
}

// Detector finds section boundaries in resume text. Safe for concurrent use.
type Detector struct {
	cfg Config
}

// NewDetector creates a Detector with the given config.
func NewDetector(cfg Config) *Detector {
	return &Detector{cfg: cfg}
}

// headerMatch is one recognized header line.
type headerMatch struct {
	lineIdx   int
	name      string // canonical section name
	rawHeader string
	strength  float64 // alias-match strength in [0,1]
}

// Detect segments text into sections. It returns every recognized section
// keyed by canonical name, plus an ordered list of the names that cleared
// the confidence floor with a non-empty body, preserving document order.
// No sections found is a reported condition, not an error.
func (d *Detector) Detect(text string) (map[string]types.Section, []string) {
	result := make(map[string]types.Section)
	var found []string

	lines := strings.Split(text, "\n")
	matches := d.findHeaders(lines)
	if len(matches) == 0 {
		return result, found
	}

	for i, m := range matches {
		bodyStart := m.lineIdx + 1
		bodyEnd := len(lines)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1].lineIdx
		}

		content := strings.TrimSpace(strings.Join(lines[bodyStart:bodyEnd], "\n"))
		confidence := d.score(m, lines, content)

		section := types.Section{
			RawHeader:  m.rawHeader,
			Content:    content,
			CharCount:  len(content),
			Confidence: confidence,
		}

		if existing, ok := result[m.name]; ok {
			// A repeated header (common in multi-column layouts) extends the
			// earlier section rather than replacing it.
			existing.Content = strings.TrimSpace(existing.Content + "\n" + content)
			existing.CharCount = len(existing.Content)
			if confidence > existing.Confidence {
				existing.Confidence = confidence
			}
			result[m.name] = existing
			continue
		}
		result[m.name] = section

		if content != "" && confidence >= d.cfg.MinConfidence {
			found = append(found, m.name)
		}
	}

	return result, found
}

// findHeaders scans for header-like lines matched against the alias
// vocabulary. If two alias patterns match the same line, the longer, more
// specific alias wins; full ties resolve by canonical name order.
func (d *Detector) findHeaders(lines []string) []headerMatch {
	var matches []headerMatch

	for idx, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || len(line) > d.cfg.MaxHeaderLen {
			continue
		}

		normalized := normalizeHeader(line)
		if normalized == "" {
			continue
		}

		var (
			bestName     string
			bestAlias    string
			bestStrength float64
		)
		for _, name := range sectionNames {
			for _, alias := range sectionAliases[name] {
				strength := d.aliasStrength(normalized, alias)
				if strength == 0 {
					continue
				}
				if strength > bestStrength ||
					(strength == bestStrength && len(alias) > len(bestAlias)) {
					bestName, bestAlias, bestStrength = name, alias, strength
				}
			}
		}

		if bestName != "" {
			matches = append(matches, headerMatch{
				lineIdx:   idx,
				name:      bestName,
				rawHeader: line,
				strength:  bestStrength,
			})
		}
	}

	return matches
}

// aliasStrength returns 1.0 for an exact alias match, FuzzyMatchStrength
// for a header that contains the alias as a word prefix or suffix, else 0.
func (d *Detector) aliasStrength(normalized, alias string) float64 {
	if normalized == alias {
		return 1.0
	}
	if strings.HasPrefix(normalized, alias+" ") || strings.HasSuffix(normalized, " "+alias) {
		return d.cfg.FuzzyMatchStrength
	}
	return 0
}

// score combines alias-match strength, header formatting, and body presence
// into a confidence in [0,1].
func (d *Detector) score(m headerMatch, lines []string, content string) float64 {
	formatting := 0.0
	if isAllCaps(m.rawHeader) {
		formatting += 0.6
	}
	if len(strings.Fields(m.rawHeader)) <= 3 {
		formatting += 0.2
	}
	// a blank line or bulleted content right after the header is a strong
	// contextual signal
	if next := m.lineIdx + 1; next < len(lines) {
		trimmed := strings.TrimSpace(lines[next])
		if trimmed == "" || isBullet(trimmed) {
			formatting += 0.2
		}
	}
	if formatting > 1.0 {
		formatting = 1.0
	}

	body := 0.0
	if content != "" {
		body = 1.0
	}

	confidence := m.strength*d.cfg.AliasWeight +
		formatting*d.cfg.FormatWeight +
		body*d.cfg.BodyWeight
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

// normalizeHeader lowercases a candidate header and strips decoration
// (trailing colons, leading bullets/numbers, box-drawing characters).
func normalizeHeader(line string) string {
	line = strings.TrimLeft(line, "•-*#|>0123456789. \t")
	line = strings.TrimRight(line, ": \t")
	line = strings.Join(strings.Fields(line), " ")
	return strings.ToLower(line)
}

// isAllCaps reports whether all letters in s are uppercase (and there is at
// least one letter).
func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// isBullet reports whether a line starts with a list marker.
func isBullet(s string) bool {
	return strings.HasPrefix(s, "•") || strings.HasPrefix(s, "-") ||
		strings.HasPrefix(s, "*") || strings.HasPrefix(s, "·")
}
