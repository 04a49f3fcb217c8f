package skills

import (
	"sort"
	"strings"
	"unicode"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

// Category keys the SkillSet partition recognizes. Taxonomy categories
// outside this set still land in the aggregate lists.
const (
	categoryLanguages  = "programming_languages"
	categoryFrameworks = "frameworks"
	categoryCloud      = "cloud_devops"
	categoryDatabases  = "databases"
)

// Extractor matches text against the taxonomy. Stateless over the shared
// read-only taxonomy, so one instance serves concurrent batch runs.
type Extractor struct {
	tax *Taxonomy
}

// NewExtractor creates a skill extractor over a loaded taxonomy.
func NewExtractor(tax *Taxonomy) *Extractor {
	return &Extractor{tax: tax}
}

// hit records where a canonical skill first appears in the text.
type hit struct {
	name     string
	firstIdx int
}

// Extract matches the text case-insensitively with word-boundary awareness
// against canonical names and aliases, returning a deduplicated,
// category-partitioned result ordered by first appearance. Running it twice
// on identical text yields identical partitions.
func (e *Extractor) Extract(text string) types.SkillSet {
	lower := strings.ToLower(text)

	hits := make(map[string]int) // canonical name → earliest match index
	for term, canonicalName := range e.tax.Terms() {
		idx := indexWord(lower, term)
		if idx < 0 {
			continue
		}
		if prev, seen := hits[canonicalName]; !seen || idx < prev {
			hits[canonicalName] = idx
		}
	}

	ordered := make([]hit, 0, len(hits))
	for name, idx := range hits {
		ordered = append(ordered, hit{name: name, firstIdx: idx})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].firstIdx != ordered[j].firstIdx {
			return ordered[i].firstIdx < ordered[j].firstIdx
		}
		return ordered[i].name < ordered[j].name
	})

	return e.partition(ordered)
}

// partition derives the categorized view from taxonomy lookup.
func (e *Extractor) partition(ordered []hit) types.SkillSet {
	set := types.SkillSet{
		AllTechnical:         []string{},
		ProgrammingLanguages: []string{},
		Frameworks:           []string{},
		CloudDevOps:          []string{},
		Databases:            []string{},
		AllSkills:            []string{},
	}

	for _, h := range ordered {
		category := e.tax.Category(h.name)
		set.AllSkills = append(set.AllSkills, h.name)

		switch category {
		case categoryLanguages:
			set.ProgrammingLanguages = append(set.ProgrammingLanguages, h.name)
		case categoryFrameworks:
			set.Frameworks = append(set.Frameworks, h.name)
		case categoryCloud:
			set.CloudDevOps = append(set.CloudDevOps, h.name)
		case categoryDatabases:
			set.Databases = append(set.Databases, h.name)
		}

		// soft-skill categories stay out of the technical aggregate
		if !strings.Contains(category, "soft") {
			set.AllTechnical = append(set.AllTechnical, h.name)
		}
	}

	return set
}

// indexWord finds term in text at a word boundary, returning the byte index
// of the first such occurrence or -1. Boundaries treat letters and digits as
// word characters; "+", "#", and "." inside a term are matched literally so
// "c++", "c#", and "node.js" do not false-positive on substrings.
func indexWord(text, term string) int {
	if term == "" {
		return -1
	}

	from := 0
	for {
		rel := strings.Index(text[from:], term)
		if rel < 0 {
			return -1
		}
		idx := from + rel

		if boundaryBefore(text, idx) && boundaryAfter(text, idx+len(term)) {
			return idx
		}
		from = idx + 1
	}
}

func boundaryBefore(text string, idx int) bool {
	if idx == 0 {
		return true
	}
	r := rune(text[idx-1])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(text string, idx int) bool {
	if idx >= len(text) {
		return true
	}
	r := rune(text[idx])
	// "+" and "#" after a term would make it a different token (c vs c++)
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
}
