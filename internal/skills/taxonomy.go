// Package skills matches free text against a curated skill taxonomy and
// computes resume-vs-job skill match sets.
package skills

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SkillCount is one taxonomy entry with its global frequency.
type SkillCount struct {
	Skill string `json:"skill" validate:"required"`
	Count int    `json:"count" validate:"gte=0"`
}

// Taxonomy is the process-wide skill reference data: canonical names mapped
// to categories plus alias lists for fuzzy matching. Loaded once at startup
// and read-only thereafter, so concurrent batch runs need no locking.
type Taxonomy struct {
	Version           string                  `json:"version" validate:"required"`
	TotalUniqueSkills int                     `json:"total_unique_skills" validate:"gte=0"`
	TopSkillsGlobal   []SkillCount            `json:"top_skills_global"`
	SkillsByIndustry  map[string][]SkillCount `json:"skills_by_industry" validate:"required,min=1"`
	// Aliases maps a canonical name to its variants ("JavaScript" → ["js"]).
	// Merged with the built-in alias table at load time.
	Aliases map[string][]string `json:"aliases,omitempty"`

	// derived lookup tables, built once in finalize
	canonical  map[string]string // lowercased name or alias → canonical name
	categoryOf map[string]string // canonical name → category key
}

// builtinAliases covers variants so common they belong in code rather than
// every taxonomy file.
var builtinAliases = map[string][]string{
	"Go":         {"golang", "go lang"},
	"JavaScript": {"js"},
	"TypeScript": {"ts"},
	"Kubernetes": {"k8s"},
	"React":      {"react.js", "reactjs"},
	"Vue":        {"vue.js", "vuejs"},
	"Node.js":    {"nodejs", "node"},
	"PostgreSQL": {"postgres"},
	"AWS":        {"amazon web services"},
	"GCP":        {"google cloud", "google cloud platform"},
	"CI/CD":      {"cicd"},
}

// LoadTaxonomy reads and validates a versioned taxonomy JSON document.
// A malformed file is a contract violation and propagates as a fatal setup
// error; it is the only place this package fails loudly.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}
	return ParseTaxonomy(data)
}

// ParseTaxonomy builds a Taxonomy from raw JSON.
func ParseTaxonomy(data []byte) (*Taxonomy, error) {
	var tax Taxonomy
	if err := json.Unmarshal(data, &tax); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy JSON: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&tax); err != nil {
		return nil, fmt.Errorf("taxonomy failed validation: %w", err)
	}

	tax.finalize()
	return &tax, nil
}

// finalize builds the lookup tables. Categories are walked in sorted order
// and never displace an earlier canonical assignment, so a skill listed
// under two industries keeps a deterministic category.
func (t *Taxonomy) finalize() {
	t.canonical = make(map[string]string)
	t.categoryOf = make(map[string]string)

	categories := make([]string, 0, len(t.SkillsByIndustry))
	for category := range t.SkillsByIndustry {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		for _, entry := range t.SkillsByIndustry[category] {
			name := strings.TrimSpace(entry.Skill)
			if name == "" {
				continue
			}
			key := strings.ToLower(name)
			if _, exists := t.canonical[key]; !exists {
				t.canonical[key] = name
				t.categoryOf[name] = category
			}
		}
	}

	addAliases := func(aliases map[string][]string) {
		for canonicalName, variants := range aliases {
			// only register aliases for skills the taxonomy actually has
			target, ok := t.canonical[strings.ToLower(canonicalName)]
			if !ok {
				continue
			}
			for _, alias := range variants {
				key := strings.ToLower(strings.TrimSpace(alias))
				if key == "" {
					continue
				}
				if _, exists := t.canonical[key]; !exists {
					t.canonical[key] = target
				}
			}
		}
	}
	addAliases(builtinAliases)
	addAliases(t.Aliases)
}

// Canonicalize resolves a raw skill mention to its canonical taxonomy name.
// Unknown skills come back trimmed but otherwise untouched, with ok=false.
func (t *Taxonomy) Canonicalize(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	if canonicalName, ok := t.canonical[strings.ToLower(trimmed)]; ok {
		return canonicalName, true
	}
	return trimmed, false
}

// Category returns the category key for a canonical skill name, or "" when
// the skill is not in the taxonomy.
func (t *Taxonomy) Category(canonicalName string) string {
	return t.categoryOf[canonicalName]
}

// Terms returns every matchable term (canonical names and aliases) with its
// canonical target. The map is the taxonomy's own lookup table; callers must
// treat it as read-only.
func (t *Taxonomy) Terms() map[string]string {
	return t.canonical
}
