// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied when neither the config file nor flags set a value.
const (
	DefaultTaxonomyPath  = "taxonomy/skill_taxonomy.json"
	DefaultTimeoutSecs   = 60
	DefaultConcurrency   = 4
	DefaultEmbedModel    = "text-embedding-3-small"
	DefaultEmbedEndpoint = "https://api.openai.com/v1"
)

// Config is the CLI configuration, loadable from a JSON file. All fields
// are optional; missing values use defaults or must be provided via flags.
type Config struct {
	// Paths
	Taxonomy string `json:"taxonomy,omitempty"` // Path to the skill taxonomy JSON
	Resume   string `json:"resume,omitempty"`   // Path to a resume document
	Job      string `json:"job,omitempty"`      // Path to a job description text file

	// Model access
	APIKey        string `json:"api_key,omitempty"`        // Gemini API key for name extraction
	EmbedAPIKey   string `json:"embed_api_key,omitempty"`  // API key for the embeddings endpoint
	EmbedEndpoint string `json:"embed_endpoint,omitempty"` // OpenAI-compatible embeddings base URL
	EmbedModel    string `json:"embed_model,omitempty"`    // Embedding model name

	// Scoring weights (0 means "use default")
	SkillWeight      float64 `json:"skill_weight,omitempty"`
	ExperienceWeight float64 `json:"experience_weight,omitempty"`
	EducationWeight  float64 `json:"education_weight,omitempty"`
	SemanticWeight   float64 `json:"semantic_weight,omitempty"`

	// Batch behavior
	TimeoutSecs int  `json:"timeout_secs,omitempty"` // Per-document timeout
	Concurrency int  `json:"concurrency,omitempty"`  // Parallel documents in batch mode
	Verbose     bool `json:"verbose,omitempty"`      // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are enforced by CLI flag validation after merging, not here.
func (c *Config) Validate() error {
	for name, w := range map[string]float64{
		"skill_weight":      c.SkillWeight,
		"experience_weight": c.ExperienceWeight,
		"education_weight":  c.EducationWeight,
		"semantic_weight":   c.SemanticWeight,
	} {
		if w < 0 || w > 1 {
			return fmt.Errorf("config error: '%s' must be in [0,1]", name)
		}
	}

	if c.TimeoutSecs < 0 {
		return fmt.Errorf("config error: 'timeout_secs' must be non-negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}

	if c.Taxonomy != "" {
		if _, err := os.Stat(c.Taxonomy); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy file not found: %s", c.Taxonomy)
		}
	}
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Config file values act as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Taxonomy == "" {
		result.Taxonomy = defaults.Taxonomy
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmbedAPIKey == "" {
		result.EmbedAPIKey = defaults.EmbedAPIKey
	}
	if result.EmbedEndpoint == "" {
		result.EmbedEndpoint = defaults.EmbedEndpoint
	}
	if result.EmbedModel == "" {
		result.EmbedModel = defaults.EmbedModel
	}

	if result.SkillWeight == 0 {
		result.SkillWeight = defaults.SkillWeight
	}
	if result.ExperienceWeight == 0 {
		result.ExperienceWeight = defaults.ExperienceWeight
	}
	if result.EducationWeight == 0 {
		result.EducationWeight = defaults.EducationWeight
	}
	if result.SemanticWeight == 0 {
		result.SemanticWeight = defaults.SemanticWeight
	}

	if result.TimeoutSecs == 0 {
		result.TimeoutSecs = defaults.TimeoutSecs
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
