package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/config"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/llm"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/name"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/observability"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/pipeline"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/schemas"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/scoring"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/skills"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

// loadConfig merges the optional config file with built-in defaults.
// Flag values are applied by each command after this.
func loadConfig() (config.Config, error) {
	cfg := config.Config{}
	if flagConfig != "" {
		loaded, err := config.LoadConfig(flagConfig)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Taxonomy:      config.DefaultTaxonomyPath,
		TimeoutSecs:   config.DefaultTimeoutSecs,
		Concurrency:   config.DefaultConcurrency,
		EmbedEndpoint: config.DefaultEmbedEndpoint,
		EmbedModel:    config.DefaultEmbedModel,
	})

	if flagTaxonomy != "" {
		cfg.Taxonomy = flagTaxonomy
	}
	if flagVerbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newRunner builds the pipeline from configuration. The name model and
// embedder are optional: missing credentials degrade those paths rather
// than failing the command.
func newRunner(ctx context.Context, cfg config.Config) (*pipeline.Runner, func(), error) {
	taxonomyPath := schemas.ResolveSchemaPath(cfg.Taxonomy)
	if taxonomyPath == "" {
		taxonomyPath = cfg.Taxonomy
	}
	tax, err := skills.LoadTaxonomy(taxonomyPath)
	if err != nil {
		return nil, nil, err
	}

	log := observability.NewLogger(cfg.Verbose)

	cleanup := func() {}
	var nameModel name.Model

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			log.Warn().Err(err).Msg("name model unavailable, falling back to rules-only extraction")
		} else {
			nameModel = name.NewLLMModel(client)
			cleanup = func() { _ = client.Close() }
		}
	}

	var embedder scoring.Embedder
	embedKey := cfg.EmbedAPIKey
	if embedKey == "" {
		embedKey = os.Getenv("EMBED_API_KEY")
	}
	if embedKey != "" {
		embedder = scoring.NewOpenAICompatEmbedder(cfg.EmbedEndpoint, embedKey, cfg.EmbedModel)
	}

	weights := scoring.DefaultWeights()
	if cfg.SkillWeight > 0 {
		weights.Skill = cfg.SkillWeight
	}
	if cfg.ExperienceWeight > 0 {
		weights.Experience = cfg.ExperienceWeight
	}
	if cfg.EducationWeight > 0 {
		weights.Education = cfg.EducationWeight
	}
	if cfg.SemanticWeight > 0 {
		weights.Semantic = cfg.SemanticWeight
	}

	runner := pipeline.NewRunner(tax, pipeline.Options{
		NameModel: nameModel,
		Embedder:  embedder,
		Timeout:   time.Duration(cfg.TimeoutSecs) * time.Second,
		Weights:   weights,
		Logger:    log,
	})

	return runner, cleanup, nil
}

// readDocument loads a file as a Document with its format derived from the
// extension.
func readDocument(path string) (types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		format = "txt"
	}

	return types.Document{
		Name:   filepath.Base(path),
		Format: format,
		Data:   data,
	}, nil
}

// writeOutput writes indented JSON to a file, or stdout when path is "".
func writeOutput(path string, value any) error {
	jsonBytes, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// validateOutput checks a value against its schema when the schema file is
// available. Validation failures are fatal; a missing schema only warns.
func validateOutput(schemaRelPath string, value any) error {
	if schemas.ResolveSchemaPath(schemaRelPath) == "" {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: schema %s not found, skipping validation\n", schemaRelPath)
		return nil
	}
	if err := schemas.ValidateValue(schemaRelPath, value); err != nil {
		return fmt.Errorf("output does not validate against schema: %w", err)
	}
	return nil
}
