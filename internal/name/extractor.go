package name

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// Reconciliation methods recorded in Details.Method.
const (
	MethodBothAgree = "both_agree"
	MethodRules     = "rules"
	MethodML        = "ml"
	MethodFailed    = "failed"
)

// Config holds the reconciliation thresholds. The exact precedence cutoffs
// are tunable parameters, not hardcoded invariants.
type Config struct {
	// ModelMinConfidence is the floor for accepting a model-only name
	ModelMinConfidence float64
	// ModelOverrideThreshold is how confident the model must be to win a
	// disagreement against a non-empty rule name. Favors precision on
	// conventional resumes while letting the model win on unconventional
	// layouts it was tuned for.
	ModelOverrideThreshold float64
}

// DefaultConfig returns the tuned thresholds.
func DefaultConfig() Config {
	return Config{
		ModelMinConfidence:     0.50,
		ModelOverrideThreshold: 0.90,
	}
}

// Details is the full reconciliation record for one extraction, exposing
// both paths' raw outputs alongside the final decision.
type Details struct {
	Name            string      `json:"name,omitempty"`
	Method          string      `json:"method"`
	MLName          string      `json:"ml_name,omitempty"`
	MLConfidence    float64     `json:"ml_confidence"`
	RuleName        string      `json:"rule_name,omitempty"`
	AllMLCandidates []Candidate `json:"all_ml_candidates,omitempty"`
}

// Extractor runs both extraction paths and reconciles their results.
type Extractor struct {
	model Model // nil when the model path is unavailable
	cfg   Config
	log   zerolog.Logger
}

// NewExtractor creates an Extractor. model may be nil, in which case the
// extractor runs rules-only.
func NewExtractor(model Model, cfg Config, log zerolog.Logger) *Extractor {
	return &Extractor{model: model, cfg: cfg, log: log}
}

// ExtractWithDetails runs the rule and model paths independently and applies
// the agreement policy:
//
//  1. both paths agree (case-insensitive) → both_agree
//  2. only rules succeed → rules
//  3. only the model succeeds, above the confidence floor → ml
//  4. neither → failed
//
// Disagreement between non-empty names resolves toward the rule path unless
// model confidence clears ModelOverrideThreshold. A model error degrades to
// rules-only rather than failing the extraction.
func (e *Extractor) ExtractWithDetails(ctx context.Context, text string) Details {
	details := Details{Method: MethodFailed}

	details.RuleName = ExtractByRules(text)

	if e.model != nil {
		candidates, err := e.model.ExtractNames(ctx, text)
		if err != nil {
			e.log.Warn().Err(err).Msg("name model path unavailable, using rules only")
		} else if len(candidates) > 0 {
			details.AllMLCandidates = candidates
			details.MLName = candidates[0].Name
			details.MLConfidence = candidates[0].Confidence
		}
	}

	switch {
	case details.RuleName != "" && details.MLName != "" &&
		strings.EqualFold(details.RuleName, details.MLName):
		details.Name = details.RuleName
		details.Method = MethodBothAgree

	case details.RuleName != "" && details.MLName != "":
		// disagreement
		if details.MLConfidence >= e.cfg.ModelOverrideThreshold {
			details.Name = details.MLName
			details.Method = MethodML
		} else {
			details.Name = details.RuleName
			details.Method = MethodRules
		}

	case details.RuleName != "":
		details.Name = details.RuleName
		details.Method = MethodRules

	case details.MLName != "" && details.MLConfidence >= e.cfg.ModelMinConfidence:
		details.Name = details.MLName
		details.Method = MethodML
	}

	return details
}
