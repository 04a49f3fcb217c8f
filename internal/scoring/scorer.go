// Package scoring combines skill, experience, education, and semantic
// signals into a composite candidate-to-job fit score.
package scoring

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/adapt"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/skills"
	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

// Weights control how component scores combine into the overall score.
// They are relative proportions, normalized at scoring time; when no
// embedder is configured the semantic weight is dropped and the rest
// renormalize proportionally.
type Weights struct {
	Skill      float64
	Experience float64
	Education  float64
	Semantic   float64
}

// DefaultWeights returns the standard component weighting.
func DefaultWeights() Weights {
	return Weights{
		Skill:      0.50,
		Experience: 0.25,
		Education:  0.15,
		Semantic:   0.10,
	}
}

// Scorer scores a candidate against a job target. The embedder is
// optional; without one the semantic term is omitted and its weight
// redistributed.
type Scorer struct {
	matcher  *skills.Extractor
	embedder Embedder
	weights  Weights
	log      zerolog.Logger
}

// NewScorer creates a scorer over the given skill extractor. embedder may
// be nil.
func NewScorer(matcher *skills.Extractor, embedder Embedder, weights Weights, log zerolog.Logger) *Scorer {
	return &Scorer{
		matcher:  matcher,
		embedder: embedder,
		weights:  weights,
		log:      log.With().Str("component", "scorer").Logger(),
	}
}

// Score computes the composite fit between a candidate and a job. It is
// computed fresh on every call; nothing is cached.
func (s *Scorer) Score(ctx context.Context, candidate types.Candidate, job types.JobTarget) types.MatchResult {
	stats := s.matcher.Match(candidate.Skills, job.RequiredSkills)
	skillScore := stats.MatchPercentage

	expScore := experienceFit(candidate.TotalExperienceYears, job.RequiredYears) * 100
	eduScore := educationFit(candidate.EducationLevel, job.RequiredDegreeRank) * 100

	semantic, semanticAvailable := s.semanticSimilarity(ctx, candidate.Text, job.Text)

	weights := s.weights
	if !semanticAvailable {
		weights.Semantic = 0
	}
	// weights are proportions; normalizing keeps the composite in [0,100]
	// whatever values configuration supplied
	total := weights.Skill + weights.Experience + weights.Education + weights.Semantic
	if total > 0 {
		weights.Skill /= total
		weights.Experience /= total
		weights.Education /= total
		weights.Semantic /= total
	}

	overall := weights.Skill*skillScore +
		weights.Experience*expScore +
		weights.Education*eduScore +
		weights.Semantic*semantic*100
	overall = math.Round(overall*10) / 10

	result := types.MatchResult{
		OverallScore:       overall,
		SkillMatch:         skillScore,
		ExperienceMatch:    math.Round(expScore*10) / 10,
		EducationMatch:     math.Round(eduScore*10) / 10,
		SemanticSimilarity: semantic,
		MatchedSkills:      stats.MatchedSkills,
		MissingSkills:      stats.MissingSkills,
		ExtraSkills:        stats.ExtraSkills,
		MatchCount:         stats.MatchCount,
		TotalRequired:      stats.TotalRequired,
	}
	result.Explanation = explain(candidate, job, result)

	s.log.Debug().
		Float64("overall", result.OverallScore).
		Int("matched", result.MatchCount).
		Int("required", result.TotalRequired).
		Msg("scored candidate against job")

	return result
}

// semanticSimilarity embeds both texts and returns their cosine
// similarity clamped to [0,1]. Returns false when the embedder is absent
// or either call fails; the caller then drops the semantic term.
func (s *Scorer) semanticSimilarity(ctx context.Context, resumeText, jobText string) (float64, bool) {
	if s.embedder == nil || resumeText == "" || jobText == "" {
		return 0, false
	}
	resumeVec, err := s.embedder.Embed(ctx, resumeText)
	if err != nil {
		s.log.Warn().Err(err).Msg("resume embedding failed, dropping semantic term")
		return 0, false
	}
	jobVec, err := s.embedder.Embed(ctx, jobText)
	if err != nil {
		s.log.Warn().Err(err).Msg("job embedding failed, dropping semantic term")
		return 0, false
	}
	sim := cosineSimilarity(resumeVec, jobVec)
	if sim < 0 {
		sim = 0
	} else if sim > 1 {
		sim = 1
	}
	return sim, true
}

// experienceFit compares candidate years against the job requirement and
// returns a fit in [0,1]. Shortfall is penalized roughly twice as hard as
// the linear ratio would; exceeding the requirement is never penalized.
func experienceFit(candidateYears, required float64) float64 {
	if required <= 0 {
		return 1
	}
	if candidateYears >= required {
		return 1
	}
	shortfall := (required - candidateYears) / required
	fit := 1 - 2*shortfall
	if fit < 0 {
		return 0
	}
	return fit
}

// educationFit compares the candidate's highest degree rank against the
// job's required rank, as a ratio capped at 1. An unstated requirement is
// a full fit.
func educationFit(candidateDegree string, requiredRank int) float64 {
	if requiredRank <= 0 {
		return 1
	}
	rank := adapt.DegreeRank(candidateDegree)
	if rank >= requiredRank {
		return 1
	}
	return float64(rank) / float64(requiredRank)
}
