package skills

import (
	"math"
	"strings"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

// Match computes the set arithmetic between resume skills and job-required
// skills. Both sides are canonicalized first, so "JS" and "JavaScript"
// collapse to one entry before comparison. Output lists preserve input
// order: matched and missing follow job order, extra follows resume order.
// With zero required skills the percentage is defined as 0, never a
// division fault.
func (e *Extractor) Match(resumeSkills, jobSkills []string) types.MatchStats {
	resumeSet := e.canonicalSet(resumeSkills)
	jobSet := e.canonicalSet(jobSkills)

	stats := types.MatchStats{
		MatchedSkills: []string{},
		MissingSkills: []string{},
		ExtraSkills:   []string{},
	}

	for _, job := range jobSet.ordered {
		if _, ok := resumeSet.index[strings.ToLower(job)]; ok {
			stats.MatchedSkills = append(stats.MatchedSkills, job)
		} else {
			stats.MissingSkills = append(stats.MissingSkills, job)
		}
	}
	for _, res := range resumeSet.ordered {
		if _, ok := jobSet.index[strings.ToLower(res)]; !ok {
			stats.ExtraSkills = append(stats.ExtraSkills, res)
		}
	}

	stats.MatchCount = len(stats.MatchedSkills)
	stats.TotalRequired = len(jobSet.ordered)
	if stats.TotalRequired > 0 {
		pct := float64(stats.MatchCount) / float64(stats.TotalRequired) * 100
		stats.MatchPercentage = math.Round(pct*10) / 10
	}

	return stats
}

// canonSet is an ordered, deduplicated canonical skill list with a
// case-insensitive membership index.
type canonSet struct {
	ordered []string
	index   map[string]struct{}
}

func (e *Extractor) canonicalSet(raw []string) canonSet {
	set := canonSet{index: make(map[string]struct{}, len(raw))}
	for _, skill := range raw {
		canonicalName, _ := e.tax.Canonicalize(skill)
		if canonicalName == "" {
			continue
		}
		key := strings.ToLower(canonicalName)
		if _, seen := set.index[key]; seen {
			continue
		}
		set.index[key] = struct{}{}
		set.ordered = append(set.ordered, canonicalName)
	}
	return set
}
