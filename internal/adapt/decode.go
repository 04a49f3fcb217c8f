package adapt

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

// DecodeResume parses a previously emitted resume JSON document. The
// skills field tolerates the legacy shapes alongside the canonical
// partitioned one: a flat name list or a category-to-names map both land
// in AllSkills.
func DecodeResume(data []byte) (types.ParsedResume, error) {
	var raw struct {
		types.ParsedResume
		Skills json.RawMessage `json:"skills"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return types.ParsedResume{}, fmt.Errorf("failed to decode resume JSON: %w", err)
	}

	resume := raw.ParsedResume
	set, err := decodeSkillSet(raw.Skills)
	if err != nil {
		return types.ParsedResume{}, err
	}
	resume.Skills = set
	return resume, nil
}

// decodeSkillSet resolves the three accepted skills encodings: the
// canonical SkillSet object, a flat JSON array of names, or a legacy
// category map. The canonical shape is recognized by a populated
// all_skills list; anything else goes through SkillsInput.
func decodeSkillSet(raw json.RawMessage) (types.SkillSet, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return types.SkillSet{}, nil
	}

	if trimmed[0] == '{' {
		var set types.SkillSet
		if err := json.Unmarshal(trimmed, &set); err == nil && len(set.AllSkills) > 0 {
			return set, nil
		}
	}

	var in SkillsInput
	if err := json.Unmarshal(trimmed, &in); err != nil {
		return types.SkillSet{}, fmt.Errorf("unrecognized skills shape: %w", err)
	}
	return types.SkillSet{AllSkills: in.Names}, nil
}
