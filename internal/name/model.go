package name

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/llm"
)

// Candidate is one person-name proposal from the model path.
type Candidate struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"` // in [0,1]
}

// Model proposes person-name candidates from the leading text window.
// Implementations are interchangeable; a nil Model means the model path is
// unavailable and the extractor degrades to rules-only.
type Model interface {
	ExtractNames(ctx context.Context, text string) ([]Candidate, error)
}

// modelWindowChars bounds how much leading text is sent to the model.
// Names live in the header; sending more only adds noise and cost.
const modelWindowChars = 600

// LLMModel implements Model on top of the llm.Client abstraction using a
// JSON-mode named-entity prompt.
type LLMModel struct {
	client llm.Client
}

// NewLLMModel wraps an LLM client as a name model.
func NewLLMModel(client llm.Client) *LLMModel {
	return &LLMModel{client: client}
}

// ExtractNames asks the model for person-name candidates with confidences.
func (m *LLMModel) ExtractNames(ctx context.Context, text string) ([]Candidate, error) {
	window := leadingWindow(text, modelWindowChars)
	if window == "" {
		return nil, nil
	}

	resp, err := m.client.GenerateJSON(ctx, buildNamePrompt(window), llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("name model call failed: %w", err)
	}

	var candidates []Candidate
	if err := json.Unmarshal([]byte(resp), &candidates); err != nil {
		return nil, fmt.Errorf("name model returned unparseable JSON: %w", err)
	}

	// clamp out-of-range confidences rather than trusting the model
	valid := candidates[:0]
	for _, c := range candidates {
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			continue
		}
		if c.Confidence < 0 {
			c.Confidence = 0
		}
		if c.Confidence > 1 {
			c.Confidence = 1
		}
		valid = append(valid, c)
	}

	return valid, nil
}

// buildNamePrompt constructs the extraction prompt for one text window.
func buildNamePrompt(window string) string {
	var sb strings.Builder
	sb.WriteString("You are a named-entity extractor. Identify the person whose resume this is.\n\n")
	sb.WriteString("Return ONLY a JSON array of candidates, most likely first:\n")
	sb.WriteString(`[{"name": "Full Name", "confidence": 0.0-1.0}]` + "\n\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("- Only person names, never companies, schools, or section headers.\n")
	sb.WriteString("- Return [] if no person name is present.\n\n")
	sb.WriteString("Resume header text:\n\"\"\"\n")
	sb.WriteString(window)
	sb.WriteString("\n\"\"\"\n")
	return sb.String()
}

// leadingWindow returns the first n characters without splitting a line.
func leadingWindow(text string, n int) string {
	text = strings.TrimSpace(text)
	if len(text) <= n {
		return text
	}
	cut := text[:n]
	if idx := strings.LastIndex(cut, "\n"); idx > 0 {
		cut = cut[:idx]
	}
	return cut
}
