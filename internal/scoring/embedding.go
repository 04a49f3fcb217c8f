package scoring

import (
	"context"
	"math"

	"github.com/philippgille/chromem-go"
)

// Embedder produces a vector representation of a text for semantic
// comparison. A nil Embedder on the Scorer disables the semantic term.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// OpenAICompatEmbedder calls any OpenAI-compatible embeddings endpoint.
type OpenAICompatEmbedder struct {
	fn chromem.EmbeddingFunc
}

// NewOpenAICompatEmbedder wires an OpenAI-compatible embeddings API, which
// covers local servers (Ollama, LocalAI) as well as the hosted one.
func NewOpenAICompatEmbedder(baseURL, apiKey, model string) *OpenAICompatEmbedder {
	return &OpenAICompatEmbedder{
		fn: chromem.NewEmbeddingFuncOpenAICompat(baseURL, apiKey, model, nil),
	}
}

// Embed returns the embedding vector for text.
func (e *OpenAICompatEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return e.fn(ctx, text)
}

// cosineSimilarity returns the cosine of the angle between two vectors,
// or 0 when either vector is empty or zero-length.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
