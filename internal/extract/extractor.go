// Package extract converts raw documents (PDF, DOCX, plain text) into
// normalized text plus extraction metadata.
package extract

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

// UnsupportedFormatError indicates a declared format the extractor has no
// converter for. It is the only error Extract returns; everything else is
// reported through the ExtractionResult itself.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %q (supported: pdf, docx, doc, txt)", e.Format)
}

// Extractor dispatches a Document to its format-specific converter.
// It is stateless and safe for concurrent use.
type Extractor struct {
	log zerolog.Logger
}

// NewExtractor creates an Extractor that logs extraction events to the
// given logger.
func NewExtractor(log zerolog.Logger) *Extractor {
	return &Extractor{log: log}
}

// Extract converts a document into normalized text. For a structurally
// valid file of a supported format it never fails: internal extraction
// errors produce an empty-text result so the pipeline can continue and
// report partial failure uniformly. The only returned error is
// *UnsupportedFormatError.
func (e *Extractor) Extract(ctx context.Context, doc types.Document) (types.ExtractionResult, error) {
	start := time.Now()

	var res types.ExtractionResult
	switch strings.ToLower(strings.TrimSpace(doc.Format)) {
	case "pdf":
		res = e.extractPDF(ctx, doc.Data)
	case "docx", "doc":
		res = e.extractDOCX(doc.Data)
	case "txt":
		res = e.extractText(doc.Data)
	default:
		return types.ExtractionResult{}, &UnsupportedFormatError{Format: doc.Format}
	}

	res.Metadata.DurationMS = time.Since(start).Milliseconds()

	e.log.Debug().
		Str("document", doc.Name).
		Str("method", res.Method).
		Int("chars", len(res.Text)).
		Int64("duration_ms", res.Metadata.DurationMS).
		Msg("extraction finished")

	return res, nil
}
