package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	fallbackpdf "github.com/dslipak/pdf"
	"github.com/ledongthuc/pdf"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

// Extraction method names recorded in ExtractionResult.Method.
const (
	methodPDF         = "pdf"
	methodPDFFallback = "pdf_fallback"
)

// extractPDF iterates pages in document order and concatenates their text.
// If the primary reader fails, the fallback reader is attempted; Method
// records whichever path produced the returned text. A document neither
// reader can handle yields an empty-text result, not an error.
func (e *Extractor) extractPDF(ctx context.Context, data []byte) types.ExtractionResult {
	if text, pages, err := readPDFPrimary(ctx, data); err == nil {
		return types.ExtractionResult{
			Text:     NormalizeText(text),
			Method:   methodPDF,
			Metadata: types.ExtractionMetadata{Pages: pages},
		}
	} else {
		e.log.Warn().Err(err).Msg("primary pdf extraction failed, trying fallback")
	}

	if text, pages, err := readPDFFallback(data); err == nil {
		return types.ExtractionResult{
			Text:     NormalizeText(text),
			Method:   methodPDFFallback,
			Metadata: types.ExtractionMetadata{Pages: pages},
		}
	} else {
		e.log.Warn().Err(err).Msg("fallback pdf extraction failed")
	}

	return types.ExtractionResult{Text: "", Method: methodPDF}
}

// readPDFPrimary extracts per-page text with ledongthuc/pdf. Pages that
// fail individually are skipped; page iteration order is document order.
func readPDFPrimary(ctx context.Context, data []byte) (text string, pages int, err error) {
	defer func() {
		// The underlying reader panics on some malformed cross-reference
		// tables; convert that into a normal error so the fallback runs.
		if r := recover(); r != nil {
			text, pages = "", 0
			err = &pdfReadError{detail: r}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, err
	}

	pages = reader.NumPage()
	var sb strings.Builder
	for i := 1; i <= pages; i++ {
		if ctx.Err() != nil {
			return "", 0, ctx.Err()
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	text = strings.TrimSpace(sb.String())
	if text == "" {
		return "", pages, &pdfReadError{detail: "no extractable text"}
	}
	return text, pages, nil
}

// readPDFFallback extracts whole-document text with dslipak/pdf.
func readPDFFallback(data []byte) (text string, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, pages = "", 0
			err = &pdfReadError{detail: r}
		}
	}()

	reader, err := fallbackpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, err
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", 0, err
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", 0, err
	}

	return strings.TrimSpace(buf.String()), reader.NumPage(), nil
}

// pdfReadError wraps reader panics and empty-output conditions.
type pdfReadError struct {
	detail interface{}
}

func (e *pdfReadError) Error() string {
	return fmt.Sprintf("pdf read failed: %v", e.detail)
}
