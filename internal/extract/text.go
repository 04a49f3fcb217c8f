package extract

import (
	"regexp"
	"strings"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

const methodText = "text"

// extractText handles plain-text documents: UTF-8 sanitation plus the same
// normalization every other format goes through.
func (e *Extractor) extractText(data []byte) types.ExtractionResult {
	return types.ExtractionResult{
		Text:   NormalizeText(string(data)),
		Method: methodText,
	}
}

var (
	horizontalWS  = regexp.MustCompile(`[ \t\f\v]+`)
	excessNewline = regexp.MustCompile(`\n{3,}`)
)

// NormalizeText cleans extracted text while preserving line structure:
// invalid UTF-8 is replaced, line endings are unified, horizontal
// whitespace runs collapse to one space, and blank-line runs collapse to
// at most one blank line.
func NormalizeText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ToValidUTF8(content, "�")
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, " ", " ")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = horizontalWS.ReplaceAllString(line, " ")
		cleaned = append(cleaned, strings.TrimSpace(line))
	}

	result := strings.Join(cleaned, "\n")
	result = excessNewline.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
