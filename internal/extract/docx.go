package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

const methodDOCX = "docx"

// extractDOCX reads word/document.xml from the DOCX archive and walks its
// XML: paragraph text in document order first, then table rows as
// pipe-joined cell text appended after all paragraphs (tables are
// secondary content, ordered after the primary flow).
func (e *Extractor) extractDOCX(data []byte) types.ExtractionResult {
	docXML, err := readDocumentXML(data)
	if err != nil {
		e.log.Warn().Err(err).Msg("docx extraction failed")
		return types.ExtractionResult{Text: "", Method: methodDOCX}
	}

	paragraphs, tables, err := walkDocumentXML(docXML)
	if err != nil {
		e.log.Warn().Err(err).Msg("docx xml walk failed")
		return types.ExtractionResult{Text: "", Method: methodDOCX}
	}

	parts := make([]string, 0, len(paragraphs)+8)
	parts = append(parts, paragraphs...)
	for _, table := range tables {
		parts = append(parts, table...)
	}

	return types.ExtractionResult{
		Text:   NormalizeText(strings.Join(parts, "\n")),
		Method: methodDOCX,
		Metadata: types.ExtractionMetadata{
			Paragraphs: len(paragraphs),
			Tables:     len(tables),
		},
	}
}

// readDocumentXML locates word/document.xml inside the zip container.
func readDocumentXML(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}

	return nil, &docxStructureError{missing: "word/document.xml"}
}

// walkDocumentXML streams the WordprocessingML tokens, collecting paragraph
// text outside tables and per-row pipe-joined cell text inside tables.
func walkDocumentXML(docXML []byte) (paragraphs []string, tables [][]string, err error) {
	decoder := xml.NewDecoder(bytes.NewReader(docXML))

	var (
		tableDepth int      // nested tables count toward the outermost one
		paragraph  strings.Builder
		cell       strings.Builder
		row        []string
		table      []string
	)

	for {
		tok, tokErr := decoder.Token()
		if tokErr == io.EOF {
			break
		}
		if tokErr != nil {
			return nil, nil, tokErr
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "tab":
				if tableDepth > 0 {
					cell.WriteString("\t")
				} else {
					paragraph.WriteString("\t")
				}
			case "br":
				if tableDepth == 0 {
					paragraph.WriteString("\n")
				}
			case "t":
				var text string
				if decErr := decoder.DecodeElement(&text, &t); decErr != nil {
					continue
				}
				if tableDepth > 0 {
					cell.WriteString(text)
				} else {
					paragraph.WriteString(text)
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if tableDepth == 0 {
					if line := strings.TrimSpace(paragraph.String()); line != "" {
						paragraphs = append(paragraphs, line)
					}
					paragraph.Reset()
				} else {
					// paragraph break inside a cell becomes a space
					cell.WriteString(" ")
				}
			case "tc":
				if tableDepth > 0 {
					row = append(row, strings.TrimSpace(cell.String()))
					cell.Reset()
				}
			case "tr":
				if tableDepth > 0 && len(row) > 0 {
					table = append(table, strings.Join(row, " | "))
					row = nil
				}
			case "tbl":
				tableDepth--
				if tableDepth == 0 && len(table) > 0 {
					tables = append(tables, table)
					table = nil
				}
			}
		}
	}

	return paragraphs, tables, nil
}

// docxStructureError indicates a zip container without the expected
// WordprocessingML parts.
type docxStructureError struct {
	missing string
}

func (e *docxStructureError) Error() string {
	return "docx missing " + e.missing
}
