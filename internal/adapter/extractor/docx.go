package extractor

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"eduquest/internal/domain"
)

const docxDocumentPath = "word/document.xml"

// extractDOCX walks word/document.xml and joins the text of non-empty
// paragraphs with newlines. A .docx is a zip archive; the WordprocessingML
// elements of interest are <w:p> (paragraph) and <w:t> (text run).
func extractDOCX(content []byte) (*domain.ExtractedDocument, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, domain.NewExtractionError(fmt.Sprintf("Error leyendo DOCX: %v", err), err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == docxDocumentPath {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, domain.NewExtractionError("Error leyendo DOCX: falta word/document.xml", nil)
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, domain.NewExtractionError(fmt.Sprintf("Error leyendo DOCX: %v", err), err)
	}
	defer rc.Close()

	paragraphs, err := paragraphTexts(rc)
	if err != nil {
		return nil, domain.NewExtractionError(fmt.Sprintf("Error leyendo DOCX: %v", err), err)
	}

	return &domain.ExtractedDocument{
		Kind:       "docx",
		RawText:    strings.Join(paragraphs, "\n"),
		Paragraphs: len(paragraphs),
	}, nil
}

func paragraphTexts(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)
	var paragraphs []string
	var current strings.Builder
	inTextRun := false
	depth := 0 // nesting of <w:p>; tables nest paragraphs

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				depth++
			case "t":
				inTextRun = depth > 0
			case "tab":
				if depth > 0 {
					current.WriteString("\t")
				}
			case "br", "cr":
				if depth > 0 {
					current.WriteString("\n")
				}
			}
		case xml.CharData:
			if inTextRun {
				current.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inTextRun = false
			case "p":
				depth--
				if depth == 0 {
					if text := current.String(); text != "" {
						paragraphs = append(paragraphs, text)
					}
					current.Reset()
				}
			}
		}
	}
	return paragraphs, nil
}
