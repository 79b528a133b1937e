// Package extractor reads PDF and DOCX blobs into raw text. It is the
// concrete side of the domain.TextExtractor port; callers get back raw
// text plus format metadata and normalize it themselves.
package extractor

import (
	"strings"

	"eduquest/internal/domain"
)

const (
	extPDF  = ".pdf"
	extDOCX = ".docx"
)

// AllowedFile reports whether the filename carries a supported extension.
func AllowedFile(filename string) bool {
	fn := strings.ToLower(filename)
	return strings.HasSuffix(fn, extPDF) || strings.HasSuffix(fn, extDOCX)
}

// DocumentExtractor dispatches on the filename extension.
type DocumentExtractor struct{}

func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// Extract reads the document blob and returns its raw text with
// format-specific metadata.
func (e *DocumentExtractor) Extract(filename string, content []byte) (*domain.ExtractedDocument, error) {
	fn := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(fn, extPDF):
		return extractPDF(content)
	case strings.HasSuffix(fn, extDOCX):
		return extractDOCX(content)
	default:
		return nil, domain.NewInvalidInputError("Solo se aceptan .pdf y .docx")
	}
}

var _ domain.TextExtractor = (*DocumentExtractor)(nil)
