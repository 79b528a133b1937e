package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"eduquest/internal/domain"
)

// extractPDF pulls the plain text of every page. Pages that fail to
// decode contribute nothing instead of failing the document, and
// encrypted files get a best-effort empty-password decrypt.
func extractPDF(content []byte) (doc *domain.ExtractedDocument, err error) {
	// The pdf package panics on some malformed files; surface those as a
	// controlled extraction error like any other unreadable PDF.
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = domain.NewExtractionError(fmt.Sprintf("Error leyendo PDF: %v", r), nil)
		}
	}()

	reader, err := pdf.NewReaderEncrypted(bytes.NewReader(content), int64(len(content)), func() string {
		return ""
	})
	if err != nil {
		return nil, domain.NewExtractionError(fmt.Sprintf("Error leyendo PDF: %v", err), err)
	}

	pages := reader.NumPage()
	var b strings.Builder
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			b.WriteString("\n")
			continue
		}
		text, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			text = ""
		}
		if i > 1 {
			b.WriteString("\n")
		}
		b.WriteString(text)
	}

	return &domain.ExtractedDocument{
		Kind:    "pdf",
		RawText: b.String(),
		Pages:   pages,
	}, nil
}
