package extractor

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduquest/internal/domain"
)

func TestAllowedFile(t *testing.T) {
	assert.True(t, AllowedFile("apuntes.pdf"))
	assert.True(t, AllowedFile("TRABAJO.DOCX"))
	assert.False(t, AllowedFile("notas.txt"))
	assert.False(t, AllowedFile("imagen.png"))
	assert.False(t, AllowedFile("sin_extension"))
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewDocumentExtractor()
	_, err := e.Extract("notas.txt", []byte("contenido"))
	require.Error(t, err)

	var de *domain.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.CodeInvalidInput, de.Code)
	assert.Equal(t, "Solo se aceptan .pdf y .docx", de.Message)
}

func TestExtractInvalidPDF(t *testing.T) {
	e := NewDocumentExtractor()
	_, err := e.Extract("roto.pdf", []byte("esto no es un pdf"))
	require.Error(t, err)

	var de *domain.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.CodeExtractionFailed, de.Code)
}

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const sampleDocumentXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>El gato come pescado.</w:t></w:r></w:p>
    <w:p><w:r><w:t>El perro</w:t></w:r><w:r><w:t xml:space="preserve"> corre rápido.</w:t></w:r></w:p>
    <w:p></w:p>
    <w:p><w:r><w:t>Fin del documento.</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestExtractDOCX(t *testing.T) {
	e := NewDocumentExtractor()
	doc, err := e.Extract("apuntes.docx", buildDOCX(t, sampleDocumentXML))
	require.NoError(t, err)

	assert.Equal(t, "docx", doc.Kind)
	assert.Equal(t, 3, doc.Paragraphs)
	assert.Equal(t, "El gato come pescado.\nEl perro corre rápido.\nFin del documento.", doc.RawText)
	assert.Zero(t, doc.Pages)
}

func TestExtractDOCXTabsAndBreaks(t *testing.T) {
	xmlDoc := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>antes</w:t></w:r><w:r><w:tab/></w:r><w:r><w:t>después</w:t></w:r></w:p>
    <w:p><w:r><w:t>línea uno</w:t><w:br/><w:t>línea dos</w:t></w:r></w:p>
  </w:body>
</w:document>`
	doc, err := extractDOCX(buildDOCX(t, xmlDoc))
	require.NoError(t, err)
	assert.Equal(t, "antes\tdespués\nlínea uno\nlínea dos", doc.RawText)
	assert.Equal(t, 2, doc.Paragraphs)
}

func TestExtractDOCXNotAZip(t *testing.T) {
	_, err := extractDOCX([]byte("no es un zip"))
	require.Error(t, err)

	var de *domain.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.CodeExtractionFailed, de.Code)
	assert.Contains(t, de.Message, "Error leyendo DOCX")
}

func TestExtractDOCXMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<w:styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = extractDOCX(buf.Bytes())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "falta word/document.xml")
}
