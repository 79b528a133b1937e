package handler

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"eduquest/internal/domain"
	"eduquest/internal/dto"
	"eduquest/internal/service"
)

// DocumentHandler handles document extraction HTTP requests
type DocumentHandler struct {
	service service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler instance
func NewDocumentHandler(service service.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// Extract godoc
// @Summary Extract text from one document
// @Description Uploads a PDF or DOCX and returns its cleaned text
// @Tags docs
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF or DOCX file"
// @Success 200 {object} dto.ExtractResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Router /docs/extract [post]
func (h *DocumentHandler) Extract(c *fiber.Ctx) error {
	upload, err := readUpload(c, "file")
	if err != nil {
		return err
	}

	resp, err := h.service.ExtractUpload(c.Context(), *upload)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ExtractBatch godoc
// @Summary Extract text from multiple documents
// @Description Uploads several PDF/DOCX files and returns per-file word counts
// @Tags docs
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "PDF or DOCX files"
// @Success 200 {object} dto.BatchExtractResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Router /docs/extract-batch [post]
func (h *DocumentHandler) ExtractBatch(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return domain.NewInvalidInputError("Se requiere al menos un archivo")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return domain.NewInvalidInputError("Se requiere al menos un archivo")
	}

	uploads := make([]dto.FileUpload, 0, len(files))
	for _, fh := range files {
		upload, err := readFileHeader(fh)
		if err != nil {
			return err
		}
		uploads = append(uploads, *upload)
	}

	resp, err := h.service.ExtractBatch(c.Context(), uploads)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// readUpload reads one multipart file field into memory.
func readUpload(c *fiber.Ctx, field string) (*dto.FileUpload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, domain.NewInvalidInputError("Se requiere un archivo")
	}
	return readFileHeader(fh)
}

func readFileHeader(fh *multipart.FileHeader) (*dto.FileUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, domain.NewInternalError("No se pudo leer el archivo", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, domain.NewInternalError("No se pudo leer el archivo", err)
	}
	return &dto.FileUpload{Filename: fh.Filename, Content: content}, nil
}
