package handler

import (
	"github.com/gofiber/fiber/v2"

	"eduquest/internal/dto"
	"eduquest/internal/service"
	"eduquest/internal/validation"
)

// GenerationHandler fronts the LLM-backed question generation endpoint
type GenerationHandler struct {
	service   service.GenerationService
	validator *validation.Validator
}

// NewGenerationHandler creates a new GenerationHandler instance
func NewGenerationHandler(service service.GenerationService, validator *validation.Validator) *GenerationHandler {
	return &GenerationHandler{
		service:   service,
		validator: validator,
	}
}

// GenerateFromTextOrFile godoc
// @Summary Generate questions from raw text or a document via an LLM
// @Description Sends the source text to the configured model and returns its strict-JSON question set
// @Tags generate
// @Accept multipart/form-data
// @Produce json
// @Param context formData string false "Raw source text (alternative to file)"
// @Param file formData file false "PDF or DOCX file (alternative to context)"
// @Param type formData string false "multiple_choice|verdadero_falso" default(multiple_choice)
// @Param question_count formData int false "Questions to generate" default(5)
// @Param options_per_question formData int false "Options per MCQ" default(4)
// @Param model formData string false "Model override"
// @Param force_ocr formData bool false "Force OCR for PDFs"
// @Param ocr_lang formData string false "OCR language hints" default(spa+eng)
// @Success 200 {object} domain.GeneratedQuestionSet
// @Failure 400 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate-from-text-or-file [post]
func (h *GenerationHandler) GenerateFromTextOrFile(c *fiber.Ctx) error {
	req := dto.GenerateQuestionsRequest{
		Context:            c.FormValue("context"),
		Type:               c.FormValue("type", "multiple_choice"),
		QuestionCount:      formInt(c, "question_count", 5),
		OptionsPerQuestion: formInt(c, "options_per_question", 4),
		Model:              c.FormValue("model"),
		ForceOCR:           c.FormValue("force_ocr") == "true",
		OCRLang:            c.FormValue("ocr_lang"),
	}

	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		upload, err := readFileHeader(fh)
		if err != nil {
			return err
		}
		req.File = upload
	}

	if errs := h.validator.ValidateGenerateQuestionsRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.GenerateQuestions(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
