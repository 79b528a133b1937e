package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"eduquest/internal/domain"
	"eduquest/internal/dto"
	"eduquest/internal/service"
	"eduquest/internal/validation"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validator,
	}
}

// GenerateQuiz godoc
// @Summary Generate a quiz from a document
// @Description Uploads a PDF/DOCX and builds a rule-based quiz from its text
// @Tags quiz
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF or DOCX file"
// @Param difficulty formData string false "easy|medium|hard" default(medium)
// @Param num_mcq formData int false "Multiple-choice question count" default(5)
// @Param num_tf formData int false "True/false question count" default(5)
// @Param seed formData int false "Random seed for reproducible quizzes"
// @Success 200 {object} dto.QuizPublicResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Router /docs/generate-quiz [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	upload, err := readUpload(c, "file")
	if err != nil {
		return err
	}

	req := dto.GenerateQuizRequest{
		Difficulty: c.FormValue("difficulty", "medium"),
		NumMCQ:     formInt(c, "num_mcq", 5),
		NumTF:      formInt(c, "num_tf", 5),
	}
	if raw := c.FormValue("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.ValidationErrors{domain.NewInvalidFormatError("seed", raw)}
		}
		req.Seed = &seed
	}

	if errs := h.validator.ValidateGenerateQuizRequest(req.Difficulty, req.NumMCQ, req.NumTF); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.GenerateFromUpload(c.Context(), *upload, req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuiz godoc
// @Summary Get the public view of a quiz
// @Description Returns a quiz without its answer key
// @Tags quiz
// @Produce json
// @Param quiz_id path string true "Quiz id"
// @Success 200 {object} dto.QuizPublicResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quiz/{quiz_id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	resp, err := h.service.GetQuizPublic(c.Params("quiz_id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitAnswers godoc
// @Summary Submit answers for a quiz
// @Description Grades submitted answers and returns per-question feedback
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.SubmitAnswersRequest true "Submission"
// @Success 200 {object} dto.SubmitAnswersResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quiz/answer [post]
func (h *QuizHandler) SubmitAnswers(c *fiber.Ctx) error {
	var req dto.SubmitAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Cuerpo de la solicitud inválido")
	}

	if errs := h.validator.ValidateSubmitAnswersRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SubmitAnswers(&req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// formInt parses an optional integer form value, falling back to def on
// absence or garbage.
func formInt(c *fiber.Ctx, field string, def int) int {
	raw := c.FormValue(field)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
