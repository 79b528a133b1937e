package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"eduquest/internal/config"
	"eduquest/internal/domain"
	"eduquest/internal/dto"
)

// GenerationService fronts the external LLM collaborator: it resolves
// the source text (raw context or uploaded document, with OCR fallback)
// and delegates question generation to the model.
type GenerationService interface {
	GenerateQuestions(ctx context.Context, req dto.GenerateQuestionsRequest) (*domain.GeneratedQuestionSet, error)
}

type generationService struct {
	documents DocumentService
	generator domain.QuestionGenerator
	cfg       *config.Config
}

// NewGenerationService creates a new GenerationService. generator may be
// nil when no API key is configured; requests then fail with an LLM
// service error.
func NewGenerationService(documents DocumentService, generator domain.QuestionGenerator, cfg *config.Config) GenerationService {
	return &generationService{
		documents: documents,
		generator: generator,
		cfg:       cfg,
	}
}

func (s *generationService) GenerateQuestions(ctx context.Context, req dto.GenerateQuestionsRequest) (*domain.GeneratedQuestionSet, error) {
	var text string
	switch {
	case req.File != nil:
		extracted, err := s.documents.CleanTextWithOCR(ctx, *req.File, req.ForceOCR, req.OCRLang)
		if err != nil {
			return nil, err
		}
		text = extracted
	default:
		text = req.Context
	}

	if utf8.RuneCountInString(text) < s.cfg.Upload.MinTextChars {
		return nil, domain.NewInvalidInputError("Texto insuficiente o archivo sin contenido legible.")
	}

	if s.generator == nil {
		return nil, domain.NewLLMServiceError(errors.New("OPENROUTER_API_KEY no configurada"))
	}

	return s.generator.GenerateQuestions(ctx, domain.GenerationRequest{
		Context:            text,
		Type:               req.Type,
		QuestionCount:      req.QuestionCount,
		OptionsPerQuestion: req.OptionsPerQuestion,
		Model:              req.Model,
	})
}
