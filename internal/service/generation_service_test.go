package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduquest/internal/domain"
	"eduquest/internal/dto"
)

// mockGenerator implements domain.QuestionGenerator.
type mockGenerator struct {
	generateFunc func(ctx context.Context, req domain.GenerationRequest) (*domain.GeneratedQuestionSet, error)
}

func (m *mockGenerator) GenerateQuestions(ctx context.Context, req domain.GenerationRequest) (*domain.GeneratedQuestionSet, error) {
	return m.generateFunc(ctx, req)
}

const generationContext = "La fotosíntesis transforma la energía luminosa en energía química dentro de los cloroplastos."

func TestGenerateQuestionsFromContext(t *testing.T) {
	generator := &mockGenerator{
		generateFunc: func(ctx context.Context, req domain.GenerationRequest) (*domain.GeneratedQuestionSet, error) {
			assert.Equal(t, generationContext, req.Context)
			assert.Equal(t, "multiple_choice", req.Type)
			assert.Equal(t, 5, req.QuestionCount)
			return &domain.GeneratedQuestionSet{
				Preguntas: []domain.GeneratedQuestion{{Tipo: "multiple_choice", Pregunta: "¿Dónde ocurre?"}},
			}, nil
		},
	}
	svc := NewGenerationService(nil, generator, testConfig())

	resp, err := svc.GenerateQuestions(context.Background(), dto.GenerateQuestionsRequest{
		Context:       generationContext,
		Type:          "multiple_choice",
		QuestionCount: 5,
	})
	require.NoError(t, err)
	require.Len(t, resp.Preguntas, 1)
}

func TestGenerateQuestionsFromFile(t *testing.T) {
	longText := "Un documento con texto suficiente para superar el mínimo de caracteres requerido."
	documents := NewDocumentService(pdfExtractor(longText, 1), nil, nil, testConfig())

	generator := &mockGenerator{
		generateFunc: func(ctx context.Context, req domain.GenerationRequest) (*domain.GeneratedQuestionSet, error) {
			assert.Equal(t, longText, req.Context)
			return &domain.GeneratedQuestionSet{}, nil
		},
	}
	svc := NewGenerationService(documents, generator, testConfig())

	_, err := svc.GenerateQuestions(context.Background(), dto.GenerateQuestionsRequest{
		File:          &dto.FileUpload{Filename: "doc.pdf", Content: []byte("%PDF")},
		Type:          "multiple_choice",
		QuestionCount: 3,
	})
	require.NoError(t, err)
}

func TestGenerateQuestionsTextTooShort(t *testing.T) {
	svc := NewGenerationService(nil, &mockGenerator{}, testConfig())

	_, err := svc.GenerateQuestions(context.Background(), dto.GenerateQuestionsRequest{
		Context: "corto",
		Type:    "multiple_choice",
	})
	require.Error(t, err)

	var de *domain.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.CodeInvalidInput, de.Code)
	assert.Equal(t, "Texto insuficiente o archivo sin contenido legible.", de.Message)
}

func TestGenerateQuestionsNoGenerator(t *testing.T) {
	svc := NewGenerationService(nil, nil, testConfig())

	_, err := svc.GenerateQuestions(context.Background(), dto.GenerateQuestionsRequest{
		Context: generationContext,
		Type:    "multiple_choice",
	})
	require.Error(t, err)

	var de *domain.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.CodeLLMServiceError, de.Code)
}
