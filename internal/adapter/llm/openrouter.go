// Package llm implements the external question-generation collaborator:
// a chat-completion call against an OpenAI-compatible endpoint
// (OpenRouter by default) that must answer with strict JSON.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"eduquest/internal/config"
	"eduquest/internal/domain"
	"eduquest/internal/logger"

	"go.uber.org/zap"
)

const systemPrompt = "Sos un generador de preguntas en formato JSON estricto."

// OpenRouterGenerator implements domain.QuestionGenerator through
// langchaingo's OpenAI client pointed at a custom base URL.
type OpenRouterGenerator struct {
	llm          *openai.LLM
	defaultModel string
}

func NewOpenRouterGenerator(cfg config.OpenRouterConfig) (*OpenRouterGenerator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OPENROUTER_API_KEY no configurada")
	}
	client, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, err
	}
	return &OpenRouterGenerator{llm: client, defaultModel: cfg.Model}, nil
}

// GenerateQuestions builds the strict-JSON prompt, calls the model in
// JSON mode and parses the answer into typed questions.
func (g *OpenRouterGenerator) GenerateQuestions(ctx context.Context, req domain.GenerationRequest) (*domain.GeneratedQuestionSet, error) {
	model := req.Model
	if model == "" {
		model = g.defaultModel
	}

	prompt := buildPrompt(req)
	logger.Get().Debug("Calling question generation model",
		zap.String("model", model),
		zap.Int("prompt_len", len(prompt)),
	)

	resp, err := g.llm.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
			llms.TextParts(llms.ChatMessageTypeHuman, prompt),
		},
		llms.WithModel(model),
		llms.WithJSONMode(),
	)
	if err != nil {
		return nil, domain.NewLLMServiceError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, domain.NewLLMServiceError(errors.New("respuesta vacía del modelo"))
	}

	var set domain.GeneratedQuestionSet
	if err := json.Unmarshal([]byte(resp.Choices[0].Content), &set); err != nil {
		return nil, domain.NewLLMServiceError(fmt.Errorf("error parseando JSON: %w", err))
	}
	return &set, nil
}

// buildPrompt mirrors the contract the frontend depends on: a fixed
// Spanish instruction block ending in the exact JSON schema expected
// back.
func buildPrompt(req domain.GenerationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usando el siguiente texto de contexto:\n\"\"\"%s\"\"\"\n\n", req.Context)
	fmt.Fprintf(&b, "Genera %d preguntas del tipo %s.\n", req.QuestionCount, req.Type)
	if req.Type == "multiple_choice" {
		fmt.Fprintf(&b, "Cada pregunta debe tener %d opciones posibles si es multiple choice.\n", req.OptionsPerQuestion)
	}
	b.WriteString("La respuesta correcta debe estar indicada.\n\n")
	b.WriteString(`El resultado DEBE estar en formato JSON ESTRICTO con esta estructura:

{
  "preguntas": [
    {
      "tipo": "multiple_choice" | "verdadero_falso",
      "pregunta": "texto de la pregunta",
      "opciones": ["A","B","C","D"],
      "respuesta_correcta": "texto u opción correcta"
    }
  ]
}`)
	return b.String()
}

var _ domain.QuestionGenerator = (*OpenRouterGenerator)(nil)
