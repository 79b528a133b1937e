package domain

import (
	"context"
	"time"
)

// QuizStore is the process-lifetime mapping from quiz id to quiz. Writes
// never target the same key twice (ids are UUIDs), but implementations
// must still be safe for concurrent create/read.
type QuizStore interface {
	// Save stores a quiz under its id. The quiz must not be mutated
	// afterwards.
	Save(quiz *Quiz) error

	// Get returns the quiz for the given id, or a DomainError with
	// CodeQuizNotFound.
	Get(id string) (*Quiz, error)
}

// ExtractedDocument is the raw result of reading a document blob, before
// normalization. Pages is set for PDFs, Paragraphs for DOCX.
type ExtractedDocument struct {
	Kind       string
	RawText    string
	Pages      int
	Paragraphs int
}

// TextExtractor turns a document blob into raw text. Implementations
// decide the format from the filename extension.
type TextExtractor interface {
	Extract(filename string, content []byte) (*ExtractedDocument, error)
}

// OCRService recognizes text in a scanned PDF. language is a "+"-joined
// list of tesseract-style codes, e.g. "spa+eng".
type OCRService interface {
	RecognizePDF(ctx context.Context, content []byte, language string) (string, error)
}

// GenerationRequest describes one call to the external LLM collaborator.
type GenerationRequest struct {
	Context            string
	Type               string
	QuestionCount      int
	OptionsPerQuestion int
	Model              string
}

// GeneratedQuestion is one question as returned by the LLM; field names
// follow the strict JSON contract of the prompt.
type GeneratedQuestion struct {
	Tipo              string   `json:"tipo"`
	Pregunta          string   `json:"pregunta"`
	Opciones          []string `json:"opciones,omitempty"`
	RespuestaCorrecta string   `json:"respuesta_correcta"`
}

// GeneratedQuestionSet is the root object of the LLM response.
type GeneratedQuestionSet struct {
	Preguntas []GeneratedQuestion `json:"preguntas"`
}

// QuestionGenerator is the port for the external LLM chat-completion API.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, req GenerationRequest) (*GeneratedQuestionSet, error)
}

// CacheError represents an error originating from the cache.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key is not found in the cache.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache defines the interface (port) for caching operations.
// Implementations of this interface are the adapters (e.g.
// RedisCacheAdapter).
type Cache interface {
	// Get retrieves an item from the cache. It returns ErrCacheMiss if
	// the key is not found.
	Get(ctx context.Context, key string) (string, error)

	// Set adds an item to the cache, overwriting an existing item if one
	// exists. If expiration is 0, the item is cached indefinitely.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Delete removes an item from the cache. It should not return an
	// error if the key is not found.
	Delete(ctx context.Context, key string) error

	// Ping checks the health of the cache service.
	Ping(ctx context.Context) error
}
