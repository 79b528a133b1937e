// Package docs holds the OpenAPI document served at /swagger. It is
// maintained by hand alongside the handler annotations; keep both in
// sync when a route or DTO changes.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/docs/extract": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["docs"],
                "summary": "Extract text from one document",
                "description": "Uploads a PDF or DOCX and returns its cleaned text",
                "parameters": [
                    {"type": "file", "description": "PDF or DOCX file", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ExtractResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/docs/extract-batch": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["docs"],
                "summary": "Extract text from multiple documents",
                "description": "Uploads several PDF/DOCX files and returns per-file word counts",
                "parameters": [
                    {"type": "file", "description": "PDF or DOCX files", "name": "files", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BatchExtractResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/docs/generate-quiz": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Generate a quiz from a document",
                "description": "Uploads a PDF/DOCX and builds a rule-based quiz from its text",
                "parameters": [
                    {"type": "file", "description": "PDF or DOCX file", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "default": "medium", "description": "easy|medium|hard", "name": "difficulty", "in": "formData"},
                    {"type": "integer", "default": 5, "description": "Multiple-choice question count", "name": "num_mcq", "in": "formData"},
                    {"type": "integer", "default": 5, "description": "True/false question count", "name": "num_tf", "in": "formData"},
                    {"type": "integer", "description": "Random seed for reproducible quizzes", "name": "seed", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuizPublicResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/generate-from-text-or-file": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["generate"],
                "summary": "Generate questions from raw text or a document via an LLM",
                "description": "Sends the source text to the configured model and returns its strict-JSON question set",
                "parameters": [
                    {"type": "string", "description": "Raw source text (alternative to file)", "name": "context", "in": "formData"},
                    {"type": "file", "description": "PDF or DOCX file (alternative to context)", "name": "file", "in": "formData"},
                    {"type": "string", "default": "multiple_choice", "description": "multiple_choice|verdadero_falso", "name": "type", "in": "formData"},
                    {"type": "integer", "default": 5, "description": "Questions to generate", "name": "question_count", "in": "formData"},
                    {"type": "integer", "default": 4, "description": "Options per MCQ", "name": "options_per_question", "in": "formData"},
                    {"type": "string", "description": "Model override", "name": "model", "in": "formData"},
                    {"type": "boolean", "description": "Force OCR for PDFs", "name": "force_ocr", "in": "formData"},
                    {"type": "string", "default": "spa+eng", "description": "OCR language hints", "name": "ocr_lang", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.GeneratedQuestionSet"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/quiz/answer": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Submit answers for a quiz",
                "description": "Grades submitted answers and returns per-question feedback",
                "parameters": [
                    {"description": "Submission", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SubmitAnswersRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SubmitAnswersResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/quiz/{quiz_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Get the public view of a quiz",
                "description": "Returns a quiz without its answer key",
                "parameters": [
                    {"type": "string", "description": "Quiz id", "name": "quiz_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuizPublicResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Choice": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "domain.GeneratedQuestion": {
            "type": "object",
            "properties": {
                "tipo": {"type": "string"},
                "pregunta": {"type": "string"},
                "opciones": {"type": "array", "items": {"type": "string"}},
                "respuesta_correcta": {"type": "string"}
            }
        },
        "domain.GeneratedQuestionSet": {
            "type": "object",
            "properties": {
                "preguntas": {"type": "array", "items": {"$ref": "#/definitions/domain.GeneratedQuestion"}}
            }
        },
        "domain.Question": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "type": {"type": "string", "enum": ["mcq", "tf"]},
                "prompt": {"type": "string"},
                "choices": {"type": "array", "items": {"$ref": "#/definitions/domain.Choice"}}
            }
        },
        "dto.AnswerItem": {
            "type": "object",
            "properties": {
                "question_id": {"type": "string"},
                "answer": {"description": "Choice id (string) for mcq, boolean for tf"}
            }
        },
        "dto.BatchExtractResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.BatchItem"}},
                "total_files": {"type": "integer"},
                "total_words": {"type": "integer"}
            }
        },
        "dto.BatchItem": {
            "type": "object",
            "properties": {
                "filename": {"type": "string"},
                "kind": {"type": "string"},
                "size_bytes": {"type": "integer"},
                "word_count": {"type": "integer"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"}
            }
        },
        "dto.ExtractResponse": {
            "type": "object",
            "properties": {
                "filename": {"type": "string"},
                "kind": {"type": "string"},
                "size_bytes": {"type": "integer"},
                "meta": {"type": "object", "additionalProperties": true},
                "text": {"type": "string"},
                "word_count": {"type": "integer"}
            }
        },
        "dto.FeedbackItem": {
            "type": "object",
            "properties": {
                "question_id": {"type": "string"},
                "correct": {"type": "boolean"},
                "expected": {"description": "Choice id (string) for mcq, boolean for tf"},
                "explanation": {"type": "string"}
            }
        },
        "dto.QuizPublicResponse": {
            "type": "object",
            "properties": {
                "quiz_id": {"type": "string"},
                "difficulty": {"type": "string"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/domain.Question"}}
            }
        },
        "dto.SubmitAnswersRequest": {
            "type": "object",
            "properties": {
                "quiz_id": {"type": "string"},
                "answers": {"type": "array", "items": {"$ref": "#/definitions/dto.AnswerItem"}}
            }
        },
        "dto.SubmitAnswersResponse": {
            "type": "object",
            "properties": {
                "quiz_id": {"type": "string"},
                "total": {"type": "integer"},
                "correct": {"type": "integer"},
                "score": {"type": "number"},
                "feedback": {"type": "array", "items": {"$ref": "#/definitions/dto.FeedbackItem"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "EduQuest API",
	Description:      "Turns study material (PDF/DOCX or raw text) into quizzes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
