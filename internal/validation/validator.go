package validation

import (
	"strings"

	"eduquest/internal/domain"
	"eduquest/internal/dto"
)

// maxQuestionsPerType caps how many questions of one type a single
// request may ask for.
const maxQuestionsPerType = 50

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateQuizRequest validates the quiz generation parameters.
func (v *Validator) ValidateGenerateQuizRequest(difficulty string, numMCQ, numTF int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if difficulty != "" && !isValidDifficulty(difficulty) {
		errors = append(errors, domain.NewInvalidFormatError("difficulty", difficulty))
	}
	if numMCQ < 0 || numMCQ > maxQuestionsPerType {
		errors = append(errors, domain.NewOutOfRangeError("num_mcq", numMCQ, 0, maxQuestionsPerType))
	}
	if numTF < 0 || numTF > maxQuestionsPerType {
		errors = append(errors, domain.NewOutOfRangeError("num_tf", numTF, 0, maxQuestionsPerType))
	}

	return errors
}

// ValidateSubmitAnswersRequest validates an answer submission body.
func (v *Validator) ValidateSubmitAnswersRequest(req *dto.SubmitAnswersRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.QuizID) == "" {
		errors = append(errors, domain.NewMissingFieldError("quiz_id"))
	}
	for _, a := range req.Answers {
		if strings.TrimSpace(a.QuestionID) == "" {
			errors = append(errors, domain.NewMissingFieldError("answers[].question_id"))
			break
		}
	}

	return errors
}

// ValidateGenerateQuestionsRequest validates the LLM generation form.
func (v *Validator) ValidateGenerateQuestionsRequest(req *dto.GenerateQuestionsRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.File == nil && strings.TrimSpace(req.Context) == "" {
		errors = append(errors, domain.NewMissingFieldError("context|file"))
	}
	switch req.Type {
	case "multiple_choice", "verdadero_falso":
	default:
		errors = append(errors, domain.NewInvalidFormatError("type", req.Type))
	}
	if req.QuestionCount < 1 || req.QuestionCount > maxQuestionsPerType {
		errors = append(errors, domain.NewOutOfRangeError("question_count", req.QuestionCount, 1, maxQuestionsPerType))
	}
	if req.Type == "multiple_choice" && (req.OptionsPerQuestion < 2 || req.OptionsPerQuestion > 6) {
		errors = append(errors, domain.NewOutOfRangeError("options_per_question", req.OptionsPerQuestion, 2, 6))
	}

	return errors
}

func isValidDifficulty(s string) bool {
	switch strings.ToLower(s) {
	case "easy", "medium", "hard":
		return true
	default:
		return false
	}
}
