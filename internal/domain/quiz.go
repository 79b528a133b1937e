package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Difficulty controls how many distractor candidates MCQ generation draws
// before truncating the final set.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty parses a difficulty string. An empty value defaults to
// medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DifficultyMedium, nil
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", NewInvalidInputError(fmt.Sprintf("Dificultad inválida: %s", s))
	}
}

// DistractorCandidates returns how many similar-length words are taken
// from the shortlist before the final set is cut down to three.
func (d Difficulty) DistractorCandidates() int {
	switch d {
	case DifficultyEasy:
		return 2
	case DifficultyMedium:
		return 3
	case DifficultyHard:
		return 4
	default:
		return 3
	}
}

// QuestionType tags a question as multiple-choice or true/false
type QuestionType string

const (
	QuestionMCQ QuestionType = "mcq"
	QuestionTF  QuestionType = "tf"
)

// Choice is one option of a multiple-choice question. Slice order is
// presentation order.
type Choice struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question is immutable once built by the synthesizer. Choices is only
// set for mcq questions.
type Question struct {
	ID      string       `json:"id"`
	Type    QuestionType `json:"type"`
	Prompt  string       `json:"prompt"`
	Choices []Choice     `json:"choices,omitempty"`
}

// AnswerKind discriminates the two value shapes an answer can take
type AnswerKind string

const (
	AnswerChoice AnswerKind = "choice"
	AnswerBool   AnswerKind = "bool"
)

// AnswerValue is the tagged union behind the wire field that holds either
// a choice id (mcq) or a boolean (tf). Comparison sites must branch on
// Kind instead of relying on dynamic typing.
type AnswerValue struct {
	Kind   AnswerKind
	Choice string
	Truth  bool
}

func NewChoiceAnswer(choiceID string) AnswerValue {
	return AnswerValue{Kind: AnswerChoice, Choice: choiceID}
}

func NewBoolAnswer(truth bool) AnswerValue {
	return AnswerValue{Kind: AnswerBool, Truth: truth}
}

// MarshalJSON renders the union as a bare string or bool on the wire.
func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.Kind == AnswerBool {
		return json.Marshal(v.Truth)
	}
	return json.Marshal(v.Choice)
}

// UnmarshalJSON accepts either a JSON string or a JSON bool.
func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var truth bool
	if err := json.Unmarshal(data, &truth); err == nil {
		*v = NewBoolAnswer(truth)
		return nil
	}
	var choice string
	if err := json.Unmarshal(data, &choice); err == nil {
		*v = NewChoiceAnswer(choice)
		return nil
	}
	return fmt.Errorf("answer must be a string or a boolean, got %s", string(data))
}

// AnswerKey maps a question id to its correct value. Never exposed in
// public quiz views.
type AnswerKey map[string]AnswerValue

// Quiz is the stored unit: created once by the assembler, read-only after
// that, destroyed only on process restart.
type Quiz struct {
	ID         string
	Difficulty Difficulty
	Questions  []Question
	AnswerKey  AnswerKey
}

// Validate checks the structural invariants: every question has exactly
// one answer key entry, and every mcq has 1-4 choices with unique ids,
// one of which is the keyed answer. A single choice is the degenerate
// case of a document with no usable distractor words.
func (q *Quiz) Validate() error {
	if q.ID == "" {
		return NewInvalidInputError("quiz id is required")
	}
	for _, question := range q.Questions {
		expected, ok := q.AnswerKey[question.ID]
		if !ok {
			return NewInternalError(fmt.Sprintf("question %s has no answer key entry", question.ID), nil)
		}
		if question.Type != QuestionMCQ {
			continue
		}
		if len(question.Choices) < 1 || len(question.Choices) > 4 {
			return NewInternalError(fmt.Sprintf("question %s has %d choices", question.ID, len(question.Choices)), nil)
		}
		seen := make(map[string]bool, len(question.Choices))
		found := false
		for _, c := range question.Choices {
			if seen[c.ID] {
				return NewInternalError(fmt.Sprintf("question %s has duplicate choice id %s", question.ID, c.ID), nil)
			}
			seen[c.ID] = true
			if c.ID == expected.Choice {
				found = true
			}
		}
		if !found {
			return NewInternalError(fmt.Sprintf("question %s answer key points to no choice", question.ID), nil)
		}
	}
	return nil
}
