package domain

import "math"

// Canned per-question feedback messages.
const (
	explanationMCQCorrect = "Respuesta correcta."
	explanationMCQWrong   = "La opción correcta es la marcada en la solución."
	explanationTFCorrect  = "Afirmación correctamente evaluada."
	explanationTFWrong    = "Revisa el enunciado."
)

// QuestionFeedback is the per-question evaluation outcome
type QuestionFeedback struct {
	QuestionID  string
	Correct     bool
	Expected    AnswerValue
	Explanation string
}

// Evaluation aggregates the outcome of grading one submission
type Evaluation struct {
	Total    int
	Correct  int
	Score    float64
	Feedback []QuestionFeedback
}

// EvaluateAnswers grades submitted answers against the stored answer key,
// in stored question order. A missing submission is never auto-correct
// for mcq; for tf it coerces to false before the boolean comparison. A
// submitted string coerces to true when non-empty.
func EvaluateAnswers(questions []Question, key AnswerKey, submitted map[string]AnswerValue) Evaluation {
	feedback := make([]QuestionFeedback, 0, len(questions))
	correct := 0

	for _, q := range questions {
		expected := key[q.ID]
		user, answered := submitted[q.ID]

		var ok bool
		var explanation string
		if q.Type == QuestionMCQ {
			ok = answered && user.Kind == AnswerChoice && user.Choice == expected.Choice
			if ok {
				explanation = explanationMCQCorrect
			} else {
				explanation = explanationMCQWrong
			}
		} else {
			ok = coerceBool(user, answered) == expected.Truth
			if ok {
				explanation = explanationTFCorrect
			} else {
				explanation = explanationTFWrong
			}
		}

		if ok {
			correct++
		}
		feedback = append(feedback, QuestionFeedback{
			QuestionID:  q.ID,
			Correct:     ok,
			Expected:    expected,
			Explanation: explanation,
		})
	}

	total := len(questions)
	denominator := total
	if denominator < 1 {
		denominator = 1
	}
	score := math.Round(100.0*float64(correct)/float64(denominator)*100) / 100

	return Evaluation{
		Total:    total,
		Correct:  correct,
		Score:    score,
		Feedback: feedback,
	}
}

func coerceBool(v AnswerValue, answered bool) bool {
	if !answered {
		return false
	}
	if v.Kind == AnswerBool {
		return v.Truth
	}
	return v.Choice != ""
}
