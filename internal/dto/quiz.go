package dto

import "eduquest/internal/domain"

// GenerateQuizRequest holds the form parameters of POST /docs/generate-quiz
type GenerateQuizRequest struct {
	Difficulty string
	NumMCQ     int
	NumTF      int
	Seed       *int64
}

// QuizPublicResponse is the public view of a quiz: no answer key
// @Description Quiz data without correct answers
type QuizPublicResponse struct {
	QuizID     string            `json:"quiz_id"`
	Difficulty string            `json:"difficulty"`
	Questions  []domain.Question `json:"questions"`
}

// AnswerItem is one submitted answer: a choice id for mcq, a boolean
// for tf
type AnswerItem struct {
	QuestionID string             `json:"question_id"`
	Answer     domain.AnswerValue `json:"answer"`
}

// SubmitAnswersRequest is the body of POST /quiz/answer
type SubmitAnswersRequest struct {
	QuizID  string       `json:"quiz_id"`
	Answers []AnswerItem `json:"answers"`
}

// FeedbackItem carries per-question grading feedback
type FeedbackItem struct {
	QuestionID  string             `json:"question_id"`
	Correct     bool               `json:"correct"`
	Expected    domain.AnswerValue `json:"expected"`
	Explanation string             `json:"explanation"`
}

// SubmitAnswersResponse is the grading result for one submission
type SubmitAnswersResponse struct {
	QuizID   string         `json:"quiz_id"`
	Total    int            `json:"total"`
	Correct  int            `json:"correct"`
	Score    float64        `json:"score"`
	Feedback []FeedbackItem `json:"feedback"`
}

// ErrorResponse is the error body for every failing request
// @Description Error detail
type ErrorResponse struct {
	Detail string `json:"detail"`
}
