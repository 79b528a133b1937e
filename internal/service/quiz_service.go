package service

import (
	"context"
	"unicode/utf8"

	"github.com/google/uuid"

	"eduquest/internal/config"
	"eduquest/internal/domain"
	"eduquest/internal/dto"
	"eduquest/internal/logger"
	"eduquest/internal/quizgen"

	"go.uber.org/zap"
)

// QuizService defines quiz generation, retrieval and grading operations
type QuizService interface {
	// GenerateFromUpload extracts a document, builds a quiz from it,
	// stores it, and returns the public view (no answer key).
	GenerateFromUpload(ctx context.Context, upload dto.FileUpload, req dto.GenerateQuizRequest) (*dto.QuizPublicResponse, error)

	// GetQuizPublic returns the public view of a stored quiz.
	GetQuizPublic(quizID string) (*dto.QuizPublicResponse, error)

	// SubmitAnswers grades a submission against the stored answer key.
	SubmitAnswers(req *dto.SubmitAnswersRequest) (*dto.SubmitAnswersResponse, error)
}

type quizService struct {
	documents DocumentService
	store     domain.QuizStore
	cfg       *config.Config
}

// NewQuizService creates a new QuizService backed by the given store.
func NewQuizService(documents DocumentService, quizStore domain.QuizStore, cfg *config.Config) QuizService {
	return &quizService{
		documents: documents,
		store:     quizStore,
		cfg:       cfg,
	}
}

func (s *quizService) GenerateFromUpload(ctx context.Context, upload dto.FileUpload, req dto.GenerateQuizRequest) (*dto.QuizPublicResponse, error) {
	difficulty, err := domain.ParseDifficulty(req.Difficulty)
	if err != nil {
		return nil, err
	}

	text, err := s.documents.CleanText(ctx, upload)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(text) < s.cfg.Upload.MinTextChars {
		return nil, domain.NewInvalidInputError("El texto extraído es demasiado corto para generar preguntas.")
	}

	rnd := quizgen.NewSource(req.Seed)
	questions, answerKey, err := quizgen.Generate(text, difficulty, req.NumMCQ, req.NumTF, rnd)
	if err != nil {
		return nil, err
	}

	quiz := &domain.Quiz{
		ID:         uuid.NewString(),
		Difficulty: difficulty,
		Questions:  questions,
		AnswerKey:  answerKey,
	}
	// The quiz goes into the store before the response leaves, so
	// /quiz/answer works on it immediately.
	if err := s.store.Save(quiz); err != nil {
		return nil, err
	}

	logger.Get().Info("Quiz generated",
		zap.String("quiz_id", quiz.ID),
		zap.String("difficulty", string(difficulty)),
		zap.Int("questions", len(questions)),
	)

	return publicView(quiz), nil
}

func (s *quizService) GetQuizPublic(quizID string) (*dto.QuizPublicResponse, error) {
	quiz, err := s.store.Get(quizID)
	if err != nil {
		return nil, err
	}
	return publicView(quiz), nil
}

func (s *quizService) SubmitAnswers(req *dto.SubmitAnswersRequest) (*dto.SubmitAnswersResponse, error) {
	quiz, err := s.store.Get(req.QuizID)
	if err != nil {
		return nil, err
	}

	submitted := make(map[string]domain.AnswerValue, len(req.Answers))
	for _, a := range req.Answers {
		submitted[a.QuestionID] = a.Answer
	}

	eval := domain.EvaluateAnswers(quiz.Questions, quiz.AnswerKey, submitted)

	feedback := make([]dto.FeedbackItem, len(eval.Feedback))
	for i, f := range eval.Feedback {
		feedback[i] = dto.FeedbackItem{
			QuestionID:  f.QuestionID,
			Correct:     f.Correct,
			Expected:    f.Expected,
			Explanation: f.Explanation,
		}
	}

	return &dto.SubmitAnswersResponse{
		QuizID:   req.QuizID,
		Total:    eval.Total,
		Correct:  eval.Correct,
		Score:    eval.Score,
		Feedback: feedback,
	}, nil
}

// publicView strips the answer key.
func publicView(quiz *domain.Quiz) *dto.QuizPublicResponse {
	return &dto.QuizPublicResponse{
		QuizID:     quiz.ID,
		Difficulty: string(quiz.Difficulty),
		Questions:  quiz.Questions,
	}
}
