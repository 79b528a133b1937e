package quizgen

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduquest/internal/domain"
)

func int64Ptr(v int64) *int64 { return &v }

func TestGenerateTwoSentenceDocument(t *testing.T) {
	text := "El gato come pescado. El perro corre rápido."
	seed := int64(42)

	questions, key, err := Generate(text, domain.DifficultyMedium, 1, 1, NewSource(&seed))
	require.NoError(t, err)
	require.Len(t, questions, 2)
	require.Len(t, key, 2)

	mcq, tf := questions[0], questions[1]
	assert.Equal(t, domain.QuestionMCQ, mcq.Type)
	assert.Equal(t, domain.QuestionTF, tf.Type)

	assert.True(t, strings.HasPrefix(mcq.ID, "mcq-"))
	assert.Len(t, mcq.ID, len("mcq-")+8)
	assert.True(t, strings.HasPrefix(tf.ID, "tf-"))
	assert.Len(t, tf.ID, len("tf-")+8)

	assert.Contains(t, mcq.Prompt, "_____")
	require.NotEmpty(t, mcq.Choices)
	assert.Empty(t, tf.Choices)
	assert.True(t, strings.HasPrefix(tf.Prompt, "Verdadero o Falso: "))

	mcqAnswer, ok := key[mcq.ID]
	require.True(t, ok)
	assert.Equal(t, domain.AnswerChoice, mcqAnswer.Kind)
	found := false
	for _, c := range mcq.Choices {
		if c.ID == mcqAnswer.Choice {
			found = true
		}
	}
	assert.True(t, found, "answer key must point to an existing choice")

	tfAnswer, ok := key[tf.ID]
	require.True(t, ok)
	assert.Equal(t, domain.AnswerBool, tfAnswer.Kind)
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	text := "El gato come pescado. El perro corre rápido. La casa tiene ventanas grandes."

	run := func() ([]domain.Question, []domain.AnswerValue) {
		questions, key, err := Generate(text, domain.DifficultyMedium, 2, 2, NewSource(int64Ptr(42)))
		require.NoError(t, err)
		answers := make([]domain.AnswerValue, len(questions))
		for i, q := range questions {
			answers[i] = key[q.ID]
		}
		return questions, answers
	}

	q1, a1 := run()
	q2, a2 := run()

	require.Len(t, q1, len(q2))
	for i := range q1 {
		// Ids are freshly random per run; everything else repeats.
		assert.Equal(t, q1[i].Type, q2[i].Type)
		assert.Equal(t, q1[i].Prompt, q2[i].Prompt)
		assert.Equal(t, q1[i].Choices, q2[i].Choices)
		assert.Equal(t, a1[i], a2[i])
	}
}

func TestGenerateFewerSentencesThanRequested(t *testing.T) {
	questions, key, err := Generate("El sol es una estrella.", domain.DifficultyEasy, 5, 5, NewSource(int64Ptr(1)))
	require.NoError(t, err)
	assert.Len(t, questions, 2)
	assert.Len(t, key, 2)
}

func TestGenerateZeroRequested(t *testing.T) {
	questions, key, err := Generate("Una oración cualquiera.", domain.DifficultyMedium, 0, 0, NewSource(int64Ptr(1)))
	require.NoError(t, err)
	assert.Empty(t, questions)
	assert.Empty(t, key)
}

func TestGenerateNoSentences(t *testing.T) {
	_, _, err := Generate("", domain.DifficultyMedium, 1, 1, NewSource(int64Ptr(1)))
	require.Error(t, err)

	var de *domain.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.CodeInvalidInput, de.Code)
	assert.Equal(t, "No se detectaron oraciones en el documento.", de.Message)
}

func TestGenerateSingleWordVocabulary(t *testing.T) {
	// Every token case-folds to the same word, so no distractor exists
	// anywhere in the document. The degenerate one-choice question is
	// still a valid quiz, not an internal error.
	text := "Fotosíntesis fotosíntesis. Fotosíntesis fotosíntesis."
	questions, key, err := Generate(text, domain.DifficultyMedium, 1, 0, NewSource(int64Ptr(1)))
	require.NoError(t, err)
	require.Len(t, questions, 1)
	require.Len(t, questions[0].Choices, 1)
	assert.Equal(t, questions[0].Choices[0].ID, key[questions[0].ID].Choice)

	quiz := &domain.Quiz{ID: "q-degenerate", Difficulty: domain.DifficultyMedium, Questions: questions, AnswerKey: key}
	assert.NoError(t, quiz.Validate())
}

func TestGenerateValidQuiz(t *testing.T) {
	text := "La fotosíntesis produce oxígeno. Las plantas capturan carbono. El agua sube por el tallo."
	questions, key, err := Generate(text, domain.DifficultyHard, 3, 3, NewSource(int64Ptr(99)))
	require.NoError(t, err)

	quiz := &domain.Quiz{ID: "q-test", Difficulty: domain.DifficultyHard, Questions: questions, AnswerKey: key}
	assert.NoError(t, quiz.Validate())
}

func TestNewSourceNilSeed(t *testing.T) {
	require.NotNil(t, NewSource(nil))
}
