package quizgen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"eduquest/internal/domain"
	"eduquest/internal/textproc"
)

// keywordPoolFloor is the minimum document-wide keyword count below which
// generation falls back to the full token list.
const keywordPoolFloor = 10

// NewSource builds the random source for one generation run. A nil seed
// means time-based entropy; determinism is only promised with a seed.
func NewSource(seed *int64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(*seed))
}

// Generate assembles a full question set from normalized text. Sentences
// are shuffled once; a first pass consumes them for up to numMCQ
// multiple-choice questions, then an independent re-scan from the start
// produces up to numTF true/false questions. Fewer sentences than
// requested means fewer questions, never an error.
func Generate(text string, difficulty domain.Difficulty, numMCQ, numTF int, rnd *rand.Rand) ([]domain.Question, domain.AnswerKey, error) {
	sentences := textproc.SplitSentences(text)
	if len(sentences) == 0 {
		return nil, nil, domain.NewInvalidInputError("No se detectaron oraciones en el documento.")
	}

	pool := textproc.Keywords(text)
	if len(pool) < keywordPoolFloor {
		pool = textproc.UniqueTokens(text)
	}

	rnd.Shuffle(len(sentences), func(i, j int) {
		sentences[i], sentences[j] = sentences[j], sentences[i]
	})

	questions := make([]domain.Question, 0, numMCQ+numTF)
	key := domain.AnswerKey{}

	made := 0
	for _, s := range sentences {
		if made >= numMCQ {
			break
		}
		prompt, choices, correct := makeMCQ(s, pool, rnd, difficulty)
		qid := questionID(domain.QuestionMCQ)
		questions = append(questions, domain.Question{
			ID:      qid,
			Type:    domain.QuestionMCQ,
			Prompt:  prompt,
			Choices: choices,
		})
		key[qid] = domain.NewChoiceAnswer(correct)
		made++
	}

	made = 0
	for _, s := range sentences {
		if made >= numTF {
			break
		}
		prompt, truth := makeTF(s, rnd)
		qid := questionID(domain.QuestionTF)
		questions = append(questions, domain.Question{
			ID:     qid,
			Type:   domain.QuestionTF,
			Prompt: prompt,
		})
		key[qid] = domain.NewBoolAnswer(truth)
		made++
	}

	return questions, key, nil
}

// questionID builds a type-tagged id with an 8-hex random suffix, e.g.
// "mcq-3fa85f64".
func questionID(t domain.QuestionType) string {
	u := uuid.New()
	return fmt.Sprintf("%s-%x", t, u[:4])
}
