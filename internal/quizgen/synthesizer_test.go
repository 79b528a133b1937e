package quizgen

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduquest/internal/domain"
)

var testPool = []string{
	"fotosíntesis", "cloroplasto", "molécula", "energía", "glucosa",
	"oxígeno", "carbono", "proceso", "planta", "célula",
}

func TestMakeMCQShape(t *testing.T) {
	sentence := "La fotosíntesis transforma energía luminosa en glucosa."

	for _, diff := range []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard} {
		t.Run(string(diff), func(t *testing.T) {
			rnd := rand.New(rand.NewSource(7))
			prompt, choices, answerID := makeMCQ(sentence, testPool, rnd, diff)

			assert.True(t, strings.HasPrefix(prompt, "Complete la palabra que falta en la oración: "))
			assert.Contains(t, prompt, blankMarker)

			// A large pool always pads distractors to the cap.
			require.Len(t, choices, 4)

			var answerText string
			for i, c := range choices {
				assert.Equal(t, []string{"opt1", "opt2", "opt3", "opt4"}[i], c.ID)
				if c.ID == answerID {
					answerText = c.Text
				}
			}
			require.NotEmpty(t, answerID)
			require.NotEmpty(t, answerText)

			// The keyed answer is the word that was blanked out, so it
			// must come from the sentence itself, not the pool.
			assert.Contains(t, sentence, answerText)
			assert.NotContains(t, prompt, answerText)
		})
	}
}

func TestMakeMCQDeterministicPerSeed(t *testing.T) {
	sentence := "El cloroplasto contiene clorofila y produce glucosa."

	p1, c1, a1 := makeMCQ(sentence, testPool, rand.New(rand.NewSource(42)), domain.DifficultyMedium)
	p2, c2, a2 := makeMCQ(sentence, testPool, rand.New(rand.NewSource(42)), domain.DifficultyMedium)

	assert.Equal(t, p1, p2)
	assert.Equal(t, c1, c2)
	assert.Equal(t, a1, a2)
}

func TestMakeMCQPlaceholderFallback(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	prompt, choices, answerID := makeMCQ("Sí.", nil, rnd, domain.DifficultyMedium)

	require.Len(t, choices, 1)
	assert.Equal(t, "opt1", answerID)
	assert.Equal(t, placeholderWord, choices[0].Text)
	// Nothing to blank out when the target never occurs in the sentence.
	assert.Equal(t, mcqPromptPrefix+"Sí.", prompt)
}

func TestBlankTargetAccentedBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		target   string
		expected string
	}{
		{"accented final vowel", "La historia terminó aquí.", "terminó", "La historia _____ aquí."},
		{"accented first vowel", "El árbol creció mucho.", "árbol", "El _____ creció mucho."},
		{"accented interior", "Una época dorada.", "época", "Una _____ dorada."},
		{"sentence start case-insensitive", "Época de cambios.", "época", "_____ de cambios."},
		{"sentence end", "La guerra terminó", "terminó", "La guerra _____"},
		{"substring is not a whole word", "Las épocas cambian.", "época", "Las épocas cambian."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, blankTarget(tt.sentence, tt.target))
		})
	}
}

func TestMakeMCQBlanksAccentedTargets(t *testing.T) {
	// Every keyword of this sentence starts or ends with an accented
	// vowel, so whichever target is drawn must still get blanked.
	sentence := "La guerra terminó cuando el imperio colapsó."
	for seed := int64(0); seed < 8; seed++ {
		prompt, _, _ := makeMCQ(sentence, testPool, rand.New(rand.NewSource(seed)), domain.DifficultyMedium)
		assert.Contains(t, prompt, blankMarker, "seed %d", seed)
	}
}

func TestMakeMCQBlanksFirstOccurrenceOnly(t *testing.T) {
	sentence := "Glucosa, glucosa y más glucosa."
	pool := []string{"glucosa", "energía", "oxígeno", "proceso"}
	rnd := rand.New(rand.NewSource(3))

	prompt, _, _ := makeMCQ(sentence, pool, rnd, domain.DifficultyMedium)
	assert.Equal(t, 1, strings.Count(prompt, blankMarker))
}

// tfWithTruth keeps rolling seeds until the coin lands on the wanted
// side; both sides appear well within the seed range.
func tfWithTruth(t *testing.T, sentence string, wantTrue bool) string {
	t.Helper()
	for seed := int64(0); seed < 256; seed++ {
		prompt, isTrue := makeTF(sentence, rand.New(rand.NewSource(seed)))
		if isTrue == wantTrue {
			return prompt
		}
	}
	t.Fatalf("no seed in range produced truth=%v", wantTrue)
	return ""
}

func TestMakeTFTrueKeepsSentence(t *testing.T) {
	sentence := "La guerra terminó en 1945."
	prompt := tfWithTruth(t, sentence, true)
	assert.Equal(t, tfPromptPrefix+sentence, prompt)
}

func TestMakeTFFalseIncrementsFirstNumber(t *testing.T) {
	prompt := tfWithTruth(t, "La guerra terminó en 1945 y dejó 60 millones de muertos.", false)
	assert.Contains(t, prompt, "1946")
	// Only the first digit run mutates.
	assert.Contains(t, prompt, "60 millones")
}

func TestMakeTFFalseNegatesCopula(t *testing.T) {
	prompt := tfWithTruth(t, "El sol es una estrella.", false)
	assert.Equal(t, tfPromptPrefix+"El sol no es una estrella.", prompt)
}

func TestMakeTFFalseNegatesOnlyFirstCopula(t *testing.T) {
	prompt := tfWithTruth(t, "El agua es vital y los ríos son su cauce.", false)
	assert.Equal(t, tfPromptPrefix+"El agua no es vital y los ríos son su cauce.", prompt)
}

func TestMakeTFFalseCopulaNextToAccentedWords(t *testing.T) {
	// "es" inside "esófago" is not a word; the standalone "era" is.
	prompt := tfWithTruth(t, "El esófago era un órgano.", false)
	assert.Equal(t, tfPromptPrefix+"El esófago no es un órgano.", prompt)
}

func TestMakeTFFalseEmbeddedCopulaNotMatched(t *testing.T) {
	// "es" occurs only inside words here, so nothing mutates.
	sentence := "Los esófagos resisten mucha presión."
	prompt := tfWithTruth(t, sentence, false)
	assert.Equal(t, tfPromptPrefix+sentence, prompt)
}

func TestMakeTFFalseIncrementsHugeNumber(t *testing.T) {
	// 20 digits, past the int64 range.
	prompt := tfWithTruth(t, "El registro 99999999999999999999 sigue abierto.", false)
	assert.Contains(t, prompt, "100000000000000000000")
	assert.NotContains(t, prompt, "99999999999999999999")
}

func TestMakeTFFalseWithoutMutationPoint(t *testing.T) {
	// No digits and no copula: the statement stays textually true even
	// though it is keyed false.
	sentence := "Los gatos duermen durante el día."
	prompt := tfWithTruth(t, sentence, false)
	assert.Equal(t, tfPromptPrefix+sentence, prompt)
}

func TestMakeTFNumberWinsOverCopula(t *testing.T) {
	prompt := tfWithTruth(t, "El año 2000 es bisiesto.", false)
	assert.Contains(t, prompt, "2001")
	assert.Contains(t, prompt, "es bisiesto")
}
