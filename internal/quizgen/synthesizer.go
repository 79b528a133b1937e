// Package quizgen is the rule-based quiz generator: it turns normalized
// text into fill-in-the-blank multiple-choice questions and mutated
// true/false statements. Generation is pure and deterministic given its
// random source, which callers pass in explicitly.
package quizgen

import (
	"fmt"
	"math/big"
	"math/rand"
	"regexp"
	"strings"
	"unicode/utf8"

	"eduquest/internal/domain"
	"eduquest/internal/textproc"
)

const (
	blankMarker     = "_____"
	placeholderWord = "concepto"
	mcqPromptPrefix = "Complete la palabra que falta en la oración: "
	tfPromptPrefix  = "Verdadero o Falso: "
	copulaNegation  = "no es"
	maxDistractors  = 3
)

// Word boundaries are spelled out as non-letter runes because RE2's \b
// only knows ASCII word characters and would misfire on accented
// Spanish letters.
var (
	digitRun      = regexp.MustCompile(`\d+`)
	copulaPattern = regexp.MustCompile(`(?i)(^|[^\p{L}])(es|son|era|fue)($|[^\p{L}])`)
)

// makeMCQ builds a fill-in-the-blank question from one sentence. The
// target word comes from the sentence's own keywords, falling back to the
// global pool and finally to a placeholder. Returns the prompt, the
// shuffled choices and the correct choice id.
func makeMCQ(sentence string, pool []string, rnd *rand.Rand, difficulty domain.Difficulty) (string, []domain.Choice, string) {
	words := textproc.Keywords(sentence)
	if len(words) == 0 {
		words = pool
	}
	if len(words) == 0 {
		words = []string{placeholderWord}
	}
	target := words[rnd.Intn(len(words))]

	prompt := mcqPromptPrefix + blankTarget(sentence, target)

	targetLen := utf8.RuneCountInString(target)
	var shortlist []string
	for _, w := range pool {
		if strings.EqualFold(w, target) {
			continue
		}
		if diff := utf8.RuneCountInString(w) - targetLen; diff >= -2 && diff <= 2 {
			shortlist = append(shortlist, w)
		}
	}
	rnd.Shuffle(len(shortlist), func(i, j int) {
		shortlist[i], shortlist[j] = shortlist[j], shortlist[i]
	})

	take := difficulty.DistractorCandidates()
	if take > len(shortlist) {
		take = len(shortlist)
	}
	distractors := append([]string(nil), shortlist[:take]...)

	// Pad from the back of the general pool until three distractors are
	// reached or the pool runs out.
	var basePool []string
	for _, w := range pool {
		if !strings.EqualFold(w, target) {
			basePool = append(basePool, w)
		}
	}
	for len(distractors) < maxDistractors && len(basePool) > 0 {
		distractors = append(distractors, basePool[len(basePool)-1])
		basePool = basePool[:len(basePool)-1]
	}
	if len(distractors) > maxDistractors {
		distractors = distractors[:maxDistractors]
	}

	options := append([]string{target}, distractors...)
	rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	choices := make([]domain.Choice, len(options))
	answerID := ""
	for i, opt := range options {
		choices[i] = domain.Choice{ID: fmt.Sprintf("opt%d", i+1), Text: opt}
		if answerID == "" && opt == target {
			answerID = choices[i].ID
		}
	}
	return prompt, choices, answerID
}

// makeTF flips a fair coin for the truth value. False statements mutate
// the sentence: the first number is incremented by one, or failing that
// the first copula is negated. A sentence with neither stays unchanged
// even when labeled false.
func makeTF(sentence string, rnd *rand.Rand) (string, bool) {
	isTrue := rnd.Float64() < 0.5
	s := sentence
	if !isTrue {
		if loc := digitRun.FindStringIndex(s); loc != nil {
			// big.Int keeps the increment exact for digit runs beyond
			// the int64 range.
			n := new(big.Int)
			n.SetString(s[loc[0]:loc[1]], 10)
			n.Add(n, big.NewInt(1))
			s = s[:loc[0]] + n.String() + s[loc[1]:]
		} else {
			s = replaceFirstWord(copulaPattern, s, copulaNegation)
		}
	}
	return tfPromptPrefix + s, isTrue
}

// blankTarget replaces the first case-insensitive whole-word occurrence
// of target with the blank marker.
func blankTarget(sentence, target string) string {
	re, err := regexp.Compile(`(?i)(^|[^\p{L}])(` + regexp.QuoteMeta(target) + `)($|[^\p{L}])`)
	if err != nil {
		return sentence
	}
	return replaceFirstWord(re, sentence, blankMarker)
}

// replaceFirstWord replaces the second capture group of the first match,
// leaving the surrounding boundary runes in place.
func replaceFirstWord(re *regexp.Regexp, s, repl string) string {
	m := re.FindStringSubmatchIndex(s)
	if m == nil {
		return s
	}
	return s[:m[4]] + repl + s[m[5]:]
}
