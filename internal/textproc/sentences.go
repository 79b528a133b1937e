package textproc

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// minKeywordLength is the minimum rune length for a token to count as a
// content word.
const minKeywordLength = 5

// spanishStopwords filters function words out of the keyword pool.
var spanishStopwords = map[string]struct{}{
	"el": {}, "la": {}, "los": {}, "las": {},
	"un": {}, "una": {}, "unos": {}, "unas": {},
	"de": {}, "del": {}, "al": {},
	"y": {}, "o": {}, "u": {},
	"en": {}, "con": {}, "por": {}, "para": {}, "como": {},
	"que": {}, "se": {}, "su": {}, "sus": {}, "a": {},
	"es": {}, "son": {}, "ser": {}, "fue": {}, "fueron": {},
	"más": {}, "menos": {}, "muy": {}, "ya": {},
	"no": {}, "sí": {}, "si": {}, "pero": {}, "porque": {},
	"cuando": {}, "donde": {},
	"lo": {}, "le": {}, "les": {},
	"mi": {}, "mis": {}, "tu": {}, "tus": {},
	"nuestro": {}, "nuestra": {},
	"esto": {}, "esta": {}, "este": {}, "estos": {}, "estas": {},
	"eso": {}, "esa": {}, "ese": {}, "esos": {}, "esas": {},
}

var (
	// RE2 has no lookbehind, so the boundary captures its punctuation
	// and the split happens at the capture's end index.
	sentenceBoundary = regexp.MustCompile(`([.!?¡¿])\s+`)
	tokenPattern     = regexp.MustCompile(`[A-Za-zÁÉÍÓÚÜÑáéíóúüñ]{3,}`)
)

// SplitSentences splits text on boundaries following ., !, ? or inverted
// punctuation plus whitespace, keeping non-empty trimmed fragments in
// original order.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	sentences := []string{}
	prev := 0
	for _, m := range sentenceBoundary.FindAllStringSubmatchIndex(text, -1) {
		if frag := strings.TrimSpace(text[prev:m[3]]); frag != "" {
			sentences = append(sentences, frag)
		}
		prev = m[1]
	}
	if frag := strings.TrimSpace(text[prev:]); frag != "" {
		sentences = append(sentences, frag)
	}
	return sentences
}

// Tokens returns maximal runs of Latin letters (including accented
// Spanish characters) of length >= 3, in order.
func Tokens(text string) []string {
	return tokenPattern.FindAllString(text, -1)
}

// Keywords extracts candidate content words: tokens of at least five
// runes whose lowercase form is not a stopword, deduplicated
// case-insensitively preserving first occurrence.
func Keywords(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, tok := range Tokens(text) {
		if utf8.RuneCountInString(tok) < minKeywordLength {
			continue
		}
		lower := strings.ToLower(tok)
		if _, stop := spanishStopwords[lower]; stop {
			continue
		}
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		out = append(out, tok)
	}
	return out
}

// UniqueTokens is the unfiltered fallback pool: all tokens deduplicated
// case-sensitively, preserving first occurrence.
func UniqueTokens(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, tok := range Tokens(text) {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}
