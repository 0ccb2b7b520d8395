package hatescan

import (
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// tokenizer splits text into offset-preserving tokens and assigns each token
// a sentence index. Negation and intensifier windows never cross sentences.
type tokenizer struct {
	segmenter *sentences.DefaultSentenceTokenizer
}

func newTokenizer() (*tokenizer, error) {
	seg, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("hatescan: sentence segmenter: %w", err)
	}
	return &tokenizer{segmenter: seg}, nil
}

// Tokenize splits text into an ordered token sequence. Every character
// position belongs to exactly one token or to inter-token whitespace: word
// runs and punctuation runs both become tokens, so nothing is dropped.
func (t *tokenizer) Tokenize(text string) []Token {
	tokens := splitTokens(text)
	t.assignSentences(text, tokens)
	return tokens
}

// isWordRune treats apostrophes as word-internal so contractions like
// "don't" stay single tokens.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '’'
}

func splitTokens(text string) []Token {
	var tokens []Token
	start := -1
	word := false

	flush := func(end int) {
		if start < 0 {
			return
		}
		tok := Token{Text: text[start:end], Start: start, End: end}
		if word {
			tok.Normalized = normalizeWord(tok.Text)
		}
		tokens = append(tokens, tok)
		start = -1
	}

	for i, r := range text {
		switch {
		case unicode.IsSpace(r):
			flush(i)
		case isWordRune(r):
			if start >= 0 && !word {
				flush(i)
			}
			if start < 0 {
				start, word = i, true
			}
		default:
			if start >= 0 && word {
				flush(i)
			}
			if start < 0 {
				start, word = i, false
			}
		}
	}
	flush(len(text))
	return tokens
}

// normalizeWord lowercases and strips anything that is not a letter or digit.
func normalizeWord(w string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(w) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// assignSentences maps each token to the sentence containing its start
// offset. Segmenter output is located back in the original text by a cursor
// scan, so whitespace handling differences cannot shift the boundaries.
func (t *tokenizer) assignSentences(text string, tokens []Token) {
	if len(tokens) == 0 {
		return
	}

	var ends []int
	cursor := 0
	for _, s := range t.segmenter.Tokenize(text) {
		trimmed := strings.TrimSpace(s.Text)
		if trimmed == "" {
			continue
		}
		idx := strings.Index(text[cursor:], trimmed)
		if idx < 0 {
			continue
		}
		cursor += idx + len(trimmed)
		ends = append(ends, cursor)
	}

	si := 0
	for i := range tokens {
		for si < len(ends) && tokens[i].Start >= ends[si] {
			si++
		}
		tokens[i].Sentence = si
	}
}
