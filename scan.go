package hatescan

import "strings"

// scanTokens classifies every token against the lexicon. At each word
// position the longest phrase is tried first, then pattern rules, then the
// single term; a match consumes all of its tokens so overlapping matches can
// never double-count. The function is pure: it never mutates its inputs or
// the lexicon.
func scanTokens(tokens []Token, lex *Lexicon, cfg AnalysisConfig) []ScoredToken {
	scored := make([]ScoredToken, len(tokens))
	for i, tok := range tokens {
		scored[i] = ScoredToken{Token: tok}
	}

	// View of word tokens only; punctuation runs carry no contribution.
	wordIdx := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		if tok.IsWord() {
			wordIdx = append(wordIdx, i)
		}
	}
	words := make([]string, len(wordIdx))
	for i, ti := range wordIdx {
		words[i] = tokens[ti].Normalized
	}

	maxWindow := lex.maxPhraseLen
	if patternWindow > maxWindow {
		maxWindow = patternWindow
	}

	for wi := 0; wi < len(wordIdx); wi++ {
		ti := wordIdx[wi]

		// Phrases and patterns stay within one sentence.
		end := wi
		for end < len(wordIdx) && end-wi < maxWindow &&
			tokens[wordIdx[end]].Sentence == tokens[ti].Sentence {
			end++
		}
		window := words[wi:end]

		var (
			entry       LexiconEntry
			matchedText string
			consumed    int
		)
		if e, n, ok := lex.MatchPhrase(window); ok {
			entry, matchedText, consumed = e, e.Term, n
		} else if rule, m, n, ok := lex.matchPattern(window); ok {
			entry = LexiconEntry{Term: m, Category: rule.Category, Weight: rule.Weight, Polarity: rule.Polarity}
			matchedText, consumed = m, n
		} else if e, ok := lex.Lookup(words[wi]); ok {
			entry, matchedText, consumed = e, e.Term, 1
		} else {
			continue
		}

		intensified := hasAdjacentIntensifier(tokens, wordIdx, wi, lex)
		weight := entry.Weight
		if intensified {
			weight *= cfg.IntensifierFactor
		}

		negated := false
		if entry.Polarity != PolaritySafe {
			negated = hasPrecedingNegation(tokens, wordIdx, wi, lex, cfg.NegationWindow)
		}

		var contribution float64
		switch entry.Polarity {
		case PolarityModerate:
			contribution = cfg.ModerateWeight * weight
		case PolaritySafe:
			contribution = -weight
		default:
			contribution = weight
		}
		if negated {
			contribution = -contribution
		}

		head := &scored[ti]
		e := entry
		head.Entry = &e
		head.MatchedText = matchedText
		head.Contribution = contribution
		head.Negated = negated
		head.Intensified = intensified

		wi += consumed - 1
	}

	return scored
}

// hasPrecedingNegation looks back up to window word tokens for a negation
// marker. The search never crosses a sentence or clause boundary.
func hasPrecedingNegation(tokens []Token, wordIdx []int, wi int, lex *Lexicon, window int) bool {
	ti := wordIdx[wi]
	for back := 1; back <= window && wi-back >= 0; back++ {
		tj := wordIdx[wi-back]
		if tokens[tj].Sentence != tokens[ti].Sentence {
			return false
		}
		if clauseBoundaryBetween(tokens, tj, ti) {
			return false
		}
		if lex.IsNegation(tokens[tj].Normalized) {
			return true
		}
	}
	return false
}

// hasAdjacentIntensifier checks the word token immediately before the match.
func hasAdjacentIntensifier(tokens []Token, wordIdx []int, wi int, lex *Lexicon) bool {
	if wi == 0 {
		return false
	}
	tj := wordIdx[wi-1]
	ti := wordIdx[wi]
	if tokens[tj].Sentence != tokens[ti].Sentence || clauseBoundaryBetween(tokens, tj, ti) {
		return false
	}
	return lex.IsIntensifier(tokens[tj].Normalized)
}

// clauseBoundaryBetween reports whether clause punctuation separates the two
// token positions.
func clauseBoundaryBetween(tokens []Token, from, to int) bool {
	for k := from + 1; k < to; k++ {
		if tokens[k].IsWord() {
			continue
		}
		if strings.ContainsAny(tokens[k].Text, ",;:.!?") {
			return true
		}
	}
	return false
}
