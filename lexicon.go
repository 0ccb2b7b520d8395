package hatescan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// A PatternRule matches a phrasing shape ("all X are ...") rather than a fixed
// term. Expressions are matched against the space-joined normalized token
// stream, anchored at the current token. New rules are data, not code changes.
type PatternRule struct {
	Pattern  string   `json:"pattern" yaml:"pattern" toml:"pattern"`
	Category Category `json:"category" yaml:"category" toml:"category"`
	Weight   float64  `json:"weight" yaml:"weight" toml:"weight"`
	Polarity Polarity `json:"polarity" yaml:"polarity" toml:"polarity"`
}

// LexiconData is the serializable form of a lexicon, used both for the
// built-in data and for external JSON/YAML lexicon files.
type LexiconData struct {
	Entries      []LexiconEntry `json:"entries" yaml:"entries"`
	Patterns     []PatternRule  `json:"patterns" yaml:"patterns"`
	Negations    []string       `json:"negations" yaml:"negations"`
	Intensifiers []string       `json:"intensifiers" yaml:"intensifiers"`
}

// Merge returns a copy of d with other appended. Later entries override
// earlier ones for the same term.
func (d LexiconData) Merge(other LexiconData) LexiconData {
	var out LexiconData
	out.Entries = append(append([]LexiconEntry{}, d.Entries...), other.Entries...)
	out.Patterns = append(append([]PatternRule{}, d.Patterns...), other.Patterns...)
	out.Negations = append(append([]string{}, d.Negations...), other.Negations...)
	out.Intensifiers = append(append([]string{}, d.Intensifiers...), other.Intensifiers...)
	return out
}

// LoadLexiconData reads an external lexicon file. The format is chosen by
// extension: .json, or .yaml/.yml.
func LoadLexiconData(path string) (LexiconData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return LexiconData{}, &LexiconLoadError{Reason: fmt.Sprintf("reading %s", path), Err: err}
	}

	var data LexiconData
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(raw, &data)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &data)
	default:
		return LexiconData{}, &LexiconLoadError{Reason: fmt.Sprintf("unsupported lexicon format %q", ext)}
	}
	if err != nil {
		return LexiconData{}, &LexiconLoadError{Reason: fmt.Sprintf("parsing %s", path), Err: err}
	}
	return data, nil
}

type phraseEntry struct {
	words []string
	entry LexiconEntry
}

type compiledPattern struct {
	re   *regexp.Regexp
	rule PatternRule
}

// A Lexicon holds categorized word and phrase lists, negation markers and
// intensifiers. It is immutable once built and safe for concurrent reads
// without locking.
type Lexicon struct {
	singles      map[string]LexiconEntry
	phrases      map[string][]phraseEntry // keyed by first word, longest first
	patterns     []compiledPattern
	negations    map[string]bool
	intensifiers map[string]bool
	maxPhraseLen int // in words
	size         int
}

// patternWindow bounds how many word tokens a pattern rule may span.
const patternWindow = 8

// NewLexicon builds an immutable lexicon from data, failing fast on empty
// input, non-positive weights, unknown categories or invalid patterns.
func NewLexicon(data LexiconData) (*Lexicon, error) {
	lex := &Lexicon{
		singles:      make(map[string]LexiconEntry),
		phrases:      make(map[string][]phraseEntry),
		negations:    make(map[string]bool),
		intensifiers: make(map[string]bool),
	}

	for i, e := range data.Entries {
		term := normalizeTerm(e.Term)
		if term == "" {
			return nil, &LexiconLoadError{Reason: fmt.Sprintf("entry %d: empty term", i)}
		}
		if e.Weight <= 0 {
			return nil, &LexiconLoadError{Reason: fmt.Sprintf("entry %q: non-positive weight %v", e.Term, e.Weight)}
		}
		if !validCategory(e.Category) {
			return nil, &LexiconLoadError{Reason: fmt.Sprintf("entry %q: unknown category %q", e.Term, e.Category)}
		}
		if !validPolarity(e.Polarity) {
			return nil, &LexiconLoadError{Reason: fmt.Sprintf("entry %q: unknown polarity %q", e.Term, e.Polarity)}
		}

		norm := e
		norm.Term = term
		words := strings.Fields(term)
		if len(words) == 1 {
			lex.singles[term] = norm
		} else {
			head := words[0]
			kept := lex.phrases[head][:0]
			for _, p := range lex.phrases[head] {
				if p.entry.Term != term {
					kept = append(kept, p)
				}
			}
			lex.phrases[head] = append(kept, phraseEntry{words: words, entry: norm})
			if len(words) > lex.maxPhraseLen {
				lex.maxPhraseLen = len(words)
			}
		}
	}

	for i, r := range data.Patterns {
		if strings.TrimSpace(r.Pattern) == "" {
			return nil, &LexiconLoadError{Reason: fmt.Sprintf("pattern %d: empty expression", i)}
		}
		if r.Weight <= 0 {
			return nil, &LexiconLoadError{Reason: fmt.Sprintf("pattern %q: non-positive weight %v", r.Pattern, r.Weight)}
		}
		if !validCategory(r.Category) {
			return nil, &LexiconLoadError{Reason: fmt.Sprintf("pattern %q: unknown category %q", r.Pattern, r.Category)}
		}
		if !validPolarity(r.Polarity) {
			return nil, &LexiconLoadError{Reason: fmt.Sprintf("pattern %q: unknown polarity %q", r.Pattern, r.Polarity)}
		}
		re, err := regexp.Compile(`\A(?:` + r.Pattern + `)`)
		if err != nil {
			return nil, &LexiconLoadError{Reason: fmt.Sprintf("pattern %q", r.Pattern), Err: err}
		}
		lex.patterns = append(lex.patterns, compiledPattern{re: re, rule: r})
	}

	for _, w := range data.Negations {
		if n := normalizeTerm(w); n != "" {
			lex.negations[n] = true
		}
	}
	for _, w := range data.Intensifiers {
		if n := normalizeTerm(w); n != "" {
			lex.intensifiers[n] = true
		}
	}

	// Longest-match-first within each head word.
	for head := range lex.phrases {
		ps := lex.phrases[head]
		sort.SliceStable(ps, func(i, j int) bool {
			return len(ps[i].words) > len(ps[j].words)
		})
	}

	lex.size = len(lex.singles) + len(lex.patterns)
	for _, ps := range lex.phrases {
		lex.size += len(ps)
	}
	if lex.size == 0 {
		return nil, &LexiconLoadError{Reason: "empty lexicon"}
	}
	return lex, nil
}

var (
	defaultLexiconOnce sync.Once
	defaultLexicon     *Lexicon
)

// DefaultLexicon returns the built-in English lexicon. It is constructed once
// and shared; the data is known-good, so a build failure is a programming
// error and panics.
func DefaultLexicon() *Lexicon {
	defaultLexiconOnce.Do(func() {
		lex, err := NewLexicon(DefaultLexiconData())
		if err != nil {
			panic(err)
		}
		defaultLexicon = lex
	})
	return defaultLexicon
}

// Lookup returns the entry for a single normalized token.
func (l *Lexicon) Lookup(normalized string) (LexiconEntry, bool) {
	e, ok := l.singles[strings.ToLower(normalized)]
	return e, ok
}

// MatchPhrase finds the longest multi-word phrase starting at window[0].
// It returns the entry and the number of words consumed.
func (l *Lexicon) MatchPhrase(window []string) (LexiconEntry, int, bool) {
	if len(window) == 0 {
		return LexiconEntry{}, 0, false
	}
	for _, p := range l.phrases[window[0]] {
		if len(p.words) > len(window) {
			continue
		}
		matched := true
		for i, w := range p.words {
			if window[i] != w {
				matched = false
				break
			}
		}
		if matched {
			return p.entry, len(p.words), true
		}
	}
	return LexiconEntry{}, 0, false
}

// matchPattern tries each pattern rule anchored at window[0]. It returns the
// rule, the matched text and the number of words consumed.
func (l *Lexicon) matchPattern(window []string) (PatternRule, string, int, bool) {
	if len(window) == 0 || len(l.patterns) == 0 {
		return PatternRule{}, "", 0, false
	}
	if len(window) > patternWindow {
		window = window[:patternWindow]
	}
	joined := strings.Join(window, " ")
	for _, p := range l.patterns {
		m := p.re.FindString(joined)
		if m == "" {
			continue
		}
		// The match must end on a word boundary of the joined stream.
		if len(m) < len(joined) && joined[len(m)] != ' ' {
			continue
		}
		return p.rule, m, strings.Count(m, " ") + 1, true
	}
	return PatternRule{}, "", 0, false
}

// IsNegation checks if a normalized word is a negation marker.
func (l *Lexicon) IsNegation(word string) bool {
	return l.negations[strings.ToLower(word)]
}

// IsIntensifier checks if a normalized word is an intensifier.
func (l *Lexicon) IsIntensifier(word string) bool {
	return l.intensifiers[strings.ToLower(word)]
}

// Size returns the number of terms, phrases and patterns held.
func (l *Lexicon) Size() int {
	return l.size
}

// normalizeTerm lowercases a term and strips punctuation from each word,
// collapsing internal whitespace. Multi-word phrases stay multi-word.
func normalizeTerm(term string) string {
	words := strings.Fields(strings.ToLower(term))
	out := words[:0]
	for _, w := range words {
		if n := normalizeWord(w); n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, " ")
}
