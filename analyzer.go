// Package hatescan performs word-level hate-speech analysis of free-form
// text.
//
// The analyzer scans token by token, accumulating weighted hate and safe
// signal from a categorized lexicon, tracks the emotion trajectory across
// the text, detects tone shifts (a text that starts positive and turns
// hateful, or the reverse) and combines everything into a 4-level
// classification with an explainable breakdown of which terms fired.
//
// Every analysis call is a pure, synchronous computation over its own input.
// The only shared state is the Lexicon, which is immutable after
// construction, so one Analyzer may serve any number of goroutines
// concurrently without locking.
package hatescan

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"
)

// Analyzer is the word-level emotion and tone-shift analyzer.
type Analyzer struct {
	lexicon   *Lexicon
	config    AnalysisConfig
	tokenizer *tokenizer
}

// NewAnalyzer builds an analyzer over an already-loaded lexicon. The lexicon
// and configuration are validated once here; Analyze itself can then only
// fail on input validation.
func NewAnalyzer(lexicon *Lexicon, config AnalysisConfig) (*Analyzer, error) {
	if lexicon == nil || lexicon.Size() == 0 {
		return nil, &LexiconLoadError{Reason: "empty lexicon"}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	tok, err := newTokenizer()
	if err != nil {
		return nil, err
	}
	return &Analyzer{lexicon: lexicon, config: config, tokenizer: tok}, nil
}

// Config returns the analyzer's configuration.
func (a *Analyzer) Config() AnalysisConfig {
	return a.config
}

// Analyze runs the full pipeline over text: tokenize, scan against the
// lexicon, build the emotion trajectory, detect tone shifts and classify.
//
// Input longer than the configured maximum (in runes) is rejected with a
// *ValidationError, never truncated. Empty or whitespace-only input yields
// NOT_HATE with confidence 1.0 and empty match sets. The call performs no
// I/O and is deterministic: identical input and configuration produce an
// identical result.
func (a *Analyzer) Analyze(text string) (*AnalysisResult, error) {
	if utf8.RuneCountInString(text) > a.config.MaxLength {
		return nil, &ValidationError{
			Field:  "text",
			Reason: fmt.Sprintf("exceeds maximum length of %d characters", a.config.MaxLength),
		}
	}
	if strings.TrimSpace(text) == "" {
		res := newEmptyResult()
		res.Confidence = 1.0
		return res, nil
	}

	tokens := a.tokenizer.Tokenize(text)
	scored := scanTokens(tokens, a.lexicon, a.config)
	trajectory := BuildTrajectory(scored)
	shift := DetectToneShift(trajectory, a.config)
	return aggregate(scored, shift, a.config), nil
}

// Trajectory exposes the emotion trajectory for a text without running the
// full classification, for callers that want to render the running score.
func (a *Analyzer) Trajectory(text string) (Trajectory, error) {
	if utf8.RuneCountInString(text) > a.config.MaxLength {
		return Trajectory{}, &ValidationError{
			Field:  "text",
			Reason: fmt.Sprintf("exceeds maximum length of %d characters", a.config.MaxLength),
		}
	}
	tokens := a.tokenizer.Tokenize(text)
	return BuildTrajectory(scanTokens(tokens, a.lexicon, a.config)), nil
}

var (
	defaultAnalyzerOnce sync.Once
	defaultAnalyzer     *Analyzer
	defaultAnalyzerErr  error
)

// Analyze runs the shared default analyzer: built-in English lexicon,
// default configuration.
func Analyze(text string) (*AnalysisResult, error) {
	defaultAnalyzerOnce.Do(func() {
		defaultAnalyzer, defaultAnalyzerErr = NewAnalyzer(DefaultLexicon(), DefaultAnalysisConfig())
	})
	if defaultAnalyzerErr != nil {
		return nil, defaultAnalyzerErr
	}
	return defaultAnalyzer.Analyze(text)
}
