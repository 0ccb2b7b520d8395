package hatescan

import (
	"math"
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
)

// aggregate combines the scored tokens and the tone-shift signal into the
// final classification, scores and explainable breakdown.
func aggregate(scored []ScoredToken, shift ToneShift, cfg AnalysisConfig) *AnalysisResult {
	res := newEmptyResult()
	res.ToneShift = shift

	var hate, moderate, safe float64
	hateWords := make(map[string]bool)
	moderateWords := make(map[string]bool)
	safeWords := make(map[string]bool)
	targets := make(map[Category]bool)

	for i, st := range scored {
		if st.Entry == nil {
			continue
		}
		res.WordAnalysis = append(res.WordAnalysis, WordMatch{
			Term:         st.MatchedText,
			TokenIndex:   i,
			Category:     st.Entry.Category,
			Polarity:     st.Entry.Polarity,
			Weight:       st.Entry.Weight,
			Contribution: st.Contribution,
			Negated:      st.Negated,
			Intensified:  st.Intensified,
		})

		if st.Contribution < 0 {
			// Safe terms, plus hateward terms flipped by negation.
			safe += -st.Contribution
			safeWords[st.MatchedText] = true
			continue
		}

		effective := st.Entry.Weight
		if st.Intensified {
			effective *= cfg.IntensifierFactor
		}
		if st.Entry.Polarity == PolarityModerate {
			moderate += effective
			moderateWords[st.MatchedText] = true
		} else {
			hate += effective
			hateWords[st.MatchedText] = true
			if identityCategories[st.Entry.Category] {
				targets[st.Entry.Category] = true
			}
		}
	}

	final := hate + cfg.ModerateWeight*moderate - cfg.SafeDampening*safe
	res.Scores = Scores{Hate: hate, Moderate: moderate, Safe: safe, Final: final}

	cls := classifyScore(final, cfg.Thresholds)
	escalated := false
	if shift.ShiftType == ShiftPositiveToHate {
		// Mixed-emotion texts are higher risk: a shift toward hate raises
		// the verdict one level no matter what the raw score says.
		if next := escalate(cls); next != cls {
			cls, escalated = next, true
		}
	}
	res.Classification = cls
	res.Confidence = confidence(final, classifyScore(final, cfg.Thresholds), cfg.Thresholds,
		len(res.WordAnalysis), contentWordCount(scored), escalated)

	res.Details = Details{
		HateWords:     toWordSet(hateWords),
		ModerateWords: toWordSet(moderateWords),
		SafeWords:     toWordSet(safeWords),
	}
	res.TargetedCategories = sortedCategories(targets)
	return res
}

func newEmptyResult() *AnalysisResult {
	return &AnalysisResult{
		Classification: NotHate,
		ToneShift: ToneShift{
			ShiftType:          ShiftNone,
			PivotIndex:         -1,
			FirstHalfPolarity:  DominanceNeutral,
			SecondHalfPolarity: DominanceNeutral,
		},
		Details: Details{
			HateWords:     WordSet{Words: []string{}},
			ModerateWords: WordSet{Words: []string{}},
			SafeWords:     WordSet{Words: []string{}},
		},
		WordAnalysis:       []WordMatch{},
		TargetedCategories: []Category{},
	}
}

func classifyScore(final float64, t Thresholds) Classification {
	switch {
	case final >= t.HateSpeech:
		return HateSpeech
	case final >= t.ModerateHate:
		return ModerateHate
	case final >= t.Borderline:
		return Borderline
	}
	return NotHate
}

func escalate(c Classification) Classification {
	switch c {
	case NotHate:
		return Borderline
	case Borderline:
		return ModerateHate
	case ModerateHate:
		return HateSpeech
	}
	return c
}

// confidence grows with the distance of the final score past its bucket's
// lower bound, scaled by how much of the text's content vocabulary the
// lexicon actually covered. Clamped away from the 0 and 1 extremes so values
// stay comparable across requests.
func confidence(final float64, raw Classification, t Thresholds, matches, contentWords int, escalated bool) float64 {
	var conf float64
	switch raw {
	case HateSpeech:
		conf = 0.7 + (final-t.HateSpeech)*0.1
	case ModerateHate:
		conf = 0.6 + (final-t.ModerateHate)*0.2
	case Borderline:
		conf = 0.5 + (final-t.Borderline)*0.3
	default:
		conf = 0.7 + (t.Borderline-final)*0.2
	}

	coverage := 0.0
	if contentWords > 0 {
		coverage = math.Min(1, float64(matches)/float64(contentWords))
	}
	conf *= 0.85 + 0.15*math.Min(1, 2*coverage)

	if escalated {
		conf *= 0.9
	}
	return math.Min(0.99, math.Max(0.05, conf))
}

// contentWordCount counts word tokens that are not stop words. Stop-word
// detection follows the library's filtering behavior: a word it removes is a
// stop word.
func contentWordCount(scored []ScoredToken) int {
	n := 0
	for _, st := range scored {
		if !st.IsWord() {
			continue
		}
		if strings.TrimSpace(stopwords.CleanString(st.Normalized, "en", false)) == "" {
			continue
		}
		n++
	}
	return n
}

func toWordSet(words map[string]bool) WordSet {
	out := make([]string, 0, len(words))
	for w := range words {
		out = append(out, w)
	}
	sort.Strings(out)
	return WordSet{Count: len(out), Words: out}
}

func sortedCategories(set map[Category]bool) []Category {
	out := make([]Category, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
