package hatescan

import (
	"reflect"
	"testing"
)

func TestClassifyScoreBuckets(t *testing.T) {
	th := DefaultAnalysisConfig().Thresholds

	tests := []struct {
		final float64
		want  Classification
	}{
		{5.0, HateSpeech},
		{3.0, HateSpeech},
		{2.99, ModerateHate},
		{1.5, ModerateHate},
		{1.49, Borderline},
		{0.5, Borderline},
		{0.49, NotHate},
		{0, NotHate},
		{-2, NotHate},
	}
	for _, tt := range tests {
		if got := classifyScore(tt.final, th); got != tt.want {
			t.Errorf("classifyScore(%v) = %s, want %s", tt.final, got, tt.want)
		}
	}
}

func TestEscalate(t *testing.T) {
	tests := []struct {
		in, want Classification
	}{
		{NotHate, Borderline},
		{Borderline, ModerateHate},
		{ModerateHate, HateSpeech},
		{HateSpeech, HateSpeech},
	}
	for _, tt := range tests {
		if got := escalate(tt.in); got != tt.want {
			t.Errorf("escalate(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestClassificationLevelOrdering(t *testing.T) {
	order := []Classification{NotHate, Borderline, ModerateHate, HateSpeech}
	for i, c := range order {
		if c.Level() != i {
			t.Errorf("%s.Level() = %d, want %d", c, c.Level(), i)
		}
	}
}

func TestAggregateScoresAndDetails(t *testing.T) {
	cfg := DefaultAnalysisConfig()
	scored := []ScoredToken{
		{
			Entry:        &LexiconEntry{Term: "infidel", Category: CategoryReligion, Weight: 0.8, Polarity: PolarityHate},
			MatchedText:  "infidel",
			Contribution: 0.8,
		},
		{},
		{
			Entry:        &LexiconEntry{Term: "stupid", Category: CategoryGeneric, Weight: 0.4, Polarity: PolarityModerate},
			MatchedText:  "stupid",
			Contribution: 0.2,
		},
		{
			Entry:        &LexiconEntry{Term: "love", Category: CategoryGeneric, Weight: 0.8, Polarity: PolaritySafe},
			MatchedText:  "love",
			Contribution: -0.8,
		},
	}

	res := aggregate(scored, ToneShift{ShiftType: ShiftNone, PivotIndex: -1}, cfg)

	if !almostEqual(res.Scores.Hate, 0.8) || !almostEqual(res.Scores.Moderate, 0.4) || !almostEqual(res.Scores.Safe, 0.8) {
		t.Errorf("scores = %+v, want hate 0.8 moderate 0.4 safe 0.8", res.Scores)
	}
	// 0.8 + 0.5*0.4 - 0.2*0.8
	if !almostEqual(res.Scores.Final, 0.84) {
		t.Errorf("final = %v, want 0.84", res.Scores.Final)
	}
	if res.Classification != Borderline {
		t.Errorf("classification = %s, want BORDERLINE", res.Classification)
	}

	if got := res.Details.HateWords; got.Count != 1 || got.Words[0] != "infidel" {
		t.Errorf("hate words = %+v", got)
	}
	if got := res.Details.ModerateWords; got.Count != 1 || got.Words[0] != "stupid" {
		t.Errorf("moderate words = %+v", got)
	}
	if got := res.Details.SafeWords; got.Count != 1 || got.Words[0] != "love" {
		t.Errorf("safe words = %+v", got)
	}
	if want := []Category{CategoryReligion}; !reflect.DeepEqual(res.TargetedCategories, want) {
		t.Errorf("targeted categories = %v, want %v", res.TargetedCategories, want)
	}
	if len(res.WordAnalysis) != 3 {
		t.Errorf("word analysis has %d entries, want 3", len(res.WordAnalysis))
	}
	if res.WordAnalysis[0].TokenIndex != 0 || res.WordAnalysis[1].TokenIndex != 2 {
		t.Errorf("word analysis token indices = %+v", res.WordAnalysis)
	}
}

func TestAggregateNegatedHatewardCountsAsSafe(t *testing.T) {
	cfg := DefaultAnalysisConfig()
	scored := []ScoredToken{
		{
			Entry:        &LexiconEntry{Term: "hate", Category: CategoryGeneric, Weight: 0.6, Polarity: PolarityHate},
			MatchedText:  "hate",
			Contribution: -0.6,
			Negated:      true,
		},
	}

	res := aggregate(scored, ToneShift{ShiftType: ShiftNone, PivotIndex: -1}, cfg)

	if !almostEqual(res.Scores.Hate, 0) || !almostEqual(res.Scores.Safe, 0.6) {
		t.Errorf("scores = %+v, want the negated term on the safe side", res.Scores)
	}
	if res.Details.HateWords.Count != 0 || res.Details.SafeWords.Count != 1 {
		t.Errorf("details = %+v", res.Details)
	}
	if !res.WordAnalysis[0].Negated {
		t.Error("word analysis lost the negation flag")
	}
}

func TestAggregateIntensifiedWeight(t *testing.T) {
	cfg := DefaultAnalysisConfig()
	scored := []ScoredToken{
		{
			Entry:        &LexiconEntry{Term: "disgusting", Category: CategoryGeneric, Weight: 0.5, Polarity: PolarityHate},
			MatchedText:  "disgusting",
			Contribution: 0.75,
			Intensified:  true,
		},
	}

	res := aggregate(scored, ToneShift{ShiftType: ShiftNone, PivotIndex: -1}, cfg)
	if !almostEqual(res.Scores.Hate, 0.75) {
		t.Errorf("hate score = %v, want intensified 0.75", res.Scores.Hate)
	}
}

func TestAggregateEscalatesOnShift(t *testing.T) {
	cfg := DefaultAnalysisConfig()
	scored := []ScoredToken{
		{
			Entry:        &LexiconEntry{Term: "stupid", Category: CategoryGeneric, Weight: 0.4, Polarity: PolarityModerate},
			MatchedText:  "stupid",
			Contribution: 0.2,
		},
	}
	shift := ToneShift{
		Detected:           true,
		ShiftType:          ShiftPositiveToHate,
		PivotIndex:         0,
		FirstHalfPolarity:  DominanceSafe,
		SecondHalfPolarity: DominanceHate,
	}

	res := aggregate(scored, shift, cfg)

	// final 0.2 alone is NOT_HATE; the shift raises it one level.
	if res.Classification != Borderline {
		t.Errorf("classification = %s, want BORDERLINE after escalation", res.Classification)
	}
	if res.ToneShift != shift {
		t.Errorf("tone shift not carried through: %+v", res.ToneShift)
	}
}

func TestConfidenceClamped(t *testing.T) {
	th := DefaultAnalysisConfig().Thresholds

	tests := []struct {
		name         string
		final        float64
		raw          Classification
		matches      int
		contentWords int
		escalated    bool
	}{
		{"huge final", 50, HateSpeech, 10, 10, false},
		{"deeply negative", -50, NotHate, 0, 3, false},
		{"no content words", 0, NotHate, 0, 0, false},
		{"escalated borderline", 0.6, Borderline, 1, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := confidence(tt.final, tt.raw, th, tt.matches, tt.contentWords, tt.escalated)
			if got < 0.05 || got > 0.99 {
				t.Errorf("confidence = %v, want within [0.05, 0.99]", got)
			}
		})
	}
}

func TestConfidenceMonotonicInFinal(t *testing.T) {
	th := DefaultAnalysisConfig().Thresholds

	low := confidence(1.5, ModerateHate, th, 2, 4, false)
	high := confidence(2.5, ModerateHate, th, 2, 4, false)
	if high <= low {
		t.Errorf("confidence(2.5) = %v not above confidence(1.5) = %v", high, low)
	}
}

func TestToWordSetSortedDeduped(t *testing.T) {
	got := toWordSet(map[string]bool{"vile": true, "awful": true})
	want := WordSet{Count: 2, Words: []string{"awful", "vile"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("toWordSet = %+v, want %+v", got, want)
	}
}

func TestNewEmptyResultCollectionsNotNil(t *testing.T) {
	res := newEmptyResult()
	if res.WordAnalysis == nil || res.TargetedCategories == nil {
		t.Error("nil collections in empty result")
	}
	if res.Details.HateWords.Words == nil || res.Details.SafeWords.Words == nil || res.Details.ModerateWords.Words == nil {
		t.Error("nil word sets in empty result")
	}
	if res.Classification != NotHate || res.ToneShift.ShiftType != ShiftNone || res.ToneShift.PivotIndex != -1 {
		t.Errorf("unexpected empty result: %+v", res)
	}
}
