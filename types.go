package hatescan

// A Token represents an individual span of the input text, either a word or a
// run of punctuation. Offsets index into the original string.
type Token struct {
	Text       string // The token's actual content, casing preserved.
	Start      int    // Start position in original text
	End        int    // End position in original text
	Normalized string // Lowercased, punctuation-stripped form; empty for punctuation runs.
	Sentence   int    // Index of the sentence this token belongs to.
}

// IsWord reports whether the token carries lexical content.
func (t Token) IsWord() bool {
	return t.Normalized != ""
}

// Category identifies which lexicon category a term belongs to.
type Category string

const (
	CategoryReligion     Category = "religion"
	CategoryRace         Category = "race"
	CategoryEthnicity    Category = "ethnicity"
	CategoryGender       Category = "gender"
	CategoryLGBTQ        Category = "lgbtq"
	CategoryViolence     Category = "violence"
	CategoryDehumanizing Category = "dehumanizing"
	CategoryGeneric      Category = "generic"
)

// identityCategories are the categories that name a targeted group.
var identityCategories = map[Category]bool{
	CategoryReligion:  true,
	CategoryRace:      true,
	CategoryEthnicity: true,
	CategoryGender:    true,
	CategoryLGBTQ:     true,
}

func validCategory(c Category) bool {
	switch c {
	case CategoryReligion, CategoryRace, CategoryEthnicity, CategoryGender,
		CategoryLGBTQ, CategoryViolence, CategoryDehumanizing, CategoryGeneric:
		return true
	}
	return false
}

// Polarity indicates which score a matched term contributes to.
type Polarity string

const (
	PolarityHate     Polarity = "HATE"
	PolarityModerate Polarity = "MODERATE"
	PolaritySafe     Polarity = "SAFE"
)

func validPolarity(p Polarity) bool {
	switch p {
	case PolarityHate, PolarityModerate, PolaritySafe:
		return true
	}
	return false
}

// A LexiconEntry maps a term or multi-word phrase to its category and weight.
// Weights are strictly positive; polarity decides the contribution sign.
type LexiconEntry struct {
	Term     string   `json:"term" yaml:"term" toml:"term"`
	Category Category `json:"category" yaml:"category" toml:"category"`
	Weight   float64  `json:"weight" yaml:"weight" toml:"weight"`
	Polarity Polarity `json:"polarity" yaml:"polarity" toml:"polarity"`
}

// A ScoredToken is a Token annotated with its lexicon match, if any.
// Tokens belonging to the tail of a multi-word match carry a nil Entry and a
// zero contribution; the head token holds the full contribution.
type ScoredToken struct {
	Token
	Entry        *LexiconEntry // nil when the token matched nothing
	MatchedText  string        // term or phrase text as matched
	Contribution float64       // signed: hateward positive, safe negative
	Negated      bool
	Intensified  bool
}

// ShiftType classifies a detected change of dominant sentiment.
type ShiftType string

const (
	ShiftNone           ShiftType = "NONE"
	ShiftPositiveToHate ShiftType = "POSITIVE_TO_HATE"
	ShiftHateToPositive ShiftType = "HATE_TO_POSITIVE"
)

// Dominance is the prevailing polarity of a span of tokens.
type Dominance string

const (
	DominanceHate    Dominance = "HATE"
	DominanceSafe    Dominance = "SAFE"
	DominanceNeutral Dominance = "NEUTRAL"
)

// ToneShift describes whether and where the dominant sentiment flipped
// between the first and second half of the text.
type ToneShift struct {
	Detected           bool      `json:"detected"`
	ShiftType          ShiftType `json:"shift_type"`
	PivotIndex         int       `json:"pivot_index"` // token index where polarity flips; -1 when no shift
	FirstHalfPolarity  Dominance `json:"first_half_polarity"`
	SecondHalfPolarity Dominance `json:"second_half_polarity"`
}

// Classification is the 4-level severity verdict.
type Classification string

const (
	HateSpeech   Classification = "HATE_SPEECH"
	ModerateHate Classification = "MODERATE_HATE"
	Borderline   Classification = "BORDERLINE"
	NotHate      Classification = "NOT_HATE"
)

// Level returns the severity rank of the classification, 0 (NOT_HATE)
// through 3 (HATE_SPEECH).
func (c Classification) Level() int {
	switch c {
	case HateSpeech:
		return 3
	case ModerateHate:
		return 2
	case Borderline:
		return 1
	}
	return 0
}

// Scores holds the composite score breakdown. Hate, Moderate and Safe are
// non-negative magnitudes; Final combines them per the configured dampening.
type Scores struct {
	Hate     float64 `json:"hate"`
	Moderate float64 `json:"moderate"`
	Safe     float64 `json:"safe"`
	Final    float64 `json:"final"`
}

// A WordMatch records one lexicon or pattern hit for the explainable breakdown.
type WordMatch struct {
	Term         string   `json:"term"`
	TokenIndex   int      `json:"token_index"`
	Category     Category `json:"category"`
	Polarity     Polarity `json:"polarity"`
	Weight       float64  `json:"weight"`
	Contribution float64  `json:"contribution"`
	Negated      bool     `json:"negated"`
	Intensified  bool     `json:"intensified"`
}

// WordSet is a counted, sorted, de-duplicated list of matched terms.
type WordSet struct {
	Count int      `json:"count"`
	Words []string `json:"words"`
}

// Details groups matched terms by the score they contributed to.
type Details struct {
	HateWords     WordSet `json:"hate_words"`
	ModerateWords WordSet `json:"moderate_words"`
	SafeWords     WordSet `json:"safe_words"`
}

// AnalysisResult is the full outcome of one analysis call. All fields are
// always present; collections are empty rather than nil so that identical
// input serializes to identical bytes.
type AnalysisResult struct {
	Classification     Classification `json:"classification"`
	Confidence         float64        `json:"confidence"`
	Scores             Scores         `json:"scores"`
	ToneShift          ToneShift      `json:"tone_shift"`
	Details            Details        `json:"details"`
	WordAnalysis       []WordMatch    `json:"word_analysis"`
	TargetedCategories []Category     `json:"targeted_categories"`
}
