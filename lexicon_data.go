package hatescan

// Built-in English lexicon. Weights follow the per-category scale used when
// the lists were curated: violence 1.0 down to mild positives 0.4. Safe
// weights are stored as positive magnitudes; polarity carries the sign.

func entriesOf(cat Category, pol Polarity, weight float64, terms ...string) []LexiconEntry {
	out := make([]LexiconEntry, 0, len(terms))
	for _, t := range terms {
		out = append(out, LexiconEntry{Term: t, Category: cat, Weight: weight, Polarity: pol})
	}
	return out
}

// DefaultLexiconData returns the built-in English lexicon data. Callers may
// Merge external data over it before building a Lexicon.
func DefaultLexiconData() LexiconData {
	var entries []LexiconEntry

	// Religious hate
	entries = append(entries, entriesOf(CategoryReligion, PolarityHate, 0.8,
		"muslim terrorist", "hindu terrorist", "christian fanatic", "jewish conspiracy",
		"all muslims are", "all hindus are", "all christians are", "all jews are",
		"islam is evil", "hinduism is evil", "christianity is evil",
		"religious extremist", "infidel", "kafir", "heathen",
	)...)

	// Racial hate
	entries = append(entries, entriesOf(CategoryRace, PolarityHate, 0.8,
		"black people are", "white people are", "asian people are",
		"all blacks", "all whites", "all asians",
		"inferior race", "superior race", "racial purity",
		"mongrel", "savage", "primitive people",
	)...)

	// Ethnicity / nationality
	entries = append(entries, entriesOf(CategoryEthnicity, PolarityHate, 0.75,
		"all immigrants", "all mexicans", "all indians", "all pakistanis",
		"all chinese", "all arabs", "foreigners are",
		"go back to your country", "illegal aliens",
		"border jumpers", "outsiders",
	)...)

	// Gender hate
	entries = append(entries, entriesOf(CategoryGender, PolarityHate, 0.7,
		"all women are", "all men are", "females are",
		"women belong in", "men are superior", "feminist trash",
		"masculinity is toxic", "weak women", "stupid men",
	)...)

	// LGBTQ+ hate
	entries = append(entries, entriesOf(CategoryLGBTQ, PolarityHate, 0.7,
		"gay people are", "trans people are", "homosexual agenda",
		"unnatural lifestyle", "mentally ill lgbt", "perverts",
		"abomination", "sin against nature",
	)...)

	// Violence
	entries = append(entries, entriesOf(CategoryViolence, PolarityHate, 1.0,
		"should die", "must die", "deserve death", "should be killed",
		"should be deported", "need to be eliminated", "should burn",
		"deserve to suffer", "shoot them", "hang them", "exterminate",
		"genocide", "mass killing", "cleanse", "purge", "destroy them all",
	)...)

	// Dehumanizing terms
	entries = append(entries, entriesOf(CategoryDehumanizing, PolarityHate, 0.9,
		"subhuman", "vermin", "parasites", "plague",
		"filth", "scum", "cockroaches", "not like us", "inferior",
	)...)

	// Slurs and slur-adjacent labels
	entries = append(entries, entriesOf(CategoryGeneric, PolarityHate, 0.85,
		"terrorist", "extremist", "fanatic", "radical",
		"barbarian", "primitive", "backward",
	)...)

	// Hate verbs
	entries = append(entries, entriesOf(CategoryGeneric, PolarityHate, 0.6,
		"hate", "despise", "detest", "loathe", "abhor",
		"disgust", "repulse", "revolt",
	)...)

	// Extreme negatives
	entries = append(entries, entriesOf(CategoryGeneric, PolarityHate, 0.5,
		"disgusting", "repulsive", "vile", "evil", "wicked",
		"worthless", "pathetic", "deplorable",
	)...)

	// Moderate / offensive
	entries = append(entries, entriesOf(CategoryGeneric, PolarityModerate, 0.4,
		"stupid", "idiot", "dumb", "moron", "fool", "ignorant",
		"crazy", "insane", "ridiculous", "absurd", "nonsense",
	)...)
	entries = append(entries, entriesOf(CategoryGeneric, PolarityModerate, 0.35,
		"shut up", "get lost", "go away", "leave me alone",
		"mind your business", "who cares",
	)...)
	entries = append(entries, entriesOf(CategoryGeneric, PolarityModerate, 0.3,
		"what do you expect from",
		"laugh at", "make fun of", "mock", "ridicule", "joke about",
	)...)
	entries = append(entries, entriesOf(CategoryGeneric, PolarityModerate, 0.25,
		"irrelevant", "meaningless", "pointless", "useless",
		"waste of time", "nobody cares",
	)...)

	// Safe: love and respect
	entries = append(entries, entriesOf(CategoryGeneric, PolaritySafe, 0.8,
		"love", "adore", "cherish", "appreciate", "value",
		"treasure", "admire", "respect", "honor",
	)...)

	// Safe: positive emotions
	entries = append(entries, entriesOf(CategoryGeneric, PolaritySafe, 0.6,
		"happy", "joy", "peace", "harmony", "unity",
		"compassion", "kindness", "empathy", "care",
		"understanding", "tolerance", "acceptance",
	)...)

	// Safe: support
	entries = append(entries, entriesOf(CategoryGeneric, PolaritySafe, 0.5,
		"support", "help", "assist", "encourage", "motivate",
		"inspire", "uplift", "empower", "strengthen",
	)...)

	// Safe: equality and rights
	entries = append(entries, entriesOf(CategoryGeneric, PolaritySafe, 0.7,
		"equal", "equality", "fair", "fairness", "justice",
		"rights", "freedom", "liberty", "democracy",
	)...)

	// Safe: inclusion
	entries = append(entries, entriesOf(CategoryGeneric, PolaritySafe, 0.6,
		"include", "welcome", "embrace", "accept", "integrate",
		"diverse", "diversity", "multicultural", "together",
		"everyone", "everybody",
	)...)

	// Safe: mild positive adjectives
	entries = append(entries, entriesOf(CategoryGeneric, PolaritySafe, 0.4,
		"good", "great", "excellent", "wonderful", "amazing",
		"beautiful", "lovely", "nice", "pleasant", "fantastic",
		"brilliant", "awesome", "magnificent", "superb",
	)...)

	return LexiconData{
		Entries:  entries,
		Patterns: defaultPatternRules(),
		Negations: []string{
			"not", "no", "never", "neither", "nor",
			"cannot", "can't", "won't", "don't", "doesn't", "didn't",
			"isn't", "aren't", "wasn't", "weren't",
			"hasn't", "haven't", "hadn't",
			"wouldn't", "shouldn't", "couldn't",
			"without", "nobody", "nothing", "nowhere", "none",
		},
		Intensifiers: []string{
			"very", "extremely", "absolutely", "completely", "totally",
			"really", "so", "too", "quite", "highly",
		},
	}
}

// defaultPatternRules generalize the aggressive-phrasing checks that used to
// be hardcoded per group: any "all X are ..." style statement fires,
// regardless of which group X names.
func defaultPatternRules() []PatternRule {
	return []PatternRule{
		{
			Pattern:  `(hate|hates|hated|despise|detest|loathe) (all|every|everything|those|these)\b`,
			Category: CategoryGeneric,
			Weight:   1.2,
			Polarity: PolarityHate,
		},
		{
			Pattern:  `all \w+ (are|is)\b`,
			Category: CategoryGeneric,
			Weight:   0.8,
			Polarity: PolarityHate,
		},
		{
			Pattern:  `go back to (your|their|his|her) country`,
			Category: CategoryEthnicity,
			Weight:   0.75,
			Polarity: PolarityHate,
		},
		{
			Pattern:  `should (all )?be (deported|banned|eliminated|exterminated|removed|silenced)`,
			Category: CategoryViolence,
			Weight:   1.0,
			Polarity: PolarityHate,
		},
	}
}
