package hatescan

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Thresholds are the lower bounds of each severity bucket on the final score.
// They must be strictly decreasing: HateSpeech > ModerateHate > Borderline.
type Thresholds struct {
	HateSpeech   float64 `toml:"hate_speech" json:"hate_speech"`
	ModerateHate float64 `toml:"moderate_hate" json:"moderate_hate"`
	Borderline   float64 `toml:"borderline" json:"borderline"`
}

// AnalysisConfig configures one analyzer. The zero value is not usable; start
// from DefaultAnalysisConfig and override fields as needed.
type AnalysisConfig struct {
	// MaxLength caps input size in runes. Longer input is rejected with a
	// ValidationError, never truncated.
	MaxLength int `toml:"max_length" json:"max_length"`

	// NegationWindow is how many word tokens before a hateward match are
	// searched for a negation marker. Negation inverts the contribution sign.
	NegationWindow int `toml:"negation_window" json:"negation_window"`

	// IntensifierFactor multiplies a match's weight when an intensifier
	// immediately precedes it. This is a tunable, not a fixed rule.
	IntensifierFactor float64 `toml:"intensifier_factor" json:"intensifier_factor"`

	// SafeDampening is the fraction by which the safe score offsets the hate
	// score in the final composite. Safe words only partially cancel hate
	// words; 0.2 means five safe points cancel one hate point.
	SafeDampening float64 `toml:"safe_dampening" json:"safe_dampening"`

	// ModerateWeight scales moderate/offensive matches into the final score.
	ModerateWeight float64 `toml:"moderate_weight" json:"moderate_weight"`

	// Thresholds are the classification bucket bounds.
	Thresholds Thresholds `toml:"thresholds" json:"thresholds"`

	// ShiftThreshold is the minimum absolute half-sum for a half to count as
	// dominant. Zero means any nonzero dominance counts.
	ShiftThreshold float64 `toml:"shift_threshold" json:"shift_threshold"`
}

// DefaultAnalysisConfig returns the standard configuration.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		MaxLength:         1000,
		NegationWindow:    2,
		IntensifierFactor: 1.5,
		SafeDampening:     0.2,
		ModerateWeight:    0.5,
		Thresholds: Thresholds{
			HateSpeech:   3.0,
			ModerateHate: 1.5,
			Borderline:   0.5,
		},
		ShiftThreshold: 0,
	}
}

// Validate reports the first problem with the configuration.
func (c AnalysisConfig) Validate() error {
	if c.MaxLength <= 0 {
		return fmt.Errorf("hatescan: config: max_length must be positive, got %d", c.MaxLength)
	}
	if c.NegationWindow < 0 {
		return fmt.Errorf("hatescan: config: negation_window must be non-negative, got %d", c.NegationWindow)
	}
	if c.IntensifierFactor <= 0 {
		return fmt.Errorf("hatescan: config: intensifier_factor must be positive, got %v", c.IntensifierFactor)
	}
	if c.SafeDampening < 0 {
		return fmt.Errorf("hatescan: config: safe_dampening must be non-negative, got %v", c.SafeDampening)
	}
	if c.ModerateWeight < 0 {
		return fmt.Errorf("hatescan: config: moderate_weight must be non-negative, got %v", c.ModerateWeight)
	}
	if c.ShiftThreshold < 0 {
		return fmt.Errorf("hatescan: config: shift_threshold must be non-negative, got %v", c.ShiftThreshold)
	}
	t := c.Thresholds
	if !(t.HateSpeech > t.ModerateHate && t.ModerateHate > t.Borderline) {
		return fmt.Errorf("hatescan: config: thresholds must be strictly decreasing, got %v > %v > %v",
			t.HateSpeech, t.ModerateHate, t.Borderline)
	}
	return nil
}

// LoadAnalysisConfig reads a TOML configuration file. Keys absent from the
// file keep their default values.
func LoadAnalysisConfig(path string) (AnalysisConfig, error) {
	cfg := DefaultAnalysisConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return AnalysisConfig{}, fmt.Errorf("hatescan: config: reading %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return AnalysisConfig{}, err
	}
	return cfg, nil
}
