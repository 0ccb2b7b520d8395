package hatescan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultAnalysisConfigValid(t *testing.T) {
	if err := DefaultAnalysisConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestAnalysisConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AnalysisConfig)
	}{
		{"zero max length", func(c *AnalysisConfig) { c.MaxLength = 0 }},
		{"negative negation window", func(c *AnalysisConfig) { c.NegationWindow = -1 }},
		{"zero intensifier factor", func(c *AnalysisConfig) { c.IntensifierFactor = 0 }},
		{"negative safe dampening", func(c *AnalysisConfig) { c.SafeDampening = -0.1 }},
		{"negative moderate weight", func(c *AnalysisConfig) { c.ModerateWeight = -1 }},
		{"negative shift threshold", func(c *AnalysisConfig) { c.ShiftThreshold = -0.5 }},
		{"thresholds not decreasing", func(c *AnalysisConfig) { c.Thresholds.ModerateHate = 3.5 }},
		{"thresholds equal", func(c *AnalysisConfig) { c.Thresholds.Borderline = c.Thresholds.ModerateHate }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultAnalysisConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestLoadAnalysisConfigPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `max_length = 500
intensifier_factor = 2.0

[thresholds]
hate_speech = 4.0
moderate_hate = 2.0
borderline = 1.0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAnalysisConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.MaxLength != 500 || cfg.IntensifierFactor != 2.0 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Thresholds != (Thresholds{HateSpeech: 4.0, ModerateHate: 2.0, Borderline: 1.0}) {
		t.Errorf("thresholds = %+v", cfg.Thresholds)
	}
	// Keys absent from the file keep defaults.
	def := DefaultAnalysisConfig()
	if cfg.NegationWindow != def.NegationWindow || cfg.SafeDampening != def.SafeDampening {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadAnalysisConfigErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadAnalysisConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("max_length = -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAnalysisConfig(bad); err == nil {
		t.Error("expected validation error for negative max_length")
	}
}
