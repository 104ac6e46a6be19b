package casefolding

import "testing"

func TestNewLowercaseNormalizer(t *testing.T) {
	normalizer := NewLowercaseNormalizer()
	if normalizer == nil {
		t.Fatal("NewLowercaseNormalizer() returned nil")
	}
	if _, ok := normalizer.(*LowercaseNormalizer); !ok {
		t.Errorf("NewLowercaseNormalizer() did not return a *LowercaseNormalizer, got %T", normalizer)
	}
}

func TestLowercaseNormalizer_Normalize(t *testing.T) {
	normalizer := NewLowercaseNormalizer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already lowercase", in: "play", want: "play"},
		{name: "all uppercase", in: "PLAY", want: "play"},
		{name: "mixed case", in: "Pause", want: "pause"},
		{name: "dashed word keeps its dash", in: "Fast-Forward", want: "fast-forward"},
		{name: "empty string", in: "", want: ""},
		{name: "single letter", in: "Q", want: "q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizer.Normalize(tt.in); got != tt.want {
				t.Errorf("LowercaseNormalizer.Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Normalizing an already normalized string must change nothing, for
// any input made of letters and dashes.
func TestLowercaseNormalizer_NormalizeIsIdempotent(t *testing.T) {
	normalizer := NewLowercaseNormalizer()

	inputs := []string{"play", "PLAY", "Pause", "Fast-Forward", "REWIND", "q", "-", "", "StOp-AnD-Go"}
	for _, in := range inputs {
		once := normalizer.Normalize(in)
		twice := normalizer.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
