package assembly

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}

func TestValidateRejectsNegativeFields(t *testing.T) {
	cases := []Config{
		{MaxMergeDist: -1, ClosedCurveMaxDist: 1, SimplificationMinDist: 1, MinNumPoints: 3},
		{MaxMergeDist: 1, ClosedCurveMaxDist: -1, SimplificationMinDist: 1, MinNumPoints: 3},
		{MaxMergeDist: 1, ClosedCurveMaxDist: 1, SimplificationMinDist: -1, MinNumPoints: 3},
	}
	for i, cfg := range cases {
		if err := cfg.Validate(); err == nil {
			t.Fatalf("case %d: expected a negative field to be rejected", i)
		}
	}
}
