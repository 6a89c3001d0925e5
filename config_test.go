package regioncurves

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}

func TestValidatePropagatesSubStageError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Assembly.MinNumPoints = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an invalid assembly config to fail overall validation")
	}
}
