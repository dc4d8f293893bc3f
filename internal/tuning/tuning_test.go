package tuning

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	content := `{
		"filter": {"mincutoffhz": 2.5, "beta": 0.02},
		"stability": {"windowsize": 60, "scalefactor": 500},
		"minvisibility": 0.7
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}

	if cfg.Filter.MinCutoffHz != 2.5 {
		t.Fatalf("MinCutoffHz: got %v, want 2.5", cfg.Filter.MinCutoffHz)
	}
	if cfg.Filter.Beta != 0.02 {
		t.Fatalf("Beta: got %v, want 0.02", cfg.Filter.Beta)
	}
	if cfg.Stability.WindowSize != 60 {
		t.Fatalf("WindowSize: got %v, want 60", cfg.Stability.WindowSize)
	}
	if cfg.Stability.ScaleFactor != 500 {
		t.Fatalf("ScaleFactor: got %v, want 500", cfg.Stability.ScaleFactor)
	}
	if cfg.MinVisibility != 0.7 {
		t.Fatalf("MinVisibility: got %v, want 0.7", cfg.MinVisibility)
	}

	// Untouched parameters keep their defaults.
	if cfg.Filter.DerivativeCutoffHz != 1.0 {
		t.Fatalf("DerivativeCutoffHz default lost: got %v", cfg.Filter.DerivativeCutoffHz)
	}
	if cfg.Tracking.CarryForwardFrames != 5 {
		t.Fatalf("CarryForwardFrames default lost: got %v", cfg.Tracking.CarryForwardFrames)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("missing file should error")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("malformed JSON should error")
	}
}
