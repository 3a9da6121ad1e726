package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quizforge/quizforge/internal/quiz"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Pipeline.AcceptanceScore != 7.0 {
		t.Errorf("acceptance_score = %v, want 7.0", cfg.Pipeline.AcceptanceScore)
	}
	if cfg.Pipeline.SimilarityThreshold != 0.85 {
		t.Errorf("similarity_threshold = %v, want 0.85", cfg.Pipeline.SimilarityThreshold)
	}
	if cfg.Pipeline.FactCheckConfidence != 85 {
		t.Errorf("factcheck_confidence = %v, want 85", cfg.Pipeline.FactCheckConfidence)
	}
	if cfg.Pipeline.TargetedRegenCeiling != 0.60 {
		t.Errorf("targeted_regen_ceiling = %v, want 0.60", cfg.Pipeline.TargetedRegenCeiling)
	}
}

func TestIterationBudget(t *testing.T) {
	cfg := Default()
	if got := cfg.Pipeline.IterationBudget(quiz.PhaseMCQ); got != 5 {
		t.Errorf("mcq budget = %d, want 5", got)
	}
	if got := cfg.Pipeline.IterationBudget(quiz.PhaseMenus); got != cfg.Pipeline.DefaultIterations {
		t.Errorf("menus budget = %d, want default %d", got, cfg.Pipeline.DefaultIterations)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Pipeline.AcceptanceScore != 7.0 {
		t.Errorf("missing file should yield defaults, got %+v", cfg.Pipeline)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "pipeline:\n  acceptance_score: 8.5\n  phase_timeout: 90s\nlanguage: fr\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Pipeline.AcceptanceScore != 8.5 {
		t.Errorf("acceptance_score = %v, want 8.5", cfg.Pipeline.AcceptanceScore)
	}
	if cfg.Pipeline.PhaseTimeout != 90*time.Second {
		t.Errorf("phase_timeout = %v, want 90s", cfg.Pipeline.PhaseTimeout)
	}
	if cfg.Language != "fr" {
		t.Errorf("language = %q, want fr", cfg.Language)
	}
	// Untouched keys keep their defaults.
	if cfg.Pipeline.SimilarityThreshold != 0.85 {
		t.Errorf("similarity_threshold = %v, want default 0.85", cfg.Pipeline.SimilarityThreshold)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("QUIZFORGE_ACCEPTANCE_SCORE", "6.5")
	t.Setenv("QUIZFORGE_LANGUAGE", "de")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Pipeline.AcceptanceScore != 6.5 {
		t.Errorf("acceptance_score = %v, want env override 6.5", cfg.Pipeline.AcceptanceScore)
	}
	if cfg.Language != "de" {
		t.Errorf("language = %q, want de", cfg.Language)
	}
}

func TestValidateRejectsBadThresholds(t *testing.T) {
	cfg := Default()
	cfg.Pipeline.SimilarityThreshold = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("similarity_threshold 1.5 should be rejected")
	}

	cfg = Default()
	cfg.Pipeline.TargetedRegenCeiling = 0
	if err := cfg.Validate(); err == nil {
		t.Error("targeted_regen_ceiling 0 should be rejected")
	}
}
