// Package config holds the file-backed settings of the generation pipeline.
// The threshold values are empirically tuned against play-tested sessions;
// treat them as calibration knobs, not constants.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/quizforge/quizforge/internal/quiz"
)

// Pipeline tunes the iterate-until-accepted loop.
type Pipeline struct {
	// AcceptanceScore is the minimum overall review score (0-10) a batch
	// needs before fact-checking.
	AcceptanceScore float64 `yaml:"acceptance_score"`

	// TargetedRegenCeiling is the maximum fraction of defective items for
	// which targeted regeneration is attempted. Above it the loop always
	// regenerates the full batch.
	TargetedRegenCeiling float64 `yaml:"targeted_regen_ceiling"`

	// SimilarityThreshold is the cosine similarity at or above which two
	// items count as semantic duplicates.
	SimilarityThreshold float64 `yaml:"similarity_threshold"`

	// FactCheckConfidence is the minimum 0-100 verification confidence an
	// item needs to pass.
	FactCheckConfidence float64 `yaml:"factcheck_confidence"`

	// MinViableFraction is the smallest fraction of the target count a
	// batch may shrink to during duplicate filtering before the loop
	// regenerates instead of accepting.
	MinViableFraction float64 `yaml:"min_viable_fraction"`

	// CrossPhaseDedup widens the corpus duplicate check to every phase.
	CrossPhaseDedup bool `yaml:"cross_phase_dedup"`

	// PhaseTimeout is the wall-clock budget for one phase's loop.
	PhaseTimeout time.Duration `yaml:"phase_timeout"`

	// Iterations caps loop attempts per phase. Phases absent from the map
	// use DefaultIterations.
	Iterations        map[quiz.Phase]int `yaml:"iterations"`
	DefaultIterations int                `yaml:"default_iterations"`
}

// IterationBudget returns the attempt cap for a phase.
func (p Pipeline) IterationBudget(phase quiz.Phase) int {
	if n, ok := p.Iterations[phase]; ok && n > 0 {
		return n
	}
	return p.DefaultIterations
}

// Counts holds the default item count per phase, used when the caller does
// not pin one.
type Counts map[quiz.Phase]int

// Config is the full pipeline configuration.
type Config struct {
	Pipeline Pipeline `yaml:"pipeline"`
	Counts   Counts   `yaml:"counts"`
	Language string   `yaml:"language"`
}

// Default returns the shipped configuration.
func Default() Config {
	return Config{
		Pipeline: Pipeline{
			AcceptanceScore:      7.0,
			TargetedRegenCeiling: 0.60,
			SimilarityThreshold:  0.85,
			FactCheckConfidence:  85,
			MinViableFraction:    0.5,
			CrossPhaseDedup:      false,
			PhaseTimeout:         4 * time.Minute,
			DefaultIterations:    3,
			Iterations: map[quiz.Phase]int{
				quiz.PhaseMCQ:        5,
				quiz.PhaseCategorize: 5,
				quiz.PhaseBuzzer:     4,
			},
		},
		Counts: Counts{
			quiz.PhaseMCQ:        10,
			quiz.PhaseCategorize: 12,
			quiz.PhaseMenus:      4,
			quiz.PhaseBuzzer:     10,
			quiz.PhaseSequence:   8,
		},
		Language: "en",
	}
}

// Load reads a YAML config file over the defaults. A missing file is not an
// error; the defaults stand.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg), nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return applyEnv(cfg), nil
}

// DefaultPath returns the config file location, honoring QUIZFORGE_CONFIG.
func DefaultPath() string {
	if p := os.Getenv("QUIZFORGE_CONFIG"); p != "" {
		return p
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return dir + "/quizforge/config.yaml"
	}
	return "quizforge.yaml"
}

// applyEnv layers environment overrides on top of file values.
func applyEnv(cfg Config) Config {
	if v := os.Getenv("QUIZFORGE_LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if v, ok := envFloat("QUIZFORGE_ACCEPTANCE_SCORE"); ok {
		cfg.Pipeline.AcceptanceScore = v
	}
	if v, ok := envFloat("QUIZFORGE_SIMILARITY_THRESHOLD"); ok {
		cfg.Pipeline.SimilarityThreshold = v
	}
	if v, ok := envFloat("QUIZFORGE_FACTCHECK_CONFIDENCE"); ok {
		cfg.Pipeline.FactCheckConfidence = v
	}
	if v := os.Getenv("QUIZFORGE_CROSS_PHASE_DEDUP"); v != "" {
		cfg.Pipeline.CrossPhaseDedup = v == "1" || v == "true"
	}
	if v := os.Getenv("QUIZFORGE_PHASE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Pipeline.PhaseTimeout = d
		}
	}
	return cfg
}

func envFloat(key string) (float64, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Validate rejects configurations the loop cannot run with.
func (c Config) Validate() error {
	p := c.Pipeline
	if p.AcceptanceScore < 0 || p.AcceptanceScore > 10 {
		return fmt.Errorf("acceptance_score %.1f out of range 0-10", p.AcceptanceScore)
	}
	if p.TargetedRegenCeiling <= 0 || p.TargetedRegenCeiling > 1 {
		return fmt.Errorf("targeted_regen_ceiling %.2f out of range (0,1]", p.TargetedRegenCeiling)
	}
	if p.SimilarityThreshold <= 0 || p.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity_threshold %.2f out of range (0,1]", p.SimilarityThreshold)
	}
	if p.FactCheckConfidence < 0 || p.FactCheckConfidence > 100 {
		return fmt.Errorf("factcheck_confidence %.0f out of range 0-100", p.FactCheckConfidence)
	}
	if p.MinViableFraction <= 0 || p.MinViableFraction > 1 {
		return fmt.Errorf("min_viable_fraction %.2f out of range (0,1]", p.MinViableFraction)
	}
	if p.DefaultIterations < 1 {
		return fmt.Errorf("default_iterations must be at least 1")
	}
	return nil
}
