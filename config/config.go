package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/luca-patrignani/solitaire/domain/solitaire"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Scoring  Scoring `yaml:"scoring" json:"scoring"`
	Shuffle  Shuffle `yaml:"shuffle" json:"shuffle"`
	LogLevel string  `yaml:"log_level" json:"log_level"`
}

type Scoring struct {
	Initial         int `yaml:"initial" json:"initial"`
	DrawUndoCost    int `yaml:"draw_undo_cost" json:"draw_undo_cost"`
	RecycleBonus    int `yaml:"recycle_bonus" json:"recycle_bonus"`
	RecycleUndoCost int `yaml:"recycle_undo_cost" json:"recycle_undo_cost"`
	RevealBonus     int `yaml:"reveal_bonus" json:"reveal_bonus"`
	RevealUndoCost  int `yaml:"reveal_undo_cost" json:"reveal_undo_cost"`
}

// Shuffle selects the randomness of the deal. Without a seed every game is
// shuffled from a cryptographic stream.
type Shuffle struct {
	Seed *uint64 `yaml:"seed" json:"seed,omitempty"`
}

func Default() Config {
	s := solitaire.DefaultScoring()
	return Config{
		Scoring: Scoring{
			Initial:         s.Initial,
			DrawUndoCost:    s.DrawUndoCost,
			RecycleBonus:    s.RecycleBonus,
			RecycleUndoCost: s.RecycleUndoCost,
			RevealBonus:     s.RevealBonus,
			RevealUndoCost:  s.RevealUndoCost,
		},
		LogLevel: "info",
	}
}

func (c *Config) ApplyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
}

// Parse reads a YAML document on top of the defaults: keys missing from b keep
// their default value.
func Parse(b []byte) (*Config, error) {
	r := Default()
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	r.ApplyDefaults()
	if _, err := r.Level(); err != nil {
		return nil, err
	}
	return &r, nil
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Level maps LogLevel onto slog.
func (c *Config) Level() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}

// Rules converts the scoring section for the engine.
func (c *Config) Rules() solitaire.Scoring {
	return solitaire.Scoring{
		Initial:         c.Scoring.Initial,
		DrawUndoCost:    c.Scoring.DrawUndoCost,
		RecycleBonus:    c.Scoring.RecycleBonus,
		RecycleUndoCost: c.Scoring.RecycleUndoCost,
		RevealBonus:     c.Scoring.RevealBonus,
		RevealUndoCost:  c.Scoring.RevealUndoCost,
	}
}
