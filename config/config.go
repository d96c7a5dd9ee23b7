// Package config loads the settings of the valves command.
//
// Sources are layered, later ones winning:
//
//	Default()  →  YAML file (optional)  →  .env file (optional)  →  VALVES_* environment
//
// Recognized environment variables: VALVES_INPUT, VALVES_START,
// VALVES_SINGLE_BUDGET, VALVES_DUAL_BUDGET, VALVES_WORKERS, VALVES_STRATEGY,
// VALVES_DISTANCES, VALVES_LOG_LEVEL.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Dual-agent strategies.
const (
	StrategyPartition = "partition"
	StrategyJoint     = "joint"
)

// All-pairs distance methods used by compaction.
const (
	DistancesBFS           = "bfs"
	DistancesFloydWarshall = "floyd-warshall"
)

// Config holds everything the command needs.
type Config struct {
	Input        string `yaml:"input"`
	Start        string `yaml:"start"`
	SingleBudget int    `yaml:"single_budget"`
	DualBudget   int    `yaml:"dual_budget"`
	Workers      int    `yaml:"workers"`
	Strategy     string `yaml:"strategy"`
	Distances    string `yaml:"distances"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns start AA, 30 and 26 minute budgets, GOMAXPROCS workers,
// the partition strategy, BFS distances and info logging.
func Default() Config {
	return Config{
		Start:        "AA",
		SingleBudget: 30,
		DualBudget:   26,
		Workers:      runtime.GOMAXPROCS(0),
		Strategy:     StrategyPartition,
		Distances:    DistancesBFS,
		LogLevel:     "info",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when path
// is empty), envFile loaded through godotenv (skipped when empty or missing),
// and finally the process environment. The result is validated.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	if envFile != "" {
		// godotenv.Load never overrides variables already set in the process.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: loading %s: %w", envFile, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// applyEnv overlays VALVES_* variables found by lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"VALVES_INPUT":     &c.Input,
		"VALVES_START":     &c.Start,
		"VALVES_STRATEGY":  &c.Strategy,
		"VALVES_DISTANCES": &c.Distances,
		"VALVES_LOG_LEVEL": &c.LogLevel,
	}
	for key, dst := range str {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	num := map[string]*int{
		"VALVES_SINGLE_BUDGET": &c.SingleBudget,
		"VALVES_DUAL_BUDGET":   &c.DualBudget,
		"VALVES_WORKERS":       &c.Workers,
	}
	for key, dst := range num {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, v)
		}
		*dst = n
	}

	return nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	switch {
	case c.Start == "":
		return fmt.Errorf("%w: start valve is empty", ErrInvalidConfig)
	case c.SingleBudget < 0 || c.DualBudget < 0:
		return fmt.Errorf("%w: budgets must be non-negative (%d, %d)", ErrInvalidConfig, c.SingleBudget, c.DualBudget)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1 (%d)", ErrInvalidConfig, c.Workers)
	}

	switch c.Strategy {
	case StrategyPartition, StrategyJoint:
	default:
		return fmt.Errorf("%w: strategy must be %q or %q, got %q", ErrInvalidConfig, StrategyPartition, StrategyJoint, c.Strategy)
	}

	switch c.Distances {
	case DistancesBFS, DistancesFloydWarshall:
	default:
		return fmt.Errorf("%w: distances must be %q or %q, got %q", ErrInvalidConfig, DistancesBFS, DistancesFloydWarshall, c.Distances)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error", "disable":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}

	return nil
}
