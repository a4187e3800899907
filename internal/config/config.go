// Package config loads graphsketch settings: defaults, then an optional TOML
// file, then GRAPHSKETCH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/graphsketch/postman"
	"github.com/katalvlaran/graphsketch/tour"
)

// ErrInvalidConfig wraps every load and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GRAPHSKETCH_"

// Config aggregates application configuration values.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Graph  GraphConfig  `toml:"graph"`
	Solver SolverConfig `toml:"solver"`
	Server ServerConfig `toml:"server"`
}

// LogConfig controls the charmbracelet logger.
type LogConfig struct {
	Level string `toml:"level"`
}

// GraphConfig holds defaults applied to loaded sketches.
type GraphConfig struct {
	Bidirectional bool `toml:"bidirectional"`
}

// SolverConfig selects engine strategies and outer-surface limits.
type SolverConfig struct {
	ExactTourLimit  int    `toml:"exact_tour_limit"`
	MaxExactNodes   int    `toml:"max_exact_nodes"`
	Matching        string `toml:"matching"`
	Walk            string `toml:"walk"`
	ExpandDeadheads bool   `toml:"expand_deadheads"`
	DijkstraHeap    bool   `toml:"dijkstra_heap"`
}

// ServerConfig governs the HTTP server.
type ServerConfig struct {
	Addr            string        `toml:"addr"`
	ReadTimeout     time.Duration `toml:"read_timeout"`
	WriteTimeout    time.Duration `toml:"write_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
}

const (
	defaultLogLevel        = "info"
	defaultMaxExactNodes   = 11
	defaultMatching        = "greedy"
	defaultWalk            = "hierholzer"
	defaultAddr            = ":8080"
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{Level: defaultLogLevel},
		Solver: SolverConfig{
			ExactTourLimit: tour.DefaultExactLimit,
			MaxExactNodes:  defaultMaxExactNodes,
			Matching:       defaultMatching,
			Walk:           defaultWalk,
		},
		Server: ServerConfig{
			Addr:            defaultAddr,
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
	}
}

// Load layers the file at path (skipped when empty) and the environment over
// Default, then validates the result. Unknown file keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown level and strategy names, non-positive limits and
// timeouts, and an auto tour limit above the exact-run guard.
func (c Config) Validate() error {
	var errs []error

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if _, err := postman.ParseMatcher(c.Solver.Matching); err != nil {
		errs = append(errs, fmt.Errorf("solver.matching: %w", err))
	}
	if _, err := postman.ParseWalk(c.Solver.Walk); err != nil {
		errs = append(errs, fmt.Errorf("solver.walk: %w", err))
	}
	if c.Solver.ExactTourLimit <= 0 {
		errs = append(errs, fmt.Errorf("solver.exact_tour_limit must be positive, got %d", c.Solver.ExactTourLimit))
	}
	if c.Solver.MaxExactNodes <= 0 {
		errs = append(errs, fmt.Errorf("solver.max_exact_nodes must be positive, got %d", c.Solver.MaxExactNodes))
	}
	if c.Solver.ExactTourLimit > c.Solver.MaxExactNodes {
		errs = append(errs, fmt.Errorf("solver.exact_tour_limit %d exceeds solver.max_exact_nodes %d",
			c.Solver.ExactTourLimit, c.Solver.MaxExactNodes))
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr is empty"))
	}
	for name, d := range map[string]time.Duration{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.write_timeout":    c.Server.WriteTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", name, d))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// applyEnv overrides fields from GRAPHSKETCH_<SECTION>_<KEY> variables.
func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"LOG_LEVEL":       &c.Log.Level,
		"SOLVER_MATCHING": &c.Solver.Matching,
		"SOLVER_WALK":     &c.Solver.Walk,
		"SERVER_ADDR":     &c.Server.Addr,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	bools := map[string]*bool{
		"GRAPH_BIDIRECTIONAL":     &c.Graph.Bidirectional,
		"SOLVER_EXPAND_DEADHEADS": &c.Solver.ExpandDeadheads,
		"SOLVER_DIJKSTRA_HEAP":    &c.Solver.DijkstraHeap,
	}
	for key, dst := range bools {
		if v, ok := lookup(key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%w: %s%s: %v", ErrInvalidConfig, EnvPrefix, key, err)
			}
			*dst = b
		}
	}

	ints := map[string]*int{
		"SOLVER_EXACT_TOUR_LIMIT": &c.Solver.ExactTourLimit,
		"SOLVER_MAX_EXACT_NODES":  &c.Solver.MaxExactNodes,
	}
	for key, dst := range ints {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s%s: %v", ErrInvalidConfig, EnvPrefix, key, err)
			}
			*dst = n
		}
	}

	durations := map[string]*time.Duration{
		"SERVER_READ_TIMEOUT":     &c.Server.ReadTimeout,
		"SERVER_WRITE_TIMEOUT":    &c.Server.WriteTimeout,
		"SERVER_SHUTDOWN_TIMEOUT": &c.Server.ShutdownTimeout,
	}
	for key, dst := range durations {
		if v, ok := lookup(key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%w: %s%s: %v", ErrInvalidConfig, EnvPrefix, key, err)
			}
			*dst = d
		}
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
}

// LogLevel returns the parsed log level; Validate guarantees it parses.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
