// Package config loads mazesolve settings from an optional .env file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/search"
)

// Environment variable names.
const (
	EnvFile       = "MAZESOLVE_ENV_FILE"
	EnvMaze       = "MAZESOLVE_FILE"
	EnvStrategies = "MAZESOLVE_STRATEGIES"
	EnvLogLevel   = "MAZESOLVE_LOG_LEVEL"
	EnvParallel   = "MAZESOLVE_PARALLEL"
	EnvMaxSteps   = "MAZESOLVE_MAX_STEPS"
	EnvTimeout    = "MAZESOLVE_TIMEOUT"
)

// ErrInvalidConfig wraps every configuration error.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the mazesolve settings.
type Config struct {
	File       string            // Maze file path; empty means prompt on stdin
	Strategies []search.Strategy // Strategies to run, in reporting order
	LogLevel   logrus.Level      // Minimum level written to stderr
	Parallel   bool              // Run strategies concurrently
	MaxSteps   int               // Per-search expansion limit, 0 = unlimited
	Timeout    time.Duration     // Overall deadline, 0 = none
	EnvLoaded  string            // Path of the .env file applied, if any
}

// Load builds a Config. args are the command-line arguments without the
// program name; a single positional argument names the maze file.
// Usage output for -h is written to usage.
func Load(args []string, usage io.Writer) (Config, error) {
	var cfg Config

	envPath := getEnvWithDefault(EnvFile, ".env")
	switch err := godotenv.Load(envPath); {
	case err == nil:
		cfg.EnvLoaded = envPath
	case errors.Is(err, fs.ErrNotExist):
		// .env is optional
	default:
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, envPath, err)
	}

	maxSteps, err := getEnvAsInt(EnvMaxSteps, 0)
	if err != nil {
		return Config{}, err
	}
	parallel, err := getEnvAsBool(EnvParallel, true)
	if err != nil {
		return Config{}, err
	}
	timeout, err := getEnvAsDuration(EnvTimeout, 0)
	if err != nil {
		return Config{}, err
	}

	fset := flag.NewFlagSet("mazesolve", flag.ContinueOnError)
	fset.SetOutput(usage)
	file := fset.String("file", getEnvWithDefault(EnvMaze, ""), "maze file to solve (prompted for when empty)")
	strategies := fset.String("strategies", getEnvWithDefault(EnvStrategies, "bfs,dfs,ucs"), "comma-separated strategies to run")
	level := fset.String("log-level", getEnvWithDefault(EnvLogLevel, "info"), "log level (trace, debug, info, warn, error)")
	fset.BoolVar(&cfg.Parallel, "parallel", parallel, "run strategies concurrently")
	fset.IntVar(&cfg.MaxSteps, "max-steps", maxSteps, "per-search expansion limit, 0 for none")
	fset.DurationVar(&cfg.Timeout, "timeout", timeout, "overall deadline, 0 for none")
	if err := fset.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg.File = *file
	switch fset.NArg() {
	case 0:
	case 1:
		cfg.File = fset.Arg(0)
	default:
		return Config{}, fmt.Errorf("%w: expected at most one maze file, got %q", ErrInvalidConfig, fset.Args())
	}

	if cfg.Strategies, err = parseStrategies(*strategies); err != nil {
		return Config{}, err
	}
	if cfg.LogLevel, err = logrus.ParseLevel(*level); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if cfg.MaxSteps < 0 {
		return Config{}, fmt.Errorf("%w: max-steps must be non-negative, got %d", ErrInvalidConfig, cfg.MaxSteps)
	}
	if cfg.Timeout < 0 {
		return Config{}, fmt.Errorf("%w: timeout must be non-negative, got %s", ErrInvalidConfig, cfg.Timeout)
	}

	return cfg, nil
}

// parseStrategies reads a comma-separated list such as "bfs,ucs".
func parseStrategies(list string) ([]search.Strategy, error) {
	var out []search.Strategy
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		s, err := search.ParseStrategy(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no strategies in %q", ErrInvalidConfig, list)
	}
	return out, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	return value, nil
}

// getEnvAsBool retrieves a boolean environment variable.
func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean: %v", ErrInvalidConfig, key, err)
	}
	return value, nil
}

// getEnvAsDuration retrieves a time.Duration environment variable.
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a duration: %v", ErrInvalidConfig, key, err)
	}
	return value, nil
}
