// Package config loads the run configuration of the sssp command from a
// YAML file or from DSSSP_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Input formats understood by the graph loaders.
const (
	FormatBinary   = "binary"
	FormatEdgeList = "edgelist"
	FormatDOT      = "dot"
)

// Generators available when no input file is given.
const (
	GenPath     = "path"
	GenCycle    = "cycle"
	GenStar     = "star"
	GenGrid     = "grid"
	GenComplete = "complete"
	GenRandom   = "random"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full run configuration of the sssp command.
type Config struct {
	Workers       int           `yaml:"workers"`
	Source        int           `yaml:"source"`
	DefaultSource int           `yaml:"default_source"`
	Input         Input         `yaml:"input"`
	Generator     Generator     `yaml:"generator"`
	RoundTimeout  time.Duration `yaml:"round_timeout"`
	MailboxSize   int           `yaml:"mailbox_size"`
	Output        string        `yaml:"output,omitempty"`
	Log           Log           `yaml:"log"`
	MetricsAddr   string        `yaml:"metrics_addr,omitempty"`
	Verify        bool          `yaml:"verify"`
}

// Input names the graph file and its format.
type Input struct {
	Path   string `yaml:"path,omitempty"`
	Format string `yaml:"format"`
}

// Generator describes the synthetic graph built when no Input.Path is set.
type Generator struct {
	Kind       string  `yaml:"kind"`
	Nodes      int     `yaml:"nodes"`
	Prob       float64 `yaml:"prob"`
	Seed       int64   `yaml:"seed"`
	Undirected bool    `yaml:"undirected"`
}

// Log selects the log level and the console or json output format.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Workers:       1,
		Source:        0,
		DefaultSource: 0,
		Input:         Input{Format: FormatBinary},
		Generator:     Generator{Kind: GenRandom, Nodes: 1000, Prob: 0.005, Seed: 1},
		RoundTimeout:  30 * time.Second,
		Log:           Log{Level: "info", Format: "console"},
	}
}

// LoadConfig reads the YAML file at configPath. Keys missing from the file
// keep their Default values.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", configPath, err)
	}

	return config, nil
}

// LoadConfigFromEnv builds a configuration from DSSSP_* variables, falling
// back to Default for unset or unparsable values.
func LoadConfigFromEnv() *Config {
	d := Default()

	return &Config{
		Workers:       getEnvInt("DSSSP_WORKERS", d.Workers),
		Source:        getEnvInt("DSSSP_SOURCE", d.Source),
		DefaultSource: getEnvInt("DSSSP_DEFAULT_SOURCE", d.DefaultSource),
		Input: Input{
			Path:   getEnv("DSSSP_INPUT", d.Input.Path),
			Format: getEnv("DSSSP_FORMAT", d.Input.Format),
		},
		Generator: Generator{
			Kind:       getEnv("DSSSP_GEN", d.Generator.Kind),
			Nodes:      getEnvInt("DSSSP_NODES", d.Generator.Nodes),
			Prob:       getEnvFloat("DSSSP_PROB", d.Generator.Prob),
			Seed:       int64(getEnvInt("DSSSP_SEED", int(d.Generator.Seed))),
			Undirected: getEnvBool("DSSSP_UNDIRECTED", d.Generator.Undirected),
		},
		RoundTimeout: getEnvDuration("DSSSP_ROUND_TIMEOUT", d.RoundTimeout),
		MailboxSize:  getEnvInt("DSSSP_MAILBOX_SIZE", d.MailboxSize),
		Output:       getEnv("DSSSP_OUTPUT", d.Output),
		Log: Log{
			Level:  getEnv("DSSSP_LOG_LEVEL", d.Log.Level),
			Format: getEnv("DSSSP_LOG_FORMAT", d.Log.Format),
		},
		MetricsAddr: getEnv("DSSSP_METRICS_ADDR", d.MetricsAddr),
		Verify:      getEnvBool("DSSSP_VERIFY", d.Verify),
	}
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch {
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, c.Workers)
	case c.DefaultSource < 0:
		return fmt.Errorf("%w: default_source cannot be negative, got %d", ErrInvalid, c.DefaultSource)
	case c.RoundTimeout < 0:
		return fmt.Errorf("%w: round_timeout cannot be negative, got %s", ErrInvalid, c.RoundTimeout)
	case c.MailboxSize < 0:
		return fmt.Errorf("%w: mailbox_size cannot be negative, got %d", ErrInvalid, c.MailboxSize)
	}

	switch c.Input.Format {
	case FormatBinary, FormatEdgeList, FormatDOT:
	default:
		return fmt.Errorf("%w: unknown input format %q", ErrInvalid, c.Input.Format)
	}

	if c.Input.Path == "" {
		switch c.Generator.Kind {
		case GenPath, GenCycle, GenStar, GenGrid, GenComplete, GenRandom:
		default:
			return fmt.Errorf("%w: unknown generator %q", ErrInvalid, c.Generator.Kind)
		}
		if c.Generator.Nodes < 1 {
			return fmt.Errorf("%w: generator nodes must be at least 1, got %d", ErrInvalid, c.Generator.Nodes)
		}
		if c.Generator.Prob < 0 || c.Generator.Prob > 1 {
			return fmt.Errorf("%w: generator prob must be in [0,1], got %g", ErrInvalid, c.Generator.Prob)
		}
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
