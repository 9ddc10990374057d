package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

type Config struct {
	Input     Input     `yaml:"input"`
	Analysis  Analysis  `yaml:"analysis"`
	Sentiment Sentiment `yaml:"sentiment"`
	Output    Output    `yaml:"output"`
	Server    Server    `yaml:"server"`
	Logging   Logging   `yaml:"logging"`
}

type Input struct {
	Path       string `yaml:"path"`
	TextColumn string `yaml:"text_column"`
	DateColumn string `yaml:"date_column"`
}

type Analysis struct {
	NGramSize       int  `yaml:"ngram_size"`
	TopK            int  `yaml:"top_k"`
	FilterStopwords bool `yaml:"filter_stopwords"`
	Workers         int  `yaml:"workers"`
}

type Sentiment struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

type Output struct {
	ReportPath string `yaml:"report_path"`
}

type Server struct {
	Port int `yaml:"port"`
}

type Logging struct {
	Level string `yaml:"level"`
}

// ConfigDir returns the XDG config directory for reviewlens.
func ConfigDir() string {
	return filepath.Join(homeDir(), ".config", "reviewlens")
}

// ResolveConfigPath finds the config file following priority:
// explicit path > ~/.config/reviewlens/config.yaml > ./config.yaml
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	xdgConfig := filepath.Join(ConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig, nil
	}

	cwdConfig := "config.yaml"
	if _, err := os.Stat(cwdConfig); err == nil {
		return cwdConfig, nil
	}

	return "", fmt.Errorf(
		"no config file found; searched:\n  %s\n  ./config.yaml\n\nRun 'reviewlens init' to create a default config",
		xdgConfig,
	)
}

// Load reads and parses a config YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse(data)
}

// parse parses YAML bytes into a Config, applying defaults.
func parse(data []byte) (*Config, error) {
	cfg := &Config{
		Input: Input{
			TextColumn: "Review Body",
			DateColumn: "Date Published",
		},
		Analysis: Analysis{
			NGramSize: 2,
			TopK:      20,
		},
		Sentiment: Sentiment{
			Positive: []string{"good", "excellent"},
			Negative: []string{"bad", "poor"},
		},
		Server:  Server{Port: 8000},
		Logging: Logging{Level: "INFO"},
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Analysis.NGramSize < 1 {
		return nil, fmt.Errorf("analysis.ngram_size must be positive, got %d", cfg.Analysis.NGramSize)
	}

	return cfg, nil
}

// GetWorkers returns the effective enrichment worker count.
func (c *Config) GetWorkers() int {
	if c.Analysis.Workers > 0 {
		return c.Analysis.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
