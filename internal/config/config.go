package config

import (
	"fmt"
	"strings"
)

const (
	ModeMinimal = "minimal"
	ModeFull    = "full"
)

type Config struct {
	Processing  ProcessingConfig  `yaml:"processing"`
	Punctuation PunctuationConfig `yaml:"punctuation"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type ProcessingConfig struct {
	Mode            string `yaml:"mode"`
	MinOverlapWords int    `yaml:"min_overlap_words"`
	MinWords        int    `yaml:"min_words"`
	Format          string `yaml:"format"`
	Title           string `yaml:"title"`
}

type PunctuationConfig struct {
	Backend    string        `yaml:"backend"`
	ChunkWords int           `yaml:"chunk_words"`
	Command    CommandConfig `yaml:"command"`
	Gemini     GeminiConfig  `yaml:"gemini"`
	OpenAI     OpenAIConfig  `yaml:"openai"`
}

type CommandConfig struct {
	Path string   `yaml:"path"`
	Args []string `yaml:"args"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

type OpenAIConfig struct {
	Model   string `yaml:"model"`
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	// Validate cannot fail on an empty config.
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	c.Processing.Mode = strings.ToLower(strings.TrimSpace(c.Processing.Mode))
	switch c.Processing.Mode {
	case "":
		c.Processing.Mode = ModeFull
	case ModeMinimal, ModeFull:
	default:
		return fmt.Errorf("processing.mode must be %q or %q, got %q", ModeMinimal, ModeFull, c.Processing.Mode)
	}
	if c.Processing.MinOverlapWords < 0 {
		return fmt.Errorf("processing.min_overlap_words must not be negative")
	}
	if c.Processing.MinWords < 0 {
		return fmt.Errorf("processing.min_words must not be negative")
	}
	if c.Punctuation.ChunkWords < 0 {
		return fmt.Errorf("punctuation.chunk_words must not be negative")
	}
	if c.Logging.MaxSizeMB < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAgeDays < 0 {
		return fmt.Errorf("logging rotation limits must not be negative")
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
	}

	if c.Processing.MinOverlapWords == 0 {
		c.Processing.MinOverlapWords = 3
	}
	if c.Processing.MinWords == 0 {
		c.Processing.MinWords = 3
	}
	if c.Processing.Title == "" {
		c.Processing.Title = "Transcript"
	}
	if c.Punctuation.Backend == "" {
		c.Punctuation.Backend = "heuristic"
	}
	c.Punctuation.Backend = strings.ToLower(c.Punctuation.Backend)
	if c.Punctuation.ChunkWords == 0 {
		c.Punctuation.ChunkWords = 15
	}
	if c.Punctuation.Gemini.Model == "" {
		c.Punctuation.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Punctuation.OpenAI.Model == "" {
		c.Punctuation.OpenAI.Model = "gpt-4o-mini"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = 10
	}
	if c.Logging.MaxBackups == 0 {
		c.Logging.MaxBackups = 3
	}
	if c.Logging.MaxAgeDays == 0 {
		c.Logging.MaxAgeDays = 28
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
