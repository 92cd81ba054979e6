package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the lexfeed configuration file
// (~/.config/lexfeed/config.yaml). Values act as defaults and lose to
// explicitly set CLI flags.
type Config struct {
	DataDir   string `yaml:"data_dir"`
	VocabDir  string `yaml:"vocab_dir"`
	Tokenizer string `yaml:"tokenizer"`

	// Fetch
	FetchRetries *int64 `yaml:"fetch_retries"`

	// Output
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Server
	ServerAddress string `yaml:"server_address"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lexfeed", "config.yaml")
}

func applyLoggingConfig(c *cli.Command, cfg Config) {
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
}

// applyDataConfig applies config file defaults to the shared data/vocab
// directory flags when they were not explicitly set.
func applyDataConfig(c *cli.Command, cfg Config) {
	if cfg.DataDir != "" && !c.IsSet("data-dir") {
		dataDir = cfg.DataDir
	}
	if cfg.VocabDir != "" && !c.IsSet("vocab-dir") {
		vocabDir = cfg.VocabDir
	}
	if cfg.Tokenizer != "" && !c.IsSet("tokenizer") && tokenizerLabel == "" {
		tokenizerLabel = cfg.Tokenizer
	}
}

func applyServeConfig(c *cli.Command, cfg Config, addr *string) {
	applyDataConfig(c, cfg)
	if cfg.ServerAddress != "" && !c.IsSet("addr") {
		*addr = cfg.ServerAddress
	}
}

func applyFetchConfig(c *cli.Command, cfg Config, retries *int64) {
	applyDataConfig(c, cfg)
	if cfg.FetchRetries != nil && !c.IsSet("retries") {
		*retries = *cfg.FetchRetries
	}
}

// LoadConfig reads the config file. Returns a zero Config if the file
// doesn't exist or fails to parse.
func LoadConfig() Config {
	path := configPath()
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}
