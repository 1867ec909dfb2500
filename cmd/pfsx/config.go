package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/longsoft/pfsx/internal/logger"
)

// Config represents the pfsx configuration file (~/.config/pfsx/config.yaml).
// MaxDepth is a pointer so "not set" can be told apart from zero.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	MaxDepth  *int   `yaml:"max_depth"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pfsx", "config.yaml")
}

// LoadConfig reads the config file. Returns a zero Config if the file doesn't exist.
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

// applyExtractConfig applies config file defaults to extract command
// variables when the corresponding CLI flag was not explicitly set.
func applyExtractConfig(c *cli.Command, cfg Config, logLevel, logFormat *string, maxDepth *int) {
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		*logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		*logFormat = cfg.LogFormat
	}
	if cfg.MaxDepth != nil && !c.IsSet("max-depth") {
		*maxDepth = *cfg.MaxDepth
	}
}

// newLogger builds the CLI logger from the resolved level and format.
func newLogger(w io.Writer, level, format string) logger.Logger {
	lvl := logger.ParseLevel(level)
	switch format {
	case "json":
		return logger.JSON(w, lvl)
	case "text":
		return logger.Text(w, lvl)
	default:
		return logger.Pretty(w, lvl)
	}
}
