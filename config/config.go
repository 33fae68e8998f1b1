// Package config loads osa-vocab settings from defaults, an optional
// YAML file and OSA_VOCAB_* environment variables, in rising priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// Filename is looked up inside the profile directory.
	Filename  = "vocab.yaml"
	envPrefix = "OSA_VOCAB"
)

// Config holds every setting the program reads.
type Config struct {
	// List engine, measured in terminal lines.
	EstimateRowHeight int
	Overscan          int
	FallbackViewport  int
	Scan              string // "indexed" or "linear"
	StickyHeaders     bool
	Scrollbar         bool

	GroupBy string // "topic" or "date"
	Theme   string

	// Word source.
	Source       string // "sqlite", "yaml" or "http"
	DatabasePath string
	WordsFile    string
	APIURL       string
	APIToken     string

	ResizeThrottle time.Duration
	LoadTimeout    time.Duration

	LogFile string
	Debug   bool
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("estimate_row_height", 3)
	v.SetDefault("overscan", 8)
	v.SetDefault("fallback_viewport", 20)
	v.SetDefault("scan", "indexed")
	v.SetDefault("sticky_headers", true)
	v.SetDefault("scrollbar", true)
	v.SetDefault("group_by", "topic")
	v.SetDefault("theme", "dark")
	v.SetDefault("source", "yaml")
	v.SetDefault("database_path", filepath.Join(dir, "vocab.db"))
	v.SetDefault("words_file", filepath.Join(dir, "words.yaml"))
	v.SetDefault("api_url", "")
	v.SetDefault("api_token", "")
	v.SetDefault("resize_throttle", 50*time.Millisecond)
	v.SetDefault("load_timeout", 10*time.Second)
	v.SetDefault("log_file", "")
	v.SetDefault("debug", false)
}

// Dir returns the profile directory, ~/.osa-vocab.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".osa-vocab"
	}
	return filepath.Join(home, ".osa-vocab")
}

// Load reads configuration. An empty path means <Dir()>/vocab.yaml; a
// missing file there is not an error, but a missing explicit path is.
func Load(path string) (Config, error) {
	return load(path, Dir())
}

func load(path, dir string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, dir)

	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, Filename)
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return fromViper(v).Normalize(), fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return fromViper(v).Normalize(), nil
}

func fromViper(v *viper.Viper) Config {
	return Config{
		EstimateRowHeight: v.GetInt("estimate_row_height"),
		Overscan:          v.GetInt("overscan"),
		FallbackViewport:  v.GetInt("fallback_viewport"),
		Scan:              v.GetString("scan"),
		StickyHeaders:     v.GetBool("sticky_headers"),
		Scrollbar:         v.GetBool("scrollbar"),
		GroupBy:           v.GetString("group_by"),
		Theme:             v.GetString("theme"),
		Source:            v.GetString("source"),
		DatabasePath:      v.GetString("database_path"),
		WordsFile:         v.GetString("words_file"),
		APIURL:            v.GetString("api_url"),
		APIToken:          v.GetString("api_token"),
		ResizeThrottle:    v.GetDuration("resize_throttle"),
		LoadTimeout:       v.GetDuration("load_timeout"),
		LogFile:           v.GetString("log_file"),
		Debug:             v.GetBool("debug"),
	}
}

// Normalize replaces out-of-range values with their defaults.
func (c Config) Normalize() Config {
	if c.EstimateRowHeight <= 0 {
		c.EstimateRowHeight = 3
	}
	if c.Overscan < 0 {
		c.Overscan = 0
	}
	if c.FallbackViewport <= 0 {
		c.FallbackViewport = 20
	}
	c.Scan = strings.ToLower(strings.TrimSpace(c.Scan))
	if c.Scan != "linear" {
		c.Scan = "indexed"
	}
	c.GroupBy = strings.ToLower(strings.TrimSpace(c.GroupBy))
	if c.GroupBy != "date" {
		c.GroupBy = "topic"
	}
	c.Source = strings.ToLower(strings.TrimSpace(c.Source))
	if c.Source == "" {
		c.Source = "yaml"
	}
	if c.Theme == "" {
		c.Theme = "dark"
	}
	if c.ResizeThrottle < 0 {
		c.ResizeThrottle = 0
	}
	if c.LoadTimeout <= 0 {
		c.LoadTimeout = 10 * time.Second
	}
	return c
}
