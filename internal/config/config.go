package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/footstats/internal/model"
)

const (
	DefaultHost    = "https://www.football-data.co.uk"
	DefaultOutDir  = "data"
	DefaultTimeout = 60 * time.Second

	CombinedFileName = "combined_matches.csv"
)

// Config holds all runtime configuration for a footstats run.
type Config struct {
	ConfigPath  string
	LogFormat   string // "text", "json" or "auto"
	LogLevel    string
	Host        string
	OutDir      string
	Timeout     time.Duration
	MetricsFile string
	Leagues     []model.League
	Seasons     []string

	// analyze
	InputPath string
	TopN      int
	Format    string // "text" or "json"
	Color     string // "auto", "always" or "never"
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Host    string         `yaml:"host"`
	OutDir  string         `yaml:"out_dir"`
	Timeout string         `yaml:"timeout"`
	Leagues []model.League `yaml:"leagues"`
	Seasons []string       `yaml:"seasons"`
}

// Flag names of the settings a config file can also set.
const (
	FlagHost    = "host"
	FlagOutDir  = "out"
	FlagTimeout = "timeout"
)

// LoadFromFile reads a YAML config file and merges its values into Config.
// A value the file sets replaces the current one unless explicit reports
// that the matching flag was passed on the command line. A nil explicit
// lets the file override everything.
func (c *Config) LoadFromFile(path string, explicit func(flag string) bool) error {
	if explicit == nil {
		explicit = func(string) bool { return false }
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&yc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config file: %w", err)
	}
	if yc.Host != "" && !explicit(FlagHost) {
		c.Host = yc.Host
	}
	if yc.OutDir != "" && !explicit(FlagOutDir) {
		c.OutDir = yc.OutDir
	}
	if yc.Timeout != "" {
		d, err := time.ParseDuration(yc.Timeout)
		if err != nil {
			return fmt.Errorf("parse timeout %q: %w", yc.Timeout, err)
		}
		if !explicit(FlagTimeout) {
			c.Timeout = d
		}
	}
	if len(yc.Leagues) > 0 {
		c.Leagues = yc.Leagues
	}
	if len(yc.Seasons) > 0 {
		c.Seasons = yc.Seasons
	}
	return c.validateCatalog()
}

// validateCatalog checks league entries for empty or duplicate codes.
// Empty league or season lists default to the built-in catalog.
func (c *Config) validateCatalog() error {
	if len(c.Leagues) == 0 {
		c.Leagues = append([]model.League(nil), model.DefaultLeagues...)
	}
	if len(c.Seasons) == 0 {
		c.Seasons = append([]string(nil), model.DefaultSeasons...)
	}
	seen := make(map[string]bool, len(c.Leagues))
	for _, l := range c.Leagues {
		if l.Code == "" || l.Name == "" {
			return fmt.Errorf("league entry needs both code and name: %+v", l)
		}
		if seen[l.Code] {
			return fmt.Errorf("duplicate league code %q in config", l.Code)
		}
		seen[l.Code] = true
	}
	for _, s := range c.Seasons {
		if s == "" {
			return fmt.Errorf("empty season in config")
		}
	}
	return nil
}

// Catalog returns the configured (league, season) entries in fetch order.
func (c *Config) Catalog() []model.CatalogEntry {
	leagues, seasons := c.Leagues, c.Seasons
	if len(leagues) == 0 {
		leagues = model.DefaultLeagues
	}
	if len(seasons) == 0 {
		seasons = model.DefaultSeasons
	}
	return model.BuildCatalog(leagues, seasons)
}

// ValidateHost checks the host and catalog, which is all that plan and
// discover need.
func (c *Config) ValidateHost() error {
	if c.Host == "" {
		return fmt.Errorf("--host is required")
	}
	if _, err := url.ParseRequestURI(c.Host); err != nil {
		return fmt.Errorf("invalid host %q: %w", c.Host, err)
	}
	return c.validateCatalog()
}

// Validate checks the scrape settings and fills catalog defaults.
func (c *Config) Validate() error {
	if err := c.ValidateHost(); err != nil {
		return err
	}
	if c.OutDir == "" {
		return fmt.Errorf("--out is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

// ValidateAnalyze checks the analyze settings.
func (c *Config) ValidateAnalyze() error {
	if c.InputPath == "" {
		return fmt.Errorf("--in is required")
	}
	if _, err := os.Stat(c.InputPath); err != nil {
		return fmt.Errorf("input not accessible: %w", err)
	}
	if c.TopN <= 0 {
		return fmt.Errorf("--top must be positive")
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color mode %q", c.Color)
	}
	return nil
}
