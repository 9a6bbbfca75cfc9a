// Package config loads the YAML configuration shared by the interpres
// commands. A file only needs the keys it changes: it is decoded over
// Defaults, and unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cours-de-latin/interpres"
)

// Config is the full configuration.
type Config struct {
	Translate Translate            `yaml:"translate"`
	Rank      interpres.RankPolicy `yaml:"rank"`
	Cache     Cache                `yaml:"cache"`
	Server    Server               `yaml:"server"`
	Logging   Logging              `yaml:"logging"`
}

// Translate holds the defaults of a translation call.
type Translate struct {
	Max    int  `yaml:"max"`
	Sort   bool `yaml:"sort"`
	Tricks bool `yaml:"tricks"`
}

// Cache sizes the Latin analysis cache. Size 0 disables it.
type Cache struct {
	Size int `yaml:"size"`
}

// Server configures cmd/server.
type Server struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Logging selects the slog level: debug, info, warn or error.
type Logging struct {
	Level string `yaml:"level"`
}

// Defaults returns the configuration used when no file is given.
func Defaults() Config {
	return Config{
		Translate: Translate{Max: 6, Sort: true, Tricks: false},
		Rank:      interpres.DefaultRankPolicy(),
		Cache:     Cache{Size: interpres.DefaultOptions().CacheSize},
		Server:    Server{Addr: ":8080", AllowedOrigins: []string{"*"}},
		Logging:   Logging{Level: "info"},
	}
}

// Load reads the YAML document from raw, or from path when raw is empty,
// over Defaults. With neither source it returns Defaults. The result is
// validated.
func Load(path string, raw []byte) (Config, error) {
	cfg := Defaults()
	var r io.Reader
	switch {
	case len(raw) > 0:
		r = bytes.NewReader(raw)
	case path != "":
		f, err := os.Open(path)
		if err != nil {
			return cfg, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()
		r = f
	default:
		return cfg, nil
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Translate.Max < 0 {
		return fmt.Errorf("translate.max must be >= 0, got %d", c.Translate.Max)
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("cache.size must be >= 0, got %d", c.Cache.Size)
	}
	if c.Rank.EntryWeight < 0 {
		return fmt.Errorf("rank.entry_weight must be >= 0, got %d", c.Rank.EntryWeight)
	}
	if len(c.Rank.Frequency) == 0 {
		return errors.New("rank.frequency must not be empty")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses Logging.Level.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.Logging.Level))); err != nil {
		return 0, fmt.Errorf("logging.level: %w", err)
	}
	return lvl, nil
}

// Options returns the translator options the configuration describes.
func (c Config) Options() interpres.Options {
	return interpres.Options{Policy: c.Rank.Clone(), CacheSize: c.Cache.Size}
}
