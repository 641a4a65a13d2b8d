package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/lo"
	"github.com/samber/oops"
	articleDomain "github.com/yamitzky/portfolio/internal/modules/article/domain"
	feedDomain "github.com/yamitzky/portfolio/internal/modules/feed/domain"
	"github.com/yamitzky/portfolio/internal/shared/errors"
)

type Config struct {
	HTTPPort     string              `koanf:"http_port"`
	StoragePath  string              `koanf:"storage_path"`
	ExportPath   string              `koanf:"export_path"`
	Revalidate   int                 `koanf:"revalidate"`
	FetchTimeout int                 `koanf:"fetch_timeout"`
	TopLimit     int                 `koanf:"top_limit"`
	LogLevel     string              `koanf:"log_level"`
	SiteTitle    string              `koanf:"site_title"`
	SiteURL      string              `koanf:"site_url"`
	Author       string              `koanf:"author"`
	Feeds        []feedDomain.Source `koanf:"feeds"`
	AppEnv       AppEnv              `koanf:"app_env"`
}

// Load reads configuration from the working directory and the environment
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom reads config.{yaml,yml,json,toml} from dir, then applies environment overrides
func LoadFrom(dir string) (*Config, error) {
	k := koanf.New(".")

	configFiles := lo.Map([]string{
		"config.yaml",
		"config.yml",
		"config.json",
		"config.toml",
	}, func(name string, _ int) string {
		return filepath.Join(dir, name)
	})

	configFile, found := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Environment variables override config file values
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	// FEEDS=platform=url,platform=url
	var envFeeds []feedDomain.Source
	if raw, ok := k.Get("feeds").(string); ok {
		parsed, err := ParseFeeds(raw)
		if err != nil {
			return nil, err
		}
		envFeeds = parsed
		k.Delete("feeds")
	}

	setDefaults(k)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	if envFeeds != nil {
		cfg.Feeds = envFeeds
	}
	if len(cfg.Feeds) == 0 {
		cfg.Feeds = feedDomain.DefaultSources()
	}

	if appEnv, err := ParseAppEnv(k.String("app_env")); err == nil {
		cfg.AppEnv = appEnv
	} else {
		cfg.AppEnv = AppEnvProduction
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(k *koanf.Koanf) {
	defaults := map[string]any{
		"http_port":     "8080",
		"storage_path":  "./data",
		"export_path":   "./out",
		"revalidate":    600,
		"fetch_timeout": 0,
		"top_limit":     6,
		"log_level":     "info",
		"site_title":    "Yamitzky - Portfolio",
		"site_url":      "https://yamitzky.com",
		"author":        "yamitzky",
		"app_env":       "production",
	}
	for key, value := range defaults {
		if !k.Exists(key) {
			k.Set(key, value)
		}
	}
}

// Validate checks the feed list and numeric settings
func (c *Config) Validate() error {
	if len(c.Feeds) == 0 {
		return errors.ErrNoFeedSources
	}
	for i, source := range c.Feeds {
		if p, err := articleDomain.ParsePlatform(source.Platform.String()); err == nil {
			c.Feeds[i].Platform = p
		}
		if err := c.Feeds[i].Validate(); err != nil {
			return oops.With("index", i).Wrap(err)
		}
	}
	if c.Revalidate <= 0 {
		return oops.Errorf("revalidate must be positive, got %d", c.Revalidate)
	}
	if c.FetchTimeout < 0 {
		return oops.Errorf("fetch_timeout must not be negative, got %d", c.FetchTimeout)
	}
	if c.TopLimit <= 0 {
		return oops.Errorf("top_limit must be positive, got %d", c.TopLimit)
	}
	return nil
}

// RevalidateInterval is how long an assembled page is served before it is rebuilt
func (c *Config) RevalidateInterval() time.Duration {
	return time.Duration(c.Revalidate) * time.Second
}

// FetchTimeoutDuration is the per-request feed timeout; zero disables it
func (c *Config) FetchTimeoutDuration() time.Duration {
	return time.Duration(c.FetchTimeout) * time.Second
}

// SlogLevel converts LogLevel, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseFeeds parses a comma-separated list of platform=url pairs
func ParseFeeds(s string) ([]feedDomain.Source, error) {
	parts := lo.Filter(strings.Split(s, ","), func(part string, _ int) bool {
		return strings.TrimSpace(part) != ""
	})

	sources := make([]feedDomain.Source, 0, len(parts))
	for _, part := range parts {
		name, url, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return nil, oops.With("entry", part).Wrap(fmt.Errorf("%w: expected platform=url", errors.ErrInvalidSource))
		}
		platform, err := articleDomain.ParsePlatform(strings.TrimSpace(name))
		if err != nil {
			return nil, oops.With("entry", part).Wrap(fmt.Errorf("%w: %v", errors.ErrInvalidSource, err))
		}
		sources = append(sources, feedDomain.Source{Platform: platform, URL: strings.TrimSpace(url)})
	}
	return sources, nil
}
