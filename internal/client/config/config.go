package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/dmitrijs2005/medreminder/internal/flagx"
)

const (
	EnvPrefix = "MEDREMINDER_"
	// EnvBackendURL is accepted as an alias of MEDREMINDER_SERVER_URL.
	EnvBackendURL = "BACKEND_URL"

	DotEnvFile = ".env"
)

// Config holds runtime settings for the medreminder CLI.
type Config struct {
	// ServerURL is the base URL of the reminders backend.
	ServerURL string
	// DBPath is the SQLite file holding the stored credential.
	DBPath string
	// RequestTimeout bounds each backend call. Zero means no client timeout.
	RequestTimeout time.Duration
	LogLevel       string
	Colored        bool
}

// fileConfig mirrors Config with koanf tags; the timeout is in seconds.
type fileConfig struct {
	ServerURL      string `koanf:"server_url"`
	DBPath         string `koanf:"db_path"`
	RequestTimeout int    `koanf:"request_timeout"`
	LogLevel       string `koanf:"log_level"`
	Colored        bool   `koanf:"colored"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:5000"
	c.DBPath = "medreminder.db"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "warn"
	c.Colored = true
}

func defaults() map[string]any {
	var c Config
	c.LoadDefaults()
	return map[string]any{
		"server_url":      c.ServerURL,
		"db_path":         c.DBPath,
		"request_timeout": int(c.RequestTimeout / time.Second),
		"log_level":       c.LogLevel,
		"colored":         c.Colored,
	}
}

// LoadConfig builds the configuration from os.Args.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load layers defaults, the YAML file named by -c/-config, the .env file in
// the working directory, the process environment and finally the flags in
// args. Later sources take precedence over earlier ones.
func Load(args []string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := flagx.ConfigFileFlag(args); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	dotenv, err := readDotEnv(DotEnvFile)
	if err != nil {
		return nil, err
	}
	if err := k.Load(confmap.Provider(dotenv, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", DotEnvFile, err)
	}

	if v := os.Getenv(EnvBackendURL); v != "" {
		_ = k.Set("server_url", v)
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var fc fileConfig
	if err := k.Unmarshal("", &fc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg := &Config{
		ServerURL:      fc.ServerURL,
		DBPath:         fc.DBPath,
		RequestTimeout: time.Duration(fc.RequestTimeout) * time.Second,
		LogLevel:       fc.LogLevel,
		Colored:        fc.Colored,
	}

	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the client cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ServerURL) == "" {
		return errors.New("server url is required")
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("db path is required")
	}
	if c.RequestTimeout < 0 {
		return errors.New("request timeout must not be negative")
	}
	return nil
}

// envKey maps MEDREMINDER_SERVER_URL to server_url.
func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// readDotEnv returns the recognised keys of an optional .env file without
// touching the process environment. A missing file yields an empty map.
func readDotEnv(path string) (map[string]any, error) {
	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	out := make(map[string]any, len(vars))
	if v, ok := vars[EnvBackendURL]; ok && v != "" {
		out["server_url"] = v
	}
	for name, v := range vars {
		if strings.HasPrefix(name, EnvPrefix) {
			out[envKey(name)] = v
		}
	}
	return out, nil
}
