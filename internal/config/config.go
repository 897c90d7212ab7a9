// Package config loads server configuration from the environment.
//
// An optional dotenv file seeds the environment first; real environment
// variables always win. Storage credentials are required, everything else
// has a sensible default.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingSetting indicates a required environment variable is unset.
var ErrMissingSetting = errors.New("missing required setting")

// Config holds all server configuration.
type Config struct {
	AppAddr       string        `mapstructure:"APP_ADDR"`
	LogLevel      string        `mapstructure:"LOG_LEVEL"`
	WorkDir       string        `mapstructure:"WORK_DIR"`
	AssetPath     string        `mapstructure:"ASSET_PATH"`
	PoolSize      int           `mapstructure:"POOL_SIZE"`
	RenderTimeout time.Duration `mapstructure:"RENDER_TIMEOUT"`

	// --- Object storage ---
	StorageEndpoint  string `mapstructure:"STORAGE_ENDPOINT"`
	StorageAccessKey string `mapstructure:"STORAGE_ACCESS_KEY"`
	StorageSecretKey string `mapstructure:"STORAGE_SECRET_KEY"`
	StorageBucket    string `mapstructure:"STORAGE_BUCKET"`
	StorageUseSSL    bool   `mapstructure:"STORAGE_USE_SSL"`
	PublicURLBase    string `mapstructure:"PUBLIC_URL_BASE"`
}

// keys lists every environment variable the server reads.
var keys = []string{
	"APP_ADDR", "LOG_LEVEL", "WORK_DIR", "ASSET_PATH", "POOL_SIZE",
	"RENDER_TIMEOUT", "STORAGE_ENDPOINT", "STORAGE_ACCESS_KEY",
	"STORAGE_SECRET_KEY", "STORAGE_BUCKET", "STORAGE_USE_SSL",
	"PUBLIC_URL_BASE",
}

// Load reads configuration from the environment, optionally seeded from a
// dotenv file. A missing envFile is not an error; missing required storage
// settings are.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		// Existing environment variables take precedence over the file.
		_ = godotenv.Load(envFile)
	}

	v := viper.New()
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	v.SetDefault("APP_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("WORK_DIR", "output")
	v.SetDefault("POOL_SIZE", 0) // 0 = auto-size from GOMAXPROCS
	v.SetDefault("RENDER_TIMEOUT", 30*time.Second)
	v.SetDefault("STORAGE_USE_SSL", true)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate checks that every setting without a usable default is present.
func (c *Config) validate() error {
	required := map[string]string{
		"STORAGE_ENDPOINT":   c.StorageEndpoint,
		"STORAGE_ACCESS_KEY": c.StorageAccessKey,
		"STORAGE_SECRET_KEY": c.StorageSecretKey,
		"STORAGE_BUCKET":     c.StorageBucket,
		"PUBLIC_URL_BASE":    c.PublicURLBase,
	}
	// Deterministic order for error messages.
	for _, key := range []string{
		"STORAGE_ENDPOINT", "STORAGE_ACCESS_KEY", "STORAGE_SECRET_KEY",
		"STORAGE_BUCKET", "PUBLIC_URL_BASE",
	} {
		if required[key] == "" {
			return fmt.Errorf("%w: %s", ErrMissingSetting, key)
		}
	}
	return nil
}

// String renders the configuration for startup logging with secrets masked.
func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  AppAddr: %s\n", c.AppAddr))
	sb.WriteString(fmt.Sprintf("  LogLevel: %s\n", c.LogLevel))
	sb.WriteString(fmt.Sprintf("  WorkDir: %s\n", c.WorkDir))
	sb.WriteString(fmt.Sprintf("  AssetPath: %s\n", c.AssetPath))
	sb.WriteString(fmt.Sprintf("  PoolSize: %d\n", c.PoolSize))
	sb.WriteString(fmt.Sprintf("  RenderTimeout: %s\n", c.RenderTimeout))
	sb.WriteString(fmt.Sprintf("  StorageEndpoint: %s\n", c.StorageEndpoint))
	sb.WriteString(fmt.Sprintf("  StorageBucket: %s\n", c.StorageBucket))
	sb.WriteString(fmt.Sprintf("  StorageUseSSL: %t\n", c.StorageUseSSL))
	sb.WriteString(fmt.Sprintf("  PublicURLBase: %s\n", c.PublicURLBase))
	sb.WriteString(fmt.Sprintf("  StorageAccessKey: %s\n", mask(c.StorageAccessKey)))
	sb.WriteString(fmt.Sprintf("  StorageSecretKey: %s\n", mask(c.StorageSecretKey)))
	return sb.String()
}

func mask(secret string) string {
	if secret == "" {
		return "(empty)"
	}
	return "********"
}
