// Package config loads service settings from an optional YAML file overlaid
// by environment variables and .env files
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	"github.com/KirkDiggler/rpg-equipment/internal/logger"
	equipmenthistory "github.com/KirkDiggler/rpg-equipment/internal/repositories/equipment_history"
)

// Environment variable names
const (
	EnvGRPCPort      = "GRPC_PORT"
	EnvMetricsPort   = "METRICS_PORT"
	EnvRedisAddr     = "REDIS_ADDR"
	EnvRedisPassword = "REDIS_PASSWORD"
	EnvRedisDB       = "REDIS_DB"
	EnvHistoryLimit  = "HISTORY_LIMIT"
	EnvHistoryTTL    = "HISTORY_TTL"
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"
)

// Config holds all configuration for the equipment service
type Config struct {
	GRPCPort int `yaml:"grpc_port"`

	// MetricsPort serves /metrics over HTTP; 0 disables it
	MetricsPort int `yaml:"metrics_port"`

	Redis   RedisConfig   `yaml:"redis"`
	History HistoryConfig `yaml:"history"`
	Log     LogConfig     `yaml:"log"`
}

// RedisConfig holds Redis connection parameters.
// An empty Addr keeps history in process memory.
type RedisConfig struct {
	Addr        string        `yaml:"addr"`
	Password    string        `yaml:"password"`
	DB          int           `yaml:"db"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
}

// HistoryConfig controls how much history each owner keeps
type HistoryConfig struct {
	Limit int           `yaml:"limit"`
	TTL   time.Duration `yaml:"ttl"`
}

// LogConfig selects the slog handler
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns Config with sensible defaults
func Default() Config {
	return Config{
		GRPCPort:    50051,
		MetricsPort: 9090,
		Redis: RedisConfig{
			DialTimeout: 5 * time.Second,
		},
		History: HistoryConfig{
			Limit: equipmenthistory.DefaultLimit,
		},
		Log: LogConfig{
			Level:  "info",
			Format: logger.FormatText,
		},
	}
}

// Load builds the config in three layers: defaults, then the YAML file at
// path (skipped when path is empty or the file is missing), then environment
// variables. Process environment wins over values read from envFiles.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	dotenv, err := readEnvFiles(envFiles)
	if err != nil {
		return cfg, err
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if err := applyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))

	return cfg, cfg.Validate()
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "reading config %s", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "parsing config "+path)
	}
	return nil
}

// readEnvFiles reads .env style files without touching the process environment.
// Missing files are skipped.
func readEnvFiles(files []string) (map[string]string, error) {
	merged := make(map[string]string)
	for _, file := range files {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			continue
		}
		values, err := godotenv.Read(file)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parsing env file "+file)
		}
		for k, v := range values {
			if _, seen := merged[k]; !seen {
				merged[k] = v
			}
		}
	}
	return merged, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	vb := errors.NewValidationBuilder()

	setInt := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				vb.Fieldf(key, "must be an integer, got %q", v)
				return
			}
			*dst = n
		}
	}
	setString := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	setInt(EnvGRPCPort, &cfg.GRPCPort)
	setInt(EnvMetricsPort, &cfg.MetricsPort)
	setString(EnvRedisAddr, &cfg.Redis.Addr)
	setString(EnvRedisPassword, &cfg.Redis.Password)
	setInt(EnvRedisDB, &cfg.Redis.DB)
	setInt(EnvHistoryLimit, &cfg.History.Limit)
	setString(EnvLogLevel, &cfg.Log.Level)
	setString(EnvLogFormat, &cfg.Log.Format)

	if v, ok := lookup(EnvHistoryTTL); ok {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			vb.Fieldf(EnvHistoryTTL, "must be a duration, got %q", v)
		} else {
			cfg.History.TTL = ttl
		}
	}

	return vb.Build()
}

// Validate checks ranges and enumerations
func (c Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("MetricsPort", c.MetricsPort, 0, 65535, vb)
	errors.ValidateRange("History.Limit", c.History.Limit, 1, equipmenthistory.MaxLimit, vb)
	errors.ValidateEnum("Log.Level", c.Log.Level, logger.Levels(), vb)
	errors.ValidateEnum("Log.Format", c.Log.Format, logger.Formats(), vb)

	if c.MetricsPort != 0 && c.MetricsPort == c.GRPCPort {
		vb.Field("MetricsPort", "must differ from GRPCPort")
	}
	if c.History.TTL < 0 {
		vb.Field("History.TTL", "cannot be negative")
	}
	if c.Redis.DB < 0 {
		vb.Field("Redis.DB", "cannot be negative")
	}

	return vb.Build()
}

// UseRedis reports whether history should be kept in Redis
func (c Config) UseRedis() bool {
	return c.Redis.Addr != ""
}

// Logger returns the logger settings for this service
func (c Config) Logger(serviceName, version string) logger.Config {
	return logger.Config{
		Level:       c.Log.Level,
		Format:      c.Log.Format,
		ServiceName: serviceName,
		Version:     version,
	}
}

// HistoryOptions returns the history store settings
func (c Config) HistoryOptions() equipmenthistory.Options {
	return equipmenthistory.Options{
		Limit: c.History.Limit,
		TTL:   c.History.TTL,
	}
}
