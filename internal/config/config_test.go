package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-equipment/internal/config"
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	for _, key := range []string{
		config.EnvGRPCPort, config.EnvMetricsPort, config.EnvRedisAddr,
		config.EnvRedisPassword, config.EnvRedisDB, config.EnvHistoryLimit,
		config.EnvHistoryTTL, config.EnvLogLevel, config.EnvLogFormat,
	} {
		s.T().Setenv(key, "")
		s.Require().NoError(os.Unsetenv(key))
	}
}

func (s *ConfigTestSuite) write(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load("")
	s.Require().NoError(err)
	s.Assert().Equal(config.Default(), cfg)
	s.Assert().False(cfg.UseRedis())
	s.Assert().Equal(10, cfg.HistoryOptions().Limit)
}

func (s *ConfigTestSuite) TestMissingFileKeepsDefaults() {
	cfg, err := config.Load(filepath.Join(s.dir, "nope.yaml"))
	s.Require().NoError(err)
	s.Assert().Equal(config.Default(), cfg)
}

func (s *ConfigTestSuite) TestYAMLFile() {
	path := s.write("config.yaml", `
grpc_port: 6000
metrics_port: 0
redis:
  addr: localhost:6379
  db: 2
  dial_timeout: 2s
history:
  limit: 25
  ttl: 24h
log:
  level: debug
  format: json
`)

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Assert().Equal(6000, cfg.GRPCPort)
	s.Assert().Equal(0, cfg.MetricsPort)
	s.Assert().Equal("localhost:6379", cfg.Redis.Addr)
	s.Assert().Equal(2, cfg.Redis.DB)
	s.Assert().Equal(2*time.Second, cfg.Redis.DialTimeout)
	s.Assert().Equal(25, cfg.History.Limit)
	s.Assert().Equal(24*time.Hour, cfg.History.TTL)
	s.Assert().Equal("debug", cfg.Log.Level)
	s.Assert().Equal("json", cfg.Log.Format)
	s.Assert().True(cfg.UseRedis())
}

func (s *ConfigTestSuite) TestEnvOverridesFile() {
	path := s.write("config.yaml", "grpc_port: 6000\nhistory:\n  limit: 25\n")
	s.T().Setenv(config.EnvGRPCPort, "7000")
	s.T().Setenv(config.EnvLogLevel, "WARN")
	s.T().Setenv(config.EnvHistoryTTL, "90m")

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Assert().Equal(7000, cfg.GRPCPort)
	s.Assert().Equal(25, cfg.History.Limit)
	s.Assert().Equal("warn", cfg.Log.Level)
	s.Assert().Equal(90*time.Minute, cfg.History.TTL)
}

func (s *ConfigTestSuite) TestEnvFile() {
	envFile := s.write(".env", "REDIS_ADDR=redis:6379\nHISTORY_LIMIT=5\nLOG_FORMAT=json\n")
	s.T().Setenv(config.EnvHistoryLimit, "7")

	cfg, err := config.Load("", envFile, filepath.Join(s.dir, "missing.env"))
	s.Require().NoError(err)
	s.Assert().Equal("redis:6379", cfg.Redis.Addr)
	s.Assert().Equal(7, cfg.History.Limit)
	s.Assert().Equal("json", cfg.Log.Format)

	_, set := os.LookupEnv(config.EnvRedisAddr)
	s.Assert().False(set)
}

func (s *ConfigTestSuite) TestBadEnvValues() {
	s.T().Setenv(config.EnvGRPCPort, "fifty")
	s.T().Setenv(config.EnvHistoryTTL, "forever")

	_, err := config.Load("")
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), config.EnvGRPCPort)
	s.Assert().Contains(err.Error(), config.EnvHistoryTTL)
}

func (s *ConfigTestSuite) TestBadYAML() {
	path := s.write("config.yaml", "grpc_port: [not an int")

	_, err := config.Load(path)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{name: "grpc port zero", mutate: func(c *config.Config) { c.GRPCPort = 0 }, field: "GRPCPort"},
		{name: "metrics port too large", mutate: func(c *config.Config) { c.MetricsPort = 70000 }, field: "MetricsPort"},
		{name: "ports collide", mutate: func(c *config.Config) { c.MetricsPort = c.GRPCPort }, field: "MetricsPort"},
		{name: "history limit zero", mutate: func(c *config.Config) { c.History.Limit = 0 }, field: "History.Limit"},
		{name: "history limit too large", mutate: func(c *config.Config) { c.History.Limit = 1000 }, field: "History.Limit"},
		{name: "negative ttl", mutate: func(c *config.Config) { c.History.TTL = -time.Second }, field: "History.TTL"},
		{name: "negative db", mutate: func(c *config.Config) { c.Redis.DB = -1 }, field: "Redis.DB"},
		{name: "unknown level", mutate: func(c *config.Config) { c.Log.Level = "loud" }, field: "Log.Level"},
		{name: "unknown format", mutate: func(c *config.Config) { c.Log.Format = "xml" }, field: "Log.Format"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := config.Default()
			tc.mutate(&cfg)

			err := cfg.Validate()
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
			s.Assert().Contains(err.Error(), tc.field)
		})
	}
}

func (s *ConfigTestSuite) TestLoggerConfig() {
	cfg := config.Default()
	cfg.Log.Format = "json"

	lc := cfg.Logger("rpg-equipment", "v1")
	s.Assert().Equal("rpg-equipment", lc.ServiceName)
	s.Assert().Equal("v1", lc.Version)
	s.Assert().True(lc.IsJSON())
}
