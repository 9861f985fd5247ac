package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ConfigSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) writeFile(body string) string {
	path := filepath.Join(s.T().TempDir(), "hiebus.toml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigSuite) TestDefaults() {
	cfg, err := FromEnv()
	s.Require().NoError(err)
	s.Equal(Default(), cfg)
	s.True(cfg.TemplateCache)
	s.Equal(":8080", cfg.Addr)
}

func (s *ConfigSuite) TestEnvOverrides() {
	s.T().Setenv("HIEBUS_ADDR", ":9721")
	s.T().Setenv("HIEBUS_LOG_LEVEL", "debug")
	s.T().Setenv("HIEBUS_INSTANCE_ADDRESS", "10.0.0.7:9721")
	s.T().Setenv("HIEBUS_INSTANCE_NAME", "Lwak clinic")
	s.T().Setenv("HIEBUS_TEMPLATE_CACHE", "false")

	cfg, err := FromEnv()

	s.Require().NoError(err)
	s.Equal(":9721", cfg.Addr)
	s.Equal(slog.LevelDebug, cfg.LogLevel)
	s.Equal("10.0.0.7:9721", cfg.Instance.Node().Address())
	s.Equal("Lwak clinic", cfg.Instance.Node().Name())
	s.False(cfg.TemplateCache)
}

func (s *ConfigSuite) TestInvalidEnv() {
	s.Run("log level", func() {
		s.T().Setenv("HIEBUS_LOG_LEVEL", "loud")
		_, err := FromEnv()
		s.Error(err)
	})
	s.Run("template cache", func() {
		s.T().Setenv("HIEBUS_TEMPLATE_CACHE", "sometimes")
		_, err := FromEnv()
		s.Error(err)
	})
}

func (s *ConfigSuite) TestLoadFile() {
	path := s.writeFile(`
addr = ":9000"
environment = "staging"
log_level = "warn"
template_dir = "/etc/hiebus/skeletons"

[instance]
address = "10.0.0.1:9721"
name = "MPI"
`)

	cfg, err := Load(path)

	s.Require().NoError(err)
	s.Equal(":9000", cfg.Addr)
	s.Equal("staging", cfg.Environment)
	s.Equal(slog.LevelWarn, cfg.LogLevel)
	s.Equal("/etc/hiebus/skeletons", cfg.TemplateDir)
	s.True(cfg.TemplateCache)
	s.Equal(Instance{Address: "10.0.0.1:9721", Name: "MPI"}, cfg.Instance)
}

func (s *ConfigSuite) TestEnvWinsOverFile() {
	path := s.writeFile("addr = \":9000\"\ntemplate_cache = false\n")
	s.T().Setenv("HIEBUS_ADDR", ":9100")

	cfg, err := Load(path)

	s.Require().NoError(err)
	s.Equal(":9100", cfg.Addr)
	s.False(cfg.TemplateCache)
}

func (s *ConfigSuite) TestLoadFailures() {
	s.Run("missing file", func() {
		_, err := Load(filepath.Join(s.T().TempDir(), "absent.toml"))
		s.Error(err)
	})
	s.Run("unknown key", func() {
		_, err := Load(s.writeFile("listen = \":80\"\n"))
		s.ErrorContains(err, "listen")
	})
	s.Run("bad level", func() {
		_, err := Load(s.writeFile("log_level = \"chatty\"\n"))
		s.ErrorContains(err, "log_level")
	})
}

func (s *ConfigSuite) TestEmptyPathUsesEnv() {
	s.T().Setenv("HIEBUS_ENV", "test")
	cfg, err := Load("")
	s.Require().NoError(err)
	s.Equal("test", cfg.Environment)
}
