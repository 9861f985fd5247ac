// Package config loads server settings from the environment and, when a
// path is given, from a TOML file with the environment taking precedence.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Instance identifies this node on the bus. Log entries sent from the node
// are stamped with it.
type Instance struct {
	Address string
	Name    string
}

// Node exposes the instance through accessor methods.
func (i Instance) Node() Node {
	return Node{instance: i}
}

// Node is an Instance seen as a node identity provider.
type Node struct {
	instance Instance
}

func (n Node) Address() string { return n.instance.Address }
func (n Node) Name() string    { return n.instance.Name }

// Server captures HTTP server level configuration.
type Server struct {
	Addr        string
	Environment string
	LogLevel    slog.Level
	Instance    Instance
	// TemplateDir replaces the embedded skeletons when set.
	TemplateDir   string
	TemplateCache bool
}

// Default returns the settings used when nothing is configured.
func Default() Server {
	return Server{
		Addr:          ":8080",
		Environment:   "development",
		LogLevel:      slog.LevelInfo,
		TemplateCache: true,
	}
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	cfg := Default()
	if err := applyEnv(&cfg); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

type fileConfig struct {
	Addr          string `toml:"addr"`
	Environment   string `toml:"environment"`
	LogLevel      string `toml:"log_level"`
	TemplateDir   string `toml:"template_dir"`
	TemplateCache bool   `toml:"template_cache"`
	Instance      struct {
		Address string `toml:"address"`
		Name    string `toml:"name"`
	} `toml:"instance"`
}

// Load reads path, then applies environment overrides. An empty path is the
// same as FromEnv.
func Load(path string) (Server, error) {
	if path == "" {
		return FromEnv()
	}
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Server{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Server{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("addr") {
		cfg.Addr = strings.TrimSpace(raw.Addr)
	}
	if meta.IsDefined("environment") {
		cfg.Environment = strings.TrimSpace(raw.Environment)
	}
	if meta.IsDefined("log_level") {
		level, err := parseLevel(raw.LogLevel)
		if err != nil {
			return Server{}, fmt.Errorf("parse log_level: %w", err)
		}
		cfg.LogLevel = level
	}
	if meta.IsDefined("template_dir") {
		cfg.TemplateDir = strings.TrimSpace(raw.TemplateDir)
	}
	if meta.IsDefined("template_cache") {
		cfg.TemplateCache = raw.TemplateCache
	}
	if meta.IsDefined("instance", "address") {
		cfg.Instance.Address = strings.TrimSpace(raw.Instance.Address)
	}
	if meta.IsDefined("instance", "name") {
		cfg.Instance.Name = strings.TrimSpace(raw.Instance.Name)
	}

	if err := applyEnv(&cfg); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Server) error {
	if v := os.Getenv("HIEBUS_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("HIEBUS_ENV"); v != "" {
		cfg.Environment = v
	}
	if v := os.Getenv("HIEBUS_LOG_LEVEL"); v != "" {
		level, err := parseLevel(v)
		if err != nil {
			return fmt.Errorf("parse HIEBUS_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}
	if v := os.Getenv("HIEBUS_INSTANCE_ADDRESS"); v != "" {
		cfg.Instance.Address = v
	}
	if v := os.Getenv("HIEBUS_INSTANCE_NAME"); v != "" {
		cfg.Instance.Name = v
	}
	if v := os.Getenv("HIEBUS_TEMPLATE_DIR"); v != "" {
		cfg.TemplateDir = v
	}
	if v := os.Getenv("HIEBUS_TEMPLATE_CACHE"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse HIEBUS_TEMPLATE_CACHE: %w", err)
		}
		cfg.TemplateCache = enabled
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}
