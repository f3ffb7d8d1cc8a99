// Package config loads the fakecmd settings from a YAML or TOML file and
// applies environment overrides on top.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a configuration file syntax.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	if f == FormatTOML {
		return "toml"
	}
	return "yaml"
}

const (
	envHome           = "FAKECMD_HOME"
	envLogLevel       = "FAKECMD_LOG_LEVEL"
	envLogFormat      = "FAKECMD_LOG_FORMAT"
	envStripSayPrefix = "FAKECMD_STRIP_SAY_PREFIX"

	defaultDirName = ".fakecmd"
)

// Config holds every setting the binary reads at startup.
type Config struct {
	LogLevel       string `yaml:"log_level" toml:"log_level"`
	LogFormat      string `yaml:"log_format" toml:"log_format"`
	StripSayPrefix bool   `yaml:"strip_say_prefix" toml:"strip_say_prefix"`
	ActorsFile     string `yaml:"actors_file" toml:"actors_file"`
	ScriptsDir     string `yaml:"scripts_dir" toml:"scripts_dir"`
	JournalFile    string `yaml:"journal_file" toml:"journal_file"`
	JournalEnabled bool   `yaml:"journal_enabled" toml:"journal_enabled"`
	// ScriptInterval is a duration such as "250ms" between script lines.
	ScriptInterval string `yaml:"script_interval" toml:"script_interval"`

	// Interval is ScriptInterval parsed; zero when unset.
	Interval time.Duration `yaml:"-" toml:"-"`

	// Home is the directory relative paths are resolved against.
	Home string `yaml:"-" toml:"-"`
}

// Default returns the configuration used when no file exists.
func Default(home string) Config {
	return Config{
		LogLevel:       "info",
		LogFormat:      "text",
		ActorsFile:     "actors.yaml",
		ScriptsDir:     "scripts",
		JournalFile:    "journal.log",
		JournalEnabled: true,
		Home:           home,
	}
}

// HomeDir returns $FAKECMD_HOME, or ~/.fakecmd when it is unset.
func HomeDir() (string, error) {
	if dir := os.Getenv(envHome); dir != "" {
		return dir, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(userHome, defaultDirName), nil
}

// Load reads the configuration at path. An empty path means config.yaml in
// the home directory. A missing file yields the defaults; environment
// overrides apply in both cases.
func Load(path string) (Config, error) {
	home, err := HomeDir()
	if err != nil {
		return Config{}, err
	}
	cfg := Default(home)
	if path == "" {
		path = filepath.Join(home, "config.yaml")
	}

	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := decode(content, detectFormat(path), &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.ScriptInterval != "" {
		d, err := time.ParseDuration(cfg.ScriptInterval)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("invalid script_interval %q", cfg.ScriptInterval)
		}
		cfg.Interval = d
	}
	cfg.resolvePaths()
	return cfg, nil
}

func detectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

func decode(content []byte, format Format, cfg *Config) error {
	if format == FormatTOML {
		md, err := toml.Decode(string(content), cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown key %q", undecoded[0].String())
		}
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(envLogFormat); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv(envStripSayPrefix); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", envStripSayPrefix, v, err)
		}
		cfg.StripSayPrefix = b
	}
	return nil
}

func (c *Config) resolvePaths() {
	c.ActorsFile = c.resolve(c.ActorsFile)
	c.ScriptsDir = c.resolve(c.ScriptsDir)
	c.JournalFile = c.resolve(c.JournalFile)
}

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	if strings.HasPrefix(p, "~/") {
		if userHome, err := os.UserHomeDir(); err == nil {
			return filepath.Join(userHome, p[2:])
		}
	}
	return filepath.Join(c.Home, p)
}
