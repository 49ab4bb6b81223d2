package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string `yaml:"-"`

	// Selection
	Filter string `yaml:"filter"`
	Suite  string `yaml:"suite"`

	// Output settings
	JSONReport     bool   `yaml:"json_report"`
	OutputJSONFile string `yaml:"output_json_file"`
	OutputJSONDir  string `yaml:"output_json_dir"`

	// Prometheus textfile written after a run, empty to skip
	MetricsTextfile string `yaml:"metrics_textfile"`

	LogLevel string `yaml:"log_level"`

	// Presentation
	Progress bool `yaml:"progress"`
	Summary  bool `yaml:"summary"`
	NoColor  bool `yaml:"no_color"`

	// Command flags
	Flags Flags `yaml:"-"`
}

// Flags holds command-line flags
type Flags struct {
	ConfigFile      string
	ProjectPath     string
	NameFilter      string
	Suite           string
	JSON            bool
	OutputDir       string
	MetricsTextfile string
	LogLevel        string
	Progress        bool
	Summary         bool
	View            bool
	NoColor         bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:    DefaultProjectPath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		LogLevel:       DefaultLogLevel,
	}
}

// Load builds a config from defaults, the YAML file, the environment and
// finally the flags, each overriding the previous one.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	cfg.Flags = flags
	if flags.ProjectPath != "" {
		cfg.ProjectPath = flags.ProjectPath
	}

	if err := cfg.loadFile(flags.ConfigFile); err != nil {
		return nil, err
	}
	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	cfg.applyFlags()

	return cfg, nil
}

// loadFile reads path, or verity.yaml in the project when path is empty.
// Only an explicitly named file has to exist.
func (c *Config) loadFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(c.ProjectPath, DefaultConfigFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// loadEnv loads the project's .env file without overriding variables that
// are already set, then applies the VERITY_* variables.
func (c *Config) loadEnv() error {
	envFile := filepath.Join(c.ProjectPath, DefaultEnvFile)
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	stringVars := map[string]*string{
		EnvFilter:          &c.Filter,
		EnvSuite:           &c.Suite,
		EnvOutputDir:       &c.OutputJSONDir,
		EnvMetricsTextfile: &c.MetricsTextfile,
		EnvLogLevel:        &c.LogLevel,
	}
	for name, field := range stringVars {
		if v, ok := os.LookupEnv(name); ok {
			*field = v
		}
	}

	boolVars := map[string]*bool{
		EnvJSONReport: &c.JSONReport,
		EnvProgress:   &c.Progress,
		EnvNoColor:    &c.NoColor,
	}
	for name, field := range boolVars {
		v, ok := os.LookupEnv(name)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", name, err)
		}
		*field = b
	}
	return nil
}

func (c *Config) applyFlags() {
	f := c.Flags
	if f.NameFilter != "" {
		c.Filter = f.NameFilter
	}
	if f.Suite != "" {
		c.Suite = f.Suite
	}
	if f.OutputDir != "" {
		c.OutputJSONDir = f.OutputDir
	}
	if f.MetricsTextfile != "" {
		c.MetricsTextfile = f.MetricsTextfile
	}
	if f.LogLevel != "" {
		c.LogLevel = f.LogLevel
	}
	// Boolean flags can only switch a feature on.
	c.JSONReport = c.JSONReport || f.JSON
	c.Progress = c.Progress || f.Progress
	c.Summary = c.Summary || f.Summary
	c.NoColor = c.NoColor || f.NoColor
}

// GetOutputPath returns the absolute path of the JSON report file.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
