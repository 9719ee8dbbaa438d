package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/scriptdex/internal/domain/example"
	"github.com/kailas-cloud/scriptdex/internal/domain/resource"
	"github.com/kailas-cloud/scriptdex/internal/report"
)

// Config holds the scriptdex server configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Auth    AuthConfig    `yaml:"auth"`
	Corpus  CorpusConfig  `yaml:"corpus"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// CorpusConfig locates the example corpus and names its canonical files.
type CorpusConfig struct {
	Root              string `yaml:"root"`
	Title             string `yaml:"title"`
	URIScheme         string `yaml:"uri_scheme"`
	ScriptFile        string `yaml:"script_file"`
	DocumentationFile string `yaml:"documentation_file"`
	MetadataFile      string `yaml:"metadata_file"`
}

// Layout returns the canonical file layout of the corpus.
func (c CorpusConfig) Layout() example.Layout {
	return example.Layout{
		ScriptFile:        c.ScriptFile,
		DocumentationFile: c.DocumentationFile,
		MetadataFile:      c.MetadataFile,
	}
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	return Parse(data)
}

// Parse decodes, defaults and validates a YAML configuration document.
func Parse(data []byte) (Config, error) {
	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Corpus.Title == "" {
		c.Corpus.Title = report.DefaultTitle
	}
	if c.Corpus.URIScheme == "" {
		c.Corpus.URIScheme = resource.DefaultScheme
	}
	if c.Corpus.ScriptFile == "" {
		c.Corpus.ScriptFile = example.DefaultScriptFile
	}
	if c.Corpus.DocumentationFile == "" {
		c.Corpus.DocumentationFile = example.DefaultDocumentationFile
	}
	if c.Corpus.MetadataFile == "" {
		c.Corpus.MetadataFile = example.DefaultMetadataFile
	}
}

var schemeRegex = regexp.MustCompile(`^[a-z][a-z0-9+.-]*$`)

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Corpus.Root == "" {
		return fmt.Errorf("corpus.root is required")
	}
	if !schemeRegex.MatchString(c.Corpus.URIScheme) {
		return fmt.Errorf("corpus.uri_scheme %q is not a valid URI scheme", c.Corpus.URIScheme)
	}
	if err := c.Corpus.Layout().Validate(); err != nil {
		return fmt.Errorf("corpus layout: %w", err)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
