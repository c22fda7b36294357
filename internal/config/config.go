package config

import (
	stderrors "errors"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/htmf/internal/errors"
	"github.com/vango-dev/htmf/pkg/render"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "htmf.yaml"

	// DefaultPackage is the package clause used for generated Go source.
	DefaultPackage = "views"

	// DefaultFunc is the function name used for generated Go source.
	DefaultFunc = "Page"

	// DefaultAddr is the preview server listen address.
	DefaultAddr = "localhost:7070"

	// DefaultRateLimit is the steady per-client request rate of the preview server.
	DefaultRateLimit = 20.0

	// DefaultBurst is the per-client burst size of the preview server.
	DefaultBurst = 40

	// DefaultShutdownTimeout bounds graceful shutdown of the preview server.
	DefaultShutdownTimeout = "5s"
)

// Config represents the complete htmf.yaml configuration.
type Config struct {
	// Render controls the serializer layout used by fmt and the preview server.
	Render RenderConfig `yaml:"render"`

	// Convert controls the shape of generated Go source.
	Convert ConvertConfig `yaml:"convert"`

	// Preview contains preview server configuration.
	Preview PreviewConfig `yaml:"preview"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RenderConfig contains serializer settings.
type RenderConfig struct {
	// Pretty selects the indented layout.
	Pretty bool `yaml:"pretty"`

	// Indent is the per-level indentation for the pretty layout.
	Indent string `yaml:"indent"`
}

// ConvertConfig contains converter settings.
type ConvertConfig struct {
	// Package is the package clause of generated files.
	Package string `yaml:"package"`

	// Func is the name of the generated function.
	Func string `yaml:"func"`
}

// PreviewConfig contains preview server settings.
type PreviewConfig struct {
	// Addr is the listen address.
	Addr string `yaml:"addr"`

	// Dir is the directory of .html and .msgpack files to serve.
	Dir string `yaml:"dir"`

	// RateLimit is the steady per-client request rate in requests per second.
	// Zero disables rate limiting.
	RateLimit float64 `yaml:"rateLimit"`

	// Burst is the per-client burst size.
	Burst int `yaml:"burst"`

	// Metrics exposes Prometheus metrics on /metrics.
	Metrics bool `yaml:"metrics"`

	// ShutdownTimeout bounds graceful shutdown (e.g., "5s").
	ShutdownTimeout string `yaml:"shutdownTimeout"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Render: RenderConfig{
			Pretty: false,
			Indent: render.DefaultIndent,
		},
		Convert: ConvertConfig{
			Package: DefaultPackage,
			Func:    DefaultFunc,
		},
		Preview: PreviewConfig{
			Addr:            DefaultAddr,
			Dir:             ".",
			RateLimit:       DefaultRateLimit,
			Burst:           DefaultBurst,
			Metrics:         true,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}

// Load reads htmf.yaml from the specified directory.
// A directory without htmf.yaml yields the defaults.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	cfg, err := LoadFile(configPath)
	if err != nil {
		if errors.CodeOf(err) == "H041" {
			return New(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.New("H041").
				WithDetail("No configuration file at " + path).
				Wrap(err)
		}
		return nil, errors.New("H040").Wrap(err)
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("H040").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that the file is valid YAML")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.New("H040").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("H040").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Render.Indent == "" {
		c.Render.Indent = render.DefaultIndent
	}
	if c.Convert.Package == "" {
		c.Convert.Package = DefaultPackage
	}
	if c.Convert.Func == "" {
		c.Convert.Func = DefaultFunc
	}
	if c.Preview.Addr == "" {
		c.Preview.Addr = DefaultAddr
	}
	if c.Preview.Dir == "" {
		c.Preview.Dir = "."
	}
	if c.Preview.ShutdownTimeout == "" {
		c.Preview.ShutdownTimeout = DefaultShutdownTimeout
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !token.IsIdentifier(c.Convert.Package) {
		return errors.New("H042").
			WithDetail("convert.package " + quote(c.Convert.Package) + " is not a Go identifier")
	}
	if !token.IsIdentifier(c.Convert.Func) {
		return errors.New("H042").
			WithDetail("convert.func " + quote(c.Convert.Func) + " is not a Go identifier")
	}
	if c.Preview.RateLimit < 0 {
		return errors.New("H042").
			WithDetail("preview.rateLimit must not be negative")
	}
	if c.Preview.RateLimit > 0 && c.Preview.Burst < 1 {
		return errors.New("H042").
			WithDetail("preview.burst must be at least 1 when rate limiting is enabled")
	}
	d, err := time.ParseDuration(c.Preview.ShutdownTimeout)
	if err != nil || d < 0 {
		return errors.New("H042").
			WithDetail("preview.shutdownTimeout " + quote(c.Preview.ShutdownTimeout) + " is not a duration").
			WithSuggestion(`Use a Go duration such as "5s"`)
	}
	return nil
}

// RendererConfig returns the serializer configuration.
func (c *Config) RendererConfig() render.RendererConfig {
	return render.RendererConfig{
		Pretty: c.Render.Pretty,
		Indent: c.Render.Indent,
	}
}

// ShutdownTimeout returns the parsed preview shutdown timeout.
func (c *Config) ShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Preview.ShutdownTimeout)
	if err != nil {
		d, _ = time.ParseDuration(DefaultShutdownTimeout)
	}
	return d
}

// PreviewDirPath returns the preview directory resolved against the config file.
func (c *Config) PreviewDirPath() string {
	path := c.Preview.Dir
	if path == "" {
		path = "."
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the nearest htmf.yaml.
// Returns the directory containing it, or an error if none is found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("H041").
				WithDetail("No htmf.yaml found in " + startDir + " or any parent directory").
				WithSuggestion("Run 'htmf init' to write one with the defaults")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads the nearest htmf.yaml above the working directory,
// falling back to the defaults when there is none.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return New(), nil
	}

	return Load(root)
}

func quote(s string) string {
	return `"` + s + `"`
}
