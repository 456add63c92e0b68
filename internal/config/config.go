// Package config loads cmapgen settings from .cmapgen.yaml, CMAPGEN_*
// environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/viscm-web/cmapgen/internal/colormap"
	"github.com/viscm-web/cmapgen/internal/license"
	"github.com/viscm-web/cmapgen/internal/security"
)

const (
	// EnvPrefix is prepended to every environment variable.
	EnvPrefix = "CMAPGEN"

	// FileName is the config file name searched for, without extension.
	FileName = ".cmapgen"
)

// PreviewConfig holds settings for the rendered preview image.
type PreviewConfig struct {
	Output string `mapstructure:"output"`
	Font   string `mapstructure:"font"`
}

// CaptureConfig holds settings for the browser screenshot.
type CaptureConfig struct {
	URL      string        `mapstructure:"url"`
	Selector string        `mapstructure:"selector"`
	Output   string        `mapstructure:"output"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Settle   time.Duration `mapstructure:"settle"`
	Width    int           `mapstructure:"width"`
	Height   int           `mapstructure:"height"`
	Scale    float64       `mapstructure:"scale"`
}

// Config holds all runtime configuration. With no file, environment or flags
// every field carries the fixed value the asset pipeline has always used.
type Config struct {
	OutputDir   string        `mapstructure:"output_dir"`
	LicenseDir  string        `mapstructure:"license_dir"`
	Points      int           `mapstructure:"points"`
	ListedURL   string        `mapstructure:"listed_url"`
	LicenseURL  string        `mapstructure:"license_url"`
	CacheDir    string        `mapstructure:"cache_dir"`
	Offline     bool          `mapstructure:"offline"`
	Precompress bool          `mapstructure:"precompress"`
	CatalogFile string        `mapstructure:"catalog_file"`
	Verbose     bool          `mapstructure:"verbose"`
	Quiet       bool          `mapstructure:"quiet"`
	Preview     PreviewConfig `mapstructure:"preview"`
	Capture     CaptureConfig `mapstructure:"capture"`
}

// Init points viper at the config file and environment. An explicit file
// must exist; otherwise a missing .cmapgen.yaml is not an error.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(FileName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// SetDefaults registers the built-in defaults with viper.
func SetDefaults() {
	viper.SetDefault("output_dir", "public/colormaps")
	viper.SetDefault("license_dir", license.DefaultDir)
	viper.SetDefault("points", colormap.DefaultPoints)
	viper.SetDefault("listed_url", colormap.DefaultListedURL)
	viper.SetDefault("license_url", license.DefaultURL)
	viper.SetDefault("cache_dir", "")
	viper.SetDefault("offline", false)
	viper.SetDefault("precompress", false)
	viper.SetDefault("catalog_file", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("quiet", false)

	viper.SetDefault("preview.output", "public/og-preview.png")
	viper.SetDefault("preview.font", "")

	viper.SetDefault("capture.url", "http://localhost:5173")
	viper.SetDefault("capture.selector", ".visualization-grid")
	viper.SetDefault("capture.output", "public/og-preview.png")
	viper.SetDefault("capture.timeout", 10*time.Second)
	viper.SetDefault("capture.settle", 3*time.Second)
	viper.SetDefault("capture.width", 1200)
	viper.SetDefault("capture.height", 630)
	viper.SetDefault("capture.scale", 2.0)
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	SetDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Validate checks settings shared by every command.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if c.Points < 2 {
		return fmt.Errorf("points must be at least 2 (got %d)", c.Points)
	}
	if !c.Offline {
		if err := security.ValidateHTTPURL(c.ListedURL); err != nil {
			return fmt.Errorf("listed_url: %w", err)
		}
	}
	return nil
}

// ValidateLicense checks the license download settings. It is separate from
// Validate so a skipped license step cannot fail an extraction.
func (c Config) ValidateLicense() error {
	if err := security.ValidateHTTPURL(c.LicenseURL); err != nil {
		return fmt.Errorf("license_url: %w", err)
	}
	if c.LicenseDir == "" {
		return fmt.Errorf("license_dir must not be empty")
	}
	return nil
}

// Validate checks the capture settings.
func (c CaptureConfig) Validate() error {
	if err := security.ValidatePageURL(c.URL); err != nil {
		return fmt.Errorf("capture.url: %w", err)
	}
	if c.Selector == "" {
		return fmt.Errorf("capture.selector must not be empty")
	}
	if c.Output == "" {
		return fmt.Errorf("capture.output must not be empty")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("capture window must be positive (got %dx%d)", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("capture.scale must be positive (got %g)", c.Scale)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("capture.timeout must be positive (got %s)", c.Timeout)
	}
	if c.Settle < 0 {
		return fmt.Errorf("capture.settle must not be negative (got %s)", c.Settle)
	}
	return nil
}
