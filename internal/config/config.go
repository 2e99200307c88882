// Package config provides configuration management for the promowidget CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/promowidget-go/internal/logging"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/models"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/parser"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/render"
)

// EnvPrefix prefixes every environment variable read by the CLI.
const EnvPrefix = "PROMOWIDGET"

// FileName is the config file name searched for without --config.
const FileName = "promowidget"

// Configuration validation errors.
var (
	ErrInvalidLogLevel     = errors.New("log-level must be one of: debug, info, warn, error")
	ErrInvalidColumns      = errors.New("columns must be one of: auto, 2, 3, 4")
	ErrInvalidTheme        = errors.New("theme must be 'light' or 'dark'")
	ErrInvalidCorners      = errors.New("corners must be 'rounded' or 'sharp'")
	ErrInvalidTimezone     = errors.New("timezone is not a known IANA zone")
	ErrInvalidScanRows     = errors.New("header.scan-rows must be at least 1")
	ErrInvalidMaxMissing   = errors.New("header.max-missing must be non-negative")
	ErrInvalidMinPresent   = errors.New("header.min-present must be at least 1")
	ErrNoExpectedColumns   = errors.New("expected-columns must not be empty")
	ErrBlankExpectedColumn = errors.New("expected-columns entries must not be blank")
)

// Config is the complete CLI configuration.
type Config struct {
	LogLevel        string       `mapstructure:"log-level" yaml:"log-level"`
	AccentColor     string       `mapstructure:"accent-color" yaml:"accent-color"`
	Columns         string       `mapstructure:"columns" yaml:"columns"`
	Theme           string       `mapstructure:"theme" yaml:"theme"`
	Corners         string       `mapstructure:"corners" yaml:"corners"`
	ShowItemNumber  bool         `mapstructure:"show-item-number" yaml:"show-item-number"`
	Timezone        string       `mapstructure:"timezone" yaml:"timezone"`
	Header          HeaderConfig `mapstructure:"header" yaml:"header"`
	ExpectedColumns []string     `mapstructure:"expected-columns" yaml:"expected-columns"`
}

// HeaderConfig tunes header row detection.
type HeaderConfig struct {
	ScanRows   int `mapstructure:"scan-rows" yaml:"scan-rows"`
	MaxMissing int `mapstructure:"max-missing" yaml:"max-missing"`
	MinPresent int `mapstructure:"min-present" yaml:"min-present"`
}

// Default returns the built-in configuration.
func Default() *Config {
	a := render.DefaultAppearance()
	h := parser.DefaultHeaderParams()
	return &Config{
		LogLevel:        "info",
		AccentColor:     a.AccentColor,
		Columns:         string(a.Columns),
		Theme:           string(a.Theme),
		Corners:         string(a.Corners),
		ShowItemNumber:  a.ShowItemNumber,
		Timezone:        "Local",
		Header:          HeaderConfig{ScanRows: h.ScanRows, MaxMissing: h.MaxMissing, MinPresent: h.MinPresent},
		ExpectedColumns: append([]string(nil), models.ExpectedColumns...),
	}
}

// NewViper returns a viper instance reading PROMOWIDGET_* variables and
// either explicitPath or promowidget.yaml from the search directories.
func NewViper(explicitPath string) *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("log-level", def.LogLevel)
	v.SetDefault("accent-color", def.AccentColor)
	v.SetDefault("columns", def.Columns)
	v.SetDefault("theme", def.Theme)
	v.SetDefault("corners", def.Corners)
	v.SetDefault("show-item-number", def.ShowItemNumber)
	v.SetDefault("timezone", def.Timezone)
	v.SetDefault("header.scan-rows", def.Header.ScanRows)
	v.SetDefault("header.max-missing", def.Header.MaxMissing)
	v.SetDefault("header.min-present", def.Header.MinPresent)
	v.SetDefault("expected-columns", def.ExpectedColumns)

	if explicitPath == "" {
		explicitPath = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		return v
	}
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	for _, dir := range SearchDirs() {
		v.AddConfigPath(dir)
	}
	return v
}

// SearchDirs lists the directories searched for promowidget.yaml.
func SearchDirs() []string {
	dirs := []string{"."}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, FileName))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, filepath.Join(home, ".config", FileName))
	}
	return dirs
}

// Load reads the config file (a missing searched-for file is not an
// error), merges env and bound flags, and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// LoadDotEnv loads path (default ".env") into the environment without
// overriding variables that are already set. A missing file is ignored.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	switch render.Columns(c.Columns) {
	case render.ColumnsAuto, render.ColumnsTwo, render.ColumnsThree, render.ColumnsFour:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColumns, c.Columns)
	}

	switch render.Theme(c.Theme) {
	case render.ThemeLight, render.ThemeDark:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTheme, c.Theme)
	}

	switch render.Corners(c.Corners) {
	case render.CornersRounded, render.CornersSharp:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCorners, c.Corners)
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimezone, c.Timezone)
	}

	if c.Header.ScanRows < 1 {
		return ErrInvalidScanRows
	}
	if c.Header.MaxMissing < 0 {
		return ErrInvalidMaxMissing
	}
	if c.Header.MinPresent < 1 {
		return ErrInvalidMinPresent
	}

	if len(c.ExpectedColumns) == 0 {
		return ErrNoExpectedColumns
	}
	for i, col := range c.ExpectedColumns {
		if strings.TrimSpace(col) == "" {
			return fmt.Errorf("%w: expected-columns[%d]", ErrBlankExpectedColumn, i)
		}
	}

	return nil
}

// Location resolves Timezone. "" and "Local" mean the system zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// Appearance returns the widget look. Invalid accent colors are replaced
// by the default when rendering.
func (c *Config) Appearance() render.Appearance {
	return render.Appearance{
		AccentColor:    c.AccentColor,
		Columns:        render.Columns(c.Columns),
		Theme:          render.Theme(c.Theme),
		Corners:        render.Corners(c.Corners),
		ShowItemNumber: c.ShowItemNumber,
	}
}

// HeaderParams returns the header detection parameters.
func (c *Config) HeaderParams() parser.HeaderParams {
	return parser.HeaderParams{
		ScanRows:   c.Header.ScanRows,
		MaxMissing: c.Header.MaxMissing,
		MinPresent: c.Header.MinPresent,
	}
}
