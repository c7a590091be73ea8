// Package config provides configuration types and defaults for showcase.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all configuration for showcase.
type Config struct {
	Rotation    RotationConfig    `yaml:"rotation" mapstructure:"rotation"`
	Content     ContentConfig     `yaml:"content" mapstructure:"content"`
	Paths       PathsConfig       `yaml:"paths" mapstructure:"paths"`
	LogRotation LogRotationConfig `yaml:"log_rotation" mapstructure:"log_rotation"`
	Preview     PreviewConfig     `yaml:"preview" mapstructure:"preview"`
}

// RotationConfig holds the fallbacks for rotating sections. Content values
// take precedence over Interval; Enabled=false turns rotation off everywhere.
type RotationConfig struct {
	Interval        time.Duration `yaml:"interval" mapstructure:"interval"`
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	VisibilityDelay time.Duration `yaml:"visibility_delay" mapstructure:"visibility_delay"` // Hide-then-show delay after an index change
}

// ContentConfig locates the content document and controls live reload.
type ContentConfig struct {
	Path     string        `yaml:"path" mapstructure:"path"`
	Watch    bool          `yaml:"watch" mapstructure:"watch"`
	Debounce time.Duration `yaml:"debounce" mapstructure:"debounce"`
}

// PathsConfig holds file paths for logs.
type PathsConfig struct {
	Log    string `yaml:"log" mapstructure:"log"`         // JSON lines event log
	TUILog string `yaml:"tui_log" mapstructure:"tui_log"` // slog output while the TUI owns the terminal
}

// LogRotationConfig holds settings for log file rotation.
// Used for the TUI debug log (lumberjack-based automatic rotation).
type LogRotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}

// PreviewConfig holds settings for the terminal preview.
type PreviewConfig struct {
	MarkdownStyle string        `yaml:"markdown_style" mapstructure:"markdown_style"` // glamour style: "auto", "dark", "light", "notty"
	WordWrap      int           `yaml:"word_wrap" mapstructure:"word_wrap"`
	Tick          time.Duration `yaml:"tick" mapstructure:"tick"` // Progress bar refresh rate
}

// ErrInvalidConfig wraps every problem reported by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Rotation: RotationConfig{
			Interval:        4 * time.Second,
			Enabled:         true,
			VisibilityDelay: 100 * time.Millisecond,
		},
		Content: ContentConfig{
			Path:     ".showcase/content.yaml",
			Watch:    true,
			Debounce: 250 * time.Millisecond,
		},
		Paths: PathsConfig{
			Log:    ".showcase/events.log",
			TUILog: ".showcase/showcase.log",
		},
		LogRotation: LogRotationConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
		Preview: PreviewConfig{
			MarkdownStyle: "auto",
			WordWrap:      80,
			Tick:          100 * time.Millisecond,
		},
	}
}

// Validate reports settings that would leave the preview unusable.
func (c *Config) Validate() error {
	var errs []error
	if c.Rotation.Interval <= 0 {
		errs = append(errs, fmt.Errorf("%w: rotation.interval must be positive, got %v", ErrInvalidConfig, c.Rotation.Interval))
	}
	if c.Rotation.VisibilityDelay < 0 {
		errs = append(errs, fmt.Errorf("%w: rotation.visibility_delay must not be negative", ErrInvalidConfig))
	}
	if c.Content.Path == "" {
		errs = append(errs, fmt.Errorf("%w: content.path is required", ErrInvalidConfig))
	}
	if c.Preview.Tick <= 0 {
		errs = append(errs, fmt.Errorf("%w: preview.tick must be positive", ErrInvalidConfig))
	}
	switch c.Preview.MarkdownStyle {
	case "auto", "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night":
	default:
		errs = append(errs, fmt.Errorf("%w: unknown preview.markdown_style %q", ErrInvalidConfig, c.Preview.MarkdownStyle))
	}
	return errors.Join(errs...)
}
