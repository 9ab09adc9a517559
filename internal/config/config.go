// Package config loads and validates mdpress configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ayase-lab/mdpress/internal/fileutil"
	"github.com/ayase-lab/mdpress/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrMarkerTooLong   = errors.New("page break marker exceeds maximum length")
)

// maxMarkerLength caps the page-break marker; longer values are almost
// certainly pasted content, not a marker token.
const maxMarkerLength = 64

// Defaults applied by DefaultConfig and by empty duration fields.
const (
	DefaultPageBreakMarker   = "<!-- pagebreak -->"
	DefaultSettleDelay       = 3 * time.Second
	DefaultVerifyInitialWait = 10 * time.Second
	DefaultVerifyGraceWait   = 5 * time.Second
	DefaultTimeout           = 30 * time.Second
	DefaultPreviewAddr       = "localhost:8750"
)

// Config holds all configuration for conversion and preview.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Convert ConvertConfig `yaml:"convert"`
	Preview PreviewConfig `yaml:"preview"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Default output directory (empty = must specify)
}

// ConvertConfig defines batch conversion options.
// Duration fields hold Go duration strings ("3s", "500ms"); empty means
// use the package default.
type ConvertConfig struct {
	PageBreakMarker   string `yaml:"pageBreakMarker"`
	IncludeTOC        bool   `yaml:"includeTOC"`
	ConfirmOverwrite  bool   `yaml:"confirmOverwrite"`
	SettleDelay       string `yaml:"settleDelay"`
	VerifyInitialWait string `yaml:"verifyInitialWait"`
	VerifyGraceWait   string `yaml:"verifyGraceWait"`
	Timeout           string `yaml:"timeout"`
}

// PreviewConfig defines live preview options.
type PreviewConfig struct {
	Addr string `yaml:"addr"` // listen address, host:port
}

// DefaultConfig returns the configuration used when no file is loaded.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Dir: ""},
		Convert: ConvertConfig{
			PageBreakMarker:  DefaultPageBreakMarker,
			IncludeTOC:       true,
			ConfirmOverwrite: false,
		},
		Preview: PreviewConfig{Addr: DefaultPreviewAddr},
	}
}

// Validate checks field values. Duration strings must parse and be
// non-negative; the marker must fit the length cap.
func (c *Config) Validate() error {
	if len(c.Convert.PageBreakMarker) > maxMarkerLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrMarkerTooLong, len(c.Convert.PageBreakMarker), maxMarkerLength)
	}

	durations := map[string]string{
		"convert.settleDelay":       c.Convert.SettleDelay,
		"convert.verifyInitialWait": c.Convert.VerifyInitialWait,
		"convert.verifyGraceWait":   c.Convert.VerifyGraceWait,
		"convert.timeout":           c.Convert.Timeout,
	}
	for field, value := range durations {
		if value == "" {
			continue
		}
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %s = %q", ErrInvalidDuration, field, value)
		}
		if d < 0 {
			return fmt.Errorf("%w: %s = %q (must be >= 0)", ErrInvalidDuration, field, value)
		}
	}
	return nil
}

// SettleDelayValue returns the parsed settle delay or the default.
func (c *ConvertConfig) SettleDelayValue() time.Duration {
	return durationOr(c.SettleDelay, DefaultSettleDelay)
}

// VerifyInitialWaitValue returns the parsed initial verification wait or the default.
func (c *ConvertConfig) VerifyInitialWaitValue() time.Duration {
	return durationOr(c.VerifyInitialWait, DefaultVerifyInitialWait)
}

// VerifyGraceWaitValue returns the parsed grace verification wait or the default.
func (c *ConvertConfig) VerifyGraceWaitValue() time.Duration {
	return durationOr(c.VerifyGraceWait, DefaultVerifyGraceWait)
}

// TimeoutValue returns the parsed per-page timeout or the default.
func (c *ConvertConfig) TimeoutValue() time.Duration {
	return durationOr(c.Timeout, DefaultTimeout)
}

// durationOr parses s, falling back to def when empty or unparseable.
// Validate reports unparseable values; this keeps accessors total.
func durationOr(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return def
	}
	return d
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Loaded values overlay DefaultConfig, so absent fields keep their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/mdpress/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "mdpress", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
