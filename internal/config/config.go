package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/alnah/go-bqpost/internal/fileutil"
	"github.com/alnah/go-bqpost/internal/logging"
	"github.com/alnah/go-bqpost/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength           = 4096 // PATH_MAX on Linux
	MaxAttributeNameLength  = 100
	MaxAttributeValueLength = 2048
	MaxAssetDirs            = 32
	MaxAttributes           = 256
)

// Accepted values for toc.mode and log.level.
var (
	TOCModes  = []string{"dom", "marker"}
	LogLevels = logging.Levels
)

// attributeNamePattern matches document attribute names such as "bq-header".
var attributeNamePattern = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_-]*$`)

// Config holds all configuration for a post-processing run.
type Config struct {
	Input      InputConfig       `yaml:"input"`
	Output     OutputConfig      `yaml:"output"`
	Assets     AssetsConfig      `yaml:"assets"`
	TOC        TOCConfig         `yaml:"toc"`
	Attributes map[string]string `yaml:"attributes"`
	Log        LogConfig         `yaml:"log"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Used when no input argument is given
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DestinationDir string `yaml:"destinationDir"` // Empty = next to each input file
}

// AssetsConfig defines where header and footer snippets are searched.
type AssetsConfig struct {
	Dirs []string `yaml:"dirs"` // Searched after the document's own directory
}

// TOCConfig defines table of contents extraction options.
type TOCConfig struct {
	Mode string `yaml:"mode"` // "dom" (default) or "marker"
}

// LogConfig defines diagnostic logging options.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: info)
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.destinationDir", c.Output.DestinationDir, MaxPathLength); err != nil {
		return err
	}

	if len(c.Assets.Dirs) > MaxAssetDirs {
		return fmt.Errorf("%w: assets.dirs has %d entries (max %d)", ErrInvalidValue, len(c.Assets.Dirs), MaxAssetDirs)
	}
	for i, dir := range c.Assets.Dirs {
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf("%w: assets.dirs[%d] is empty", ErrInvalidValue, i)
		}
		if err := validateFieldLength(fmt.Sprintf("assets.dirs[%d]", i), dir, MaxPathLength); err != nil {
			return err
		}
	}

	if err := validateOneOf("toc.mode", c.TOC.Mode, TOCModes); err != nil {
		return err
	}
	if err := validateOneOf("log.level", c.Log.Level, LogLevels); err != nil {
		return err
	}

	if len(c.Attributes) > MaxAttributes {
		return fmt.Errorf("%w: attributes has %d entries (max %d)", ErrInvalidValue, len(c.Attributes), MaxAttributes)
	}
	for _, name := range sortedKeys(c.Attributes) {
		if err := ValidateAttributeName(name); err != nil {
			return err
		}
		field := "attributes." + name
		if err := validateFieldLength(field, c.Attributes[name], MaxAttributeValueLength); err != nil {
			return err
		}
	}

	return nil
}

// ValidateAttributeName checks that name is a usable document attribute name.
func ValidateAttributeName(name string) error {
	if err := validateFieldLength("attribute name", name, MaxAttributeNameLength); err != nil {
		return err
	}
	if !attributeNamePattern.MatchString(name) {
		return fmt.Errorf("%w: attribute name %q (letters, digits, '_' and '-' only)", ErrInvalidValue, name)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateOneOf accepts empty (meaning default) or one of allowed, case-insensitively.
func validateOneOf(fieldName, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q (must be one of %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DefaultConfig returns a neutral configuration: DOM TOC extraction, info
// logging, no extra asset directories and no attributes.
func DefaultConfig() *Config {
	return &Config{
		TOC:        TOCConfig{Mode: "dom"},
		Log:        LogConfig{Level: "info"},
		Attributes: map[string]string{},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Values left empty in the file keep their DefaultConfig value.
// Returns error if the file is not found (no silent fallback).
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
	if err := yamlutil.DecodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if cfg.Attributes == nil {
		cfg.Attributes = map[string]string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Dump renders the configuration as YAML.
func (c *Config) Dump() (string, error) {
	out, err := yamlutil.Encode(c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-bqpost/
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
			userPath := filepath.Join(userConfigDir, "go-bqpost", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
