package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

// DisplayConfig contains the colours used when rendering command lines.
type DisplayConfig struct {
	Color     bool   `toml:"color"`
	Name      string `toml:"name"`
	EmphasisA string `toml:"emphasis_a"`
	EmphasisB string `toml:"emphasis_b"`
	EmphasisC string `toml:"emphasis_c"`
	Base      string `toml:"base"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the log level and the display colours.
//
// The name colour and the three emphasis colours must all differ from each other, and the base colour must differ from
// every emphasis colour.
func (c *Config) Validate() error {
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}

	colors := map[string]string{
		"name":       c.Display.Name,
		"emphasis_a": c.Display.EmphasisA,
		"emphasis_b": c.Display.EmphasisB,
		"emphasis_c": c.Display.EmphasisC,
		"base":       c.Display.Base,
	}
	for key, value := range colors {
		if value == "" {
			return fmt.Errorf("%w: display.%s must not be empty", ErrInvalidConfig, key)
		}
	}

	distinct := []string{c.Display.Name, c.Display.EmphasisA, c.Display.EmphasisB, c.Display.EmphasisC}
	seen := make(map[string]bool, len(distinct))
	for _, value := range distinct {
		if seen[value] {
			return fmt.Errorf("%w: name and emphasis colours must be distinct, %q is repeated", ErrInvalidConfig, value)
		}
		seen[value] = true
	}

	for _, value := range []string{c.Display.EmphasisA, c.Display.EmphasisB, c.Display.EmphasisC} {
		if c.Display.Base == value {
			return fmt.Errorf("%w: base colour %q matches an emphasis colour", ErrInvalidConfig, value)
		}
	}

	return nil
}

// ParseLevel converts the configured level name to a [log.Level].
func (l LogConfig) ParseLevel() (log.Level, error) {
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return level, nil
}
