package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"lens/internal/domain"
)

// AppName names the per-user config directory
const AppName = "lens"

// Config represents the application configuration
type Config struct {
	Editor  string          `toml:"editor"` // empty falls back to $EDITOR
	LogFile string          `toml:"log_file"`
	Search  SearchSettings  `toml:"search"`
	Session SessionSettings `toml:"session"`
	UI      UISettings      `toml:"ui"`
}

// SearchSettings configures the external search tool
type SearchSettings struct {
	Binary        string `toml:"binary"`
	Hidden        bool   `toml:"hidden"`
	CaseSensitive bool   `toml:"case_sensitive"`
	WholeWord     bool   `toml:"whole_word"`
	FixedStrings  bool   `toml:"fixed_strings"`
}

// SessionSettings configures where the session snapshot lives
type SessionSettings struct {
	Path string `toml:"path"` // empty means <config dir>/lens/session.toml
}

// UISettings represents UI-related configuration
type UISettings struct {
	TickInterval Duration `toml:"tick_interval"`
	SyntaxTheme  string   `toml:"syntax_theme"`
}

// Duration is a time.Duration written as a string ("250ms") in TOML
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	fs       afero.Fs
	filePath string
}

// Dir returns the per-user lens configuration directory
func Dir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return "", fmt.Errorf("failed to locate config directory: %w", errors.Join(err, homeErr))
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, AppName), nil
}

// NewConfigService creates a config service backed by the OS file system.
// An empty path selects <config dir>/lens/config.toml.
func NewConfigService(path string) (ConfigService, error) {
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "config.toml")
	}
	return NewConfigServiceWithFs(afero.NewOsFs(), path), nil
}

// NewConfigServiceWithFs creates a config service on the given file system
func NewConfigServiceWithFs(fs afero.Fs, path string) ConfigService {
	return &configService{fs: fs, filePath: path}
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults when it doesn't exist
func (cs *configService) Load() (*Config, error) {
	if _, err := cs.fs.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := afero.ReadFile(cs.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so omitted keys keep their default values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := cs.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := afero.WriteFile(cs.fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Search: SearchSettings{
			Binary: "rg",
			Hidden: true,
		},
		UI: UISettings{
			TickInterval: Duration(250 * time.Millisecond),
			SyntaxTheme:  "monokai",
		},
	}
}

// normalize replaces zero values that would break the app with defaults
func (c *Config) normalize() {
	defaults := DefaultConfig()
	if c.Search.Binary == "" {
		c.Search.Binary = defaults.Search.Binary
	}
	if c.UI.TickInterval <= 0 {
		c.UI.TickInterval = defaults.UI.TickInterval
	}
	if c.UI.SyntaxTheme == "" {
		c.UI.SyntaxTheme = defaults.UI.SyntaxTheme
	}
}

// ResolveEditor returns the configured editor, falling back to $EDITOR
func (c *Config) ResolveEditor() string {
	if c.Editor != "" {
		return c.Editor
	}
	return os.Getenv("EDITOR")
}

// SessionPath returns the configured session file or the default location
func (c *Config) SessionPath() (string, error) {
	if c.Session.Path != "" {
		return c.Session.Path, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "session.toml"), nil
}

// SearchOptions returns the initial search flags
func (c *Config) SearchOptions() domain.SearchOptions {
	return domain.SearchOptions{
		Hidden:        c.Search.Hidden,
		CaseSensitive: c.Search.CaseSensitive,
		WholeWord:     c.Search.WholeWord,
		FixedStrings:  c.Search.FixedStrings,
	}
}
