package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const (
	// FilePermissions is the default permission mode for regular files
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories
	DirPermissions = 0755
)

var (
	// ConfigDir is the global configuration directory (~/.jot)
	ConfigDir string

	// ConfigFile is the YAML configuration file
	ConfigFile string

	// KeybindsFile is the optional keybinding override file
	KeybindsFile string

	// DatabasePath is the SQLite database file for note activity history
	DatabasePath string
)

// Config holds the settings the editor reads once at startup.
type Config struct {
	// Directory is where notes are stored as plain .txt files.
	Directory string `yaml:"directory"`

	// Tabstop is the number of cells one tab occupies. Fixed for a run.
	Tabstop int `yaml:"tabstop"`

	// FillChar pads terminal rows below the end of a short note.
	FillChar string `yaml:"fill_char"`

	// CommandTitle is the prompt shown before the command buffer.
	CommandTitle string `yaml:"command_title"`
}

// Default returns the configuration written on first run.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Directory:    filepath.Join(home, ".jot", "notes"),
		Tabstop:      4,
		FillChar:     "~",
		CommandTitle: "cmd: ",
	}
}

// Initialize sets up the configuration directory and loads the config file,
// creating it with defaults if it doesn't exist. It returns the loaded
// configuration after validation; any error here is fatal to startup.
func Initialize() (Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("failed to get home directory: %w", err)
	}

	ConfigDir = filepath.Join(homeDir, ".jot")
	ConfigFile = filepath.Join(ConfigDir, "config.yaml")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.yaml")
	DatabasePath = filepath.Join(ConfigDir, "jot.db")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return Config{}, fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	if _, err := os.Stat(ConfigFile); os.IsNotExist(err) {
		if err := write(Default(), ConfigFile); err != nil {
			return Config{}, err
		}
	}

	cfg, err := Load(ConfigFile)
	if err != nil {
		return Config{}, err
	}

	if err := os.MkdirAll(cfg.Directory, DirPermissions); err != nil {
		return Config{}, fmt.Errorf("failed to create notes directory %s: %w", cfg.Directory, err)
	}

	return cfg, nil
}

// Load reads and validates a configuration file. Missing fields fall back to
// their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	// Expand tilde so the directory works regardless of shell.
	if strings.HasPrefix(cfg.Directory, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Directory = filepath.Join(homeDir, cfg.Directory[2:])
	}

	return cfg, nil
}

// Validate checks the constraints the editor relies on.
func (c Config) Validate() error {
	if c.Directory == "" {
		return fmt.Errorf("directory must not be empty")
	}
	if c.Tabstop <= 0 {
		return fmt.Errorf("tabstop must be positive, got %d", c.Tabstop)
	}
	if utf8.RuneCountInString(c.FillChar) != 1 {
		return fmt.Errorf("fill_char must be a single character, got %q", c.FillChar)
	}
	return nil
}

func write(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, FilePermissions); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	return nil
}
