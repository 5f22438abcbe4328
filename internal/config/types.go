package config

import (
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/sidebarkit/internal/sidebar"
	"github.com/alexisbeaulieu97/sidebarkit/internal/viewport"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config represents the full sidebarkit configuration document.
type Config struct {
	Sidebar SidebarConfig `yaml:"sidebar"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

// SidebarConfig holds the provider defaults and the width style contract.
type SidebarConfig struct {
	DefaultOpen      bool   `yaml:"default_open"`
	Side             string `yaml:"side" validate:"required,oneof=left right"`
	Variant          string `yaml:"variant" validate:"required,oneof=sidebar floating inset"`
	Collapsible      string `yaml:"collapsible" validate:"required,oneof=offcanvas icon none"`
	Width            string `yaml:"width" validate:"required,rem"`
	WidthMobile      string `yaml:"width_mobile" validate:"required,rem"`
	WidthIcon        string `yaml:"width_icon" validate:"required,rem"`
	MobileBreakpoint int    `yaml:"mobile_breakpoint" validate:"min=1,max=1000"`
	Shortcut         string `yaml:"shortcut" validate:"required,shortcut_key"`
}

// StorageConfig selects where the sidebar_state cookie lives.
type StorageConfig struct {
	Backend string `yaml:"backend" validate:"required,oneof=file sqlite memory"`
	Path    string `yaml:"path,omitempty"`
	Watch   bool   `yaml:"watch"`
}

// LoggingConfig controls the log file written while the TUI owns the screen.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"required,oneof=debug info warn error"`
	File  string `yaml:"file,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Sidebar: SidebarConfig{
			DefaultOpen:      true,
			Side:             "left",
			Variant:          "sidebar",
			Collapsible:      "offcanvas",
			Width:            sidebar.Width,
			WidthMobile:      sidebar.WidthMobile,
			WidthIcon:        sidebar.WidthIcon,
			MobileBreakpoint: viewport.DefaultBreakpoint,
			Shortcut:         sidebar.DefaultShortcut,
		},
		Storage: StorageConfig{
			Backend: BackendFile,
			Watch:   true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultDir is the per-user directory holding state and logs.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".sidebarkit"), nil
}

// DefaultConfigPath is where the CLI looks for a config file.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// StoragePath returns the configured jar path, or the backend's default under
// DefaultDir. The memory backend has no path.
func (s StorageConfig) StoragePath() (string, error) {
	if s.Backend == BackendMemory {
		return "", nil
	}
	if s.Path != "" {
		return s.Path, nil
	}
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	if s.Backend == BackendSQLite {
		return filepath.Join(dir, "cookies.db"), nil
	}
	return filepath.Join(dir, "cookies.json"), nil
}

// LogPath returns the configured log file or the default under DefaultDir.
func (l LoggingConfig) LogPath() (string, error) {
	if l.File != "" {
		return l.File, nil
	}
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sidebarkit.log"), nil
}

// StyleVars maps the configured widths onto the provider's custom properties.
func (s SidebarConfig) StyleVars() map[string]string {
	return map[string]string{
		sidebar.WidthVar:       s.Width,
		sidebar.WidthIconVar:   s.WidthIcon,
		sidebar.WidthMobileVar: s.WidthMobile,
	}
}
