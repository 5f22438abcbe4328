package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/sidebarkit/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseConfigOverlaysDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
sidebar:
  default_open: false
  side: right
  collapsible: icon
storage:
  backend: sqlite
  path: /tmp/cookies.db
logging:
  level: debug
`)

	cfg, err := ParseConfig(path)
	require.NoError(t, err)

	assert.False(t, cfg.Sidebar.DefaultOpen)
	assert.Equal(t, "right", cfg.Sidebar.Side)
	assert.Equal(t, "icon", cfg.Sidebar.Collapsible)
	assert.Equal(t, "sidebar", cfg.Sidebar.Variant, "unset keys keep defaults")
	assert.Equal(t, "16rem", cfg.Sidebar.Width)
	assert.Equal(t, "18rem", cfg.Sidebar.WidthMobile)
	assert.Equal(t, "3rem", cfg.Sidebar.WidthIcon)
	assert.Equal(t, "b", cfg.Sidebar.Shortcut)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "debug", cfg.Logging.Level)

	storagePath, err := cfg.Storage.StoragePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cookies.db", storagePath)
}

func TestParseConfigRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"side", "sidebar:\n  side: top\n", "sidebar.side"},
		{"variant", "sidebar:\n  variant: modal\n", "sidebar.variant"},
		{"collapsible", "sidebar:\n  collapsible: sometimes\n", "sidebar.collapsible"},
		{"width", "sidebar:\n  width: 200px\n", "sidebar.width"},
		{"shortcut", "sidebar:\n  shortcut: ctrl+b\n", "sidebar.shortcut"},
		{"shortcut quit chord", "sidebar:\n  shortcut: c\n", "sidebar.shortcut"},
		{"shortcut tab chord", "sidebar:\n  shortcut: i\n", "sidebar.shortcut"},
		{"shortcut enter chord", "sidebar:\n  shortcut: m\n", "sidebar.shortcut"},
		{"shortcut digit", "sidebar:\n  shortcut: \"1\"\n", "sidebar.shortcut"},
		{"breakpoint", "sidebar:\n  mobile_breakpoint: 0\n", "sidebar.mobile_breakpoint"},
		{"backend", "storage:\n  backend: redis\n", "storage.backend"},
		{"level", "logging:\n  level: loud\n", "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig(writeConfig(t, tt.body))

			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestParseConfigReportsSyntaxLine(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "sidebar:\n  side: left\n   variant: [\n")
	_, err := ParseConfig(path)

	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
	assert.Greater(t, parseErr.Line, 0)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestMemoryBackendDisablesWatch(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig(writeConfig(t, "storage:\n  backend: memory\n  watch: true\n"))
	require.NoError(t, err)
	assert.False(t, cfg.Storage.Watch)

	path, err := cfg.Storage.StoragePath()
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestSidebarStyleVars(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Sidebar.Width = "20rem"
	vars := cfg.Sidebar.StyleVars()
	assert.Equal(t, "20rem", vars["--sidebar-width"])
	assert.Equal(t, "3rem", vars["--sidebar-width-icon"])
	assert.Equal(t, "18rem", vars["--sidebar-width-mobile"])
}

func TestGetValidatorIsShared(t *testing.T) {
	t.Parallel()

	assert.Same(t, GetValidator(), GetValidator())
}

func TestShortcutAcceptsReportableLetters(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"a", "b", "d", "h", "j", "l", "n", "s", "z"} {
		cfg, err := ParseConfig(writeConfig(t, "sidebar:\n  shortcut: "+key+"\n"))
		require.NoError(t, err, key)
		assert.Equal(t, key, cfg.Sidebar.Shortcut)
	}
}
