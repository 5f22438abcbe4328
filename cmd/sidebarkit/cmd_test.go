package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/sidebarkit/internal/sidebar"
	"github.com/alexisbeaulieu97/sidebarkit/internal/ui/components"
)

// execute runs the root command with HOME pointed at home.
func execute(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-03"

	output, err := execute(t, t.TempDir(), "version")
	require.NoError(t, err)
	require.Contains(t, output, "sidebarkit 1.2.3 (go")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-10-03")

	output, err = execute(t, t.TempDir(), "version", "--short")
	require.NoError(t, err)
	require.Equal(t, "1.2.3\n", output)
}

func TestStateRoundTripFileBackend(t *testing.T) {
	home := t.TempDir()
	stateFile := filepath.Join(home, "state", "cookies.json")

	output, err := execute(t, home, "state", "get", "--state-file", stateFile)
	require.NoError(t, err)
	require.Equal(t, "unset (default true)\n", output)

	output, err = execute(t, home, "state", "set", "false", "--state-file", stateFile)
	require.NoError(t, err)
	require.Equal(t, "sidebar_state=false; path=/; max-age=604800\n", output)

	output, err = execute(t, home, "state", "get", "--state-file", stateFile)
	require.NoError(t, err)
	require.Equal(t, "false\n", output)

	_, err = execute(t, home, "state", "clear", "--state-file", stateFile)
	require.NoError(t, err)

	output, err = execute(t, home, "state", "get", "--state-file", stateFile)
	require.NoError(t, err)
	require.Equal(t, "unset (default true)\n", output)
}

func TestStateSQLiteBackend(t *testing.T) {
	home := t.TempDir()
	db := filepath.Join(home, "cookies.db")

	_, err := execute(t, home, "--backend", "sqlite", "--state-file", db, "state", "set", "true")
	require.NoError(t, err)

	output, err := execute(t, home, "--backend", "sqlite", "--state-file", db, "state", "get")
	require.NoError(t, err)
	require.Equal(t, "true\n", output)
}

func TestStateSetRejectsNonBoolean(t *testing.T) {
	_, err := execute(t, t.TempDir(), "state", "set", "TRUE")
	require.ErrorContains(t, err, "state must be true or false")
}

func TestUnknownBackendFailsValidation(t *testing.T) {
	_, err := execute(t, t.TempDir(), "--backend", "redis", "state", "get")
	require.Error(t, err)
}

func TestConfigFileDrivesDefaults(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sidebar:\n  default_open: false\nstorage:\n  backend: memory\n"), 0o644))

	output, err := execute(t, home, "--config", path, "state", "get")
	require.NoError(t, err)
	require.Equal(t, "unset (default false)\n", output)
}

func TestLogFileIsWritten(t *testing.T) {
	home := t.TempDir()

	_, err := execute(t, home, "-v", "--backend", "memory", "state", "get")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(home, ".sidebarkit", "sidebarkit.log"))
	require.NoError(t, err)
	require.Contains(t, string(data), "state jar opened")
	require.Contains(t, string(data), "correlation_id")
}

func TestProviderAndModelFollowConfig(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "config.yaml")
	config := "sidebar:\n  side: right\n  collapsible: icon\n  width: 20rem\n  shortcut: s\nstorage:\n  backend: memory\n"
	require.NoError(t, os.WriteFile(path, []byte(config), 0o644))
	t.Setenv("HOME", home)

	app, err := openApp(context.Background(), &rootFlags{configPath: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	provider := newProvider(app)
	require.Equal(t, "s", provider.Shortcut())
	require.Equal(t, "20rem", provider.StyleVars()[sidebar.WidthVar])

	model := newModel(context.Background(), app, provider)
	t.Cleanup(provider.Unmount)
	require.True(t, provider.Mounted())
	require.Equal(t, components.SideRight, model.Layout().Sidebar().Side())
	require.Equal(t, components.CollapsibleIcon, model.Layout().Sidebar().Collapsible())
}
