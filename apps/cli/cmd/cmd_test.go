package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/abdul-hamid-achik/affirm/packages/core/config"
	"github.com/abdul-hamid-achik/affirm/packages/snapshot"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the root command in dir and returns its output.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("NO_COLOR", "1")
	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(c *cobra.Command) {
	configFlag, noColorFlag, verboseFlag = "", false, 0
	showJSON, showYAML = false, false
	forceInit, jsonInit = false, false
	snapshotDirFlag, watchFlag, forceClean = "", false, false
	shortVersion = false

	reset := func(f *pflag.Flag) { f.Changed = false }
	var walk func(*cobra.Command)
	walk = func(c *cobra.Command) {
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(c)
}

func writeSnapshots(t *testing.T, dir, suite string, values map[string]any) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	data, err := json.Marshal(values)
	require.NoError(t, err)
	path := filepath.Join(dir, suite+snapshot.Ext)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := run(t, t.TempDir(), "version", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "affirm dev")
	assert.Contains(t, out, "Built: unknown")
	assert.Contains(t, out, "Go:    go")

	out, err = run(t, t.TempDir(), "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, err := run(t, t.TempDir(), "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "affirm")
		})
	}

	_, err := run(t, t.TempDir(), "completion", "tcsh")
	assert.Error(t, err)
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created: .affirm.yaml")

	data, err := os.ReadFile(filepath.Join(dir, ".affirm.yaml"))
	require.NoError(t, err)
	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, "standard", cfg.Representation)
	assert.Equal(t, snapshot.DirName, cfg.SnapshotDir)

	_, err = run(t, dir, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use --force to overwrite")
	assert.Equal(t, ExitUsageError, exitCode(err))

	_, err = run(t, dir, "init", "--force")
	assert.NoError(t, err)
}

func TestInit_JSON(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "service")

	_, err := run(t, dir, "init", "--json", target)
	require.NoError(t, err)

	cfg, err := config.LoadConfig(filepath.Join(target, ".affirm.json"))
	require.NoError(t, err)
	assert.True(t, cfg.IsDefault())
}

func TestConfigShow(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".affirm.yaml"), []byte("representation: verbose\nsnapshotDir: snaps\n"), 0644))

	out, err := run(t, dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Config: .affirm.yaml")
	assert.Regexp(t, `representation\s+verbose`, out)
	assert.Regexp(t, `noColor\s+true`, out)

	out, err = run(t, dir, "config", "show", "--json")
	require.NoError(t, err)
	var cfg config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "snaps", cfg.SnapshotDir)

	out, err = run(t, dir, "config", "show", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "representation: verbose")

	t.Run("env override", func(t *testing.T) {
		t.Setenv(config.EnvSnapshotDir, "other")
		out, err := run(t, dir, "config", "show", "--json")
		require.NoError(t, err)
		assert.Contains(t, out, `"snapshotDir": "other"`)
	})

	t.Run("defaults", func(t *testing.T) {
		out, err := run(t, t.TempDir(), "config", "show")
		require.NoError(t, err)
		assert.Contains(t, out, "Config: defaults")
	})

	t.Run("invalid", func(t *testing.T) {
		bad := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(bad, ".affirm.yaml"), []byte("representation: fancy\n"), 0644))
		_, err := run(t, bad, "config", "show")
		require.Error(t, err)
		assert.Equal(t, ExitConfigError, exitCode(err))
	})
}

func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(good, []byte("maxElementsForPrinting: 10\n"), 0644))
	require.NoError(t, os.WriteFile(bad, []byte(`{"timeLayouts": [" "]}`), 0644))

	out, err := run(t, dir, "config", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ "+good)

	out, err = run(t, dir, "config", "validate", good, bad)
	require.Error(t, err)
	assert.Equal(t, ExitConfigError, exitCode(err))
	assert.Contains(t, out, "timeLayouts[0] is empty")
	assert.Contains(t, err.Error(), "1 of 2 config files are invalid")

	_, err = run(t, t.TempDir(), "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no config file found")
}

func TestSnapshotsList(t *testing.T) {
	dir := t.TempDir()
	writeSnapshots(t, filepath.Join(dir, snapshot.DirName), "TestUsers", map[string]any{"users::ada": map[string]any{"name": "Ada"}})

	out, err := run(t, dir, "snapshots", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "TestUsers")
	assert.Contains(t, out, "users::ada")
	assert.Contains(t, out, "Snapshots: 1 in 1 files")

	out, err = run(t, dir, "snap", "list", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "users::ada = {object with 1 keys}")

	out, err = run(t, dir, "snapshots", "list", "--dir", "missing")
	require.NoError(t, err)
	assert.Contains(t, out, "no snapshots in missing")
}

func TestSnapshotsClean(t *testing.T) {
	dir := t.TempDir()
	snaps := filepath.Join(dir, "snaps")
	path := writeSnapshots(t, snaps, "TestA", map[string]any{"a": 1})
	writeSnapshots(t, snaps, "TestB", map[string]any{"b": 2})
	other := filepath.Join(snaps, "README.md")
	require.NoError(t, os.WriteFile(other, []byte("keep"), 0644))

	out, err := run(t, dir, "snapshots", "clean", "--dir", "snaps")
	require.NoError(t, err)
	assert.Contains(t, out, "Run with --force to remove 2 files.")
	assert.FileExists(t, path)

	out, err = run(t, dir, "snapshots", "clean", "--dir", "snaps", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "removed 2 snapshot files")
	assert.NoFileExists(t, path)
	assert.FileExists(t, other)
}

func TestWatchSnapshots(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "snaps")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- watchSnapshots(ctx, dir, func(name string) {
			select {
			case changed <- name:
			default:
			}
		})
	}()

	path := filepath.Join(dir, "TestWatch"+snapshot.Ext)
	assert.Eventually(t, func() bool {
		// The watcher may not be registered yet; rewrite until it reports.
		if err := os.MkdirAll(dir, 0755); err != nil {
			return false
		}
		if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0644); err != nil {
			return false
		}
		if err := os.WriteFile(path, []byte(`{"k": 1}`), 0644); err != nil {
			return false
		}
		select {
		case name := <-changed:
			return name == path
		case <-time.After(2 * WatchDebounceDelay):
			return false
		}
	}, 10*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchSnapshots_NoCallbackAfterReturn(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watchSnapshots(ctx, dir, func(string) { calls.Add(1) })
	}()

	// Changes inside the debounce window, then stop before it elapses.
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "TestStop"+snapshot.Ext), []byte(`{}`), 0644))
		time.Sleep(10 * time.Millisecond)
	}
	cancel()
	require.NoError(t, <-done)

	after := calls.Load()
	time.Sleep(2 * WatchDebounceDelay)
	assert.Equal(t, after, calls.Load())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, exitCode(nil))
	assert.Equal(t, ExitFailure, exitCode(errors.New("boom")))

	err := withExitCode(ExitConfigError, errors.New("bad"))
	assert.Equal(t, ExitConfigError, exitCode(err))
	assert.Equal(t, "bad", err.Error())
	assert.Nil(t, withExitCode(ExitConfigError, nil))
}
