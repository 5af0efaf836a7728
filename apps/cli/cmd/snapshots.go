package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/affirm/packages/output"
	"github.com/abdul-hamid-achik/affirm/packages/snapshot"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// WatchDebounceDelay is the quiet period after a snapshot file change
// before the listing is printed again.
const WatchDebounceDelay = 300 * time.Millisecond

var (
	snapshotDirFlag string
	watchFlag       bool
	forceClean      bool
)

var snapshotsCmd = &cobra.Command{
	Use:     "snapshots",
	Aliases: []string{"snap"},
	Short:   "Manage snapshot files",
	Long: `Manage the files written by MatchesSnapshot. The directory comes
from --dir, or snapshotDir in the config file, or AFFIRM_SNAPSHOT_DIR.
Set AFFIRM_UPDATE_SNAPSHOTS=1 when running go test to rewrite them.`,
}

var snapshotsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List snapshot files and their keys",
	Long: `List snapshot files and their keys. With -v each key shows a
summary of its stored value.

Examples:
  affirm snapshots list
  affirm snapshots list -v --dir testdata/__snapshots__
  affirm snapshots list --watch`,
	Args: cobra.NoArgs,
	RunE: snapshotsListCommand,
}

var snapshotsCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove snapshot files",
	Long: `Remove every snapshot file in the snapshot directory. Without
--force the files are only listed.`,
	Args: cobra.NoArgs,
	RunE: snapshotsCleanCommand,
}

func init() {
	snapshotsCmd.PersistentFlags().StringVarP(&snapshotDirFlag, "dir", "d", "", "Snapshot directory (default: snapshotDir from config)")
	snapshotsListCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch the directory and list again on changes")
	snapshotsCleanCmd.Flags().BoolVarP(&forceClean, "force", "f", false, "Remove the files")

	snapshotsCmd.AddCommand(snapshotsListCmd)
	snapshotsCmd.AddCommand(snapshotsCleanCmd)
}

func resolveSnapshotDir(cmd *cobra.Command) (string, *output.ConsoleFormatter, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return "", nil, err
	}
	dir := snapshotDirFlag
	if dir == "" {
		dir = cfg.SnapshotDir
	}
	return dir, newFormatter(cmd, cfg), nil
}

func snapshotsListCommand(cmd *cobra.Command, args []string) error {
	dir, formatter, err := resolveSnapshotDir(cmd)
	if err != nil {
		return err
	}

	list := func() error {
		files, err := snapshot.List(dir)
		if err != nil {
			return err
		}
		formatter.FormatSnapshots(dir, files)
		return nil
	}
	if err := list(); err != nil {
		return err
	}

	if !watchFlag {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching %s for changes... (press Ctrl+C to stop)\n\n", dir)
	return watchSnapshots(ctx, dir, func(name string) {
		fmt.Fprintf(cmd.OutOrStdout(), "\n\nSnapshot changed: %s\n", name)
		if err := list(); err != nil {
			formatter.FormatError(err)
		}
	})
}

// watchSnapshots calls onChange with the file name after snapshot files in
// dir settle, until ctx is done. The directory is created when missing.
func watchSnapshots(ctx context.Context, dir string, onChange func(name string)) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	// Debounce rapid changes; onChange runs on this goroutine so nothing
	// fires after return.
	debounceTimer := time.NewTimer(WatchDebounceDelay)
	debounceTimer.Stop()
	defer debounceTimer.Stop()
	var (
		debounce <-chan time.Time
		changed  string
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-debounce:
			debounce = nil
			onChange(changed)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, snapshot.Ext) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			changed = event.Name
			debounceTimer.Reset(WatchDebounceDelay)
			debounce = debounceTimer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}

func snapshotsCleanCommand(cmd *cobra.Command, args []string) error {
	dir, formatter, err := resolveSnapshotDir(cmd)
	if err != nil {
		return err
	}

	if !forceClean {
		files, err := snapshot.List(dir)
		if err != nil {
			return err
		}
		formatter.FormatSnapshots(dir, files)
		if len(files) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Run with --force to remove %d files.\n", len(files))
		}
		return nil
	}

	removed, err := snapshot.Clean(dir)
	if err != nil {
		return fmt.Errorf("removed %d files before failing: %w", removed, err)
	}
	formatter.FormatCleaned(dir, removed)
	return nil
}
