package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchFile bool

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Evaluate a program",
	Long: `Scan, parse, resolve and evaluate a program, printing the value of every
top-level expression.

With --watch the program is evaluated again whenever the file changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVarP(&watchFile, "watch", "w", false, "re-run when the file changes")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	path := args[0]
	if !watchFile {
		return runFile(path, cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	rerun := func() {
		if err := runFile(path, cmd.OutOrStdout(), cmd.ErrOrStderr()); err != nil {
			var exit *exitError
			if !errors.As(err, &exit) {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
		}
	}
	rerun()
	return watch(ctx, path, cfg.WatchDebounce, cmd.ErrOrStderr(), rerun)
}

// runFile evaluates the file at path in a fresh session.
func runFile(path string, out, errOut io.Writer) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	s := newSession(out, errOut, cfg.ShowTokens)
	s.run(string(src))
	return s.status()
}

// watch calls rerun after path was written, once per burst of events that
// are less than debounce apart. It returns when ctx is done.
func watch(ctx context.Context, path string, debounce time.Duration, errOut io.Writer, rerun func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Editors often replace files instead of writing them, so the directory
	// is watched rather than the file itself.
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			fmt.Fprintf(errOut, "--- %s changed ---\n", path)
			rerun()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(errOut, err)
		}
	}
}
