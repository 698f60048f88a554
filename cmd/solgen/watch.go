package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const debounce = 100 * time.Millisecond

func newWatchCmd() *cobra.Command {
	var file, out string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-print a contract whenever its options document changes",
		Example: `  solgen watch -f token.yaml --out MyToken.sol`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := &watcher{path: file, out: out, stdout: cmd.OutOrStdout(), debounce: debounce}
			return w.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Options document")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// watcher re-renders an options document on change. Rejected documents are
// logged and the previous output is kept.
type watcher struct {
	path     string
	out      string
	stdout   io.Writer
	debounce time.Duration

	// renders counts successful renders.
	renders int
}

// Run renders once, then on every settled change until ctx is done.
func (w *watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	// Editors replace files on save, so the directory is watched.
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	name := filepath.Clean(w.path)
	w.refresh()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Debug("watch stopped", zap.String("file", w.path))
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != name || event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			logger.Debug("options changed", zap.String("file", event.Name), zap.Stringer("op", event.Op))
			timer.Reset(w.debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		case <-timer.C:
			w.refresh()
		}
	}
}

func (w *watcher) refresh() {
	src, err := render(w.path, nil)
	if err != nil {
		logger.Warn("render failed", zap.String("file", w.path), zap.Error(err))
		return
	}
	if w.out == "" {
		fmt.Fprint(w.stdout, src)
	} else if err := os.WriteFile(w.out, []byte(src), 0o644); err != nil {
		logger.Warn("write failed", zap.String("file", w.out), zap.Error(err))
		return
	}
	w.renders++
	logger.Info("contract printed", zap.String("file", w.path), zap.Int("renders", w.renders))
}
