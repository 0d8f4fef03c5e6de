package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/fsnotify.v1"
)

// settleDelay is how long the watcher waits after a file event before
// converting, so partially written downloads are not picked up mid-copy.
const settleDelay = 500 * time.Millisecond

// Watch monitors the input directory and converts new or rewritten source
// documents as they appear. It blocks until the context is cancelled.
func (runner *Runner) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(runner.options.InputDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", runner.options.InputDir, err)
	}

	runner.logger.Info("watching for documents", "dir", runner.options.InputDir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isSourceFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(settleDelay):
			}

			if result, err := runner.ProcessFile(event.Name); err != nil {
				runner.logger.Error("conversion failed", "source", event.Name, "error", err)
			} else {
				runner.logger.Info("converted document", "source", event.Name, "xml", result.XMLPath)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			runner.logger.Warn("watcher error", "error", err)
		}
	}
}

// isSourceFile reports whether a path names a watchable document. Only PDFs
// are watched: processing stages a .txt next to the source, and reacting to
// those writes would reconvert every document twice.
func isSourceFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}
