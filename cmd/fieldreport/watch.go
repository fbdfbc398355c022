package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	fsnotify "github.com/fsnotify/fsnotify"
)

// settle collapses the burst of events an editor save produces.
const settle = 200 * time.Millisecond

// watch regenerates the report on changes to the document or config file
// until ctx is done. Parent directories are watched so files replaced on
// save keep producing events.
func watch(ctx context.Context, o options, logger *slog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Close()

	targets := map[string]bool{}
	for _, p := range []string{o.in, o.config} {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = true
		if err := w.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
		}
	}
	logger.Info("watching for changes", "document", o.in, "config", o.config)

	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(ev, targets) {
				continue
			}
			logger.Debug("change", "file", ev.Name, "op", ev.Op.String())
			timer.Reset(settle)

		case <-timer.C:
			if err := generate(o, nil, logger); err != nil {
				logger.Error("generation failed", "error", err)
			}
		}
	}
}

func relevant(ev fsnotify.Event, targets map[string]bool) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return targets[abs]
}
