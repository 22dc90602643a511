package schema

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/samber/lo"
)

// DefaultDebounce is the quiet period Watch waits for before reporting.
const DefaultDebounce = 200 * time.Millisecond

// Watch calls onChange with the changed schema files whenever the sources
// named by paths change. Bursts of events are batched until no event has
// arrived for debounce. Watch blocks until ctx is done, then returns nil.
func Watch(ctx context.Context, paths []string, debounce time.Duration, onChange func(changed []string)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating schema watcher: %w", err)
	}
	defer watcher.Close()

	explicit := make(map[string]bool)

	for _, p := range paths {
		dirs, file, err := watchTargets(p)
		if err != nil {
			return err
		}

		if file != "" {
			explicit[file] = true
		}

		for _, dir := range dirs {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("watching %s: %w", dir, err)
			}
		}
	}

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending []string
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			name := filepath.Clean(event.Name)

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(name); err == nil && info.IsDir() {
					_ = watcher.Add(name)
					continue
				}
			}

			if !explicit[name] && !isSchemaFile(name) {
				continue
			}

			pending = append(pending, name)

			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}

			timerC = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			return fmt.Errorf("watching schema sources: %w", err)

		case <-timerC:
			timerC = nil
			changed := lo.Uniq(pending)
			pending = nil

			onChange(changed)
		}
	}
}

// watchTargets returns the directories to watch for p. A file is watched
// through its parent directory so that editors replacing it are noticed.
func watchTargets(p string) (dirs []string, file string, err error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, "", fmt.Errorf("schema path %s: %w", p, err)
	}

	if !info.IsDir() {
		clean := filepath.Clean(p)
		return []string{filepath.Dir(clean)}, clean, nil
	}

	err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			dirs = append(dirs, filepath.Clean(path))
		}

		return nil
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to walk schema directory %s: %w", p, err)
	}

	return dirs, "", nil
}
