package schema

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ReportsSchemaChanges(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.yaml", "categories:\n  - name: A\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan []string, 4)
	done := make(chan error, 1)

	go func() {
		done <- Watch(ctx, []string{dir}, 20*time.Millisecond, func(changed []string) {
			changes <- changed
		})
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	writeFile(t, dir, "notes.txt", "ignored")
	writeFile(t, dir, "a.yaml", "categories:\n  - name: B\n")

	select {
	case changed := <-changes:
		assert.Equal(t, []string{path}, changed)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatch_MissingPath(t *testing.T) {
	err := Watch(context.Background(), []string{filepath.Join(t.TempDir(), "missing")}, 0, func([]string) {})
	require.Error(t, err)
}
