package levels

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsLevelChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, dir, "ignored.md", "x")
	writeFile(t, dir, "level.txt", "11\n")

	select {
	case name := <-w.Events:
		assert.Equal(t, "level.txt", filepath.Base(name))
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for level.txt")
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	// Events is closed once the watcher goroutine exits.
	select {
	case _, ok := <-w.Events:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("Events not closed")
	}
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestIsPackFile(t *testing.T) {
	assert.True(t, isPackFile("/a/b/level.TXT"))
	assert.True(t, isPackFile("pack.yaml"))
	assert.False(t, isPackFile("other.yaml"))
}
