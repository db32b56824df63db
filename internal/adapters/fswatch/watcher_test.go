package fswatch

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_NotifiesOnJSONChange(t *testing.T) {
	dir := t.TempDir()
	w, err := New()
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	var mu sync.Mutex
	var paths []string
	require.NoError(t, w.Watch(dir, func(path string) {
		mu.Lock()
		defer mu.Unlock()
		paths = append(paths, path)
	}))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "listings.json"), []byte("[]"), 0644))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(paths) > 0
	}, 3*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "listings.json", filepath.Base(paths[0]))
}

func TestWatch_IgnoresNonJSON(t *testing.T) {
	dir := t.TempDir()
	w, err := New()
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	var mu sync.Mutex
	notified := 0
	require.NoError(t, w.Watch(dir, func(string) {
		mu.Lock()
		defer mu.Unlock()
		notified++
	}))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	time.Sleep(300 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, notified)
}

func TestWatch_MissingDir(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	assert.Error(t, w.Watch(filepath.Join(t.TempDir(), "nope"), func(string) {}))
}

func TestClose_Idempotent(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}
