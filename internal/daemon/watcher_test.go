package daemon

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func waitForTrigger(t *testing.T, w *Watcher, timeout time.Duration) bool {
	t.Helper()
	select {
	case <-w.Trigger():
		return true
	case <-time.After(timeout):
		return false
	}
}

func TestWatcher_FiresOnceAfterQuietPeriod(t *testing.T) {
	root := t.TempDir()
	w, err := NewWatcher(root, 200*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	// A burst of writes should collapse into a single trigger.
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(root, "Foo.html"), []byte("content"), 0o644))
		time.Sleep(20 * time.Millisecond)
	}

	require.True(t, waitForTrigger(t, w, 3*time.Second), "expected a debounced trigger")
	require.False(t, waitForTrigger(t, w, 400*time.Millisecond), "expected no second trigger without new events")
}

func TestWatcher_PicksUpNewSubdirectories(t *testing.T) {
	root := t.TempDir()
	w, err := NewWatcher(root, 100*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	sub := filepath.Join(root, "api")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.True(t, waitForTrigger(t, w, 2*time.Second))

	// Writes inside the new directory must also trigger.
	require.NoError(t, os.WriteFile(filepath.Join(sub, "Bar.html"), []byte("content"), 0o644))
	require.True(t, waitForTrigger(t, w, 2*time.Second))
}
