package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	calls [][]byte
	err   error
}

func (r *recorder) handle(b []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, append([]byte(nil), b...))
	return r.err
}

func (r *recorder) snapshot() [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]byte(nil), r.calls...)
}

func (r *recorder) last() string {
	calls := r.snapshot()
	if len(calls) == 0 {
		return ""
	}
	return string(calls[len(calls)-1])
}

func start(t *testing.T, path string, rec *recorder) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	w := New(path, rec.handle, WithDelay(20*time.Millisecond))
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case <-w.Ready():
	case err := <-done:
		t.Fatalf("Run() returned early: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not become ready")
	}

	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tx.hex")
	require.NoError(t, os.WriteFile(path, []byte("00"), 0644))

	rec := &recorder{}
	start(t, path, rec)

	require.NoError(t, os.WriteFile(path, []byte("0xdeadbeef"), 0644))

	assert.Eventually(t, func() bool { return rec.last() == "0xdeadbeef" },
		2*time.Second, 10*time.Millisecond)
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tx.hex")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	rec := &recorder{}
	start(t, path, rec)

	for _, s := range []string{"01", "0102", "010203"} {
		require.NoError(t, os.WriteFile(path, []byte(s), 0644))
	}

	assert.Eventually(t, func() bool { return rec.last() == "010203" },
		2*time.Second, 10*time.Millisecond)
	assert.Less(t, len(rec.snapshot()), 3)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tx.hex")
	require.NoError(t, os.WriteFile(path, []byte("00"), 0644))

	rec := &recorder{}
	start(t, path, rec)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.hex"), []byte("ff"), 0644))

	time.Sleep(200 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestWatcher_HandlerErrorIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tx.hex")
	require.NoError(t, os.WriteFile(path, []byte("00"), 0644))

	rec := &recorder{err: errors.New("odd length")}
	start(t, path, rec)

	require.NoError(t, os.WriteFile(path, []byte("abc"), 0644))
	assert.Eventually(t, func() bool { return rec.last() == "abc" },
		2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("abcd"), 0644))
	assert.Eventually(t, func() bool { return rec.last() == "abcd" },
		2*time.Second, 10*time.Millisecond)
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing", "tx.hex"), func([]byte) error { return nil })
	assert.Error(t, w.Run(context.Background()))
}
