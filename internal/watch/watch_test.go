package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/seqjoin/internal/testutil"
)

func TestFile_RunsOnStartAndOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("first"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seen := make(chan string, 16)
	done := make(chan error, 1)
	go func() {
		done <- File(ctx, path, 20*time.Millisecond, func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			seen <- string(data)
			return nil
		}, testutil.NewTestLogger(t))
	}()

	select {
	case got := <-seen:
		assert.Equal(t, "first", got)
	case <-time.After(5 * time.Second):
		t.Fatal("callback did not run on start")
	}

	// Give the watcher a moment to register before modifying the file.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("second"), 0o600))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case got := <-seen:
			if got == "second" {
				cancel()
				select {
				case err := <-done:
					assert.NoError(t, err)
				case <-time.After(5 * time.Second):
					t.Fatal("watch did not stop after cancel")
				}
				return
			}
		case <-deadline:
			t.Fatal("callback did not run after change")
		}
	}
}

func TestFile_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 16)
	go func() {
		_ = File(ctx, path, 20*time.Millisecond, func() error {
			calls <- struct{}{}
			return nil
		}, nil)
	}()

	<-calls
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("y"), 0o600))

	select {
	case <-calls:
		t.Fatal("callback ran for an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestFile_CallbackErrorDoesNotStopWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	logger, logs := testutil.NewCaptureLogger()
	err := File(ctx, path, 10*time.Millisecond, func() error {
		return errors.New("boom")
	}, logger)
	assert.NoError(t, err)
	assert.Contains(t, logs.String(), "watch callback failed")
	assert.Contains(t, logs.String(), "error=boom")
}

func TestFile_MissingDirectory(t *testing.T) {
	err := File(context.Background(), filepath.Join(t.TempDir(), "nope", "words.txt"), 0, func() error { return nil }, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}
