package dataset

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zest-labs/zest/internal/testutil"
)

func TestWatch_ReloadsOnSourceChange(t *testing.T) {
	path := writeTempCSV(t, sampleCSV)
	src := Source{CSVPath: path}
	store := NewStore(src, testutil.NewTestLogger(t))

	_, err := store.Get(context.Background())
	require.NoError(t, err)
	firstGen := store.Generation()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan struct{}, 1)
	watchDone := make(chan error, 1)
	go func() {
		watchDone <- Watch(ctx, store, src, testutil.NewTestLogger(t), func() {
			reloaded <- struct{}{}
		})
	}()

	// Give the watcher a moment to register the directory.
	time.Sleep(200 * time.Millisecond)

	extended := sampleCSV + "HSR,Quick Bites,No,No,3.9,250\n"
	require.NoError(t, os.WriteFile(path, []byte(extended), 0600))

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not trigger a reload")
	}

	assert.NotEqual(t, firstGen, store.Generation())
	ds, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, ds.Len())

	cancel()
	select {
	case err := <-watchDone:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on context cancel")
	}
}

func TestWatch_IgnoresUnrelatedFiles(t *testing.T) {
	path := writeTempCSV(t, sampleCSV)
	src := Source{CSVPath: path}
	store := NewStore(src, testutil.NewTestLogger(t))

	_, err := store.Get(context.Background())
	require.NoError(t, err)
	gen := store.Generation()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan struct{}, 1)
	go func() {
		_ = Watch(ctx, store, src, testutil.NewTestLogger(t), func() {
			reloaded <- struct{}{}
		})
	}()

	time.Sleep(200 * time.Millisecond)

	// A sibling file in the watched directory must not trigger a reload.
	sibling := path + ".bak"
	require.NoError(t, os.WriteFile(sibling, []byte("noise"), 0600))

	select {
	case <-reloaded:
		t.Fatal("unrelated file change triggered a reload")
	case <-time.After(500 * time.Millisecond):
	}
	assert.Equal(t, gen, store.Generation())
}
