package ioblob

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/biohub"
)

var (
	_ biohub.BlobStore = &fsStore{}
	_ biohub.BlobStore = &httpStore{}
)

func TestFSStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	data := []byte("zip bytes")
	key := "biohub/datasets/6bc32bb7/moose.zip"

	err = store.Put(ctx, key, data, map[string]string{"filename": "moose.zip"})
	require.NoError(t, err)

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestFSStoreGetMissing(t *testing.T) {
	ctx := context.Background()
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(ctx, "no/such/key.zip")
	assert.Error(t, err)
}

func TestFSStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFSStore(dir)
	require.NoError(t, err)

	key := "a/b.zip"
	require.NoError(t, store.Put(ctx, key, []byte("v1"), nil))
	require.NoError(t, store.Put(ctx, key, []byte("v2"), nil))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)

	// key path separators become directories under the root
	assert.FileExists(t, filepath.Join(dir, "a", "b.zip"))
}
