// Package ioblob implements blob storage for raw submission
// archives: a filesystem store for self-contained deployments and an
// HTTP object-gateway client for shared ones. The blob key is part of
// the submission record, so both stores must accept keys with path
// separators.
package ioblob

import (
	"context"
	"os"
	"path/filepath"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/biohub"
)

type fsStore struct {
	root string
}

// NewFSStore creates a filesystem-backed blob store rooted at dir.
func NewFSStore(dir string) (biohub.BlobStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, CreateDirError(dir, err)
	}
	return &fsStore{root: dir}, nil
}

// Put stores data under key. Metadata is dropped; the filesystem
// store keeps only the bytes, the submission record carries the rest.
func (s *fsStore) Put(
	ctx context.Context,
	key string,
	data []byte,
	metadata map[string]string,
) error {
	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return PutError(key, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return PutError(key, err)
	}
	return nil
}

// Get retrieves the data stored under key.
func (s *fsStore) Get(
	ctx context.Context,
	key string,
) ([]byte, error) {
	path := filepath.Join(s.root, filepath.FromSlash(key))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, GetError(key, err)
	}
	return data, nil
}
