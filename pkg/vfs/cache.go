package vfs

import (
	"fmt"
	"os"
	"path/filepath"
)

type Cache interface {
	Get(key string) ([]byte, error)
	Set(key string, data []byte) error
}

var CacheMissing = fmt.Errorf("not in cache")

// An FSCache stores entries as files in a single directory.
type FSCache string

func (f *FSCache) getPath(key string) string {
	return filepath.Join(string(*f), key)
}

func (f *FSCache) Get(key string) ([]byte, error) {
	target := f.getPath(key)

	if _, err := os.Stat(target); os.IsNotExist(err) {
		return nil, CacheMissing
	}

	return os.ReadFile(target)
}

func (f *FSCache) Set(key string, data []byte) error {
	return os.WriteFile(f.getPath(key), data, 0644)
}

var _ Cache = (*FSCache)(nil)
