package vfs

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

var Missing = fmt.Errorf("file not found in index")

// An Index maps case-insensitive logical paths to files on the host
// filesystem. Game data references files without regard to case or to
// where the host actually keeps them, so every lookup goes through here.
type Index struct {
	// lowercased logical path -> real path
	files map[string]string
	cache Cache
}

func NewIndex() *Index {
	return &Index{
		files: make(map[string]string),
	}
}

// WithCache attaches a byte cache that answers reads of gzipped entries
// without decompressing them again.
func (i *Index) WithCache(cache Cache) *Index {
	i.cache = cache
	return i
}

func normalize(path string) string {
	return strings.ToLower(filepath.ToSlash(path))
}

// IndexFile registers a single file under both its lowercased base name
// and its path relative to the indexed root. Later registrations of the
// same logical name win.
func (i *Index) IndexFile(relative string, real string) {
	i.files[normalize(relative)] = real
	i.files[normalize(filepath.Base(relative))] = real
}

// IndexTree walks a directory and indexes every regular file beneath it.
func (i *Index) IndexTree(root string) error {
	absolute, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	return filepath.WalkDir(absolute, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		relative, err := filepath.Rel(absolute, path)
		if err != nil {
			return err
		}

		i.IndexFile(relative, path)
		return nil
	})
}

// FindFilePath resolves a logical name to the real path on disk.
func (i *Index) FindFilePath(logical string) (string, bool) {
	path, ok := i.files[normalize(logical)]
	return path, ok
}

// OpenFile reads the contents of a logical file. Files stored gzipped
// (either indexed with a .gz suffix or carrying a gzip header) are
// decompressed transparently.
func (i *Index) OpenFile(logical string) ([]byte, error) {
	path, ok := i.FindFilePath(logical)
	if !ok {
		path, ok = i.FindFilePath(logical + ".gz")
		if !ok {
			return nil, Missing
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		key := normalize(logical)
		if i.cache != nil {
			if cached, err := i.cache.Get(key); err == nil {
				return cached, nil
			}
		}

		reader, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer reader.Close()

		plain, err := io.ReadAll(reader)
		if err != nil {
			return nil, err
		}
		if i.cache != nil {
			// A failed write only means the next read decompresses
			// again.
			_ = i.cache.Set(key, plain)
		}
		return plain, nil
	}

	return data, nil
}

// Size reports the number of distinct logical names in the index.
func (i *Index) Size() int {
	return len(i.files)
}
