package vfs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseInsensitiveLookup(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Data", "Maps"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "Data", "Maps", "Industrial.IPL"),
		[]byte("inst\nend\n"),
		0644,
	))

	index := NewIndex()
	require.NoError(t, index.IndexTree(dir))

	_, ok := index.FindFilePath("data/maps/industrial.ipl")
	assert.True(t, ok)

	_, ok = index.FindFilePath("INDUSTRIAL.ipl")
	assert.True(t, ok)

	_, ok = index.FindFilePath("missing.ipl")
	assert.False(t, ok)

	data, err := index.OpenFile("Industrial.IPL")
	require.NoError(t, err)
	assert.Equal(t, []byte("inst\nend\n"), data)
}

func TestOpenFileMissing(t *testing.T) {
	index := NewIndex()
	_, err := index.OpenFile("nope.dat")
	assert.ErrorIs(t, err, Missing)
}

func TestGzipTransparency(t *testing.T) {
	dir := t.TempDir()

	var compressed bytes.Buffer
	writer := gzip.NewWriter(&compressed)
	_, err := writer.Write([]byte("water data"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "waterpro.dat.gz"),
		compressed.Bytes(),
		0644,
	))

	index := NewIndex()
	require.NoError(t, index.IndexTree(dir))

	data, err := index.OpenFile("waterpro.dat")
	require.NoError(t, err)
	assert.Equal(t, []byte("water data"), data)
}

func TestGzipCacheReuse(t *testing.T) {
	dir := t.TempDir()

	write := func(content string) {
		var compressed bytes.Buffer
		writer := gzip.NewWriter(&compressed)
		_, err := writer.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, writer.Close())
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, "waterpro.dat.gz"),
			compressed.Bytes(),
			0644,
		))
	}
	write("water data")

	cache := FSCache(t.TempDir())
	index := NewIndex().WithCache(&cache)
	require.NoError(t, index.IndexTree(dir))

	data, err := index.OpenFile("waterpro.dat")
	require.NoError(t, err)
	assert.Equal(t, []byte("water data"), data)

	// The decompressed bytes land in the cache under the logical name.
	cached, err := cache.Get("waterpro.dat")
	require.NoError(t, err)
	assert.Equal(t, []byte("water data"), cached)

	// Later reads come from the cache, not the container.
	write("rewritten")
	data, err = index.OpenFile("waterpro.dat")
	require.NoError(t, err)
	assert.Equal(t, []byte("water data"), data)
}

func TestFSCache(t *testing.T) {
	cache := FSCache(t.TempDir())

	_, err := cache.Get("key")
	assert.ErrorIs(t, err, CacheMissing)

	require.NoError(t, cache.Set("key", []byte("value")))

	data, err := cache.Get("key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), data)
}
