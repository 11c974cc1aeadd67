package gamedata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcengine/gamedata/pkg/formats"
	"github.com/lcengine/gamedata/pkg/objects"
	"github.com/lcengine/gamedata/pkg/vfs"
)

// fixtureArchive writes a one-entry container pair (.dir/.img) whose
// payload is the given content, padded to a whole block.
func fixtureArchive(t *testing.T, dir string, name string, entry string, content []byte) {
	t.Helper()

	dirData, err := formats.WriteArchiveDir([]formats.ArchiveEntry{
		{Name: entry, OffsetBlock: 0, SizeBlock: 1},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".dir"), dirData, 0644))

	payload := make([]byte, formats.ArchiveBlockSize)
	copy(payload, content)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".img"), payload, 0644))
}

func TestLoadIMGIndexesWithoutDecoding(t *testing.T) {
	dir := t.TempDir()
	fixtureArchive(t, dir, "models", "kuruma.dff", []byte("kuruma"))

	index := vfs.NewIndex()
	require.NoError(t, index.IndexTree(dir))

	counting := &countingParsers{}
	data := New(index, counting.parsers(), dir)

	require.NoError(t, data.LoadIMG("models"))
	assert.Equal(t, 0, counting.modelCalls)

	archive, ok := data.FindArchive("models")
	require.True(t, ok)
	assert.Equal(t, 1, archive.EntryCount())

	_, ok = archive.FindEntry("KURUMA.DFF")
	assert.True(t, ok)

	// Re-indexing is a no-op, not an error.
	require.NoError(t, data.LoadIMG("models"))
	require.NoError(t, data.LoadIMG("models.img"))
}

func TestArchiveBackedModelLoad(t *testing.T) {
	dir := t.TempDir()
	fixtureArchive(t, dir, "models", "wall.dff", []byte("wall"))

	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "objects.ide"),
		[]byte("objs\n101, wall, generic, 1, 120.0, 0\nend\n"),
		0644,
	))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "generic.txd"),
		[]byte("crate"),
		0644,
	))

	index := vfs.NewIndex()
	require.NoError(t, index.IndexTree(dir))

	counting := &countingParsers{}
	data := New(index, counting.parsers(), dir)

	require.NoError(t, data.LoadIDE("objects.ide"))
	require.NoError(t, data.LoadIMG("models"))

	// wall.dff exists only inside the archive; the load finds it there.
	id := data.Models.FindModelObject("wall")
	require.NotEqual(t, objects.InvalidModelID, id)
	assert.True(t, data.LoadModel(id))
	assert.Equal(t, 1, counting.modelCalls)
}

func TestArchiveResolutionOrder(t *testing.T) {
	dir := t.TempDir()
	fixtureArchive(t, dir, "first", "thing.dff", []byte("alpha"))
	fixtureArchive(t, dir, "second", "thing.dff", []byte("beta"))

	index := vfs.NewIndex()
	require.NoError(t, index.IndexTree(dir))

	counting := &countingParsers{}
	data := New(index, counting.parsers(), dir)

	require.NoError(t, data.LoadIMG("second"))
	require.NoError(t, data.LoadIMG("first"))

	// An entry name present in both archives resolves to the archive
	// indexed first, every time.
	model, err := data.LoadClump("thing")
	require.NoError(t, err)
	require.Len(t, model.Atomics, 1)
	assert.Equal(t, "beta", model.Atomics[0].Name)
}

func TestArchiveIndexSnapshot(t *testing.T) {
	dir := t.TempDir()
	fixtureArchive(t, dir, "models", "kuruma.dff", []byte("kuruma"))

	index := vfs.NewIndex()
	require.NoError(t, index.IndexTree(dir))

	counting := &countingParsers{}
	data := New(index, counting.parsers(), dir)
	require.NoError(t, data.LoadIMG("models"))

	snapshot, err := data.SaveArchiveIndex()
	require.NoError(t, err)

	restored := New(index, counting.parsers(), dir)
	require.NoError(t, restored.LoadArchiveIndex(snapshot))

	archive, ok := restored.FindArchive("models")
	require.True(t, ok)

	payload, err := archive.ReadEntry("kuruma.dff")
	require.NoError(t, err)
	assert.Equal(t, []byte("kuruma"), payload[:6])
}
