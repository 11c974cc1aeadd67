package gamedata

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/lcengine/gamedata/pkg/formats"
)

// Archive is one indexed container file: the entry directory plus the
// host path of the payload file. Entry payloads are read on demand;
// indexing an archive never decodes them.
type Archive struct {
	Name    string
	Path    string
	entries map[string]formats.ArchiveEntry
}

func newArchive(name string, path string, entries []formats.ArchiveEntry) *Archive {
	byName := make(map[string]formats.ArchiveEntry, len(entries))
	for _, entry := range entries {
		byName[strings.ToLower(entry.Name)] = entry
	}
	return &Archive{
		Name:    strings.ToLower(name),
		Path:    path,
		entries: byName,
	}
}

func (a *Archive) FindEntry(name string) (formats.ArchiveEntry, bool) {
	entry, ok := a.entries[strings.ToLower(name)]
	return entry, ok
}

func (a *Archive) EntryCount() int {
	return len(a.entries)
}

// ReadEntry reads one entry's payload from the container.
func (a *Archive) ReadEntry(name string) ([]byte, error) {
	entry, ok := a.FindEntry(name)
	if !ok {
		return nil, fmt.Errorf("%s: no entry %q", a.Name, name)
	}

	file, err := os.Open(a.Path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	offset := int64(entry.OffsetBlock) * formats.ArchiveBlockSize
	data := make([]byte, int64(entry.SizeBlock)*formats.ArchiveBlockSize)

	if _, err := file.ReadAt(data, offset); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%s: entry %q: %w", a.Name, name, err)
	}

	return data, nil
}

// archiveSnapshot is the serialized form of one archive's directory.
type archiveSnapshot struct {
	_       struct{} `cbor:",toarray"`
	Name    string
	Path    string
	Entries []formats.ArchiveEntry
}

// SaveArchiveIndex serializes every indexed archive directory, so
// tooling can restore an index without re-reading the containers.
func (g *GameData) SaveArchiveIndex() ([]byte, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snapshots := make([]archiveSnapshot, 0, len(g.archives))
	for _, key := range g.archiveOrder {
		archive := g.archives[key]
		entries := make([]formats.ArchiveEntry, 0, len(archive.entries))
		for _, entry := range archive.entries {
			entries = append(entries, entry)
		}
		snapshots = append(snapshots, archiveSnapshot{
			Name:    archive.Name,
			Path:    archive.Path,
			Entries: entries,
		})
	}

	return cbor.Marshal(snapshots)
}

// LoadArchiveIndex restores a SaveArchiveIndex snapshot. Archives
// already indexed under the same name are left alone.
func (g *GameData) LoadArchiveIndex(data []byte) error {
	var snapshots []archiveSnapshot
	if err := cbor.Unmarshal(data, &snapshots); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, snapshot := range snapshots {
		name := strings.ToLower(snapshot.Name)
		if _, ok := g.archives[name]; ok {
			continue
		}
		g.archives[name] = newArchive(snapshot.Name, snapshot.Path, snapshot.Entries)
		g.archiveOrder = append(g.archiveOrder, name)
	}

	return nil
}
