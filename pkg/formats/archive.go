package formats

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Archive directory decoding. Payloads are not touched here: an archive
// directory only says where each entry lives, and entry bytes are read
// on the first load that actually wants them.

const (
	// ArchiveBlockSize is the sector size archive offsets count in.
	ArchiveBlockSize = 2048

	archiveEntrySize = 32
	archiveNameSize  = 24
)

// ReadArchiveDir decodes an archive directory: fixed 32-byte records of
// offset block, size block and a nul-padded entry name.
func ReadArchiveDir(data []byte) ([]ArchiveEntry, error) {
	if len(data)%archiveEntrySize != 0 {
		return nil, fmt.Errorf("directory size %d is not a whole number of entries", len(data))
	}

	entries := make([]ArchiveEntry, 0, len(data)/archiveEntrySize)
	for i := 0; i+archiveEntrySize <= len(data); i += archiveEntrySize {
		record := data[i : i+archiveEntrySize]

		name := strings.TrimRight(string(record[8:8+archiveNameSize]), "\x00")
		if name == "" {
			return nil, fmt.Errorf("entry %d has an empty name", i/archiveEntrySize)
		}

		entries = append(entries, ArchiveEntry{
			Name:        strings.ToLower(name),
			OffsetBlock: binary.LittleEndian.Uint32(record[0:4]),
			SizeBlock:   binary.LittleEndian.Uint32(record[4:8]),
		})
	}

	return entries, nil
}

// WriteArchiveDir is the inverse of ReadArchiveDir, used by tests and
// by tooling that repacks archives.
func WriteArchiveDir(entries []ArchiveEntry) ([]byte, error) {
	data := make([]byte, 0, len(entries)*archiveEntrySize)
	for _, entry := range entries {
		if len(entry.Name) > archiveNameSize {
			return nil, fmt.Errorf("entry name %q exceeds %d bytes", entry.Name, archiveNameSize)
		}

		record := make([]byte, archiveEntrySize)
		binary.LittleEndian.PutUint32(record[0:4], entry.OffsetBlock)
		binary.LittleEndian.PutUint32(record[4:8], entry.SizeBlock)
		copy(record[8:], entry.Name)
		data = append(data, record...)
	}
	return data, nil
}
