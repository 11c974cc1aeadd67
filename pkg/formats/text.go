package formats

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf16"
)

// A localized text table is two tagged blocks: TKEY, holding fixed
// twelve-byte records of (value offset, eight-byte key), and TDAT,
// holding nul-terminated UTF-16 values the offsets point into.

const gxtKeyRecordSize = 12

// ParseTextTable decodes a localized text table into key -> string.
func ParseTextTable(data []byte) (map[string]string, error) {
	keyBlock, rest, err := readBlock(data, "TKEY")
	if err != nil {
		return nil, err
	}
	if len(keyBlock)%gxtKeyRecordSize != 0 {
		return nil, fmt.Errorf("key block size %d is not a whole number of records", len(keyBlock))
	}

	dataBlock, _, err := readBlock(rest, "TDAT")
	if err != nil {
		return nil, err
	}

	texts := make(map[string]string)
	for i := 0; i+gxtKeyRecordSize <= len(keyBlock); i += gxtKeyRecordSize {
		offset := binary.LittleEndian.Uint32(keyBlock[i:])
		key := strings.TrimRight(string(keyBlock[i+4:i+12]), "\x00")

		if int(offset) >= len(dataBlock) {
			return nil, fmt.Errorf("key %q points past the data block", key)
		}

		texts[key] = decodeUTF16(dataBlock[offset:])
	}

	return texts, nil
}

func readBlock(data []byte, tag string) (block []byte, rest []byte, err error) {
	if len(data) < 8 {
		return nil, nil, fmt.Errorf("text table truncated before %s header", tag)
	}
	if string(data[0:4]) != tag {
		return nil, nil, fmt.Errorf("expected %s block, found %q", tag, data[0:4])
	}

	size := binary.LittleEndian.Uint32(data[4:8])
	if uint32(len(data)-8) < size {
		return nil, nil, fmt.Errorf("%s block claims %d bytes, %d remain", tag, size, len(data)-8)
	}

	return data[8 : 8+size], data[8+size:], nil
}

func decodeUTF16(data []byte) string {
	units := make([]uint16, 0, 16)
	for i := 0; i+1 < len(data); i += 2 {
		unit := binary.LittleEndian.Uint16(data[i:])
		if unit == 0 {
			break
		}
		units = append(units, unit)
	}
	return string(utf16.Decode(units))
}
