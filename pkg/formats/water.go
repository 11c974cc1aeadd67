package formats

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	// Grid data starts at a fixed offset in a processed water file; the
	// gap after the height table is padding in the original tool's output.
	waterGridOffset = 0x03C4

	waterProMinSize = waterGridOffset + 64*64 + 128*128
)

// ParseWaterRects decodes a plain-text water file of
// "height left bottom right top" rows.
func ParseWaterRects(data []byte) ([]WaterRect, error) {
	rects := make([]WaterRect, 0)

	err := eachLine(data, func(line string) error {
		fields := splitFields(line)
		if len(fields) < 5 {
			return fmt.Errorf("water row has %d fields", len(fields))
		}

		floats := make([]float32, 5)
		for i := range floats {
			value, err := parseFloat(fields[i])
			if err != nil {
				return err
			}
			floats[i] = value
		}

		rects = append(rects, WaterRect{
			Height: floats[0],
			Left:   floats[1],
			Bottom: floats[2],
			Right:  floats[3],
			Top:    floats[4],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rects, nil
}

// ParseWaterPro decodes a processed binary water file: a level count,
// the 48-entry height table, then the 64x64 and 128x128 index grids.
func ParseWaterPro(data []byte) (*WaterGrid, error) {
	if len(data) < waterProMinSize {
		return nil, fmt.Errorf("water file is %d bytes, need %d", len(data), waterProMinSize)
	}

	grid := &WaterGrid{}

	levels := binary.LittleEndian.Uint32(data[0:4])
	if levels > uint32(len(grid.Heights)) {
		return nil, fmt.Errorf("water file declares %d levels", levels)
	}

	for i := range grid.Heights {
		bits := binary.LittleEndian.Uint32(data[4+i*4:])
		grid.Heights[i] = math.Float32frombits(bits)
	}

	copy(grid.VisibleWater[:], data[waterGridOffset:])
	copy(grid.RealWater[:], data[waterGridOffset+64*64:])

	return grid, nil
}
