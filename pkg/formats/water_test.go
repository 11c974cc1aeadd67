package formats

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWaterRects(t *testing.T) {
	data := []byte(`
# height left bottom right top
6.0 -400.0 -400.0 400.0 400.0
1.5 1000.0 1000.0 1200.0 1100.0
`)

	rects, err := ParseWaterRects(data)
	require.NoError(t, err)
	require.Len(t, rects, 2)

	assert.Equal(t, float32(6.0), rects[0].Height)
	assert.Equal(t, float32(-400.0), rects[0].Left)
	assert.Equal(t, float32(1100.0), rects[1].Top)
}

func TestParseWaterRectsMalformed(t *testing.T) {
	_, err := ParseWaterRects([]byte("6.0 -400.0\n"))
	assert.Error(t, err)
}

func TestParseWaterPro(t *testing.T) {
	data := make([]byte, waterProMinSize)
	binary.LittleEndian.PutUint32(data[0:4], 2)
	binary.LittleEndian.PutUint32(data[4:8], math.Float32bits(6.0))
	binary.LittleEndian.PutUint32(data[8:12], math.Float32bits(1.5))

	// One visible cell and one real cell referencing level 1.
	data[waterGridOffset+5] = 1
	data[waterGridOffset+64*64+9] = 1

	grid, err := ParseWaterPro(data)
	require.NoError(t, err)

	assert.Equal(t, float32(6.0), grid.Heights[0])
	assert.Equal(t, float32(1.5), grid.Heights[1])
	assert.Equal(t, uint8(1), grid.VisibleWater[5])
	assert.Equal(t, uint8(1), grid.RealWater[9])
	assert.Equal(t, uint8(0), grid.RealWater[10])
}

func TestParseWaterProTruncated(t *testing.T) {
	_, err := ParseWaterPro(make([]byte, 64))
	assert.Error(t, err)
}
