package world

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcengine/gamedata/pkg/formats"
)

func TestSingleRectConsistency(t *testing.T) {
	field := NewWaterField()
	field.AddRect(formats.WaterRect{
		Height: 6.0,
		Left:   -400,
		Bottom: -400,
		Right:  400,
		Top:    400,
	})

	inside := []Vec3{
		NewVec3(0, 0, 0),
		NewVec3(-390, 350, 0),
		NewVec3(399, -399, 0),
	}
	for _, pos := range inside {
		index := field.IndexAt(pos)
		require.Less(t, index, NoWaterIndex, "expected water at %+v", pos)
		assert.Equal(t, float32(6.0), field.Heights[index])
	}

	far := []Vec3{
		NewVec3(1500, 1500, 0),
		NewVec3(-2000, 300, 0),
	}
	for _, pos := range far {
		assert.Equal(t, NoWaterIndex, field.IndexAt(pos), "expected dry at %+v", pos)
	}
}

func TestWaveHeightBounded(t *testing.T) {
	field := NewWaterField()
	field.AddRect(formats.WaterRect{
		Height: 6.0,
		Left:   -400,
		Bottom: -400,
		Right:  400,
		Top:    400,
	})

	for _, tick := range []float64{0, 0.5, 1, 7.3, 100} {
		height, wet := field.WaveHeightAt(NewVec3(12, -30, 0), tick)
		require.True(t, wet)
		assert.LessOrEqual(t, math.Abs(float64(height)-6.0), WaveAmplitude+1e-6)
	}

	_, wet := field.WaveHeightAt(NewVec3(1900, 1900, 0), 0)
	assert.False(t, wet)
}

func TestOutOfBoundsClamps(t *testing.T) {
	field := NewWaterField()

	// Water covering the north-east corner of the world.
	field.AddRect(formats.WaterRect{
		Height: 2.0,
		Left:   1800,
		Bottom: 1800,
		Right:  2048,
		Top:    2048,
	})

	// Positions beyond the world edge land in the border cells.
	index := field.IndexAt(NewVec3(5000, 5000, 0))
	require.Less(t, index, NoWaterIndex)
	assert.Equal(t, float32(2.0), field.Heights[index])
}

func TestSetGrid(t *testing.T) {
	grid := &formats.WaterGrid{}
	grid.Heights[0] = 6.0
	grid.Heights[1] = 1.5

	// Source cells are one-based; zero means dry.
	grid.RealWater[0] = 2
	grid.VisibleWater[0] = 1

	field := NewWaterField()
	field.SetGrid(grid)

	// World minimum corner maps to cell (0, 0) of both grids; the fine
	// grid answers first.
	corner := NewVec3(-WaterWorldSize/2, -WaterWorldSize/2, 0)
	assert.Equal(t, uint8(1), field.IndexAt(corner))

	// A position in the coarse cell (0,0) but a dry fine cell falls
	// back to the coarse grid.
	nearby := NewVec3(-WaterWorldSize/2+40, -WaterWorldSize/2, 0)
	assert.Equal(t, uint8(0), field.IndexAt(nearby))
}

func TestHeightTableInterning(t *testing.T) {
	field := NewWaterField()

	field.AddRect(formats.WaterRect{Height: 3.0, Left: 0, Bottom: 0, Right: 10, Top: 10})
	field.AddRect(formats.WaterRect{Height: 3.0, Left: 500, Bottom: 500, Right: 510, Top: 510})
	field.AddRect(formats.WaterRect{Height: 9.0, Left: -500, Bottom: -500, Right: -490, Top: -490})

	assert.Equal(t, 2, field.usedLevels)
	assert.Len(t, field.Rects(), 3)
}
