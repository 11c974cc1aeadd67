package world

import (
	"math"

	"github.com/lcengine/gamedata/pkg/formats"
)

const (
	// WaterWorldSize is the world-space extent both grids cover,
	// centred on the origin.
	WaterWorldSize = 4096.0

	// Grid resolutions. The "real" grid is the fine one; the visible
	// grid is the coarse fallback.
	WaterRealGridSize    = 128
	WaterVisibleGridSize = 64

	// WaterHeightLevels is the size of the shared height table.
	WaterHeightLevels = 48

	// NoWaterIndex marks a dry cell. Cell values at or above it are
	// not indices into the height table.
	NoWaterIndex uint8 = 0x80
)

// Wave tunables. The oscillation rides on top of the static cell
// height; it is a rendering nicety, not per-cell data.
const (
	WaveAmplitude  = 0.5
	WaveFrequency  = 1.0
	WavePhaseScale = 0.05
)

// WaterField answers "is there water here, and how high" in constant
// time from two fixed-resolution grids over a shared height table.
type WaterField struct {
	Heights [WaterHeightLevels]float32

	visible [WaterVisibleGridSize * WaterVisibleGridSize]uint8
	real    [WaterRealGridSize * WaterRealGridSize]uint8

	rects      []formats.WaterRect
	usedLevels int
}

func NewWaterField() *WaterField {
	field := &WaterField{
		rects: make([]formats.WaterRect, 0),
	}
	for i := range field.visible {
		field.visible[i] = NoWaterIndex
	}
	for i := range field.real {
		field.real[i] = NoWaterIndex
	}
	return field
}

// SetGrid installs a parsed grid file wholesale. A zero cell in the
// source data means "no water"; level indices are shifted down by one.
func (w *WaterField) SetGrid(grid *formats.WaterGrid) {
	w.Heights = grid.Heights
	w.usedLevels = WaterHeightLevels

	convert := func(cell uint8) uint8 {
		if cell == 0 || cell > WaterHeightLevels {
			return NoWaterIndex
		}
		return cell - 1
	}

	for i, cell := range grid.VisibleWater {
		w.visible[i] = convert(cell)
	}
	for i, cell := range grid.RealWater {
		w.real[i] = convert(cell)
	}
}

// AddRect registers one rectangle: its height claims a slot in the
// height table and every fine-grid cell the rectangle covers points at
// it. The coarse grid is derived from the same cells.
func (w *WaterField) AddRect(rect formats.WaterRect) {
	w.rects = append(w.rects, rect)

	level, ok := w.internHeight(rect.Height)
	if !ok {
		return
	}

	minCol, minRow := quantize(rect.Left, rect.Bottom, WaterRealGridSize)
	maxCol, maxRow := quantize(rect.Right, rect.Top, WaterRealGridSize)

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			w.real[row*WaterRealGridSize+col] = level
			w.visible[(row/2)*WaterVisibleGridSize+col/2] = level
		}
	}
}

func (w *WaterField) Rects() []formats.WaterRect {
	return w.rects
}

// internHeight finds or allocates a height table slot. Rectangles past
// the table's capacity are dropped; the table size is part of the data
// format, not a tunable.
func (w *WaterField) internHeight(height float32) (uint8, bool) {
	for i := 0; i < w.usedLevels; i++ {
		if w.Heights[i] == height {
			return uint8(i), true
		}
	}

	if w.usedLevels >= WaterHeightLevels {
		return 0, false
	}

	w.Heights[w.usedLevels] = height
	w.usedLevels++
	return uint8(w.usedLevels - 1), true
}

// quantize maps a world coordinate pair onto a grid of the given size,
// clamping out-of-world positions to the border cells.
func quantize(x, y float32, size int) (col, row int) {
	cellSize := float32(WaterWorldSize) / float32(size)

	col = int((x + WaterWorldSize/2) / cellSize)
	row = int((y + WaterWorldSize/2) / cellSize)

	col = clamp(col, 0, size-1)
	row = clamp(row, 0, size-1)
	return col, row
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

// IndexAt resolves a world position to a height-table index, trying the
// fine grid first and falling back to the coarse one. NoWaterIndex
// means dry land.
func (w *WaterField) IndexAt(pos Vec3) uint8 {
	col, row := quantize(pos.X, pos.Y, WaterRealGridSize)
	if cell := w.real[row*WaterRealGridSize+col]; cell < NoWaterIndex {
		return cell
	}

	col, row = quantize(pos.X, pos.Y, WaterVisibleGridSize)
	return w.visible[row*WaterVisibleGridSize+col]
}

// WaveHeightAt returns the water surface height at pos for game time t,
// the static cell height plus a position-phased oscillation bounded by
// WaveAmplitude. Dry positions return false.
func (w *WaterField) WaveHeightAt(pos Vec3, t float64) (float32, bool) {
	index := w.IndexAt(pos)
	if index >= NoWaterIndex || int(index) >= WaterHeightLevels {
		return 0, false
	}

	static := w.Heights[index]
	phase := t*WaveFrequency + float64(pos.X+pos.Y)*WavePhaseScale
	return static + float32(WaveAmplitude*math.Sin(phase)), true
}
