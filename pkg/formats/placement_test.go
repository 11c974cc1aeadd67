package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlacement(t *testing.T) {
	data := []byte(`
inst
101, wall, 12.0, -4.5, 8.0, 1.0, 1.0, 1.0, 0.0, 0.0, 0.0, 1.0
end
zone
DOCKS, 0, -100.0, -100.0, -20.0, 100.0, 100.0, 20.0, 0
end
`)

	placement, err := ParsePlacement(data)
	require.NoError(t, err)

	require.Len(t, placement.Instances, 1)
	instance := placement.Instances[0]
	assert.Equal(t, uint16(101), instance.ID)
	assert.Equal(t, "wall", instance.ModelName)
	assert.Equal(t, [3]float32{12.0, -4.5, 8.0}, instance.Pos)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, instance.Rot)

	require.Len(t, placement.Zones, 1)
	assert.Equal(t, "DOCKS", placement.Zones[0].Name)
}

func TestParseZones(t *testing.T) {
	data := []byte(`
zone
docks, 0, -100.0, -100.0, -20.0, 100.0, 100.0, 20.0, 0
PORT, 2, -50.0, -50.0, -10.0, 50.0, 50.0, 10.0, 1
end
`)

	zones, err := ParseZones(data)
	require.NoError(t, err)
	require.Len(t, zones, 2)

	// Zone names compare upper-case everywhere.
	assert.Equal(t, "DOCKS", zones[0].Name)
	assert.Equal(t, "PORT", zones[1].Name)
	assert.Equal(t, 2, zones[1].Type)
	assert.Equal(t, 1, zones[1].Level)
	assert.Equal(t, [3]float32{-50, -50, -10}, zones[1].Min)
}

func TestParseZoneRowMalformed(t *testing.T) {
	_, err := ParseZoneRow("DOCKS, 0, -100.0")
	assert.Error(t, err)
}
