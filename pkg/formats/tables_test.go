package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHandling(t *testing.T) {
	data := []byte(`
; id mass turnMass dimX dimY dimZ comX comY comZ sub tracMult tracLoss tracBias maxVel accel
KURUMA 1400.0 4000.0 2.0 5.0 1.6 0.0 0.2 -0.2 70 1.2 0.8 0.5 160.0 19.0
`)

	defs, err := ParseHandling(data)
	require.NoError(t, err)
	require.Len(t, defs, 1)

	def := defs[0]
	assert.Equal(t, "KURUMA", def.ID)
	assert.Equal(t, float32(1400.0), def.Mass)
	assert.Equal(t, [3]float32{2.0, 5.0, 1.6}, def.Dimensions)
	assert.Equal(t, 70, def.PercentSubmerged)
	assert.Equal(t, float32(160.0), def.MaxVelocity)
}

func TestParseCarColours(t *testing.T) {
	data := []byte(`
col
255, 0, 0
0, 0, 255
end
car
kuruma, 0,1, 1,0
end
`)

	colours, err := ParseCarColours(data)
	require.NoError(t, err)

	require.Len(t, colours.Palette, 2)
	assert.Equal(t, RGB{R: 255}, colours.Palette[0])

	pairs, ok := colours.Vehicles["kuruma"]
	require.True(t, ok)
	assert.Equal(t, []ColourPair{{0, 1}, {1, 0}}, pairs)
}

func TestParseCarColoursBadChannel(t *testing.T) {
	_, err := ParseCarColours([]byte("col\n300, 0, 0\nend\n"))
	assert.Error(t, err)
}

func TestParsePedStats(t *testing.T) {
	data := []byte("0 STAT_PLAYER 20.0 15.0 50 50 50 50 1.0 1.0 2\n")

	stats, err := ParsePedStats(data)
	require.NoError(t, err)
	require.Len(t, stats, 1)

	assert.Equal(t, "STAT_PLAYER", stats[0].Name)
	assert.Equal(t, float32(20.0), stats[0].FleeDistance)
	assert.Equal(t, 50, stats[0].Temper)
	assert.Equal(t, uint32(2), stats[0].Flags)
}

func TestParsePedRelations(t *testing.T) {
	data := []byte(`
COP 40 8
CIVMALE 1 0
`)

	relations, err := ParsePedRelations(data)
	require.NoError(t, err)
	require.Len(t, relations, 2)

	assert.Equal(t, uint32(0x40), relations[0].ThreatMask)
	assert.Equal(t, uint32(0x8), relations[0].AvoidMask)

	_, err = ParsePedRelations([]byte("MARTIAN 0 0\n"))
	assert.Error(t, err)
}

func TestParsePedGroups(t *testing.T) {
	data := []byte("male01, male02, female01\nCOP01, cop02\n")

	groups, err := ParsePedGroups(data)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, PedGroup{"male01", "male02", "female01"}, groups[0])
	assert.Equal(t, PedGroup{"cop01", "cop02"}, groups[1])
}

func TestParseWeapons(t *testing.T) {
	data := []byte(`
COLT45 INSTANT_HIT 30.0 250 1000 17 10 0.0 0.5 0.0 0.0 0.1 0.6 0.1 fire fire_crouch 171 1
ENDWEAPONDATA
rows after the terminator are not part of the table
`)

	defs, err := ParseWeapons(data)
	require.NoError(t, err)
	require.Len(t, defs, 1)

	def := defs[0]
	assert.Equal(t, "COLT45", def.Name)
	assert.Equal(t, "INSTANT_HIT", def.FireType)
	assert.Equal(t, float32(30.0), def.HitRange)
	assert.Equal(t, 250, def.FireRate)
	assert.Equal(t, 17, def.ClipSize)
	assert.Equal(t, [3]float32{0.1, 0.6, 0.1}, def.Offset)
	assert.Equal(t, 171, def.ModelID)
	assert.Equal(t, uint32(1), def.Flags)
}

func TestParseWeaponsShortRow(t *testing.T) {
	_, err := ParseWeapons([]byte("UZI MELEE 1.0\n"))
	assert.Error(t, err)
}

func TestParseWeather(t *testing.T) {
	data := []byte("200 200 220  255 255 255  40 60 120  150 170 210  1.2 450.0 320.0\n")

	entries, err := ParseWeather(data)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, RGB{200, 200, 220}, entries[0].Ambient)
	assert.Equal(t, RGB{40, 60, 120}, entries[0].SkyTop)
	assert.Equal(t, float32(450.0), entries[0].FarClip)
}

func TestParseDynamicObjects(t *testing.T) {
	data := []byte("barrel 80.0 200.0 0.99 0.1 40.0 80.0 1.0 1 0 1\n")

	defs, err := ParseDynamicObjects(data)
	require.NoError(t, err)
	require.Len(t, defs, 1)

	assert.Equal(t, "barrel", defs[0].ModelName)
	assert.Equal(t, float32(80.0), defs[0].Mass)
	assert.True(t, defs[0].CameraAvoid)
}
