package gamedata

import (
	"strings"

	"github.com/repeale/fp-go/option"
	"github.com/sasha-s/go-deadlock"

	"github.com/lcengine/gamedata/pkg/anim"
	"github.com/lcengine/gamedata/pkg/formats"
	"github.com/lcengine/gamedata/pkg/objects"
	"github.com/lcengine/gamedata/pkg/vfs"
	"github.com/lcengine/gamedata/pkg/world"
)

// VehicleInfo is the per-handling-class vehicle record.
type VehicleInfo struct {
	Handling formats.HandlingDef
}

// PedGroupList is the resolved pedestrian spawn groups: model IDs, not
// names.
type PedGroupList [][]objects.ModelID

// GameData loads and owns all static game content: model definitions,
// texture slots, archives, animations, zones, water and the flat
// vehicle/pedestrian tables. One load phase writes it; afterwards the
// rest of the engine reads it, with on-demand model loads as the only
// mid-session writers.
type GameData struct {
	mu deadlock.RWMutex

	index    *vfs.Index
	parsers  Parsers
	platform string
	dataPath string
	splash   string

	ledger *Ledger

	// The sub-registries are exported for direct use once the load
	// phase is over. While on-demand loads may still run, concurrent
	// readers use the locked accessors instead of these fields.
	Models     *objects.Registry
	Zones      *world.ZoneIndex
	Water      *world.WaterField
	Animations *anim.GroupRegistry

	textureSlots map[string]TextureArchive
	currentSlot  string

	archives map[string]*Archive
	// Archive names in the order they were indexed; entry lookups
	// walk this, so a name present in two archives resolves to the
	// first-indexed one.
	archiveOrder []string

	iplLocations map[string]string

	animGroupFiles map[string]string

	vehicleColours  []formats.RGB
	vehiclePalettes map[string][]formats.ColourPair
	vehicleInfos    map[string]*VehicleInfo

	dynamicObjects map[string]formats.DynamicObjectDef
	weather        []formats.WeatherEntry
	weapons        map[string]formats.WeaponDef

	pedStats     []formats.PedStat
	pedRelations []formats.PedRelationship
	pedGroups    PedGroupList

	texts map[string]string
}

// New builds an empty registry over the given file index. The index and
// parsers are the registry's only collaborators; consuming systems are
// passed to the operations that need them, never stored.
func New(index *vfs.Index, parsers Parsers, dataPath string) *GameData {
	return &GameData{
		index:    index,
		parsers:  parsers,
		platform: "PC",
		dataPath: dataPath,

		ledger: NewLedger(),

		Models:     objects.NewRegistry(),
		Zones:      world.NewZoneIndex(),
		Water:      world.NewWaterField(),
		Animations: anim.NewGroupRegistry(),

		textureSlots: make(map[string]TextureArchive),

		archives:     make(map[string]*Archive),
		iplLocations: make(map[string]string),

		animGroupFiles: make(map[string]string),

		vehiclePalettes: make(map[string][]formats.ColourPair),
		vehicleInfos:    make(map[string]*VehicleInfo),
		dynamicObjects:  make(map[string]formats.DynamicObjectDef),
		weapons:         make(map[string]formats.WeaponDef),
		pedRelations:    make([]formats.PedRelationship, len(formats.PedTypes)),

		texts: make(map[string]string),
	}
}

func (g *GameData) Platform() string { return g.platform }
func (g *GameData) DataPath() string { return g.dataPath }

// Splash is the loading image most recently selected by a level file.
func (g *GameData) Splash() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.splash
}

// ValidGameDirectory reports whether the indexed tree looks like a
// usable data set.
func (g *GameData) ValidGameDirectory() bool {
	for _, required := range []string{"gta3.dat", "handling.cfg"} {
		if _, ok := g.index.FindFilePath(required); !ok {
			return false
		}
	}
	return true
}

// Ledger exposes the load ledger, read-only in spirit: collaborators
// check it, only load entry points mark it.
func (g *GameData) Ledger() *Ledger {
	return g.ledger
}

// FindZone resolves a zone by name across both zone lists.
func (g *GameData) FindZone(name string) opt.Option[*world.ZoneData] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.Zones.FindZone(name)
}

// FindZoneAt returns the gameplay zone containing pos, per the zone
// index's documented tie-break.
func (g *GameData) FindZoneAt(pos world.Vec3) opt.Option[*world.ZoneData] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.Zones.FindZoneAt(pos)
}

// GetWaterIndexAt quantizes pos into the water grids.
func (g *GameData) GetWaterIndexAt(pos world.Vec3) uint8 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.Water.IndexAt(pos)
}

// GetWaveHeightAt resolves the water surface height at pos for game
// time t.
func (g *GameData) GetWaveHeightAt(pos world.Vec3, t float64) (float32, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.Water.WaveHeightAt(pos, t)
}

// GetAnimGroup finds a named animation group, loading its backing file
// first when one was registered and not yet loaded. Misses yield the
// default group, never nil.
func (g *GameData) GetAnimGroup(name string) *anim.Group {
	g.mu.RLock()
	file, pending := g.animGroupFiles[strings.ToLower(name)]
	if pending {
		pending = !g.ledger.IsLoaded(file)
	}
	g.mu.RUnlock()

	if pending {
		// LoadIFP re-checks the ledger under the write lock, so two
		// callers racing here still load the file once. Failures fall
		// through to the default group.
		_ = g.LoadIFP(file, false)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.Animations.Get(name)
}

// RegisterAnimGroupFile remembers where a group's backing file lives so
// GetAnimGroup can load it lazily.
func (g *GameData) RegisterAnimGroupFile(group string, file string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.animGroupFiles[strings.ToLower(group)] = file
}

func (g *GameData) VehicleColours() []formats.RGB {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.vehicleColours
}

// VehiclePalette returns the colour pairs defined for a vehicle name.
func (g *GameData) VehiclePalette(name string) ([]formats.ColourPair, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	pairs, ok := g.vehiclePalettes[strings.ToLower(name)]
	return pairs, ok
}

// VehicleInfo returns the handling record for a handling class.
func (g *GameData) VehicleInfo(id string) (*VehicleInfo, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	info, ok := g.vehicleInfos[strings.ToUpper(id)]
	return info, ok
}

// DynamicObject returns the physics record for a model name.
func (g *GameData) DynamicObject(model string) (formats.DynamicObjectDef, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	def, ok := g.dynamicObjects[strings.ToLower(model)]
	return def, ok
}

func (g *GameData) Weather() []formats.WeatherEntry {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.weather
}

// Weapon returns the weapon record for an upper-case weapon name.
func (g *GameData) Weapon(name string) (formats.WeaponDef, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	def, ok := g.weapons[strings.ToUpper(name)]
	return def, ok
}

func (g *GameData) WeaponCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.weapons)
}

// PedStat returns the archetype stats at an index, false past the table.
func (g *GameData) PedStat(index int) (formats.PedStat, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if index < 0 || index >= len(g.pedStats) {
		return formats.PedStat{}, false
	}
	return g.pedStats[index], true
}

// PedRelationship returns the relationship row for a ped type index.
func (g *GameData) PedRelationship(pedType int) (formats.PedRelationship, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if pedType < 0 || pedType >= len(g.pedRelations) {
		return formats.PedRelationship{}, false
	}
	return g.pedRelations[pedType], true
}

func (g *GameData) PedGroups() PedGroupList {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.pedGroups
}

// Text returns a localized string by key, the key itself on miss so UI
// code always has something to draw.
func (g *GameData) Text(key string) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if value, ok := g.texts[key]; ok {
		return value
	}
	return key
}

// FindArchive returns an indexed archive by name.
func (g *GameData) FindArchive(name string) (*Archive, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	archive, ok := g.archives[strings.ToLower(name)]
	return archive, ok
}

// IPLLocation returns the recorded path of a named placement file.
func (g *GameData) IPLLocation(name string) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	path, ok := g.iplLocations[strings.ToLower(name)]
	return path, ok
}
