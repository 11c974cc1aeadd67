package world

import (
	"strings"

	"github.com/repeale/fp-go/option"

	"github.com/lcengine/gamedata/pkg/formats"
)

// ZoneData is one named axis-aligned region.
type ZoneData struct {
	Name  string
	Type  int
	Min   Vec3
	Max   Vec3
	Level int

	// insertion order, used to break volume ties
	sequence int
}

func (z *ZoneData) Contains(pos Vec3) bool {
	return pos.X >= z.Min.X && pos.X <= z.Max.X &&
		pos.Y >= z.Min.Y && pos.Y <= z.Max.Y &&
		pos.Z >= z.Min.Z && pos.Z <= z.Max.Z
}

func (z *ZoneData) volume() float64 {
	return float64(z.Max.X-z.Min.X) *
		float64(z.Max.Y-z.Min.Y) *
		float64(z.Max.Z-z.Min.Z)
}

func newZone(def formats.ZoneDef, sequence int) *ZoneData {
	return &ZoneData{
		Name:     strings.ToUpper(def.Name),
		Type:     def.Type,
		Min:      NewVec3(def.Min[0], def.Min[1], def.Min[2]),
		Max:      NewVec3(def.Max[0], def.Max[1], def.Max[2]),
		Level:    def.Level,
		sequence: sequence,
	}
}

// ZoneIndex owns the two zone lists. Gameplay zones and map zones are
// populated from different sources and may overlap each other freely;
// each list is searched on its own.
type ZoneIndex struct {
	gameZones []*ZoneData
	mapZones  []*ZoneData
	sequence  int
}

func NewZoneIndex() *ZoneIndex {
	return &ZoneIndex{
		gameZones: make([]*ZoneData, 0),
		mapZones:  make([]*ZoneData, 0),
	}
}

func (i *ZoneIndex) InsertGameZone(def formats.ZoneDef) {
	i.sequence++
	i.gameZones = append(i.gameZones, newZone(def, i.sequence))
}

func (i *ZoneIndex) InsertMapZone(def formats.ZoneDef) {
	i.sequence++
	i.mapZones = append(i.mapZones, newZone(def, i.sequence))
}

func (i *ZoneIndex) GameZoneCount() int { return len(i.gameZones) }
func (i *ZoneIndex) MapZoneCount() int  { return len(i.mapZones) }

// FindZone resolves a zone by exact name, searching gameplay zones
// before map zones.
func (i *ZoneIndex) FindZone(name string) opt.Option[*ZoneData] {
	upper := strings.ToUpper(name)

	for _, zone := range i.gameZones {
		if zone.Name == upper {
			return opt.Some(zone)
		}
	}
	for _, zone := range i.mapZones {
		if zone.Name == upper {
			return opt.Some(zone)
		}
	}

	return opt.None[*ZoneData]()
}

// FindZoneAt returns the gameplay zone containing pos. When zones
// overlap the smallest containing volume wins, and among equal volumes
// the most recently inserted wins. The policy is fixed: the same point
// always yields the same zone.
func (i *ZoneIndex) FindZoneAt(pos Vec3) opt.Option[*ZoneData] {
	return findInList(i.gameZones, pos)
}

// FindMapZoneAt is FindZoneAt over the map-zone list, same tie-break.
func (i *ZoneIndex) FindMapZoneAt(pos Vec3) opt.Option[*ZoneData] {
	return findInList(i.mapZones, pos)
}

func findInList(zones []*ZoneData, pos Vec3) opt.Option[*ZoneData] {
	var best *ZoneData

	for _, zone := range zones {
		if !zone.Contains(pos) {
			continue
		}
		if best == nil {
			best = zone
			continue
		}

		volume, bestVolume := zone.volume(), best.volume()
		if volume < bestVolume ||
			(volume == bestVolume && zone.sequence > best.sequence) {
			best = zone
		}
	}

	if best == nil {
		return opt.None[*ZoneData]()
	}
	return opt.Some(best)
}
