package objects

import (
	"strings"

	"github.com/lcengine/gamedata/pkg/formats"
)

type ModelID uint16

// InvalidModelID is the miss sentinel for name lookups.
const InvalidModelID ModelID = 0xFFFF

type ModelType int

const (
	ModelSimple ModelType = iota
	ModelClump
	ModelVehicle
	ModelPed
)

func (t ModelType) String() string {
	switch t {
	case ModelSimple:
		return "simple"
	case ModelClump:
		return "clump"
	case ModelVehicle:
		return "vehicle"
	case ModelPed:
		return "ped"
	}
	return "unknown"
}

// ModelInfo is the closed set of per-model metadata variants. Every
// variant embeds BaseModelInfo; the Type discriminant decides which
// concrete type an entry carries.
type ModelInfo interface {
	ID() ModelID
	Name() string
	SlotName() string
	Type() ModelType
	IsLoaded() bool
	SetLoaded(loaded bool)
}

type BaseModelInfo struct {
	ModelID   ModelID
	ModelName string
	Slot      string
	Loaded    bool
}

func (b *BaseModelInfo) ID() ModelID           { return b.ModelID }
func (b *BaseModelInfo) Name() string          { return b.ModelName }
func (b *BaseModelInfo) SlotName() string      { return b.Slot }
func (b *BaseModelInfo) IsLoaded() bool        { return b.Loaded }
func (b *BaseModelInfo) SetLoaded(loaded bool) { b.Loaded = loaded }

// SimpleModelInfo is a static world object, possibly with LOD meshes
// and possibly gated to a range of in-game hours.
type SimpleModelInfo struct {
	BaseModelInfo

	DrawDist []float32
	Flags    uint32

	Timed   bool
	TimeOn  int
	TimeOff int
}

func (s *SimpleModelInfo) Type() ModelType { return ModelSimple }

// VisibleAtHour reports whether a time-gated object exists at the given
// hour. Untimed objects always exist; the on/off range may wrap
// midnight.
func (s *SimpleModelInfo) VisibleAtHour(hour int) bool {
	if !s.Timed {
		return true
	}
	if s.TimeOn <= s.TimeOff {
		return hour >= s.TimeOn && hour < s.TimeOff
	}
	return hour >= s.TimeOn || hour < s.TimeOff
}

// ClumpModelInfo is an animated hierarchy of atomics.
type ClumpModelInfo struct {
	BaseModelInfo

	Atomics []string
}

func (c *ClumpModelInfo) Type() ModelType { return ModelClump }

type VehicleModelInfo struct {
	BaseModelInfo

	VehicleType string
	HandlingID  string
	GameName    string
	ClassName   string
	Frequency   int
}

func (v *VehicleModelInfo) Type() ModelType { return ModelVehicle }

type PedModelInfo struct {
	BaseModelInfo

	PedType   string
	Behaviour string
	AnimGroup string
	CarsMask  uint32
}

func (p *PedModelInfo) Type() ModelType { return ModelPed }

func newBase(id uint16, name string, slot string) BaseModelInfo {
	return BaseModelInfo{
		ModelID:   ModelID(id),
		ModelName: strings.ToLower(name),
		Slot:      strings.ToLower(slot),
	}
}

func NewSimpleModelInfo(def formats.ObjectDef) *SimpleModelInfo {
	return &SimpleModelInfo{
		BaseModelInfo: newBase(def.ID, def.ModelName, def.SlotName),
		DrawDist:      def.DrawDist,
		Flags:         def.Flags,
		Timed:         def.Timed,
		TimeOn:        def.TimeOn,
		TimeOff:       def.TimeOff,
	}
}

func NewVehicleModelInfo(def formats.VehicleDef) *VehicleModelInfo {
	return &VehicleModelInfo{
		BaseModelInfo: newBase(def.ID, def.ModelName, def.SlotName),
		VehicleType:   def.VehicleType,
		HandlingID:    def.HandlingID,
		GameName:      def.GameName,
		ClassName:     def.ClassName,
		Frequency:     def.Frequency,
	}
}

func NewPedModelInfo(def formats.PedDef) *PedModelInfo {
	return &PedModelInfo{
		BaseModelInfo: newBase(def.ID, def.ModelName, def.SlotName),
		PedType:       def.PedType,
		Behaviour:     def.Behaviour,
		AnimGroup:     def.AnimGroup,
		CarsMask:      def.CarsMask,
	}
}
