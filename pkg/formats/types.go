package formats

// Results produced by the per-format parsers. The registry only depends
// on these shapes; how the bytes are decoded is this package's business.

// ObjectDef is one "objs" or "tobj" row from a definition file.
type ObjectDef struct {
	ID        uint16
	ModelName string
	SlotName  string
	DrawDist  []float32
	Flags     uint32

	// tobj rows only: hour range during which the object exists.
	Timed   bool
	TimeOn  int
	TimeOff int
}

// VehicleDef is one "cars" row from a definition file.
type VehicleDef struct {
	ID          uint16
	ModelName   string
	SlotName    string
	VehicleType string
	HandlingID  string
	GameName    string
	ClassName   string
	Frequency   int
}

// PedDef is one "peds" row from a definition file.
type PedDef struct {
	ID        uint16
	ModelName string
	SlotName  string
	PedType   string
	Behaviour string
	AnimGroup string
	CarsMask  uint32
}

// Definitions is the full parse of one definition file.
type Definitions struct {
	Objects  []ObjectDef
	Vehicles []VehicleDef
	Peds     []PedDef
}

// InstanceDef is one "inst" row from a placement file.
type InstanceDef struct {
	ID        uint16
	ModelName string
	Pos       [3]float32
	Scale     [3]float32
	Rot       [4]float32
}

// ZoneDef is one zone row from a zon or placement file.
type ZoneDef struct {
	Name  string
	Type  int
	Min   [3]float32
	Max   [3]float32
	Level int
}

// WaterRect is one rectangle from a plain-text water file.
type WaterRect struct {
	Height float32
	Left   float32
	Bottom float32
	Right  float32
	Top    float32
}

// WaterGrid is the full parse of a processed binary water file: the
// height level table plus the two quantized grids.
type WaterGrid struct {
	Heights      [48]float32
	VisibleWater [64 * 64]uint8
	RealWater    [128 * 128]uint8
}

// HandlingDef is one row of a handling file, reduced to the fields the
// registry keeps.
type HandlingDef struct {
	ID               string
	Mass             float32
	TurnMass         float32
	Dimensions       [3]float32
	CentreOfMass     [3]float32
	PercentSubmerged int
	TractionMult     float32
	TractionLoss     float32
	TractionBias     float32
	MaxVelocity      float32
	Acceleration     float32
}

// RGB is a palette entry.
type RGB struct {
	R, G, B uint8
}

// ColourPair indexes a primary and secondary colour in the palette.
type ColourPair struct {
	Primary   int
	Secondary int
}

// CarColours is the full parse of a vehicle colour file.
type CarColours struct {
	Palette  []RGB
	Vehicles map[string][]ColourPair
}

// PedStat is one pedestrian archetype row.
type PedStat struct {
	ID                int
	Name              string
	FleeDistance      float32
	HeadingChangeRate float32
	Fear              int
	Temper            int
	Lawfulness        int
	Sexiness          int
	AttackStrength    float32
	DefendWeakness    float32
	Flags             uint32
}

// PedRelationship describes how one pedestrian type reacts to others.
type PedRelationship struct {
	ID         int
	ThreatMask uint32
	AvoidMask  uint32
}

// PedGroup is one row of ped model names spawned together in a zone.
type PedGroup []string

// WeatherEntry is one row of a weather table.
type WeatherEntry struct {
	Ambient     RGB
	Directional RGB
	SkyTop      RGB
	SkyBottom   RGB
	SunSize     float32
	FarClip     float32
	FogStart    float32
}

// WeaponDef is one row of the weapon metadata table, reduced to the
// fields the registry keeps.
type WeaponDef struct {
	Name        string
	FireType    string
	HitRange    float32
	FireRate    int
	ReloadMS    int
	ClipSize    int
	Damage      int
	Speed       float32
	MeleeRadius float32
	LifeSpan    float32
	Spread      float32
	Offset      [3]float32
	ModelID     int
	Flags       uint32
}

// DynamicObjectDef is one row of a dynamic-object physics file.
type DynamicObjectDef struct {
	ModelName        string
	Mass             float32
	TurnMass         float32
	AirResistance    float32
	Elasticity       float32
	PercentSubmerged float32
	UprootForce      float32
	CollDamageMult   float32
	CollDamageEffect int
	CollResponse     int
	CameraAvoid      bool
}

// ArchiveEntry is one directory record of an archive: where the payload
// lives, in 2048-byte sectors. Payload decode happens elsewhere and later.
type ArchiveEntry struct {
	Name        string
	OffsetBlock uint32
	SizeBlock   uint32
}

// TextureDef is one decoded image from a texture archive. Produced by an
// injected texture parser; this core never decodes pixels itself.
type TextureDef struct {
	Name   string
	Width  int
	Height int
	Data   []byte
}

// AtomicDef is one named atomic inside a model file.
type AtomicDef struct {
	Name string
}

// ModelDef is the result of an injected model parser.
type ModelDef struct {
	Name    string
	Atomics []AtomicDef
}

// AnimationDef is one named animation from an injected animation parser.
type AnimationDef struct {
	Name     string
	Duration float32
}
