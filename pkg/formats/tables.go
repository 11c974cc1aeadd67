package formats

import (
	"fmt"
	"strings"
)

// ParseHandling decodes a vehicle handling file. Rows carry far more
// columns than the registry keeps; extras are ignored, not rejected.
func ParseHandling(data []byte) ([]HandlingDef, error) {
	defs := make([]HandlingDef, 0)

	err := eachLine(data, func(line string) error {
		fields := splitFields(line)
		if len(fields) < 13 {
			return fmt.Errorf("handling row has %d fields", len(fields))
		}

		def := HandlingDef{ID: fields[0]}

		floats := make([]float32, 8)
		for i := range floats {
			value, err := parseFloat(fields[1+i])
			if err != nil {
				return err
			}
			floats[i] = value
		}
		def.Mass = floats[0]
		def.TurnMass = floats[1]
		copy(def.Dimensions[:], floats[2:5])
		copy(def.CentreOfMass[:], floats[5:8])

		submerged, err := parseInt(fields[9])
		if err != nil {
			return err
		}
		def.PercentSubmerged = submerged

		trailing := make([]float32, 3)
		for i := range trailing {
			value, err := parseFloat(fields[10+i])
			if err != nil {
				return err
			}
			trailing[i] = value
		}
		def.TractionMult = trailing[0]
		def.TractionLoss = trailing[1]
		def.TractionBias = trailing[2]

		if len(fields) >= 15 {
			if def.MaxVelocity, err = parseFloat(fields[13]); err != nil {
				return err
			}
			if def.Acceleration, err = parseFloat(fields[14]); err != nil {
				return err
			}
		}

		defs = append(defs, def)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return defs, nil
}

const (
	sectionColours    = "col"
	sectionCarColours = "car"
)

// ParseCarColours decodes a colour file: a "col" section of palette
// rows followed by a "car" section pairing vehicles with palette
// index pairs.
func ParseCarColours(data []byte) (*CarColours, error) {
	colours := &CarColours{
		Vehicles: make(map[string][]ColourPair),
	}
	section := ""

	err := eachLine(data, func(line string) error {
		lowered := strings.ToLower(line)

		if section == "" {
			section = lowered
			return nil
		}
		if lowered == sectionEnd {
			section = ""
			return nil
		}

		switch section {
		case sectionColours:
			fields := splitFields(line)
			if len(fields) < 3 {
				return fmt.Errorf("colour row has %d fields", len(fields))
			}
			values := make([]int, 3)
			for i := range values {
				value, err := parseInt(fields[i])
				if err != nil {
					return err
				}
				if value < 0 || value > 255 {
					return fmt.Errorf("colour channel %d out of range", value)
				}
				values[i] = value
			}
			colours.Palette = append(colours.Palette, RGB{
				R: uint8(values[0]),
				G: uint8(values[1]),
				B: uint8(values[2]),
			})
		case sectionCarColours:
			fields := splitFields(line)
			if len(fields) < 3 || len(fields)%2 != 1 {
				return fmt.Errorf("car colour row has %d fields", len(fields))
			}
			name := strings.ToLower(fields[0])
			pairs := make([]ColourPair, 0, (len(fields)-1)/2)
			for i := 1; i < len(fields); i += 2 {
				primary, err := parseInt(fields[i])
				if err != nil {
					return err
				}
				secondary, err := parseInt(fields[i+1])
				if err != nil {
					return err
				}
				pairs = append(pairs, ColourPair{
					Primary:   primary,
					Secondary: secondary,
				})
			}
			colours.Vehicles[name] = pairs
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return colours, nil
}

// ParsePedStats decodes a pedestrian stats file.
func ParsePedStats(data []byte) ([]PedStat, error) {
	stats := make([]PedStat, 0)

	err := eachLine(data, func(line string) error {
		fields := splitFields(line)
		if len(fields) < 11 {
			return fmt.Errorf("ped stat row has %d fields", len(fields))
		}

		id, err := parseInt(fields[0])
		if err != nil {
			return err
		}

		stat := PedStat{
			ID:   id,
			Name: fields[1],
		}

		if stat.FleeDistance, err = parseFloat(fields[2]); err != nil {
			return err
		}
		if stat.HeadingChangeRate, err = parseFloat(fields[3]); err != nil {
			return err
		}

		ints := make([]int, 4)
		for i := range ints {
			if ints[i], err = parseInt(fields[4+i]); err != nil {
				return err
			}
		}
		stat.Fear = ints[0]
		stat.Temper = ints[1]
		stat.Lawfulness = ints[2]
		stat.Sexiness = ints[3]

		if stat.AttackStrength, err = parseFloat(fields[8]); err != nil {
			return err
		}
		if stat.DefendWeakness, err = parseFloat(fields[9]); err != nil {
			return err
		}

		flags, err := parseHex(fields[10])
		if err != nil {
			return err
		}
		stat.Flags = flags

		stats = append(stats, stat)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// PedTypes enumerates the pedestrian archetypes a relationship row can
// name, in table order.
var PedTypes = []string{
	"PLAYER1", "PLAYER2", "PLAYER3", "PLAYER4",
	"CIVMALE", "CIVFEMALE", "COP", "GANG1", "GANG2", "GANG3",
	"GANG4", "GANG5", "GANG6", "GANG7", "GANG8", "GANG9",
	"EMERGENCY", "FIREMAN", "CRIMINAL", "SPECIAL", "PROSTITUTE",
}

func pedTypeIndex(name string) (int, bool) {
	upper := strings.ToUpper(name)
	for i, known := range PedTypes {
		if known == upper {
			return i, true
		}
	}
	return 0, false
}

// ParsePedRelations decodes a pedestrian relationship file of
// "type threatMask avoidMask" rows.
func ParsePedRelations(data []byte) ([]PedRelationship, error) {
	relations := make([]PedRelationship, 0)

	err := eachLine(data, func(line string) error {
		fields := splitFields(line)
		if len(fields) < 3 {
			return fmt.Errorf("relationship row has %d fields", len(fields))
		}

		id, ok := pedTypeIndex(fields[0])
		if !ok {
			return fmt.Errorf("unknown ped type %q", fields[0])
		}

		threat, err := parseHex(fields[1])
		if err != nil {
			return err
		}
		avoid, err := parseHex(fields[2])
		if err != nil {
			return err
		}

		relations = append(relations, PedRelationship{
			ID:         id,
			ThreatMask: threat,
			AvoidMask:  avoid,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return relations, nil
}

// ParsePedGroups decodes a pedestrian group file: each row is the list
// of ped model names spawned together.
func ParsePedGroups(data []byte) ([]PedGroup, error) {
	groups := make([]PedGroup, 0)

	err := eachLine(data, func(line string) error {
		fields := splitFields(line)
		if len(fields) == 0 {
			return nil
		}

		group := make(PedGroup, 0, len(fields))
		for _, field := range fields {
			group = append(group, strings.ToLower(field))
		}
		groups = append(groups, group)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return groups, nil
}

// weaponTerminator ends the weapon table; rows after it are ignored.
const weaponTerminator = "ENDWEAPONDATA"

// ParseWeapons decodes the weapon metadata table. Rows carry the
// firing parameters plus a world-model ID; animation columns between
// the offset and the model ID are ignored.
func ParseWeapons(data []byte) ([]WeaponDef, error) {
	defs := make([]WeaponDef, 0)
	done := false

	err := eachLine(data, func(line string) error {
		if done {
			return nil
		}

		fields := splitFields(line)
		if len(fields) > 0 && strings.EqualFold(fields[0], weaponTerminator) {
			done = true
			return nil
		}
		if len(fields) < 16 {
			return fmt.Errorf("weapon row has %d fields", len(fields))
		}

		def := WeaponDef{
			Name:     strings.ToUpper(fields[0]),
			FireType: strings.ToUpper(fields[1]),
		}

		var err error
		if def.HitRange, err = parseFloat(fields[2]); err != nil {
			return err
		}

		ints := make([]int, 4)
		for i := range ints {
			if ints[i], err = parseInt(fields[3+i]); err != nil {
				return err
			}
		}
		def.FireRate = ints[0]
		def.ReloadMS = ints[1]
		def.ClipSize = ints[2]
		def.Damage = ints[3]

		floats := make([]float32, 7)
		for i := range floats {
			if floats[i], err = parseFloat(fields[7+i]); err != nil {
				return err
			}
		}
		def.Speed = floats[0]
		def.MeleeRadius = floats[1]
		def.LifeSpan = floats[2]
		def.Spread = floats[3]
		copy(def.Offset[:], floats[4:7])

		// The last two columns are the model ID and the flags mask;
		// anything between the offset and those is animation naming
		// this core does not keep.
		if def.ModelID, err = parseInt(fields[len(fields)-2]); err != nil {
			return err
		}
		flags, err := parseHex(fields[len(fields)-1])
		if err != nil {
			return err
		}
		def.Flags = flags

		defs = append(defs, def)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return defs, nil
}

// ParseWeather decodes a weather table of fifteen-column rows.
func ParseWeather(data []byte) ([]WeatherEntry, error) {
	entries := make([]WeatherEntry, 0)

	parseRGB := func(fields []string) (RGB, error) {
		values := make([]int, 3)
		for i := range values {
			value, err := parseInt(fields[i])
			if err != nil {
				return RGB{}, err
			}
			values[i] = value
		}
		return RGB{R: uint8(values[0]), G: uint8(values[1]), B: uint8(values[2])}, nil
	}

	err := eachLine(data, func(line string) error {
		fields := splitFields(line)
		if len(fields) < 15 {
			return fmt.Errorf("weather row has %d fields", len(fields))
		}

		var entry WeatherEntry
		var err error

		if entry.Ambient, err = parseRGB(fields[0:3]); err != nil {
			return err
		}
		if entry.Directional, err = parseRGB(fields[3:6]); err != nil {
			return err
		}
		if entry.SkyTop, err = parseRGB(fields[6:9]); err != nil {
			return err
		}
		if entry.SkyBottom, err = parseRGB(fields[9:12]); err != nil {
			return err
		}

		if entry.SunSize, err = parseFloat(fields[12]); err != nil {
			return err
		}
		if entry.FarClip, err = parseFloat(fields[13]); err != nil {
			return err
		}
		if entry.FogStart, err = parseFloat(fields[14]); err != nil {
			return err
		}

		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// ParseDynamicObjects decodes a dynamic-object physics file.
func ParseDynamicObjects(data []byte) ([]DynamicObjectDef, error) {
	defs := make([]DynamicObjectDef, 0)

	err := eachLine(data, func(line string) error {
		fields := splitFields(line)
		if len(fields) < 11 {
			return fmt.Errorf("dynamic object row has %d fields", len(fields))
		}

		def := DynamicObjectDef{
			ModelName: strings.ToLower(fields[0]),
		}

		floats := make([]float32, 7)
		for i := range floats {
			value, err := parseFloat(fields[1+i])
			if err != nil {
				return err
			}
			floats[i] = value
		}
		def.Mass = floats[0]
		def.TurnMass = floats[1]
		def.AirResistance = floats[2]
		def.Elasticity = floats[3]
		def.PercentSubmerged = floats[4]
		def.UprootForce = floats[5]
		def.CollDamageMult = floats[6]

		effect, err := parseInt(fields[8])
		if err != nil {
			return err
		}
		def.CollDamageEffect = effect

		response, err := parseInt(fields[9])
		if err != nil {
			return err
		}
		def.CollResponse = response

		avoid, err := parseInt(fields[10])
		if err != nil {
			return err
		}
		def.CameraAvoid = avoid != 0

		defs = append(defs, def)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return defs, nil
}
