package formats

import (
	"fmt"
	"strings"
)

const (
	sectionInstances = "inst"
	sectionZones     = "zone"
)

// Placement is the full parse of one placement file.
type Placement struct {
	Instances []InstanceDef
	Zones     []ZoneDef
}

// ParsePlacement decodes a placement text file: object instances plus
// any zone rows it carries.
func ParsePlacement(data []byte) (*Placement, error) {
	placement := &Placement{}
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
		case sectionInstances:
			instance, err := parseInstanceRow(line)
			if err != nil {
				return err
			}
			placement.Instances = append(placement.Instances, instance)
		case sectionZones:
			zone, err := ParseZoneRow(line)
			if err != nil {
				return err
			}
			placement.Zones = append(placement.Zones, zone)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return placement, nil
}

// ParseZones decodes a file holding nothing but zone rows, one per line
// with no section framing.
func ParseZones(data []byte) ([]ZoneDef, error) {
	zones := make([]ZoneDef, 0)

	err := eachLine(data, func(line string) error {
		lowered := strings.ToLower(line)
		if lowered == sectionZones || lowered == sectionEnd {
			return nil
		}

		zone, err := ParseZoneRow(line)
		if err != nil {
			return err
		}
		zones = append(zones, zone)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return zones, nil
}

func parseInstanceRow(line string) (InstanceDef, error) {
	fields := splitFields(line)
	if len(fields) < 12 {
		return InstanceDef{}, fmt.Errorf("instance row has %d fields", len(fields))
	}

	id, err := parseID(fields[0])
	if err != nil {
		return InstanceDef{}, err
	}

	instance := InstanceDef{
		ID:        id,
		ModelName: fields[1],
	}

	floats := make([]float32, 10)
	for i := range floats {
		if floats[i], err = parseFloat(fields[2+i]); err != nil {
			return InstanceDef{}, err
		}
	}

	copy(instance.Pos[:], floats[0:3])
	copy(instance.Scale[:], floats[3:6])
	copy(instance.Rot[:], floats[6:10])

	return instance, nil
}

// ParseZoneRow decodes "name, type, minX, minY, minZ, maxX, maxY, maxZ, level".
func ParseZoneRow(line string) (ZoneDef, error) {
	fields := splitFields(line)
	if len(fields) < 9 {
		return ZoneDef{}, fmt.Errorf("zone row has %d fields", len(fields))
	}

	zoneType, err := parseInt(fields[1])
	if err != nil {
		return ZoneDef{}, err
	}

	zone := ZoneDef{
		Name: strings.ToUpper(fields[0]),
		Type: zoneType,
	}

	floats := make([]float32, 6)
	for i := range floats {
		if floats[i], err = parseFloat(fields[2+i]); err != nil {
			return ZoneDef{}, err
		}
	}
	copy(zone.Min[:], floats[0:3])
	copy(zone.Max[:], floats[3:6])

	if zone.Level, err = parseInt(fields[8]); err != nil {
		return ZoneDef{}, err
	}

	return zone, nil
}
