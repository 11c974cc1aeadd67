package formats

import (
	"fmt"
	"strings"
)

// Section names a definition file can carry. Sections we have no table
// for are skipped wholesale rather than rejected; definition files grew
// sections over the game's lifetime and older data must still load.
const (
	sectionObjects      = "objs"
	sectionTimedObjects = "tobj"
	sectionVehicles     = "cars"
	sectionPeds         = "peds"
	sectionEnd          = "end"
)

// ParseDefinitions decodes a definition text file into its object,
// vehicle and pedestrian rows.
func ParseDefinitions(data []byte) (*Definitions, error) {
	defs := &Definitions{}
	section := ""

	err := eachLine(data, func(line string) error {
		lowered := strings.ToLower(line)

		if section == "" {
			// Rows under sections we have no table for are skipped
			// below, so any opener is accepted here.
			section = lowered
			return nil
		}

		if lowered == sectionEnd {
			section = ""
			return nil
		}

		switch section {
		case sectionObjects:
			object, err := parseObjectRow(line, false)
			if err != nil {
				return err
			}
			defs.Objects = append(defs.Objects, object)
		case sectionTimedObjects:
			object, err := parseObjectRow(line, true)
			if err != nil {
				return err
			}
			defs.Objects = append(defs.Objects, object)
		case sectionVehicles:
			vehicle, err := parseVehicleRow(line)
			if err != nil {
				return err
			}
			defs.Vehicles = append(defs.Vehicles, vehicle)
		case sectionPeds:
			ped, err := parsePedRow(line)
			if err != nil {
				return err
			}
			defs.Peds = append(defs.Peds, ped)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return defs, nil
}

// parseObjectRow decodes "id, model, slot, count, dist..., flags" with
// the optional trailing on/off hours of a time-gated row.
func parseObjectRow(line string, timed bool) (ObjectDef, error) {
	fields := splitFields(line)

	trailing := 1
	if timed {
		trailing = 3
	}
	if len(fields) < 4+trailing {
		return ObjectDef{}, fmt.Errorf("object row has %d fields", len(fields))
	}

	id, err := parseID(fields[0])
	if err != nil {
		return ObjectDef{}, err
	}

	count, err := parseInt(fields[3])
	if err != nil {
		return ObjectDef{}, err
	}
	if count < 1 || len(fields) < 4+count+trailing {
		return ObjectDef{}, fmt.Errorf("object row declares %d distances", count)
	}

	object := ObjectDef{
		ID:        id,
		ModelName: fields[1],
		SlotName:  fields[2],
		Timed:     timed,
	}

	for i := 0; i < count; i++ {
		dist, err := parseFloat(fields[4+i])
		if err != nil {
			return ObjectDef{}, err
		}
		object.DrawDist = append(object.DrawDist, dist)
	}

	flags, err := parseInt(fields[4+count])
	if err != nil {
		return ObjectDef{}, err
	}
	object.Flags = uint32(flags)

	if timed {
		if object.TimeOn, err = parseInt(fields[5+count]); err != nil {
			return ObjectDef{}, err
		}
		if object.TimeOff, err = parseInt(fields[6+count]); err != nil {
			return ObjectDef{}, err
		}
	}

	return object, nil
}

func parseVehicleRow(line string) (VehicleDef, error) {
	fields := splitFields(line)
	if len(fields) < 8 {
		return VehicleDef{}, fmt.Errorf("vehicle row has %d fields", len(fields))
	}

	id, err := parseID(fields[0])
	if err != nil {
		return VehicleDef{}, err
	}

	frequency, err := parseInt(fields[7])
	if err != nil {
		return VehicleDef{}, err
	}

	return VehicleDef{
		ID:          id,
		ModelName:   fields[1],
		SlotName:    fields[2],
		VehicleType: strings.ToLower(fields[3]),
		HandlingID:  fields[4],
		GameName:    fields[5],
		ClassName:   strings.ToLower(fields[6]),
		Frequency:   frequency,
	}, nil
}

func parsePedRow(line string) (PedDef, error) {
	fields := splitFields(line)
	if len(fields) < 7 {
		return PedDef{}, fmt.Errorf("ped row has %d fields", len(fields))
	}

	id, err := parseID(fields[0])
	if err != nil {
		return PedDef{}, err
	}

	mask, err := parseHex(fields[6])
	if err != nil {
		return PedDef{}, err
	}

	return PedDef{
		ID:        id,
		ModelName: fields[1],
		SlotName:  fields[2],
		PedType:   strings.ToUpper(fields[3]),
		Behaviour: fields[4],
		AnimGroup: fields[5],
		CarsMask:  mask,
	}, nil
}
