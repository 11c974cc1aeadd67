package gamedata

import (
	"fmt"
	"path"
	"strings"

	"github.com/repeale/fp-go/option"
	"github.com/rs/zerolog/log"

	"github.com/lcengine/gamedata/pkg/anim"
	"github.com/lcengine/gamedata/pkg/formats"
	"github.com/lcengine/gamedata/pkg/objects"
)

// Every load entry point follows one shape: check the ledger, resolve
// the bytes through the file index (or an indexed archive), hand them
// to the right parser, commit the result. Failures come back as values;
// the caller decides whether the overall sequence goes on, and during
// the standard Load sequence it always does.

// readFile resolves logical bytes: the file index first, then the
// archives in the order they were indexed, so a name present in two
// archives always resolves the same way.
func (g *GameData) readFile(name string) ([]byte, error) {
	data, err := g.index.OpenFile(name)
	if err == nil {
		return data, nil
	}

	for _, key := range g.archiveOrder {
		archive := g.archives[key]
		if _, ok := archive.FindEntry(name); ok {
			return archive.ReadEntry(name)
		}
	}

	return nil, fmt.Errorf("%q: %w", name, err)
}

func slotName(name string) string {
	base := path.Base(strings.ToLower(strings.ReplaceAll(name, "\\", "/")))
	return strings.TrimSuffix(base, path.Ext(base))
}

// LoadIDE loads a definition file into the model registry.
func (g *GameData) LoadIDE(filePath string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.ledger.MarkAndCheck(filePath) {
		return nil
	}

	data, err := g.readFile(filePath)
	if err != nil {
		return err
	}

	defs, err := formats.ParseDefinitions(data)
	if err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	for _, object := range defs.Objects {
		g.Models.InsertOrReplace(objects.NewSimpleModelInfo(object))
	}
	for _, vehicle := range defs.Vehicles {
		g.Models.InsertOrReplace(objects.NewVehicleModelInfo(vehicle))
	}
	for _, ped := range defs.Peds {
		g.Models.InsertOrReplace(objects.NewPedModelInfo(ped))
	}

	log.Debug().
		Str("path", filePath).
		Int("objects", len(defs.Objects)).
		Int("vehicles", len(defs.Vehicles)).
		Int("peds", len(defs.Peds)).
		Msg("loaded definitions")
	return nil
}

// LoadIPL loads a placement file. Its zone rows land in the map-zone
// list; the file's location is recorded for collaborators that replay
// instance placements.
func (g *GameData) LoadIPL(filePath string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.ledger.MarkAndCheck(filePath) {
		return nil
	}

	data, err := g.readFile(filePath)
	if err != nil {
		return err
	}

	placement, err := formats.ParsePlacement(data)
	if err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	g.iplLocations[slotName(filePath)] = filePath
	for _, zone := range placement.Zones {
		g.Zones.InsertMapZone(zone)
	}

	log.Debug().
		Str("path", filePath).
		Int("instances", len(placement.Instances)).
		Int("zones", len(placement.Zones)).
		Msg("loaded placements")
	return nil
}

// LoadZone loads a zone file into the gameplay-zone list.
func (g *GameData) LoadZone(filePath string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.ledger.MarkAndCheck(filePath) {
		return nil
	}

	data, err := g.readFile(filePath)
	if err != nil {
		return err
	}

	zones, err := formats.ParseZones(data)
	if err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	for _, zone := range zones {
		g.Zones.InsertGameZone(zone)
	}
	return nil
}

// LoadIMG indexes an archive's directory. Entry payloads stay on disk
// until something asks for them by name. Re-indexing a known archive is
// a no-op.
func (g *GameData) LoadIMG(name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loadIMG(name)
}

func (g *GameData) loadIMG(name string) error {
	key := slotName(name)
	if _, ok := g.archives[key]; ok {
		return nil
	}

	dirData, err := g.index.OpenFile(key + ".dir")
	if err != nil {
		return err
	}

	entries, err := formats.ReadArchiveDir(dirData)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	imgPath, ok := g.index.FindFilePath(key + ".img")
	if !ok {
		return fmt.Errorf("%s: directory present but no container", name)
	}

	g.archives[key] = newArchive(key, imgPath, entries)
	g.archiveOrder = append(g.archiveOrder, key)

	log.Debug().
		Str("archive", key).
		Int("entries", len(entries)).
		Msg("indexed archive")
	return nil
}

// LoadTXD makes the named slot current, creating it first if this is
// the slot's first load.
func (g *GameData) LoadTXD(name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loadTXD(name)
}

func (g *GameData) loadTXD(name string) error {
	slot := slotName(name)

	if _, ok := g.textureSlots[slot]; ok {
		g.currentSlot = slot
		return nil
	}

	archive := make(TextureArchive)
	if err := g.loadToTextureArchive(name, archive); err != nil {
		return err
	}

	g.textureSlots[slot] = archive
	g.currentSlot = slot
	return nil
}

// LoadTextureArchive parses a texture archive and returns it detached,
// registering nothing.
func (g *GameData) LoadTextureArchive(name string) (TextureArchive, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	archive := make(TextureArchive)
	if err := g.loadToTextureArchive(name, archive); err != nil {
		return nil, err
	}
	return archive, nil
}

// LoadToTextureArchive parses a texture archive into the caller's
// archive, merging by name.
func (g *GameData) LoadToTextureArchive(name string, archive TextureArchive) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loadToTextureArchive(name, archive)
}

func (g *GameData) loadToTextureArchive(name string, archive TextureArchive) error {
	file := name
	if path.Ext(file) == "" {
		file += ".txd"
	}

	data, err := g.readFile(file)
	if err != nil {
		return err
	}

	textures, err := g.parsers.parseTextures(data)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	archive.Merge(textures)
	return nil
}

// LoadModelFile parses a model file and flags every model whose name
// matches one of its atomics as materialized. Atomic names carry the
// LOD suffix convention.
func (g *GameData) LoadModelFile(name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loadModelFile(name)
}

func (g *GameData) loadModelFile(name string) error {
	file := name
	if path.Ext(file) == "" {
		file += ".dff"
	}

	if !g.ledger.MarkAndCheck(file) {
		return nil
	}

	data, err := g.readFile(file)
	if err != nil {
		return err
	}

	model, err := g.parsers.parseModel(data)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	for _, atomic := range model.Atomics {
		base, _ := GetNameAndLOD(strings.ToLower(atomic.Name))
		id := g.Models.FindModelObject(base)
		if id == objects.InvalidModelID {
			continue
		}

		info := g.Models.Find(id)
		if opt.IsSome(info) {
			info.Value.SetLoaded(true)
		}
	}

	return nil
}

// LoadModel materializes one model by ID: its texture slot first, then
// its mesh. Already-materialized models are a no-op success; every
// failure is an answer, not an abort.
func (g *GameData) LoadModel(id objects.ModelID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	found := g.Models.Find(id)
	if opt.IsNone(found) {
		log.Warn().Uint16("id", uint16(id)).Msg("load of unknown model")
		return false
	}
	info := found.Value

	if info.IsLoaded() {
		return true
	}

	if slot := info.SlotName(); slot != "" {
		if err := g.loadTXD(slot); err != nil {
			log.Warn().Err(err).Str("model", info.Name()).Msg("texture slot load failed")
		}
	}

	if err := g.loadModelFile(info.Name()); err != nil {
		log.Warn().Err(err).Str("model", info.Name()).Msg("model load failed")
		return false
	}

	info.SetLoaded(true)
	return true
}

// LoadClump parses a named model and returns it directly, without
// registering anything. An optional texture slot is made current first.
func (g *GameData) LoadClump(name string, textureSlot ...string) (*formats.ModelDef, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(textureSlot) > 0 && textureSlot[0] != "" {
		if err := g.loadTXD(textureSlot[0]); err != nil {
			return nil, err
		}
	}

	file := name
	if path.Ext(file) == "" {
		file += ".dff"
	}

	data, err := g.readFile(file)
	if err != nil {
		return nil, err
	}

	model, err := g.parsers.parseModel(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return model, nil
}

// LoadIFP loads an animation file into the normal or cutscene pool. A
// group named after the file collects the clips for group lookups;
// cutscene clips never join a group.
func (g *GameData) LoadIFP(name string, cutsceneAnimation bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	file := name
	if path.Ext(file) == "" {
		file += ".ifp"
	}

	if !g.ledger.MarkAndCheck(file) {
		return nil
	}

	data, err := g.readFile(file)
	if err != nil {
		return err
	}

	defs, err := g.parsers.parseAnimations(data)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	g.Animations.InsertAnimations(defs, cutsceneAnimation)

	if !cutsceneAnimation {
		group := &anim.Group{Name: slotName(file)}
		for _, def := range defs {
			group.Animations = append(group.Animations, strings.ToLower(def.Name))
		}
		g.Animations.InsertGroup(group)
	}

	return nil
}

// LoadWaterpro loads a processed binary water file into the grids.
func (g *GameData) LoadWaterpro(filePath string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.ledger.MarkAndCheck(filePath) {
		return nil
	}

	data, err := g.readFile(filePath)
	if err != nil {
		return err
	}

	grid, err := formats.ParseWaterPro(data)
	if err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	g.Water.SetGrid(grid)
	return nil
}

// LoadWater loads a plain-text water rectangle file.
func (g *GameData) LoadWater(filePath string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.ledger.MarkAndCheck(filePath) {
		return nil
	}

	data, err := g.readFile(filePath)
	if err != nil {
		return err
	}

	rects, err := formats.ParseWaterRects(data)
	if err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	for _, rect := range rects {
		g.Water.AddRect(rect)
	}
	return nil
}

// LoadCarcols loads the vehicle colour palette and per-vehicle pairs.
func (g *GameData) LoadCarcols(filePath string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.ledger.MarkAndCheck(filePath) {
		return nil
	}

	data, err := g.readFile(filePath)
	if err != nil {
		return err
	}

	colours, err := formats.ParseCarColours(data)
	if err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	g.vehicleColours = append(g.vehicleColours, colours.Palette...)
	for name, pairs := range colours.Vehicles {
		g.vehiclePalettes[strings.ToLower(name)] = pairs
	}
	return nil
}

// LoadHandling loads the vehicle handling table.
func (g *GameData) LoadHandling(filePath string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.ledger.MarkAndCheck(filePath) {
		return nil
	}

	data, err := g.readFile(filePath)
	if err != nil {
		return err
	}

	defs, err := formats.ParseHandling(data)
	if err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	for _, def := range defs {
		g.vehicleInfos[strings.ToUpper(def.ID)] = &VehicleInfo{Handling: def}
	}
	return nil
}

// LoadWeaponDAT loads the weapon metadata table.
func (g *GameData) LoadWeaponDAT(filePath string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.ledger.MarkAndCheck(filePath) {
		return nil
	}

	data, err := g.readFile(filePath)
	if err != nil {
		return err
	}

	defs, err := formats.ParseWeapons(data)
	if err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	for _, def := range defs {
		g.weapons[def.Name] = def
	}
	return nil
}

// LoadWeather loads the weather table.
func (g *GameData) LoadWeather(filePath string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.ledger.MarkAndCheck(filePath) {
		return nil
	}

	data, err := g.readFile(filePath)
	if err != nil {
		return err
	}

	entries, err := formats.ParseWeather(data)
	if err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	g.weather = append(g.weather, entries...)
	return nil
}

// LoadDynamicObjects loads the dynamic-object physics table.
func (g *GameData) LoadDynamicObjects(filePath string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.ledger.MarkAndCheck(filePath) {
		return nil
	}

	data, err := g.readFile(filePath)
	if err != nil {
		return err
	}

	defs, err := formats.ParseDynamicObjects(data)
	if err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	for _, def := range defs {
		g.dynamicObjects[def.ModelName] = def
	}
	return nil
}

// LoadPedStats loads the pedestrian archetype stats table.
func (g *GameData) LoadPedStats(filePath string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.ledger.MarkAndCheck(filePath) {
		return nil
	}

	data, err := g.readFile(filePath)
	if err != nil {
		return err
	}

	stats, err := formats.ParsePedStats(data)
	if err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	g.pedStats = append(g.pedStats, stats...)
	return nil
}

// LoadPedRelations loads the pedestrian relationship rows into their
// fixed-index table.
func (g *GameData) LoadPedRelations(filePath string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.ledger.MarkAndCheck(filePath) {
		return nil
	}

	data, err := g.readFile(filePath)
	if err != nil {
		return err
	}

	relations, err := formats.ParsePedRelations(data)
	if err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	for _, relation := range relations {
		g.pedRelations[relation.ID] = relation
	}
	return nil
}

// LoadPedGroups loads the spawn groups, resolving model names through
// the registry. Names with no registered model are skipped, not fatal:
// group files routinely mention models an edition doesn't ship.
func (g *GameData) LoadPedGroups(filePath string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.ledger.MarkAndCheck(filePath) {
		return nil
	}

	data, err := g.readFile(filePath)
	if err != nil {
		return err
	}

	groups, err := formats.ParsePedGroups(data)
	if err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	for _, group := range groups {
		resolved := make([]objects.ModelID, 0, len(group))
		for _, name := range group {
			id := g.Models.FindModelObject(name)
			if id == objects.InvalidModelID {
				log.Warn().Str("model", name).Msg("ped group names unknown model")
				continue
			}
			resolved = append(resolved, id)
		}
		g.pedGroups = append(g.pedGroups, resolved)
	}
	return nil
}

// LoadGXT loads a localized text table.
func (g *GameData) LoadGXT(name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.ledger.MarkAndCheck(name) {
		return nil
	}

	data, err := g.readFile(name)
	if err != nil {
		return err
	}

	texts, err := formats.ParseTextTable(data)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	for key, value := range texts {
		g.texts[key] = value
	}
	return nil
}
