package gamedata

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// LoadLevelFile drives the other entry points from a level manifest:
// one directive per line, "KIND path". Unknown directives are skipped;
// a failing step is logged and the rest of the manifest still runs.
func (g *GameData) LoadLevelFile(filePath string) error {
	g.mu.Lock()
	if !g.ledger.MarkAndCheck(filePath) {
		g.mu.Unlock()
		return nil
	}
	data, err := g.readFile(filePath)
	g.mu.Unlock()
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		kind, argument, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		argument = strings.TrimSpace(argument)

		var err error
		switch strings.ToUpper(kind) {
		case "IDE":
			err = g.LoadIDE(argument)
		case "IPL", "MAPZONE":
			err = g.LoadIPL(argument)
		case "ZONE":
			err = g.LoadZone(argument)
		case "IMG", "CDIMAGE":
			err = g.LoadIMG(argument)
		case "TEXDICTION":
			err = g.LoadTXD(argument)
		case "WATER":
			err = g.LoadWater(argument)
		case "SPLASH":
			g.mu.Lock()
			g.splash = argument
			g.mu.Unlock()
		case "COLFILE":
			// Collision meshes belong to the physics loader; the
			// manifest still mentions them.
		default:
			log.Debug().Str("kind", kind).Msg("unhandled level directive")
		}

		if err != nil {
			log.Warn().Err(err).Str("directive", line).Msg("level step failed")
		}
	}

	return scanner.Err()
}

// Load runs the standard load sequence over well-known file names.
// Steps are independent: a missing or malformed file is logged and the
// remaining steps still run, so a broken vehicle table never blocks
// zones or water. The returned error is the first failure, for callers
// that want to surface one.
func (g *GameData) Load() error {
	steps := []struct {
		name string
		run  func() error
	}{
		{"definitions", func() error { return g.LoadIDE("default.ide") }},
		{"level", func() error { return g.LoadLevelFile("gta3.dat") }},
		{"zones", func() error { return g.LoadZone("gta3.zon") }},
		{"water grid", func() error { return g.LoadWaterpro("waterpro.dat") }},
		{"water rects", func() error { return g.LoadWater("water.dat") }},
		{"handling", func() error { return g.LoadHandling("handling.cfg") }},
		{"weapons", func() error { return g.LoadWeaponDAT("weapon.dat") }},
		{"vehicle colours", func() error { return g.LoadCarcols("carcols.dat") }},
		{"weather", func() error { return g.LoadWeather("timecyc.dat") }},
		{"dynamic objects", func() error { return g.LoadDynamicObjects("object.dat") }},
		{"ped stats", func() error { return g.LoadPedStats("pedstats.dat") }},
		{"ped relations", func() error { return g.LoadPedRelations("ped.dat") }},
		{"ped groups", func() error { return g.LoadPedGroups("pedgrp.dat") }},
		{"texts", func() error { return g.LoadGXT("american.gxt") }},
	}

	var first error
	for _, step := range steps {
		if err := step.run(); err != nil {
			log.Warn().Err(err).Str("step", step.name).Msg("load step failed")
			if first == nil {
				first = fmt.Errorf("%s: %w", step.name, err)
			}
		}
	}

	return first
}
