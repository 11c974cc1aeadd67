package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lcengine/gamedata/pkg/gamedata"
	"github.com/lcengine/gamedata/pkg/vfs"
	"github.com/lcengine/gamedata/pkg/world"
)

var CLI struct {
	Root    string `arg:"" name:"root" help:"Path to the game data directory." type:"path"`
	Debug   bool   `help:"Whether to enable debug logging."`
	Probe   bool   `help:"Probe water height at the world origin after loading."`
	Archive string `help:"Write a CBOR snapshot of the archive index to this path." type:"path"`
	Cache   string `help:"Directory used to cache decompressed reads." type:"path"`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("datadump"),
		kong.Description("load a game data directory and report what it holds"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	index := vfs.NewIndex()
	if CLI.Cache != "" {
		cache := vfs.FSCache(CLI.Cache)
		index.WithCache(&cache)
	}
	if err := index.IndexTree(CLI.Root); err != nil {
		writeError(err)
	}

	// No renderer here: mesh-era payloads stay undecoded, which is all
	// a dump needs.
	data := gamedata.New(index, gamedata.Parsers{}, CLI.Root)

	if !data.ValidGameDirectory() {
		log.Warn().Str("root", CLI.Root).Msg("directory is missing standard data files")
	}

	if err := data.Load(); err != nil {
		log.Warn().Err(err).Msg("load finished with failures")
	}

	fmt.Printf("platform:   %s\n", data.Platform())
	fmt.Printf("indexed:    %d files\n", index.Size())
	fmt.Printf("loaded:     %d logical files\n", data.Ledger().Count())
	fmt.Printf("models:     %d\n", data.Models.Count())
	fmt.Printf("game zones: %d\n", data.Zones.GameZoneCount())
	fmt.Printf("map zones:  %d\n", data.Zones.MapZoneCount())
	fmt.Printf("water:      %d rects\n", len(data.Water.Rects()))
	fmt.Printf("colours:    %d\n", len(data.VehicleColours()))
	fmt.Printf("weapons:    %d\n", data.WeaponCount())
	fmt.Printf("weather:    %d entries\n", len(data.Weather()))
	fmt.Printf("groups:     %d\n", data.Animations.GroupCount())

	if CLI.Probe {
		pos := world.NewVec3(0, 0, 0)
		if height, wet := data.GetWaveHeightAt(pos, 0); wet {
			fmt.Printf("water at origin: %.2f\n", height)
		} else {
			fmt.Println("no water at origin")
		}
	}

	if CLI.Archive != "" {
		snapshot, err := data.SaveArchiveIndex()
		if err != nil {
			writeError(err)
		}
		if err := os.WriteFile(CLI.Archive, snapshot, 0644); err != nil {
			writeError(err)
		}
		log.Info().Str("path", CLI.Archive).Msg("wrote archive index snapshot")
	}
}
