package gamedata

import (
	"strings"

	"github.com/repeale/fp-go/option"

	"github.com/lcengine/gamedata/pkg/formats"
)

// Texture is one resident image.
type Texture struct {
	Name   string
	Width  int
	Height int
	Data   []byte
}

// TextureArchive is a named collection of textures, keyed by lowercased
// texture name.
type TextureArchive map[string]*Texture

// Merge files parsed textures into the archive. Within one call, a
// repeated name keeps the last occurrence.
func (a TextureArchive) Merge(defs []formats.TextureDef) {
	for _, def := range defs {
		name := strings.ToLower(def.Name)
		a[name] = &Texture{
			Name:   name,
			Width:  def.Width,
			Height: def.Height,
			Data:   def.Data,
		}
	}
}

func (a TextureArchive) Find(name string) opt.Option[*Texture] {
	texture, ok := a[strings.ToLower(name)]
	if !ok {
		return opt.None[*Texture]()
	}
	return opt.Some(texture)
}

// FindSlotTexture looks texture up in slot. References to a slot that
// was never loaded resolve against whichever slot is current instead; a
// texture missing from a known slot is simply missing. Either miss is
// an ordinary answer: callers substitute a placeholder, nothing fails.
func (g *GameData) FindSlotTexture(slot string, texture string) opt.Option[*Texture] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if archive, ok := g.textureSlots[strings.ToLower(slot)]; ok {
		return archive.Find(texture)
	}

	if current, ok := g.textureSlots[g.currentSlot]; ok {
		return current.Find(texture)
	}

	return opt.None[*Texture]()
}

// CurrentSlot reports which slot resolves ambiguous texture references
// right now.
func (g *GameData) CurrentSlot() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.currentSlot
}

// SlotTextureCount reports how many textures a slot holds, zero for an
// unknown slot.
func (g *GameData) SlotTextureCount(slot string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.textureSlots[strings.ToLower(slot)])
}

// GetNameAndLOD splits the "{name}_l{level}" convention into the base
// name and level. Names without the suffix are level zero. Pure string
// work, no I/O.
func GetNameAndLOD(name string) (string, int) {
	underscore := strings.LastIndex(name, "_l")
	if underscore < 0 {
		return name, 0
	}

	digits := name[underscore+2:]
	if digits == "" {
		return name, 0
	}

	level := 0
	for _, r := range digits {
		if r < '0' || r > '9' {
			return name, 0
		}
		level = level*10 + int(r-'0')
	}

	return name[:underscore], level
}
