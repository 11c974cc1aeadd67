package gamedata

import (
	"errors"

	"github.com/lcengine/gamedata/pkg/formats"
)

// ErrNoParser reports a load that needs a parser the caller never
// injected.
var ErrNoParser = errors.New("no parser registered for this format")

// Parsers are the injected decoders for the binary mesh-era formats.
// Text formats are decoded by pkg/formats directly; these three carry
// renderer-specific payloads the registry has no business decoding, so
// the consuming engine supplies them.
type Parsers struct {
	TextureArchive func(data []byte) ([]formats.TextureDef, error)
	Model          func(data []byte) (*formats.ModelDef, error)
	Animations     func(data []byte) ([]formats.AnimationDef, error)
}

func (p *Parsers) parseTextures(data []byte) ([]formats.TextureDef, error) {
	if p.TextureArchive == nil {
		return nil, ErrNoParser
	}
	return p.TextureArchive(data)
}

func (p *Parsers) parseModel(data []byte) (*formats.ModelDef, error) {
	if p.Model == nil {
		return nil, ErrNoParser
	}
	return p.Model(data)
}

func (p *Parsers) parseAnimations(data []byte) ([]formats.AnimationDef, error) {
	if p.Animations == nil {
		return nil, ErrNoParser
	}
	return p.Animations(data)
}
