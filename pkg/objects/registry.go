package objects

import (
	"strings"

	"github.com/repeale/fp-go/option"
)

// Registry owns one ModelInfo per ModelID. Later insertions under the
// same ID replace earlier ones: override data files are loaded after
// base data files and win on purpose.
type Registry struct {
	models map[ModelID]ModelInfo
	names  map[string]ModelID
}

func NewRegistry() *Registry {
	return &Registry{
		models: make(map[ModelID]ModelInfo),
		names:  make(map[string]ModelID),
	}
}

func (r *Registry) InsertOrReplace(info ModelInfo) {
	if previous, ok := r.models[info.ID()]; ok {
		delete(r.names, previous.Name())
	}

	r.models[info.ID()] = info
	r.names[strings.ToLower(info.Name())] = info.ID()
}

func (r *Registry) Find(id ModelID) opt.Option[ModelInfo] {
	info, ok := r.models[id]
	if !ok {
		return opt.None[ModelInfo]()
	}
	return opt.Some(info)
}

// FindModelObject resolves a model name to its ID, InvalidModelID on
// miss.
func (r *Registry) FindModelObject(name string) ModelID {
	id, ok := r.names[strings.ToLower(name)]
	if !ok {
		return InvalidModelID
	}
	return id
}

func (r *Registry) Count() int {
	return len(r.models)
}

// ForEach visits every registered entry in unspecified order.
func (r *Registry) ForEach(visit func(info ModelInfo)) {
	for _, info := range r.models {
		visit(info)
	}
}

// FindTyped returns the entry under id only when its discriminant
// matches T. An entry stored under a different variant is a miss, not
// an error: callers ask for "the vehicle with this ID", and a simple
// object squatting on that ID is no vehicle.
func FindTyped[T ModelInfo](r *Registry, id ModelID) opt.Option[T] {
	info, ok := r.models[id]
	if !ok {
		return opt.None[T]()
	}

	typed, ok := any(info).(T)
	if !ok {
		return opt.None[T]()
	}
	return opt.Some(typed)
}
