package anim

import (
	"strings"

	"github.com/lcengine/gamedata/pkg/formats"
)

// Animation is one named clip. Frame data lives with the renderer; the
// registry only tracks identity and length.
type Animation struct {
	Name     string
	Duration float32
}

// AnimationSet is a pool of animations keyed by lowercased name.
type AnimationSet map[string]*Animation

func (s AnimationSet) Insert(def formats.AnimationDef) {
	name := strings.ToLower(def.Name)
	s[name] = &Animation{
		Name:     name,
		Duration: def.Duration,
	}
}

func (s AnimationSet) Find(name string) (*Animation, bool) {
	animation, ok := s[strings.ToLower(name)]
	return animation, ok
}

// Group is a named set of animation names a character type plays from.
type Group struct {
	Name       string
	Animations []string
}

// GroupRegistry owns the animation groups plus the two animation pools.
// Normal and cutscene animations never mix: a cutscene clip must not be
// reachable from gameplay lookups, and vice versa.
type GroupRegistry struct {
	groups map[string]*Group

	normal   AnimationSet
	cutscene AnimationSet

	fallback *Group
}

func NewGroupRegistry() *GroupRegistry {
	return &GroupRegistry{
		groups:   make(map[string]*Group),
		normal:   make(AnimationSet),
		cutscene: make(AnimationSet),
		fallback: &Group{Name: "default"},
	}
}

func (r *GroupRegistry) InsertGroup(group *Group) {
	r.groups[strings.ToLower(group.Name)] = group
}

// Get resolves a group by name. A miss yields the default group, never
// nil: playback code holds a usable group unconditionally.
func (r *GroupRegistry) Get(name string) *Group {
	if group, ok := r.groups[strings.ToLower(name)]; ok {
		return group
	}
	return r.fallback
}

// Default is the group handed out for unknown names.
func (r *GroupRegistry) Default() *Group {
	return r.fallback
}

func (r *GroupRegistry) GroupCount() int {
	return len(r.groups)
}

// InsertAnimations files parsed clips into one of the two pools.
func (r *GroupRegistry) InsertAnimations(defs []formats.AnimationDef, cutscene bool) {
	pool := r.normal
	if cutscene {
		pool = r.cutscene
	}
	for _, def := range defs {
		pool.Insert(def)
	}
}

// FindAnimation looks a clip up in the normal pool only.
func (r *GroupRegistry) FindAnimation(name string) (*Animation, bool) {
	return r.normal.Find(name)
}

// FindCutsceneAnimation looks a clip up in the cutscene pool only.
func (r *GroupRegistry) FindCutsceneAnimation(name string) (*Animation, bool) {
	return r.cutscene.Find(name)
}
