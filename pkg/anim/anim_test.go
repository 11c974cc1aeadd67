package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcengine/gamedata/pkg/formats"
)

func TestGetFallsBackToDefault(t *testing.T) {
	registry := NewGroupRegistry()
	registry.InsertGroup(&Group{
		Name:       "man",
		Animations: []string{"walk", "run"},
	})

	group := registry.Get("MAN")
	require.NotNil(t, group)
	assert.Equal(t, "man", group.Name)

	// Unknown names come back as the default group, never nil.
	missing := registry.Get("shuffle")
	require.NotNil(t, missing)
	assert.Same(t, registry.Default(), missing)
}

func TestPoolsAreDisjoint(t *testing.T) {
	registry := NewGroupRegistry()

	registry.InsertAnimations([]formats.AnimationDef{
		{Name: "walk", Duration: 1.2},
	}, false)
	registry.InsertAnimations([]formats.AnimationDef{
		{Name: "intro_wave", Duration: 4.0},
	}, true)

	_, ok := registry.FindAnimation("walk")
	assert.True(t, ok)
	_, ok = registry.FindAnimation("intro_wave")
	assert.False(t, ok)

	_, ok = registry.FindCutsceneAnimation("intro_wave")
	assert.True(t, ok)
	_, ok = registry.FindCutsceneAnimation("walk")
	assert.False(t, ok)
}

func TestAnimationLookupIsCaseInsensitive(t *testing.T) {
	registry := NewGroupRegistry()
	registry.InsertAnimations([]formats.AnimationDef{
		{Name: "Walk", Duration: 1.2},
	}, false)

	animation, ok := registry.FindAnimation("WALK")
	require.True(t, ok)
	assert.Equal(t, float32(1.2), animation.Duration)
}
