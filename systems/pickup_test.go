package systems

import (
	"testing"

	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pickupLevel has a health item at column 5 and a door at column 12.
var pickupLevel = []string{
	"0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
	"0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
	"0 0 0 0 0 7 0 0 0 0 0 0 6 0 0 0 0 0 0 0",
	"1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1",
}

func TestItem_HealsOnce(t *testing.T) {
	e := newTestWorld(t, pickupLevel)
	player := settle(t, e)
	health := components.Health.Get(player)
	health.Current = 50

	item, ok := tags.Item.First(e.World)
	require.True(t, ok)
	placeAt(player, components.Object.Get(item).X-10, components.Object.Get(player).Y)

	UpdatePickups(e)
	assert.Equal(t, 50+cfg.Combat.ItemHeal, health.Current)
	assert.True(t, components.Item.Get(item).Collected)

	UpdatePickups(e)
	UpdatePickups(e)
	assert.Equal(t, 50+cfg.Combat.ItemHeal, health.Current, "a collected item never heals again")
}

func TestItem_HealCapsAtMax(t *testing.T) {
	e := newTestWorld(t, pickupLevel)
	player := settle(t, e)
	health := components.Health.Get(player)
	health.Current = health.Max - 3

	item, _ := tags.Item.First(e.World)
	placeAt(player, components.Object.Get(item).X, components.Object.Get(player).Y)
	UpdatePickups(e)
	assert.Equal(t, health.Max, health.Current)
}

func TestDoor_FadesThenLoadsNextLevelOnce(t *testing.T) {
	e := newTestWorld(t, pickupLevel, flatLevel)
	player := settle(t, e)
	levelEntry, _ := components.Level.First(e.World)
	level := components.Level.Get(levelEntry)
	require.Equal(t, 1, level.Loads)

	door, ok := tags.Door.First(e.World)
	require.True(t, ok)
	assert.Equal(t, 1, components.Door.Get(door).Target)

	placeAt(player, components.Object.Get(door).X, components.Object.Get(player).Y)
	UpdatePickups(e)

	transition := GetTransition(e)
	require.True(t, transition.Active())
	assert.Equal(t, 1, transition.Target)
	assert.True(t, GameplayHalted(e))

	// Touching the door again while fading does not restart the fade.
	UpdateTransition(e)
	UpdatePickups(e)
	assert.Equal(t, cfg.Transition.FadeSpeed, transition.Alpha)

	prev := transition.Alpha
	for transition.Active() {
		require.Equal(t, 1, level.Loads, "no load before the fade completes")
		UpdateTransition(e)
		assert.Equal(t, cfg.Transition.FadeSpeed, transition.Alpha-prev)
		prev = transition.Alpha
	}
	assert.Equal(t, cfg.Transition.MaxAlpha, transition.Alpha)
	assert.Equal(t, 2, level.Loads)
	assert.Equal(t, 1, level.Index)

	for i := 0; i < 10; i++ {
		UpdateTransition(e)
	}
	assert.Equal(t, 2, level.Loads, "exactly one load per fade")
	assert.False(t, GameplayHalted(e))
	assert.Zero(t, countTagged(e, tags.Door))
	assert.Zero(t, countTagged(e, tags.Item))
}

func TestDoor_HaltsGameplayWhileFading(t *testing.T) {
	e := newTestWorld(t, pickupLevel, flatLevel)
	player := settle(t, e)
	obj := components.Object.Get(player)
	GetTransition(e).Start(1)

	x := obj.X
	components.Player.Get(player).MovingRight = true
	WithGameplayChecks(UpdatePlayer)(e)
	assert.Equal(t, x, obj.X)
}
