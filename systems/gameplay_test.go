package systems

import (
	"testing"

	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_EndBannerThenFinish(t *testing.T) {
	e := newTestWorld(t, flatLevel)
	session := GetSession(e)

	UpdateSession(e)
	assert.Equal(t, 1, session.Tick)
	assert.False(t, Finished(e))

	session.ShouldQuit = true
	for i := 0; i < cfg.UI.EndScreenTicks-1; i++ {
		UpdateSession(e)
		require.False(t, Finished(e), "tick %d", i)
	}
	UpdateSession(e)
	assert.True(t, Finished(e))
	assert.Equal(t, cfg.UI.EndScreenTicks, session.EndedTicks)
}

func TestSession_ExitIsImmediate(t *testing.T) {
	e := newTestWorld(t, flatLevel)
	GetSession(e).Exit = true
	assert.True(t, Finished(e))
	assert.False(t, GameplayHalted(e), "leaving is not a game state")
}

func TestGameplayChecks_SkipAfterRunEnds(t *testing.T) {
	e := newTestWorld(t, flatLevel)
	player := settle(t, e)
	obj := components.Object.Get(player)
	components.Player.Get(player).MovingRight = true
	GetSession(e).Victory = true

	x := obj.X
	for i := 0; i < 10; i++ {
		tick(e)
	}
	assert.Equal(t, x, obj.X, "the world is frozen")
}

func TestScripted_TogglesWhenStripWraps(t *testing.T) {
	e := newTestWorld(t, flatLevel)
	oracle := spawnEnemy(e, "Oracle", 600, 70)
	enemy := components.Enemy.Get(oracle)
	require.Equal(t, cfg.Idle, stateOf(oracle))

	strip := enemy.Type.Strips[cfg.Idle]
	enemy.Type.ToggleChance = 1
	for i := 0; i < strip.Frames*strip.Delay-1; i++ {
		updateScripted(e, oracle)
		require.Equal(t, cfg.Idle, stateOf(oracle))
	}
	updateScripted(e, oracle)
	assert.Equal(t, cfg.Moving, stateOf(oracle))
	assert.Equal(t, 0.3, cfg.Enemy.Types["Oracle"].ToggleChance)
}

func TestScripted_NeverTogglesAtZeroChance(t *testing.T) {
	e := newTestWorld(t, flatLevel)
	oracle := spawnEnemy(e, "Oracle", 600, 70)
	components.Enemy.Get(oracle).Type.ToggleChance = 0

	for i := 0; i < 1000; i++ {
		updateScripted(e, oracle)
	}
	assert.Equal(t, cfg.Idle, stateOf(oracle))
}

func TestScripted_LoopsHurtOnceStruck(t *testing.T) {
	e := newTestWorld(t, flatLevel)
	oracle := spawnEnemy(e, "Oracle", 600, 70)
	strikeScripted(e, oracle)

	for i := 0; i < 500; i++ {
		updateScripted(e, oracle)
	}
	assert.Equal(t, cfg.Hurt, stateOf(oracle))
	frame, _ := animOf(oracle)
	assert.Less(t, frame, components.Enemy.Get(oracle).Type.Strips[cfg.Hurt].Frames)
}
