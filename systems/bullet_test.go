package systems

import (
	"testing"

	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/systems/factory"
	"github.com/automoto/knightfall/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBullets_HitPlayerOnce(t *testing.T) {
	e := newTestWorld(t, flatLevel)
	player := settle(t, e)
	obj := components.Object.Get(player)

	grunt := spawnEnemy(e, "Grunt", 900, 70)
	bullet := factory.CreateBullet(e, grunt.Entity(), obj.X+obj.W+2, obj.Y+10, false)

	UpdateBullets(e)
	assert.Equal(t, cfg.Player.MaxHealth-cfg.Combat.BulletDamage, components.Health.Get(player).Current)
	assert.True(t, components.Bullet.Get(bullet).ToRemove)

	UpdateBullets(e)
	assert.Equal(t, cfg.Player.MaxHealth-cfg.Combat.BulletDamage, components.Health.Get(player).Current, "a spent bullet never hits again")

	UpdateRemovals(e)
	assert.Zero(t, countTagged(e, tags.Bullet))
}

func TestBullets_NotGatedByCooldown(t *testing.T) {
	e := newTestWorld(t, flatLevel)
	player := settle(t, e)
	obj := components.Object.Get(player)
	grunt := spawnEnemy(e, "Grunt", 900, 70)
	components.Enemy.Get(grunt).AttackCooldown = 60

	for i := 0; i < 3; i++ {
		factory.CreateBullet(e, grunt.Entity(), obj.X+10, obj.Y+10, true)
	}
	UpdateBullets(e)
	assert.Equal(t, cfg.Player.MaxHealth-3*cfg.Combat.BulletDamage, components.Health.Get(player).Current)
}

func TestBullets_LeaveLevel(t *testing.T) {
	e := newTestWorld(t, flatLevel)
	grunt := spawnEnemy(e, "Grunt", 900, 70)
	levelW := 20 * cfg.World.TileWidth

	left := factory.CreateBullet(e, grunt.Entity(), -cfg.Combat.BulletWidth+2, 0, false)
	right := factory.CreateBullet(e, grunt.Entity(), levelW+cfg.Combat.BulletWidth-2, 0, true)
	inside := factory.CreateBullet(e, grunt.Entity(), 300, 0, true)

	UpdateBullets(e)
	assert.True(t, components.Bullet.Get(left).ToRemove)
	assert.True(t, components.Bullet.Get(right).ToRemove)
	assert.False(t, components.Bullet.Get(inside).ToRemove)
	assert.Equal(t, 305.0, components.Object.Get(inside).X)
}

func TestRemovals_BulletsFollowTheirOwner(t *testing.T) {
	e := newTestWorld(t, flatLevel)
	grunt := spawnEnemy(e, "Grunt", 900, 70)
	other := spawnEnemy(e, "Grunt", 300, 70)
	for i := 0; i < 3; i++ {
		factory.CreateBullet(e, grunt.Entity(), 500, 0, true)
	}
	kept := factory.CreateBullet(e, other.Entity(), 500, 0, true)

	components.Enemy.Get(grunt).ToRemove = true
	UpdateRemovals(e)

	assert.False(t, grunt.Valid())
	assert.True(t, other.Valid())
	assert.Equal(t, 1, countTagged(e, tags.Bullet))
	assert.True(t, kept.Valid())
}

func TestRemovals_LeaveCollisionSpace(t *testing.T) {
	e := newTestWorld(t, flatLevel)
	grunt := spawnEnemy(e, "Grunt", 900, 70)
	obj := components.Object.Get(grunt).Object
	require.NotNil(t, obj.Space)

	components.Enemy.Get(grunt).ToRemove = true
	UpdateRemovals(e)
	assert.Nil(t, obj.Space)
}
