package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need the v1 API
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the player's health bar and hearts in the top-left corner,
// the level name in the top-right one, the boss bar along the bottom while a
// boss is alive, and the end banner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	player, ok := playerEntry(e)
	if !ok {
		return
	}
	ui := cfg.UI
	m := ui.HealthBarMargin

	hp := components.Health.Get(player)
	ratio := 0.0
	if hp.Max > 0 {
		ratio = components.Player.Get(player).DisplayHealth / float64(hp.Max)
	}
	drawBar(screen, m, m, ui.HealthBarWidth, ui.HealthBarHeight, ratio, ui.HealthBarBgColor, ui.HealthBarFgColor)

	drawHealthLabel(screen, hp, m+ui.HealthBarWidth+ui.HeartGap, m+ui.HealthBarHeight)
	drawLevelLabel(e, screen, m)

	lives := components.Lives.Get(player)
	heartY := m + ui.HealthBarHeight + ui.HeartGap
	for i := 0; i < lives.Lives; i++ {
		x := m + float64(i)*(ui.HeartSize+ui.HeartGap)
		vector.FillRect(screen, float32(x), float32(heartY), float32(ui.HeartSize), float32(ui.HeartSize), ui.HeartColor, false)
	}

	if boss, ok := livingBoss(e); ok {
		bh := components.Health.Get(boss)
		w := float64(cfg.C.Width) - 2*m
		y := float64(cfg.C.Height) - m - ui.BossBarHeight
		drawBar(screen, m, y, w, ui.BossBarHeight, bh.Ratio(), ui.HealthBarBgColor, ui.BossBarColor)
	}

	drawEndBanner(e, screen)
}

func drawBar(screen *ebiten.Image, x, y, w, h, ratio float64, bg, fg color.RGBA) {
	ratio = max(0, min(1, ratio))
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), bg, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w*ratio), float32(h), fg, false)
}

func drawHealthLabel(screen *ebiten.Image, hp *components.HealthData, x, y float64) {
	if !fonts.Loaded(fonts.HUD) {
		return
	}
	text.Draw(screen, healthLabel(hp), fonts.HUD.Get(), int(x), int(y), cfg.UI.TextColor)
}

func healthLabel(hp *components.HealthData) string {
	return fmt.Sprintf("%d/%d", hp.Current, hp.Max)
}

// drawLevelLabel names the level being played in the top-right corner.
func drawLevelLabel(e *ecs.ECS, screen *ebiten.Image, margin float64) {
	label, ok := levelLabel(e)
	if !ok || !fonts.Loaded(fonts.HUD) {
		return
	}
	face := fonts.HUD.Get()
	w := font.MeasureString(face, label).Ceil()
	x := cfg.C.Width - int(margin) - w
	y := int(margin) + face.Metrics().Ascent.Ceil()
	text.Draw(screen, label, face, x, y, cfg.UI.TextColor)
}

func levelLabel(e *ecs.ECS) (string, bool) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return "", false
	}
	level := components.Level.Get(entry)
	grid := level.Current()
	if grid == nil {
		return "", false
	}
	return fmt.Sprintf("%s %d/%d", grid.Name, level.Index+1, len(level.Grids)), true
}

// livingBoss returns the first boss that is not yet dying.
func livingBoss(e *ecs.ECS) (*donburi.Entry, bool) {
	var found *donburi.Entry
	eachEnemyByType(e.World, func(entry *donburi.Entry, enemy *components.EnemyData) {
		if found != nil || enemy.Type.Behavior != cfg.BehaviorBoss {
			return
		}
		if components.State.Get(entry).Is(cfg.Dying) {
			return
		}
		found = entry
	})
	return found, found != nil
}

func drawEndBanner(e *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(e)
	if session == nil || !session.Ended() || !fonts.Loaded(fonts.Title) {
		return
	}
	banner := "GAME OVER"
	if session.Victory {
		banner = "YOU WIN"
	}
	face := fonts.Title.Get()
	w := font.MeasureString(face, banner).Ceil()
	x := (cfg.C.Width - w) / 2
	y := cfg.C.Height / 2
	text.Draw(screen, banner, face, x, y, cfg.UI.TextColor)
}
