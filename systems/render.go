package systems

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/automoto/knightfall/assets"
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/automoto/knightfall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RenderCommand is everything needed to draw one entity: which sheet, which
// cell of it, where on screen and whether mirrored. Fill is the placeholder
// color used when the sheet is missing. An empty Src means the whole sheet.
type RenderCommand struct {
	Sheet string
	Src   image.Rectangle
	Dst   image.Rectangle
	FlipH bool
	Fill  color.RGBA
}

var drawOp = &ebiten.DrawImageOptions{}

// BuildRenderCommands computes the draw list for this tick in screen space,
// back to front: platforms, doors, items, enemies, bullets, then the player.
// Simulation values stay float; they are truncated only here.
func BuildRenderCommands(e *ecs.ECS) []RenderCommand {
	ox, oy := ViewOrigin(e)
	var cmds []RenderCommand

	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		code := components.Platform.Get(entry).Code
		cmds = append(cmds, RenderCommand{
			Sheet: cfg.Combat.PlatformSheets[code],
			Dst:   screenRect(components.Object.Get(entry).Rect(), ox, oy),
			Fill:  cfg.Gray,
		})
	})
	tags.Door.Each(e.World, func(entry *donburi.Entry) {
		cmds = append(cmds, RenderCommand{
			Sheet: cfg.Combat.DoorSheet,
			Dst:   screenRect(components.Object.Get(entry).Rect(), ox, oy),
			Fill:  cfg.Blue,
		})
	})
	tags.Item.Each(e.World, func(entry *donburi.Entry) {
		if components.Item.Get(entry).Collected {
			return
		}
		cmds = append(cmds, RenderCommand{
			Sheet: cfg.Combat.ItemSheet,
			Dst:   screenRect(components.Object.Get(entry).Rect(), ox, oy),
			Fill:  cfg.Yellow,
		})
	})
	eachEnemyByType(e.World, func(entry *donburi.Entry, enemy *components.EnemyData) {
		cmds = append(cmds, enemyRenderCommand(entry, enemy, ox, oy))
	})
	tags.Bullet.Each(e.World, func(entry *donburi.Entry) {
		bullet := components.Bullet.Get(entry)
		if bullet.ToRemove {
			return
		}
		cmds = append(cmds, RenderCommand{
			Sheet: cfg.Combat.BulletSheet,
			Dst:   screenRect(components.Object.Get(entry).Rect(), ox, oy),
			FlipH: bullet.VelocityX < 0,
			Fill:  cfg.White,
		})
	})
	if player, ok := playerEntry(e); ok {
		cmds = append(cmds, playerRenderCommand(player, ox, oy))
	}
	return cmds
}

func playerRenderCommand(entry *donburi.Entry, ox, oy float64) RenderCommand {
	state := components.State.Get(entry)
	anim := components.Animation.Get(entry)
	sheet := anim.Sprites[state.CurrentState]
	return RenderCommand{
		Sheet: sheet.Name,
		Src:   frameRect(sheet, anim.Anim.Frame()),
		Dst:   screenRect(components.Object.Get(entry).Rect(), ox, oy),
		FlipH: components.Player.Get(entry).FacingLeft,
		Fill:  cfg.Blue,
	}
}

func enemyRenderCommand(entry *donburi.Entry, enemy *components.EnemyData, ox, oy float64) RenderCommand {
	t := enemy.Type
	state := components.State.Get(entry)
	anim := components.Animation.Get(entry)
	body := components.Object.Get(entry).Rect()
	sheet := anim.Sprites[state.CurrentState]

	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	w, h := t.RenderW, t.RenderH
	if w == 0 || h == 0 {
		w = float64(sheet.FrameW) * scale
		h = float64(sheet.FrameH) * scale
	}
	y := body.Y
	if t.AlignBottom {
		y = body.Y - h + float64(sheet.FrameH)
	}
	dst := gamemath.NewRect(body.X+t.RenderOffsetX, y, w, h)

	return RenderCommand{
		Sheet: sheetName(sheet.Name, sheetIndex(enemy, state)),
		Src:   frameRect(sheet, anim.Anim.Frame()),
		Dst:   screenRect(dst, ox, oy),
		FlipH: enemyFlip(t.Flip, enemy.FacingRight, state.Is(cfg.Attacking)),
		Fill:  t.Fill,
	}
}

func enemyFlip(rule cfg.FlipRule, facingRight, attacking bool) bool {
	switch rule {
	case cfg.FlipWhenFacingRight:
		return facingRight
	case cfg.FlipWhenFacingRightOrAttacking:
		return facingRight || attacking
	case cfg.FlipInvertedWhileAttacking:
		if attacking {
			return !facingRight
		}
		return facingRight
	}
	return false
}

// sheetName fills in the alternate sheet number, counted from 1.
func sheetName(name string, index int) string {
	if !strings.Contains(name, "%d") {
		return name
	}
	return fmt.Sprintf(name, index+1)
}

// frameRect cuts frame out of a horizontal strip, wrapping it into the cells
// the image actually has.
func frameRect(sheet cfg.SpriteSheet, frame int) image.Rectangle {
	if sheet.FrameW <= 0 || sheet.FrameH <= 0 {
		return image.Rectangle{}
	}
	if sheet.Frames > 0 {
		frame %= sheet.Frames
	}
	x := frame * sheet.FrameW
	return image.Rect(x, 0, x+sheet.FrameW, sheet.FrameH)
}

func screenRect(r gamemath.Rect, ox, oy float64) image.Rectangle {
	x, y := int(r.X-ox), int(r.Y-oy)
	return image.Rect(x, y, x+int(r.W), y+int(r.H))
}

// DrawWorld draws the render commands, falling back to a solid rectangle for
// any sheet that could not be loaded.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	bounds := screen.Bounds()
	for _, cmd := range BuildRenderCommands(e) {
		if !cmd.Dst.Overlaps(bounds) {
			continue
		}
		drawCommand(screen, cmd)
	}
}

func drawCommand(screen *ebiten.Image, cmd RenderCommand) {
	var img *ebiten.Image
	if cmd.Sheet != "" {
		img = assets.GetFrame(cmd.Sheet, cmd.Src)
	}
	dw, dh := float64(cmd.Dst.Dx()), float64(cmd.Dst.Dy())
	if img == nil {
		vector.FillRect(screen,
			float32(cmd.Dst.Min.X), float32(cmd.Dst.Min.Y),
			float32(dw), float32(dh),
			cmd.Fill, false)
		return
	}

	sw, sh := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	if sw == 0 || sh == 0 {
		return
	}
	drawOp.GeoM.Reset()
	if cmd.FlipH {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(sw, 0)
	}
	drawOp.GeoM.Scale(dw/sw, dh/sh)
	drawOp.GeoM.Translate(float64(cmd.Dst.Min.X), float64(cmd.Dst.Min.Y))
	screen.DrawImage(img, drawOp)
}

// DrawHitboxes outlines bodies and live attack boxes when the debug overlay
// is on.
func DrawHitboxes(e *ecs.ECS, screen *ebiten.Image) {
	settingsEntry, ok := components.Settings.First(e.World)
	if !ok || !components.Settings.Get(settingsEntry).ShowHitboxes {
		return
	}
	ox, oy := ViewOrigin(e)

	components.Object.Each(e.World, func(entry *donburi.Entry) {
		strokeRect(screen, components.Object.Get(entry).Rect(), ox, oy, cfg.LightGreen)
	})
	if player, ok := playerEntry(e); ok {
		if box, ok := PlayerAttackBox(player); ok {
			strokeRect(screen, box, ox, oy, cfg.Red)
		}
	}
	eachEnemyByType(e.World, func(entry *donburi.Entry, enemy *components.EnemyData) {
		if components.State.Get(entry).Is(cfg.Attacking) {
			strokeRect(screen, EnemyAttackBox(entry), ox, oy, cfg.Orange)
		}
	})
}

func strokeRect(screen *ebiten.Image, r gamemath.Rect, ox, oy float64, c color.RGBA) {
	vector.StrokeRect(screen, float32(r.X-ox), float32(r.Y-oy), float32(r.W), float32(r.H), 1, c, false)
}
