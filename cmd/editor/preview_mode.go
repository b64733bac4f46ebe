package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/leveleditor/config"
	"github.com/milk9111/leveleditor/editor"
	"github.com/milk9111/leveleditor/levels"
	"github.com/milk9111/leveleditor/preview"
)

var solidOutline = color.RGBA{255, 255, 255, 70}

// PreviewMode runs a player through the focused level so jumps and gaps can
// be tried without leaving the editor. The world is rebuilt from a snapshot
// when the mode starts; edits made meanwhile show up on the next start.
type PreviewMode struct {
	world    *preview.World
	player   *preview.Player
	tileSize int
}

func StartPreview(level *levels.Level, cfg config.Config) *PreviewMode {
	world := preview.NewWorld(level, cfg.Editor.TileSize)
	return &PreviewMode{
		world:    world,
		player:   preview.NewPlayer(world, level, cfg.Preview),
		tileSize: cfg.Editor.TileSize,
	}
}

func previewInput() preview.Input {
	return preview.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump: ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyW) ||
			ebiten.IsKeyPressed(ebiten.KeyArrowUp),
	}
}

func (pm *PreviewMode) Update() {
	pm.player.Step(1/float64(ebiten.TPS()), previewInput())
}

func (pm *PreviewMode) Draw(screen *ebiten.Image, st editor.State) {
	v := newView(st, pm.tileSize)
	scale := float32(v.cell / float64(pm.tileSize))
	for _, b := range pm.world.Boxes() {
		x, y := v.pixel(b.X, b.Y, pm.tileSize)
		vector.StrokeRect(screen, x, y, float32(b.Width)*scale, float32(b.Height)*scale, 1, solidOutline, false)
	}
	box := pm.player.Box()
	x, y := v.pixel(box.X, box.Y, pm.tileSize)
	vector.FillRect(screen, x, y, float32(box.Width)*scale, float32(box.Height)*scale, colornames.Gold, false)
}
