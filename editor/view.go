package editor

import (
	"math"

	"github.com/milk9111/leveleditor/common"
)

func (e *Editor) clampZoom(z float64) float64 {
	return common.Clamp(z, e.cfg.Editor.ZoomMin, e.cfg.Editor.ZoomMax)
}

func (e *Editor) SetZoom(z float64) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Zoom = e.clampZoom(z)
	return e.state.Zoom
}

// ZoomAt changes zoom by steps increments of the configured zoom step while
// keeping the world point under the screen position (sx, sy) fixed.
func (e *Editor) ZoomAt(steps, sx, sy float64) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	old := e.state.Zoom
	zoom := e.clampZoom(math.Round((old+steps*e.cfg.Editor.ZoomStep)*100) / 100)
	if zoom == old {
		return old
	}
	worldX := (sx - e.state.Pan.X) / old
	worldY := (sy - e.state.Pan.Y) / old
	e.state.Pan.X = sx - worldX*zoom
	e.state.Pan.Y = sy - worldY*zoom
	e.state.Zoom = zoom
	return zoom
}

func (e *Editor) SetPan(x, y float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Pan = Vec{X: x, Y: y}
}

func (e *Editor) PanBy(dx, dy float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Pan.X += dx
	e.state.Pan.Y += dy
}

// ScreenToGrid maps a screen pixel to the grid cell under it.
func (e *Editor) ScreenToGrid(sx, sy float64) common.Point {
	e.mu.Lock()
	defer e.mu.Unlock()
	size := float64(e.cfg.Editor.TileSize) * e.state.Zoom
	return common.Point{
		X: int(math.Floor((sx - e.state.Pan.X) / size)),
		Y: int(math.Floor((sy - e.state.Pan.Y) / size)),
	}
}

// SetMousePosition records the hovered cell.
func (e *Editor) SetMousePosition(p common.Point) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.MousePosition = p
}

func (e *Editor) ToggleGrid() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.ShowGrid = !e.state.ShowGrid
	return e.state.ShowGrid
}

func (e *Editor) ToggleScanlines() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.ShowScanlines = !e.state.ShowScanlines
	return e.state.ShowScanlines
}
