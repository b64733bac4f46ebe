package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZoomClamp(t *testing.T) {
	e, _, _ := newTestEditor(t)

	tests := []struct {
		in   float64
		want float64
	}{
		{1.5, 1.5},
		{10, 5},
		{0, 0.1},
		{-3, 0.1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.SetZoom(tt.in))
	}
}

func TestZoomAtKeepsCursorAnchored(t *testing.T) {
	e, _, _ := newTestEditor(t)
	e.SetPan(40, -20)

	const sx, sy = 300.0, 200.0
	before := e.State()
	worldX := (sx - before.Pan.X) / before.Zoom
	worldY := (sy - before.Pan.Y) / before.Zoom

	zoom := e.ZoomAt(3, sx, sy)
	assert.InDelta(t, 1.3, zoom, 1e-9)

	after := e.State()
	assert.InDelta(t, worldX, (sx-after.Pan.X)/after.Zoom, 1e-9)
	assert.InDelta(t, worldY, (sy-after.Pan.Y)/after.Zoom, 1e-9)

	e.SetZoom(5)
	pan := e.State().Pan
	assert.Equal(t, 5.0, e.ZoomAt(1, sx, sy))
	assert.Equal(t, pan, e.State().Pan, "zoom at the limit does not pan")
}

func TestScreenToGrid(t *testing.T) {
	e, _, _ := newTestEditor(t)

	assert.Equal(t, pt(3, 1), e.ScreenToGrid(100, 40))

	e.SetPan(16, 0)
	assert.Equal(t, pt(-1, 0), e.ScreenToGrid(15, 0))

	e.SetPan(0, 0)
	e.SetZoom(2)
	assert.Equal(t, pt(1, 0), e.ScreenToGrid(64, 63))

	e.PanBy(-64, 0)
	assert.Equal(t, pt(2, 0), e.ScreenToGrid(64, 0))
}

func TestToggles(t *testing.T) {
	e, _, _ := newTestEditor(t)
	assert.False(t, e.ToggleGrid())
	assert.True(t, e.ToggleGrid())
	assert.True(t, e.ToggleScanlines())

	e.SetMousePosition(pt(7, 8))
	assert.Equal(t, pt(7, 8), e.State().MousePosition)
}
