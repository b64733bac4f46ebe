package main

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/leveleditor/buttons"
	"github.com/milk9111/leveleditor/common"
	"github.com/milk9111/leveleditor/editor"
	"github.com/milk9111/leveleditor/levels"
	"github.com/milk9111/leveleditor/selection"
)

type dragKind int

const (
	dragNone dragKind = iota
	dragShape
	dragMove
	dragMarquee
)

var (
	canvasBackground = color.RGBA{24, 24, 32, 255}
	gridColor        = color.RGBA{255, 255, 255, 24}
	hoverColor       = color.RGBA{255, 255, 255, 90}
	selectColor      = colornames.Yellow
	linkColor        = colornames.Cyan
	linkSourceColor  = colornames.Lime
	shapeColor       = color.RGBA{120, 200, 255, 110}
	marqueeColor     = color.RGBA{255, 255, 0, 160}
	scanlineColor    = color.RGBA{0, 0, 0, 60}
)

// Canvas turns mouse gestures on the level area into editor operations and
// draws the focused level.
type Canvas struct {
	ed     *editor.Editor
	face   text.Face
	status func(string)

	drag      dragKind
	dragStart common.Point
	dragCur   common.Point

	panning       bool
	panLastX      int
	panLastY      int
	deletingSince time.Time
	wasDeleting   bool
}

func NewCanvas(ed *editor.Editor, face text.Face, status func(string)) *Canvas {
	return &Canvas{ed: ed, face: face, status: status}
}

func overUI(mx, my int) bool {
	return mx < leftPanelWidth || my < toolbarHeight
}

func (c *Canvas) Update(mx, my int, st editor.State, lvl *levels.Level) {
	lx, ly := float64(mx-leftPanelWidth), float64(my)
	cell := c.ed.ScreenToGrid(lx, ly)
	if cell != st.MousePosition {
		c.ed.SetMousePosition(cell)
	}

	if !c.wasDeleting && len(st.DeletingObjects) > 0 {
		c.deletingSince = time.Now()
	}
	c.wasDeleting = len(st.DeletingObjects) > 0

	c.updatePan(mx, my)

	if overUI(mx, my) && c.drag == dragNone && !c.ed.Painting() {
		return
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		c.ed.ZoomAt(wheelSteps(wy), lx, ly)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		c.press(cell, st, lvl)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		c.dragCur = cell
		if c.ed.Painting() {
			c.ed.Paint(cell)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		c.release(cell, st, lvl)
	}
}

func (c *Canvas) updatePan(mx, my int) {
	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if !held {
		c.panning = false
		return
	}
	if !c.panning {
		if overUI(mx, my) {
			return
		}
		c.panning = true
	} else {
		c.ed.PanBy(float64(mx-c.panLastX), float64(my-c.panLastY))
	}
	c.panLastX, c.panLastY = mx, my
}

func (c *Canvas) press(cell common.Point, st editor.State, lvl *levels.Level) {
	c.dragStart, c.dragCur = cell, cell
	multi := ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyControl)

	switch st.Tool {
	case selection.ToolPen:
		entry, ok := paletteEntry(st.TileType)
		switch {
		case st.TileType == "":
			c.status("Pick something from the palette first")
		case ok && entry.Object:
			if _, added := c.ed.AddObject(cell, st.TileType); added {
				c.status("Added " + typeName(st.TileType))
			}
		default:
			c.ed.BeginPaint()
			c.ed.Paint(cell)
		}

	case selection.ToolLine, selection.ToolRectangle:
		if entry, ok := paletteEntry(st.TileType); st.TileType == "" || (ok && entry.Object) {
			c.status("Shape tools draw tiles only")
			return
		}
		c.drag = dragShape

	case selection.ToolMultiSelect:
		c.drag = dragMarquee

	case selection.ToolMove:
		hit, ok := entityAt(lvl, cell)
		if !ok {
			return
		}
		if !st.IsSelected(hit.ID) {
			c.ed.SelectObject(hit.ID, false)
		}
		c.drag = dragMove

	case selection.ToolLink:
		hit, ok := entityAt(lvl, cell)
		if !ok {
			return
		}
		res, done := c.ed.LinkClick(hit.ID)
		switch {
		case !done:
			c.status("Link from " + typeName(hit.Type) + ": pick the target")
		case res.Valid:
			c.status("Linked")
		default:
			c.status(res.Reason)
		}

	case selection.ToolUnlink:
		hit, ok := entityAt(lvl, cell)
		if !ok {
			return
		}
		res, done := c.ed.UnlinkClick(hit.ID)
		switch {
		case !done:
			c.status("Unlink " + typeName(hit.Type) + ": pick the other object")
		case res.Valid:
			c.status("Unlinked")
		default:
			c.status(res.Reason)
		}

	default:
		if hit, ok := entityAt(lvl, cell); ok {
			c.ed.SelectObject(hit.ID, multi)
		} else if !multi {
			c.ed.ClearSelection()
		}
	}
}

func (c *Canvas) release(cell common.Point, st editor.State, lvl *levels.Level) {
	kind := c.drag
	c.drag = dragNone

	if c.ed.Painting() {
		if n := c.ed.EndPaint(); n > 0 {
			c.status(fmt.Sprintf("Placed %d tiles", n))
		}
		return
	}

	switch kind {
	case dragShape:
		positions := c.shapePositions(st.Tool, cell)
		c.ed.DrawPositions(positions, st.TileType, st.Tool.String())
	case dragMarquee:
		ids := entitiesInRect(lvl, c.dragStart, cell)
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			ids = append(st.Objects, ids...)
		}
		c.ed.SetSelection(ids)
		c.status(fmt.Sprintf("Selected %d", len(c.ed.State().Objects)))
	case dragMove:
		delta := common.Point{X: cell.X - c.dragStart.X, Y: cell.Y - c.dragStart.Y}
		c.ed.MoveSelectedObjects(delta)
	}
}

func (c *Canvas) shapePositions(tool selection.Tool, end common.Point) []common.Point {
	if tool == selection.ToolLine {
		return common.LinePositions(c.dragStart, end)
	}
	filled := ebiten.IsKeyPressed(ebiten.KeyShift)
	return common.RectanglePositions(c.dragStart, end, filled)
}

func (c *Canvas) Draw(screen *ebiten.Image, st editor.State, lvl *levels.Level, tileSize int) {
	v := newView(st, tileSize)
	bounds := screen.Bounds()

	bg := canvasBackground
	if parsed, ok := buttons.ParseHexColor(lvl.Metadata.BackgroundColor); ok {
		bg = parsed
	}
	x, y, w, h := v.rect(common.Point{}, lvl.Metadata.Dimensions)
	vector.FillRect(screen, x, y, w, h, bg, false)

	if st.ShowGrid {
		c.drawGrid(screen, v, lvl.Metadata.Dimensions)
	}

	shrink := shrinkScale(time.Since(c.deletingSince), c.ed.Config().Editor.DeleteDelay)
	for _, coll := range [][]levels.Entity{lvl.Tiles, lvl.Objects, lvl.SpawnPoints} {
		for _, e := range coll {
			scale := 1.0
			if st.IsDeleting(e.ID) {
				scale = shrink
			}
			c.drawEntity(screen, v, e, scale)
		}
	}

	c.drawLinks(screen, v, lvl, st)
	c.drawBadges(screen, v, lvl)

	for _, id := range st.Objects {
		if e, _, ok := lvl.Find(id); ok {
			x, y, w, h := v.rect(e.Position, e.Dimensions)
			vector.StrokeRect(screen, x, y, w, h, 2, selectColor, false)
		}
	}

	switch c.drag {
	case dragShape:
		for _, p := range c.shapePositions(st.Tool, c.dragCur) {
			x, y, w, h := v.rect(p, levels.Size{Width: 1, Height: 1})
			vector.FillRect(screen, x, y, w, h, shapeColor, false)
		}
	case dragMarquee:
		a, b := c.dragStart, c.dragCur
		corner := common.Point{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
		size := levels.Size{Width: common.Abs(a.X-b.X) + 1, Height: common.Abs(a.Y-b.Y) + 1}
		x, y, w, h := v.rect(corner, size)
		vector.StrokeRect(screen, x, y, w, h, 1, marqueeColor, false)
	}

	hx, hy, hw, hh := v.rect(st.MousePosition, levels.Size{Width: 1, Height: 1})
	vector.StrokeRect(screen, hx, hy, hw, hh, 1, hoverColor, false)

	if st.ShowScanlines {
		for sy := 0; sy < bounds.Dy(); sy += 3 {
			vector.FillRect(screen, 0, float32(sy), float32(bounds.Dx()), 1, scanlineColor, false)
		}
	}
}

func (c *Canvas) drawGrid(screen *ebiten.Image, v view, dims levels.Size) {
	x0, y0, w, h := v.rect(common.Point{}, dims)
	step := float32(v.cell)
	if step < 4 {
		return
	}
	for i := 0; i <= dims.Width; i++ {
		x := x0 + float32(i)*step
		vector.StrokeLine(screen, x, y0, x, y0+h, 1, gridColor, false)
	}
	for j := 0; j <= dims.Height; j++ {
		y := y0 + float32(j)*step
		vector.StrokeLine(screen, x0, y, x0+w, y, 1, gridColor, false)
	}
}

func (c *Canvas) drawEntity(screen *ebiten.Image, v view, e levels.Entity, scale float64) {
	if scale <= 0 {
		return
	}
	x, y, w, h := v.rect(e.Position, e.Dimensions)
	if scale < 1 {
		s := float32(scale)
		x += w * (1 - s) / 2
		y += h * (1 - s) / 2
		w, h = w*s, h*s
	}
	col := entityColor(e)
	if levels.KindOf(e) == levels.KindSpawn {
		vector.FillCircle(screen, x+w/2, y+h/2, min(w, h)/2-1, col, true)
		return
	}
	vector.FillRect(screen, x, y, w, h, col, false)
	if levels.KindOf(e) == levels.KindObject {
		vector.StrokeRect(screen, x, y, w, h, 1, colornames.Black, false)
	}
}

func (c *Canvas) drawLinks(screen *ebiten.Image, v view, lvl *levels.Level, st editor.State) {
	byID := make(map[string]levels.Entity, len(lvl.Objects))
	for _, o := range lvl.Objects {
		byID[o.ID] = o
	}
	for _, o := range lvl.Objects {
		x0, y0 := v.center(o)
		for _, id := range o.Properties.Strings(levels.PropLinkedObjects) {
			target, ok := byID[id]
			if !ok {
				continue
			}
			x1, y1 := v.center(target)
			vector.StrokeLine(screen, x0, y0, x1, y1, 2, linkColor, true)
			vector.FillCircle(screen, x1, y1, 3, linkColor, true)
		}
	}
	for _, id := range []string{st.LinkSourceID, st.UnlinkSourceID} {
		if src, ok := byID[id]; ok {
			x, y, w, h := v.rect(src.Position, src.Dimensions)
			vector.StrokeRect(screen, x-2, y-2, w+4, h+4, 2, linkSourceColor, false)
		}
	}
}

func (c *Canvas) drawBadges(screen *ebiten.Image, v view, lvl *levels.Level) {
	scheme := buttons.SchemeForBackground(lvl.Metadata.BackgroundColor)
	bg, _ := buttons.ParseHexColor(scheme.Bg)
	fg, _ := buttons.ParseHexColor(scheme.Text)
	badgeBg := color.NRGBA{R: bg.R, G: bg.G, B: bg.B, A: uint8(scheme.Opacity * 255)}

	for _, o := range lvl.Objects {
		if o.Type != levels.TypeButton {
			continue
		}
		n, ok := o.Properties.Number(levels.PropButtonNumber)
		if !ok {
			continue
		}
		label := strconv.Itoa(int(n))
		tw, th := text.Measure(label, c.face, 0)
		x, y, _, _ := v.rect(o.Position, o.Dimensions)
		vector.FillRect(screen, x-2, y-float32(th)-2, float32(tw)+6, float32(th)+4, badgeBg, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x)+1, float64(y)-th)
		op.ColorScale.ScaleWithColor(fg)
		text.Draw(screen, label, c.face, op)
	}
}
