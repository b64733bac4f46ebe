package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/leveleditor/batch"
	"github.com/milk9111/leveleditor/common"
	"github.com/milk9111/leveleditor/selection"
)

var toolKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
}

var nudges = map[ebiten.Key]common.Point{
	ebiten.KeyArrowLeft:  {X: -1},
	ebiten.KeyArrowRight: {X: 1},
	ebiten.KeyArrowUp:    {Y: -1},
	ebiten.KeyArrowDown:  {Y: 1},
}

func pressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func ctrlHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

func (g *Game) handleKeys() {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	if ctrlHeld() {
		g.handleShortcut(shift)
		return
	}

	switch {
	case pressed(ebiten.KeyDelete), pressed(ebiten.KeyBackspace):
		if g.ed.DeleteSelectedObjects() {
			g.setStatus("Deleting")
		}
	case pressed(ebiten.KeyEscape):
		g.ed.CancelAll()
	case pressed(ebiten.KeyG):
		g.ed.ToggleGrid()
	case pressed(ebiten.KeyF3):
		g.ed.ToggleScanlines()
	case pressed(ebiten.KeyF2):
		g.promptRename()
	case pressed(ebiten.KeyP):
		g.ed.FlushPendingDelete()
		g.preview = StartPreview(g.ed.Level(), g.ed.Config())
	case pressed(ebiten.KeyR):
		g.rotateSelection()
	case pressed(ebiten.KeyEnter):
		g.promptProperty()
	case pressed(ebiten.KeyEqual), pressed(ebiten.KeyMinus):
		steps := 1.0
		if pressed(ebiten.KeyMinus) {
			steps = -1
		}
		w, h := ebiten.WindowSize()
		g.ed.ZoomAt(steps, float64(w-leftPanelWidth)/2, float64(h)/2)
	}

	for i, k := range toolKeys {
		if i < len(selection.Tools) && pressed(k) {
			g.ed.SelectTool(selection.Tools[i])
		}
	}
	for k, d := range nudges {
		if pressed(k) {
			g.ed.MoveSelectedObjects(d)
		}
	}
}

func (g *Game) handleShortcut(shift bool) {
	switch {
	case pressed(ebiten.KeyZ) && shift, pressed(ebiten.KeyY):
		if !g.ed.Redo() {
			g.setStatus("Nothing to redo")
		}
	case pressed(ebiten.KeyZ):
		if !g.ed.Undo() {
			g.setStatus("Nothing to undo")
		}
	case pressed(ebiten.KeyC):
		g.copySelection()
	case pressed(ebiten.KeyV):
		g.paste()
	case pressed(ebiten.KeyA):
		g.setStatus(fmt.Sprintf("Selected %d", g.ed.SelectAll()))
	case pressed(ebiten.KeyS):
		if err := g.ed.Save(); err != nil {
			g.setStatus("Save failed: " + err.Error())
		} else {
			g.setStatus("Saved")
		}
	case pressed(ebiten.KeyD):
		g.duplicateLevel()
	case pressed(ebiten.KeyN):
		g.promptNewLevel()
	}
}

func (g *Game) handlePreviewKeys() bool {
	if pressed(ebiten.KeyP) || pressed(ebiten.KeyEscape) {
		g.preview = nil
		return true
	}
	return false
}

func (g *Game) copySelection() {
	n := g.ed.CopySelectedObjects()
	if n == 0 {
		return
	}
	if err := g.clip.Write(g.ed.SelectedEntities()); err != nil {
		g.log.WithError(err).Warn("write system clipboard")
	}
	g.setStatus(fmt.Sprintf("Copied %d", n))
}

func (g *Game) paste() {
	if items, ok := g.clip.Read(); ok {
		g.ed.SetClipboard(items)
	}
	doPaste := func() {
		if ids := g.ed.PasteObjects(); len(ids) > 0 {
			g.setStatus(fmt.Sprintf("Pasted %d", len(ids)))
		}
	}
	if !g.ed.ClipboardIsLarge() {
		doPaste()
		return
	}
	n := len(g.ed.State().Clipboard)
	g.prompt.Open(fmt.Sprintf("Paste %d entities? (y/n)", n), "", func(answer string) {
		if confirmed(answer) {
			doPaste()
		}
	})
}

// rotateSelection turns the selection a quarter. Mixed rotations all
// start over at 0.
func (g *Game) rotateSelection() {
	entities := g.ed.SelectedEntities()
	if len(entities) == 0 {
		return
	}
	next := 0
	if v, ok := batch.CommonPropertyValue(entities, "rotation"); ok {
		if r, isInt := v.(int); isInt {
			next = (r + 90) % 360
		}
	}
	if err := g.ed.UpdateSelectedProperty("rotation", next); err != nil {
		g.setStatus(err.Error())
	}
}

func (g *Game) promptProperty() {
	if len(g.ed.State().Objects) == 0 {
		return
	}
	g.prompt.Open("Set property (path=value):", "", func(input string) {
		path, value, err := parsePropertyInput(input)
		if err == nil {
			err = g.ed.UpdateSelectedProperty(path, value)
		}
		if err != nil {
			g.setStatus(err.Error())
			return
		}
		g.setStatus("Set " + path)
	})
}

var errPropertyInput = errors.New("expected path=value")

// parsePropertyInput splits "path=value". The value is read as JSON so
// numbers, booleans and lists keep their type; anything else is a string.
func parsePropertyInput(s string) (path string, value any, err error) {
	path, raw, ok := strings.Cut(s, "=")
	path = strings.TrimSpace(path)
	if !ok || path == "" {
		return "", nil, errPropertyInput
	}
	raw = strings.TrimSpace(raw)
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		value = raw
	}
	return path, value, nil
}
