package editor

import (
	"slices"

	"github.com/milk9111/leveleditor/batch"
	"github.com/milk9111/leveleditor/common"
	"github.com/milk9111/leveleditor/levels"
	"github.com/milk9111/leveleditor/selection"
)

// LargeClipboard is the size above which a front end should confirm a paste.
const LargeClipboard = 20

func (e *Editor) SelectTile(tileType string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyPatchLocked(selection.SelectTile(tileType, e.state.Tool))
}

func (e *Editor) SelectTool(tool selection.Tool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyPatchLocked(selection.SelectTool(tool))
}

func (e *Editor) ClearSelection() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyPatchLocked(selection.ClearObjects())
}

// CancelAll is the Escape gesture: tool, tile type, selection and any
// in-progress link gesture are all dropped.
func (e *Editor) CancelAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyPatchLocked(selection.ClearAll())
}

// SelectObject replaces the selection with id, or toggles id when multi is set.
func (e *Editor) SelectObject(id string, multi bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if multi {
		e.state.Objects = selection.Toggle(e.state.Objects, id)
		return
	}
	e.state.Objects = []string{id}
}

// SetSelection replaces the selection, dropping ids that name no entity.
func (e *Editor) SetSelection(ids []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	lvl := e.levels[e.current]
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if lvl.HasID(id) && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	e.state.Objects = out
}

func (e *Editor) SelectAll() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	lvl := e.levels[e.current]
	ids := make([]string, 0, lvl.EntityCount())
	for _, k := range []levels.Kind{levels.KindTile, levels.KindObject, levels.KindSpawn} {
		for _, ent := range *lvl.Collection(k) {
			ids = append(ids, ent.ID)
		}
	}
	e.state.Objects = ids
	return len(ids)
}

// SelectedEntities returns copies of the selected entities in selection order.
func (e *Editor) SelectedEntities() []levels.Entity {
	e.mu.Lock()
	defer e.mu.Unlock()
	found := batch.SelectedEntities(e.levels[e.current], e.state.Objects)
	for i := range found {
		found[i] = found[i].Clone()
	}
	return found
}

// CopySelectedObjects snapshots the selection into the clipboard with
// positions made relative to the selection's top-left corner.
func (e *Editor) CopySelectedObjects() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.state.Objects) == 0 {
		return 0
	}
	selected := make(map[string]bool, len(e.state.Objects))
	for _, id := range e.state.Objects {
		selected[id] = true
	}

	lvl := e.levels[e.current]
	var items []levels.Entity
	for _, k := range []levels.Kind{levels.KindTile, levels.KindObject, levels.KindSpawn} {
		for _, ent := range *lvl.Collection(k) {
			if selected[ent.ID] {
				items = append(items, ent.Clone())
			}
		}
	}
	if len(items) == 0 {
		return 0
	}

	origin := items[0].Position
	for _, it := range items[1:] {
		origin.X = min(origin.X, it.Position.X)
		origin.Y = min(origin.Y, it.Position.Y)
	}
	for i := range items {
		items[i].Position = common.Point{X: items[i].Position.X - origin.X, Y: items[i].Position.Y - origin.Y}
	}

	e.state.Clipboard = items
	e.clipboardOrigin = origin
	return len(items)
}

// SetClipboard replaces the clipboard, for example with entities read from
// the system clipboard. Positions are normalized the same way a copy does.
func (e *Editor) SetClipboard(items []levels.Entity) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(items) == 0 {
		e.state.Clipboard = nil
		return
	}
	origin := items[0].Position
	for _, it := range items[1:] {
		origin.X = min(origin.X, it.Position.X)
		origin.Y = min(origin.Y, it.Position.Y)
	}
	out := make([]levels.Entity, len(items))
	for i, it := range items {
		c := it.Clone()
		c.Position = common.Point{X: it.Position.X - origin.X, Y: it.Position.Y - origin.Y}
		out[i] = c
	}
	e.state.Clipboard = out
	e.clipboardOrigin = origin
}

// PasteObjects pastes the clipboard offset from where it was copied, so
// copies never sit exactly on their originals.
func (e *Editor) PasteObjects() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	off := e.cfg.Editor.PasteOffset
	return e.pasteLocked(e.clipboardOrigin.Add(common.Point{X: off, Y: off}))
}

// PasteAt pastes the clipboard with its top-left corner at target.
func (e *Editor) PasteAt(target common.Point) []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pasteLocked(target)
}

func (e *Editor) pasteLocked(target common.Point) []string {
	if len(e.state.Clipboard) == 0 {
		return nil
	}

	copies := make([]levels.Entity, 0, len(e.state.Clipboard))
	renamed := make(map[string]string, len(e.state.Clipboard))
	pastedPlayer := false
	for _, item := range e.state.Clipboard {
		if item.Type == levels.TypePlayer && levels.KindOf(item) == levels.KindSpawn {
			if pastedPlayer {
				continue
			}
			pastedPlayer = true
		}
		c := item.Clone()
		c.ID = levels.CopyID(item.ID)
		c.Position = target.Add(item.Position)
		renamed[item.ID] = c.ID
		copies = append(copies, c)
	}
	for i := range copies {
		remapLinks(&copies[i], renamed)
	}

	ids := make([]string, len(copies))
	e.updateLocked(func(l *levels.Level) *levels.Level {
		if pastedPlayer {
			l.SpawnPoints = withoutPlayerSpawns(l.SpawnPoints)
		}
		for i, c := range copies {
			coll := l.Collection(levels.KindOf(c))
			*coll = append(*coll, c)
			ids[i] = c.ID
		}
		return l
	}, "Pasted "+plural(len(copies), "object"))

	e.state.Objects = ids
	return ids
}

// remapLinks points a pasted copy's links at the other pasted copies. Links
// to anything outside the pasted set are dropped so the reverse lists of
// existing objects stay accurate.
func remapLinks(e *levels.Entity, renamed map[string]string) {
	for _, key := range []string{levels.PropLinkedObjects, levels.PropLinkedFrom} {
		if _, ok := e.Properties[key]; !ok {
			continue
		}
		var kept []string
		for _, id := range e.Properties.Strings(key) {
			if n, ok := renamed[id]; ok {
				kept = append(kept, n)
			}
		}
		e.Properties.SetStrings(key, kept)
	}
}

func (e *Editor) ClipboardIsLarge() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.state.Clipboard) > LargeClipboard
}
