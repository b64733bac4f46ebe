package main

import (
	"time"

	"github.com/milk9111/leveleditor/common"
	"github.com/milk9111/leveleditor/editor"
	"github.com/milk9111/leveleditor/levels"
)

// view maps grid cells to screen pixels for one frame.
type view struct {
	ox, oy float64
	cell   float64
}

func newView(st editor.State, tileSize int) view {
	return view{
		ox:   leftPanelWidth + st.Pan.X,
		oy:   st.Pan.Y,
		cell: float64(tileSize) * st.Zoom,
	}
}

func (v view) rect(p common.Point, s levels.Size) (x, y, w, h float32) {
	return float32(v.ox + float64(p.X)*v.cell),
		float32(v.oy + float64(p.Y)*v.cell),
		float32(float64(max(1, s.Width)) * v.cell),
		float32(float64(max(1, s.Height)) * v.cell)
}

func (v view) center(e levels.Entity) (x, y float32) {
	rx, ry, w, h := v.rect(e.Position, e.Dimensions)
	return rx + w/2, ry + h/2
}

// pixel converts a world-space pixel position, as used by the preview.
func (v view) pixel(x, y float64, tileSize int) (float32, float32) {
	scale := v.cell / float64(tileSize)
	return float32(v.ox + x*scale), float32(v.oy + y*scale)
}

// shrinkScale is the size factor of an entity being deleted: 1 when the
// delete starts, 0 once the delay has passed.
func shrinkScale(elapsed, delay time.Duration) float64 {
	if delay <= 0 {
		return 0
	}
	return common.Clamp(1-float64(elapsed)/float64(delay), 0, 1)
}

func contains(e levels.Entity, p common.Point) bool {
	w, h := max(1, e.Dimensions.Width), max(1, e.Dimensions.Height)
	return p.X >= e.Position.X && p.X < e.Position.X+w &&
		p.Y >= e.Position.Y && p.Y < e.Position.Y+h
}

// entityAt returns the topmost entity covering p. Spawns draw above objects
// and objects above tiles; within a collection the later entity wins.
func entityAt(l *levels.Level, p common.Point) (levels.Entity, bool) {
	for _, coll := range [][]levels.Entity{l.SpawnPoints, l.Objects, l.Tiles} {
		for i := len(coll) - 1; i >= 0; i-- {
			if contains(coll[i], p) {
				return coll[i], true
			}
		}
	}
	return levels.Entity{}, false
}

// entitiesInRect lists the ids of entities overlapping the cell rectangle
// spanned by a and b, inclusive.
func entitiesInRect(l *levels.Level, a, b common.Point) []string {
	minX, maxX := min(a.X, b.X), max(a.X, b.X)
	minY, maxY := min(a.Y, b.Y), max(a.Y, b.Y)
	var ids []string
	for _, coll := range [][]levels.Entity{l.Tiles, l.Objects, l.SpawnPoints} {
		for _, e := range coll {
			w, h := max(1, e.Dimensions.Width), max(1, e.Dimensions.Height)
			if e.Position.X <= maxX && e.Position.X+w-1 >= minX &&
				e.Position.Y <= maxY && e.Position.Y+h-1 >= minY {
				ids = append(ids, e.ID)
			}
		}
	}
	return ids
}

func wheelSteps(wy float64) float64 {
	switch {
	case wy > 0:
		return 1
	case wy < 0:
		return -1
	}
	return 0
}
