// Package preview runs a small platformer simulation over the level being
// edited so a layout can be play-tested without leaving the editor.
package preview

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/leveleditor/collision"
	"github.com/milk9111/leveleditor/common"
	"github.com/milk9111/leveleditor/levels"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeBounds
)

// World is the static geometry of a level. Solid cells are merged into as
// few boxes as possible and indexed by a chipmunk space for broadphase.
type World struct {
	space    *cp.Space
	tileSize float64
	width    float64
	height   float64
	boxes    []collision.AABB
}

func NewWorld(level *levels.Level, tileSize int) *World {
	space := cp.NewSpace()
	w := &World{
		space:    space,
		tileSize: float64(tileSize),
		width:    float64(level.Metadata.Dimensions.Width * tileSize),
		height:   float64(level.Metadata.Dimensions.Height * tileSize),
	}
	w.buildStaticShapes(solidCells(level))
	w.buildBounds()
	return w
}

// solidCells rasterises every collidable tile into the cells it covers.
func solidCells(level *levels.Level) map[common.Point]bool {
	cells := make(map[common.Point]bool)
	for _, t := range level.Tiles {
		if !t.Properties.Bool(levels.PropCollidable) {
			continue
		}
		for dy := 0; dy < max(1, t.Dimensions.Height); dy++ {
			for dx := 0; dx < max(1, t.Dimensions.Width); dx++ {
				cells[t.Position.Add(common.Point{X: dx, Y: dy})] = true
			}
		}
	}
	return cells
}

func (w *World) buildStaticShapes(cells map[common.Point]bool) {
	if len(cells) == 0 {
		return
	}

	var minP, maxP common.Point
	first := true
	for p := range cells {
		if first {
			minP, maxP, first = p, p, false
			continue
		}
		minP.X, minP.Y = min(minP.X, p.X), min(minP.Y, p.Y)
		maxP.X, maxP.Y = max(maxP.X, p.X), max(maxP.Y, p.Y)
	}
	cols := maxP.X - minP.X + 1
	rows := maxP.Y - minP.Y + 1
	solid := func(x, y int) bool { return cells[common.Point{X: minP.X + x, Y: minP.Y + y}] }

	// Merge contiguous solid cells into rectangles, widest first, so the
	// space holds a handful of boxes instead of one per cell.
	processed := make([]bool, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			idx := y*cols + x
			if processed[idx] {
				continue
			}
			if !solid(x, y) {
				processed[idx] = true
				continue
			}

			bw := 1
			for x+bw < cols && !processed[y*cols+x+bw] && solid(x+bw, y) {
				bw++
			}

			bh := 1
		heightLoop:
			for y+bh < rows {
				for xi := x; xi < x+bw; xi++ {
					if processed[(y+bh)*cols+xi] || !solid(xi, y+bh) {
						break heightLoop
					}
				}
				bh++
			}

			x0 := float64(minP.X+x) * w.tileSize
			y0 := float64(minP.Y+y) * w.tileSize
			bb := cp.BB{L: x0, B: y0, R: x0 + float64(bw)*w.tileSize, T: y0 + float64(bh)*w.tileSize}
			shape := cp.NewBox2(w.space.StaticBody, bb, 0)
			shape.SetFriction(0.8)
			shape.SetCollisionType(collisionTypeSolid)
			w.space.AddShape(shape)
			w.boxes = append(w.boxes, toAABB(bb))

			for yy := y; yy < y+bh; yy++ {
				for xx := x; xx < x+bw; xx++ {
					processed[yy*cols+xx] = true
				}
			}
		}
	}
}

// buildBounds walls off the sides of the level. The top and bottom stay open
// so a player can jump above the frame and falls out when missing a platform.
func (w *World) buildBounds() {
	if w.width <= 0 || w.height <= 0 {
		return
	}
	segments := []struct{ a, b cp.Vector }{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: w.height}},
		{a: cp.Vector{X: w.width, Y: 0}, b: cp.Vector{X: w.width, Y: w.height}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(w.space.StaticBody, seg.a, seg.b, 1)
		shape.SetCollisionType(collisionTypeBounds)
		w.space.AddShape(shape)
	}
}

func toAABB(bb cp.BB) collision.AABB {
	return collision.AABB{X: bb.L, Y: bb.B, Width: bb.R - bb.L, Height: bb.T - bb.B}
}

// Query returns the boxes of every static shape whose bounds touch box.
func (w *World) Query(box collision.AABB) []collision.AABB {
	bb := cp.BB{L: box.X, B: box.Y, R: box.Right(), T: box.Bottom()}
	var out []collision.AABB
	w.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		out = append(out, toAABB(shape.BB()))
	}, nil)
	return out
}

// Boxes returns the merged solid rectangles in build order.
func (w *World) Boxes() []collision.AABB {
	return append([]collision.AABB(nil), w.boxes...)
}

func (w *World) Height() float64 { return w.height }

func (w *World) TileSize() float64 { return w.tileSize }
