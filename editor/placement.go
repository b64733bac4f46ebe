package editor

import (
	"fmt"
	"strings"

	"github.com/milk9111/leveleditor/batch"
	"github.com/milk9111/leveleditor/buttons"
	"github.com/milk9111/leveleditor/common"
	"github.com/milk9111/leveleditor/levels"
)

const (
	spawnPrefix      = "spawn-"
	spawnPlayerType  = "spawn-player"
	facingRight      = "right"
	objectLayer      = 1
	buttonNumberPath = "properties." + levels.PropButtonNumber
)

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func newTile(pos common.Point, tileType string) levels.Entity {
	return levels.Entity{
		ID:         levels.NewID("tile"),
		Type:       tileType,
		Position:   pos,
		Dimensions: levels.Size{Width: 1, Height: 1},
		Properties: levels.Properties{levels.PropCollidable: true},
	}
}

// AddTile places a 1x1 tile, replacing whatever tile occupied the cell.
func (e *Editor) AddTile(pos common.Point, tileType string, opts ...UpdateOption) bool {
	if tileType == "" {
		return false
	}
	return e.Update(func(l *levels.Level) *levels.Level {
		l.Tiles = levels.PlaceTile(l.Tiles, newTile(pos, tileType))
		return l
	}, fmt.Sprintf("Added %s tile", tileType), opts...)
}

// AddObject places an interactable object, or a spawn point for the
// "spawn-player" and "spawn-enemy" palette types. A new player spawn replaces
// the existing one and a new button takes the next free number.
func (e *Editor) AddObject(pos common.Point, objectType string) (string, bool) {
	if objectType == "" {
		return "", false
	}

	var id string
	ok := e.Update(func(l *levels.Level) *levels.Level {
		if strings.HasPrefix(objectType, spawnPrefix) {
			player := objectType == spawnPlayerType
			spawnType := levels.TypeEnemy
			if player {
				spawnType = levels.TypePlayer
				l.SpawnPoints = withoutPlayerSpawns(l.SpawnPoints)
			}
			id = levels.NewID("spawn")
			l.SpawnPoints = append(l.SpawnPoints, levels.Entity{
				ID:              id,
				Type:            spawnType,
				Position:        pos,
				Dimensions:      levels.Size{Width: 1, Height: 1},
				Layer:           objectLayer,
				Properties:      levels.Properties{levels.PropSpawnID: id},
				FacingDirection: facingRight,
				IsDefault:       &player,
			})
			return l
		}

		props := levels.Properties{levels.PropInteractable: true}
		if objectType == levels.TypeButton {
			props[levels.PropButtonNumber] = float64(buttons.AssignButtonNumber(l.Objects))
		}
		id = levels.NewID("obj")
		l.Objects = append(l.Objects, levels.Entity{
			ID:         id,
			Type:       objectType,
			Position:   pos,
			Dimensions: levels.Size{Width: 1, Height: 1},
			Layer:      objectLayer,
			Properties: props,
		})
		return l
	}, fmt.Sprintf("Added %s", objectType))
	return id, ok
}

func withoutPlayerSpawns(spawns []levels.Entity) []levels.Entity {
	out := make([]levels.Entity, 0, len(spawns))
	for _, s := range spawns {
		if s.Type != levels.TypePlayer {
			out = append(out, s)
		}
	}
	return out
}

// DrawPositions places one tile per position as a single undoable change.
// The line and rectangle tools commit through it.
func (e *Editor) DrawPositions(positions []common.Point, tileType, toolName string) bool {
	if tileType == "" || len(positions) == 0 {
		return false
	}
	return e.Update(func(l *levels.Level) *levels.Level {
		for _, p := range positions {
			l.Tiles = levels.PlaceTile(l.Tiles, newTile(p, tileType))
		}
		return l
	}, fmt.Sprintf("Drew %s with %s", toolName, plural(len(positions), "tile")))
}

type paintSession struct {
	placed  int
	visited map[common.Point]bool
}

// BeginPaint starts a pen stroke. Placements made by Paint skip history until EndPaint.
func (e *Editor) BeginPaint() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.paint = &paintSession{visited: make(map[common.Point]bool)}
}

// Paint places the staged tile type at pos. A cell is painted at most once per stroke.
func (e *Editor) Paint(pos common.Point) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	tileType := e.state.TileType
	if e.paint == nil || tileType == "" || e.paint.visited[pos] {
		return false
	}
	e.paint.visited[pos] = true
	e.paint.placed++
	return e.updateLocked(func(l *levels.Level) *levels.Level {
		l.Tiles = levels.PlaceTile(l.Tiles, newTile(pos, tileType))
		return l
	}, "", SkipHistory())
}

// EndPaint closes the stroke with one history entry and returns how many tiles it placed.
func (e *Editor) EndPaint() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.paint == nil {
		return 0
	}
	n := e.paint.placed
	e.paint = nil
	if n > 0 {
		e.recordLocked("Placed " + plural(n, "tile"))
	}
	return n
}

func (e *Editor) Painting() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paint != nil
}

// MoveSelectedObjects translates every selected entity by delta.
func (e *Editor) MoveSelectedObjects(delta common.Point) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	ids := e.state.Objects
	if len(ids) == 0 || delta == (common.Point{}) {
		return false
	}
	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}
	return e.updateLocked(func(l *levels.Level) *levels.Level {
		for _, k := range []levels.Kind{levels.KindTile, levels.KindObject, levels.KindSpawn} {
			coll := *l.Collection(k)
			for i := range coll {
				if selected[coll[i].ID] {
					coll[i].Position = coll[i].Position.Add(delta)
				}
			}
		}
		return l
	}, "Moved "+plural(len(ids), "object"))
}

// UpdateSelectedProperty sets path to value on every selected entity.
func (e *Editor) UpdateSelectedProperty(path string, value any) error {
	if path == buttonNumberPath {
		n, ok := levels.Properties{"n": value}.Number("n")
		if !ok || !buttons.ValidateButtonNumber(n) {
			return fmt.Errorf("button number must be an integer between %d and %d", buttons.MinNumber, buttons.MaxNumber)
		}
		value = n
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	ids := e.state.Objects
	if len(ids) == 0 {
		return nil
	}
	next, err := batch.UpdateProperty(e.levels[e.current], ids, path, value)
	if err != nil {
		return err
	}
	e.updateLocked(func(*levels.Level) *levels.Level { return next }, "Updated "+plural(len(ids), "object"))
	return nil
}
