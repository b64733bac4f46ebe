package levels

import "github.com/milk9111/leveleditor/common"

const (
	TypePlayer = "player"
	TypeEnemy  = "enemy"
	TypeButton = "button"
	TypeDoor   = "door"
)

type Level struct {
	LevelName   string   `json:"levelName"`
	Metadata    Metadata `json:"metadata"`
	Tiles       []Entity `json:"tiles"`
	Objects     []Entity `json:"objects"`
	SpawnPoints []Entity `json:"spawnPoints"`
}

type Metadata struct {
	Version         string `json:"version"`
	CreatedAt       string `json:"createdAt"`
	Author          string `json:"author"`
	Description     string `json:"description"`
	Dimensions      Size   `json:"dimensions"`
	BackgroundColor string `json:"backgroundColor"`
}

type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Entity is the shape shared by tiles, interactable objects and spawn points.
// Positions and dimensions are in grid cells.
type Entity struct {
	ID         string       `json:"id"`
	Type       string       `json:"type"`
	Position   common.Point `json:"position"`
	Dimensions Size         `json:"dimensions"`
	Rotation   int          `json:"rotation"`
	Layer      int          `json:"layer"`
	Properties Properties   `json:"properties"`

	// Spawn points only.
	FacingDirection string `json:"facingDirection,omitempty"`
	IsDefault       *bool  `json:"isDefault,omitempty"`
}

// Kind names the collection an entity lives in.
type Kind int

const (
	KindTile Kind = iota
	KindObject
	KindSpawn
)

func (k Kind) String() string {
	switch k {
	case KindTile:
		return "tile"
	case KindObject:
		return "object"
	case KindSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// KindOf classifies a detached entity, such as a clipboard entry, by its shape.
func KindOf(e Entity) Kind {
	if e.FacingDirection != "" {
		return KindSpawn
	}
	if _, ok := e.Properties[PropCollidable]; ok {
		return KindTile
	}
	return KindObject
}

func (l *Level) Collection(k Kind) *[]Entity {
	switch k {
	case KindTile:
		return &l.Tiles
	case KindSpawn:
		return &l.SpawnPoints
	default:
		return &l.Objects
	}
}

// Find looks up id across tiles, objects and spawn points, in that order.
func (l *Level) Find(id string) (Entity, Kind, bool) {
	for _, k := range []Kind{KindTile, KindObject, KindSpawn} {
		for _, e := range *l.Collection(k) {
			if e.ID == id {
				return e, k, true
			}
		}
	}
	return Entity{}, 0, false
}

func (l *Level) HasID(id string) bool {
	_, _, ok := l.Find(id)
	return ok
}

// Replace swaps the entity with the same id in place. It reports false when
// no entity carries that id.
func (l *Level) Replace(e Entity) bool {
	for _, k := range []Kind{KindTile, KindObject, KindSpawn} {
		coll := l.Collection(k)
		for i := range *coll {
			if (*coll)[i].ID == e.ID {
				(*coll)[i] = e
				return true
			}
		}
	}
	return false
}

// Remove drops every entity whose id is in ids and returns how many were removed.
func (l *Level) Remove(ids map[string]bool) int {
	removed := 0
	for _, k := range []Kind{KindTile, KindObject, KindSpawn} {
		coll := l.Collection(k)
		kept := make([]Entity, 0, len(*coll))
		for _, e := range *coll {
			if ids[e.ID] {
				removed++
				continue
			}
			kept = append(kept, e)
		}
		*coll = kept
	}
	return removed
}

func (l *Level) EntityCount() int {
	return len(l.Tiles) + len(l.Objects) + len(l.SpawnPoints)
}

func (l *Level) PlayerSpawn() (Entity, bool) {
	for _, s := range l.SpawnPoints {
		if s.Type == TypePlayer {
			return s, true
		}
	}
	return Entity{}, false
}
