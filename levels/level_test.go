package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/leveleditor/common"
)

func tile(id, typ string, x, y int) Entity {
	return Entity{
		ID:         id,
		Type:       typ,
		Position:   common.Point{X: x, Y: y},
		Dimensions: Size{Width: 1, Height: 1},
		Properties: Properties{PropCollidable: true},
	}
}

func TestSanitizeImportSinglePlayerSpawn(t *testing.T) {
	lvl := sampleLevel()
	lvl.SpawnPoints = []Entity{
		{ID: "p1", Type: TypePlayer, FacingDirection: "right"},
		{ID: "e1", Type: TypeEnemy, FacingDirection: "left"},
		{ID: "p2", Type: TypePlayer, FacingDirection: "left"},
	}

	got := SanitizeImport(lvl)

	require.Len(t, got.SpawnPoints, 2)
	assert.Equal(t, "p1", got.SpawnPoints[0].ID)
	assert.Equal(t, "e1", got.SpawnPoints[1].ID)
	assert.Len(t, lvl.SpawnPoints, 3, "input must not change")
}

func TestRemoveOverlappingTiles(t *testing.T) {
	tests := []struct {
		name  string
		tiles []Entity
		want  []string
	}{
		{
			name:  "newest wins",
			tiles: []Entity{tile("a", "platform-basic", 1, 1), tile("b", "platform-grass", 1, 1), tile("c", "platform-basic", 2, 1)},
			want:  []string{"b", "c"},
		},
		{
			name:  "door kept under button",
			tiles: []Entity{tile("d", TypeDoor, 3, 3), tile("b", TypeButton, 3, 3)},
			want:  []string{"d", "b"},
		},
		{
			name:  "button replaced by door",
			tiles: []Entity{tile("b", TypeButton, 3, 3), tile("d", TypeDoor, 3, 3)},
			want:  []string{"d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []string
			for _, e := range RemoveOverlappingTiles(tt.tiles) {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestPlaceTile(t *testing.T) {
	tiles := []Entity{tile("a", "platform-basic", 0, 0), tile("d", TypeDoor, 1, 0)}

	got := PlaceTile(tiles, tile("n", "platform-grass", 0, 0))
	assert.Equal(t, []string{"d", "n"}, []string{got[0].ID, got[1].ID})

	got = PlaceTile(tiles, tile("b", TypeButton, 1, 0))
	assert.Len(t, got, 3)
}

func TestCloneIsDeep(t *testing.T) {
	src := sampleLevel()
	dup := Clone(src)
	require.Equal(t, src, dup)

	dup.Objects[0].Properties.SetStrings(PropLinkedObjects, []string{"x", "y"})
	dup.Objects[1].Properties["meta"].(map[string]any)["locked"] = false
	*dup.SpawnPoints[0].IsDefault = false
	dup.Tiles[0].Position.X = 99

	assert.Equal(t, []string{"door"}, src.Objects[0].Properties.Strings(PropLinkedObjects))
	assert.Equal(t, true, src.Objects[1].Properties["meta"].(map[string]any)["locked"])
	assert.True(t, *src.SpawnPoints[0].IsDefault)
	assert.Equal(t, 0, src.Tiles[0].Position.X)
}

func TestFindReplaceRemove(t *testing.T) {
	lvl := sampleLevel()

	e, kind, ok := lvl.Find("door")
	require.True(t, ok)
	assert.Equal(t, KindObject, kind)
	assert.Equal(t, TypeDoor, e.Type)

	_, kind, _ = lvl.Find("spawn")
	assert.Equal(t, KindSpawn, kind)
	assert.False(t, lvl.HasID("nope"))

	e.Layer = 7
	assert.True(t, lvl.Replace(e))
	e, _, _ = lvl.Find("door")
	assert.Equal(t, 7, e.Layer)

	n := lvl.Remove(map[string]bool{"door": true, "tile-ground-0": true, "nope": true})
	assert.Equal(t, 2, n)
	assert.Equal(t, 10+2+1-2, lvl.EntityCount())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindTile, KindOf(tile("t", "platform-basic", 0, 0)))
	assert.Equal(t, KindSpawn, KindOf(Entity{FacingDirection: "up"}))
	assert.Equal(t, KindObject, KindOf(Entity{Properties: Properties{PropInteractable: true}}))
}

func TestPropertiesAccessors(t *testing.T) {
	p := Properties{"n": 3, "f": 2.5, "list": []any{"a", 1, "b"}, "flag": true}

	n, ok := p.Number("n")
	assert.True(t, ok)
	assert.Equal(t, 3.0, n)
	_, ok = p.Number("flag")
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "b"}, p.Strings("list"))
	assert.Nil(t, p.Strings("missing"))
	assert.True(t, p.Bool("flag"))
	assert.False(t, p.Bool("n"))
}

func TestNewID(t *testing.T) {
	a, b := NewID("tile"), NewID("tile")
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^tile_[0-9A-Z]{26}$`, a)
	assert.Regexp(t, `^btn_copy_[0-9A-Z]{26}$`, CopyID("btn"))
}
