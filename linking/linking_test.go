package linking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/leveleditor/levels"
)

func object(id, typ string) levels.Entity {
	return levels.Entity{
		ID:         id,
		Type:       typ,
		Properties: levels.Properties{levels.PropInteractable: true},
	}
}

func TestCanObjectBeLinked(t *testing.T) {
	assert.True(t, CanObjectBeLinked(object("b", "button")))
	assert.False(t, CanObjectBeLinked(levels.Entity{ID: "t", Properties: levels.Properties{levels.PropCollidable: true}}))
	assert.False(t, CanObjectBeLinked(levels.Entity{ID: "s", FacingDirection: "right"}))
	assert.False(t, CanObjectBeLinked(levels.Entity{ID: "x", Properties: levels.Properties{levels.PropInteractable: false}}))
}

func TestCanLinkObjects(t *testing.T) {
	button := object("b", "button")
	door := object("d", "door")
	linked, _ := CreateLink(button, door)
	tile := levels.Entity{ID: "t", Properties: levels.Properties{levels.PropCollidable: true}}

	tests := []struct {
		name string
		src  levels.Entity
		dst  levels.Entity
		want Result
	}{
		{"valid", button, door, Result{Valid: true}},
		{"self", button, button, Result{Reason: ReasonSelf}},
		{"duplicate", linked, door, Result{Reason: ReasonExists}},
		{"reverse is new", door, button, Result{Valid: true}},
		{"tile target", button, tile, Result{Reason: ReasonNotLinkable}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanLinkObjects(tt.src, tt.dst))
		})
	}
}

func TestCreateAndRemoveLink(t *testing.T) {
	button := object("b", "button")
	door := object("d", "door")
	door.Properties["color"] = "red"

	src, dst := CreateLink(button, door)

	assert.Equal(t, []string{"d"}, src.Properties.Strings(levels.PropLinkedObjects))
	assert.Equal(t, []string{"b"}, dst.Properties.Strings(levels.PropLinkedFrom))
	assert.Equal(t, "red", dst.Properties["color"])
	assert.NotContains(t, button.Properties, levels.PropLinkedObjects, "input mutated")
	assert.NotContains(t, door.Properties, levels.PropLinkedFrom, "input mutated")
	assert.True(t, IsLinked(src, dst))

	again, _ := CreateLink(src, dst)
	assert.Equal(t, []string{"d"}, again.Properties.Strings(levels.PropLinkedObjects))

	src2, dst2 := RemoveLink(src, dst)
	assert.Empty(t, src2.Properties.Strings(levels.PropLinkedObjects))
	assert.Empty(t, dst2.Properties.Strings(levels.PropLinkedFrom))
	assert.Equal(t, []string{"d"}, src.Properties.Strings(levels.PropLinkedObjects), "input mutated")
}

func TestLinkedFromMatchesStored(t *testing.T) {
	b1, b2, lever := object("b1", "button"), object("b2", "button"), object("l", "lever")
	door := object("d", "door")

	b1, door = CreateLink(b1, door)
	b2, door = CreateLink(b2, door)
	lever, door = CreateLink(lever, door)
	b2, door = RemoveLink(b2, door)

	objects := []levels.Entity{b1, b2, lever, door}
	assert.ElementsMatch(t, door.Properties.Strings(levels.PropLinkedFrom), LinkedFrom(door, objects))
	assert.Equal(t, []string{"b1", "l"}, LinkedFrom(door, objects))
}

func TestScrubReferences(t *testing.T) {
	b := object("b", "button")
	d := object("d", "door")
	other := object("o", "lever")
	b, d = CreateLink(b, d)

	out := ScrubReferences([]levels.Entity{b, d, other}, map[string]bool{"d": true})
	require.Len(t, out, 3)
	assert.Empty(t, out[0].Properties.Strings(levels.PropLinkedObjects))
	assert.Equal(t, []string{"d"}, b.Properties.Strings(levels.PropLinkedObjects), "input mutated")
	assert.Equal(t, other, out[2])
}
