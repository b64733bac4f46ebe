package main

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/milk9111/leveleditor/batch"
	"github.com/milk9111/leveleditor/levels"
	"github.com/milk9111/leveleditor/selection"
)

// PaletteEntry is one placeable type. Objects are placed one per click,
// tiles can be painted and drawn with the shape tools.
type PaletteEntry struct {
	Type   string
	Object bool
	Color  color.RGBA
}

var palette = []PaletteEntry{
	{Type: "platform-basic", Color: colornames.Slategray},
	{Type: "platform-grass", Color: colornames.Forestgreen},
	{Type: "platform-ice", Color: colornames.Lightblue},
	{Type: "platform-stone", Color: colornames.Dimgray},
	{Type: "hazard-spikes", Color: colornames.Crimson},
	{Type: levels.TypeButton, Object: true, Color: colornames.Orange},
	{Type: levels.TypeDoor, Object: true, Color: colornames.Saddlebrown},
	{Type: "spawn-player", Object: true, Color: colornames.Gold},
	{Type: "spawn-enemy", Object: true, Color: colornames.Purple},
}

func paletteEntry(t string) (PaletteEntry, bool) {
	for _, p := range palette {
		if p.Type == t {
			return p, true
		}
	}
	return PaletteEntry{}, false
}

// entityColor picks the fill for an entity already in the level.
func entityColor(e levels.Entity) color.RGBA {
	switch e.Type {
	case levels.TypePlayer:
		return colornames.Gold
	case levels.TypeEnemy:
		return colornames.Purple
	}
	if p, ok := paletteEntry(e.Type); ok {
		return p.Color
	}
	if strings.HasPrefix(e.Type, "hazard") {
		return colornames.Crimson
	}
	return colornames.Gray
}

func typeName(t string) string { return batch.FormatTypeName(t) }

func paletteLabel(p PaletteEntry) string {
	if p.Object {
		return "* " + batch.FormatTypeName(p.Type)
	}
	return batch.FormatTypeName(p.Type)
}

func toolLabel(i int, t selection.Tool) string {
	return fmt.Sprintf("%d %s", i+1, batch.FormatTypeName(t.String()))
}
