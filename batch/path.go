package batch

import (
	"strings"

	"github.com/milk9111/leveleditor/levels"
)

const propertiesPrefix = "properties."

// fields exposes the addressable top level of an entity as a plain map so a
// dotted path can be walked with map lookups alone.
func fields(e levels.Entity) map[string]any {
	m := map[string]any{
		"id":         e.ID,
		"type":       e.Type,
		"position":   map[string]any{"x": e.Position.X, "y": e.Position.Y},
		"dimensions": map[string]any{"width": e.Dimensions.Width, "height": e.Dimensions.Height},
		"rotation":   e.Rotation,
		"layer":      e.Layer,
		"properties": map[string]any(e.Properties),
	}
	if e.FacingDirection != "" {
		m["facingDirection"] = e.FacingDirection
	}
	if e.IsDefault != nil {
		m["isDefault"] = *e.IsDefault
	}
	return m
}

// Resolve walks path one key at a time. A missing key yields nil.
func Resolve(e levels.Entity, path string) any {
	var cur any = fields(e)
	for _, key := range strings.Split(path, ".") {
		switch m := cur.(type) {
		case map[string]any:
			cur = m[key]
		case levels.Properties:
			cur = m[key]
		default:
			return nil
		}
	}
	return cur
}
