// Package selection holds the transitions between the active tool, the tile
// type staged for placement and the set of selected entities.
//
// Tool and tile choices describe what the user is about to do and are
// replaced freely. The object selection describes what the user already
// picked, so only ClearObjects and ClearAll touch it.
package selection

import "slices"

type State struct {
	Tool           Tool
	TileType       string
	Objects        []string
	LinkSourceID   string
	UnlinkSourceID string
}

// Patch carries only the fields a transition changes. Nil pointers and false
// flags leave the corresponding state alone.
type Patch struct {
	Tool             *Tool
	TileType         *string
	ClearObjects     bool
	ClearLinkSources bool
}

func ptr[T any](v T) *T { return &v }

// SelectTile stages tileType. A drawing tool stays active, anything else
// switches to the pen.
func SelectTile(tileType string, current Tool) Patch {
	p := Patch{TileType: ptr(tileType)}
	if !current.IsDrawing() {
		p.Tool = ptr(ToolPen)
	}
	return p
}

// SelectTool activates tool. Non-drawing tools drop the staged tile type.
func SelectTool(tool Tool) Patch {
	p := Patch{Tool: ptr(tool), ClearLinkSources: true}
	if !tool.IsDrawing() {
		p.TileType = ptr("")
	}
	return p
}

func ClearObjects() Patch {
	return Patch{ClearObjects: true}
}

// ClearAll resets tool, tile type and objects. It backs the cancel gesture.
func ClearAll() Patch {
	return Patch{
		Tool:             ptr(ToolNone),
		TileType:         ptr(""),
		ClearObjects:     true,
		ClearLinkSources: true,
	}
}

func (p Patch) Apply(s *State) {
	if p.Tool != nil {
		s.Tool = *p.Tool
	}
	if p.TileType != nil {
		s.TileType = *p.TileType
	}
	if p.ClearObjects {
		s.Objects = nil
	}
	if p.ClearLinkSources {
		s.LinkSourceID = ""
		s.UnlinkSourceID = ""
	}
}

// Toggle adds id to the selection, or removes it when already present.
func Toggle(objects []string, id string) []string {
	if i := slices.Index(objects, id); i >= 0 {
		return slices.Delete(slices.Clone(objects), i, i+1)
	}
	return append(slices.Clone(objects), id)
}
