package editor

import (
	"slices"

	"github.com/milk9111/leveleditor/common"
	"github.com/milk9111/leveleditor/levels"
	"github.com/milk9111/leveleditor/selection"
)

type Vec struct {
	X, Y float64
}

// State is the ephemeral editor state. It is never part of a level document.
type State struct {
	selection.State

	Clipboard       []levels.Entity
	DeletingObjects []string

	Zoom          float64
	Pan           Vec
	MousePosition common.Point
	ShowGrid      bool
	ShowScanlines bool
}

func (s State) clone() State {
	out := s
	out.Objects = slices.Clone(s.Objects)
	out.DeletingObjects = slices.Clone(s.DeletingObjects)
	out.Clipboard = make([]levels.Entity, len(s.Clipboard))
	for i, c := range s.Clipboard {
		out.Clipboard[i] = c.Clone()
	}
	return out
}

func (s State) IsSelected(id string) bool {
	return slices.Contains(s.Objects, id)
}

func (s State) IsDeleting(id string) bool {
	return slices.Contains(s.DeletingObjects, id)
}
