package main

import (
	"fmt"
	"slices"

	"github.com/ebitenui/ebitenui/widget"
)

// LevelEntry is a row of the level list.
type LevelEntry struct {
	Index int
	Name  string
}

// LevelPanel keeps the level list in step with the editor.
type LevelPanel struct {
	list    *widget.List
	entries []any
	names   []string
	current int
	// suppressEvents keeps programmatic refreshes from reading as clicks.
	suppressEvents bool
}

func NewLevelPanel() *LevelPanel {
	return &LevelPanel{current: -1}
}

// Sync refreshes the list when the level names or focus changed.
func (lp *LevelPanel) Sync(names []string, current int) {
	if lp == nil || lp.list == nil {
		return
	}
	if slices.Equal(names, lp.names) && current == lp.current {
		return
	}

	lp.suppressEvents = true
	defer func() { lp.suppressEvents = false }()

	if !slices.Equal(names, lp.names) {
		lp.entries = make([]any, len(names))
		for i, name := range names {
			lp.entries[i] = LevelEntry{Index: i, Name: name}
		}
		lp.names = slices.Clone(names)
		lp.list.SetEntries(lp.entries)
	}
	if current >= 0 && current < len(lp.entries) {
		lp.list.SetSelectedEntry(lp.entries[current])
	}
	lp.current = current
}

func levelEntryLabel(e any) string {
	if entry, ok := e.(LevelEntry); ok {
		return fmt.Sprintf("%d. %s", entry.Index+1, entry.Name)
	}
	return ""
}
