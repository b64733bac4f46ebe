package editor

import (
	"errors"
	"fmt"

	"github.com/milk9111/leveleditor/levels"
	"github.com/milk9111/leveleditor/selection"
)

// CreateNewLevel appends a default level and focuses it. An empty name picks
// the first unused "New Level", "New Level 1", ... name.
func (e *Editor) CreateNewLevel(name string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if name == "" {
		name = e.uniqueNameLocked(levels.DefaultName)
	}
	return e.appendLocked(levels.CreateDefaultLevel(name))
}

// AddLevel appends a copy of level and focuses it.
func (e *Editor) AddLevel(level *levels.Level) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.appendLocked(levels.Clone(level))
}

// DuplicateLevel copies the level at index, or the focused level when index
// is negative, as "<name> Copy" with a fresh creation time, and focuses it.
func (e *Editor) DuplicateLevel(index int) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if index < 0 {
		index = e.current
	}
	if index >= len(e.levels) {
		return 0, false
	}
	dup := levels.Clone(e.levels[index])
	dup.LevelName += " Copy"
	dup.Metadata.CreatedAt = levels.Timestamp(e.now())
	return e.appendLocked(dup), true
}

// DeleteLevel removes the level at index. The last remaining level cannot be deleted.
func (e *Editor) DeleteLevel(index int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.levels) <= 1 || index < 0 || index >= len(e.levels) {
		return false
	}
	e.flushDeleteLocked()

	name := e.levels[index].LevelName
	e.levels = append(e.levels[:index:index], e.levels[index+1:]...)
	e.histories = append(e.histories[:index:index], e.histories[index+1:]...)
	if e.current >= index {
		e.current = max(0, e.current-1)
	}
	e.focusChangedLocked()
	e.log.WithField("level", name).Info("level deleted")
	return true
}

func (e *Editor) SetCurrentLevel(index int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if index < 0 || index >= len(e.levels) {
		return false
	}
	if index == e.current {
		return true
	}
	e.flushDeleteLocked()
	e.current = index
	e.focusChangedLocked()
	return true
}

// RenameLevel renames the focused level as an undoable change.
func (e *Editor) RenameLevel(name string) bool {
	if name == "" {
		return false
	}
	return e.Update(func(l *levels.Level) *levels.Level {
		if l.LevelName == name {
			return nil
		}
		l.LevelName = name
		return l
	}, fmt.Sprintf("Renamed level to %s", name))
}

// Import validates text as a level document, enforces the single player
// spawn rule and appends it. On error nothing changes.
func (e *Editor) Import(text string) (int, error) {
	lvl, err := levels.Deserialize(text)
	if err != nil {
		return 0, err
	}
	clean := levels.SanitizeImport(lvl)
	if dropped := len(lvl.SpawnPoints) - len(clean.SpawnPoints); dropped > 0 {
		e.log.WithField("dropped", dropped).Warn("import kept only the first player spawn")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.flushDeleteLocked()
	return e.appendLocked(clean), nil
}

// Export serializes the level at index, or the focused level when index is negative.
func (e *Editor) Export(index int) (string, error) {
	e.mu.Lock()
	if index < 0 {
		index = e.current
	}
	if index >= len(e.levels) {
		e.mu.Unlock()
		return "", errors.New("export: level index out of range")
	}
	lvl := e.levels[index]
	e.mu.Unlock()

	return levels.Serialize(lvl)
}

func (e *Editor) appendLocked(level *levels.Level) int {
	e.flushDeleteLocked()
	e.levels = append(e.levels, level)
	e.histories = append(e.histories, &history{})
	e.current = len(e.levels) - 1
	e.focusChangedLocked()
	e.log.WithField("level", level.LevelName).Info("level added")
	return e.current
}

// focusChangedLocked seeds the newly focused level's history. Selections
// name entities of the previous level, so they are dropped.
func (e *Editor) focusChangedLocked() {
	e.paint = nil
	e.applyPatchLocked(selection.ClearObjects())
	e.state.LinkSourceID = ""
	e.state.UnlinkSourceID = ""
	e.historyLocked()
}

func (e *Editor) uniqueNameLocked(base string) string {
	taken := make(map[string]bool, len(e.levels))
	for _, l := range e.levels {
		taken[l.LevelName] = true
	}
	if !taken[base] {
		return base
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s %d", base, n)
		if !taken[candidate] {
			return candidate
		}
	}
}
