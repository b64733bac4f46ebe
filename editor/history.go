package editor

import (
	"time"

	"github.com/milk9111/leveleditor/levels"
)

const initialAction = "Initial state"

type HistoryEntry struct {
	Timestamp time.Time
	Level     *levels.Level
	Action    string
}

// history is the linear undo list of one level. Entries hold private
// snapshots and are never modified once appended.
type history struct {
	entries []HistoryEntry
	index   int
}

func (h *history) push(entry HistoryEntry, limit int) {
	if len(h.entries) > 0 {
		h.entries = h.entries[:h.index+1]
	}
	h.entries = append(h.entries, entry)
	if over := len(h.entries) - limit; limit > 0 && over > 0 {
		h.entries = append([]HistoryEntry(nil), h.entries[over:]...)
	}
	h.index = len(h.entries) - 1
}

func (h *history) canUndo() bool { return h.index > 0 }

func (h *history) canRedo() bool { return h.index < len(h.entries)-1 }

func (e *Editor) historyLocked() *history {
	h := e.histories[e.current]
	if len(h.entries) == 0 {
		h.push(e.entryLocked(initialAction), e.cfg.History.MaxEntries)
	}
	return h
}

func (e *Editor) entryLocked(action string) HistoryEntry {
	return HistoryEntry{
		Timestamp: e.now(),
		Level:     levels.Clone(e.levels[e.current]),
		Action:    action,
	}
}

func (e *Editor) recordLocked(action string) {
	h := e.historyLocked()
	h.push(e.entryLocked(action), e.cfg.History.MaxEntries)
	e.log.WithField("action", action).Debug("history commit")
}

// CommitBatch records the current level as one entry. It closes a paint
// session or any run of SkipHistory updates.
func (e *Editor) CommitBatch(action string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.paint = nil
	e.recordLocked(action)
}

// Undo restores the previous snapshot. It reports false at the start of history.
func (e *Editor) Undo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	h := e.historyLocked()
	if !h.canUndo() {
		return false
	}
	h.index--
	e.levels[e.current] = levels.Clone(h.entries[h.index].Level)
	return true
}

// Redo reapplies the next snapshot. It reports false at the end of history.
func (e *Editor) Redo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	h := e.historyLocked()
	if !h.canRedo() {
		return false
	}
	h.index++
	e.levels[e.current] = levels.Clone(h.entries[h.index].Level)
	return true
}

func (e *Editor) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.historyLocked().canUndo()
}

func (e *Editor) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.historyLocked().canRedo()
}

// History returns copies of the focused level's entries, oldest first.
func (e *Editor) History() []HistoryEntry {
	e.mu.Lock()
	defer e.mu.Unlock()

	h := e.historyLocked()
	out := make([]HistoryEntry, len(h.entries))
	for i, entry := range h.entries {
		entry.Level = levels.Clone(entry.Level)
		out[i] = entry
	}
	return out
}

func (e *Editor) HistoryIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.historyLocked().index
}
