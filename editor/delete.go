package editor

import (
	"slices"

	"github.com/milk9111/leveleditor/levels"
	"github.com/milk9111/leveleditor/linking"
)

// pendingDelete is a deletion between its two phases. The id set is fixed
// when it is scheduled.
type pendingDelete struct {
	gen   uint64
	ids   []string
	timer Timer
}

// DeleteSelectedObjects marks the selection as deleting so a renderer can
// animate it, then removes it after the configured delay as one history
// entry. Deleting again before the delay elapses folds the earlier set into
// the new one and restarts the delay.
func (e *Editor) DeleteSelectedObjects() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.state.Objects) == 0 {
		return false
	}

	ids := slices.Clone(e.state.Objects)
	if e.pending != nil {
		e.pending.timer.Stop()
		for _, id := range e.pending.ids {
			if !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
		}
	}

	e.deleteGen++
	gen := e.deleteGen
	e.state.DeletingObjects = slices.Clone(ids)
	e.pending = &pendingDelete{
		gen:   gen,
		ids:   ids,
		timer: e.sched.AfterFunc(e.cfg.Editor.DeleteDelay, func() { e.finishDelete(gen) }),
	}
	return true
}

func (e *Editor) finishDelete(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pending == nil || e.pending.gen != gen {
		return
	}
	e.applyDeleteLocked()
}

// FlushPendingDelete runs a scheduled deletion now. It reports whether one was pending.
func (e *Editor) FlushPendingDelete() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.flushDeleteLocked()
}

func (e *Editor) flushDeleteLocked() bool {
	if e.pending == nil {
		return false
	}
	e.pending.timer.Stop()
	e.applyDeleteLocked()
	return true
}

func (e *Editor) DeletePending() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pending != nil
}

// applyDeleteLocked removes the captured ids that still exist. Ids already
// gone, through undo or another edit, are skipped.
func (e *Editor) applyDeleteLocked() {
	p := e.pending
	e.pending = nil

	lvl := e.levels[e.current]
	present := make(map[string]bool, len(p.ids))
	for _, id := range p.ids {
		if lvl.HasID(id) {
			present[id] = true
		}
	}

	if len(present) > 0 {
		e.updateLocked(func(l *levels.Level) *levels.Level {
			l.Remove(present)
			l.Objects = linking.ScrubReferences(l.Objects, present)
			return l
		}, "Deleted "+plural(len(present), "object"))
	}

	e.state.DeletingObjects = nil
	e.state.Objects = nil
	e.log.WithField("count", len(present)).Debug("delete applied")
}
