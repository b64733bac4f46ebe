// Package editor is the level editor engine. It owns the open levels, the
// editor state and one undo history per level. Every document change goes
// through Update, which replaces the focused level with a fresh copy so
// snapshots held by history or by a concurrent save are never written to.
package editor

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/milk9111/leveleditor/common"
	"github.com/milk9111/leveleditor/config"
	"github.com/milk9111/leveleditor/levels"
	"github.com/milk9111/leveleditor/logger"
	"github.com/milk9111/leveleditor/selection"
	"github.com/milk9111/leveleditor/storage"
)

type Editor struct {
	mu sync.Mutex

	store storage.Store
	log   logrus.FieldLogger
	cfg   config.Config
	now   func() time.Time
	sched Scheduler

	levels    []*levels.Level
	histories []*history
	current   int
	state     State

	clipboardOrigin common.Point
	paint           *paintSession
	pending         *pendingDelete
	deleteGen       uint64

	autosave     bool
	autosaveMu   sync.Mutex
	autosaveStop chan struct{}
	autosaveDone chan struct{}
	closeOnce    sync.Once
}

// New loads the stored level list, or starts with one default level when
// nothing usable is stored, and starts auto-save.
func New(store storage.Store, opts ...Option) *Editor {
	e := &Editor{
		store:    store,
		log:      logger.Discard(),
		cfg:      config.Default(),
		now:      time.Now,
		sched:    realScheduler{},
		autosave: true,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.levels = e.load()
	e.histories = make([]*history, len(e.levels))
	for i := range e.histories {
		e.histories[i] = &history{}
	}
	e.state = State{
		Zoom:          1,
		ShowGrid:      e.cfg.Editor.ShowGrid,
		ShowScanlines: e.cfg.Editor.ShowScanlines,
	}
	e.historyLocked()

	if e.autosave {
		e.startAutosave(e.cfg.Editor.AutosaveInterval)
	}
	return e
}

func (e *Editor) load() []*levels.Level {
	fallback := []*levels.Level{levels.CreateDefaultLevel("")}
	if e.store == nil {
		return fallback
	}

	data, ok, err := e.store.Get(storage.KeyLevels)
	if err != nil {
		e.log.WithError(err).Warn("load levels, starting with a default level")
		return fallback
	}
	if !ok {
		return fallback
	}
	list, dropped, err := levels.DeserializeEach(string(data))
	if err != nil {
		e.log.WithError(err).Warn("stored levels unreadable, starting with a default level")
		return fallback
	}
	for _, d := range dropped {
		e.log.WithError(d).Warn("dropped invalid stored level")
	}
	if len(list) == 0 {
		return fallback
	}
	e.log.WithField("count", len(list)).Info("loaded levels")
	return list
}

// Close stops auto-save, cancels a pending delete and saves once more.
func (e *Editor) Close() error {
	var err error
	e.closeOnce.Do(func() {
		e.stopAutosave()

		e.mu.Lock()
		if e.pending != nil {
			e.pending.timer.Stop()
			e.pending = nil
			e.state.DeletingObjects = nil
		}
		e.mu.Unlock()

		err = e.Save()
	})
	return err
}

// Update applies updater to a copy of the focused level. The result replaces
// the level and, unless SkipHistory is given, is recorded under action. A nil
// result leaves everything unchanged.
func (e *Editor) Update(updater func(*levels.Level) *levels.Level, action string, opts ...UpdateOption) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.updateLocked(updater, action, opts...)
}

func (e *Editor) updateLocked(updater func(*levels.Level) *levels.Level, action string, opts ...UpdateOption) bool {
	var o updateOptions
	for _, opt := range opts {
		opt(&o)
	}

	e.historyLocked()
	next := updater(levels.Clone(e.levels[e.current]))
	if next == nil {
		return false
	}
	e.levels[e.current] = next
	if !o.skipHistory {
		e.recordLocked(action)
	}
	return true
}

// Level returns a copy of the focused level.
func (e *Editor) Level() *levels.Level {
	e.mu.Lock()
	defer e.mu.Unlock()
	return levels.Clone(e.levels[e.current])
}

func (e *Editor) Levels() []*levels.Level {
	e.mu.Lock()
	defer e.mu.Unlock()
	return levels.CloneAll(e.levels)
}

func (e *Editor) LevelNames() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	names := make([]string, len(e.levels))
	for i, l := range e.levels {
		names[i] = l.LevelName
	}
	return names
}

func (e *Editor) CurrentIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.clone()
}

func (e *Editor) Config() config.Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// ApplyConfig swaps the tunables at runtime. Histories longer than the new
// cap are trimmed on their next commit.
func (e *Editor) ApplyConfig(cfg config.Config) {
	e.mu.Lock()
	old := e.cfg.Editor.AutosaveInterval
	e.cfg = cfg
	e.state.Zoom = e.clampZoom(e.state.Zoom)
	e.mu.Unlock()

	e.log.Info("editor config applied")
	if e.autosave && old != cfg.Editor.AutosaveInterval {
		e.stopAutosave()
		e.startAutosave(cfg.Editor.AutosaveInterval)
	}
}

func (e *Editor) applyPatchLocked(p selection.Patch) {
	p.Apply(&e.state.State)
}
