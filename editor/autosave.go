package editor

import (
	"fmt"
	"time"

	"github.com/milk9111/leveleditor/levels"
	"github.com/milk9111/leveleditor/storage"
)

// Save writes the level list and a timestamp to the store. Stored levels are
// never modified in place, so the list is encoded outside the lock.
func (e *Editor) Save() error {
	if e.store == nil {
		return nil
	}

	e.mu.Lock()
	list := append([]*levels.Level(nil), e.levels...)
	now := e.now()
	e.mu.Unlock()

	if len(list) == 0 {
		return nil
	}
	text, err := levels.SerializeAll(list)
	if err != nil {
		return err
	}
	if err := e.store.Set(storage.KeyLevels, []byte(text)); err != nil {
		return fmt.Errorf("save levels: %w", err)
	}
	if err := e.store.Set(storage.KeyAutosave, []byte(now.UTC().Format(time.RFC3339))); err != nil {
		return fmt.Errorf("save timestamp: %w", err)
	}
	return nil
}

// LastSaved reads the auto-save timestamp from the store.
func (e *Editor) LastSaved() (time.Time, bool) {
	if e.store == nil {
		return time.Time{}, false
	}
	data, ok, err := e.store.Get(storage.KeyAutosave)
	if err != nil || !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, string(data))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (e *Editor) startAutosave(interval time.Duration) {
	if interval <= 0 {
		return
	}
	e.autosaveMu.Lock()
	defer e.autosaveMu.Unlock()

	stop := make(chan struct{})
	done := make(chan struct{})
	e.autosaveStop, e.autosaveDone = stop, done

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := e.Save(); err != nil {
					e.log.WithError(err).Warn("autosave failed")
					continue
				}
				e.log.Debug("autosaved")
			case <-stop:
				return
			}
		}
	}()
}

func (e *Editor) stopAutosave() {
	e.autosaveMu.Lock()
	stop, done := e.autosaveStop, e.autosaveDone
	e.autosaveStop, e.autosaveDone = nil, nil
	e.autosaveMu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}
