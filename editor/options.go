package editor

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/milk9111/leveleditor/config"
)

// Timer is the handle of a scheduled callback.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. The default uses time.AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type Option func(*Editor)

func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Editor) { e.log = l }
}

func WithConfig(cfg config.Config) Option {
	return func(e *Editor) { e.cfg = cfg }
}

func WithClock(now func() time.Time) Option {
	return func(e *Editor) { e.now = now }
}

func WithScheduler(s Scheduler) Option {
	return func(e *Editor) { e.sched = s }
}

// WithoutAutosave disables the periodic save. Close still flushes once.
func WithoutAutosave() Option {
	return func(e *Editor) { e.autosave = false }
}

type updateOptions struct {
	skipHistory bool
}

type UpdateOption func(*updateOptions)

// SkipHistory applies a change without recording it. A later CommitBatch
// records everything skipped since as a single entry.
func SkipHistory() UpdateOption {
	return func(o *updateOptions) { o.skipHistory = true }
}
