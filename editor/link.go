package editor

import (
	"fmt"

	"github.com/milk9111/leveleditor/levels"
	"github.com/milk9111/leveleditor/linking"
)

const reasonNotFound = "Source or target object not found"

func findObject(l *levels.Level, id string) (levels.Entity, bool) {
	for _, o := range l.Objects {
		if o.ID == id {
			return o, true
		}
	}
	return levels.Entity{}, false
}

// LinkObjects makes sourceID trigger targetID. Invalid requests change
// nothing and report why.
func (e *Editor) LinkObjects(sourceID, targetID string) linking.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.linkLocked(sourceID, targetID)
}

func (e *Editor) linkLocked(sourceID, targetID string) linking.Result {
	if sourceID == targetID {
		return linking.Result{Reason: linking.ReasonSelf}
	}
	lvl := e.levels[e.current]
	src, okSrc := findObject(lvl, sourceID)
	dst, okDst := findObject(lvl, targetID)
	if !okSrc || !okDst {
		return linking.Result{Reason: reasonNotFound}
	}
	if res := linking.CanLinkObjects(src, dst); !res.Valid {
		return res
	}

	src, dst = linking.CreateLink(src, dst)
	e.updateLocked(func(l *levels.Level) *levels.Level {
		l.Replace(src)
		l.Replace(dst)
		return l
	}, fmt.Sprintf("Linked %s to %s", src.Type, dst.Type))
	return linking.Result{Valid: true}
}

// UnlinkObjects removes the link between two objects in whichever direction it exists.
func (e *Editor) UnlinkObjects(firstID, secondID string) linking.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.unlinkLocked(firstID, secondID)
}

func (e *Editor) unlinkLocked(firstID, secondID string) linking.Result {
	lvl := e.levels[e.current]
	first, okFirst := findObject(lvl, firstID)
	second, okSecond := findObject(lvl, secondID)
	if !okFirst || !okSecond {
		return linking.Result{Reason: reasonNotFound}
	}

	src, dst := first, second
	switch {
	case linking.IsLinked(first, second):
	case linking.IsLinked(second, first):
		src, dst = second, first
	default:
		return linking.Result{Reason: linking.ReasonNotLinked}
	}

	src, dst = linking.RemoveLink(src, dst)
	e.updateLocked(func(l *levels.Level) *levels.Level {
		l.Replace(src)
		l.Replace(dst)
		return l
	}, fmt.Sprintf("Unlinked %s from %s", src.Type, dst.Type))
	return linking.Result{Valid: true}
}

// LinkClick drives the two-click link gesture. The first click on a linkable
// object arms it as the source; the second completes the link. done is false
// while the gesture is still waiting for a target.
func (e *Editor) LinkClick(id string) (res linking.Result, done bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.LinkSourceID == "" {
		obj, ok := findObject(e.levels[e.current], id)
		if !ok || !linking.CanObjectBeLinked(obj) {
			return linking.Result{Reason: linking.ReasonNotLinkable}, true
		}
		e.state.LinkSourceID = id
		return linking.Result{Valid: true}, false
	}

	source := e.state.LinkSourceID
	e.state.LinkSourceID = ""
	return e.linkLocked(source, id), true
}

// UnlinkClick is LinkClick for the unlink tool.
func (e *Editor) UnlinkClick(id string) (res linking.Result, done bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.UnlinkSourceID == "" {
		if _, ok := findObject(e.levels[e.current], id); !ok {
			return linking.Result{Reason: reasonNotFound}, true
		}
		e.state.UnlinkSourceID = id
		return linking.Result{Valid: true}, false
	}

	first := e.state.UnlinkSourceID
	e.state.UnlinkSourceID = ""
	return e.unlinkLocked(first, id), true
}
