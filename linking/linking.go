// Package linking maintains the directed trigger graph between interactable
// objects, such as a button opening a door. Each link is recorded twice: the
// source lists the target under linkedObjects and the target lists the source
// under linkedFrom.
package linking

import (
	"slices"

	"github.com/milk9111/leveleditor/levels"
)

const (
	ReasonSelf        = "Cannot link object to itself"
	ReasonExists      = "Link already exists"
	ReasonNotLinkable = "Object cannot be linked"
	ReasonNotLinked   = "Objects are not linked"
)

type Result struct {
	Valid  bool
	Reason string
}

func invalid(reason string) Result {
	return Result{Reason: reason}
}

// CanObjectBeLinked reports whether e is an interactable object. Tiles and
// spawn points never carry the marker.
func CanObjectBeLinked(e levels.Entity) bool {
	return e.Properties.Bool(levels.PropInteractable)
}

func CanLinkObjects(source, target levels.Entity) Result {
	if source.ID == target.ID {
		return invalid(ReasonSelf)
	}
	if !CanObjectBeLinked(source) || !CanObjectBeLinked(target) {
		return invalid(ReasonNotLinkable)
	}
	if slices.Contains(source.Properties.Strings(levels.PropLinkedObjects), target.ID) {
		return invalid(ReasonExists)
	}
	return Result{Valid: true}
}

// CreateLink returns copies of source and target with the link recorded on both.
func CreateLink(source, target levels.Entity) (levels.Entity, levels.Entity) {
	src, dst := source.Clone(), target.Clone()
	src.Properties = ensure(src.Properties)
	dst.Properties = ensure(dst.Properties)

	src.Properties.SetStrings(levels.PropLinkedObjects, appendUnique(src.Properties.Strings(levels.PropLinkedObjects), target.ID))
	dst.Properties.SetStrings(levels.PropLinkedFrom, appendUnique(dst.Properties.Strings(levels.PropLinkedFrom), source.ID))
	return src, dst
}

// RemoveLink returns copies of source and target with the link removed from both.
func RemoveLink(source, target levels.Entity) (levels.Entity, levels.Entity) {
	src, dst := source.Clone(), target.Clone()
	src.Properties = ensure(src.Properties)
	dst.Properties = ensure(dst.Properties)

	src.Properties.SetStrings(levels.PropLinkedObjects, without(src.Properties.Strings(levels.PropLinkedObjects), target.ID))
	dst.Properties.SetStrings(levels.PropLinkedFrom, without(dst.Properties.Strings(levels.PropLinkedFrom), source.ID))
	return src, dst
}

// IsLinked reports whether source triggers target.
func IsLinked(source, target levels.Entity) bool {
	return slices.Contains(source.Properties.Strings(levels.PropLinkedObjects), target.ID)
}

// LinkedFrom derives the ids of every object whose linkedObjects names target.
// It must agree with the stored linkedFrom list.
func LinkedFrom(target levels.Entity, objects []levels.Entity) []string {
	var out []string
	for _, o := range objects {
		if o.ID != target.ID && IsLinked(o, target) {
			out = append(out, o.ID)
		}
	}
	return out
}

// ScrubReferences drops removed ids from every link list. Objects without
// dangling references are returned as they are.
func ScrubReferences(objects []levels.Entity, removed map[string]bool) []levels.Entity {
	out := make([]levels.Entity, len(objects))
	for i, o := range objects {
		linked := o.Properties.Strings(levels.PropLinkedObjects)
		from := o.Properties.Strings(levels.PropLinkedFrom)
		keptLinked := slices.DeleteFunc(slices.Clone(linked), func(id string) bool { return removed[id] })
		keptFrom := slices.DeleteFunc(slices.Clone(from), func(id string) bool { return removed[id] })
		if len(keptLinked) == len(linked) && len(keptFrom) == len(from) {
			out[i] = o
			continue
		}

		c := o.Clone()
		if _, ok := c.Properties[levels.PropLinkedObjects]; ok {
			c.Properties.SetStrings(levels.PropLinkedObjects, keptLinked)
		}
		if _, ok := c.Properties[levels.PropLinkedFrom]; ok {
			c.Properties.SetStrings(levels.PropLinkedFrom, keptFrom)
		}
		out[i] = c
	}
	return out
}

func ensure(p levels.Properties) levels.Properties {
	if p == nil {
		return levels.Properties{}
	}
	return p
}

func appendUnique(list []string, id string) []string {
	if slices.Contains(list, id) {
		return list
	}
	return append(list, id)
}

func without(list []string, id string) []string {
	return slices.DeleteFunc(list, func(v string) bool { return v == id })
}
