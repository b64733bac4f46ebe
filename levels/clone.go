package levels

func (e Entity) Clone() Entity {
	out := e
	out.Properties = e.Properties.Clone()
	if e.IsDefault != nil {
		v := *e.IsDefault
		out.IsDefault = &v
	}
	return out
}

func cloneEntities(src []Entity) []Entity {
	if src == nil {
		return nil
	}
	out := make([]Entity, len(src))
	for i, e := range src {
		out[i] = e.Clone()
	}
	return out
}

// Clone returns a deep copy. History snapshots rely on it never sharing
// mutable state with the source.
func Clone(l *Level) *Level {
	if l == nil {
		return nil
	}
	out := *l
	out.Tiles = cloneEntities(l.Tiles)
	out.Objects = cloneEntities(l.Objects)
	out.SpawnPoints = cloneEntities(l.SpawnPoints)
	return &out
}

func CloneAll(src []*Level) []*Level {
	out := make([]*Level, len(src))
	for i, l := range src {
		out[i] = Clone(l)
	}
	return out
}
