// Package batch applies one property edit across a multi-entity selection
// that may span tiles, objects and spawn points.
package batch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/milk9111/leveleditor/common"
	"github.com/milk9111/leveleditor/levels"
)

// Mixed is reported when selected entities disagree on a value.
const Mixed = "Mixed"

// SelectedEntities looks ids up in order. Unknown ids are dropped.
func SelectedEntities(level *levels.Level, ids []string) []levels.Entity {
	out := make([]levels.Entity, 0, len(ids))
	for _, id := range ids {
		if e, _, ok := level.Find(id); ok {
			out = append(out, e)
		}
	}
	return out
}

type TypeCount struct {
	Type  string
	Count int
}

type Analysis struct {
	Count       int
	Types       []TypeCount
	AllSameType bool
	CommonType  string
}

func AnalyzeSelection(entities []levels.Entity) Analysis {
	counts := make(map[string]int)
	var order []string
	for _, e := range entities {
		if counts[e.Type] == 0 {
			order = append(order, e.Type)
		}
		counts[e.Type]++
	}

	types := make([]TypeCount, len(order))
	for i, t := range order {
		types[i] = TypeCount{Type: t, Count: counts[t]}
	}
	sort.SliceStable(types, func(i, j int) bool { return types[i].Count > types[j].Count })

	a := Analysis{Count: len(entities), Types: types, AllSameType: len(types) == 1}
	if a.AllSameType {
		a.CommonType = types[0].Type
	}
	return a
}

// CommonPropertyValue returns the value every entity shares at path. ok is
// false, and the value Mixed, when the selection is empty or values differ.
func CommonPropertyValue(entities []levels.Entity, path string) (value any, ok bool) {
	if len(entities) == 0 {
		return Mixed, false
	}
	first := Resolve(entities[0], path)
	for _, e := range entities[1:] {
		if !equal(first, Resolve(e, path)) {
			return Mixed, false
		}
	}
	return first, true
}

// equal compares values structurally. Numbers compare by value regardless
// of their Go type, so 3 and 3.0 are the same.
func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(ja, jb)
}

// UpdateProperty returns a copy of level where every entity in ids has path
// set to value. Supported paths are the entity's top-level fields, one nested
// key of position or dimensions, and properties.<key>. Entities outside ids
// are carried over as they are.
func UpdateProperty(level *levels.Level, ids []string, path string, value any) (*levels.Level, error) {
	set, err := setter(path, value)
	if err != nil {
		return nil, err
	}

	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	update := func(src []levels.Entity) []levels.Entity {
		out := make([]levels.Entity, len(src))
		for i, e := range src {
			if !selected[e.ID] {
				out[i] = e
				continue
			}
			c := e
			c.Properties = e.Properties.Clone()
			set(&c)
			out[i] = c
		}
		return out
	}

	next := *level
	next.Tiles = update(level.Tiles)
	next.Objects = update(level.Objects)
	next.SpawnPoints = update(level.SpawnPoints)
	return &next, nil
}

func setter(path string, value any) (func(*levels.Entity), error) {
	if key, ok := strings.CutPrefix(path, propertiesPrefix); ok {
		if key == "" || strings.Contains(key, ".") {
			return nil, fmt.Errorf("batch: unsupported property path %q", path)
		}
		// Stored values take the shapes encoding/json decodes to, so a level
		// reads back exactly as it was saved.
		data, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("batch: %s: %w", path, err)
		}
		var decoded any
		if err := json.Unmarshal(data, &decoded); err != nil {
			return nil, fmt.Errorf("batch: %s: %w", path, err)
		}
		return func(e *levels.Entity) {
			if e.Properties == nil {
				e.Properties = levels.Properties{}
			}
			var v any
			_ = json.Unmarshal(data, &v)
			e.Properties[key] = v
		}, nil
	}

	switch path {
	case "type", "facingDirection":
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("batch: %s wants a string, got %T", path, value)
		}
		if path == "type" {
			return func(e *levels.Entity) { e.Type = s }, nil
		}
		return func(e *levels.Entity) { e.FacingDirection = s }, nil
	case "isDefault":
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("batch: isDefault wants a bool, got %T", value)
		}
		return func(e *levels.Entity) { e.IsDefault = &b }, nil
	case "position":
		p, err := toPair(value, "x", "y")
		if err != nil {
			return nil, fmt.Errorf("batch: position: %w", err)
		}
		return func(e *levels.Entity) { e.Position = common.Point{X: p[0], Y: p[1]} }, nil
	case "dimensions":
		p, err := toPair(value, "width", "height")
		if err != nil {
			return nil, fmt.Errorf("batch: dimensions: %w", err)
		}
		return func(e *levels.Entity) { e.Dimensions = levels.Size{Width: p[0], Height: p[1]} }, nil
	}

	n, err := toInt(value)
	if err != nil {
		return nil, fmt.Errorf("batch: %s: %w", path, err)
	}
	switch path {
	case "layer":
		return func(e *levels.Entity) { e.Layer = n }, nil
	case "rotation":
		if n%90 != 0 || n < 0 || n >= 360 {
			return nil, fmt.Errorf("batch: rotation must be 0, 90, 180 or 270, got %d", n)
		}
		return func(e *levels.Entity) { e.Rotation = n }, nil
	case "position.x":
		return func(e *levels.Entity) { e.Position.X = n }, nil
	case "position.y":
		return func(e *levels.Entity) { e.Position.Y = n }, nil
	case "dimensions.width":
		return func(e *levels.Entity) { e.Dimensions.Width = n }, nil
	case "dimensions.height":
		return func(e *levels.Entity) { e.Dimensions.Height = n }, nil
	}
	return nil, fmt.Errorf("batch: unsupported path %q", path)
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		return int(i), err
	}
	return 0, fmt.Errorf("want a number, got %T", v)
}

func toPair(v any, a, b string) ([2]int, error) {
	switch p := v.(type) {
	case common.Point:
		return [2]int{p.X, p.Y}, nil
	case levels.Size:
		return [2]int{p.Width, p.Height}, nil
	case map[string]any:
		x, err := toInt(p[a])
		if err != nil {
			return [2]int{}, fmt.Errorf("%s: %w", a, err)
		}
		y, err := toInt(p[b])
		if err != nil {
			return [2]int{}, fmt.Errorf("%s: %w", b, err)
		}
		return [2]int{x, y}, nil
	}
	return [2]int{}, fmt.Errorf("unsupported value %T", v)
}

// FormatTypeName turns "platform-basic" into "Platform - Basic".
func FormatTypeName(t string) string {
	parts := strings.Split(t, "-")
	for i, p := range parts {
		if p != "" {
			r, size := utf8.DecodeRuneInString(p)
			parts[i] = string(unicode.ToUpper(r)) + p[size:]
		}
	}
	return strings.Join(parts, " - ")
}
