package levels

import "encoding/json"

const (
	PropCollidable    = "collidable"
	PropInteractable  = "interactable"
	PropButtonNumber  = "buttonNumber"
	PropLinkedObjects = "linkedObjects"
	PropLinkedFrom    = "linkedFrom"
	PropMaterial      = "material"
	PropSpawnID       = "spawnId"
)

// Properties is the open key-value bag of an entity. Values keep the shapes
// encoding/json produces (float64, string, bool, []any, map[string]any) so
// a bag survives a serialize round-trip unchanged.
type Properties map[string]any

func (p Properties) Bool(key string) bool {
	v, _ := p[key].(bool)
	return v
}

func (p Properties) Number(key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

// Strings returns the string elements stored under key. Non-string elements are skipped.
func (p Properties) Strings(key string) []string {
	switch v := p[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func (p Properties) SetStrings(key string, values []string) {
	list := make([]any, len(values))
	for i, s := range values {
		list[i] = s
	}
	p[key] = list
}

func (p Properties) Clone() Properties {
	if p == nil {
		return nil
	}
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, inner := range t {
			m[k] = cloneValue(inner)
		}
		return m
	case Properties:
		return t.Clone()
	case []any:
		s := make([]any, len(t))
		for i, inner := range t {
			s[i] = cloneValue(inner)
		}
		return s
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}
