package levels

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/milk9111/leveleditor/common"
)

const (
	FormatVersion = "1.0"
	DefaultName   = "New Level"
	DefaultAuthor = "Level Editor"

	DefaultWidth  = 60
	DefaultHeight = 30
	DefaultGrassY = 20

	groundSegment = 6
)

// The messages are user facing and match what the editor has always shown.
var (
	ErrParse           = errors.New("Failed to parse level data")
	ErrMissingFields   = errors.New("Invalid level format: missing required fields")
	ErrInvalidMetadata = errors.New("Invalid metadata format")
)

// Timestamp formats t the way metadata.createdAt is stored.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

func Serialize(level *Level) (string, error) {
	if level == nil {
		return "", errors.New("serialize: nil level")
	}
	data, err := json.MarshalIndent(normalized(level), "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize %q: %w", level.LevelName, err)
	}
	return string(data), nil
}

func Deserialize(text string) (*Level, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		// Valid JSON that is not an object simply has none of the fields.
		if json.Valid([]byte(text)) {
			return nil, fmt.Errorf("%w: %w", ErrParse, ErrMissingFields)
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	for _, key := range []string{"levelName", "metadata", "tiles", "objects", "spawnPoints"} {
		if !truthy(fields[key]) {
			return nil, fmt.Errorf("%w: %w", ErrParse, ErrMissingFields)
		}
	}

	var meta map[string]json.RawMessage
	if err := json.Unmarshal(fields["metadata"], &meta); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, ErrInvalidMetadata)
	}
	if !truthy(meta["version"]) || !truthy(meta["dimensions"]) {
		return nil, fmt.Errorf("%w: %w", ErrParse, ErrInvalidMetadata)
	}

	var level Level
	if err := json.Unmarshal([]byte(text), &level); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return normalized(&level), nil
}

// SerializeAll encodes the full level list as stored under the levels key.
func SerializeAll(list []*Level) (string, error) {
	out := make([]*Level, len(list))
	for i, l := range list {
		out[i] = normalized(l)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize levels: %w", err)
	}
	return string(data), nil
}

// DeserializeAll decodes a stored level list. Every entry is validated and
// sanitized the same way a single import is, and the first invalid entry
// fails the whole list.
func DeserializeAll(text string) ([]*Level, error) {
	list, dropped, err := DeserializeEach(text)
	if err != nil {
		return nil, err
	}
	if len(dropped) > 0 {
		return nil, dropped[0]
	}
	return list, nil
}

// DeserializeEach decodes a stored level list, keeping every entry that
// validates. Entries that do not are reported in dropped, tagged with their
// index. err is set only when text is not a JSON array.
func DeserializeEach(text string) (list []*Level, dropped []error, err error) {
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	list = make([]*Level, 0, len(raw))
	for i, item := range raw {
		level, err := Deserialize(string(item))
		if err != nil {
			dropped = append(dropped, fmt.Errorf("level %d: %w", i, err))
			continue
		}
		list = append(list, SanitizeImport(level))
	}
	return list, dropped, nil
}

// CreateDefaultLevel builds an empty level with a grass floor spanning its width.
func CreateDefaultLevel(name string) *Level {
	if name == "" {
		name = DefaultName
	}

	tiles := make([]Entity, 0, DefaultWidth/groundSegment)
	for x := 0; x < DefaultWidth; x += groundSegment {
		tiles = append(tiles, Entity{
			ID:         fmt.Sprintf("tile-ground-%d", x),
			Type:       "platform-grass",
			Position:   common.Point{X: x, Y: DefaultGrassY},
			Dimensions: Size{Width: groundSegment, Height: 1},
			Properties: Properties{
				PropCollidable: true,
				PropMaterial:   "grass",
			},
		})
	}

	return &Level{
		LevelName: name,
		Metadata: Metadata{
			Version:         FormatVersion,
			CreatedAt:       Timestamp(time.Now()),
			Author:          DefaultAuthor,
			Dimensions:      Size{Width: DefaultWidth, Height: DefaultHeight},
			BackgroundColor: "transparent",
		},
		Tiles:       tiles,
		Objects:     []Entity{},
		SpawnPoints: []Entity{},
	}
}

var unsafeFileChars = regexp.MustCompile(`[^a-z0-9]`)

// FileName is the download name for a level: "My Level!" becomes "my_level_.json".
func FileName(level *Level) string {
	return unsafeFileChars.ReplaceAllString(strings.ToLower(level.LevelName), "_") + ".json"
}

func normalized(l *Level) *Level {
	out := *l
	if out.Tiles == nil {
		out.Tiles = []Entity{}
	}
	if out.Objects == nil {
		out.Objects = []Entity{}
	}
	if out.SpawnPoints == nil {
		out.SpawnPoints = []Entity{}
	}
	return &out
}

// truthy mirrors the loose presence check older exports were validated with:
// null, false, 0 and "" all count as absent.
func truthy(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	switch string(v) {
	case "", "null", "false", "0", `""`:
		return false
	}
	return true
}
