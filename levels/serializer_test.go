package levels

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/leveleditor/common"
)

func boolPtr(v bool) *bool { return &v }

func sampleLevel() *Level {
	lvl := CreateDefaultLevel("Sample")
	lvl.Objects = []Entity{
		{
			ID:         "btn",
			Type:       TypeButton,
			Position:   common.Point{X: 4, Y: 19},
			Dimensions: Size{Width: 1, Height: 1},
			Layer:      1,
			Properties: Properties{
				PropInteractable:  true,
				PropButtonNumber:  float64(1),
				PropLinkedObjects: []any{"door"},
			},
		},
		{
			ID:         "door",
			Type:       TypeDoor,
			Position:   common.Point{X: 10, Y: 18},
			Dimensions: Size{Width: 1, Height: 2},
			Rotation:   90,
			Layer:      1,
			Properties: Properties{
				PropInteractable: true,
				PropLinkedFrom:   []any{"btn"},
				"meta":           map[string]any{"locked": true},
			},
		},
	}
	lvl.SpawnPoints = []Entity{
		{
			ID:              "spawn",
			Type:            TypePlayer,
			Position:        common.Point{X: 1, Y: 19},
			Dimensions:      Size{Width: 1, Height: 1},
			Layer:           1,
			Properties:      Properties{PropSpawnID: "spawn"},
			FacingDirection: "right",
			IsDefault:       boolPtr(true),
		},
	}
	return lvl
}

func TestSerializeRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		level *Level
	}{
		{"default", CreateDefaultLevel("")},
		{"populated", sampleLevel()},
		{"empty collections", &Level{
			LevelName: "Empty",
			Metadata:  Metadata{Version: "1.0", Dimensions: Size{Width: 10, Height: 5}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := Serialize(tt.level)
			require.NoError(t, err)
			assert.Contains(t, text, "\n  \"levelName\"")

			got, err := Deserialize(text)
			require.NoError(t, err)
			assert.Equal(t, normalized(tt.level), got)
		})
	}
}

func TestDeserializeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		target  error
		message string
	}{
		{"malformed", `{"levelName":`, ErrParse, "Failed to parse level data"},
		{"array", `[]`, ErrMissingFields, "missing required fields"},
		{"number", `42`, ErrMissingFields, "missing required fields"},
		{"string", `"x"`, ErrMissingFields, "missing required fields"},
		{"null", `null`, ErrMissingFields, "missing required fields"},
		{"missing tiles", `{"levelName":"a","metadata":{"version":"1.0","dimensions":{}},"objects":[],"spawnPoints":[]}`, ErrMissingFields, "missing required fields"},
		{"empty name", `{"levelName":"","metadata":{"version":"1.0","dimensions":{}},"tiles":[],"objects":[],"spawnPoints":[]}`, ErrMissingFields, "missing required fields"},
		{"missing version", `{"levelName":"a","metadata":{"dimensions":{}},"tiles":[],"objects":[],"spawnPoints":[]}`, ErrInvalidMetadata, "Invalid metadata format"},
		{"missing dimensions", `{"levelName":"a","metadata":{"version":"1.0"},"tiles":[],"objects":[],"spawnPoints":[]}`, ErrInvalidMetadata, "Invalid metadata format"},
		{"wrong tile shape", `{"levelName":"a","metadata":{"version":"1.0","dimensions":{}},"tiles":"nope","objects":[],"spawnPoints":[]}`, ErrParse, "Failed to parse level data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, err := Deserialize(tt.input)
			require.Error(t, err)
			assert.Nil(t, lvl)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
			assert.True(t, errors.Is(err, ErrParse))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestCreateDefaultLevel(t *testing.T) {
	lvl := CreateDefaultLevel("")

	assert.Equal(t, DefaultName, lvl.LevelName)
	assert.Equal(t, "1.0", lvl.Metadata.Version)
	assert.Equal(t, "Level Editor", lvl.Metadata.Author)
	assert.Empty(t, lvl.Metadata.Description)
	assert.Equal(t, Size{Width: 60, Height: 30}, lvl.Metadata.Dimensions)
	assert.NotEmpty(t, lvl.Metadata.CreatedAt)
	assert.Empty(t, lvl.Objects)
	assert.Empty(t, lvl.SpawnPoints)

	require.Len(t, lvl.Tiles, 10)
	for i, tile := range lvl.Tiles {
		assert.Equal(t, "platform-grass", tile.Type)
		assert.Equal(t, common.Point{X: i * 6, Y: DefaultGrassY}, tile.Position)
		assert.True(t, tile.Properties.Bool(PropCollidable))
	}
	assert.Equal(t, "tile-ground-54", lvl.Tiles[9].ID)
}

func TestSerializeAll(t *testing.T) {
	list := []*Level{CreateDefaultLevel("One"), sampleLevel()}
	text, err := SerializeAll(list)
	require.NoError(t, err)

	got, err := DeserializeAll(text)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "One", got[0].LevelName)
	assert.Equal(t, list[1].Objects, got[1].Objects)

	_, err = DeserializeAll(`[{"levelName":"x"}]`)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "level 0:"))
}

func TestDeserializeEachSkipsInvalidEntries(t *testing.T) {
	good := CreateDefaultLevel("Good")
	text, err := SerializeAll([]*Level{good})
	require.NoError(t, err)
	text = strings.TrimSuffix(strings.TrimSpace(text), "]") + `,{"levelName":"x"},42]`

	list, dropped, err := DeserializeEach(text)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Good", list[0].LevelName)
	require.Len(t, dropped, 2)
	assert.True(t, strings.HasPrefix(dropped[0].Error(), "level 1:"))
	assert.ErrorIs(t, dropped[1], ErrMissingFields)

	_, _, err = DeserializeEach(`[{`)
	assert.ErrorIs(t, err, ErrParse)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "my_level_2_.json", FileName(&Level{LevelName: "My Level 2!"}))
}

func TestLoadLevelFromFS(t *testing.T) {
	names := Bundled()
	require.Contains(t, names, "tutorial")

	lvl, err := LoadLevelFromFS("tutorial")
	require.NoError(t, err)
	assert.Equal(t, "Tutorial", lvl.LevelName)

	_, ok := lvl.PlayerSpawn()
	assert.True(t, ok)

	_, err = LoadLevelFromFS("missing")
	assert.Error(t, err)
}
