package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/leveleditor/batch"
	"github.com/milk9111/leveleditor/levels"
	"github.com/milk9111/leveleditor/selection"
)

func TestExportFileName(t *testing.T) {
	tests := map[string]string{
		"My Level":       "my-level.json",
		"  Tutorial  ":   "tutorial.json",
		"World 1 -- 2!!": "world-1-2.json",
		"":               "level.json",
		"???":            "level.json",
	}
	for in, want := range tests {
		assert.Equal(t, want, exportFileName(in), in)
	}
}

func TestConfirmed(t *testing.T) {
	for _, yes := range []string{"y", "Y", " yes ", "YES"} {
		assert.True(t, confirmed(yes), yes)
	}
	for _, no := range []string{"", "n", "no", "yep"} {
		assert.False(t, confirmed(no), no)
	}
}

func TestSelectionSummary(t *testing.T) {
	assert.Empty(t, selectionSummary(batch.Analysis{}))

	buttons := batch.AnalyzeSelection([]levels.Entity{
		ent("a", levels.TypeButton, 0, 0, 1, 1),
		ent("b", levels.TypeButton, 1, 0, 1, 1),
	})
	assert.Equal(t, "2 x Button", selectionSummary(buttons))

	mixed := batch.AnalyzeSelection([]levels.Entity{
		ent("a", levels.TypeButton, 0, 0, 1, 1),
		ent("d", levels.TypeDoor, 1, 0, 1, 1),
	})
	assert.Equal(t, "2 selected (Mixed)", selectionSummary(mixed))
}

func TestParsePropertyInput(t *testing.T) {
	tests := []struct {
		in    string
		path  string
		value any
	}{
		{"layer=2", "layer", 2.0},
		{" properties.collidable = false ", "properties.collidable", false},
		{`properties.material="ice"`, "properties.material", "ice"},
		{"properties.material=ice", "properties.material", "ice"},
		{"facingDirection=left", "facingDirection", "left"},
		{`position={"x":1,"y":2}`, "position", map[string]any{"x": 1.0, "y": 2.0}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			path, value, err := parsePropertyInput(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.path, path)
			assert.Equal(t, tt.value, value)
		})
	}

	for _, bad := range []string{"layer", "=3", ""} {
		_, _, err := parsePropertyInput(bad)
		assert.ErrorIs(t, err, errPropertyInput, bad)
	}
}

func TestPaletteAndToolLabels(t *testing.T) {
	entry, ok := paletteEntry(levels.TypeButton)
	require.True(t, ok)
	assert.True(t, entry.Object)
	assert.Equal(t, "* Button", paletteLabel(entry))

	entry, ok = paletteEntry("platform-grass")
	require.True(t, ok)
	assert.False(t, entry.Object)
	assert.Equal(t, "Platform - Grass", paletteLabel(entry))

	_, ok = paletteEntry("nope")
	assert.False(t, ok)

	assert.Equal(t, "1 Select", toolLabel(0, selection.Tools[0]))
	assert.Equal(t, "2. Tutorial", levelEntryLabel(LevelEntry{Index: 1, Name: "Tutorial"}))
	assert.Empty(t, levelEntryLabel("not an entry"))
}

func TestEntityColor(t *testing.T) {
	spikes, _ := paletteEntry("hazard-spikes")
	assert.Equal(t, spikes.Color, entityColor(ent("h", "hazard-spikes", 0, 0, 1, 1)))
	assert.Equal(t, spikes.Color, entityColor(ent("h", "hazard-lava", 0, 0, 1, 1)))
	assert.NotEqual(t, spikes.Color, entityColor(ent("u", "unknown", 0, 0, 1, 1)))
}
