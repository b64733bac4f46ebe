package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTile(t *testing.T) {
	tests := []struct {
		name    string
		current Tool
		want    Tool
	}{
		{"keeps pen", ToolPen, ToolPen},
		{"keeps line", ToolLine, ToolLine},
		{"keeps rectangle", ToolRectangle, ToolRectangle},
		{"from select", ToolSelect, ToolPen},
		{"from nothing", ToolNone, ToolPen},
		{"from link", ToolLink, ToolPen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{Tool: tt.current, Objects: []string{"a"}}
			p := SelectTile("platform-grass", tt.current)
			assert.False(t, p.ClearObjects)

			p.Apply(&s)
			assert.Equal(t, tt.want, s.Tool)
			assert.Equal(t, "platform-grass", s.TileType)
			assert.Equal(t, []string{"a"}, s.Objects)
		})
	}
}

func TestSelectTool(t *testing.T) {
	tests := []struct {
		name     string
		tool     Tool
		wantTile string
	}{
		{"drawing keeps tile", ToolLine, "platform-grass"},
		{"select clears tile", ToolSelect, ""},
		{"move clears tile", ToolMove, ""},
		{"link clears tile", ToolLink, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{
				Tool:           ToolPen,
				TileType:       "platform-grass",
				Objects:        []string{"a", "b"},
				LinkSourceID:   "a",
				UnlinkSourceID: "b",
			}
			SelectTool(tt.tool).Apply(&s)

			assert.Equal(t, tt.tool, s.Tool)
			assert.Equal(t, tt.wantTile, s.TileType)
			assert.Equal(t, []string{"a", "b"}, s.Objects)
			assert.Empty(t, s.LinkSourceID)
			assert.Empty(t, s.UnlinkSourceID)
		})
	}
}

func TestSelectToolPatchOmitsObjects(t *testing.T) {
	p := SelectTool(ToolPen)
	require.NotNil(t, p.Tool)
	assert.Equal(t, ToolPen, *p.Tool)
	assert.Nil(t, p.TileType)
	assert.False(t, p.ClearObjects)
}

func TestClearTransitions(t *testing.T) {
	s := State{Tool: ToolMove, TileType: "x", Objects: []string{"a"}, LinkSourceID: "a"}

	ClearObjects().Apply(&s)
	assert.Empty(t, s.Objects)
	assert.Equal(t, ToolMove, s.Tool)
	assert.Equal(t, "x", s.TileType)

	s.Objects = []string{"a"}
	ClearAll().Apply(&s)
	assert.Equal(t, State{}, s)
}

func TestToolNames(t *testing.T) {
	for _, tool := range Tools {
		got, err := ParseTool(tool.String())
		require.NoError(t, err)
		assert.Equal(t, tool, got)
	}
	_, err := ParseTool("eraser")
	assert.Error(t, err)
	assert.True(t, ToolRectangle.IsDrawing())
	assert.False(t, ToolMultiSelect.IsDrawing())
}

func TestToggle(t *testing.T) {
	in := []string{"a", "b"}
	assert.Equal(t, []string{"a", "b", "c"}, Toggle(in, "c"))
	assert.Equal(t, []string{"b"}, Toggle(in, "a"))
	assert.Equal(t, []string{"a", "b"}, in)
}
