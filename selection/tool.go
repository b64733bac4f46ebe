package selection

import "fmt"

type Tool int

const (
	ToolNone Tool = iota
	ToolSelect
	ToolMultiSelect
	ToolMove
	ToolPen
	ToolLine
	ToolRectangle
	ToolLink
	ToolUnlink
)

// Tools lists every selectable tool in toolbar order.
var Tools = []Tool{ToolSelect, ToolMultiSelect, ToolMove, ToolPen, ToolLine, ToolRectangle, ToolLink, ToolUnlink}

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolMultiSelect:
		return "multiselect"
	case ToolMove:
		return "move"
	case ToolPen:
		return "pen"
	case ToolLine:
		return "line"
	case ToolRectangle:
		return "rectangle"
	case ToolLink:
		return "link"
	case ToolUnlink:
		return "unlink"
	default:
		return "none"
	}
}

func ParseTool(s string) (Tool, error) {
	for _, t := range Tools {
		if t.String() == s {
			return t, nil
		}
	}
	if s == "" || s == "none" {
		return ToolNone, nil
	}
	return ToolNone, fmt.Errorf("unknown tool %q", s)
}

// IsDrawing reports whether t places tiles. Drawing tools keep the staged
// tile type when switched between.
func (t Tool) IsDrawing() bool {
	return t == ToolPen || t == ToolLine || t == ToolRectangle
}
