package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/leveleditor/selection"
)

// ToolBar is the radio group of tool buttons along the top edge.
type ToolBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
	// syncing is set while the bar follows a tool change made elsewhere.
	syncing bool
}

func buildToolBar(theme *widget.Theme, fontFace *text.Face, onToolSelected func(selection.Tool)) (*widget.Container, *ToolBar) {
	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, toolbarHeight),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(toolbarColor)),
	)

	tb := &ToolBar{}
	for i, tool := range selection.Tools {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(toolLabel(i, tool), fontFace, toolTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(64, 40),
			),
		)
		tb.buttons = append(tb.buttons, btn)
		toolbar.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(tb.buttons))
	for _, b := range tb.buttons {
		elements = append(elements, b)
	}
	tb.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if tb.syncing || onToolSelected == nil {
				return
			}
			for idx, b := range tb.buttons {
				if args.Active == b {
					onToolSelected(selection.Tools[idx])
					return
				}
			}
		}),
	)
	return toolbar, tb
}

// SetTool reflects tool on the bar without reporting it back.
func (tb *ToolBar) SetTool(tool selection.Tool) {
	if tb == nil || tb.group == nil {
		return
	}
	for i, t := range selection.Tools {
		if t == tool {
			if tb.group.Active() != tb.buttons[i] {
				tb.syncing = true
				tb.group.SetActive(tb.buttons[i])
				tb.syncing = false
			}
			return
		}
	}
}
