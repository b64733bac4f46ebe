package main

import (
	"bytes"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/leveleditor/selection"
)

const (
	leftPanelWidth = 200
	toolbarHeight  = 48
)

// uiCallbacks connects the widgets to the game.
type uiCallbacks struct {
	onTool          func(selection.Tool)
	onPalette       func(PaletteEntry)
	onLevelSelected func(int)
	onNewLevel      func()
	onDuplicate     func()
	onDeleteLevel   func()
	onRename        func()
	onImport        func()
	onExport        func()
}

func loadFontFace(size float64) text.Face {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("load font: " + err.Error())
	}
	return &text.GoTextFace{Source: s, Size: size}
}

func BuildEditorUI(fontFace text.Face, cb uiCallbacks) (*ebitenui.UI, *ToolBar, *LevelPanel) {
	ui := &ebitenui.UI{}
	ui.PrimaryTheme = newEditorTheme(&fontFace)
	theme := ui.PrimaryTheme

	toolbarContainer, toolBar := buildToolBar(theme, &fontFace, cb.onTool)

	leftPanel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(leftPanelWidth, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)

	levelPanel := NewLevelPanel()
	addLevelsSection(leftPanel, theme, &fontFace, levelPanel, cb)
	addPaletteSection(leftPanel, &fontFace, cb.onPalette)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	leftPanel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	toolbarContainer.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root.AddChild(leftPanel)
	root.AddChild(toolbarContainer)
	ui.Container = root

	return ui, toolBar, levelPanel
}

func addLevelsSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, lp *LevelPanel, cb uiCallbacks) {
	parent.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Levels", fontFace, labelColor),
	))

	lp.list = widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(levelEntryLabel),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			entry, ok := args.Entry.(LevelEntry)
			if !ok || lp.suppressEvents || cb.onLevelSelected == nil {
				return
			}
			cb.onLevelSelected(entry.Index)
		}),
	)
	lp.list.GetWidget().MinHeight = 160
	parent.AddChild(lp.list)

	rows := [][]struct {
		label string
		fn    func()
	}{
		{{"New", cb.onNewLevel}, {"Copy", cb.onDuplicate}, {"Delete", cb.onDeleteLevel}},
		{{"Rename", cb.onRename}, {"Import", cb.onImport}, {"Export", cb.onExport}},
	}
	for _, row := range rows {
		buttons := widget.NewContainer(
			widget.ContainerOpts.Layout(
				widget.NewRowLayout(
					widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
					widget.RowLayoutOpts.Spacing(6),
				),
			),
		)
		for _, b := range row {
			fn := b.fn
			buttons.AddChild(widget.NewButton(
				widget.ButtonOpts.Image(theme.ButtonTheme.Image),
				widget.ButtonOpts.Text(b.label, fontFace, theme.ButtonTheme.TextColor),
				widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
					if fn != nil {
						fn()
					}
				}),
			))
		}
		parent.AddChild(buttons)
	}
}

func addPaletteSection(parent *widget.Container, fontFace *text.Face, onSelected func(PaletteEntry)) {
	parent.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Palette", fontFace, labelColor),
	))

	entries := make([]any, len(palette))
	for i, p := range palette {
		entries[i] = p
	}
	list := widget.NewList(
		widget.ListOpts.Entries(entries),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if p, ok := e.(PaletteEntry); ok {
				return paletteLabel(p)
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if p, ok := args.Entry.(PaletteEntry); ok && onSelected != nil {
				onSelected(p)
			}
		}),
	)
	list.GetWidget().MinHeight = 260
	parent.AddChild(list)
}
