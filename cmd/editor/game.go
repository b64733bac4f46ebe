package main

import (
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/leveleditor/batch"
	"github.com/milk9111/leveleditor/config"
	"github.com/milk9111/leveleditor/editor"
)

const (
	statusHeight   = 20
	statusDuration = 3 * time.Second
)

var statusBarColor = color.RGBA{16, 16, 20, 230}

type Game struct {
	ed      *editor.Editor
	log     logrus.FieldLogger
	cfgPath string
	watcher *config.Watcher

	ui         *ebitenui.UI
	toolBar    *ToolBar
	levelPanel *LevelPanel
	canvas     *Canvas
	prompt     *Prompt
	preview    *PreviewMode
	clip       osClipboard

	status      string
	statusUntil time.Time
}

func NewGame(ed *editor.Editor, log logrus.FieldLogger, cfgPath string, watcher *config.Watcher) *Game {
	g := &Game{
		ed:      ed,
		log:     log,
		cfgPath: cfgPath,
		watcher: watcher,
		prompt:  NewPrompt(),
	}
	face := loadFontFace(14)
	g.canvas = NewCanvas(ed, face, g.setStatus)
	g.ui, g.toolBar, g.levelPanel = BuildEditorUI(face, uiCallbacks{
		onTool:          ed.SelectTool,
		onPalette:       func(p PaletteEntry) { ed.SelectTile(p.Type) },
		onLevelSelected: func(i int) { ed.SetCurrentLevel(i) },
		onNewLevel:      g.promptNewLevel,
		onDuplicate:     g.duplicateLevel,
		onDeleteLevel:   g.promptDeleteLevel,
		onRename:        g.promptRename,
		onImport:        g.promptImport,
		onExport:        g.promptExport,
	})
	return g
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusUntil = time.Now().Add(statusDuration)
	g.log.Debug(msg)
}

// reloadConfig drains watcher events and applies the newest valid config.
// A broken file keeps the running config.
func (g *Game) reloadConfig() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			changed = true
			continue
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.WithError(err).Warn("config watcher")
			continue
		default:
		}
		break
	}
	if !changed {
		return
	}
	cfg, err := config.Load(g.cfgPath)
	if err != nil {
		g.log.WithError(err).Warn("config reload rejected")
		g.setStatus("Config not reloaded: " + err.Error())
		return
	}
	g.ed.ApplyConfig(cfg)
	g.setStatus("Config reloaded")
}

func (g *Game) Update() error {
	g.reloadConfig()

	if g.prompt.Update() {
		return nil
	}

	g.ui.Update()
	g.toolBar.SetTool(g.ed.State().Tool)
	g.levelPanel.Sync(g.ed.LevelNames(), g.ed.CurrentIndex())

	if g.preview != nil {
		if g.handlePreviewKeys() {
			return nil
		}
		g.preview.Update()
		return nil
	}

	g.handleKeys()
	if g.prompt.IsOpen() {
		return nil
	}

	mx, my := ebiten.CursorPosition()
	g.canvas.Update(mx, my, g.ed.State(), g.ed.Level())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(canvasBackground)
	st := g.ed.State()
	lvl := g.ed.Level()
	cfg := g.ed.Config()

	g.canvas.Draw(screen, st, lvl, cfg.Editor.TileSize)
	if g.preview != nil {
		g.preview.Draw(screen, st)
	}
	g.ui.Draw(screen)
	g.drawStatus(screen, st)
	g.prompt.Draw(screen)
}

func (g *Game) drawStatus(screen *ebiten.Image, st editor.State) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	y := h - statusHeight
	vector.FillRect(screen, leftPanelWidth, float32(y), float32(w-leftPanelWidth), statusHeight, statusBarColor, false)

	parts := []string{
		typeName(st.Tool.String()),
		fmt.Sprintf("(%d, %d)", st.MousePosition.X, st.MousePosition.Y),
		fmt.Sprintf("%.0f%%", st.Zoom*100),
	}
	if st.TileType != "" {
		parts = append(parts, typeName(st.TileType))
	}
	if summary := selectionSummary(batch.AnalyzeSelection(g.ed.SelectedEntities())); summary != "" {
		parts = append(parts, summary)
	}
	if g.preview != nil {
		parts = append(parts, "PREVIEW (P to leave)")
	}
	if time.Now().Before(g.statusUntil) {
		parts = append(parts, g.status)
	} else if t, ok := g.ed.LastSaved(); ok {
		parts = append(parts, "saved "+t.Format("15:04:05"))
	}
	ebitenutil.DebugPrintAt(screen, strings.Join(parts, "  |  "), leftPanelWidth+8, y+2)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (g *Game) promptNewLevel() {
	g.prompt.Open("New level name:", "", func(name string) {
		i := g.ed.CreateNewLevel(strings.TrimSpace(name))
		g.setStatus(fmt.Sprintf("Created %q", g.ed.LevelNames()[i]))
	})
}

func (g *Game) duplicateLevel() {
	if i, ok := g.ed.DuplicateLevel(g.ed.CurrentIndex()); ok {
		g.setStatus(fmt.Sprintf("Duplicated as %q", g.ed.LevelNames()[i]))
	}
}

func (g *Game) promptDeleteLevel() {
	name := g.ed.Level().LevelName
	g.prompt.Open(fmt.Sprintf("Delete %q? (y/n)", name), "", func(answer string) {
		if !confirmed(answer) {
			return
		}
		if g.ed.DeleteLevel(g.ed.CurrentIndex()) {
			g.setStatus(fmt.Sprintf("Deleted %q", name))
		} else {
			g.setStatus("The last level cannot be deleted")
		}
	})
}

func (g *Game) promptRename() {
	g.prompt.Open("Rename level:", g.ed.Level().LevelName, func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			g.setStatus("Level names cannot be empty")
			return
		}
		g.ed.RenameLevel(name)
	})
}

func (g *Game) promptImport() {
	g.prompt.Open("Import level file:", "", func(path string) {
		data, err := os.ReadFile(strings.TrimSpace(path))
		if err != nil {
			g.setStatus("Import failed: " + err.Error())
			return
		}
		i, err := g.ed.Import(string(data))
		if err != nil {
			g.setStatus("Import failed: " + err.Error())
			return
		}
		g.setStatus(fmt.Sprintf("Imported %q", g.ed.LevelNames()[i]))
	})
}

func (g *Game) promptExport() {
	index := g.ed.CurrentIndex()
	g.prompt.Open("Export to:", exportFileName(g.ed.Level().LevelName), func(path string) {
		doc, err := g.ed.Export(index)
		if err == nil {
			err = os.WriteFile(strings.TrimSpace(path), []byte(doc), 0o644)
		}
		if err != nil {
			g.setStatus("Export failed: " + err.Error())
			return
		}
		g.setStatus("Exported to " + path)
	})
}

func confirmed(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// exportFileName turns a level name into a file name, "My Level" becoming
// "my-level.json".
func exportFileName(name string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + 'a' - 'A'
		}
		return '-'
	}, strings.TrimSpace(name))
	slug = strings.Trim(slug, "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	if slug == "" {
		slug = "level"
	}
	return slug + ".json"
}

func selectionSummary(a batch.Analysis) string {
	switch {
	case a.Count == 0:
		return ""
	case a.AllSameType:
		return fmt.Sprintf("%d x %s", a.Count, typeName(a.CommonType))
	default:
		return fmt.Sprintf("%d selected (%s)", a.Count, batch.Mixed)
	}
}
