package main

import (
	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/leveleditor/config"
	"github.com/milk9111/leveleditor/editor"
	"github.com/milk9111/leveleditor/levels"
	"github.com/milk9111/leveleditor/logger"
	"github.com/milk9111/leveleditor/storage"
)

var cli struct {
	Config string `help:"editor config file, reloaded when it changes; embedded defaults when empty" type:"path"`
	Level  string `help:"bundled level to open next to the saved ones" placeholder:"NAME"`
	Driver string `help:"storage driver (file, sqlite, memory); overrides the config"`
	Store  string `help:"storage path; overrides the config" type:"path"`
	Debug  bool   `help:"log at debug level"`
}

func main() {
	logger.Init()
	log := logger.Log

	ctx := kong.Parse(&cli,
		kong.Name("editor"),
		kong.Description("Edits platformer levels."),
		kong.UsageOnError(),
	)
	if cli.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg := config.Default()
	if cli.Config != "" {
		var err error
		cfg, err = config.Load(cli.Config)
		ctx.FatalIfErrorf(err)
	}
	if cli.Driver != "" {
		cfg.Storage.Driver = cli.Driver
	}
	if cli.Store != "" {
		cfg.Storage.Path = cli.Store
	}

	store, err := storage.Open(cfg.Storage.Driver, cfg.Storage.Path)
	ctx.FatalIfErrorf(err)

	ed := editor.New(store, editor.WithLogger(log), editor.WithConfig(cfg))
	if cli.Level != "" {
		lvl, err := levels.LoadLevelFromFS(cli.Level)
		ctx.FatalIfErrorf(err)
		ed.SetCurrentLevel(ed.AddLevel(lvl))
	}

	var watcher *config.Watcher
	if cli.Config != "" {
		watcher, err = config.NewWatcher(cli.Config)
		if err != nil {
			log.WithError(err).Warn("config changes will not be picked up")
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowTitle("Level Editor")
	ebiten.SetWindowSize(1280, 800)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(NewGame(ed, log, cli.Config, watcher))
	if err := ed.Close(); err != nil {
		log.WithError(err).Error("final save")
	}
	if err := store.Close(); err != nil {
		log.WithError(err).Warn("close store")
	}
	ctx.FatalIfErrorf(runErr)
}
