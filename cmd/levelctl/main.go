package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/milk9111/leveleditor/config"
	"github.com/milk9111/leveleditor/logger"
	"github.com/milk9111/leveleditor/storage"
)

const desc = `Inspects and converts level files and the editor's saved level list.

Level files are the JSON documents the editor imports and exports. The saved
list is what the editor auto-saves to its store (a directory of JSON files or
a sqlite database, see storage.driver in the editor config).`

var cli struct {
	Config string `help:"editor config file; embedded defaults when empty" type:"path"`

	Validate validateCmd `cmd:"" help:"check a level file and print a summary"`
	New      newCmd      `cmd:"" help:"write a new default level file"`
	Export   exportCmd   `cmd:"" help:"print a saved level as JSON"`
	Import   importCmd   `cmd:"" help:"append a level file to the saved list"`
	List     listCmd     `cmd:"" help:"list saved levels"`
	Raster   rasterCmd   `cmd:"" help:"print the cells a line or rectangle covers"`
}

func main() {
	logger.Init()

	ctx := kong.Parse(
		&cli,
		kong.Name("levelctl"),
		kong.Description(desc),
		kong.UsageOnError(),
	)

	cfg := config.Default()
	if cli.Config != "" {
		var err error
		cfg, err = config.Load(cli.Config)
		ctx.FatalIfErrorf(err)
	}

	err := ctx.Run(&runContext{
		out:       os.Stdout,
		log:       logger.Log,
		cfg:       cfg,
		openStore: storage.Open,
	})
	ctx.FatalIfErrorf(err)
}
