package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/milk9111/leveleditor/buttons"
	"github.com/milk9111/leveleditor/common"
	"github.com/milk9111/leveleditor/config"
	"github.com/milk9111/leveleditor/levels"
	"github.com/milk9111/leveleditor/linking"
	"github.com/milk9111/leveleditor/storage"
)

type runContext struct {
	out       io.Writer
	log       logrus.FieldLogger
	cfg       config.Config
	openStore func(driver, path string) (storage.Store, error)
}

// StoreFlags selects the saved level store. Empty values fall back to the config.
type StoreFlags struct {
	Driver string `help:"storage driver (file, sqlite); config value when empty"`
	Store  string `help:"storage path; config value when empty" type:"path"`
}

func (f StoreFlags) open(rc *runContext) (storage.Store, error) {
	driver, path := f.Driver, f.Store
	if driver == "" {
		driver = rc.cfg.Storage.Driver
	}
	if path == "" {
		path = rc.cfg.Storage.Path
	}
	rc.log.WithFields(logrus.Fields{"driver": driver, "path": path}).Debug("opening store")
	return rc.openStore(driver, path)
}

func loadList(s storage.Store) ([]*levels.Level, error) {
	data, ok, err := s.Get(storage.KeyLevels)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return levels.DeserializeAll(string(data))
}

func readLevel(path string) (*levels.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lvl, err := levels.Deserialize(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lvl, nil
}

type validateCmd struct {
	File string `arg:"" help:"level file" type:"existingfile"`
}

func (c *validateCmd) Run(rc *runContext) error {
	raw, err := readLevel(c.File)
	if err != nil {
		return err
	}
	lvl := levels.SanitizeImport(raw)

	log := rc.log.WithField("file", c.File)
	if n := len(raw.SpawnPoints) - len(lvl.SpawnPoints); n > 0 {
		log.WithField("dropped", n).Warn("extra player spawns would be dropped on import")
	}
	if n := len(raw.Tiles) - len(lvl.Tiles); n > 0 {
		log.WithField("dropped", n).Warn("overlapping tiles would be dropped on import")
	}
	for number, ids := range buttons.DuplicateButtonNumbers(lvl.Objects) {
		log.WithFields(logrus.Fields{"number": number, "buttons": ids}).Warn("button number used more than once")
	}
	for _, o := range lvl.Objects {
		stored := o.Properties.Strings(levels.PropLinkedFrom)
		derived := linking.LinkedFrom(o, lvl.Objects)
		slices.Sort(stored)
		slices.Sort(derived)
		if !slices.Equal(stored, derived) {
			log.WithField("object", o.ID).Warn("linkedFrom does not match the links pointing at it")
		}
	}

	tw := tabwriter.NewWriter(rc.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "name:\t%s\n", lvl.LevelName)
	fmt.Fprintf(tw, "version:\t%s\n", lvl.Metadata.Version)
	fmt.Fprintf(tw, "size:\t%dx%d\n", lvl.Metadata.Dimensions.Width, lvl.Metadata.Dimensions.Height)
	fmt.Fprintf(tw, "tiles:\t%d\n", len(lvl.Tiles))
	fmt.Fprintf(tw, "objects:\t%d\n", len(lvl.Objects))
	fmt.Fprintf(tw, "spawns:\t%d\n", len(lvl.SpawnPoints))
	return tw.Flush()
}

type newCmd struct {
	Name   string `arg:"" help:"level name"`
	Output string `short:"o" help:"output file; derived from the name when empty" type:"path"`
	Force  bool   `help:"overwrite an existing file"`
}

func (c *newCmd) Run(rc *runContext) error {
	lvl := levels.CreateDefaultLevel(c.Name)
	text, err := levels.Serialize(lvl)
	if err != nil {
		return err
	}

	path := c.Output
	if path == "" {
		path = levels.FileName(lvl)
	}
	if !c.Force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s exists, use --force to overwrite", path)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return err
	}
	rc.log.WithField("file", path).Info("level written")
	fmt.Fprintln(rc.out, path)
	return nil
}

type exportCmd struct {
	StoreFlags `embed:""`

	Index int `short:"n" default:"0" help:"position in the saved list"`
}

func (c *exportCmd) Run(rc *runContext) error {
	s, err := c.open(rc)
	if err != nil {
		return err
	}
	defer s.Close()

	list, err := loadList(s)
	if err != nil {
		return err
	}
	if c.Index < 0 || c.Index >= len(list) {
		return fmt.Errorf("no saved level at index %d (%d saved)", c.Index, len(list))
	}
	text, err := levels.Serialize(list[c.Index])
	if err != nil {
		return err
	}
	fmt.Fprintln(rc.out, text)
	return nil
}

type importCmd struct {
	StoreFlags `embed:""`

	File string `arg:"" help:"level file" type:"existingfile"`
}

func (c *importCmd) Run(rc *runContext) error {
	raw, err := readLevel(c.File)
	if err != nil {
		return err
	}

	s, err := c.open(rc)
	if err != nil {
		return err
	}
	defer s.Close()

	list, err := loadList(s)
	if err != nil {
		return fmt.Errorf("saved levels unreadable, refusing to overwrite: %w", err)
	}
	list = append(list, levels.SanitizeImport(raw))
	text, err := levels.SerializeAll(list)
	if err != nil {
		return err
	}
	if err := s.Set(storage.KeyLevels, []byte(text)); err != nil {
		return err
	}
	fmt.Fprintf(rc.out, "imported %q as level %d\n", raw.LevelName, len(list)-1)
	return nil
}

type listCmd struct {
	StoreFlags `embed:""`
}

func (c *listCmd) Run(rc *runContext) error {
	s, err := c.open(rc)
	if err != nil {
		return err
	}
	defer s.Close()

	list, err := loadList(s)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(rc.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tSIZE\tTILES\tOBJECTS\tSPAWNS")
	for i, l := range list {
		fmt.Fprintf(tw, "%d\t%s\t%dx%d\t%d\t%d\t%d\n", i, l.LevelName,
			l.Metadata.Dimensions.Width, l.Metadata.Dimensions.Height,
			len(l.Tiles), len(l.Objects), len(l.SpawnPoints))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if data, ok, err := s.Get(storage.KeyAutosave); err == nil && ok {
		fmt.Fprintf(rc.out, "last saved %s\n", data)
	}
	return nil
}

type rasterCmd struct {
	Shape  string `arg:"" enum:"line,rect" help:"line or rect"`
	X0     int    `arg:""`
	Y0     int    `arg:""`
	X1     int    `arg:""`
	Y1     int    `arg:""`
	Filled bool   `help:"fill the rectangle"`
}

func (c *rasterCmd) Run(rc *runContext) error {
	start := common.Point{X: c.X0, Y: c.Y0}
	end := common.Point{X: c.X1, Y: c.Y1}

	var cells []common.Point
	switch c.Shape {
	case "line":
		cells = common.LinePositions(start, end)
	case "rect":
		cells = common.RectanglePositions(start, end, c.Filled)
	default:
		return errors.New("shape must be line or rect")
	}
	for _, p := range cells {
		fmt.Fprintf(rc.out, "%d %d\n", p.X, p.Y)
	}
	return nil
}
