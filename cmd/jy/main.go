package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/bodgit/jy"
	"github.com/bodgit/jy/grid"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
)

const defaultDB = "jy.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func load(c *cli.Context) (*jy.Game, error) {
	cfg := jy.DefaultConfig(c.String("data"))
	cfg.Encoding = c.String("encoding")

	return jy.Load(cfg, newLogger(c))
}

func intArgs(c *cli.Context, n int) ([]int, error) {
	if c.NArg() < n {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	args := make([]int, n)
	for i := range args {
		v, err := strconv.Atoi(c.Args().Get(i))
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	return args, nil
}

func info(c *cli.Context) error {
	g, err := load(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 8, 2, ' ', 0)
	for _, a := range g.Assets() {
		fmt.Fprintf(w, "%s\t%s\t%s records\n", a.Name, humanize.Bytes(uint64(a.Size)), humanize.Comma(int64(a.Records)))
	}
	w.Flush()

	fmt.Fprintf(c.App.Writer, "%d people, %d things, %d scenes, %d colours\n", len(g.People), len(g.Things), len(g.Scenes), len(g.Palette))

	if s, ok := g.EntryScene(); ok {
		fmt.Fprintf(c.App.Writer, "Entry scene %d \"%s\" at (%d, %d)\n", jy.EntryScene, s.Name, jy.EntryX, jy.EntryY)
	}

	return nil
}

func people(c *cli.Context) error {
	g, err := load(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	list := g.People
	if c.IsSet("talent") {
		list = g.Talented(c.Int("talent"))
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tALIAS\tLEVEL\tTALENT")
	for _, p := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", p.ID, p.Name, p.Alias, p.Level, p.Talent)
	}

	return w.Flush()
}

func scenes(c *cli.Context) error {
	g, err := load(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tENTRY")
	for i, s := range g.Scenes {
		fmt.Fprintf(w, "%d\t%s\t(%d, %d)\n", i, s.Name, s.EntryX, s.EntryY)
	}

	return w.Flush()
}

func parseLayer(s string) (grid.Layer, error) {
	if l, ok := grid.ParseLayer(s); ok {
		return l, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unknown layer \"%s\"", s)
	}
	return grid.Layer(n), nil
}

func tile(c *cli.Context) error {
	if c.NArg() < 4 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	args, err := intArgs(c, 3)
	if err != nil {
		return cli.Exit(err, 1)
	}

	layer, err := parseLayer(c.Args().Get(3))
	if err != nil {
		return cli.Exit(err, 1)
	}

	g, err := load(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	v, err := g.Layers.Get(args[0], args[1], args[2], layer)
	if err != nil {
		return cli.Exit(err, 1)
	}

	switch layer {
	case grid.LayerEarth, grid.LayerBuilding, grid.LayerAir:
		fmt.Fprintf(c.App.Writer, "%s %d (sprite %d)\n", layer, v, v/2)
	default:
		fmt.Fprintf(c.App.Writer, "%s %d\n", layer, v)
	}

	return nil
}

func event(c *cli.Context) error {
	args, err := intArgs(c, 2)
	if err != nil {
		return cli.Exit(err, 1)
	}

	g, err := load(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	if c.IsSet("update") {
		values := make([]int16, 0, grid.FieldsPerEvent)
		for _, v := range c.IntSlice("update") {
			if v < math.MinInt16 || v > math.MaxInt16 {
				return cli.Exit(fmt.Sprintf("value %d does not fit in 16 bits", v), 1)
			}
			values = append(values, int16(v))
		}
		if err := g.Events.Update(args[0], args[1], values); err != nil {
			return cli.Exit(err, 1)
		}
	}

	for f := grid.Field(0); f < grid.FieldsPerEvent; f++ {
		v, err := g.Events.Get(args[0], args[1], f)
		if err != nil {
			return cli.Exit(err, 1)
		}
		fmt.Fprintf(c.App.Writer, "%d: %d\n", f, v)
	}

	if c.IsSet("save") {
		if err := g.SaveEvents(c.String("save")); err != nil {
			return cli.Exit(err, 1)
		}
	}

	return nil
}

func export(c *cli.Context) error {
	if c.NArg() < 2 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	set, ok := jy.ParseSpriteSet(c.Args().Get(0))
	if !ok {
		return cli.Exit(fmt.Sprintf("unknown sprite set \"%s\"", c.Args().Get(0)), 1)
	}

	format, err := jy.ParseFormat(c.String("format"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	g, err := load(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	if err := g.Export(set, c.Args().Get(1), format); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func catalog(c *cli.Context) error {
	g, err := load(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	db, err := jy.NewCatalog(c.String("db"))
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer db.Close()

	if err := db.Import(g); err != nil {
		return cli.Exit(err, 1)
	}

	if name := c.String("find"); name != "" {
		p, err := db.FindPerson(name)
		if err != nil {
			return cli.Exit(err, 1)
		}
		if p == nil {
			return cli.Exit(errors.New("no match for \""+name+"\""), 1)
		}
		fmt.Fprintf(c.App.Writer, "%d %s (%s) level %d talent %d weapon \"%s\" armor \"%s\"\n", p.ID, p.Name, p.Alias, p.Level, p.Talent, p.Weapon, p.Armor)
	}

	return nil
}

func newApp(cwd string) *cli.App {
	app := cli.NewApp()

	app.Name = "jy"
	app.Usage = "Jin Yong game data utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "data",
			EnvVars: []string{"JY_DATA"},
			Value:   filepath.Join(cwd, "data"),
			Usage:   "path to game data directory",
		},
		&cli.StringFlag{
			Name:    "encoding",
			EnvVars: []string{"JY_ENCODING"},
			Value:   "utf-8",
			Usage:   "text encoding of records (utf-8, gbk, gb18030, big5)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:   "info",
			Usage:  "Summarise the data files",
			Action: info,
		},
		{
			Name:  "people",
			Usage: "List people",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "talent",
					Usage: "only list people with a talent greater than `N`",
				},
			},
			Action: people,
		},
		{
			Name:   "scenes",
			Usage:  "List scenes",
			Action: scenes,
		},
		{
			Name:      "tile",
			Usage:     "Show one cell of a scene layer",
			ArgsUsage: "SCENE X Y LAYER",
			Action:    tile,
		},
		{
			Name:      "event",
			Usage:     "Show, update and save the fields of an event",
			ArgsUsage: "SCENE EVENT",
			Flags: []cli.Flag{
				&cli.IntSliceFlag{
					Name:  "update",
					Usage: "new field values in order, -2 leaves a field unchanged",
				},
				&cli.StringFlag{
					Name:  "save",
					Usage: "write the event table to `FILE`",
				},
			},
			Action: event,
		},
		{
			Name:      "export",
			Usage:     "Export a sprite archive as images",
			ArgsUsage: "SET DIRECTORY",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "format",
					Value: "png",
					Usage: "image format, png or gif",
				},
			},
			Action: export,
		},
		{
			Name:  "catalog",
			Usage: "Import people, scenes and things into a database",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "db",
					EnvVars: []string{"JY_DB"},
					Value:   filepath.Join(cwd, defaultDB),
					Usage:   "path to database",
				},
				&cli.StringFlag{
					Name:  "find",
					Usage: "look up a person by `NAME` or alias",
				},
			},
			Action: catalog,
		},
	}

	return app
}

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	if err := newApp(cwd).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
