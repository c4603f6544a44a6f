package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/ushitora-anqou/aqdraw/config"
	"github.com/ushitora-anqou/aqdraw/frame"
	"github.com/ushitora-anqou/aqdraw/util"
)

var logger = util.NewLogger("aqdraw")

func setupLogging(ctx *cli.Context) {
	if ctx.Bool("v") {
		util.SetLevel(util.Info)
	}

	if ctx.Bool("vv") {
		util.SetLevel(util.Debug)
		util.EnableTrace()
	}
}

// loadConfig layers the command line on top of the config file, if any, on
// top of the defaults.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	conf := config.Default()
	if path := ctx.String("config"); path != "" {
		var err error
		conf, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}

	if ctx.IsSet("fps") {
		conf.FPS = ctx.Float64("fps")
	}
	if ctx.IsSet("width") {
		conf.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		conf.Height = ctx.Int("height")
	}
	if ctx.IsSet("title") {
		conf.Title = ctx.String("title")
	}
	if ctx.IsSet("refresh") {
		conf.RefreshRate = ctx.Float64("refresh")
	}
	if ctx.IsSet("refreshes") {
		conf.MaxRefreshes = ctx.Int("refreshes")
	}
	if ctx.IsSet("snapshot") {
		conf.Snapshot = ctx.String("snapshot")
	}
	if ctx.IsSet("canvas") {
		conf.CanvasID = ctx.String("canvas")
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func run(ctx *cli.Context) error {
	setupLogging(ctx)

	conf, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	logger.Infof("rendering at up to %.2f fps on a %dx%d surface", conf.FPS, conf.Width, conf.Height)

	stats, err := runBackend(conf)
	if ctx.Bool("stats") {
		displayStats(stats)
	}
	return err
}

func displayStats(stats frame.Stats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Ticks", "Frames", "Skipped", "Resizes", "Elapsed"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.Ticks),
		fmt.Sprintf("%d", stats.Frames),
		fmt.Sprintf("%d", stats.Skipped),
		fmt.Sprintf("%d", stats.Resizes),
		util.MsToDuration(stats.LastElapsed).String(),
	})
	table.Render()
	logger.Noticef("loop statistics\n%s", buf.String())
}

func main() {
	app := cli.NewApp()
	app.Name = "aqdraw"
	app.Usage = "drive a frame-capped render loop on a self-resizing surface"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable per-tick tracing",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "TOML file with session settings",
		},
		cli.Float64Flag{
			Name:  "fps",
			Value: config.Default().FPS,
			Usage: "upper bound on frames per second",
		},
		cli.IntFlag{
			Name:  "width",
			Value: config.Default().Width,
			Usage: "initial window width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: config.Default().Height,
			Usage: "initial window height",
		},
		cli.StringFlag{
			Name:  "title",
			Value: config.Default().Title,
			Usage: "window title",
		},
		cli.Float64Flag{
			Name:  "refresh",
			Value: config.Default().RefreshRate,
			Usage: "display refresh rate for hosts without vsync",
		},
		cli.IntFlag{
			Name:  "refreshes, n",
			Usage: "stop after this many display refreshes (0 runs until closed)",
		},
		cli.StringFlag{
			Name:  "snapshot, o",
			Usage: "write the last frame of a headless run to this PNG file",
		},
		cli.StringFlag{
			Name:  "canvas",
			Value: config.Default().CanvasID,
			Usage: "canvas element id on the web host",
		},
		cli.BoolFlag{
			Name:  "stats",
			Usage: "print loop statistics on exit",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
