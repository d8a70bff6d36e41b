// Command geodesic is a thin CLI wrapper around the core library: it
// loads an assets document (mesh lookup + BVH tuning), a scene document
// (primitives and instances) and a camera document, builds the
// corresponding Scene, and writes a PNG visualizing the geometric hit
// (surface normal) of the ray through every pixel. It owns no shading,
// light transport or sampling; that is explicitly out of the core's scope.
package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/FreddyWordingham/geodesic/pkg/gplog"
	"github.com/FreddyWordingham/geodesic/pkg/loaders"
	"github.com/FreddyWordingham/geodesic/pkg/renderer"
	"github.com/urfave/cli"
)

var logger = gplog.New("cli")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{Name: "version", Usage: "print the version"}

	app := cli.NewApp()
	app.Name = "geodesic"
	app.Usage = "build a scene and trace its geometric hits"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "v", Usage: "enable verbose logging"},
		cli.BoolFlag{Name: "vv", Usage: "enable debug logging"},
	}
	app.Commands = []cli.Command{
		{
			Name:      "render",
			Usage:     "render a normal-visualization PNG of a scene",
			ArgsUsage: "",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "assets", Usage: "path to assets JSON", Required: true},
				cli.StringFlag{Name: "scene", Usage: "path to scene JSON", Required: true},
				cli.StringFlag{Name: "camera", Usage: "path to camera JSON", Required: true},
				cli.StringFlag{Name: "out", Value: "render.png", Usage: "output PNG path"},
			},
			Action: renderCommand,
		},
	}
	return app
}

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("vv") {
		gplog.SetLevel(gplog.Debug)
	} else if ctx.GlobalBool("v") {
		gplog.SetLevel(gplog.Info)
	}
}

func renderCommand(ctx *cli.Context) error {
	setupLogging(ctx)

	assets, err := loaders.LoadAssets(ctx.String("assets"))
	if err != nil {
		return err
	}

	sc, err := loaders.LoadScene(ctx.String("scene"), assets)
	if err != nil {
		return err
	}

	cam, width, height, err := loaders.LoadCamera(ctx.String("camera"))
	if err != nil {
		return err
	}

	img := renderer.NewImage(cam, width, height).Render(sc)

	out, err := os.Create(ctx.String("out"))
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}

	logger.Noticef("wrote %s (%dx%d, %d objects)", ctx.String("out"), width, height, sc.ObjectCount())
	return nil
}
