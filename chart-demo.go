//go:build ignore
// +build ignore

package main

import (
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vdobler/plotlayout"
	"github.com/vdobler/plotlayout/data"
	"github.com/vdobler/plotlayout/geom"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

func main() {
	width := flag.Float64("width", 800, "chart width in pixels")
	height := flag.Float64("height", 600, "chart height in pixels")
	out := flag.String("out", "testdata/chart.png", "output file, .png or .svg")
	verbose := flag.Bool("v", false, "log the layout passes")
	flag.Parse()

	cfg := plotlayout.DefaultRenderConfig()
	if *verbose {
		cfg.Debug = true
		plotlayout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	in := "testdata/subplots.json"
	if flag.NArg() > 0 {
		in = flag.Arg(0)
	}
	src, err := os.ReadFile(in)
	if err != nil {
		panic(err)
	}
	var spec data.Map
	if err = json.Unmarshal(src, &spec); err != nil {
		panic(err)
	}

	chart, err := plotlayout.NewChart(spec, cfg)
	if err != nil {
		panic(err)
	}
	fr, err := chart.Draw(*width, *height)
	if err != nil {
		panic(err)
	}

	w, h := vg.Length(*width), vg.Length(*height)
	var c io.WriterTo
	var dc draw.Canvas
	if filepath.Ext(*out) == ".svg" {
		svg := vgsvg.New(w, h)
		c, dc = svg, draw.New(svg)
	} else {
		img := vgimg.New(w, h)
		c, dc = vgimg.PngCanvas{Canvas: img}, draw.New(img)
	}
	if err := geom.Draw(dc, fr, geom.DefaultStyle()); err != nil {
		panic(err)
	}

	f, err := os.Create(*out)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if _, err = c.WriteTo(f); err != nil {
		panic(err)
	}
	if err = f.Close(); err != nil {
		panic(err)
	}
}
