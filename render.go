package main

import (
	"flag"
	"fmt"
	"os"

	fundchart "github.com/fundlens/fundchart/lib"
	"github.com/fundlens/fundchart/lib/raster"
)

const renderUsage = `Usage: fundchart render [options]

Renders a dataset payload to a PNG or SVG image.

Arguments:
  -input  A JSON dataset payload with primary/benchmark/instrument
          series and trade markers [default: stdin]

Options:
  -output     Output file [default: stdout]
  -format     Image format, png or svg [default: png]
  -width      Surface width in pixels [default: 900]
  -height     Surface height in pixels [default: 500]
  -threshold  Primary series length above which downsampling kicks in,
              0 to disable [default: 200]
  -target     Point budget downsampled series are reduced to [default: 200]
  -max-size   Maximum input size (e.g. 10MB), -1 for no limit [default: -1]

Examples:
  fundchart render -input dataset.json -output chart.png
  cat dataset.json | fundchart render -format svg > chart.svg
`

func renderCmd() command {
	fs := flag.NewFlagSet("fundchart render", flag.ExitOnError)
	opts := &renderOpts{maxSize: -1}
	fs.StringVar(&opts.input, "input", "stdin", "Input dataset file")
	fs.StringVar(&opts.output, "output", "stdout", "Output file")
	fs.StringVar(&opts.format, "format", "png", "Image format [png, svg]")
	fs.IntVar(&opts.width, "width", 900, "Surface width in pixels")
	fs.IntVar(&opts.height, "height", 500, "Surface height in pixels")
	fs.IntVar(&opts.threshold, "threshold", fundchart.DefaultDownsampleThreshold, "Downsample threshold, 0 to disable")
	fs.IntVar(&opts.target, "target", fundchart.DefaultDownsampleTarget, "Downsample point budget")
	fs.Var(&maxSizeFlag{n: &opts.maxSize}, "max-size", "Maximum input size, -1 for no limit")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n", renderUsage)
	}

	return command{fs, func(args []string) error {
		if err := fs.Parse(args); err != nil {
			return err
		}
		return render(opts)
	}}
}

type renderOpts struct {
	input     string
	output    string
	format    string
	width     int
	height    int
	threshold int
	target    int
	maxSize   int64
}

func render(opts *renderOpts) error {
	payload, err := readPayload(opts.input, opts.maxSize)
	if err != nil {
		return err
	}

	var canvas *raster.Canvas
	switch opts.format {
	case "png":
		canvas, err = raster.NewPNG(opts.width, opts.height)
	case "svg":
		canvas, err = raster.NewSVG(opts.width, opts.height)
	default:
		return fmt.Errorf("unsupported format %q", opts.format)
	}
	if err != nil {
		return err
	}

	chart := fundchart.New(
		fundchart.DownsampleThreshold(opts.threshold),
		fundchart.DownsampleTarget(opts.target),
	)
	chart.SetSize(float64(opts.width), float64(opts.height))

	if err := chart.Load(payload.Primary, payload.Benchmark, payload.Instruments, payload.Markers); err != nil {
		return err
	}
	chart.Render(canvas)

	out, err := file(opts.output, true)
	if err != nil {
		return err
	}
	defer out.Close()

	return canvas.Save(out)
}
