package main

import (
	"flag"
	"fmt"
	"os"

	fundchart "github.com/fundlens/fundchart/lib"
)

const downsampleUsage = `Usage: fundchart downsample [options]

Reduces the series of a dataset payload to a target number of points
with the Largest-Triangle-Three-Buckets algorithm and writes the
reduced payload back out as JSON. All series are sampled at the same
index selection so that index alignment between curves survives.

Options:
  -input     Input dataset file [default: stdin]
  -output    Output file [default: stdout]
  -target    Point budget per series [default: 200]
  -max-size  Maximum input size (e.g. 10MB), -1 for no limit [default: -1]

Examples:
  fundchart downsample -input dataset.json -target 500 > reduced.json
`

func downsampleCmd() command {
	fs := flag.NewFlagSet("fundchart downsample", flag.ExitOnError)
	input := fs.String("input", "stdin", "Input dataset file")
	output := fs.String("output", "stdout", "Output file")
	target := fs.Int("target", fundchart.DefaultDownsampleTarget, "Point budget per series")
	maxSize := int64(-1)
	fs.Var(&maxSizeFlag{n: &maxSize}, "max-size", "Maximum input size, -1 for no limit")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n", downsampleUsage)
	}

	return command{fs, func(args []string) error {
		if err := fs.Parse(args); err != nil {
			return err
		}
		return downsample(*input, *output, *target, maxSize)
	}}
}

func downsample(input, output string, target int, maxSize int64) error {
	payload, err := readPayload(input, maxSize)
	if err != nil {
		return err
	}

	ds := fundchart.Downsample(payload.Primary, target)

	reduced := &fundchart.Payload{
		Primary: ds.Points,
		Markers: payload.Markers,
	}

	pick := func(points []fundchart.Point) []fundchart.Point {
		var out []fundchart.Point
		for _, idx := range ds.OriginalIndex {
			if idx >= len(points) {
				break
			}
			out = append(out, points[idx])
		}
		return out
	}

	reduced.Benchmark = pick(payload.Benchmark)
	for _, in := range payload.Instruments {
		reduced.Instruments = append(reduced.Instruments, fundchart.Instrument{
			ID:     in.ID,
			Label:  in.Label,
			Points: pick(in.Points),
		})
	}

	data, err := reduced.MarshalJSON()
	if err != nil {
		return err
	}

	out, err := file(output, true)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = out.Write(data); err != nil {
		return err
	}
	_, err = out.Write([]byte{'\n'})
	return err
}
