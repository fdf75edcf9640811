package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	fundchart "github.com/fundlens/fundchart/lib"
)

const summaryUsage = `Usage: fundchart summary [options]

Prints value statistics (min, max, mean, quantiles) per series of a
dataset payload.

Options:
  -input     Input dataset file [default: stdin]
  -output    Output file [default: stdout]
  -max-size  Maximum input size (e.g. 10MB), -1 for no limit [default: -1]

Examples:
  fundchart summary -input dataset.json
`

func summaryCmd() command {
	fs := flag.NewFlagSet("fundchart summary", flag.ExitOnError)
	input := fs.String("input", "stdin", "Input dataset file")
	output := fs.String("output", "stdout", "Output file")
	maxSize := int64(-1)
	fs.Var(&maxSizeFlag{n: &maxSize}, "max-size", "Maximum input size, -1 for no limit")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n", summaryUsage)
	}

	return command{fs, func(args []string) error {
		if err := fs.Parse(args); err != nil {
			return err
		}
		return summary(*input, *output, maxSize)
	}}
}

func summary(input, output string, maxSize int64) error {
	payload, err := readPayload(input, maxSize)
	if err != nil {
		return err
	}

	out, err := file(output, true)
	if err != nil {
		return err
	}
	defer out.Close()

	tw := tabwriter.NewWriter(out, 8, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "Series\tCount\tMin\tMax\tMean\tP25\tP50\tP75\tP95")
	for _, s := range fundchart.Summaries(payload) {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			s.Label, s.Count, s.Min, s.Max, s.Mean, s.P25, s.P50, s.P75, s.P95)
	}
	return tw.Flush()
}
