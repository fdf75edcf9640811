package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	commands := map[string]command{
		"render":     renderCmd(),
		"downsample": downsampleCmd(),
		"summary":    summaryCmd(),
	}

	flag.Usage = func() {
		fmt.Println("Usage: fundchart <command> [options]")
		for name, cmd := range commands {
			fmt.Printf("\n%s command:\n", name)
			cmd.fs.PrintDefaults()
		}
		fmt.Printf("%s\n", examples)
	}

	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	if cmd, ok := commands[args[0]]; !ok {
		log.Fatalf("Unknown command: %s", args[0])
	} else if err := cmd.fn(args[1:]); err != nil {
		log.Fatal(err)
	}
}

const examples = `
examples:
  curl -s https://api.example.com/backtests/42 | fundchart render -output chart.png
  fundchart render -input dataset.json -format svg -output chart.svg
  fundchart downsample -input dataset.json -target 200 > reduced.json
  fundchart summary -input dataset.json
`

type command struct {
	fs *flag.FlagSet
	fn func(args []string) error
}
