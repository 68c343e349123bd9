// Package main provides a one-shot normalization tool: labels come in as
// arguments or stdin lines, corrected labels go to stdout one per line.
package main

import (
	"flag"
	"fmt"
	"os"

	"relabel/internal/input"
	"relabel/internal/normalizer"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: normalize [label ...]")
		fmt.Fprintln(os.Stderr, "Without arguments, labels are read from stdin, one per line.")
		flag.PrintDefaults()
	}
	flag.Parse()

	labels := flag.Args()

	if len(labels) == 0 {
		stdinLabels, err := input.ReadLabels(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}

		labels = stdinLabels
	}

	pipeline := normalizer.NewDefaultPipeline()

	for _, label := range labels {
		fmt.Println(pipeline.Normalize(label))
	}
}
