package main

import (
	"fmt"
	"io"
	"os"

	pflag "github.com/spf13/pflag"

	"github.com/spicery/htmldom/pkg/dom"
	"github.com/spicery/htmldom/pkg/linesource"
)

// Version is injected at build time via ldflags.
var Version = "dev"

func main() {
	var inputFile = pflag.StringP("input", "i", "", "HTML input file (defaults to stdin)")
	var check = pflag.Bool("check", false, "Also check that the result builds as a single document")
	var version = pflag.Bool("version", false, "Print version and exit")
	var help = pflag.BoolP("help", "h", false, "Print help message and exit")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nConverts ordinary HTML into one tag or line of text per line.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *version {
		fmt.Printf("htmldom-import version %s\n", Version)
		os.Exit(0)
	}
	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	var input io.Reader = os.Stdin
	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		input = file
	}

	lines, err := linesource.FromHTML(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *check {
		if _, err := dom.Build(lines); err != nil {
			fmt.Fprintf(os.Stderr, "Error: converted document does not build: %v\n", err)
			os.Exit(1)
		}
	}
	for _, line := range lines {
		fmt.Println(line)
	}
}
