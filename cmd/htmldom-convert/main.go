package main

import (
	"fmt"
	"os"

	pflag "github.com/spf13/pflag"

	"github.com/spicery/htmldom/pkg/dom"
	"github.com/spicery/htmldom/pkg/linesource"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const DEFAULT_FORMAT = "ASCIITREE"

func main() {
	var format = pflag.StringP("format", "f", DEFAULT_FORMAT, "Output format (HTML, JSON, YAML, ASCIITREE, DOT, MERMAID)")
	var fromJSON = pflag.Bool("json", false, "Input is a JSON tree rather than one unit per line")
	var indent = pflag.Int("indent", 2, "Indentation level for display purposes")
	var trim = pflag.Int("trim", 0, "Trim text for display purposes")
	var kinds = pflag.Bool("kinds", false, "Label each node with its kind")
	var version = pflag.Bool("version", false, "Print version and exit")
	var help = pflag.BoolP("help", "h", false, "Print help message and exit")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nConverts a document to various output formats.\n")
		fmt.Fprintf(os.Stderr, "Reads from stdin and writes the converted tree to stdout.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *version {
		fmt.Printf("htmldom-convert version %s\n", Version)
		os.Exit(0)
	}
	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	printFunc, err := dom.PickPrintFunc(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var tree *dom.Tree
	if *fromJSON {
		tree, err = dom.ReadTreeJSON(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading JSON input: %v\n", err)
			os.Exit(1)
		}
	} else {
		lines, err := linesource.ReadLines(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			os.Exit(1)
		}
		tree, err = dom.Build(lines)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building document: %v\n", err)
			os.Exit(1)
		}
	}

	err = printFunc(tree, os.Stdout, &dom.PrintOptions{
		Format:    *format,
		Indent:    *indent,
		TrimText:  *trim,
		ShowKinds: *kinds,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}
