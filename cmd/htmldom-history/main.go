package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	pflag "github.com/spf13/pflag"

	"github.com/spicery/htmldom/pkg/archive"
	"github.com/spicery/htmldom/pkg/dom"
)

// Version is injected at build time via ldflags.
var Version = "dev"

func main() {
	var archivePath = pflag.StringP("archive", "a", "", "SQLite archive written by htmldom-edit (required)")
	var docID = pflag.UintP("document", "d", 0, "List the revisions of this document")
	var seq = pflag.IntP("seq", "n", -1, "Print this revision of --document (-1 lists them)")
	var format = pflag.StringP("format", "f", dom.DefaultFormat, "Output format for a printed revision")
	var version = pflag.Bool("version", false, "Print version and exit")
	var help = pflag.BoolP("help", "h", false, "Print help message and exit")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s --archive FILE [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nLists archived documents, their revisions, or prints one revision.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *version {
		fmt.Printf("htmldom-history version %s\n", Version)
		os.Exit(0)
	}
	if *help {
		pflag.Usage()
		os.Exit(0)
	}
	if *archivePath == "" {
		fmt.Fprintf(os.Stderr, "Error: --archive is required\n\n")
		pflag.Usage()
		os.Exit(1)
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).Level(zerolog.WarnLevel)
	a, err := archive.Open(*archivePath, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening archive: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	ok, err := a.CheckMigration()
	if err != nil || !ok {
		fmt.Fprintf(os.Stderr, "Error: %s is not an up-to-date archive\n", *archivePath)
		os.Exit(1)
	}

	switch {
	case *docID == 0:
		docs, err := a.Documents()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, doc := range docs {
			fmt.Printf("%d\t%s\t%s\n", doc.ID, doc.CreatedAt.Format("2006-01-02 15:04:05"), doc.Name)
		}
	case *seq < 0:
		revs, err := a.Revisions(*docID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, rev := range revs {
			fmt.Printf("%d\t%s\n", rev.Seq, rev.Step)
		}
	default:
		printFunc, err := dom.PickPrintFunc(*format)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		tree, err := a.Restore(*docID, *seq)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := printFunc(tree, os.Stdout, &dom.PrintOptions{Format: *format, Indent: 2}); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	}
}
