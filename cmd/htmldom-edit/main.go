package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	pflag "github.com/spf13/pflag"

	"github.com/spicery/htmldom/pkg/archive"
	"github.com/spicery/htmldom/pkg/dom"
	"github.com/spicery/htmldom/pkg/linesource"
	"github.com/spicery/htmldom/pkg/script"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const usage = `htmldom-edit - apply structural edits to a line-oriented HTML document

Reads one tag or line of text per line, applies the edits from --script and
then the edit flags (in the order replace, remove, bold, add), and writes the
result.

Usage:
  htmldom-edit [options] < input.html

Options:
`

func main() {
	var inputFile = pflag.StringP("input", "i", "", "Input file (defaults to stdin)")
	var outputFile = pflag.StringP("output", "o", "", "Output file (defaults to stdout)")
	var fromHTML = pflag.Bool("html", false, "Input is ordinary HTML rather than one unit per line")
	var scriptFile = pflag.StringP("script", "s", "", "YAML edit script")
	var replaceTags = pflag.StringArray("replace-tag", nil, "Rename elements, as OLD:NEW (repeatable)")
	var removeTags = pflag.StringArray("remove-tag", nil, "Unwrap p, em, b, ol or ul elements (repeatable)")
	var boldRow = pflag.Int("bold-row", 0, "Boldface this 1-based row of the first table")
	var addTags = pflag.StringArray("add-tag", nil, "Wrap a word in a tag, as WORD:TAG (repeatable)")
	var format = pflag.StringP("format", "f", dom.DefaultFormat, "Output format (HTML, JSON, YAML, ASCIITREE, DOT, MERMAID)")
	var archivePath = pflag.String("archive", "", "SQLite archive to record the document and each revision in")
	var name = pflag.String("name", "", "Document name for the archive (defaults to the input file name)")
	var verbose = pflag.BoolP("verbose", "v", false, "Log each edit to stderr")
	var version = pflag.Bool("version", false, "Print version and exit")
	var help = pflag.BoolP("help", "h", false, "Print help message and exit")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s", usage)
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}
	if *version {
		fmt.Printf("htmldom-edit version %s\n", Version)
		os.Exit(0)
	}
	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Error: Unexpected positional arguments. Use --input and --output flags instead.\n\n")
		pflag.Usage()
		os.Exit(1)
	}

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).Level(level).With().Timestamp().Logger()

	printFunc, err := dom.PickPrintFunc(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Collect the edits before touching the input so a bad flag fails fast.
	config := &script.ScriptConfig{Name: "command line"}
	if *scriptFile != "" {
		config, err = script.LoadScriptConfig(*scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading script file '%s': %v\n", *scriptFile, err)
			os.Exit(1)
		}
	}
	flagSteps, err := stepsFromFlags(*replaceTags, *removeTags, *boldRow, *addTags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.Steps = append(config.Steps, flagSteps...)
	edits, err := script.NewScript(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
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

	var lines []string
	if *fromHTML {
		lines, err = linesource.FromHTML(input)
	} else {
		lines, err = linesource.ReadLines(input)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	tree, err := dom.Build(lines)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building document: %v\n", err)
		os.Exit(1)
	}
	log.Debug().Int("lines", len(lines)).Int("steps", len(edits.Steps)).Msg("document built")

	runner := script.NewRunner(edits, log)
	if *archivePath != "" {
		a, err := archive.Open(*archivePath, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening archive: %v\n", err)
			os.Exit(1)
		}
		defer a.Close()
		if err := a.Migrate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error migrating archive: %v\n", err)
			os.Exit(1)
		}
		docName := *name
		if docName == "" {
			docName = *inputFile
		}
		if docName == "" {
			docName = "stdin"
		}
		doc, err := a.SaveDocument(docName, lines, tree)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		runner.AfterEach(func(_ int, step script.Step, tree *dom.Tree) error {
			_, err := a.AddRevision(doc.ID, step.String(), tree)
			return err
		})
	}

	if err := runner.Run(tree); err != nil {
		fmt.Fprintf(os.Stderr, "Edit error: %v\n", err)
		os.Exit(1)
	}

	var output io.Writer = os.Stdout
	if *outputFile != "" {
		file, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		output = file
	}
	if err := printFunc(tree, output, &dom.PrintOptions{Format: *format, Indent: 2}); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

// stepsFromFlags turns the edit flags into script steps.
func stepsFromFlags(replaceTags, removeTags []string, boldRow int, addTags []string) ([]script.StepConfig, error) {
	var steps []script.StepConfig
	for _, pair := range replaceTags {
		from, to, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("--replace-tag expects OLD:NEW, got %q", pair)
		}
		steps = append(steps, script.StepConfig{ReplaceTag: &script.ReplaceTagConfig{From: from, To: to}})
	}
	for _, tag := range removeTags {
		tag := tag
		steps = append(steps, script.StepConfig{RemoveTag: &tag})
	}
	if boldRow != 0 {
		steps = append(steps, script.StepConfig{BoldRow: &boldRow})
	}
	for _, pair := range addTags {
		word, tag, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("--add-tag expects WORD:TAG, got %q", pair)
		}
		steps = append(steps, script.StepConfig{AddTag: &script.AddTagConfig{Word: word, Tag: tag}})
	}
	return steps, nil
}
