package dom

import (
	"io"

	"gopkg.in/yaml.v3"
)

func PrintTreeYAML(tree *Tree, output io.Writer, options *PrintOptions) error {
	encoder := yaml.NewEncoder(output)
	if options.Indent > 0 {
		encoder.SetIndent(options.Indent)
	}
	records := toRecords(tree.Root, options)
	if records == nil {
		records = []nodeRecord{}
	}
	if err := encoder.Encode(records); err != nil {
		return err
	}
	return encoder.Close()
}
