package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScriptConfig represents the top-level structure of an edit script.
type ScriptConfig struct {
	Name        string       `yaml:"name,omitempty"`
	Description string       `yaml:"description,omitempty"`
	Steps       []StepConfig `yaml:"steps"`
}

// StepConfig holds exactly one edit. It is used for YAML unmarshaling and
// then converted to a concrete Step.
type StepConfig struct {
	Name       string            `yaml:"name,omitempty"`
	ReplaceTag *ReplaceTagConfig `yaml:"replaceTag,omitempty"`
	BoldRow    *int              `yaml:"boldRow,omitempty"`
	RemoveTag  *string           `yaml:"removeTag,omitempty"`
	AddTag     *AddTagConfig     `yaml:"addTag,omitempty"`
}

type ReplaceTagConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type AddTagConfig struct {
	Word string `yaml:"word"`
	Tag  string `yaml:"tag"`
}

func (sc StepConfig) Validate() error {
	// Edits are mutually exclusive; only one should be set.
	count := 0
	if sc.ReplaceTag != nil {
		if sc.ReplaceTag.From == "" || sc.ReplaceTag.To == "" {
			return fmt.Errorf("invalid replaceTag: both 'from' and 'to' must be set")
		}
		count++
	}
	if sc.BoldRow != nil {
		if *sc.BoldRow < 1 {
			return fmt.Errorf("invalid boldRow: rows are numbered from 1, got %d", *sc.BoldRow)
		}
		count++
	}
	if sc.RemoveTag != nil {
		count++
	}
	if sc.AddTag != nil {
		if sc.AddTag.Word == "" || sc.AddTag.Tag == "" {
			return fmt.Errorf("invalid addTag: both 'word' and 'tag' must be set")
		}
		count++
	}
	if count == 0 {
		return fmt.Errorf("no edit specified in step %q", sc.Name)
	}
	if count > 1 {
		return fmt.Errorf("multiple edits specified in step %q; only one allowed", sc.Name)
	}
	return nil
}

// ToStep converts a StepConfig to a concrete Step implementation.
func (sc StepConfig) ToStep() (Step, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	switch {
	case sc.ReplaceTag != nil:
		return &ReplaceTagStep{From: sc.ReplaceTag.From, To: sc.ReplaceTag.To}, nil
	case sc.BoldRow != nil:
		return &BoldRowStep{Row: *sc.BoldRow}, nil
	case sc.RemoveTag != nil:
		step, err := NewRemoveTagStep(*sc.RemoveTag)
		if err != nil {
			return nil, err
		}
		return step, nil
	default:
		return &AddTagStep{Word: sc.AddTag.Word, Tag: sc.AddTag.Tag}, nil
	}
}

// LoadScriptConfig loads an edit script from a YAML file.
func LoadScriptConfig(filename string) (*ScriptConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return LoadScriptConfigFromString(string(data))
}

// LoadScriptConfigFromString loads an edit script from a YAML string.
func LoadScriptConfigFromString(yamlContent string) (*ScriptConfig, error) {
	var config ScriptConfig
	if err := yaml.Unmarshal([]byte(yamlContent), &config); err != nil {
		return nil, err
	}
	return &config, nil
}
