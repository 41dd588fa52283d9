// Package script compiles YAML edit scripts into sequences of tree edits and
// runs them.
package script

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/spicery/htmldom/pkg/dom"
)

// Script is a compiled ScriptConfig.
type Script struct {
	Name  string
	Steps []Step
}

// NewScript compiles every step up front, reporting the first invalid one.
func NewScript(config *ScriptConfig) (*Script, error) {
	script := &Script{Name: config.Name}
	for i, stepConfig := range config.Steps {
		step, err := stepConfig.ToStep()
		if err != nil {
			return nil, fmt.Errorf("error in step %d of script %q: %w", i+1, config.Name, err)
		}
		script.Steps = append(script.Steps, step)
	}
	return script, nil
}

// StepHook is called after each step is applied.
type StepHook func(index int, step Step, tree *dom.Tree) error

type Runner struct {
	script *Script
	logger zerolog.Logger
	after  StepHook
}

func NewRunner(script *Script, logger zerolog.Logger) *Runner {
	return &Runner{script: script, logger: logger}
}

// AfterEach registers a hook run after every step, e.g. to record a revision.
func (r *Runner) AfterEach(hook StepHook) {
	r.after = hook
}

// Run applies the steps in order to tree, stopping at the first failure.
func (r *Runner) Run(tree *dom.Tree) error {
	for i, step := range r.script.Steps {
		r.logger.Debug().
			Str("script", r.script.Name).
			Int("step", i+1).
			Str("edit", step.String()).
			Msg("applying step")
		if err := step.Apply(tree); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step, err)
		}
		if r.after != nil {
			if err := r.after(i, step, tree); err != nil {
				return fmt.Errorf("after step %d (%s): %w", i+1, step, err)
			}
		}
	}
	return nil
}
