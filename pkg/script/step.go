package script

import (
	"fmt"

	"github.com/spicery/htmldom/pkg/dom"
)

// Step is one compiled edit.
type Step interface {
	Apply(tree *dom.Tree) error
	String() string
}

type ReplaceTagStep struct {
	From string
	To   string
}

func (s *ReplaceTagStep) Apply(tree *dom.Tree) error {
	tree.ReplaceTag(s.From, s.To)
	return nil
}

func (s *ReplaceTagStep) String() string {
	return fmt.Sprintf("replaceTag %s -> %s", s.From, s.To)
}

type BoldRowStep struct {
	Row int
}

func (s *BoldRowStep) Apply(tree *dom.Tree) error {
	tree.BoldRow(s.Row)
	return nil
}

func (s *BoldRowStep) String() string {
	return fmt.Sprintf("boldRow %d", s.Row)
}

type RemoveTagStep struct {
	Tag string
}

// NewRemoveTagStep checks the tag against a scratch tree so that a bad script
// is rejected when it is compiled rather than half-way through a run.
func NewRemoveTagStep(tag string) (*RemoveTagStep, error) {
	if err := (&dom.Tree{}).RemoveTag(tag); err != nil {
		return nil, fmt.Errorf("invalid removeTag: %w", err)
	}
	return &RemoveTagStep{Tag: tag}, nil
}

func (s *RemoveTagStep) Apply(tree *dom.Tree) error {
	return tree.RemoveTag(s.Tag)
}

func (s *RemoveTagStep) String() string {
	return fmt.Sprintf("removeTag %s", s.Tag)
}

type AddTagStep struct {
	Word string
	Tag  string
}

func (s *AddTagStep) Apply(tree *dom.Tree) error {
	tree.AddTag(s.Word, s.Tag)
	return nil
}

func (s *AddTagStep) String() string {
	return fmt.Sprintf("addTag %s <%s>", s.Word, s.Tag)
}
