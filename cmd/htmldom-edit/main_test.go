package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepsFromFlags(t *testing.T) {
	steps, err := stepsFromFlags([]string{"em:i"}, []string{"ul", "b"}, 2, []string{"cat:b"})
	require.NoError(t, err)
	require.Len(t, steps, 5)
	assert.Equal(t, "em", steps[0].ReplaceTag.From)
	assert.Equal(t, "i", steps[0].ReplaceTag.To)
	assert.Equal(t, "ul", *steps[1].RemoveTag)
	assert.Equal(t, "b", *steps[2].RemoveTag)
	assert.Equal(t, 2, *steps[3].BoldRow)
	assert.Equal(t, "cat", steps[4].AddTag.Word)
	for _, step := range steps {
		assert.NoError(t, step.Validate())
	}
}

func TestStepsFromFlagsRejectsMissingSeparator(t *testing.T) {
	_, err := stepsFromFlags([]string{"em"}, nil, 0, nil)
	assert.Error(t, err)
	_, err = stepsFromFlags(nil, nil, 0, []string{"cat"})
	assert.Error(t, err)
}
