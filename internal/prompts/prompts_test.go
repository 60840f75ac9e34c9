package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/jeff/internal/errors"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{StoryMap, "# Story Mapping Prompt"},
		{Opportunity, "# Opportunity Solution Tree Prompt"},
		{Hypothesis, "# Hypothesis Prompt"},
		{HypothesisValidate, "Help plan validation for this hypothesis."},
		{Issues, "# Issue Generation Prompt"},
		{BDD, "# Behavior-Driven Tasks Prompt"},
		{ResearchInterview, "# Interview Notes Prompt"},
		{ResearchInsight, "# Insight Extraction Prompt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := Get(tt.name)
			require.NoError(t, err)
			assert.Contains(t, text, tt.want)
			assert.NotRegexp(t, `\n$`, text)
		})
	}
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("roadmap")

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeTemplateNotFound))
	assert.Contains(t, err.Error(), "roadmap")
}

func TestProjectPromptsExist(t *testing.T) {
	for _, name := range ProjectPrompts {
		_, err := Get(name)
		assert.NoError(t, err, name)
		assert.Equal(t, name+".md", FileName(name))
	}
}
