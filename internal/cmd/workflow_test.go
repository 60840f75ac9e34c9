package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/jeff/internal/errors"
	"github.com/felixgeelhaar/jeff/internal/prompts"
)

const hypothesesFixture = `# Hypotheses

### H1: Teams will pay for shared boards
**Status:** Validating

We believe that teams want one shared board.

### H2: Export drives retention
No status yet.
`

func mustPrompt(t *testing.T, name string) string {
	t.Helper()
	p, err := prompts.Get(name)
	require.NoError(t, err)
	return p
}

func TestWorkflowCommands_OutsideProject(t *testing.T) {
	noPrompts(t)
	chdir(t, t.TempDir())

	for _, args := range [][]string{
		{"map"},
		{"opportunity"},
		{"hypothesis"},
		{"research", "interview"},
		{"issues"},
		{"bdd"},
	} {
		t.Run(args[0], func(t *testing.T) {
			_, err := executeCommand(t, args...)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.ErrCodeProjectNotFound))
		})
	}
}

func TestMap(t *testing.T) {
	jeffDir := newTestProject(t)
	writeArtifact(t, jeffDir, "STORY_MAP.md", storyMapFixture)

	out, err := executeCommand(t, "map")

	require.NoError(t, err)
	assert.Contains(t, out, mustPrompt(t, prompts.StoryMap))
	assert.Contains(t, out, "\n---\n\n## Current Story Map\n\n# Story Map: Shop")
}

func TestMap_FromSubdirectory(t *testing.T) {
	jeffDir := newTestProject(t)
	sub := filepath.Join(filepath.Dir(jeffDir), "docs", "notes")
	require.NoError(t, mkdir(sub))
	chdir(t, sub)

	_, err := executeCommand(t, "map", "--show")

	assert.NoError(t, err)
}

func TestMap_Show(t *testing.T) {
	jeffDir := newTestProject(t)
	writeArtifact(t, jeffDir, "STORY_MAP.md", storyMapFixture)

	out, err := executeCommand(t, "map", "--show")

	require.NoError(t, err)
	assert.Equal(t, storyMapFixture+"\n", out)
}

func TestMap_ShowMissing(t *testing.T) {
	jeffDir := newTestProject(t)
	require.NoError(t, os.Remove(filepath.Join(jeffDir, "STORY_MAP.md")))

	_, err := executeCommand(t, "map", "--show")

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeArtifactNotFound))
	assert.Contains(t, errors.Message(err), "STORY_MAP.md not found")
}

func TestMap_PromptOnlyWhenArtifactMissing(t *testing.T) {
	jeffDir := newTestProject(t)
	require.NoError(t, os.Remove(filepath.Join(jeffDir, "STORY_MAP.md")))

	out, err := executeCommand(t, "map")

	require.NoError(t, err)
	assert.Equal(t, mustPrompt(t, prompts.StoryMap)+"\n", out)
}

func TestOpportunity(t *testing.T) {
	jeffDir := newTestProject(t)
	writeArtifact(t, jeffDir, "OPPORTUNITIES.md", opportunitiesFixture)

	out, err := executeCommand(t, "opportunity")
	require.NoError(t, err)
	assert.Contains(t, out, mustPrompt(t, prompts.Opportunity))
	assert.Contains(t, out, "## Current Opportunity Solution Tree")

	out, err = executeCommand(t, "opportunity", "--show")
	require.NoError(t, err)
	assert.Equal(t, opportunitiesFixture+"\n", out)
}

func TestHypothesis_List(t *testing.T) {
	jeffDir := newTestProject(t)
	writeArtifact(t, jeffDir, "HYPOTHESES.md", hypothesesFixture)

	out, err := executeCommand(t, "hypothesis", "--list")

	require.NoError(t, err)
	assert.Equal(t, "Current Hypotheses:\n\n"+
		"  H1: Teams will pay for shared boards\n      Status: Validating\n\n"+
		"  H2: Export drives retention\n      Status: Unknown\n\n", out)
}

func TestHypothesis_ListJSON(t *testing.T) {
	jeffDir := newTestProject(t)
	writeArtifact(t, jeffDir, "HYPOTHESES.md", hypothesesFixture)

	out, err := executeCommand(t, "hypothesis", "--list", "--format", "json")
	require.NoError(t, err)

	var listed []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, map[string]string{"id": "H1", "name": "Teams will pay for shared boards", "status": "Validating"}, listed[0])
}

func TestHypothesis_ListEmpty(t *testing.T) {
	jeffDir := newTestProject(t)
	writeArtifact(t, jeffDir, "HYPOTHESES.md", "# Hypotheses\n")

	out, err := executeCommand(t, "hypothesis", "--list")
	require.NoError(t, err)
	assert.Equal(t, "No hypotheses found.\n", out)

	out, err = executeCommand(t, "hypothesis", "--list", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestHypothesis_ListMissingFile(t *testing.T) {
	jeffDir := newTestProject(t)
	require.NoError(t, os.Remove(filepath.Join(jeffDir, "HYPOTHESES.md")))

	_, err := executeCommand(t, "hypothesis", "--list")

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeArtifactNotFound))
}

func TestHypothesis_Validate(t *testing.T) {
	jeffDir := newTestProject(t)
	writeArtifact(t, jeffDir, "HYPOTHESES.md", hypothesesFixture)

	out, err := executeCommand(t, "hypothesis", "--validate", "h1")

	require.NoError(t, err)
	assert.Contains(t, out, "# Validation Planning: H1 - Teams will pay for shared boards\n\n## Current Hypothesis\n\n### H1: Teams will pay for shared boards\n**Status:** Validating")
	assert.Contains(t, out, "We believe that teams want one shared board.")
	assert.NotContains(t, out, "Export drives retention")
	assert.Contains(t, out, "## Validation Prompt\n\n"+mustPrompt(t, prompts.HypothesisValidate))
}

func TestHypothesis_ValidateUnknown(t *testing.T) {
	jeffDir := newTestProject(t)
	writeArtifact(t, jeffDir, "HYPOTHESES.md", hypothesesFixture)

	_, err := executeCommand(t, "hypothesis", "--validate", "H9")

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeHypothesisNotFound))
}

func TestHypothesis_Prompt(t *testing.T) {
	jeffDir := newTestProject(t)
	writeArtifact(t, jeffDir, "HYPOTHESES.md", hypothesesFixture)

	out, err := executeCommand(t, "hypothesis")

	require.NoError(t, err)
	assert.Contains(t, out, mustPrompt(t, prompts.Hypothesis))
	assert.Contains(t, out, "## Current Hypotheses\n\n# Hypotheses")
}

func TestResearch(t *testing.T) {
	newTestProject(t)

	out, err := executeCommand(t, "research", "interview")
	require.NoError(t, err)
	assert.Contains(t, out, mustPrompt(t, prompts.ResearchInterview))
	assert.Contains(t, out, "## Current Interview Notes")

	out, err = executeCommand(t, "research", "insight")
	require.NoError(t, err)
	assert.Contains(t, out, mustPrompt(t, prompts.ResearchInsight))
	assert.Contains(t, out, "## Current Insights")
}

func TestVersion(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "jeff dev\n", out)

	out, err = executeCommand(t, "version", "--json")
	require.NoError(t, err)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "dev", info["version"])
}
