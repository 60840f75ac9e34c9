package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/jeff/internal/errors"
	"github.com/felixgeelhaar/jeff/internal/prompts"
)

func TestIssues_Overview(t *testing.T) {
	jeffDir := newTestProject(t)
	writeArtifact(t, jeffDir, "STORY_MAP.md", storyMapFixture)
	writeArtifact(t, jeffDir, "OPPORTUNITIES.md", opportunitiesFixture)

	out, err := executeCommand(t, "issues")

	require.NoError(t, err)
	assert.Contains(t, out, mustPrompt(t, prompts.Issues))
	assert.Contains(t, out, "## Available Artifacts\n\n")
	assert.Contains(t, out, "- STORY_MAP.md: 2 skeleton stories, 1 release 1 stories\n")
	assert.Contains(t, out, "- OPPORTUNITIES.md: 1 solutions\n")
	assert.Contains(t, out, "Use 'jeff issues --dry-run' to preview generated issues.")
}

func TestIssues_OverviewMissingArtifacts(t *testing.T) {
	jeffDir := newTestProject(t)
	require.NoError(t, os.Remove(filepath.Join(jeffDir, "STORY_MAP.md")))
	require.NoError(t, os.Remove(filepath.Join(jeffDir, "OPPORTUNITIES.md")))

	out, err := executeCommand(t, "issues")

	require.NoError(t, err)
	assert.Contains(t, out, "- STORY_MAP.md: not found\n")
	assert.Contains(t, out, "- OPPORTUNITIES.md: not found\n")
}

func TestIssues_DryRun(t *testing.T) {
	jeffDir := newTestProject(t)
	writeArtifact(t, jeffDir, "STORY_MAP.md", storyMapFixture)
	writeArtifact(t, jeffDir, "OPPORTUNITIES.md", opportunitiesFixture)
	creator := &fakeCreator{}
	useCreator(t, creator)

	out, err := executeCommand(t, "issues", "--dry-run")

	require.NoError(t, err)
	assert.Contains(t, out, "Found 4 potential issues:\n\n")
	assert.Contains(t, out, issueRule+"\nIssue 1: List products\nSource: story_map - Browse: List products\nLabels: jeff, mvp\n"+issueRule)
	assert.Contains(t, out, "Issue 3: Search\n")
	assert.Contains(t, out, "Labels: jeff, release-1\n")
	assert.Contains(t, out, "Issue 4: One-click buy\n")
	assert.Contains(t, out, "Labels: jeff, opportunity\n")
	assert.NotContains(t, out, "Recommendations", "future stories are not filed")
	assert.NotContains(t, out, "Creating issue...")
	assert.Empty(t, creator.created)
}

func TestIssues_ConfiguredLabelsAndPrefix(t *testing.T) {
	jeffDir := newTestProject(t)
	writeArtifact(t, jeffDir, "STORY_MAP.md", storyMapFixture)

	writeArtifact(t, jeffDir, "config.yaml", "project:\n  name: shop\ngithub:\n  labels: [discovery]\n  title_prefix: \"[Shop] \"\n")

	out, err := executeCommand(t, "issues", "--dry-run")

	require.NoError(t, err)
	assert.Contains(t, out, "Issue 1: [Shop] List products\n")
	assert.Contains(t, out, "Labels: discovery, mvp\n")
}

func TestIssues_NothingToGenerate(t *testing.T) {
	newTestProject(t)

	out, err := executeCommand(t, "issues", "--dry-run")

	require.NoError(t, err)
	assert.Equal(t, "No issues to generate. Add content to STORY_MAP.md or OPPORTUNITIES.md first.\n", out)
}

func TestIssues_Create(t *testing.T) {
	jeffDir := newTestProject(t)
	writeArtifact(t, jeffDir, "STORY_MAP.md", storyMapFixture)
	creator := &fakeCreator{failures: map[string]error{
		"Pay by card": errors.NewIssueCreateError("could not add label: 'mvp' not found", fmt.Errorf("exit status 1")),
	}}
	useCreator(t, creator)

	out, err := executeCommand(t, "issues", "--create")

	require.NoError(t, err, "per-issue failures do not fail the batch")
	require.Len(t, creator.created, 3)
	assert.Equal(t, []string{"jeff", "mvp"}, creator.created[0].Labels)

	assert.Contains(t, out, "Issue 1: List products\n")
	assert.Contains(t, out, "Creating issue...\nCreated: https://github.com/acme/shop/issues/1\n\n")
	assert.Contains(t, out, "Creating issue...\nFailed: could not add label: 'mvp' not found\n\n")
	assert.Contains(t, out, "Created: https://github.com/acme/shop/issues/3\n")
	assert.Contains(t, out, "1 of 3 issues failed")

	// Each draft is printed before its creation attempt.
	first := strings.Index(out, "Issue 2: Pay by card")
	attempt := strings.Index(out, "Failed:")
	assert.Less(t, first, attempt)
}

func TestIssues_CreateLogsEachFailure(t *testing.T) {
	jeffDir := newTestProject(t)
	writeArtifact(t, jeffDir, "STORY_MAP.md", storyMapFixture)
	creator := &fakeCreator{failures: map[string]error{
		"Pay by card": errors.NewIssueCreateError("could not add label: 'mvp' not found", fmt.Errorf("exit status 1")),
	}}
	useCreator(t, creator)

	t.Setenv("JEFF_LOG_LEVEL", "")

	_, stderr, err := executeCommandStreams(t, "--log-format", "json", "issues", "--create")

	require.NoError(t, err)
	var failures []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(stderr), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		if entry["msg"] == "issue creation failed" {
			failures = append(failures, entry)
		}
	}
	require.Len(t, failures, 1)
	assert.Equal(t, "ERROR", failures[0]["level"])
	assert.Equal(t, "Pay by card", failures[0]["title"])
	assert.Equal(t, string(errors.ErrCodeIssueCreateFailed), failures[0]["error_code"])
	assert.Equal(t, "exit status 1", failures[0]["cause"])
}

func TestIssues_CreatePassesConfiguredRepo(t *testing.T) {
	jeffDir := newTestProject(t)
	writeArtifact(t, jeffDir, "STORY_MAP.md", storyMapFixture)

	writeArtifact(t, jeffDir, "config.yaml", "project:\n  name: shop\ngithub:\n  repo: acme/shop\n")

	creator := &fakeCreator{}
	useCreator(t, creator)

	_, err := executeCommand(t, "issues", "--create")

	require.NoError(t, err)
	assert.Equal(t, "acme/shop", creator.repo)
}

func TestIssues_GHMissing(t *testing.T) {
	jeffDir := newTestProject(t)
	writeArtifact(t, jeffDir, "STORY_MAP.md", storyMapFixture)
	creator := &fakeCreator{failures: map[string]error{
		"List products": errors.NewIssueToolNotFoundError(fmt.Errorf("executable file not found")),
	}}
	useCreator(t, creator)

	out, err := executeCommand(t, "issues", "--create")

	require.NoError(t, err)
	assert.Contains(t, out, "Failed: gh CLI not found. Install from https://cli.github.com/\n")
}
