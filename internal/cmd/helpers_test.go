package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/jeff/internal/issue"
	"github.com/felixgeelhaar/jeff/internal/project"
	"github.com/felixgeelhaar/jeff/internal/tui"
)

// executeCommand runs jeff with args and returns what it wrote to stdout.
// Flags are reset first because cobra keeps them in package variables.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeCommandStreams(t, args...)
	return out, err
}

// executeCommandStreams is executeCommand that also returns stderr.
func executeCommandStreams(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// noPrompts disables interactive prompts for the test.
func noPrompts(t *testing.T) {
	t.Helper()
	orig := shouldPrompt
	shouldPrompt = func() bool { return false }
	t.Cleanup(func() { shouldPrompt = orig })
}

// withPrompts answers select prompts from answers in order and confirm
// prompts with confirm.
func withPrompts(t *testing.T, confirm bool, answers ...string) {
	t.Helper()
	origShould, origSelect, origConfirm := shouldPrompt, promptSelect, promptConfirm
	shouldPrompt = func() bool { return true }
	promptConfirm = func(string, bool) (bool, error) { return confirm, nil }
	promptSelect = func(_ string, options []tui.Option) (string, error) {
		require.NotEmpty(t, answers, "unexpected select prompt")
		answer := answers[0]
		answers = answers[1:]
		return answer, nil
	}
	t.Cleanup(func() {
		shouldPrompt, promptSelect, promptConfirm = origShould, origSelect, origConfirm
	})
}

// newTestProject scaffolds a project in a temp dir and makes it the
// working directory. It returns the .jeff directory.
func newTestProject(t *testing.T) string {
	t.Helper()
	noPrompts(t)

	root := t.TempDir()
	result, err := project.Scaffold(project.ScaffoldOptions{
		Root: root,
		Name: "shop",
		Now:  time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	chdir(t, root)
	return result.JeffDir
}

func writeArtifact(t *testing.T, jeffDir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(jeffDir, name), []byte(content), 0o644))
}

// fakeCreator records drafts and answers from a script keyed by title.
type fakeCreator struct {
	created  []issue.Issue
	failures map[string]error
	repo     string
}

func (f *fakeCreator) Create(_ context.Context, iss issue.Issue) (string, error) {
	f.created = append(f.created, iss)
	if err := f.failures[iss.Title]; err != nil {
		return "", err
	}
	return fmt.Sprintf("https://github.com/acme/shop/issues/%d", len(f.created)), nil
}

func useCreator(t *testing.T, c *fakeCreator) {
	t.Helper()
	orig := newCreator
	newCreator = func(repo string) issue.Creator {
		c.repo = repo
		return c
	}
	t.Cleanup(func() { newCreator = orig })
}

const storyMapFixture = `# Story Map: Shop

## Backbone

| Activity 1 | Activity 2 |
|------------|------------|
| Browse | Purchase |

## Walking Skeleton

| Browse | Purchase |
|--------|----------|
| List products | Pay by card |

### Release 1

| Browse | Purchase |
|--------|----------|
| Search | _later_ |

### Future

| Browse | Purchase |
|--------|----------|
| Recommendations | |
`

const opportunitiesFixture = `# Opportunity Solution Tree

### Opportunity 1: Checkout is slow
1. **One-click buy**
   Assumptions: returning buyers trust saved cards
   Experiment: fake door on the cart page
2. **[Solution Template]**
`

const tasksFixture = `# Tasks

| ID | Title | Priority | Source | Status |
|----|-------|----------|--------|--------|
| T1 | Product list | MVP | STORY_MAP.md | Pending |
| T2 | Card payments | MVP | STORY_MAP.md | Done |
| T3 | Search | Release 1 | STORY_MAP.md | pending |

### T1: Product list
**Description:**
Show every product with its price.

**Acceptance Criteria:**
- [ ] Products are listed
`

func mkdir(path string) error {
	return os.MkdirAll(path, 0o755)
}
