package project

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/jeff/internal/errors"
	"github.com/felixgeelhaar/jeff/internal/ux"
)

var created = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func TestScaffold(t *testing.T) {
	root := filepath.Join(t.TempDir(), "boards")
	require.NoError(t, os.Mkdir(root, 0o755))

	result, err := Scaffold(ScaffoldOptions{Root: root, Now: created})
	require.NoError(t, err)

	assert.Equal(t, "boards", result.Name)
	assert.Equal(t, filepath.Join(root, ".jeff"), result.JeffDir)

	paths := ux.NewPathDefaults(result.JeffDir)
	for _, dir := range paths.Subdirectories() {
		assert.DirExists(t, dir)
	}
	for _, file := range []string{
		paths.ConfigFile(),
		paths.StoryMapFile(),
		paths.OpportunitiesFile(),
		paths.HypothesesFile(),
		paths.TasksFile(),
		paths.InterviewsFile(),
		paths.ValidationResultsFile(),
		paths.InsightsFile(),
		filepath.Join(paths.PromptsDir(), "story-map.md"),
		filepath.Join(paths.PromptsDir(), "bdd.md"),
	} {
		assert.FileExists(t, file)
		assert.Contains(t, result.Files, file)
	}

	cfg, err := LoadConfig(result.JeffDir)
	require.NoError(t, err)
	assert.Equal(t, "boards", cfg.Project.Name)
	assert.Equal(t, "2026-05-01", cfg.Project.Created)
	assert.Equal(t, []string{"jeff"}, cfg.GitHubLabels())

	storyMap, err := os.ReadFile(paths.StoryMapFile())
	require.NoError(t, err)
	assert.Contains(t, string(storyMap), "Story Map: boards")
}

func TestScaffold_ExplicitName(t *testing.T) {
	result, err := Scaffold(ScaffoldOptions{Root: t.TempDir(), Name: "Acme Boards", Now: created})
	require.NoError(t, err)

	cfg, err := LoadConfig(result.JeffDir)
	require.NoError(t, err)
	assert.Equal(t, "Acme Boards", cfg.Project.Name)
}

func TestScaffold_RefusesExistingProject(t *testing.T) {
	root := t.TempDir()
	_, err := Scaffold(ScaffoldOptions{Root: root, Now: created})
	require.NoError(t, err)

	_, err = Scaffold(ScaffoldOptions{Root: root, Now: created})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeProjectInitialized))
}

func TestScaffold_ForceOverwrites(t *testing.T) {
	root := t.TempDir()
	first, err := Scaffold(ScaffoldOptions{Root: root, Name: "old", Now: created})
	require.NoError(t, err)

	_, err = Scaffold(ScaffoldOptions{Root: root, Name: "new", Now: created, Force: true})
	require.NoError(t, err)

	cfg, err := LoadConfig(first.JeffDir)
	require.NoError(t, err)
	assert.Equal(t, "new", cfg.Project.Name)
}

func TestOpen(t *testing.T) {
	root := t.TempDir()
	_, err := Scaffold(ScaffoldOptions{Root: root, Name: "acme", Now: created})
	require.NoError(t, err)

	nested := filepath.Join(root, "src", "app")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	p, err := Open(nested)
	require.NoError(t, err)

	resolvedRoot, _ := filepath.EvalSymlinks(root)
	resolvedFound, _ := filepath.EvalSymlinks(p.ProjectRoot())
	assert.Equal(t, resolvedRoot, resolvedFound)
	assert.Equal(t, "acme", p.Config.Project.Name)
}

func TestRequireArtifact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "HYPOTHESES.md")

	_, err := RequireArtifact(path)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeArtifactNotFound))
	assert.Contains(t, err.Error(), "HYPOTHESES.md not found")

	require.NoError(t, os.WriteFile(path, []byte("# Hypotheses\n"), 0o644))
	content, err := RequireArtifact(path)
	require.NoError(t, err)
	assert.Equal(t, "# Hypotheses\n", content)

	_, ok, err := ReadArtifact(filepath.Join(dir, "missing.md"))
	require.NoError(t, err)
	assert.False(t, ok)
}
