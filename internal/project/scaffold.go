package project

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/felixgeelhaar/jeff/internal/errors"
	"github.com/felixgeelhaar/jeff/internal/prompts"
	"github.com/felixgeelhaar/jeff/internal/templates"
	"github.com/felixgeelhaar/jeff/internal/ux"
)

// ScaffoldOptions controls Scaffold.
type ScaffoldOptions struct {
	// Root is the directory that will hold .jeff.
	Root string
	// Name defaults to the base name of Root.
	Name string
	// Now stamps the created date; zero means time.Now.
	Now time.Time
	// Force overwrites an existing .jeff directory in Root.
	Force bool
}

// ScaffoldResult lists what Scaffold wrote.
type ScaffoldResult struct {
	Name    string
	JeffDir string
	Files   []string
}

// Scaffold creates .jeff in opts.Root with the starter artifacts, research
// notes and prompt copies.
func Scaffold(opts ScaffoldOptions) (*ScaffoldResult, error) {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, err
	}

	paths := ux.NewPathDefaults(filepath.Join(root, ux.JeffDirName))
	if !opts.Force {
		if info, err := os.Stat(paths.JeffDir); err == nil && info.IsDir() {
			return nil, errors.NewProjectInitializedError(root)
		}
	}

	name := opts.Name
	if name == "" {
		name = filepath.Base(root)
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	data := templates.NewData(name, now)

	for _, dir := range append([]string{paths.JeffDir}, paths.Subdirectories()...) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(errors.ErrCodeDirectoryFailed, fmt.Sprintf("failed to create %s", dir), err)
		}
	}

	result := &ScaffoldResult{Name: name, JeffDir: paths.JeffDir}

	rendered := []struct {
		template string
		path     string
	}{
		{ux.ConfigFileName, paths.ConfigFile()},
		{ux.StoryMapFile, paths.StoryMapFile()},
		{ux.OpportunitiesFile, paths.OpportunitiesFile()},
		{ux.HypothesesFile, paths.HypothesesFile()},
		{ux.TasksFile, paths.TasksFile()},
		{ux.InterviewsFile, paths.InterviewsFile()},
		{ux.ValidationResultsFile, paths.ValidationResultsFile()},
		{ux.InsightsFile, paths.InsightsFile()},
	}
	for _, r := range rendered {
		content, err := templates.Render(r.template, data)
		if err != nil {
			return nil, err
		}
		if err := writeFile(r.path, content); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, r.path)
	}

	for _, name := range prompts.ProjectPrompts {
		content, err := prompts.Get(name)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(paths.PromptsDir(), prompts.FileName(name))
		if err := writeFile(path, content+"\n"); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, path)
	}

	return result, nil
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, fmt.Sprintf("failed to write %s", path), err)
	}
	return nil
}
