package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/felixgeelhaar/jeff/internal/issue"
	"github.com/felixgeelhaar/jeff/internal/log"
	"github.com/felixgeelhaar/jeff/internal/parser"
	"github.com/felixgeelhaar/jeff/internal/project"
	"github.com/felixgeelhaar/jeff/internal/tui"
)

// Collaborators replaced in tests.
var (
	shouldPrompt  = tui.ShouldPrompt
	promptConfirm = tui.PromptForConfirmation
	promptSelect  = tui.PromptForSelect
	newCreator    = func(repo string) issue.Creator { return issue.NewGHCreator(repo) }
)

// openProject finds the .jeff directory governing the working directory.
func openProject() (*project.Project, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	p, err := project.Open(wd)
	if err != nil {
		return nil, err
	}

	log.DefaultLogger().Debug("opened project", "jeff_dir", p.JeffDir, "name", p.Config.Project.Name)
	return p, nil
}

// issueSettings maps the github section of config.yaml onto renderer
// settings.
func issueSettings(p *project.Project) issue.Settings {
	return issue.Settings{
		Labels:      p.Config.GitHubLabels(),
		TitlePrefix: p.Config.TitlePrefix(),
	}
}

// printPromptWithArtifact writes prompt followed, when path exists, by a
// rule, heading and the artifact itself.
func printPromptWithArtifact(w io.Writer, prompt, heading, path string) error {
	fmt.Fprintln(w, prompt)

	content, ok, err := project.ReadArtifact(path)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	fmt.Fprint(w, "\n---\n\n")
	fmt.Fprintf(w, "## %s\n\n", heading)
	fmt.Fprintln(w, content)
	return nil
}

// showArtifact writes the artifact at path, or fails with ARTIFACT-001.
func showArtifact(w io.Writer, path string) error {
	content, err := project.RequireArtifact(path)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, content)
	return nil
}

// loadStories parses STORY_MAP.md; a missing file yields no stories.
func loadStories(p *project.Project) ([]parser.Story, bool, error) {
	content, ok, err := project.ReadArtifact(p.StoryMapFile())
	if err != nil || !ok {
		return nil, ok, err
	}
	stories := parser.ParseStoryMap(content)
	log.DefaultLogger().Debug("parsed story map", "stories", len(stories))
	return stories, true, nil
}

// loadSolutions parses OPPORTUNITIES.md; a missing file yields no
// solutions.
func loadSolutions(p *project.Project) ([]parser.Solution, bool, error) {
	content, ok, err := project.ReadArtifact(p.OpportunitiesFile())
	if err != nil || !ok {
		return nil, ok, err
	}
	solutions := parser.ParseOpportunities(content)
	log.DefaultLogger().Debug("parsed opportunities", "solutions", len(solutions))
	return solutions, true, nil
}

// countSections tallies stories per release slice.
func countSections(stories []parser.Story) map[parser.Section]int {
	counts := make(map[parser.Section]int)
	for _, s := range stories {
		counts[s.Section]++
	}
	return counts
}
