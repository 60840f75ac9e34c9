// Package prompts holds the workflow prompts printed by jeff commands and
// copied into .jeff/prompts by jeff init.
package prompts

import (
	"embed"
	"strings"

	"github.com/felixgeelhaar/jeff/internal/errors"
)

//go:embed files/*.md
var files embed.FS

// Prompt names.
const (
	StoryMap           = "story-map"
	Opportunity        = "opportunity"
	Hypothesis         = "hypothesis"
	HypothesisValidate = "hypothesis-validate"
	Issues             = "issues"
	BDD                = "bdd"
	ResearchInterview  = "research-interview"
	ResearchInsight    = "research-insight"
)

// ProjectPrompts are copied into a new project's prompts directory.
var ProjectPrompts = []string{StoryMap, Hypothesis, Opportunity, Issues, BDD}

// Get returns the prompt text for name.
func Get(name string) (string, error) {
	data, err := files.ReadFile("files/" + name + ".md")
	if err != nil {
		return "", errors.NewTemplateNotFoundError("prompt", name)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// FileName is the name a prompt is written under inside .jeff/prompts.
func FileName(name string) string {
	return name + ".md"
}
