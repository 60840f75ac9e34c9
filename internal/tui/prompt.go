package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// Option is one labeled choice in a selection prompt
type Option struct {
	Label string
	Value string
}

// PromptForConfirmation displays a yes/no confirmation prompt
func PromptForConfirmation(message string, defaultValue bool) (bool, error) {
	var confirmed bool = defaultValue

	confirm := huh.NewConfirm().
		Title(message).
		Value(&confirmed)

	form := huh.NewForm(huh.NewGroup(confirm))

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}

	return confirmed, nil
}

// PromptForSelect displays a selection prompt and returns the value of the
// chosen option. The first option is preselected.
func PromptForSelect(message string, options []Option) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options provided")
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, opt.Value)
	}

	selected := options[0].Value
	selectField := huh.NewSelect[string]().
		Title(message).
		Options(huhOptions...).
		Value(&selected)

	form := huh.NewForm(huh.NewGroup(selectField))

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	return selected, nil
}

// IsInteractive returns true if stdin is a terminal (not piped),
// including Cygwin and MSYS terminals on Windows
func IsInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ShouldPrompt returns true if prompts should be shown based on environment
// Prompts are disabled in CI environments, when JEFF_NO_PROMPT is set, or
// when stdin is not a terminal
func ShouldPrompt() bool {
	ciEnvVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"JENKINS_URL",
		"TRAVIS",
		"CIRCLECI",
		"BUILDKITE",
		"JEFF_NO_PROMPT",
	}

	for _, envVar := range ciEnvVars {
		if os.Getenv(envVar) != "" {
			return false
		}
	}

	return IsInteractive()
}
