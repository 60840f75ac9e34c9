package ux

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/felixgeelhaar/jeff/internal/errors"
)

// ErrorWithSuggestion wraps an error with helpful recovery suggestions
type ErrorWithSuggestion struct {
	Err        error
	Suggestion string
}

// Error implements the error interface
func (e *ErrorWithSuggestion) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v\n\n💡 Suggestion: %s", e.Err, e.Suggestion)
	}
	return e.Err.Error()
}

// Unwrap provides access to the underlying error
func (e *ErrorWithSuggestion) Unwrap() error {
	return e.Err
}

// NewErrorWithSuggestion creates a new error with a suggestion
func NewErrorWithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithSuggestion{
		Err:        err,
		Suggestion: suggestion,
	}
}

// artifactCommands maps each planning file to the command that fills it in.
var artifactCommands = map[string]string{
	StoryMapFile:      "jeff map",
	OpportunitiesFile: "jeff opportunity",
	HypothesesFile:    "jeff hypothesis",
	TasksFile:         "jeff bdd",
}

// EnhanceError analyzes an error and adds contextual suggestions
func EnhanceError(err error) error {
	if err == nil {
		return nil
	}

	// Coded errors already carry their own suggestions
	var coded *errors.JeffError
	if stderrors.As(err, &coded) {
		return err
	}

	errMsg := err.Error()

	if stderrors.Is(err, os.ErrNotExist) || strings.Contains(errMsg, "no such file or directory") {
		// Artifact paths live under .jeff, so they are checked first
		for file, command := range artifactCommands {
			if strings.Contains(errMsg, file) {
				return NewErrorWithSuggestion(err,
					fmt.Sprintf("Create %s by running 'jeff init' and then '%s'", file, command))
			}
		}
		if strings.Contains(errMsg, ConfigFileName) || strings.Contains(errMsg, JeffDirName) {
			return NewErrorWithSuggestion(err,
				"Initialize the project by running 'jeff init'")
		}
	}

	if strings.Contains(errMsg, "permission denied") {
		return NewErrorWithSuggestion(err,
			"Check file permissions and ensure you have access to the required files/directories")
	}

	if strings.Contains(errMsg, "gh auth login") || strings.Contains(errMsg, "authentication") {
		return NewErrorWithSuggestion(err,
			"Authenticate the GitHub CLI by running 'gh auth login'")
	}

	if strings.Contains(errMsg, "could not resolve to a Repository") {
		return NewErrorWithSuggestion(err,
			"Set github.repo in .jeff/config.yaml or run jeff from inside a GitHub checkout")
	}

	if strings.Contains(errMsg, "yaml:") {
		return NewErrorWithSuggestion(err,
			"Fix the YAML syntax in .jeff/config.yaml")
	}

	return err
}
