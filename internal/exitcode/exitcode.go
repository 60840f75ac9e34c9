package exitcode

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/felixgeelhaar/jeff/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// NotFound indicates a missing project, artifact or hypothesis
	NotFound = 3

	// ExternalCommand indicates a failure in an external tool such as gh
	ExternalCommand = 4

	// Interrupted indicates the user cancelled with Ctrl-C
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	code := DetermineExitCode(err)
	Exit(code)
}

// DetermineExitCode analyzes an error and returns the appropriate exit code.
// Coded errors are classified by code; anything else falls back to message
// heuristics.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	if stderrors.Is(err, context.Canceled) {
		return Interrupted
	}

	if code := errors.CodeOf(err); code != "" {
		return fromCode(code)
	}

	errMsg := strings.ToLower(err.Error())

	// Usage errors
	if strings.Contains(errMsg, "invalid flag") || strings.Contains(errMsg, "unknown command") {
		return UsageError
	}
	if strings.Contains(errMsg, "unknown flag") || strings.Contains(errMsg, "unknown shorthand flag") {
		return UsageError
	}
	if strings.Contains(errMsg, "invalid argument") {
		return UsageError
	}
	if strings.Contains(errMsg, "required flag") || (strings.Contains(errMsg, "accepts") && strings.Contains(errMsg, "arg(s)")) {
		return UsageError
	}

	if stderrors.Is(err, os.ErrNotExist) {
		return NotFound
	}

	// Default to general error
	return GeneralError
}

func fromCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeProjectNotFound,
		errors.ErrCodeArtifactNotFound,
		errors.ErrCodeHypothesisNotFound,
		errors.ErrCodeFileNotFound:
		return NotFound
	case errors.ErrCodeIssueToolNotFound, errors.ErrCodeIssueCreateFailed:
		return ExternalCommand
	case errors.ErrCodeInstallUnknownTool,
		errors.ErrCodeInstallGlobalScope,
		errors.ErrCodeInstallScopeConflict,
		errors.ErrCodeInstallToolRequired,
		errors.ErrCodeInstallScopeRequired:
		return UsageError
	default:
		return GeneralError
	}
}

// GetExitCodeDescription returns a human-readable description of an exit code
func GetExitCodeDescription(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case NotFound:
		return "Project, artifact or hypothesis not found"
	case ExternalCommand:
		return "External command failed"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
