package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Project errors (PROJECT-001 to PROJECT-099)
	ErrCodeProjectNotFound    ErrorCode = "PROJECT-001"
	ErrCodeProjectInitialized ErrorCode = "PROJECT-002"

	// Artifact errors (ARTIFACT-001 to ARTIFACT-099)
	ErrCodeArtifactNotFound ErrorCode = "ARTIFACT-001"

	// Hypothesis errors (HYPOTHESIS-001 to HYPOTHESIS-099)
	ErrCodeHypothesisNotFound ErrorCode = "HYPOTHESIS-001"

	// Issue tracker errors (ISSUE-001 to ISSUE-099)
	ErrCodeIssueToolNotFound ErrorCode = "ISSUE-001"
	ErrCodeIssueCreateFailed ErrorCode = "ISSUE-002"

	// Install errors (INSTALL-001 to INSTALL-099)
	ErrCodeInstallUnknownTool     ErrorCode = "INSTALL-001"
	ErrCodeInstallGlobalScope     ErrorCode = "INSTALL-002"
	ErrCodeInstallScopeConflict   ErrorCode = "INSTALL-003"
	ErrCodeInstallMissingAgentsMD ErrorCode = "INSTALL-004"
	ErrCodeInstallToolRequired    ErrorCode = "INSTALL-005"
	ErrCodeInstallScopeRequired   ErrorCode = "INSTALL-006"

	// Template errors (TEMPLATE-001 to TEMPLATE-099)
	ErrCodeTemplateNotFound ErrorCode = "TEMPLATE-001"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
	ErrCodeDirectoryFailed ErrorCode = "IO-004"
	ErrCodeFileUnmarshal   ErrorCode = "IO-005"
	ErrCodeFileMarshal     ErrorCode = "IO-006"
)

const docsBase = "https://github.com/felixgeelhaar/jeff"

// JeffError represents an enhanced error with code, suggestions, and documentation
type JeffError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *JeffError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *JeffError) Unwrap() error {
	return e.Cause
}

// New creates a new JeffError
func New(code ErrorCode, message string) *JeffError {
	return &JeffError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new JeffError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *JeffError {
	return &JeffError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *JeffError) WithSuggestion(suggestion string) *JeffError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *JeffError) WithSuggestions(suggestions ...string) *JeffError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *JeffError) WithDocs(url string) *JeffError {
	e.DocsURL = url
	return e
}

// CodeOf returns the code of the first JeffError in err's chain, or an
// empty code when there is none.
func CodeOf(err error) ErrorCode {
	var je *JeffError
	if errors.As(err, &je) {
		return je.Code
	}
	return ""
}

// Message returns the bare message of the first JeffError in err's chain,
// without code, cause or suggestions. Other errors return err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var je *JeffError
	if errors.As(err, &je) {
		return je.Message
	}
	return err.Error()
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}

// Common error constructors for frequently used errors

// NewProjectNotFoundError reports that no .jeff directory governs start.
func NewProjectNotFoundError(start string) *JeffError {
	return New(ErrCodeProjectNotFound, fmt.Sprintf("not in a jeff project: no .jeff directory found from %s", start)).
		WithSuggestion("Run 'jeff init' to create one").
		WithDocs(docsBase + "#getting-started")
}

// NewProjectInitializedError reports an init over an existing project.
func NewProjectInitializedError(root string) *JeffError {
	return New(ErrCodeProjectInitialized, fmt.Sprintf("already a jeff project: %s", root)).
		WithSuggestion("Use --force to rewrite the templates")
}

// NewArtifactNotFoundError reports a missing artifact file such as
// STORY_MAP.md.
func NewArtifactNotFoundError(name string) *JeffError {
	return New(ErrCodeArtifactNotFound, fmt.Sprintf("%s not found", name)).
		WithSuggestion("Run 'jeff init' to create the artifact templates")
}

// NewHypothesisNotFoundError reports a validate lookup that matched nothing.
func NewHypothesisNotFoundError(id string) *JeffError {
	return New(ErrCodeHypothesisNotFound, fmt.Sprintf("Hypothesis %s not found", id)).
		WithSuggestion("Run 'jeff hypothesis --list' to see the known ids")
}

// NewIssueToolNotFoundError reports that the gh executable is missing.
func NewIssueToolNotFoundError(cause error) *JeffError {
	return Wrap(ErrCodeIssueToolNotFound, "gh CLI not found. Install from https://cli.github.com/", cause)
}

// NewIssueCreateError reports a failed gh invocation with its diagnostics.
func NewIssueCreateError(stderr string, cause error) *JeffError {
	msg := strings.TrimSpace(stderr)
	if msg == "" {
		msg = "issue creation failed"
	}
	return Wrap(ErrCodeIssueCreateFailed, msg, cause)
}

// NewUnknownToolError reports an install target jeff does not know.
func NewUnknownToolError(tool string, known []string) *JeffError {
	return New(ErrCodeInstallUnknownTool, fmt.Sprintf("unknown tool: %s", tool)).
		WithSuggestion(fmt.Sprintf("Use one of: %s", strings.Join(known, ", ")))
}

// NewGlobalScopeError reports a global install for a local-only tool.
func NewGlobalScopeError(toolName string) *JeffError {
	return New(ErrCodeInstallGlobalScope, fmt.Sprintf("%s does not support global installation", toolName)).
		WithSuggestion("Use --local instead")
}

// NewScopeConflictError reports --global and --local given together.
func NewScopeConflictError() *JeffError {
	return New(ErrCodeInstallScopeConflict, "cannot specify both --global and --local")
}

// NewToolRequiredError reports a missing or ambiguous tool selection.
func NewToolRequiredError(message string) *JeffError {
	return New(ErrCodeInstallToolRequired, message).
		WithSuggestion("Pass exactly one of --claude, --opencode, --cursor, --zed, --conductor")
}

// NewScopeRequiredError reports that a tool supporting both scopes was
// given neither --global nor --local without a terminal to ask on.
func NewScopeRequiredError() *JeffError {
	return New(ErrCodeInstallScopeRequired, "Please specify --global or --local")
}

// NewMissingAgentsMDError reports that Cursor rules cannot be written
// without an AGENTS.md in the working directory.
func NewMissingAgentsMDError(path string) *JeffError {
	return New(ErrCodeInstallMissingAgentsMD, fmt.Sprintf("AGENTS.md not found: %s", path)).
		WithSuggestion("Create AGENTS.md in the project root before installing for Cursor")
}

// NewTemplateNotFoundError reports a missing embedded template or prompt.
func NewTemplateNotFoundError(kind, name string) *JeffError {
	return New(ErrCodeTemplateNotFound, fmt.Sprintf("%s not found: %s", kind, name))
}

// NewFileNotFoundError creates a file not found error
func NewFileNotFoundError(path string) *JeffError {
	return New(ErrCodeFileNotFound, fmt.Sprintf("file not found: %s", path)).
		WithSuggestion("Check if the file path is correct").
		WithSuggestion("Verify the file exists and you have read permissions")
}

// NewFileUnmarshalError creates an unmarshal error
func NewFileUnmarshalError(path string, format string, cause error) *JeffError {
	return Wrap(ErrCodeFileUnmarshal, fmt.Sprintf("failed to parse %s file: %s", format, path), cause).
		WithSuggestion("Check the file syntax and format").
		WithSuggestion(fmt.Sprintf("Ensure the file is valid %s", format))
}
