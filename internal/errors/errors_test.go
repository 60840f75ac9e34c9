package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeArtifactNotFound, "test error message")

	if err.Code != ErrCodeArtifactNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeArtifactNotFound, err.Code)
	}

	if err.Message != "test error message" {
		t.Errorf("expected message 'test error message', got '%s'", err.Message)
	}

	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := Wrap(ErrCodeFileReadFailed, "failed to read file", cause)

	if err.Code != ErrCodeFileReadFailed {
		t.Errorf("expected code %s, got %s", ErrCodeFileReadFailed, err.Code)
	}

	if !errors.Is(err, cause) {
		t.Errorf("Wrap should support errors.Is")
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *JeffError
		wantCode string
		wantMsg  string
	}{
		{
			name:     "simple error",
			err:      New(ErrCodeHypothesisNotFound, "Hypothesis H9 not found"),
			wantCode: "HYPOTHESIS-001",
			wantMsg:  "H9",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeFileReadFailed, "read failed", fmt.Errorf("permission denied")),
			wantCode: "IO-002",
			wantMsg:  "permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()

			if !strings.Contains(errStr, tt.wantCode) {
				t.Errorf("error string should contain code %s, got: %s", tt.wantCode, errStr)
			}

			if !strings.Contains(errStr, tt.wantMsg) {
				t.Errorf("error string should contain message '%s', got: %s", tt.wantMsg, errStr)
			}
		})
	}
}

func TestWithSuggestions(t *testing.T) {
	err := New(ErrCodeInstallUnknownTool, "unknown tool").
		WithSuggestion("first").
		WithSuggestions("second", "third").
		WithDocs("https://example.com/docs")

	if len(err.Suggestions) != 3 {
		t.Errorf("expected 3 suggestions, got %d", len(err.Suggestions))
	}

	errStr := err.Error()
	for _, want := range []string{"Suggestions:", "first", "third", "Documentation:", "https://example.com/docs"} {
		if !strings.Contains(errStr, want) {
			t.Errorf("error string should contain %q, got: %s", want, errStr)
		}
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", NewArtifactNotFoundError("TASKS.md"))

	if got := CodeOf(wrapped); got != ErrCodeArtifactNotFound {
		t.Errorf("CodeOf = %q, want %q", got, ErrCodeArtifactNotFound)
	}
	if !HasCode(wrapped, ErrCodeArtifactNotFound) {
		t.Error("HasCode should see through fmt.Errorf wrapping")
	}
	if CodeOf(fmt.Errorf("plain")) != "" {
		t.Error("plain errors carry no code")
	}
	if HasCode(nil, ErrCodeArtifactNotFound) {
		t.Error("nil error has no code")
	}
}

func TestNewIssueCreateError(t *testing.T) {
	cause := fmt.Errorf("exit status 1")

	err := NewIssueCreateError("  could not add label: 'mvp' not found\n", cause)
	if err.Message != "could not add label: 'mvp' not found" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if !errors.Is(err, cause) {
		t.Error("cause should be preserved")
	}

	empty := NewIssueCreateError("", cause)
	if empty.Message != "issue creation failed" {
		t.Errorf("empty stderr should fall back, got %q", empty.Message)
	}
}

func TestNewIssueToolNotFoundError(t *testing.T) {
	err := NewIssueToolNotFoundError(fmt.Errorf("executable file not found in $PATH"))

	if err.Code != ErrCodeIssueToolNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeIssueToolNotFound, err.Code)
	}
	if !strings.Contains(err.Message, "https://cli.github.com/") {
		t.Errorf("message should point at the gh install page: %s", err.Message)
	}
}

func TestProjectErrors(t *testing.T) {
	notFound := NewProjectNotFoundError("/tmp/work")
	if notFound.Code != ErrCodeProjectNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeProjectNotFound, notFound.Code)
	}
	if !strings.Contains(notFound.Error(), "jeff init") {
		t.Errorf("suggestion should mention jeff init")
	}

	initialized := NewProjectInitializedError("/tmp/work")
	if !strings.Contains(initialized.Error(), "--force") {
		t.Errorf("suggestion should mention --force")
	}
}

func TestNewFileUnmarshalError(t *testing.T) {
	cause := fmt.Errorf("invalid YAML syntax at line 5")
	err := NewFileUnmarshalError("/path/to/config.yaml", "YAML", cause)

	if err.Code != ErrCodeFileUnmarshal {
		t.Errorf("expected code %s, got %s", ErrCodeFileUnmarshal, err.Code)
	}

	if err.Cause != cause {
		t.Errorf("expected cause to be preserved")
	}

	if !strings.Contains(err.Message, "/path/to/config.yaml") {
		t.Errorf("error message should contain file path")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := Wrap(ErrCodeFileReadFailed, "read failed", cause)

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap should return the cause")
	}
}

func TestMessage(t *testing.T) {
	coded := fmt.Errorf("context: %w", NewIssueCreateError("HTTP 404: Not Found\n", errors.New("exit status 1")))
	if got := Message(coded); got != "HTTP 404: Not Found" {
		t.Errorf("Message() = %q, want the bare gh diagnostic", got)
	}

	plain := errors.New("plain failure")
	if got := Message(plain); got != "plain failure" {
		t.Errorf("Message() = %q, want %q", got, "plain failure")
	}

	if got := Message(nil); got != "" {
		t.Errorf("Message(nil) = %q, want empty", got)
	}
}

func TestInstallErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      *JeffError
		code     ErrorCode
		contains string
	}{
		{"unknown tool", NewUnknownToolError("vim", []string{"claude", "zed"}), ErrCodeInstallUnknownTool, "claude, zed"},
		{"global scope", NewGlobalScopeError("Cursor"), ErrCodeInstallGlobalScope, "--local"},
		{"scope conflict", NewScopeConflictError(), ErrCodeInstallScopeConflict, "both --global and --local"},
		{"tool required", NewToolRequiredError("Specify only one tool"), ErrCodeInstallToolRequired, "--conductor"},
		{"scope required", NewScopeRequiredError(), ErrCodeInstallScopeRequired, "--global or --local"},
		{"agents missing", NewMissingAgentsMDError("/w/AGENTS.md"), ErrCodeInstallMissingAgentsMD, "/w/AGENTS.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, tt.err.Code)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("expected %q in %q", tt.contains, tt.err.Error())
			}
		})
	}
}
