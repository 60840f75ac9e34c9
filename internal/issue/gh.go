package issue

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"

	"github.com/felixgeelhaar/jeff/internal/errors"
)

// Creator files a single issue and returns its URL.
type Creator interface {
	Create(ctx context.Context, iss Issue) (string, error)
}

// Runner runs an external command and returns its captured output.
type Runner func(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)

// ExecRunner runs the command with os/exec.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// GHCreator files issues with `gh issue create`.
type GHCreator struct {
	// Binary defaults to "gh".
	Binary string
	// Repo is passed as --repo when set.
	Repo string
	// Run defaults to ExecRunner.
	Run Runner
}

// NewGHCreator returns a creator targeting repo, or the repository of the
// working directory when repo is empty.
func NewGHCreator(repo string) *GHCreator {
	return &GHCreator{Binary: "gh", Repo: repo, Run: ExecRunner}
}

// Args returns the gh arguments used to create iss.
func (c *GHCreator) Args(iss Issue) []string {
	args := []string{"issue", "create", "--title", iss.Title, "--body", iss.Body}
	for _, label := range iss.Labels {
		args = append(args, "--label", label)
	}
	if c.Repo != "" {
		args = append(args, "--repo", c.Repo)
	}
	return args
}

// Create runs gh synchronously and returns the printed issue URL.
func (c *GHCreator) Create(ctx context.Context, iss Issue) (string, error) {
	bin := c.Binary
	if bin == "" {
		bin = "gh"
	}
	run := c.Run
	if run == nil {
		run = ExecRunner
	}

	stdout, stderr, err := run(ctx, bin, c.Args(iss)...)
	if err != nil {
		if stderrors.Is(err, exec.ErrNotFound) {
			return "", errors.NewIssueToolNotFoundError(err)
		}
		return "", errors.NewIssueCreateError(string(stderr), err)
	}
	return strings.TrimSpace(string(stdout)), nil
}

// Result is the outcome of filing one issue.
type Result struct {
	Issue Issue
	URL   string
	Err   error
}

// OK reports whether the issue was created.
func (r Result) OK() bool {
	return r.Err == nil
}

// Failure returns the diagnostic shown to the user for a failed result.
func (r Result) Failure() string {
	return errors.Message(r.Err)
}

// CreateAll files each issue in order. A failure is recorded in its Result
// and the batch continues; each is called after every attempt when non-nil.
func CreateAll(ctx context.Context, creator Creator, issues []Issue, each func(int, Result)) []Result {
	results := make([]Result, 0, len(issues))
	for i, iss := range issues {
		url, err := creator.Create(ctx, iss)
		r := Result{Issue: iss, URL: url, Err: err}
		results = append(results, r)
		if each != nil {
			each(i, r)
		}
	}
	return results
}
