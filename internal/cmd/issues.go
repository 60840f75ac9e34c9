package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/jeff/internal/issue"
	"github.com/felixgeelhaar/jeff/internal/log"
	"github.com/felixgeelhaar/jeff/internal/parser"
	"github.com/felixgeelhaar/jeff/internal/prompts"
	"github.com/felixgeelhaar/jeff/internal/tui"
)

const issueRule = "============================================================"

var (
	issuesCreate bool
	issuesDryRun bool
)

var issuesCmd = &cobra.Command{
	Use:   "issues",
	Short: "Print the prompt for generating issues from artifacts",
	Long: `Print the issues prompt and a summary of the artifacts issues can be
generated from.

Walking skeleton and Release 1 stories from STORY_MAP.md and the solutions in
OPPORTUNITIES.md become issues. Labels and the title prefix come from the
github section of .jeff/config.yaml.

Use --dry-run to preview the issues that would be created.
Use --create to create them with the gh CLI.`,
	Args: cobra.NoArgs,
	RunE: runIssues,
}

func init() {
	issuesCmd.Flags().BoolVar(&issuesCreate, "create", false, "create issues via the gh CLI")
	issuesCmd.Flags().BoolVar(&issuesDryRun, "dry-run", false, "preview issues without creating them")

	rootCmd.AddCommand(issuesCmd)
}

func runIssues(cmd *cobra.Command, args []string) error {
	p, err := openProject()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	stories, hasMap, err := loadStories(p)
	if err != nil {
		return err
	}
	solutions, hasOpportunities, err := loadSolutions(p)
	if err != nil {
		return err
	}

	if !issuesDryRun && !issuesCreate {
		prompt, err := prompts.Get(prompts.Issues)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, prompt)
		fmt.Fprint(out, "\n---\n\n")
		fmt.Fprint(out, "## Available Artifacts\n\n")

		if hasMap {
			counts := countSections(stories)
			fmt.Fprintf(out, "- STORY_MAP.md: %d skeleton stories, %d release 1 stories\n",
				counts[parser.SectionSkeleton], counts[parser.SectionRelease1])
		} else {
			fmt.Fprintln(out, "- STORY_MAP.md: not found")
		}

		if hasOpportunities {
			fmt.Fprintf(out, "- OPPORTUNITIES.md: %d solutions\n", countFiledSolutions(solutions))
		} else {
			fmt.Fprintln(out, "- OPPORTUNITIES.md: not found")
		}

		fmt.Fprintln(out, "\nUse 'jeff issues --dry-run' to preview generated issues.")
		fmt.Fprintln(out, "Use 'jeff issues --create' to create them via gh CLI.")
		return nil
	}

	issues := issue.Collect(stories, solutions, issueSettings(p))
	if len(issues) == 0 {
		fmt.Fprintln(out, "No issues to generate. Add content to STORY_MAP.md or OPPORTUNITIES.md first.")
		return nil
	}

	fmt.Fprintf(out, "Found %d potential issues:\n\n", len(issues))

	printDraft := func(i int, iss issue.Issue) {
		fmt.Fprintln(out, issueRule)
		fmt.Fprintf(out, "Issue %d: %s\n", i+1, iss.Title)
		fmt.Fprintf(out, "Source: %s - %s\n", iss.Source, iss.SourceRef)
		fmt.Fprintf(out, "Labels: %s\n", strings.Join(iss.Labels, ", "))
		fmt.Fprintln(out, issueRule)
		writeBody(out, iss.Body)
	}

	if !issuesCreate {
		for i, iss := range issues {
			printDraft(i, iss)
		}
		return nil
	}

	creator := newCreator(p.Config.GitHub.Repo)
	fileIssues(cmd.Context(), out, creator, issues, printDraft)
	return nil
}

// countFiledSolutions counts the solutions jeff issues would file.
func countFiledSolutions(solutions []parser.Solution) int {
	n := 0
	for _, s := range solutions {
		if !strings.HasPrefix(s.Title, "[") {
			n++
		}
	}
	return n
}

func writeBody(w io.Writer, body string) {
	fmt.Fprintln(w, strings.TrimRight(body, "\n"))
	fmt.Fprintln(w)
}

// announcingCreator prints each draft before handing it to the wrapped
// creator, so progress shows while gh runs.
type announcingCreator struct {
	next     issue.Creator
	out      io.Writer
	announce func(int, issue.Issue)
	n        int
}

func (a *announcingCreator) Create(ctx context.Context, iss issue.Issue) (string, error) {
	a.announce(a.n, iss)
	a.n++
	fmt.Fprintln(a.out, "Creating issue...")
	return a.next.Create(ctx, iss)
}

// fileIssues creates every draft and reports each outcome. Failures are
// reported and logged; the batch always runs to the end.
func fileIssues(ctx context.Context, out io.Writer, creator issue.Creator, issues []issue.Issue, announce func(int, issue.Issue)) []issue.Result {
	styles := tui.NewStyles(out)
	logger := log.For("issues")

	announcer := &announcingCreator{next: creator, out: out, announce: announce}
	results := issue.CreateAll(ctx, announcer, issues, func(i int, r issue.Result) {
		if r.OK() {
			fmt.Fprintf(out, "Created: %s\n\n", r.URL)
			logger.Info("created issue", "title", r.Issue.Title, "url", r.URL)
			return
		}
		fmt.Fprintf(out, "Failed: %s\n\n", r.Failure())
		logger.LogErrorContext(ctx, "issue creation failed", r.Err, "title", r.Issue.Title)
	})

	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintln(out, styles.Warn(fmt.Sprintf("%d of %d issues failed", failed, len(results))))
	}
	return results
}
