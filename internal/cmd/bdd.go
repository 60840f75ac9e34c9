package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/jeff/internal/issue"
	"github.com/felixgeelhaar/jeff/internal/log"
	"github.com/felixgeelhaar/jeff/internal/parser"
	"github.com/felixgeelhaar/jeff/internal/project"
	"github.com/felixgeelhaar/jeff/internal/prompts"
	"github.com/felixgeelhaar/jeff/internal/ux"
)

const tasksMissing = "TASKS.md not found. Run 'jeff init' to create it."

var (
	bddShow   bool
	bddList   bool
	bddCreate bool
	bddDryRun bool
	bddStatus string
	bddFormat string
)

var bddCmd = &cobra.Command{
	Use:   "bdd",
	Short: "Print the prompt for generating implementation tasks",
	Long: `Print the prompt for turning discovery artifacts into behavior-focused
implementation tasks, together with the state of STORY_MAP.md,
OPPORTUNITIES.md and TASKS.md.

Use --show to display the current TASKS.md.
Use --list to see a summary of tasks by status and priority.
Use --dry-run to preview the GitHub issues that would be created.
Use --create to create them via the gh CLI.
Use --status to choose which tasks become issues (default: pending).`,
	Args: cobra.NoArgs,
	RunE: runBDD,
}

func init() {
	bddCmd.Flags().BoolVar(&bddShow, "show", false, "display the current TASKS.md only")
	bddCmd.Flags().BoolVar(&bddList, "list", false, "show a summary of tasks by status")
	bddCmd.Flags().BoolVar(&bddCreate, "create", false, "create GitHub issues via the gh CLI")
	bddCmd.Flags().BoolVar(&bddDryRun, "dry-run", false, "preview issues without creating them")
	bddCmd.Flags().StringVar(&bddStatus, "status", "pending", "filter tasks by status")
	bddCmd.Flags().StringVar(&bddFormat, "format", ux.FormatText, ux.FormatUsage("--list"))

	rootCmd.AddCommand(bddCmd)
}

func runBDD(cmd *cobra.Command, args []string) error {
	p, err := openProject()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	content, hasTasks, err := project.ReadArtifact(p.TasksFile())
	if err != nil {
		return err
	}

	switch {
	case bddShow:
		if !hasTasks {
			fmt.Fprintln(out, tasksMissing)
			return nil
		}
		fmt.Fprintln(out, content)
		return nil

	case bddList:
		return listTasks(out, content, hasTasks)

	case bddDryRun || bddCreate:
		return taskIssues(cmd, p, content, hasTasks)

	default:
		return bddOverview(out, p, content, hasTasks)
	}
}

func listTasks(out io.Writer, content string, hasTasks bool) error {
	if !hasTasks {
		fmt.Fprintln(out, tasksMissing)
		return nil
	}

	tasks := parser.ParseTasks(content)
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks found in TASKS.md. Use 'jeff bdd' to generate tasks.")
		return nil
	}

	formatter, err := ux.NewFormatter(bddFormat, &ux.FormatterOptions{Writer: out})
	if err != nil {
		return err
	}
	if err := formatter.Format(issue.Summarize(tasks)); err != nil {
		return err
	}

	if ux.IsText(bddFormat) {
		fmt.Fprintln(out, "\nUse 'jeff bdd --show' to see full TASKS.md.")
	}
	return nil
}

func taskIssues(cmd *cobra.Command, p *project.Project, content string, hasTasks bool) error {
	out := cmd.OutOrStdout()

	if !hasTasks {
		fmt.Fprintln(out, tasksMissing)
		return nil
	}

	all := parser.ParseTasks(content)
	if len(all) == 0 {
		fmt.Fprintln(out, "No tasks found in TASKS.md. Use 'jeff bdd' to generate tasks first.")
		return nil
	}

	tasks := issue.FilterByStatus(all, bddStatus)
	if len(tasks) == 0 {
		fmt.Fprintf(out, "No tasks with status '%s' found.\n", bddStatus)
		fmt.Fprintf(out, "Available statuses: %s\n", strings.Join(issue.Statuses(all), ", "))
		return nil
	}
	log.For("bdd").Debug("selected tasks", "status", bddStatus, "selected", len(tasks), "total", len(all))

	fmt.Fprintf(out, "Found %d tasks with status '%s':\n\n", len(tasks), bddStatus)

	settings := issueSettings(p)
	issues := make([]issue.Issue, len(tasks))
	for i, t := range tasks {
		issues[i] = issue.FromTask(t, settings)
	}

	printDraft := func(i int, iss issue.Issue) {
		t := tasks[i]
		fmt.Fprintln(out, issueRule)
		fmt.Fprintf(out, "[%s] %s\n", t.ID, t.Title)
		fmt.Fprintf(out, "Priority: %s | Source: %s\n", t.Priority, t.Source)
		fmt.Fprintln(out, issueRule)
		writeBody(out, iss.Body)
	}

	if bddCreate {
		fileIssues(cmd.Context(), out, newCreator(p.Config.GitHub.Repo), issues, printDraft)
		return nil
	}

	for i, iss := range issues {
		printDraft(i, iss)
	}
	fmt.Fprintln(out, "Use 'jeff bdd --create' to create these issues.")
	fmt.Fprintln(out, "Use 'jeff bdd --create --status <status>' to filter by a different status.")
	return nil
}

func bddOverview(out io.Writer, p *project.Project, content string, hasTasks bool) error {
	prompt, err := prompts.Get(prompts.BDD)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, prompt)
	fmt.Fprint(out, "\n---\n\n")
	fmt.Fprint(out, "## Source Artifacts\n\n")

	stories, hasMap, err := loadStories(p)
	if err != nil {
		return err
	}
	if hasMap {
		counts := countSections(stories)
		fmt.Fprintf(out, "- STORY_MAP.md: %d skeleton, %d release 1, %d future stories\n",
			counts[parser.SectionSkeleton], counts[parser.SectionRelease1], counts[parser.SectionFuture])
	} else {
		fmt.Fprintln(out, "- STORY_MAP.md: not found")
	}

	if _, ok, err := project.ReadArtifact(p.OpportunitiesFile()); err != nil {
		return err
	} else if ok {
		fmt.Fprintln(out, "- OPPORTUNITIES.md: available")
	} else {
		fmt.Fprintln(out, "- OPPORTUNITIES.md: not found")
	}

	fmt.Fprint(out, "\n## Current TASKS.md State\n\n")

	if hasTasks {
		tasks := parser.ParseTasks(content)
		if len(tasks) > 0 {
			summary := issue.Summarize(tasks)
			fmt.Fprintf(out, "Existing tasks: %d\n", summary.Total)
			for _, c := range issue.Sorted(summary.ByStatus) {
				fmt.Fprintf(out, "  - %s: %d\n", c.Label, c.N)
			}
		} else {
			fmt.Fprintln(out, "Template ready - no tasks defined yet.")
		}

		fmt.Fprint(out, "\n---\n\n")
		fmt.Fprint(out, "Current TASKS.md content:\n\n")
		fmt.Fprintln(out, content)
	} else {
		fmt.Fprintln(out, tasksMissing)
	}

	fmt.Fprintln(out, "\nUse 'jeff bdd --show' to display TASKS.md only.")
	fmt.Fprintln(out, "Use 'jeff bdd --list' to see task summary.")
	fmt.Fprintln(out, "Use 'jeff bdd --dry-run' to preview GitHub issues.")
	fmt.Fprintln(out, "Use 'jeff bdd --create' to create GitHub issues.")
	return nil
}
