// Package issue renders story map, opportunity and task records as issue
// drafts and files them with the GitHub CLI.
package issue

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/jeff/internal/parser"
)

// Source identifies the artifact an issue was generated from.
type Source string

const (
	SourceStoryMap    Source = "story_map"
	SourceOpportunity Source = "opportunity"
	SourceTask        Source = "task"
)

// Extra labels derived from priority or origin.
const (
	LabelMVP         = "mvp"
	LabelRelease1    = "release-1"
	LabelOpportunity = "opportunity"
)

// Placeholder text used when a record leaves a section empty.
const (
	placeholderAssumptions = "_None specified_"
	placeholderExperiment  = "_Define experiment_"
	placeholderCriteria    = "- [ ] _Define acceptance criteria_"
	placeholderNotes       = "_Add technical notes and dependencies_"

	taskFooter = "---\n_Generated from TASKS.md via `jeff bdd --create`_"
)

// Issue is a draft ready to be filed.
type Issue struct {
	Title     string   `json:"title" yaml:"title"`
	Body      string   `json:"body" yaml:"body"`
	Labels    []string `json:"labels" yaml:"labels"`
	Source    Source   `json:"source" yaml:"source"`
	SourceRef string   `json:"source_ref" yaml:"source_ref"`
}

// Settings carries the configured labels and title prefix.
type Settings struct {
	Labels      []string
	TitlePrefix string
}

// baseLabels copies the configured labels so appends never reach the
// caller's slice.
func (s Settings) baseLabels(extra ...string) []string {
	labels := make([]string, 0, len(s.Labels)+len(extra))
	labels = append(labels, s.Labels...)
	return append(labels, extra...)
}

func (s Settings) title(t string) string {
	return s.TitlePrefix + t
}

// storyPriority names the release slice a story belongs to.
func storyPriority(section parser.Section) string {
	switch section {
	case parser.SectionSkeleton:
		return "MVP"
	case parser.SectionRelease1:
		return "Release 1"
	default:
		return "Future"
	}
}

// FromStory renders a story map card.
func FromStory(story parser.Story, s Settings) Issue {
	var b strings.Builder
	section(&b, "Summary", story.Title)
	section(&b, "Context", fmt.Sprintf("- **Activity:** %s\n- **Priority:** %s\n- **Source:** STORY_MAP.md",
		story.Activity, storyPriority(story.Section)))
	section(&b, "Acceptance Criteria", placeholderCriteria)
	section(&b, "Notes", placeholderNotes)

	var labels []string
	switch story.Section {
	case parser.SectionSkeleton:
		labels = s.baseLabels(LabelMVP)
	case parser.SectionRelease1:
		labels = s.baseLabels(LabelRelease1)
	default:
		labels = s.baseLabels()
	}

	return Issue{
		Title:     s.title(story.Title),
		Body:      finish(&b),
		Labels:    labels,
		Source:    SourceStoryMap,
		SourceRef: story.Activity + ": " + story.Title,
	}
}

// FromSolution renders an opportunity solution.
func FromSolution(sol parser.Solution, s Settings) Issue {
	assumptions := placeholderAssumptions
	if len(sol.Assumptions) > 0 {
		assumptions = bulletList(sol.Assumptions, "- ")
	}
	experiment := sol.Experiment
	if experiment == "" {
		experiment = placeholderExperiment
	}

	var b strings.Builder
	section(&b, "Summary", sol.Title)
	section(&b, "Context", fmt.Sprintf("- **Opportunity:** %s\n- **Source:** OPPORTUNITIES.md", sol.Opportunity))
	section(&b, "Assumptions", assumptions)
	section(&b, "Experiment", experiment)
	section(&b, "Acceptance Criteria", placeholderCriteria)
	section(&b, "Notes", placeholderNotes)

	return Issue{
		Title:     s.title(sol.Title),
		Body:      finish(&b),
		Labels:    s.baseLabels(LabelOpportunity),
		Source:    SourceOpportunity,
		SourceRef: sol.Opportunity + ": " + sol.Title,
	}
}

// FromTask renders a task from TASKS.md. The summary falls back to the
// title when the task has no description.
func FromTask(task parser.Task, s Settings) Issue {
	summary := task.Description
	if summary == "" {
		summary = task.Title
	}
	criteria := placeholderCriteria
	if len(task.AcceptanceCriteria) > 0 {
		criteria = bulletList(task.AcceptanceCriteria, "- [ ] ")
	}
	notes := task.Notes
	if notes == "" {
		notes = placeholderNotes
	}

	var b strings.Builder
	section(&b, "Summary", summary)
	section(&b, "Context", fmt.Sprintf("- **Task ID:** %s\n- **Priority:** %s\n- **Source:** %s",
		task.ID, task.Priority, task.Source))
	section(&b, "Acceptance Criteria", criteria)
	section(&b, "Notes", notes)
	b.WriteString(taskFooter)
	b.WriteString("\n")

	var labels []string
	switch strings.ToLower(task.Priority) {
	case "mvp":
		labels = s.baseLabels(LabelMVP)
	case "release 1":
		labels = s.baseLabels(LabelRelease1)
	default:
		labels = s.baseLabels()
	}

	return Issue{
		Title:     s.title(fmt.Sprintf("[%s] %s", task.ID, task.Title)),
		Body:      b.String(),
		Labels:    labels,
		Source:    SourceTask,
		SourceRef: task.ID + ": " + task.Title,
	}
}

// Collect builds the issue batch for jeff issues: walking skeleton and
// release 1 stories first, then every solution whose title is not a
// bracketed placeholder.
func Collect(stories []parser.Story, solutions []parser.Solution, s Settings) []Issue {
	var issues []Issue
	for _, story := range stories {
		if story.Section == parser.SectionSkeleton || story.Section == parser.SectionRelease1 {
			issues = append(issues, FromStory(story, s))
		}
	}
	for _, sol := range solutions {
		if strings.HasPrefix(sol.Title, "[") {
			continue
		}
		issues = append(issues, FromSolution(sol, s))
	}
	return issues
}

func section(b *strings.Builder, heading, content string) {
	fmt.Fprintf(b, "## %s\n%s\n\n", heading, content)
}

// finish drops the blank line after the last section.
func finish(b *strings.Builder) string {
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func bulletList(items []string, marker string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = marker + item
	}
	return strings.Join(lines, "\n")
}
