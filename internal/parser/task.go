package parser

import (
	"regexp"
	"sort"
	"strings"
)

// Task is an implementation task from TASKS.md.
type Task struct {
	ID                 string   `json:"id" yaml:"id"`
	Title              string   `json:"title" yaml:"title"`
	Priority           string   `json:"priority" yaml:"priority"`
	Source             string   `json:"source" yaml:"source"`
	Status             string   `json:"status" yaml:"status"`
	Description        string   `json:"description,omitempty" yaml:"description,omitempty"`
	AcceptanceCriteria []string `json:"acceptance_criteria" yaml:"acceptance_criteria"`
	Notes              string   `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// taskField is the detail field currently receiving lines.
type taskField int

const (
	fieldNone taskField = iota
	fieldDescription
	fieldCriteria
	fieldNotes
)

var taskFieldLabels = []struct {
	label string
	field taskField
}{
	{"**Description:**", fieldDescription},
	{"**Acceptance Criteria:**", fieldCriteria},
	{"**Notes:**", fieldNotes},
}

// summaryColumns is the number of cells a summary row needs:
// id, title, priority, source, status.
const summaryColumns = 5

var (
	taskHeading  = regexp.MustCompile(`^###\s+(T\d+):\s+(.+)$`)
	checkboxItem = regexp.MustCompile(`^-\s*\[.\]\s*(.+)$`)
)

// ParseTasks merges the TASKS.md summary table with the per-task detail
// sections. Only ids present in the summary table produce tasks; detail
// sections for other ids are dropped. Tasks are ordered by id compared as
// plain strings, so T10 sorts before T2.
func ParseTasks(content string) []Task {
	lines := splitLines(content)
	byID := parseTaskTable(lines)

	for i := 0; i < len(lines); i++ {
		m := taskHeading.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if m == nil {
			continue
		}

		section, end := collectUntil(lines, i+1, matchTrimmed(taskHeading))
		i = end - 1

		if task, ok := byID[m[1]]; ok {
			applyTaskDetail(task, section)
		}
	}

	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	tasks := make([]Task, 0, len(ids))
	for _, id := range ids {
		tasks = append(tasks, *byID[id])
	}
	return tasks
}

// parseTaskTable reads every "| T" row with enough cells. A later row
// with the same id replaces an earlier one.
func parseTaskTable(lines []string) map[string]*Task {
	byID := make(map[string]*Task)
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if !strings.HasPrefix(line, "| T") {
			continue
		}
		cells := SplitRow(line)
		if len(cells) < summaryColumns {
			continue
		}
		byID[cells[0]] = &Task{
			ID:                 cells[0],
			Title:              cells[1],
			Priority:           cells[2],
			Source:             cells[3],
			Status:             cells[4],
			AcceptanceCriteria: []string{},
		}
	}
	return byID
}

// applyTaskDetail runs the field state machine over one task's detail
// section and stores the result on the task, replacing any earlier
// section for the same id.
func applyTaskDetail(task *Task, section []string) {
	var (
		field       = fieldNone
		description []string
		criteria    = []string{}
		notes       []string
	)

	for _, raw := range section {
		line := strings.TrimSpace(raw)

		if next, rest, ok := fieldTransition(line); ok {
			field = next
			if rest == "" {
				continue
			}
			raw, line = rest, rest
		} else if anyHeading(line) {
			field = fieldNone
			continue
		}

		switch field {
		case fieldDescription:
			description = append(description, raw)
		case fieldCriteria:
			if m := checkboxItem.FindStringSubmatch(line); m != nil {
				if c := strings.TrimSpace(m[1]); c != "" {
					criteria = append(criteria, c)
				}
			}
		case fieldNotes:
			notes = append(notes, raw)
		}
	}

	task.Description = joinBlock(description)
	task.AcceptanceCriteria = criteria
	task.Notes = joinBlock(notes)
}

// fieldTransition recognises the bold label lines of a task section. Known
// labels select their field; any other bold label selects none. The text
// following a known label on the same line is returned as rest.
func fieldTransition(line string) (taskField, string, bool) {
	for _, l := range taskFieldLabels {
		if strings.HasPrefix(line, l.label) {
			return l.field, strings.TrimSpace(strings.TrimPrefix(line, l.label)), true
		}
	}
	if strings.HasPrefix(line, "**") {
		return fieldNone, "", true
	}
	return fieldNone, "", false
}
