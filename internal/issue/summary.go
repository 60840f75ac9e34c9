package issue

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/felixgeelhaar/jeff/internal/parser"
)

// Summary tallies tasks by lower-cased status and priority.
type Summary struct {
	Total      int            `json:"total" yaml:"total"`
	ByStatus   map[string]int `json:"by_status" yaml:"by_status"`
	ByPriority map[string]int `json:"by_priority" yaml:"by_priority"`
}

// Count is one histogram entry.
type Count struct {
	Label string
	N     int
}

// Summarize computes the task tally.
func Summarize(tasks []parser.Task) Summary {
	s := Summary{
		Total:      len(tasks),
		ByStatus:   make(map[string]int),
		ByPriority: make(map[string]int),
	}
	for _, t := range tasks {
		s.ByStatus[strings.ToLower(t.Status)]++
		s.ByPriority[strings.ToLower(t.Priority)]++
	}
	return s
}

// Sorted returns histogram entries ordered by label.
func Sorted(histogram map[string]int) []Count {
	counts := make([]Count, 0, len(histogram))
	for label, n := range histogram {
		counts = append(counts, Count{Label: label, N: n})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Label < counts[j].Label })
	return counts
}

// RenderText prints the summary the way jeff bdd --list shows it.
func (s Summary) RenderText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Task Summary: %d total tasks\n\n", s.Total)
	b.WriteString("By Status:\n")
	for _, c := range Sorted(s.ByStatus) {
		fmt.Fprintf(&b, "  %s: %d\n", c.Label, c.N)
	}
	b.WriteString("\nBy Priority:\n")
	for _, c := range Sorted(s.ByPriority) {
		fmt.Fprintf(&b, "  %s: %d\n", c.Label, c.N)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// FilterByStatus keeps the tasks whose status matches, ignoring case.
func FilterByStatus(tasks []parser.Task, status string) []parser.Task {
	var out []parser.Task
	for _, t := range tasks {
		if strings.EqualFold(t.Status, status) {
			out = append(out, t)
		}
	}
	return out
}

// Statuses returns the distinct statuses in first-seen order.
func Statuses(tasks []parser.Task) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range tasks {
		if !seen[t.Status] {
			seen[t.Status] = true
			out = append(out, t.Status)
		}
	}
	return out
}
