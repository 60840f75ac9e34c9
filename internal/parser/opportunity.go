package parser

import (
	"regexp"
	"strings"
)

// Solution is a candidate solution listed under an opportunity.
type Solution struct {
	Opportunity string   `json:"opportunity" yaml:"opportunity"`
	Title       string   `json:"title" yaml:"title"`
	Assumptions []string `json:"assumptions" yaml:"assumptions"`
	Experiment  string   `json:"experiment" yaml:"experiment"`
}

// solutionPlaceholder prefixes the template's example solution titles.
const solutionPlaceholder = "Solution"

var (
	opportunityHeading = regexp.MustCompile(`^###\s+Opportunity\s+\d+:\s*(.+)$`)
	solutionItem       = regexp.MustCompile(`^\d+\.\s+\*\*\[?([^\]]*?)\]?\*\*(.*)$`)
	assumptionLabel    = regexp.MustCompile(`^(?:[-*]\s+)?(?:\*\*)?Assumptions?:(?:\*\*)?\s*(.*)$`)
	experimentLabel    = regexp.MustCompile(`^(?:[-*]\s+)?(?:\*\*)?Experiment:(?:\*\*)?\s*(.*)$`)
	listItem           = regexp.MustCompile(`^(?:-\s*|\*\s+)(.*)$`)
)

func isOpportunityHeading(line string) bool {
	return opportunityHeading.MatchString(strings.TrimSpace(line))
}

func isSolutionItem(line string) bool {
	return solutionItem.MatchString(strings.TrimSpace(line))
}

func isLabelLine(line string) bool {
	t := strings.TrimSpace(line)
	return assumptionLabel.MatchString(t) || experimentLabel.MatchString(t)
}

func notListItem(line string) bool {
	return !listItem.MatchString(strings.TrimSpace(line))
}

// ParseOpportunities extracts the solutions of an OPPORTUNITIES.md
// document, in document order. An opportunity runs until the next heading
// of level three or above; deeper headings stay inside it and only end the
// current solution item. Template placeholders (titles starting with
// "Solution") and empty titles are skipped.
func ParseOpportunities(content string) []Solution {
	solutions := make([]Solution, 0)
	lines := splitLines(content)

	for i := 0; i < len(lines); i++ {
		m := opportunityHeading.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])

		block, end := collectUntil(lines, i+1, isOpportunityHeading, headingAtMost(3))
		solutions = append(solutions, parseSolutions(name, block)...)
		i = end - 1
	}

	return solutions
}

// parseSolutions finds the numbered solution items inside one opportunity
// block.
func parseSolutions(opportunity string, block []string) []Solution {
	var out []Solution

	for i := 0; i < len(block); i++ {
		m := solutionItem.FindStringSubmatch(strings.TrimSpace(block[i]))
		if m == nil {
			continue
		}

		body, end := collectUntil(block, i+1, isSolutionItem, horizontalRule, anyHeading)
		i = end - 1

		title := strings.TrimSpace(m[1])
		if title == "" || strings.HasPrefix(title, solutionPlaceholder) {
			continue
		}

		if rest := strings.TrimSpace(m[2]); rest != "" {
			body = append([]string{rest}, body...)
		}

		out = append(out, Solution{
			Opportunity: opportunity,
			Title:       title,
			Assumptions: extractAssumptions(body),
			Experiment:  extractExperiment(body),
		})
	}

	return out
}

// extractAssumptions reads the "Assumption(s):" field. Text on the label
// line alone is a single assumption; list items following the label are
// one assumption each. Blank lines before and between the items are
// skipped.
func extractAssumptions(body []string) []string {
	assumptions := make([]string, 0)

	for i, raw := range body {
		m := assumptionLabel.FindStringSubmatch(strings.TrimSpace(raw))
		if m == nil {
			continue
		}
		inline := strings.TrimSpace(m[1])

		items := listItemsAfter(body, i+1)
		if len(items) == 0 {
			if inline != "" {
				assumptions = append(assumptions, inline)
			}
			return assumptions
		}

		if s := stripListMarker(inline); s != "" {
			assumptions = append(assumptions, s)
		}
		for _, item := range items {
			if s := stripListMarker(item); s != "" {
				assumptions = append(assumptions, s)
			}
		}
		return assumptions
	}

	return assumptions
}

// listItemsAfter collects the list items starting at lines[start]. The
// list ends at the first non-blank line that is not an item, or at a label.
func listItemsAfter(lines []string, start int) []string {
	var items []string
	for _, line := range lines[start:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if notListItem(line) || isLabelLine(line) {
			break
		}
		items = append(items, line)
	}
	return items
}

// extractExperiment returns the rest of the first "Experiment:" line.
func extractExperiment(body []string) string {
	for _, raw := range body {
		if m := experimentLabel.FindStringSubmatch(strings.TrimSpace(raw)); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

func stripListMarker(s string) string {
	s = strings.TrimSpace(s)
	if m := listItem.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}
