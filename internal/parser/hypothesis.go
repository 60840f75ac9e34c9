package parser

import (
	"regexp"
	"strings"

	"github.com/felixgeelhaar/jeff/internal/errors"
)

// StatusUnknown is reported for hypotheses without a status field.
const StatusUnknown = "Unknown"

// Hypothesis is one entry of HYPOTHESES.md.
type Hypothesis struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Status string `json:"status" yaml:"status"`
	Body   string `json:"-" yaml:"-"`
}

var (
	hypothesisHeading     = regexp.MustCompile(`^###\s+(H\d+):\s*(.+)$`)
	hypothesisHeadingFold = regexp.MustCompile(`(?i)^###\s+(H\d+):\s*(.+)$`)
)

const statusLabel = "**Status:**"

func matchTrimmed(re *regexp.Regexp) lineMatcher {
	return func(line string) bool {
		return re.MatchString(strings.TrimSpace(line))
	}
}

// ParseHypotheses lists every hypothesis block in document order. A block
// runs until the next hypothesis heading, a first or second level heading,
// or the end of the document.
func ParseHypotheses(content string) []Hypothesis {
	return hypothesisBlocks(content, hypothesisHeading, func(string) bool { return true })
}

// FindHypothesis returns the block whose id matches id, ignoring case. It
// fails with a HYPOTHESIS-001 error when no block matches.
func FindHypothesis(content, id string) (Hypothesis, error) {
	want := strings.TrimSpace(id)
	found := hypothesisBlocks(content, hypothesisHeadingFold, func(got string) bool {
		return strings.EqualFold(got, want)
	})
	if len(found) == 0 {
		return Hypothesis{}, errors.NewHypothesisNotFoundError(id)
	}
	return found[0], nil
}

func hypothesisBlocks(content string, heading *regexp.Regexp, keep func(id string) bool) []Hypothesis {
	hypotheses := make([]Hypothesis, 0)
	lines := splitLines(content)

	for i := 0; i < len(lines); i++ {
		m := heading.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if m == nil {
			continue
		}

		body, end := collectUntil(lines, i+1, matchTrimmed(heading), headingAtMost(2))
		i = end - 1

		if !keep(m[1]) {
			continue
		}
		hypotheses = append(hypotheses, Hypothesis{
			ID:     m[1],
			Name:   strings.TrimSpace(m[2]),
			Status: extractStatus(body),
			Body:   joinBlock(body),
		})
	}

	return hypotheses
}

// extractStatus reads the value after the **Status:** label. A label with
// nothing after it takes the next non-blank line.
func extractStatus(body []string) string {
	for i, raw := range body {
		idx := strings.Index(raw, statusLabel)
		if idx < 0 {
			continue
		}
		if v := strings.TrimSpace(raw[idx+len(statusLabel):]); v != "" {
			return v
		}
		for _, next := range body[i+1:] {
			if v := strings.TrimSpace(next); v != "" {
				return v
			}
		}
	}
	return StatusUnknown
}
