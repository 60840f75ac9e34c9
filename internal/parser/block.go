package parser

import "strings"

// lineMatcher is a predicate over a single raw document line.
type lineMatcher func(line string) bool

// splitLines splits document content into lines, accepting both LF and
// CRLF endings.
func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.Split(content, "\n")
}

// collectUntil gathers lines starting at index start up to, but not
// including, the first line matched by any of the stop predicates. It
// returns the collected lines and the index of the stopping line, which is
// len(lines) when the scan ran off the end of the document.
func collectUntil(lines []string, start int, stops ...lineMatcher) ([]string, int) {
	end := start
	for end < len(lines) && !matchesAny(lines[end], stops) {
		end++
	}
	if start >= end {
		return nil, end
	}
	block := make([]string, end-start)
	copy(block, lines[start:end])
	return block, end
}

func matchesAny(line string, preds []lineMatcher) bool {
	for _, p := range preds {
		if p(line) {
			return true
		}
	}
	return false
}

// headingLevel returns the ATX heading level of the line, or 0 when the
// line is not a heading. A heading needs a space after its hashes.
func headingLevel(line string) int {
	t := strings.TrimSpace(line)
	n := 0
	for n < len(t) && t[n] == '#' {
		n++
	}
	if n == 0 || n >= len(t) || t[n] != ' ' {
		return 0
	}
	return n
}

// anyHeading matches every ATX heading.
func anyHeading(line string) bool {
	return headingLevel(line) > 0
}

// headingAtMost returns a matcher for headings of level 1..max.
func headingAtMost(max int) lineMatcher {
	return func(line string) bool {
		l := headingLevel(line)
		return l > 0 && l <= max
	}
}

// horizontalRule matches a thematic break written with dashes.
func horizontalRule(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "---")
}

// joinBlock joins collected lines and trims surrounding whitespace.
func joinBlock(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
