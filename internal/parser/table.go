package parser

import "strings"

// SplitRow parses a markdown table row into its trimmed, non-empty cells.
// The empty cells produced by leading and trailing pipes are dropped, as
// are any blank cells in between.
func SplitRow(row string) []string {
	if !strings.Contains(row, "|") {
		return []string{}
	}
	parts := strings.Split(row, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := strings.TrimSpace(p); c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}

// isTableRow reports whether the trimmed line opens with a pipe.
func isTableRow(line string) bool {
	return strings.HasPrefix(line, "|")
}

// isSeparatorRow reports whether a table row is the header separator.
func isSeparatorRow(line string) bool {
	return strings.Contains(line, "---")
}

// isPlaceholder reports whether a cell holds template guidance text.
func isPlaceholder(cell string) bool {
	return strings.HasPrefix(strings.TrimSpace(cell), "_")
}
