package markup

import "strings"

// parseTable reads a pipe-delimited table body. The first non-blank line is
// the header, the second is a separator and is skipped unchecked, the rest are
// rows. Fewer than two non-blank lines is a failure.
func parseTable(body string) (Table, bool) {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return Table{}, false
	}

	headers := splitCells(lines[0])

	rows := make([][]string, 0, len(lines)-2)
	for _, line := range lines[2:] {
		cells := splitCells(line)
		for len(cells) < len(headers) {
			cells = append(cells, "")
		}
		rows = append(rows, cells)
	}

	return Table{Headers: headers, Rows: rows}, true
}

func splitCells(line string) []string {
	cells := strings.Split(line, "|")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}
