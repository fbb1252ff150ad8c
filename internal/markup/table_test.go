package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTable(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected Table
		ok       bool
	}{
		{
			name: "short rows padded",
			body: "a | b | c\n---|---|---\n1 | 2",
			expected: Table{
				Headers: []string{"a", "b", "c"},
				Rows:    [][]string{{"1", "2", ""}},
			},
			ok: true,
		},
		{
			name: "long rows kept",
			body: "a | b\n-\n1 | 2 | 3",
			expected: Table{
				Headers: []string{"a", "b"},
				Rows:    [][]string{{"1", "2", "3"}},
			},
			ok: true,
		},
		{
			name: "separator not validated",
			body: "name\nanything at all\nx",
			expected: Table{
				Headers: []string{"name"},
				Rows:    [][]string{{"x"}},
			},
			ok: true,
		},
		{
			name: "header only with separator",
			body: "a | b\n---",
			expected: Table{
				Headers: []string{"a", "b"},
				Rows:    [][]string{},
			},
			ok: true,
		},
		{
			name: "blank lines skipped and order kept",
			body: "k | v\n\n--|--\n\nz | 26\n   \na | 1",
			expected: Table{
				Headers: []string{"k", "v"},
				Rows:    [][]string{{"z", "26"}, {"a", "1"}},
			},
			ok: true,
		},
		{
			name: "outer pipes keep empty cells",
			body: "| a | b |\n|---|---|\n| 1 | 2 |",
			expected: Table{
				Headers: []string{"", "a", "b", ""},
				Rows:    [][]string{{"", "1", "2", ""}},
			},
			ok: true,
		},
		{
			name: "single line",
			body: "a | b",
			ok:   false,
		},
		{
			name: "empty",
			body: "",
			ok:   false,
		},
		{
			name: "blank lines only",
			body: "\n  \n",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, ok := parseTable(tt.body)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, table)
		})
	}
}
