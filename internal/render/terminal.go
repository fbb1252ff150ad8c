package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/phrazzld/deckstudy/internal/markup"
)

// Terminal writes Documents as styled terminal text.
type Terminal struct {
	chromaStyle *chroma.Style

	inlineCode  lipgloss.Style
	tableBorder lipgloss.Style
	tableHeader lipgloss.Style
	tableCell   lipgloss.Style
	codePanel   lipgloss.Style
	codeTitle   lipgloss.Style
	lineNumber  lipgloss.Style
	warning     lipgloss.Style
	failure     lipgloss.Style
}

// NewTerminal creates a terminal writer whose code colours come from the named
// chroma style.
func NewTerminal(theme string) *Terminal {
	return &Terminal{
		chromaStyle: styles.Get(theme),

		inlineCode:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		tableBorder: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		tableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")).Padding(0, 1),
		tableCell:   lipgloss.NewStyle().Padding(0, 1),
		codePanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("2")).
			Padding(0, 1),
		codeTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		lineNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		failure:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}

// Write renders doc to w followed by a newline.
func (t *Terminal) Write(w io.Writer, doc Document) error {
	_, err := fmt.Fprintln(w, t.Render(doc))
	return err
}

// Render returns doc as styled text, one node per paragraph.
func (t *Terminal) Render(doc Document) string {
	parts := make([]string, 0, len(doc.Nodes))
	for _, node := range doc.Nodes {
		parts = append(parts, t.renderNode(node))
	}
	return strings.Join(parts, "\n\n")
}

func (t *Terminal) renderNode(node Node) string {
	switch n := node.(type) {
	case Paragraph:
		return t.paragraph(n)
	case TableNode:
		return t.table(n)
	case CodeNode:
		return t.code(n)
	case Diagnostic:
		return t.diagnostic(n)
	default:
		return ""
	}
}

func (t *Terminal) paragraph(p Paragraph) string {
	var b strings.Builder
	for _, span := range p.Spans {
		switch span.Kind {
		case markup.RunCode:
			b.WriteString(t.inlineCode.Render(span.Text))
		case markup.RunBreak:
			b.WriteByte('\n')
		default:
			b.WriteString(span.Text)
		}
	}
	return b.String()
}

func (t *Terminal) table(n TableNode) string {
	// Long rows get blank headers so every cell has a column.
	headers := n.Headers
	width := len(headers)
	for _, row := range n.Rows {
		width = max(width, len(row))
	}
	if width > len(headers) {
		headers = make([]string, width)
		copy(headers, n.Headers)
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(t.tableBorder).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.tableHeader
			}
			return t.tableCell
		}).
		Headers(headers...).
		Rows(n.Rows...)

	return tbl.Render()
}

func (t *Terminal) code(n CodeNode) string {
	lang := n.Language
	if lang == "" {
		lang = "text"
	}

	var b strings.Builder
	for _, tok := range n.Tokens {
		style := t.tokenStyle(tok.Type, n.Highlighted)
		for i, piece := range strings.Split(tok.Text, "\n") {
			if i > 0 {
				b.WriteByte('\n')
			}
			if piece != "" {
				b.WriteString(style.Render(piece))
			}
		}
	}

	lines := strings.Split(b.String(), "\n")
	width := len(strconv.Itoa(len(lines)))
	for i, line := range lines {
		lines[i] = t.lineNumber.Render(fmt.Sprintf("%*d", width, i+1)) + " " + line
	}

	body := t.codeTitle.Render("CODE: "+lang) + "\n" + strings.Join(lines, "\n")
	return t.codePanel.Render(body)
}

func (t *Terminal) tokenStyle(tokenType chroma.TokenType, highlighted bool) lipgloss.Style {
	if !highlighted {
		return lipgloss.NewStyle()
	}
	return chromaToLipgloss(tokenType, t.chromaStyle)
}

func chromaToLipgloss(tokenType chroma.TokenType, style *chroma.Style) lipgloss.Style {
	entry := style.Get(tokenType)
	lipStyle := lipgloss.NewStyle()

	if entry.Colour.IsSet() {
		lipStyle = lipStyle.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		lipStyle = lipStyle.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		lipStyle = lipStyle.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		lipStyle = lipStyle.Underline(true)
	}
	return lipStyle
}

func (t *Terminal) diagnostic(d Diagnostic) string {
	style := t.warning
	if d.Severity == markup.SeverityError {
		style = t.failure
	}
	return style.Render(d.Title+":") + "\n" + d.Raw
}
