package render

import (
	"html"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/phrazzld/deckstudy/internal/markup"
)

var classPattern = regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)

var htmlPolicy = newHTMLPolicy()

func newHTMLPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy().
		AllowElements("p", "br", "strong", "span", "div", "pre", "code").
		AllowElements("table", "thead", "tbody", "tr", "th", "td")
	policy.AllowAttrs("class").Matching(classPattern).OnElements("span", "div", "pre", "code")
	return policy
}

// HTML renders doc as sanitized HTML. Code blocks use
// <pre><code class="language-xxx"> so a browser-side highlighter can pick
// them up; highlighted tokens carry chroma's short CSS class names.
func HTML(doc Document) string {
	var b strings.Builder
	for _, node := range doc.Nodes {
		switch n := node.(type) {
		case Paragraph:
			writeParagraphHTML(&b, n)
		case TableNode:
			writeTableHTML(&b, n)
		case CodeNode:
			writeCodeHTML(&b, n)
		case Diagnostic:
			writeDiagnosticHTML(&b, n)
		}
	}
	return htmlPolicy.Sanitize(b.String())
}

func writeParagraphHTML(b *strings.Builder, p Paragraph) {
	b.WriteString("<p>")
	for _, span := range p.Spans {
		switch span.Kind {
		case markup.RunCode:
			b.WriteString("<code>" + html.EscapeString(span.Text) + "</code>")
		case markup.RunBreak:
			b.WriteString("<br>")
		default:
			b.WriteString(html.EscapeString(span.Text))
		}
	}
	b.WriteString("</p>")
}

func writeTableHTML(b *strings.Builder, t TableNode) {
	b.WriteString("<table><thead><tr>")
	for _, h := range t.Headers {
		b.WriteString("<th>" + html.EscapeString(h) + "</th>")
	}
	b.WriteString("</tr></thead><tbody>")
	for _, row := range t.Rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>" + html.EscapeString(cell) + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
}

func writeCodeHTML(b *strings.Builder, c CodeNode) {
	if c.Language != "" {
		b.WriteString(`<pre><code class="language-` + html.EscapeString(c.Language) + `">`)
	} else {
		b.WriteString("<pre><code>")
	}
	for _, tok := range c.Tokens {
		text := html.EscapeString(tok.Text)
		class := chroma.StandardTypes[tok.Type]
		if !c.Highlighted || class == "" {
			b.WriteString(text)
			continue
		}
		b.WriteString(`<span class="` + class + `">` + text + "</span>")
	}
	b.WriteString("</code></pre>")
}

func writeDiagnosticHTML(b *strings.Builder, d Diagnostic) {
	b.WriteString(`<div class="block-diagnostic severity-` + d.Severity.String() + `">`)
	b.WriteString("<strong>" + html.EscapeString(d.Title) + ":</strong>")
	b.WriteString("<pre>" + html.EscapeString(d.Raw) + "</pre>")
	b.WriteString("</div>")
}
