package render

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/phrazzld/deckstudy/internal/markup"
)

// Node is one element of a rendered Document. The concrete types are
// Paragraph, TableNode, CodeNode and Diagnostic.
type Node interface {
	isNode()
}

// Document is the rendered form of one card side: one node per block, in order.
type Document struct {
	Nodes []Node
}

// Span is a piece of a paragraph.
type Span struct {
	Kind markup.RunKind
	Text string
}

// Paragraph renders a markup.TextRun.
type Paragraph struct {
	Spans []Span
}

// TableNode renders a markup.Table.
type TableNode struct {
	Headers []string
	Rows    [][]string
}

// Token is a highlighted fragment of code.
type Token struct {
	Type chroma.TokenType
	Text string
}

// CodeNode renders a markup.CodeBlock. Highlighted is false when no
// highlighter handled the language; Tokens then holds the text as one token.
type CodeNode struct {
	Language    string
	Text        string
	Tokens      []Token
	Highlighted bool
}

// Diagnostic renders a markup.Unrecognized block.
type Diagnostic struct {
	Severity markup.Severity
	Title    string
	Raw      string
}

func (Paragraph) isNode()  {}
func (TableNode) isNode()  {}
func (CodeNode) isNode()   {}
func (Diagnostic) isNode() {}
