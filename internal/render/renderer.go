package render

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/deckstudy/internal/markup"
)

// Renderer converts parsed markup into Documents.
type Renderer struct {
	highlighter Highlighter
	logger      *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithHighlighter sets the highlighter used for code blocks with a language.
func WithHighlighter(h Highlighter) Option {
	return func(r *Renderer) {
		if h != nil {
			r.highlighter = h
		}
	}
}

// WithLogger sets the logger used for highlighting diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRenderer creates a Renderer. Without options code is not highlighted.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		highlighter: NopHighlighter{},
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(slog.String("component", "renderer"))
	return r
}

// RenderText parses content and renders the resulting blocks.
func (r *Renderer) RenderText(content string) Document {
	return r.Render(markup.Parse(content))
}

// Render produces one node per block.
func (r *Renderer) Render(blocks []markup.Block) Document {
	nodes := make([]Node, 0, len(blocks))
	for _, block := range blocks {
		nodes = append(nodes, r.renderBlock(block))
	}
	return Document{Nodes: nodes}
}

func (r *Renderer) renderBlock(block markup.Block) Node {
	switch b := block.(type) {
	case markup.TextRun:
		spans := make([]Span, len(b.Runs))
		for i, run := range b.Runs {
			spans[i] = Span{Kind: run.Kind, Text: run.Text}
		}
		return Paragraph{Spans: spans}
	case markup.Table:
		return TableNode{Headers: b.Headers, Rows: b.Rows}
	case markup.CodeBlock:
		return r.renderCode(b)
	case markup.Unrecognized:
		return diagnostic(b)
	default:
		return Diagnostic{
			Severity: markup.SeverityError,
			Title:    fmt.Sprintf("Unsupported block %T", block),
		}
	}
}

func (r *Renderer) renderCode(b markup.CodeBlock) CodeNode {
	node := CodeNode{
		Language: b.Language,
		Text:     b.Text,
		Tokens:   plainTokens(b.Text),
	}
	if b.Language == "" {
		return node
	}

	tokens, err := r.highlighter.Highlight(b.Language, b.Text)
	if err != nil {
		r.logger.Debug("code left unhighlighted",
			slog.String("language", b.Language),
			slog.String("error", err.Error()))
		return node
	}
	if len(tokens) > 0 {
		node.Tokens = tokens
		node.Highlighted = true
	}
	return node
}

func diagnostic(b markup.Unrecognized) Diagnostic {
	title := fmt.Sprintf("Unknown block type '%s'", b.Tag)
	if b.Severity == markup.SeverityError {
		title = fmt.Sprintf("Could not parse %s block", strings.ToLower(b.Tag))
	}
	return Diagnostic{Severity: b.Severity, Title: title, Raw: b.Raw}
}
