package render

import (
	"errors"
	"fmt"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrUnsupportedLanguage is returned by a Highlighter with no lexer for a language.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Highlighter splits code into styled tokens for a language tag.
type Highlighter interface {
	Highlight(language, code string) ([]Token, error)
}

// NopHighlighter leaves code unstyled.
type NopHighlighter struct{}

// Highlight returns no tokens.
func (NopHighlighter) Highlight(string, string) ([]Token, error) {
	return nil, nil
}

func plainTokens(code string) []Token {
	return []Token{{Type: chroma.None, Text: code}}
}

// ChromaHighlighter highlights code with chroma lexers. Lexers are looked up
// by name first, then by file extension, and cached per language tag.
type ChromaHighlighter struct {
	style *chroma.Style

	mu     sync.RWMutex
	lexers map[string]chroma.Lexer
}

// NewChromaHighlighter creates a highlighter using the named chroma style.
// Unknown style names fall back to chroma's default style.
func NewChromaHighlighter(styleName string) *ChromaHighlighter {
	return &ChromaHighlighter{
		style:  styles.Get(styleName),
		lexers: make(map[string]chroma.Lexer),
	}
}

// Style returns the chroma style used for token colours.
func (h *ChromaHighlighter) Style() *chroma.Style {
	return h.style
}

// Highlight implements Highlighter.
func (h *ChromaHighlighter) Highlight(language, code string) ([]Token, error) {
	lexer := h.lexer(language)
	if lexer == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenise %s code: %w", language, err)
	}

	chromaTokens := iterator.Tokens()
	tokens := make([]Token, 0, len(chromaTokens))
	for _, tok := range chromaTokens {
		if tok.Value == "" {
			continue
		}
		tokens = append(tokens, Token{Type: tok.Type, Text: tok.Value})
	}
	return tokens, nil
}

func (h *ChromaHighlighter) lexer(language string) chroma.Lexer {
	if language == "" {
		return nil
	}

	h.mu.RLock()
	lexer, ok := h.lexers[language]
	h.mu.RUnlock()
	if ok {
		return lexer
	}

	lexer = lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Match("file." + language)
	}
	if lexer != nil {
		lexer = chroma.Coalesce(lexer)
	}

	// Misses are cached too.
	h.mu.Lock()
	h.lexers[language] = lexer
	h.mu.Unlock()
	return lexer
}
