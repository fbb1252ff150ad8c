package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal(t *testing.T) {
	term := NewTerminal("monokai")
	r := NewRenderer(WithHighlighter(NewChromaHighlighter("monokai")))

	content := "Question with `code`\n" +
		"[TABLE]\nname | age\n---|---\nann | 30 | extra\n[/TABLE]\n" +
		"[CODE=go]fmt.Println(1)\nreturn[/CODE]\n" +
		"[TABLE]broken[/TABLE]\n" +
		"[NOTE]hmm[/NOTE]"

	out := term.Render(r.RenderText(content))

	assert.Contains(t, out, "Question with")
	assert.Contains(t, out, "code")
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "ann")
	assert.Contains(t, out, "extra")
	assert.Contains(t, out, "CODE: go")
	assert.Contains(t, out, "Could not parse table block:")
	assert.Contains(t, out, "[TABLE]broken[/TABLE]")
	assert.Contains(t, out, "Unknown block type 'NOTE':")
}

func TestTerminal_CodeWithoutLanguage(t *testing.T) {
	out := NewTerminal("monokai").Render(NewRenderer().RenderText("[CODE]a\nb[/CODE]"))

	assert.Contains(t, out, "CODE: text")
	assert.Contains(t, out, "1 a")
	assert.Contains(t, out, "2 b")
}

func TestTerminal_Write(t *testing.T) {
	var buf bytes.Buffer
	err := NewTerminal("monokai").Write(&buf, NewRenderer().RenderText("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello\n", buf.String())
}
