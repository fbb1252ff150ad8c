package markup

import (
	"strings"
	"unicode"
)

// Tag names with dedicated handling.
const (
	TagTable = "TABLE"
	TagCode  = "CODE"
)

// marker is a matched [TAG]...[/TAG] or [TAG=param]...[/TAG] region.
type marker struct {
	tag   string
	param string
	body  string
	start int // offset of the opening '['
	end   int // offset just past the closing ']'
}

// Parse splits content into blocks in document order. Parsing is pure: the
// same input always yields the same blocks.
func Parse(content string) []Block {
	var blocks []Block

	last := 0
	pos := 0
	for pos < len(content) {
		i := strings.IndexByte(content[pos:], '[')
		if i < 0 {
			break
		}
		start := pos + i

		m, ok := matchMarker(content, start)
		if !ok {
			pos = start + 1
			continue
		}

		blocks = appendText(blocks, content[last:m.start])
		blocks = append(blocks, dispatch(content, m))
		last = m.end
		pos = m.end
	}

	return appendText(blocks, content[last:])
}

// matchMarker tries to read an opening marker at start and find the first
// closing marker for the same tag after it. Bodies are not scanned for nested
// markers.
func matchMarker(content string, start int) (marker, bool) {
	i := start + 1

	tagStart := i
	for i < len(content) && isTagByte(content[i]) {
		i++
	}
	if i == tagStart {
		return marker{}, false
	}
	tag := content[tagStart:i]

	var param string
	if i < len(content) && content[i] == '=' {
		i++
		paramStart := i
		for i < len(content) && isParamByte(content[i]) {
			i++
		}
		if i == paramStart {
			return marker{}, false
		}
		param = content[paramStart:i]
	}

	if i >= len(content) || content[i] != ']' {
		return marker{}, false
	}
	bodyStart := i + 1

	closer := "[/" + tag + "]"
	j := strings.Index(content[bodyStart:], closer)
	if j < 0 {
		return marker{}, false
	}
	bodyEnd := bodyStart + j

	return marker{
		tag:   tag,
		param: param,
		body:  content[bodyStart:bodyEnd],
		start: start,
		end:   bodyEnd + len(closer),
	}, true
}

func isTagByte(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func isParamByte(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_' || b == '-'
}

func dispatch(content string, m marker) Block {
	raw := content[m.start:m.end]

	switch m.tag {
	case TagTable:
		table, ok := parseTable(strings.TrimSpace(m.body))
		if !ok {
			return Unrecognized{Tag: m.tag, Raw: raw, Severity: SeverityError}
		}
		return table
	case TagCode:
		return codeBlock(m.param, m.body)
	default:
		return Unrecognized{Tag: m.tag, Raw: raw, Severity: SeverityWarning}
	}
}

func codeBlock(param, body string) CodeBlock {
	lang := strings.ToLower(param)
	text := strings.TrimSpace(body)

	// Authors often repeat the language on the first line of SQL bodies.
	if lang == "sql" {
		text = stripSQLPrefix(text)
	}

	return CodeBlock{Language: lang, Text: text}
}

// stripSQLPrefix removes a leading case-insensitive "sql" followed by
// whitespace.
func stripSQLPrefix(text string) string {
	const prefix = "sql"
	if len(text) <= len(prefix) || !strings.EqualFold(text[:len(prefix)], prefix) {
		return text
	}
	rest := text[len(prefix):]
	trimmed := strings.TrimLeftFunc(rest, unicode.IsSpace)
	if len(trimmed) == len(rest) {
		return text
	}
	return trimmed
}

func appendText(blocks []Block, segment string) []Block {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return blocks
	}
	return append(blocks, TextRun{Runs: splitInline(segment)})
}
