package markup

import "strings"

// splitInline breaks plain text into text and inline code runs. Code spans sit
// between two backticks with no escaping; an unpaired backtick is literal.
// Newlines in text runs become break runs.
func splitInline(text string) []Run {
	var runs []Run

	for text != "" {
		open := strings.IndexByte(text, '`')
		if open < 0 {
			break
		}
		closeAt := strings.IndexByte(text[open+1:], '`')
		if closeAt < 0 {
			break
		}
		closeAt += open + 1

		runs = appendPlain(runs, text[:open])
		if code := text[open+1 : closeAt]; code != "" {
			runs = append(runs, Run{Kind: RunCode, Text: code})
		}
		text = text[closeAt+1:]
	}

	return appendPlain(runs, text)
}

func appendPlain(runs []Run, text string) []Run {
	if text == "" {
		return runs
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			runs = append(runs, Run{Kind: RunBreak})
		}
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			runs = append(runs, Run{Kind: RunText, Text: line})
		}
	}
	return runs
}
