// Package markup parses the lightweight markup stored on card sides.
//
// Card text is plain prose with optional inline code spans delimited by
// backticks, plus top-level tagged blocks:
//
//	[TABLE]
//	a | b
//	--|--
//	1 | 2
//	[/TABLE]
//
//	[CODE=go]fmt.Println("hi")[/CODE]
//
// Parse turns a card side into an ordered sequence of Blocks. It never fails:
// malformed or unknown blocks come back as Unrecognized values so callers can
// show them as diagnostics next to the rest of the card.
package markup
