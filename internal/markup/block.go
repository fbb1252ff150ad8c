package markup

// Block is one unit of parsed card markup. The concrete types are TextRun,
// Table, CodeBlock and Unrecognized.
type Block interface {
	isBlock()
}

// RunKind identifies the kind of a Run inside a TextRun.
type RunKind int

// Run kinds
const (
	RunText RunKind = iota
	RunCode
	RunBreak
)

// String returns the name of the run kind.
func (k RunKind) String() string {
	switch k {
	case RunText:
		return "text"
	case RunCode:
		return "code"
	case RunBreak:
		return "break"
	default:
		return "unknown"
	}
}

// Run is a span of text inside a paragraph. Break runs carry no text.
type Run struct {
	Kind RunKind
	Text string
}

// TextRun is a paragraph-like segment of plain text between blocks.
type TextRun struct {
	Runs []Run
}

// Table is a parsed [TABLE] block. Rows shorter than Headers are padded with
// empty cells; longer rows are kept as written.
type Table struct {
	Headers []string
	Rows    [][]string
}

// CodeBlock is a parsed [CODE] block. Language is lower-cased and empty when
// the block had no parameter.
type CodeBlock struct {
	Language string
	Text     string
}

// Severity grades an Unrecognized block.
type Severity int

// Severities
const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns "warning" or "error".
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Unrecognized is a tagged block that could not be rendered as intended:
// a table body that failed to parse (SeverityError) or an unknown tag
// (SeverityWarning). Raw holds the block exactly as written, markers included.
type Unrecognized struct {
	Tag      string
	Raw      string
	Severity Severity
}

func (TextRun) isBlock()      {}
func (Table) isBlock()        {}
func (CodeBlock) isBlock()    {}
func (Unrecognized) isBlock() {}
