// Package genseparated builds the print-items IR for a list of
// comma/newline-separated values (arguments, array elements, object
// properties, and similar constructs every language plugin needs), with the
// layout choice — one line vs. one value per line — resolved by the printer
// itself rather than decided up front by the caller.
package genseparated

import "github.com/inkrune/printcore/pkg/printitems"

// MultiLineOptions controls how the multi-line branch of a separated-values
// list is laid out.
type MultiLineOptions struct {
	NewLineAtStart     bool
	NewLineAtEnd       bool
	WithIndent         bool
	WithHangingIndent  bool
	MaintainLineBreaks bool
}

// NewLineStart is newline-then-indent at the start, nothing special at the
// end — the common case for a block body.
func NewLineStart() MultiLineOptions {
	return MultiLineOptions{NewLineAtStart: true, WithIndent: true}
}

// SurroundNewlinesIndented wraps the whole list in newlines on both sides,
// indented — the common case for delimited groups like `{ ... }`.
func SurroundNewlinesIndented() MultiLineOptions {
	return MultiLineOptions{NewLineAtStart: true, NewLineAtEnd: true, WithIndent: true}
}

// SameLineStartHangingIndent keeps the first value on the opening line and
// hanging-indents any value that wraps — the common case for call arguments.
func SameLineStartHangingIndent() MultiLineOptions {
	return MultiLineOptions{WithHangingIndent: true}
}

// SameLineNoIndent keeps everything on the opening line's indent level even
// when wrapped.
func SameLineNoIndent() MultiLineOptions {
	return MultiLineOptions{}
}

// MaintainLineBreaks makes the multi-line branch break between two values
// where the source had a line break between them; elsewhere it uses the
// single-line separator, or a newline where the previous value hangs or
// where no break has been made before the last value. Whether the list renders multi-line at all is
// still decided the usual way.
func MaintainLineBreaks() MultiLineOptions {
	return MultiLineOptions{MaintainLineBreaks: true}
}

// Options configures Generate.
type Options struct {
	// PreferHanging skips the width-driven multi-line decision and instead
	// only goes multi-line when the first (or second, if the list starts on
	// its own line) value already starts on a new line.
	PreferHanging bool
	// ForceUseNewLines always takes the multi-line branch.
	ForceUseNewLines bool
	// AllowBlankLines preserves a single blank line between two values that
	// had one in the source.
	AllowBlankLines bool
	// SingleLineSpaceAtStart/End add a leading/trailing space only when the
	// single-line branch is taken.
	SingleLineSpaceAtStart bool
	SingleLineSpaceAtEnd   bool
	// SingleLineSeparator is inserted between values on the single-line
	// branch — typically `", "` as a Signal.SpaceOrNewLine preceded by a
	// comma string, so it can still convert to a newline under width
	// pressure even while nominally "single line".
	SingleLineSeparator *printitems.List
	IndentWidth          int
	MultiLineOptions     MultiLineOptions
	// ForcePossibleNewLineAtStart lowers the indent-width threshold to zero,
	// so the single-line branch offers a possible-newline at the start
	// whenever there are values, MultiLineOptions.NewLineAtStart is set and
	// the start column is above zero.
	ForcePossibleNewLineAtStart bool
}

// LinesSpan is the source line range a value occupied, used to detect
// pre-existing blank lines and line breaks between values.
type LinesSpan struct {
	StartLine int
	EndLine   int
}

// Value is one element of the separated list.
type Value struct {
	Items                 *printitems.List
	LinesSpan             *LinesSpan
	AllowInlineMultiLine  bool
	AllowInlineSingleLine bool
}

// Result is the generated IR plus a handle onto the stored "is this list
// rendering multi-line" condition, so a caller can make decisions of its
// own contingent on the same layout choice (e.g. whether to hang a trailing
// comment off the list).
type Result struct {
	Items       *printitems.List
	IsMultiLine *printitems.Condition
}
