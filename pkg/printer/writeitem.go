package printer

import "strings"

// WriteItemKind distinguishes the handful of things a Writer ever emits.
type WriteItemKind int

const (
	WriteNewLine WriteItemKind = iota
	WriteTab
	WriteSpace
	WriteIndent
	WriteString
)

// WriteItem is one element of the writer's output, in the order
// {NewLine, Tab, Space, Indent(level), String(text)} (original §6.2). The
// writer produces these as a reverse linked list (each item only knows its
// predecessor) so that restoring to an earlier save-point is just moving a
// tail pointer back; a separate forward pass (Writer.WriteItems) reverses
// the list once printing is done.
type WriteItem struct {
	Kind        WriteItemKind
	IndentLevel int // meaningful for WriteIndent
	Text        string
	Prev        *WriteItem
}

// Stringify walks write-items in forward order (as returned by
// Writer.WriteItems) and renders them to final text using cfg's indent
// width/use-tabs/new-line-kind settings.
func Stringify(items []*WriteItem, cfg Config) string {
	var b strings.Builder
	unit := cfg.indentUnit()
	nl := cfg.newLineString()
	for _, it := range items {
		switch it.Kind {
		case WriteNewLine:
			b.WriteString(nl)
		case WriteTab:
			b.WriteString(unit)
		case WriteSpace:
			b.WriteByte(' ')
		case WriteIndent:
			for i := 0; i < it.IndentLevel; i++ {
				b.WriteString(unit)
			}
		case WriteString:
			b.WriteString(it.Text)
		}
	}
	return b.String()
}
