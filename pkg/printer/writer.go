package printer

import (
	"unicode/utf8"

	"github.com/inkrune/printcore/pkg/printitems"
)

// WriterState is the writer's full position/bookkeeping, value-copied into
// save-points (original §3.3/§3.4). Items is the tail of a reverse linked
// list; copying WriterState by value is enough to snapshot it, since the
// list itself is never mutated in place — only ever grown from the current
// tail or abandoned in favor of an earlier one on restore.
type WriterState struct {
	CurrentLineColumn       int
	CurrentLineNumber       int
	IndentLevel             int
	LastLineIndentLevel     int
	IndentQueueCount        int
	IgnoreIndentCount       int
	ExpectNewLineNext       bool
	LastWasNotTrailingSpace bool
	Items                   *WriteItem
}

// Writer is an append-only emitter of write-items. It owns column/line/
// indent state and handles queued indent, ignored indent, and forced-no-
// newline regions are handled one level up, by the printer loop (since they
// gate whether a NewLine signal reaches the writer at all).
type Writer struct {
	cfg   Config
	items printitems.Chunk[WriteItem]
	state WriterState
}

// NewWriter returns a writer starting at line 0, column 0, with zero indent.
func NewWriter(cfg Config) *Writer {
	return &Writer{cfg: cfg}
}

// GetState returns a snapshot of the current state (cheap: one struct copy).
func (w *Writer) GetState() WriterState { return w.state }

// SetState restores a previously captured snapshot.
func (w *Writer) SetState(s WriterState) { w.state = s }

// EffectiveColumn is current_line_column if non-zero, else
// indent_level*indent_width (original §3.5 invariant).
func (w *Writer) EffectiveColumn() int {
	if w.state.CurrentLineColumn != 0 {
		return w.state.CurrentLineColumn
	}
	return w.state.IndentLevel * w.cfg.indentWidth()
}

// CurrentWriterInfo snapshots the position an Info/Condition item observes.
func (w *Writer) CurrentWriterInfo() printitems.WriterInfo {
	return printitems.WriterInfo{
		LineNumber:      w.state.CurrentLineNumber,
		ColumnNumber:    w.EffectiveColumn(),
		IsStartOfLine:   w.state.CurrentLineColumn == 0,
		IndentLevel:     w.state.IndentLevel,
		LineStartColumn: w.state.LastLineIndentLevel * w.cfg.indentWidth(),
		LineStartIndent: w.state.LastLineIndentLevel,
	}
}

func (w *Writer) pushItem(kind WriteItemKind, indentLevel int, text string) {
	it := w.items.Alloc()
	it.Kind = kind
	it.IndentLevel = indentLevel
	it.Text = text
	it.Prev = w.state.Items
	w.state.Items = it
}

func (w *Writer) popItem() {
	if w.state.Items != nil {
		w.state.Items = w.state.Items.Prev
	}
}

// handleBeforeWrite realizes any queued indent, forces a pending
// expect-newline, and emits leading indentation at column zero (original
// §4.3.1). It runs before every write-producing call.
func (w *Writer) handleBeforeWrite() {
	if w.state.IndentQueueCount > 0 {
		w.state.IndentLevel += w.state.IndentQueueCount
		w.state.IndentQueueCount = 0
	}
	if w.state.ExpectNewLineNext {
		if w.state.CurrentLineColumn != 0 {
			w.forceNewLineRaw()
		}
		w.state.ExpectNewLineNext = false
	}
	if w.state.CurrentLineColumn == 0 && w.state.IndentLevel > 0 && w.state.IgnoreIndentCount == 0 {
		w.pushItem(WriteIndent, w.state.IndentLevel, "")
		w.state.CurrentLineColumn = w.state.IndentLevel * w.cfg.indentWidth()
	}
}

func (w *Writer) forceNewLineRaw() {
	w.pushItem(WriteNewLine, 0, "")
	w.state.CurrentLineNumber++
	w.state.CurrentLineColumn = 0
	w.state.LastLineIndentLevel = w.state.IndentLevel
}

// Write appends text (which must contain no '\t' or '\n') as a String
// write-item, after handling pending indentation.
func (w *Writer) Write(text string) {
	w.handleBeforeWrite()
	w.pushItem(WriteString, 0, text)
	w.state.CurrentLineColumn += utf8.RuneCountInString(text)
	w.state.LastWasNotTrailingSpace = false
}

// NewLine appends a newline, popping a pending space-if-not-trailing first.
func (w *Writer) NewLine() {
	if w.state.LastWasNotTrailingSpace {
		w.popItem()
		w.state.CurrentLineColumn--
		w.state.LastWasNotTrailingSpace = false
	}
	w.forceNewLineRaw()
	w.state.ExpectNewLineNext = false
}

// SingleIndent emits exactly one indent unit.
func (w *Writer) SingleIndent() {
	w.handleBeforeWrite()
	w.pushItem(WriteIndent, 1, "")
	w.state.CurrentLineColumn += w.cfg.indentWidth()
	w.state.LastWasNotTrailingSpace = false
}

// Tab emits a tab, advancing the column by the indent width.
func (w *Writer) Tab() {
	w.handleBeforeWrite()
	w.pushItem(WriteTab, 0, "")
	w.state.CurrentLineColumn += w.cfg.indentWidth()
	w.state.LastWasNotTrailingSpace = false
}

// Space emits an ordinary space.
func (w *Writer) Space() {
	w.handleBeforeWrite()
	w.pushItem(WriteSpace, 0, "")
	w.state.CurrentLineColumn++
	w.state.LastWasNotTrailingSpace = false
}

// SpaceIfNotTrailing emits a space that a subsequent NewLine must pop rather
// than leave as trailing whitespace. If a newline is already expected next,
// this is a complete no-op: the pending newline will consume whatever comes
// after it, so emitting a space now would leave a stray blank line once
// handleBeforeWrite later realizes the expected newline.
func (w *Writer) SpaceIfNotTrailing() {
	if w.state.ExpectNewLineNext {
		return
	}
	w.handleBeforeWrite()
	w.pushItem(WriteSpace, 0, "")
	w.state.CurrentLineColumn++
	w.state.LastWasNotTrailingSpace = true
}

// StartIndent increments the indent level.
func (w *Writer) StartIndent() { w.state.IndentLevel++ }

// FinishIndent decrements the indent level, or cancels a queued indent that
// hasn't been realized into the indent level yet.
func (w *Writer) FinishIndent() {
	if w.state.IndentQueueCount > 0 {
		w.state.IndentQueueCount--
		return
	}
	if w.state.IndentLevel == 0 {
		panic("printer: FinishIndent with zero depth")
	}
	w.state.IndentLevel--
}

// QueueIndent queues one extra indent, realized at the next write.
func (w *Writer) QueueIndent() { w.state.IndentQueueCount++ }

// StartIgnoringIndent suppresses automatic leading indent.
func (w *Writer) StartIgnoringIndent() { w.state.IgnoreIndentCount++ }

// FinishIgnoringIndent restores automatic leading indent.
func (w *Writer) FinishIgnoringIndent() {
	if w.state.IgnoreIndentCount == 0 {
		panic("printer: FinishIgnoringIndent with zero depth")
	}
	w.state.IgnoreIndentCount--
}

// MarkExpectNewLine sets the flag consulted by handleBeforeWrite.
func (w *Writer) MarkExpectNewLine() { w.state.ExpectNewLineNext = true }

// WriteItems returns the emitted write-items in forward order.
func (w *Writer) WriteItems() []*WriteItem {
	var rev []*WriteItem
	for n := w.state.Items; n != nil; n = n.Prev {
		rev = append(rev, n)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
