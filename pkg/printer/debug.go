package printer

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/inkrune/printcore/pkg/printitems"
)

// debugChecksEnabled is flipped to true by the printerdebug build tag
// (see debug_on.go). Release builds pay nothing for the malformed-IR checks
// below; debug builds aggregate the end-of-print and condition-branch
// violations found during a run via go-multierror instead of stopping at the
// first one, so a single print gives a complete report of what's wrong with
// an IR. validateString is the exception: it panics on the first bad string.
var debugChecksEnabled = false

// Diagnostics accumulates malformed-IR findings (original §7) across a
// single print run when debug checks are enabled.
type Diagnostics struct {
	errs *multierror.Error
}

func (d *Diagnostics) add(format string, args ...interface{}) {
	d.errs = multierror.Append(d.errs, fmt.Errorf(format, args...))
}

func (d *Diagnostics) asError() error {
	if d == nil || d.errs == nil {
		return nil
	}
	return d.errs.ErrorOrNil()
}

func (p *Printer) diagnostics() *Diagnostics {
	if p.diagnostic == nil {
		p.diagnostic = &Diagnostics{}
	}
	return p.diagnostic
}

// checkEndOfPrintInvariants runs the invariant checks original §7 expects a
// well-formed IR to satisfy once the walk reaches its end: every
// StartIndent/StartIgnoringIndent/StartForceNoNewLines/StartNewLineGroup
// must have been balanced by its Finish counterpart, and no look-ahead or
// stored-condition save-point should still be outstanding (original
// verify_no_look_ahead_save_points / panic_for_save_point_existing,
// printer.rs): a leftover one means the generator referenced a condition or
// info that was never actually added to the print items, so the look-ahead
// maps got cloned into save-points for something that can never resolve.
func (p *Printer) checkEndOfPrintInvariants() {
	d := p.diagnostics()
	if p.writer.state.IndentLevel != 0 {
		d.add("unbalanced indent: %d StartIndent signal(s) left open", p.writer.state.IndentLevel)
	}
	if p.writer.state.IndentQueueCount != 0 {
		d.add("unbalanced indent: %d QueueStartIndent signal(s) never realized or finished", p.writer.state.IndentQueueCount)
	}
	if p.writer.state.IgnoreIndentCount != 0 {
		d.add("unbalanced indent: %d StartIgnoringIndent signal(s) left open", p.writer.state.IgnoreIndentCount)
	}
	if p.forceNoNewLinesDepth != 0 {
		d.add("unbalanced force-no-newlines: depth ended at %d", p.forceNoNewLinesDepth)
	}
	if p.newLineGroupDepth != 0 {
		d.add("unbalanced new-line-group: depth ended at %d", p.newLineGroupDepth)
	}
	for id, result := range p.resolvedConditions {
		if result == nil {
			d.add("condition %d never resolved to a definite value (still None at end of print)", id)
		}
	}
	for kind, byID := range p.lookAheadInfoSavePoints {
		for id := range byID {
			d.add("info %d (kind %d) was never reached: its look-ahead save-point was never consumed", id, kind)
		}
	}
	for id := range p.lookAheadConditionSavePoints {
		d.add("condition %d was never reached: its look-ahead save-point was never consumed", id)
	}
	for id := range p.storedConditionSavePoints {
		d.add("condition %d's stored save-point was never cleaned up", id)
	}
}

// validateString panics (debug builds only) when text contains a tab or
// newline, mirroring the original's validate_string: such characters must be
// sent as their own Tab/NewLine print items, not embedded in a string item,
// or the writer's column/line bookkeeping silently goes out of sync with
// what's actually written.
func validateString(text string) {
	if !debugChecksEnabled {
		return
	}
	if strings.Contains(text, "\t") {
		panic("printer: debug panic! found a tab in a string item; break it up and send the tab as Signal.Tab instead: " + text)
	}
	if strings.Contains(text, "\n") {
		panic("printer: debug panic! found a newline in a string item; break it up and send the newline as Signal.NewLine instead: " + text)
	}
}

// checkConditionBranches validates a condition's branches are well-formed
// before it is ever stored, catching a common authoring mistake (a branch
// list that embeds itself, which would loop the walk forever).
func checkConditionBranches(cond *printitems.Condition) error {
	for _, branch := range []*printitems.List{cond.True, cond.False} {
		if branch == nil {
			continue
		}
		for n := branch.Head(); n != nil; n = n.Next {
			if n.Item == printitems.Item(cond) {
				return fmt.Errorf("condition %q embeds itself in one of its branches", cond.Name)
			}
		}
	}
	return nil
}
