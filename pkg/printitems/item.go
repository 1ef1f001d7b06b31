package printitems

// Item is the tagged union of print-item variants. Every concrete type in
// this package (Signal, *StringItem, *Info, *Anchor, *Condition,
// *ConditionReevaluation, *RcPath) implements it; there is no "other" case.
type Item interface {
	printItem()
}

// InfoID is a process-unique (in practice, per-Arena) identifier for an Info.
type InfoID uint64

// ConditionID is a process-unique (per-Arena) identifier for a Condition.
type ConditionID uint64

// InfoKind narrows what a TargetedInfo observes. Observing a single kind is
// cheaper than observing the full WriterInfo because the printer only needs
// to track a look-ahead save-point for that one field.
type InfoKind int

const (
	// KindGeneric is used by a plain (untargeted) Info: the full WriterInfo
	// is available to resolvers, but no single field is distinguished.
	KindGeneric InfoKind = iota
	KindLineNumber
	KindColumnNumber
	KindIsStartOfLine
	KindIndentLevel
	KindLineStartColumn
	KindLineStartIndent
)

// WriterInfo is a snapshot of the writer's position, captured when an Info
// or TargetedInfo item is resolved.
type WriterInfo struct {
	LineNumber      int
	ColumnNumber    int
	IsStartOfLine   bool
	IndentLevel     int
	LineStartColumn int
	LineStartIndent int
}

// StringItem is an immutable run of text containing no tab and no newline.
// Len is the cached character (rune) count, used by the printer to decide
// whether writing it would overflow the line without re-scanning the text.
type StringItem struct {
	Text string
	Len  int
}

func (*StringItem) printItem() {}

// Info is a handle naming a location in the IR. Its Kind is KindGeneric
// unless it was created as a TargetedInfo.
type Info struct {
	ID   InfoID
	Name string
	Kind InfoKind
}

func (*Info) printItem() {}

// Anchor is a back-patching marker for a previously defined target. The only
// variant currently needed adjusts a previously resolved line number by the
// delta observed between the anchor's first and current encounter.
type Anchor struct {
	Target *Info
}

func (*Anchor) printItem() {}

// ConditionResolverContext is the interface a Condition's predicate uses to
// observe printer state. It lives in this package (rather than the printer
// package that implements it) so that Condition can hold a ConditionResolver
// without an import cycle.
type ConditionResolverContext interface {
	// WriterInfo returns the writer position at the condition's location.
	WriterInfo() WriterInfo
	// Resolved returns the stored decision for ref, or nil if it hasn't been
	// decided yet (a look-ahead save-point is recorded as a side effect).
	Resolved(ref *Condition) *bool
	// ResolvedInfo returns the resolved WriterInfo for info, or false if it
	// hasn't been reached yet (a look-ahead save-point is recorded as a side
	// effect, keyed by info's Kind).
	ResolvedInfo(info *Info) (WriterInfo, bool)
	// Clear forgets info's resolved value so it is re-resolved the next time
	// it's reached, used by list builders when a restart moves their start
	// position.
	Clear(info *Info)
	// HasMoved reports whether info's resolved position has changed since
	// the first time HasMoved was called for it. The first call always
	// returns false.
	HasMoved(info *Info) bool
}

// ConditionResolver decides which branch of a Condition to take. Returning
// nil means "indeterminate": the false branch is taken provisionally and a
// look-ahead save-point is recorded so the decision can be revisited once
// the value it depends on becomes known.
type ConditionResolver func(ctx ConditionResolverContext) *bool

// Condition is a predicate plus optional true/false branches. A stored
// condition persists its decided value so other predicates can read it via
// ConditionResolverContext.Resolved.
type Condition struct {
	ID             ConditionID
	Name           string
	Stored         bool
	Resolve        ConditionResolver
	True           *List
	False          *List
	DependentInfos []*Info
}

func (*Condition) printItem() {}

// DependsOn registers infos whose resolution should trigger reevaluation of
// this condition. Only meaningful for stored conditions.
func (c *Condition) DependsOn(infos ...*Info) *Condition {
	c.DependentInfos = append(c.DependentInfos, infos...)
	return c
}

// ConditionReevaluation is an explicit marker that re-runs a stored
// condition's predicate when reached, restoring to its save-point if the
// result disagrees with what was taken.
type ConditionReevaluation struct {
	Condition *Condition
}

func (*ConditionReevaluation) printItem() {}

// RcPath is a shared sub-list: multiple parents may embed the same Head.
// Implementations must treat it as a value — embed it many times, never
// mutate the chain it points to, and never walk off the end of it into
// whichever parent happened to embed it first.
type RcPath struct {
	Head *PrintNode
}

func (*RcPath) printItem() {}
