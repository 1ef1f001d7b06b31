package printitems

import "unicode/utf8"

// Arena is the bump-allocated home for every IR node, info, condition and
// string container produced while building and printing a single IR. Its
// lifetime ends with Reset, at which point every pointer it handed out
// becomes garbage; nothing in this package calls Reset on your behalf.
//
// Two concurrent printers must use two distinct Arenas — id counters are
// scoped to the Arena, not to the process, so that two arenas never hand out
// colliding InfoID/ConditionID values to code that might (mistakenly) mix
// them up, while still keeping per-run ids small and monotonic.
type Arena struct {
	nodes       Chunk[PrintNode]
	strings     Chunk[StringItem]
	infos       Chunk[Info]
	conditions  Chunk[Condition]
	anchors     Chunk[Anchor]
	condReevals Chunk[ConditionReevaluation]
	rcPaths     Chunk[RcPath]

	nextInfoID      uint64
	nextConditionID uint64
}

// NewArena returns a ready-to-use, empty Arena.
func NewArena() *Arena { return &Arena{} }

// Reset discards every allocation made so far and restarts the id counters,
// so the Arena can back another top-level print call.
func (a *Arena) Reset() {
	a.nodes.Reset()
	a.strings.Reset()
	a.infos.Reset()
	a.conditions.Reset()
	a.anchors.Reset()
	a.condReevals.Reset()
	a.rcPaths.Reset()
	a.nextInfoID = 0
	a.nextConditionID = 0
}

func (a *Arena) newNode(item Item) *PrintNode {
	n := a.nodes.Alloc()
	n.Item = item
	return n
}

// NewString allocates a StringItem, caching its rune count. The caller is
// responsible for s containing no '\t' or '\n' — a tab or newline must be
// sent as its own Signal.Tab/Signal.NewLine item instead, since the writer's
// column/line bookkeeping only advances on those signals, not on scanning
// string content. Violations are only caught in debug (printerdebug) builds,
// by the printer package's validateString, called from its string dispatch.
func (a *Arena) NewString(s string) *StringItem {
	it := a.strings.Alloc()
	it.Text = s
	it.Len = utf8.RuneCountInString(s)
	return it
}

// NewInfo allocates a plain, untargeted Info with a fresh id.
func (a *Arena) NewInfo(name string) *Info {
	it := a.infos.Alloc()
	a.nextInfoID++
	it.ID = InfoID(a.nextInfoID)
	it.Name = name
	it.Kind = KindGeneric
	return it
}

// NewTargetedInfo allocates an Info observing a single WriterInfo field.
func (a *Arena) NewTargetedInfo(name string, kind InfoKind) *Info {
	it := a.NewInfo(name)
	it.Kind = kind
	return it
}

// NewAnchor allocates a line-number anchor for target.
func (a *Arena) NewAnchor(target *Info) *Anchor {
	it := a.anchors.Alloc()
	it.Target = target
	return it
}

// NewCondition allocates an (initially not stored) condition. Call Store to
// mark it addressable by reference from other predicates.
func (a *Arena) NewCondition(name string, resolve ConditionResolver, trueBranch, falseBranch *List) *Condition {
	c := a.conditions.Alloc()
	a.nextConditionID++
	c.ID = ConditionID(a.nextConditionID)
	c.Name = name
	c.Resolve = resolve
	c.True = trueBranch
	c.False = falseBranch
	return c
}

// Store marks c as stored: its decided value is persisted so other
// predicates can read it through ConditionResolverContext.Resolved. Mere
// reference creation is what marks a condition as stored — callers that
// intend to pass a *Condition to another predicate must call Store first.
func (a *Arena) Store(c *Condition) *Condition {
	c.Stored = true
	return c
}

// NewConditionReevaluation allocates an explicit reevaluation marker for a
// stored condition.
func (a *Arena) NewConditionReevaluation(c *Condition) *ConditionReevaluation {
	it := a.condReevals.Alloc()
	it.Condition = c
	return it
}

// NewRcPath allocates a shared-sub-list marker over list's current head.
// list must not be mutated by its owner after this call; doing so would
// retroactively change what every embedding parent sees.
func (a *Arena) NewRcPath(list *List) *RcPath {
	it := a.rcPaths.Alloc()
	it.Head = list.Head()
	return it
}
