package printitems

// PrintNode is one cell of the immutable singly linked list the printer
// walks. Nodes are allocated in an Arena and, once linked, are never
// mutated: a List is only ever grown by appending, and a shared sub-list
// embedded via RcPath must not be followed past its own tail into whatever
// parent happens to own the continuation.
type PrintNode struct {
	Item Item
	Next *PrintNode
}

// List is a print-items IR under construction. The zero value is an empty
// list ready to use.
type List struct {
	head *PrintNode
	tail *PrintNode
}

// NewList returns an empty list.
func NewList() *List { return &List{} }

// Head returns the first node of the list, or nil if empty.
func (l *List) Head() *PrintNode { return l.head }

// Empty reports whether the list has no items.
func (l *List) Empty() bool { return l.head == nil }

// PushItem allocates a node for item and appends it to the list.
func (l *List) PushItem(a *Arena, item Item) {
	l.appendNode(a.newNode(item))
}

// PushString is a convenience wrapper creating and appending a StringItem.
func (l *List) PushString(a *Arena, text string) {
	l.PushItem(a, a.NewString(text))
}

// PushSignal is a convenience wrapper around PushItem for Signal values.
func (l *List) PushSignal(a *Arena, s Signal) {
	l.PushItem(a, s)
}

// PushInfo is a convenience wrapper around PushItem for *Info.
func (l *List) PushInfo(a *Arena, info *Info) {
	l.PushItem(a, info)
}

// PushCondition is a convenience wrapper around PushItem for *Condition.
func (l *List) PushCondition(a *Arena, c *Condition) {
	l.PushItem(a, c)
}

// PushConditionReevaluation is a convenience wrapper for *ConditionReevaluation.
func (l *List) PushConditionReevaluation(a *Arena, cr *ConditionReevaluation) {
	l.PushItem(a, cr)
}

// PushAnchor is a convenience wrapper for *Anchor.
func (l *List) PushAnchor(a *Arena, an *Anchor) {
	l.PushItem(a, an)
}

// PushPath embeds other as a shared sub-list (RcPath), usable from multiple
// parents. other must not be mutated after this call.
func (l *List) PushPath(a *Arena, other *List) {
	l.PushItem(a, a.NewRcPath(other))
}

// appendNode links n after the current tail. If n happens to already be the
// head of a longer chain (as built directly via the arena rather than
// through List), the walk to its own last Next keeps the tail pointer
// correct in O(chain length of the appended segment).
func (l *List) appendNode(n *PrintNode) {
	if n == nil {
		return
	}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.Next = n
	}
	last := n
	for last.Next != nil {
		last = last.Next
	}
	l.tail = last
}

// Extend splices other onto the end of l in O(1). other's own head/tail
// become part of l; other should not be extended further after this call.
func (l *List) Extend(other *List) {
	if other == nil || other.head == nil {
		return
	}
	if l.tail == nil {
		l.head = other.head
	} else {
		l.tail.Next = other.head
	}
	l.tail = other.tail
}

// IntoPath consumes the list and returns its head pointer, or nil if empty.
// Typically used together with Arena.NewRcPath when a caller wants to embed
// the same built sub-list under multiple parents.
func (l *List) IntoPath() *PrintNode {
	return l.head
}

// Iter returns the items in forward order. It is O(n) and intended for
// tests/debugging, not for the printer's hot loop.
func (l *List) Iter() []Item {
	var out []Item
	for n := l.head; n != nil; n = n.Next {
		out = append(out, n.Item)
	}
	return out
}
