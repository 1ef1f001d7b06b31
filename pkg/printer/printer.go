// Package printer implements the constraint-solving printer: it walks a
// print-items IR (package printitems), maintaining a writer, an info
// registry, and a condition engine, creating save-points at possible-newline
// candidates and restoring them on overflow or contradiction.
package printer

import (
	"time"

	"github.com/inkrune/printcore/pkg/printitems"
)

// conditionDependency pairs a stored condition with the save-point to
// restore to if reevaluating it (triggered by one of its dependent infos
// resolving) disagrees with the branch already taken.
type conditionDependency struct {
	condition *printitems.Condition
	savePoint *SavePoint
}

// Printer is a single-threaded, single-use walker over one IR (original
// §5: cooperative, no internal suspension, exclusive ownership of its
// arena/writer/resolution maps). Construct a fresh Printer per print call.
type Printer struct {
	cfg    Config
	writer *Writer
	tracer Tracer
	start  time.Time

	possibleNewLineSavePoint *SavePoint
	newLineGroupDepth        int
	forceNoNewLinesDepth     int

	// resolvingSavePoint is non-nil only while a stored condition's predicate
	// is being (re)run during reevaluation (original `resolving_save_point`):
	// any look-ahead save-point the predicate would otherwise create for an
	// info/condition it queries is anchored here instead of at the current
	// node, so a restore driven by that look-ahead rewinds to the
	// reevaluation's own position rather than to wherever the walk happens
	// to be when the dependency resolves.
	resolvingSavePoint *SavePoint

	current       *printitems.PrintNode
	nextNodeStack []*printitems.PrintNode
	skipAdvance   bool

	resolvedInfos      map[printitems.InfoID]printitems.WriterInfo
	resolvedConditions map[printitems.ConditionID]*bool
	hasMovedBaseline   map[printitems.InfoID]printitems.WriterInfo
	anchorFirstLine    map[*printitems.Anchor]int

	lookAheadInfoSavePoints      map[printitems.InfoKind]map[printitems.InfoID]*SavePoint
	lookAheadConditionSavePoints map[printitems.ConditionID]*SavePoint
	storedConditionSavePoints    map[printitems.ConditionID]*SavePoint

	conditionsForInfo map[printitems.InfoID]map[printitems.ConditionID]*conditionDependency

	savePoints printitems.Chunk[SavePoint]

	debug    bool
	diagnostic *Diagnostics
}

// New constructs a Printer ready to walk a single IR. Pass a non-nil tracer
// to receive the optional trace stream (original §6.3).
func New(cfg Config, tracer Tracer) *Printer {
	return &Printer{
		cfg:                          cfg,
		writer:                       NewWriter(cfg),
		tracer:                       tracer,
		start:                        time.Now(),
		resolvedInfos:                map[printitems.InfoID]printitems.WriterInfo{},
		resolvedConditions:           map[printitems.ConditionID]*bool{},
		hasMovedBaseline:             map[printitems.InfoID]printitems.WriterInfo{},
		anchorFirstLine:              map[*printitems.Anchor]int{},
		lookAheadInfoSavePoints:      map[printitems.InfoKind]map[printitems.InfoID]*SavePoint{},
		lookAheadConditionSavePoints: map[printitems.ConditionID]*SavePoint{},
		storedConditionSavePoints:    map[printitems.ConditionID]*SavePoint{},
		conditionsForInfo:            map[printitems.InfoID]map[printitems.ConditionID]*conditionDependency{},
		debug:                        debugChecksEnabled,
	}
}

// Print walks root to completion and renders the result to text. An empty
// (nil) root yields empty output.
func Print(root *printitems.List, cfg Config) (string, error) {
	items, err := PrintToWriteItems(root, cfg, nil)
	if err != nil {
		return "", err
	}
	return Stringify(items, cfg), nil
}

// PrintToWriteItems walks root and returns the forward write-item stream
// without stringifying it, for hosts that want the lower-level output
// (original §6.3: "a forward iterator of write-items").
func PrintToWriteItems(root *printitems.List, cfg Config, tracer Tracer) ([]*WriteItem, error) {
	p := New(cfg, tracer)
	if root != nil {
		p.current = root.Head()
	}
	p.run()
	if p.debug {
		if err := p.diagnostics().asError(); err != nil {
			return nil, err
		}
	}
	return p.writer.WriteItems(), nil
}

// run is the central algorithm (original §4.5).
func (p *Printer) run() {
	for {
		if p.current == nil {
			if len(p.nextNodeStack) == 0 {
				break
			}
			n := len(p.nextNodeStack) - 1
			p.current = p.nextNodeStack[n]
			p.nextNodeStack = p.nextNodeStack[:n]
			continue
		}

		p.trace()

		p.skipAdvance = false
		switch item := p.current.Item.(type) {
		case *printitems.StringItem:
			p.dispatchString(item)
		case printitems.Signal:
			p.dispatchSignal(item)
		case *printitems.Info:
			p.dispatchInfo(item)
		case *printitems.Anchor:
			p.dispatchAnchor(item)
		case *printitems.Condition:
			p.dispatchCondition(item)
		case *printitems.ConditionReevaluation:
			p.dispatchConditionReevaluation(item)
		case *printitems.RcPath:
			p.dispatchRcPath(item)
		}

		if !p.skipAdvance {
			p.current = p.current.Next
		}
	}

	if p.debug {
		p.checkEndOfPrintInvariants()
	}
}

func (p *Printer) trace() {
	if p.tracer == nil {
		return
	}
	var lastWriteNode uintptr
	if items := p.writer.state.Items; items != nil {
		lastWriteNode = writeItemID(items)
	}
	p.tracer.Trace(TraceEvent{
		Nanos:        time.Since(p.start).Nanoseconds(),
		PrintNodeID:  nodeID(p.current),
		WriterNodeID: lastWriteNode,
	})
}

func (p *Printer) dispatchString(s *printitems.StringItem) {
	validateString(s.Text)
	if p.possibleNewLineSavePoint != nil && p.forceNoNewLinesDepth == 0 {
		if p.writer.EffectiveColumn()+s.Len > p.cfg.maxWidth() {
			p.restoreForNewLine(p.possibleNewLineSavePoint)
			return
		}
	}
	p.writer.Write(s.Text)
}

func (p *Printer) dispatchSignal(sig printitems.Signal) {
	switch sig {
	case printitems.SigNewLine:
		if p.forceNoNewLinesDepth == 0 {
			p.writer.NewLine()
		}
	case printitems.SigTab:
		p.writer.Tab()
	case printitems.SigPossibleNewLine:
		p.markPossibleNewLineSavePoint()
	case printitems.SigSpaceOrNewLine:
		p.dispatchSpaceOrNewLine()
	case printitems.SigExpectNewLine:
		p.writer.MarkExpectNewLine()
	case printitems.SigQueueStartIndent:
		p.writer.QueueIndent()
	case printitems.SigStartIndent:
		p.writer.StartIndent()
	case printitems.SigFinishIndent:
		p.writer.FinishIndent()
	case printitems.SigStartNewLineGroup:
		p.newLineGroupDepth++
	case printitems.SigFinishNewLineGroup:
		p.newLineGroupDepth--
	case printitems.SigSingleIndent:
		p.writer.SingleIndent()
	case printitems.SigStartIgnoringIndent:
		p.writer.StartIgnoringIndent()
	case printitems.SigFinishIgnoringIndent:
		p.writer.FinishIgnoringIndent()
	case printitems.SigStartForceNoNewLines:
		p.forceNoNewLinesDepth++
	case printitems.SigFinishForceNoNewLines:
		p.forceNoNewLinesDepth--
	case printitems.SigSpaceIfNotTrailing:
		p.writer.SpaceIfNotTrailing()
	}
}

func (p *Printer) dispatchSpaceOrNewLine() {
	if p.forceNoNewLinesDepth > 0 {
		p.writer.Space()
		return
	}
	if p.writer.EffectiveColumn()+1 > p.cfg.maxWidth() {
		if p.possibleNewLineSavePoint != nil {
			p.restoreForNewLine(p.possibleNewLineSavePoint)
		} else {
			p.writer.NewLine()
		}
		return
	}
	p.markPossibleNewLineSavePoint()
	p.writer.SpaceIfNotTrailing()
}

// markPossibleNewLineSavePoint implements the at-most-one-candidate rule
// (original §3.5/§4.5.1): a deeper new-line-group candidate never displaces
// a shallower one already pending.
func (p *Printer) markPossibleNewLineSavePoint() {
	if p.possibleNewLineSavePoint != nil && p.newLineGroupDepth > p.possibleNewLineSavePoint.NewLineGroupDepth {
		return
	}
	sp := p.createSavePoint("possible-newline")
	// The candidate node itself (PossibleNewLine/SpaceOrNewLine) produces no
	// content of its own once restored-and-forced: resuming after it, rather
	// than re-dispatching it, is what turns the space it would have written
	// into nothing instead of a stray leading space on the new line.
	sp.CurrentNode = p.current.Next
	p.possibleNewLineSavePoint = sp
}

func (p *Printer) dispatchInfo(info *printitems.Info) {
	p.resolvedInfos[info.ID] = p.writer.CurrentWriterInfo()

	if byKind := p.lookAheadInfoSavePoints[info.Kind]; byKind != nil {
		if sp, ok := byKind[info.ID]; ok {
			delete(byKind, info.ID)
			p.restore(sp, false)
			return
		}
	}

	if deps, ok := p.conditionsForInfo[info.ID]; ok {
		for _, dep := range deps {
			p.reevaluateCondition(dep.condition, dep.savePoint)
			if p.skipAdvance {
				return
			}
		}
	}
}

func (p *Printer) dispatchAnchor(a *printitems.Anchor) {
	cur := p.writer.state.CurrentLineNumber
	first, ok := p.anchorFirstLine[a]
	if !ok {
		p.anchorFirstLine[a] = cur
		return
	}
	if delta := cur - first; delta != 0 {
		if wi, ok := p.resolvedInfos[a.Target.ID]; ok {
			wi.LineNumber += delta
			p.resolvedInfos[a.Target.ID] = wi
		}
	}
}

func (p *Printer) dispatchCondition(cond *printitems.Condition) {
	if debugChecksEnabled {
		if err := checkConditionBranches(cond); err != nil {
			p.diagnostics().add("%s", err)
		}
	}

	var storedSP *SavePoint
	if cond.Stored {
		if sp, ok := p.storedConditionSavePoints[cond.ID]; ok {
			storedSP = sp
		} else {
			storedSP = p.savePointForRestoring("stored-cond:" + cond.Name)
			p.storedConditionSavePoints[cond.ID] = storedSP
		}
		for _, info := range cond.DependentInfos {
			m := p.conditionsForInfo[info.ID]
			if m == nil {
				m = map[printitems.ConditionID]*conditionDependency{}
				p.conditionsForInfo[info.ID] = m
			}
			m[cond.ID] = &conditionDependency{condition: cond, savePoint: storedSP}
		}
	}

	ctx := &resolverContext{p: p, writerInfoAtCondition: p.writer.CurrentWriterInfo()}
	result := cond.Resolve(ctx)

	var taken *printitems.List
	if result != nil {
		if cond.Stored {
			result = p.applyAntiOscillation(cond.ID, result)
			p.resolvedConditions[cond.ID] = result
			if sp, ok := p.lookAheadConditionSavePoints[cond.ID]; ok {
				delete(p.lookAheadConditionSavePoints, cond.ID)
				p.restore(sp, false)
				return
			}
		}
		if *result {
			taken = cond.True
		} else {
			taken = cond.False
		}
	} else {
		if cond.Stored {
			p.resolvedConditions[cond.ID] = nil
		}
		taken = cond.False
	}

	p.nextNodeStack = append(p.nextNodeStack, p.current.Next)
	if taken != nil {
		p.current = taken.Head()
	} else {
		p.current = nil
	}
	p.skipAdvance = true
}

// applyAntiOscillation is the termination guarantee (original §4.5.3): once
// a stored condition has taken true, a later false is ignored so the loop
// can't bounce forever between a condition that flips back and forth as
// trailing material shifts the layout.
func (p *Printer) applyAntiOscillation(id printitems.ConditionID, result *bool) *bool {
	prev, ok := p.resolvedConditions[id]
	if ok && prev != nil && *prev && result != nil && !*result {
		stillTrue := true
		return &stillTrue
	}
	return result
}

func (p *Printer) dispatchConditionReevaluation(cr *printitems.ConditionReevaluation) {
	sp, ok := p.storedConditionSavePoints[cr.Condition.ID]
	if !ok {
		return
	}
	p.reevaluateCondition(cr.Condition, sp)
}

// reevaluateCondition re-runs cond's predicate using the writer info
// captured at sp (the position cond was first evaluated at), and restores
// to sp if the new result disagrees with what was already taken.
func (p *Printer) reevaluateCondition(cond *printitems.Condition, sp *SavePoint) {
	ctx := &resolverContext{p: p, writerInfoAtCondition: sp.WriterState.currentWriterInfo(p.cfg)}
	prevResolving := p.resolvingSavePoint
	p.resolvingSavePoint = sp
	result := cond.Resolve(ctx)
	p.resolvingSavePoint = prevResolving
	if result == nil {
		return
	}

	prev, had := p.resolvedConditions[cond.ID]
	result = p.applyAntiOscillation(cond.ID, result)
	if had && prev != nil && *result == *prev {
		return
	}

	p.resolvedConditions[cond.ID] = result
	p.restore(sp, false)
}

func (p *Printer) dispatchRcPath(rp *printitems.RcPath) {
	p.nextNodeStack = append(p.nextNodeStack, p.current.Next)
	p.current = rp.Head
	p.skipAdvance = true
}

func (p *Printer) createSavePoint(name string) *SavePoint {
	sp := p.savePoints.Alloc()
	sp.Name = name
	sp.WriterState = p.writer.GetState()
	sp.PossibleNewLineSavePointAtCreation = p.possibleNewLineSavePoint
	sp.NewLineGroupDepth = p.newLineGroupDepth
	sp.ForceNoNewLinesDepth = p.forceNoNewLinesDepth
	sp.CurrentNode = p.current
	sp.NextNodeStack = cloneNodeStack(p.nextNodeStack)
	sp.LookAheadInfoSavePoints = cloneInfoSavePoints(p.lookAheadInfoSavePoints)
	sp.LookAheadConditionSavePoints = cloneConditionSavePoints(p.lookAheadConditionSavePoints)
	return sp
}

// restore implements original §4.5.2. forNewLine means the restart is being
// used to convert a candidate into a forced newline: the inherited
// possible-newline save-point is dropped and a newline is written right
// after state is rewound.
func (p *Printer) restore(sp *SavePoint, forNewLine bool) {
	p.writer.SetState(sp.WriterState)
	if forNewLine {
		p.possibleNewLineSavePoint = nil
	} else {
		p.possibleNewLineSavePoint = sp.PossibleNewLineSavePointAtCreation
	}
	p.newLineGroupDepth = sp.NewLineGroupDepth
	p.forceNoNewLinesDepth = sp.ForceNoNewLinesDepth
	p.current = sp.CurrentNode
	p.nextNodeStack = cloneNodeStack(sp.NextNodeStack)
	p.lookAheadInfoSavePoints = cloneInfoSavePoints(sp.LookAheadInfoSavePoints)
	p.lookAheadConditionSavePoints = cloneConditionSavePoints(sp.LookAheadConditionSavePoints)
	p.skipAdvance = true
	if forNewLine {
		p.writer.NewLine()
	}
}

func (p *Printer) restoreForNewLine(sp *SavePoint) {
	p.restore(sp, true)
}

// currentWriterInfo recomputes the WriterInfo a saved WriterState
// corresponds to, for reevaluation calls that need "the writer info at the
// condition's location" rather than the writer's live position.
func (s WriterState) currentWriterInfo(cfg Config) printitems.WriterInfo {
	col := s.CurrentLineColumn
	if col == 0 {
		col = s.IndentLevel * cfg.indentWidth()
	}
	return printitems.WriterInfo{
		LineNumber:      s.CurrentLineNumber,
		ColumnNumber:    col,
		IsStartOfLine:   s.CurrentLineColumn == 0,
		IndentLevel:     s.IndentLevel,
		LineStartColumn: s.LastLineIndentLevel * cfg.indentWidth(),
		LineStartIndent: s.LastLineIndentLevel,
	}
}
