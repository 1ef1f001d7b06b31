package printer

import "github.com/inkrune/printcore/pkg/printitems"

// resolverContext implements printitems.ConditionResolverContext for a
// single predicate evaluation (either a fresh Condition dispatch or a
// reevaluation triggered by an info resolving or an explicit
// ConditionReevaluation marker).
type resolverContext struct {
	p                    *Printer
	writerInfoAtCondition printitems.WriterInfo
}

var _ printitems.ConditionResolverContext = (*resolverContext)(nil)

func (c *resolverContext) WriterInfo() printitems.WriterInfo {
	return c.writerInfoAtCondition
}

func (c *resolverContext) Resolved(ref *printitems.Condition) *bool {
	p := c.p
	if v, ok := p.resolvedConditions[ref.ID]; ok {
		return v
	}
	if _, exists := p.lookAheadConditionSavePoints[ref.ID]; !exists {
		p.lookAheadConditionSavePoints[ref.ID] = p.savePointForRestoring("lookahead-cond:" + ref.Name)
	}
	return nil
}

func (c *resolverContext) ResolvedInfo(info *printitems.Info) (printitems.WriterInfo, bool) {
	p := c.p
	if wi, ok := p.resolvedInfos[info.ID]; ok {
		return wi, true
	}
	byKind := p.lookAheadInfoSavePoints[info.Kind]
	if byKind == nil {
		byKind = map[printitems.InfoID]*SavePoint{}
		p.lookAheadInfoSavePoints[info.Kind] = byKind
	}
	if _, exists := byKind[info.ID]; !exists {
		byKind[info.ID] = p.savePointForRestoring("lookahead-info:" + info.Name)
	}
	return printitems.WriterInfo{}, false
}

// savePointForRestoring returns the save-point a newly discovered look-ahead
// dependency should restore to: if a stored condition's predicate is
// currently being (re)evaluated, that reevaluation's own save-point is
// reused (original get_save_point_for_restoring_condition) rather than
// anchoring a fresh one at the live node — the live node is wherever the
// *triggering* dependency happens to be, not where this condition itself
// needs to rewind to.
func (p *Printer) savePointForRestoring(name string) *SavePoint {
	if p.resolvingSavePoint != nil {
		return p.resolvingSavePoint
	}
	return p.createSavePoint(name)
}

func (c *resolverContext) Clear(info *printitems.Info) {
	delete(c.p.resolvedInfos, info.ID)
	delete(c.p.hasMovedBaseline, info.ID)
}

func (c *resolverContext) HasMoved(info *printitems.Info) bool {
	p := c.p
	cur, ok := p.resolvedInfos[info.ID]
	if !ok {
		return false
	}
	base, known := p.hasMovedBaseline[info.ID]
	if !known {
		p.hasMovedBaseline[info.ID] = cur
		return false
	}
	return base != cur
}
