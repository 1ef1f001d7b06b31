package printitems

// The following helpers narrow ConditionResolverContext.ResolvedInfo to a
// single WriterInfo field, mirroring the per-kind resolver methods a
// TargetedInfo is meant to make cheap to query.

func ResolvedLineNumber(ctx ConditionResolverContext, info *Info) (int, bool) {
	wi, ok := ctx.ResolvedInfo(info)
	return wi.LineNumber, ok
}

func ResolvedColumnNumber(ctx ConditionResolverContext, info *Info) (int, bool) {
	wi, ok := ctx.ResolvedInfo(info)
	return wi.ColumnNumber, ok
}

func ResolvedIsStartOfLine(ctx ConditionResolverContext, info *Info) (bool, bool) {
	wi, ok := ctx.ResolvedInfo(info)
	return wi.IsStartOfLine, ok
}

func ResolvedIndentLevel(ctx ConditionResolverContext, info *Info) (int, bool) {
	wi, ok := ctx.ResolvedInfo(info)
	return wi.IndentLevel, ok
}

func ResolvedLineStartColumn(ctx ConditionResolverContext, info *Info) (int, bool) {
	wi, ok := ctx.ResolvedInfo(info)
	return wi.LineStartColumn, ok
}

func ResolvedLineStartIndent(ctx ConditionResolverContext, info *Info) (int, bool) {
	wi, ok := ctx.ResolvedInfo(info)
	return wi.LineStartIndent, ok
}
