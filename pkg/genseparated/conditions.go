package genseparated

import "github.com/inkrune/printcore/pkg/printitems"

// valueData is what a generated value's resolved position looks like once
// the printer has dispatched its leading infos.
type valueData struct {
	lineNumber            *printitems.Info
	isStartOfLine         *printitems.Info
	lineStartIndent       *printitems.Info
	allowInlineMultiLine  bool
	allowInlineSingleLine bool
}

// ifAboveWidth returns a condition taking content only once the column the
// condition is dispatched at exceeds threshold.
func ifAboveWidth(a *printitems.Arena, threshold int, content *printitems.List) *printitems.Condition {
	resolve := func(ctx printitems.ConditionResolverContext) *bool {
		v := ctx.WriterInfo().ColumnNumber > threshold
		return &v
	}
	return a.NewCondition("ifAboveWidth", resolve, content, nil)
}

// ifFalse takes content only when resolve (evaluated against the live
// writer position) is definitely false.
func ifFalse(a *printitems.Arena, name string, resolve printitems.ConditionResolver, content *printitems.List) *printitems.Condition {
	wrapped := func(ctx printitems.ConditionResolverContext) *bool {
		r := resolve(ctx)
		if r == nil {
			return nil
		}
		v := !*r
		return &v
	}
	return a.NewCondition(name, wrapped, content, nil)
}

func isStartOfLineResolver(ctx printitems.ConditionResolverContext) *bool {
	v := ctx.WriterInfo().IsStartOfLine
	return &v
}

// indentIfStartOfLine indents content only if it begins exactly at the
// start of its line (so a wrapped value that happens to already be first on
// its line gets a hanging indent, while one continuing an existing line
// does not get indented twice).
func indentIfStartOfLine(a *printitems.Arena, content *printitems.List) *printitems.Condition {
	indented := printitems.NewList()
	indented.PushSignal(a, printitems.SigStartIndent)
	indented.PushPath(a, content)
	indented.PushSignal(a, printitems.SigFinishIndent)

	return a.NewCondition("indentIfStartOfLine", isStartOfLineResolver, indented, content)
}

func withIndent(a *printitems.Arena, content *printitems.List) *printitems.List {
	out := printitems.NewList()
	out.PushSignal(a, printitems.SigStartIndent)
	out.Extend(content)
	out.PushSignal(a, printitems.SigFinishIndent)
	return out
}

// isStartStandaloneLine: true when the list's own starting column equals
// the column its line started at — i.e. nothing else precedes it on that
// line.
func isStartStandaloneLine(a *printitems.Arena, startColumn, startLineStartColumn *printitems.Info) *printitems.Condition {
	resolve := func(ctx printitems.ConditionResolverContext) *bool {
		col, ok := ctx.ResolvedInfo(startColumn)
		if !ok {
			return nil
		}
		lineStart, ok := ctx.ResolvedInfo(startLineStartColumn)
		if !ok {
			return nil
		}
		v := col.ColumnNumber == lineStart.ColumnNumber
		return &v
	}
	return a.NewCondition("isStartStandaloneLine", resolve, nil, nil)
}

// isMultiLineForHanging implements the PreferHanging strategy: multi-line
// is decided purely from whether the relevant first value already landed on
// a new line, never from measuring width.
func isMultiLineForHanging(a *printitems.Arena, values *[]valueData, isStandalone *printitems.Condition) *printitems.Condition {
	resolve := func(ctx printitems.ConditionResolverContext) *bool {
		standalone := ctx.Resolved(isStandalone)
		if standalone == nil {
			return nil
		}
		vs := *values
		if *standalone {
			if len(vs) > 1 {
				wi, ok := ctx.ResolvedInfo(vs[1].isStartOfLine)
				if !ok {
					return nil
				}
				v := wi.IsStartOfLine
				return &v
			}
		} else if len(vs) > 0 {
			wi, ok := ctx.ResolvedInfo(vs[0].isStartOfLine)
			if !ok {
				return nil
			}
			v := wi.IsStartOfLine
			return &v
		}
		v := false
		return &v
	}
	return a.NewCondition("isMultiLineForHanging", resolve, nil, nil)
}

// isMultiLineForMultiLine implements the width-driven strategy: multi-line
// whenever any value starts at the beginning of its line, or any value
// spans more than one printer line and isn't explicitly allowed to stay
// inline.
func isMultiLineForMultiLine(a *printitems.Arena, startLine *printitems.Info, values *[]valueData, isStandalone *printitems.Condition, endLine *printitems.Info) *printitems.Condition {
	lastResult := false

	resolve := func(ctx printitems.ConditionResolverContext) *bool {
		result := evaluateMultiLine(ctx, startLine, values, isStandalone, endLine)
		// Once this has ever gone multi-line, trailing content pushing the
		// last line past the width can't be allowed to flip it back — that
		// would restart the same newline decision forever.
		if lastResult && result != nil && !*result {
			v := true
			return &v
		}
		if result != nil {
			lastResult = *result
		} else {
			lastResult = false
		}
		return result
	}
	return a.NewCondition("isMultiLineForMultiLine", resolve, nil, nil)
}

func evaluateMultiLine(ctx printitems.ConditionResolverContext, startLine *printitems.Info, values *[]valueData, isStandalone *printitems.Condition, endLine *printitems.Info) *bool {
	standalone := ctx.Resolved(isStandalone)
	if standalone == nil {
		return nil
	}
	startWI, ok := ctx.ResolvedInfo(startLine)
	if !ok {
		return nil
	}
	endWI, ok := ctx.ResolvedInfo(endLine)
	if !ok {
		return nil
	}

	lastLN := startWI.LineNumber
	lastAllowsMulti := true
	lastAllowsSingle := false
	hasMultiLineValue := false

	vs := *values
	for i, vd := range vs {
		if i == 0 && *standalone {
			continue
		}

		startOfLine, ok := ctx.ResolvedInfo(vd.isStartOfLine)
		if !ok {
			return nil
		}
		if startOfLine.IsStartOfLine {
			v := true
			return &v
		}

		lnInfo, ok := ctx.ResolvedInfo(vd.lineNumber)
		if !ok {
			return nil
		}

		if i >= 1 {
			wasMultiLineValue := lastLN < lnInfo.LineNumber
			if wasMultiLineValue {
				hasMultiLineValue = true
			}
			if shouldMakeMultiLine(wasMultiLineValue, lastAllowsMulti, lastAllowsSingle, hasMultiLineValue) {
				v := true
				return &v
			}
		}

		lastLN = lnInfo.LineNumber
		lastAllowsMulti = vd.allowInlineMultiLine
		lastAllowsSingle = vd.allowInlineSingleLine
	}

	lastIsMultiLineValue := lastLN < endWI.LineNumber
	if lastIsMultiLineValue {
		hasMultiLineValue = true
	}
	v := shouldMakeMultiLine(lastIsMultiLineValue, lastAllowsMulti, lastAllowsSingle, hasMultiLineValue)
	return &v
}

func shouldMakeMultiLine(isMultiLineValue, allowsMulti, allowsSingle, hasMultiLineValue bool) bool {
	if isMultiLineValue {
		return !allowsMulti
	}
	return hasMultiLineValue && !allowsSingle
}

// clearResolutionsOnPositionChange re-evaluates whenever this print point
// is reached from a different writer position than last time (a restart
// moved it), clearing every tracked value info so they get resolved fresh
// instead of returning stale values from the abandoned walk.
func clearResolutionsOnPositionChange(a *printitems.Arena, values *[]valueData, endLine *printitems.Info) *printitems.List {
	col := a.NewTargetedInfo("clearer-column", printitems.KindColumnNumber)
	line := a.NewTargetedInfo("clearer-line", printitems.KindLineNumber)

	resolve := func(ctx printitems.ConditionResolverContext) *bool {
		colWI, ok := ctx.ResolvedInfo(col)
		if !ok {
			return nil
		}
		lineWI, ok := ctx.ResolvedInfo(line)
		if !ok {
			return nil
		}
		live := ctx.WriterInfo()
		if colWI.ColumnNumber != live.ColumnNumber || lineWI.LineNumber != live.LineNumber {
			for _, vd := range *values {
				ctx.Clear(vd.lineNumber)
				ctx.Clear(vd.isStartOfLine)
				ctx.Clear(vd.lineStartIndent)
			}
			ctx.Clear(endLine)
		}
		return nil
	}

	items := printitems.NewList()
	items.PushCondition(a, a.NewCondition("clearWhenPositionChanges", resolve, nil, nil))
	items.PushInfo(a, line)
	items.PushInfo(a, col)
	return items
}
