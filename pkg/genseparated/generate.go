package genseparated

import "github.com/inkrune/printcore/pkg/printitems"

// Generate builds the IR for a separated list of values, deciding at print
// time (not at build time) whether the list renders on one line or one
// value per line. valuesFn receives the already-stored is-multi-line
// condition so individual values can make their own hanging-indent
// decisions contingent on the same layout choice, mirroring how a plugin
// builds each value's items lazily against the shared condition.
func Generate(a *printitems.Arena, valuesFn func(isMultiLine *printitems.Condition) []Value, opts Options) Result {
	startCol := a.NewTargetedInfo("startSeparatedValues-col", printitems.KindColumnNumber)
	startLineStartCol := a.NewTargetedInfo("startSeparatedValues-lsc", printitems.KindLineStartColumn)
	startLine := a.NewTargetedInfo("startSeparatedValues-line", printitems.KindLineNumber)
	endLine := a.NewTargetedInfo("endSeparatedValues-line", printitems.KindLineNumber)

	values := &[]valueData{}

	isStandalone := a.Store(isStartStandaloneLine(a, startCol, startLineStartCol))

	var isMultiLine *printitems.Condition
	switch {
	case opts.ForceUseNewLines:
		isMultiLine = a.NewCondition("alwaysMultiLine", func(printitems.ConditionResolverContext) *bool {
			v := true
			return &v
		}, nil, nil)
	case opts.PreferHanging:
		if !opts.MultiLineOptions.NewLineAtStart {
			isMultiLine = a.NewCondition("neverMultiLine", func(printitems.ConditionResolverContext) *bool {
				v := false
				return &v
			}, nil, nil)
		} else {
			isMultiLine = isMultiLineForHanging(a, values, isStandalone)
		}
	default:
		isMultiLine = isMultiLineForMultiLine(a, startLine, values, isStandalone, endLine)
	}
	isMultiLine = a.Store(isMultiLine)
	reeval := a.NewConditionReevaluation(isMultiLine)

	items := printitems.NewList()
	items.PushInfo(a, startCol)
	items.PushInfo(a, startLineStartCol)
	items.PushInfo(a, startLine)
	items.Extend(clearResolutionsOnPositionChange(a, values, endLine))
	items.PushCondition(a, isStandalone)
	items.PushCondition(a, isMultiLine)

	inputValues := valuesFn(isMultiLine)
	hasValues := len(inputValues) > 0
	generated := buildValues(a, inputValues, values, isMultiLine, opts)

	trueBranch := printitems.NewList()
	if opts.MultiLineOptions.NewLineAtStart {
		trueBranch.PushSignal(a, printitems.SigNewLine)
	}
	if opts.MultiLineOptions.WithIndent {
		trueBranch.PushSignal(a, printitems.SigStartIndent)
	}
	trueBranch.PushPath(a, generated)
	if opts.MultiLineOptions.WithIndent {
		trueBranch.PushSignal(a, printitems.SigFinishIndent)
	}
	if opts.MultiLineOptions.NewLineAtEnd {
		trueBranch.PushSignal(a, printitems.SigNewLine)
	}

	falseBranch := printitems.NewList()
	if opts.SingleLineSpaceAtStart {
		falseBranch.PushSignal(a, printitems.SigSpaceIfNotTrailing)
		falseBranch.PushSignal(a, printitems.SigPossibleNewLine)
	}
	if hasValues && opts.MultiLineOptions.NewLineAtStart {
		threshold := opts.IndentWidth
		if opts.SingleLineSpaceAtStart {
			threshold++
		}
		if opts.ForcePossibleNewLineAtStart {
			threshold = 0
		}
		possible := printitems.NewList()
		possible.PushSignal(a, printitems.SigPossibleNewLine)
		falseBranch.PushCondition(a, ifAboveWidth(a, threshold, possible))
	}
	falseBranch.PushPath(a, generated)
	if opts.SingleLineSpaceAtEnd {
		falseBranch.PushString(a, " ")
	}

	items.PushCondition(a, a.NewCondition("multiLineOrHanging", isMultiLineResolver(isMultiLine), trueBranch, falseBranch))
	items.PushInfo(a, endLine)
	items.PushConditionReevaluation(a, reeval)

	return Result{Items: items, IsMultiLine: isMultiLine}
}

func isMultiLineResolver(cond *printitems.Condition) printitems.ConditionResolver {
	return func(ctx printitems.ConditionResolverContext) *bool {
		return ctx.Resolved(cond)
	}
}

func buildValues(a *printitems.Arena, inputValues []Value, values *[]valueData, isMultiLine *printitems.Condition, opts Options) *printitems.List {
	items := printitems.NewList()
	count := len(inputValues)
	var lastSpan *LinesSpan
	hadNewLine := false
	var firstLineNumber *printitems.Info
	var lastLineStartIndent *printitems.Info

	for i, val := range inputValues {
		var lineNumber *printitems.Info
		if i == 0 {
			lineNumber = a.NewTargetedInfo("firstValue-line", printitems.KindLineNumber)
			firstLineNumber = lineNumber
		} else {
			lineNumber = a.NewTargetedInfo("value-line", printitems.KindLineNumber)
		}
		startIsStartOfLine := a.NewTargetedInfo("value-isStartOfLine", printitems.KindIsStartOfLine)
		startLineStartIndent := a.NewTargetedInfo("value-lineStartIndent", printitems.KindLineStartIndent)

		*values = append(*values, valueData{
			lineNumber:            lineNumber,
			isStartOfLine:         startIsStartOfLine,
			lineStartIndent:       startLineStartIndent,
			allowInlineMultiLine:  val.AllowInlineMultiLine,
			allowInlineSingleLine: val.AllowInlineSingleLine,
		})

		if i == 0 {
			if opts.MultiLineOptions.NewLineAtStart && count > 1 {
				possible := printitems.NewList()
				possible.PushSignal(a, printitems.SigPossibleNewLine)
				items.PushCondition(a, ifFalse(a, "isNotStartOfLine", isStartOfLineResolver, possible))
			}
			items.PushInfo(a, lineNumber)
			items.PushInfo(a, startIsStartOfLine)
			items.PushInfo(a, startLineStartIndent)
			items.Extend(val.Items)
		} else {
			hasNewLine, hasBlankLine := lineGap(lastSpan, val.LinesSpan)
			useBlankLine := opts.AllowBlankLines && hasBlankLine

			valueWithInfos := printitems.NewList()
			valueWithInfos.PushInfo(a, lineNumber)
			valueWithInfos.PushInfo(a, startIsStartOfLine)
			valueWithInfos.PushInfo(a, startLineStartIndent)
			valueWithInfos.Extend(val.Items)

			trueContent := printitems.NewList()
			if useBlankLine {
				trueContent.PushSignal(a, printitems.SigNewLine)
			}
			forcedNewLine := !opts.MultiLineOptions.MaintainLineBreaks || hasNewLine
			if forcedNewLine {
				trueContent.PushSignal(a, printitems.SigNewLine)
				hadNewLine = true
			} else {
				sep := singleLineSeparatorOrHangingNewLine(a, opts, lastLineStartIndent)
				if i == count-1 && !hadNewLine && firstLineNumber != nil {
					trueContent.PushCondition(a, forcedNewLineIfNoNewLine(a, firstLineNumber, sep))
				} else {
					trueContent.Extend(sep)
				}
			}

			if opts.MultiLineOptions.WithHangingIndent {
				trueContent.PushCondition(a, indentIfStartOfLine(a, valueWithInfos))
			} else {
				trueContent.Extend(valueWithInfos)
			}

			falseContent := printitems.NewList()
			if opts.SingleLineSeparator != nil {
				sepCopy := printitems.NewList()
				sepCopy.PushPath(a, opts.SingleLineSeparator)
				falseContent.Extend(sepCopy)
			}
			falseContent.PushCondition(a, indentIfStartOfLine(a, valueWithInfos))

			items.PushCondition(a, a.NewCondition("multiLineOrHangingValue", isMultiLineResolver(isMultiLine), trueContent, falseContent))
		}

		lastSpan = val.LinesSpan
		lastLineStartIndent = startLineStartIndent
	}

	return items
}

// singleLineSeparatorOrHangingNewLine picks a newline when the previous
// value's line is hanging (its line-start indent has since moved out from
// under it), else the configured single-line separator.
func singleLineSeparatorOrHangingNewLine(a *printitems.Arena, opts Options, lastLineStartIndent *printitems.Info) *printitems.List {
	if lastLineStartIndent == nil || opts.SingleLineSeparator == nil {
		out := printitems.NewList()
		if opts.SingleLineSeparator != nil {
			out.PushPath(a, opts.SingleLineSeparator)
		}
		return out
	}

	resolve := func(ctx printitems.ConditionResolverContext) *bool {
		wi, ok := ctx.ResolvedInfo(lastLineStartIndent)
		if !ok {
			return nil
		}
		live := ctx.WriterInfo()
		v := wi.LineStartIndent < live.LineStartIndent
		return &v
	}
	trueBranch := printitems.NewList()
	trueBranch.PushSignal(a, printitems.SigNewLine)
	falseBranch := printitems.NewList()
	falseBranch.PushPath(a, opts.SingleLineSeparator)

	out := printitems.NewList()
	out.PushCondition(a, a.NewCondition("newlineIfHanging", resolve, trueBranch, falseBranch))
	return out
}

func forcedNewLineIfNoNewLine(a *printitems.Arena, firstLineNumber *printitems.Info, fallback *printitems.List) *printitems.Condition {
	resolve := func(ctx printitems.ConditionResolverContext) *bool {
		wi, ok := ctx.ResolvedInfo(firstLineNumber)
		if !ok {
			return nil
		}
		v := ctx.WriterInfo().LineNumber != wi.LineNumber
		return &v
	}
	newLine := printitems.NewList()
	newLine.PushSignal(a, printitems.SigNewLine)
	return a.NewCondition("forcedNewLineIfNoNewLine", resolve, fallback, newLine)
}

func lineGap(last, cur *LinesSpan) (hasNewLine, hasBlankLine bool) {
	if last == nil || cur == nil {
		return false, false
	}
	hasNewLine = last.EndLine < cur.StartLine
	threshold := cur.StartLine - 1
	if threshold < 0 {
		threshold = 0
	}
	hasBlankLine = last.EndLine < threshold
	return hasNewLine, hasBlankLine
}
