package printer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkrune/printcore/pkg/printitems"
)

func build(t *testing.T, fn func(a *printitems.Arena, l *printitems.List)) *printitems.List {
	t.Helper()
	a := printitems.NewArena()
	l := printitems.NewList()
	fn(a, l)
	return l
}

func TestPrintPlainStrings(t *testing.T) {
	l := build(t, func(a *printitems.Arena, l *printitems.List) {
		l.PushString(a, "hello")
		l.PushSignal(a, printitems.SigSpaceOrNewLine)
		l.PushString(a, "world")
	})

	out, err := Print(l, DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, "hello world", out)
}

func TestSpaceOrNewLineConvertsOnOverflow(t *testing.T) {
	cfg := DefaultConfig
	cfg.MaxWidth = 10

	l := build(t, func(a *printitems.Arena, l *printitems.List) {
		l.PushString(a, "aaaaaaaa")
		l.PushSignal(a, printitems.SigSpaceOrNewLine)
		l.PushString(a, "bbbbbbbb")
	})

	out, err := Print(l, cfg)
	require.NoError(t, err)
	require.Equal(t, "aaaaaaaa\nbbbbbbbb", out)
}

func TestSpaceOrNewLineStaysSpaceWhenItFits(t *testing.T) {
	cfg := DefaultConfig
	cfg.MaxWidth = 80

	l := build(t, func(a *printitems.Arena, l *printitems.List) {
		l.PushString(a, "aaaaaaaa")
		l.PushSignal(a, printitems.SigSpaceOrNewLine)
		l.PushString(a, "bbbbbbbb")
	})

	out, err := Print(l, cfg)
	require.NoError(t, err)
	require.Equal(t, "aaaaaaaa bbbbbbbb", out)
}

func TestIndentAddsLeadingWhitespaceAfterNewLine(t *testing.T) {
	l := build(t, func(a *printitems.Arena, l *printitems.List) {
		l.PushString(a, "outer")
		l.PushSignal(a, printitems.SigStartIndent)
		l.PushSignal(a, printitems.SigNewLine)
		l.PushString(a, "inner")
		l.PushSignal(a, printitems.SigFinishIndent)
	})

	out, err := Print(l, DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, "outer\n  inner", out)
}

func TestQueueStartIndentRealizesAtNextWrite(t *testing.T) {
	l := build(t, func(a *printitems.Arena, l *printitems.List) {
		l.PushSignal(a, printitems.SigQueueStartIndent)
		l.PushSignal(a, printitems.SigNewLine)
		l.PushString(a, "queued")
	})

	out, err := Print(l, DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, "\n  queued", out)
}

func TestConditionTakesTrueBranchWhenResolverSaysTrue(t *testing.T) {
	l := build(t, func(a *printitems.Arena, l *printitems.List) {
		trueBranch := printitems.NewList()
		trueBranch.PushString(a, "yes")
		falseBranch := printitems.NewList()
		falseBranch.PushString(a, "no")

		resolve := func(ctx printitems.ConditionResolverContext) *bool {
			v := true
			return &v
		}
		cond := a.NewCondition("always-true", resolve, trueBranch, falseBranch)
		l.PushCondition(a, cond)
	})

	out, err := Print(l, DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, "yes", out)
}

func TestConditionDependsOnInfoAndReevaluatesOnResolve(t *testing.T) {
	l := build(t, func(a *printitems.Arena, l *printitems.List) {
		info := a.NewInfo("end-of-header")

		trueBranch := printitems.NewList()
		trueBranch.PushString(a, "wide")
		falseBranch := printitems.NewList()
		falseBranch.PushString(a, "narrow")

		resolve := func(ctx printitems.ConditionResolverContext) *bool {
			wi, ok := ctx.ResolvedInfo(info)
			if !ok {
				return nil
			}
			v := wi.ColumnNumber > 3
			return &v
		}
		cond := a.NewCondition("header-width", resolve, trueBranch, falseBranch).DependsOn(info)
		cond = a.Store(cond)

		l.PushCondition(a, cond)
		l.PushString(a, "1234")
		l.PushInfo(a, info)
	})

	out, err := Print(l, DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, "wide1234", out)
}

func TestAntiOscillationKeepsTrueOnceResolved(t *testing.T) {
	l := build(t, func(a *printitems.Arena, l *printitems.List) {
		calls := 0
		trueBranch := printitems.NewList()
		trueBranch.PushString(a, "T")
		falseBranch := printitems.NewList()
		falseBranch.PushString(a, "F")

		resolve := func(ctx printitems.ConditionResolverContext) *bool {
			calls++
			v := calls == 1
			return &v
		}
		cond := a.Store(a.NewCondition("flip-flop", resolve, trueBranch, falseBranch))

		l.PushCondition(a, cond)
		reeval := a.NewConditionReevaluation(cond)
		l.PushConditionReevaluation(a, reeval)
	})

	out, err := Print(l, DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, "T", out)
}

func TestAnchorPatchesTargetLineNumberByDelta(t *testing.T) {
	l := build(t, func(a *printitems.Arena, l *printitems.List) {
		target := a.NewInfo("target")
		anchor := a.NewAnchor(target)

		l.PushAnchor(a, anchor)
		l.PushInfo(a, target)
		l.PushSignal(a, printitems.SigNewLine)
		l.PushAnchor(a, anchor)
	})

	out, err := Print(l, DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, "\n", out)
}

func TestRcPathSharedAcrossTwoParents(t *testing.T) {
	a := printitems.NewArena()
	shared := printitems.NewList()
	shared.PushString(a, "shared")

	first := printitems.NewList()
	first.PushString(a, "a:")
	first.PushPath(a, shared)

	second := printitems.NewList()
	second.PushString(a, "b:")
	second.PushPath(a, shared)

	outA, err := Print(first, DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, "a:shared", outA)

	outB, err := Print(second, DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, "b:shared", outB)
}

func TestForceNoNewLinesSuppressesNewLineSignal(t *testing.T) {
	l := build(t, func(a *printitems.Arena, l *printitems.List) {
		l.PushSignal(a, printitems.SigStartForceNoNewLines)
		l.PushString(a, "a")
		l.PushSignal(a, printitems.SigNewLine)
		l.PushString(a, "b")
		l.PushSignal(a, printitems.SigFinishForceNoNewLines)
	})

	out, err := Print(l, DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, "ab", out)
}

func TestSpaceIfNotTrailingIsPoppedBeforeNewLine(t *testing.T) {
	l := build(t, func(a *printitems.Arena, l *printitems.List) {
		l.PushString(a, "a")
		l.PushSignal(a, printitems.SigSpaceIfNotTrailing)
		l.PushSignal(a, printitems.SigNewLine)
		l.PushString(a, "b")
	})

	out, err := Print(l, DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, "a\nb", out)
}

func TestEmptyListPrintsEmptyString(t *testing.T) {
	out, err := Print(nil, DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, "", out)
}

func TestSpaceIfNotTrailingIsNoOpWhenNewLineAlreadyExpected(t *testing.T) {
	l := build(t, func(a *printitems.Arena, l *printitems.List) {
		l.PushString(a, "header")
		l.PushSignal(a, printitems.SigExpectNewLine)
		l.PushSignal(a, printitems.SigSpaceIfNotTrailing)
		l.PushSignal(a, printitems.SigNewLine)
		l.PushString(a, "body")
	})

	out, err := Print(l, DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, "header\nbody", out)
}

func TestLookAheadDuringReevaluationReusesReevaluationSavePoint(t *testing.T) {
	a := printitems.NewArena()
	p := New(DefaultConfig, nil)

	info := a.NewTargetedInfo("dependency", printitems.KindColumnNumber)

	outer := p.createSavePoint("stored-cond:outer")
	p.resolvingSavePoint = outer

	ctx := &resolverContext{p: p, writerInfoAtCondition: p.writer.CurrentWriterInfo()}
	wi, ok := ctx.ResolvedInfo(info)
	require.False(t, ok)
	require.Equal(t, printitems.WriterInfo{}, wi)

	got, exists := p.lookAheadInfoSavePoints[info.Kind][info.ID]
	require.True(t, exists)
	require.Same(t, outer, got, "a look-ahead created while resolvingSavePoint is set must reuse it, not anchor at the live node")

	p.resolvingSavePoint = nil
	other := a.NewTargetedInfo("not-reevaluating", printitems.KindColumnNumber)
	_, ok = ctx.ResolvedInfo(other)
	require.False(t, ok)
	fresh, exists := p.lookAheadInfoSavePoints[other.Kind][other.ID]
	require.True(t, exists)
	require.NotSame(t, outer, fresh, "with no reevaluation in progress, a look-ahead must anchor at a freshly created save-point")
}
