package genseparated

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkrune/printcore/pkg/printer"
	"github.com/inkrune/printcore/pkg/printitems"
)

func commaSeparator(a *printitems.Arena) *printitems.List {
	sep := printitems.NewList()
	sep.PushString(a, ",")
	sep.PushSignal(a, printitems.SigSpaceOrNewLine)
	return sep
}

func itemsOf(a *printitems.Arena, text string) *printitems.List {
	l := printitems.NewList()
	l.PushString(a, text)
	return l
}

func TestGenerateStaysSingleLineWhenItFits(t *testing.T) {
	a := printitems.NewArena()

	result := Generate(a, func(isMultiLine *printitems.Condition) []Value {
		return []Value{
			{Items: itemsOf(a, "a")},
			{Items: itemsOf(a, "b")},
			{Items: itemsOf(a, "c")},
		}
	}, Options{
		IndentWidth:          2,
		MultiLineOptions:     SameLineStartHangingIndent(),
		SingleLineSeparator:  commaSeparator(a),
	})

	out, err := printer.Print(result.Items, printer.DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, "a, b, c", out)
}

func TestGenerateForcesNewLinesWhenConfigured(t *testing.T) {
	a := printitems.NewArena()

	result := Generate(a, func(isMultiLine *printitems.Condition) []Value {
		return []Value{
			{Items: itemsOf(a, "a")},
			{Items: itemsOf(a, "b")},
		}
	}, Options{
		ForceUseNewLines:    true,
		IndentWidth:         2,
		MultiLineOptions:    NewLineStart(),
		SingleLineSeparator: commaSeparator(a),
	})

	out, err := printer.Print(result.Items, printer.DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, "\n  a\n  b", out)
}

func TestGenerateWrapsWhenValuesExceedWidth(t *testing.T) {
	cfg := printer.DefaultConfig
	cfg.MaxWidth = 6

	a := printitems.NewArena()
	result := Generate(a, func(isMultiLine *printitems.Condition) []Value {
		return []Value{
			{Items: itemsOf(a, "aaaa")},
			{Items: itemsOf(a, "bbbb")},
		}
	}, Options{
		IndentWidth:         2,
		MultiLineOptions:    NewLineStart(),
		SingleLineSeparator: commaSeparator(a),
	})

	out, err := printer.Print(result.Items, cfg)
	require.NoError(t, err)
	require.Equal(t, "\n  aaaa\n  bbbb", out)
}

func TestGenerateEmptyValuesProducesNoOutput(t *testing.T) {
	a := printitems.NewArena()
	result := Generate(a, func(isMultiLine *printitems.Condition) []Value {
		return nil
	}, Options{
		IndentWidth:         2,
		MultiLineOptions:    NewLineStart(),
		SingleLineSeparator: commaSeparator(a),
	})

	out, err := printer.Print(result.Items, printer.DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, "", out)
}
