// Package generate turns a parsed internal/exampleplugin/ast.Value into a
// pkg/printitems.List, the shape every language plugin is expected to
// produce: parse with your own grammar, then hand the printer an IR built
// from pkg/printitems and pkg/genseparated rather than writing bytes
// directly.
package generate

import (
	"github.com/inkrune/printcore/internal/exampleplugin/ast"
	"github.com/inkrune/printcore/pkg/genseparated"
	"github.com/inkrune/printcore/pkg/printitems"
)

// Value builds the print-items IR for a single AST value.
func Value(a *printitems.Arena, v ast.Value) *printitems.List {
	switch n := v.(type) {
	case *ast.Null:
		return leaf(a, "null")
	case *ast.Bool:
		if n.Value {
			return leaf(a, "true")
		}
		return leaf(a, "false")
	case *ast.Number:
		return leaf(a, n.Text)
	case *ast.String:
		return leaf(a, n.Text)
	case *ast.Array:
		return array(a, n)
	case *ast.Object:
		return object(a, n)
	default:
		return leaf(a, "")
	}
}

func leaf(a *printitems.Arena, text string) *printitems.List {
	l := printitems.NewList()
	l.PushString(a, text)
	return l
}

func array(a *printitems.Arena, n *ast.Array) *printitems.List {
	result := genseparated.Generate(a, func(isMultiLine *printitems.Condition) []genseparated.Value {
		values := make([]genseparated.Value, len(n.Elements))
		for i, el := range n.Elements {
			items := Value(a, el)
			items.Extend(trailingCommaIfMultiLine(a, isMultiLine))
			values[i] = genseparated.Value{
				Items:     items,
				LinesSpan: &genseparated.LinesSpan{StartLine: el.StartLine(), EndLine: el.EndLine()},
			}
		}
		return values
	}, genseparated.Options{
		IndentWidth:         2,
		AllowBlankLines:     true,
		MultiLineOptions:    genseparated.SurroundNewlinesIndented(),
		SingleLineSeparator: commaSeparator(a),
	})

	items := printitems.NewList()
	items.PushString(a, "[")
	items.PushPath(a, result.Items)
	items.PushString(a, "]")
	return items
}

func object(a *printitems.Arena, n *ast.Object) *printitems.List {
	result := genseparated.Generate(a, func(isMultiLine *printitems.Condition) []genseparated.Value {
		values := make([]genseparated.Value, len(n.Members))
		for i, m := range n.Members {
			items := member(a, m)
			items.Extend(trailingCommaIfMultiLine(a, isMultiLine))
			values[i] = genseparated.Value{
				Items:     items,
				LinesSpan: &genseparated.LinesSpan{StartLine: m.StartLine(), EndLine: m.EndLine()},
			}
		}
		return values
	}, genseparated.Options{
		IndentWidth:                 2,
		AllowBlankLines:             true,
		MultiLineOptions:            genseparated.SurroundNewlinesIndented(),
		SingleLineSeparator:         commaSeparator(a),
		SingleLineSpaceAtStart:      true,
		SingleLineSpaceAtEnd:        true,
		ForcePossibleNewLineAtStart: true,
	})

	items := printitems.NewList()
	items.PushString(a, "{")
	items.PushPath(a, result.Items)
	items.PushString(a, "}")
	return items
}

func member(a *printitems.Arena, m *ast.Member) *printitems.List {
	items := printitems.NewList()
	items.PushString(a, m.Key)
	items.PushString(a, ": ")
	items.Extend(Value(a, m.Value))
	return items
}

func commaSeparator(a *printitems.Arena) *printitems.List {
	sep := printitems.NewList()
	sep.PushString(a, ",")
	sep.PushSignal(a, printitems.SigSpaceOrNewLine)
	return sep
}

// trailingCommaIfMultiLine appends "," to a value only when the enclosing
// separated list is rendering multi-line: genseparated's own separator
// handles the inter-value comma on the single-line branch, but leaves
// trailing/leading punctuation in multi-line mode up to the caller.
func trailingCommaIfMultiLine(a *printitems.Arena, isMultiLine *printitems.Condition) *printitems.List {
	comma := printitems.NewList()
	comma.PushString(a, ",")

	resolve := func(ctx printitems.ConditionResolverContext) *bool {
		return ctx.Resolved(isMultiLine)
	}
	out := printitems.NewList()
	out.PushCondition(a, a.NewCondition("trailingCommaIfMultiLine", resolve, comma, nil))
	return out
}
