package generate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkrune/printcore/internal/exampleplugin/parser"
	"github.com/inkrune/printcore/pkg/printer"
	"github.com/inkrune/printcore/pkg/printitems"
)

func format(t *testing.T, src string, cfg printer.Config) string {
	t.Helper()
	v, err := parser.ParseValue([]byte(src))
	require.NoError(t, err)

	a := printitems.NewArena()
	items := Value(a, v)

	out, err := printer.Print(items, cfg)
	require.NoError(t, err)
	return out
}

func TestFormatScalarsPassThrough(t *testing.T) {
	require.Equal(t, "null", format(t, "null", printer.DefaultConfig))
	require.Equal(t, "true", format(t, "true", printer.DefaultConfig))
	require.Equal(t, `"hi"`, format(t, `"hi"`, printer.DefaultConfig))
	require.Equal(t, "-3.5", format(t, "-3.5", printer.DefaultConfig))
}

func TestFormatArrayStaysSingleLineWhenItFits(t *testing.T) {
	out := format(t, "[1,2,3]", printer.DefaultConfig)
	require.Equal(t, "[1, 2, 3]", out)
}

func TestFormatArrayWrapsWhenTooWide(t *testing.T) {
	cfg := printer.DefaultConfig
	cfg.MaxWidth = 10
	out := format(t, "[111,222,333]", cfg)
	require.Equal(t, "[\n  111,\n  222,\n  333,\n]", out)
}

func TestFormatObjectStaysSingleLineWhenItFits(t *testing.T) {
	out := format(t, `{a: 1, b: 2}`, printer.DefaultConfig)
	require.Equal(t, "{ a: 1, b: 2 }", out)
}

func TestFormatObjectWrapsWhenTooWide(t *testing.T) {
	cfg := printer.DefaultConfig
	cfg.MaxWidth = 10
	out := format(t, `{aaaa: 1, bbbb: 2}`, cfg)
	require.Equal(t, "{\n  aaaa: 1,\n  bbbb: 2,\n}", out)
}

func TestFormatNestedStructureStaysSingleLineWhenItFits(t *testing.T) {
	out := format(t, `{items: [1, 2], flag: true}`, printer.DefaultConfig)
	require.Equal(t, "{ items: [1, 2], flag: true }", out)
}

func TestFormatNestedStructureWrapsAtEveryLevelWhenForced(t *testing.T) {
	cfg := printer.DefaultConfig
	cfg.MaxWidth = 1
	out := format(t, `{items: [1, 2], flag: true}`, cfg)
	require.Equal(t, "{\n  items: [\n    1,\n    2,\n  ],\n  flag: true,\n}", out)
}
