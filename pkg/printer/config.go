package printer

import "strings"

// NewLineKind selects the literal bytes a NewLine write-item renders to.
type NewLineKind string

const (
	NewLineLF   NewLineKind = "\n"
	NewLineCRLF NewLineKind = "\r\n"
)

// Config carries printer construction inputs (original §6.3): the maximum
// line width, the indent width used for both column bookkeeping and
// rendering, whether indentation renders as tabs, and the new-line kind.
//
// Fields carry hcl struct tags in the convention used elsewhere in this
// stack for component configuration (see component.Health /
// component.Arguments) even though this package never decodes HCL itself —
// a host wiring printer knobs into its own config file format can decode
// directly into Config without an adapter layer.
type Config struct {
	MaxWidth    int         `hcl:"max_width,optional"`
	IndentWidth int         `hcl:"indent_width,optional"`
	UseTabs     bool        `hcl:"use_tabs,optional"`
	NewLineKind NewLineKind `hcl:"new_line_kind,optional"`
}

// DefaultConfig matches common source-formatter defaults.
var DefaultConfig = Config{
	MaxWidth:    80,
	IndentWidth: 2,
	UseTabs:     false,
	NewLineKind: NewLineLF,
}

func (c Config) indentWidth() int {
	if c.IndentWidth <= 0 {
		return 1
	}
	return c.IndentWidth
}

func (c Config) maxWidth() int {
	if c.MaxWidth <= 0 {
		return 1
	}
	return c.MaxWidth
}

func (c Config) indentUnit() string {
	if c.UseTabs {
		return "\t"
	}
	return strings.Repeat(" ", c.indentWidth())
}

func (c Config) newLineString() string {
	if c.NewLineKind == NewLineCRLF {
		return "\r\n"
	}
	return "\n"
}
