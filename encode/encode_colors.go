package encode

import (
	"strings"

	"github.com/signadot/tabflow/reflow"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind reflow.LineKind
	Attr ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	PrefixColor
	SepColor
	FretColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

// NewColors returns the default palette. Colors are always emitted;
// callers decide whether the destination is a terminal.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	lane := Colorable{Kind: reflow.LaneLine}
	lane.Attr = PrefixColor
	colors.Map[lane] = sprintf(color.New(color.FgHiCyan, color.Bold))
	lane.Attr = SepColor
	colors.Map[lane] = sprintf(color.RGB(255, 0, 196))
	lane.Attr = FretColor
	colors.Map[lane] = sprintf(color.RGB(128, 216, 236))
	lane.Attr = ValueColor
	colors.Map[lane] = sprintf(color.RGB(96, 96, 96))

	colors.Map[Colorable{Kind: reflow.LabelLine, Attr: ValueColor}] = sprintf(color.RGB(196, 168, 128))
	colors.Map[Colorable{Kind: reflow.PassLine, Attr: ValueColor}] = sprintf(color.New(color.FgBlue))
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func sprintf(c *color.Color) func(string, ...any) string {
	c.EnableColor()
	return c.SprintfFunc()
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k reflow.LineKind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k reflow.LineKind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
