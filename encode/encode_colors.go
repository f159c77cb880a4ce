package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	SepColor ColorAttr = iota
	OpenColor
	CloseColor
	TextColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			SepColor:   color.RGB(196, 128, 128).SprintfFunc(),
			OpenColor:  color.RGB(128, 168, 196).SprintfFunc(),
			CloseColor: color.RGB(74, 92, 138).SprintfFunc(),
			TextColor:  color.RGB(8, 196, 16).SprintfFunc(),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
