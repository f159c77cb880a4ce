package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Edit  bool
	Query bool
	Patch bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("TAGDOC_DEBUG_PARSE")
	d.Edit = boolEnv("TAGDOC_DEBUG_EDIT")
	d.Query = boolEnv("TAGDOC_DEBUG_QUERY")
	d.Patch = boolEnv("TAGDOC_DEBUG_PATCH")
	d.Diff = boolEnv("TAGDOC_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Edit() bool {
	return d.Edit
}
func Query() bool {
	return d.Query
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}
