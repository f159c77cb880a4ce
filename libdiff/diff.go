package libdiff

import (
	"github.com/signadot/tagdoc/debug"
	"github.com/signadot/tagdoc/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes taking from to to, in pre-order of the
// trees. Identical trees produce no changes.
func Diff(from, to *ir.Node) []Change {
	if from.Name() != to.Name() {
		return []Change{{Kind: Replace, Path: "/" + from.Name(), From: from, To: to}}
	}
	return diffNode(nil, "/"+from.Name(), from, to)
}

func diffNode(res []Change, path string, from, to *ir.Node) []Change {
	if from.Text != to.Text {
		res = append(res, Change{Kind: Text, Path: path, FromText: from.Text, ToText: to.Text})
	}
	fromKids, toKids := from.Children(), to.Children()
	nameMap := map[string]rune{}
	fromRunes := mapNamesTo(nameMap, fromKids)
	toRunes := mapNamesTo(nameMap, toKids)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	if debug.Diff() {
		debug.Logf("diff children of %s: %d ops\n", path, len(diffs))
	}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		for range []rune(diff.Text) {
			switch diff.Type {
			case diffpatch.DiffDelete:
				f := fromKids[fi]
				res = append(res, Change{Kind: Delete, Path: path + "/" + f.Name(), From: f})
				fi++
			case diffpatch.DiffInsert:
				t := toKids[ti]
				res = append(res, Change{Kind: Insert, Path: path + "/" + t.Name(), To: t})
				ti++
			case diffpatch.DiffEqual:
				f := fromKids[fi]
				res = diffNode(res, path+"/"+f.Name(), f, toKids[ti])
				fi++
				ti++
			}
		}
	}
	return res
}

// mapNamesTo gives each distinct child name a rune so the child lists
// can be diffed as strings.
func mapNamesTo(m map[string]rune, nodes []*ir.Node) []rune {
	rs := make([]rune, len(nodes))
	for i, n := range nodes {
		r, ok := m[n.Name()]
		if !ok {
			r = rune(len(m))
			m[n.Name()] = r
		}
		rs[i] = r
	}
	return rs
}
