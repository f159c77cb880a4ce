// Package libdiff computes and applies differences between documents.
//
// # Usage
//
//	// Compute the changes taking one tree to another
//	changes := libdiff.Diff(oldNode, newNode)
//
//	// Apply them to a copy of the original
//	patched, err := libdiff.Apply(oldNode, changes)
//
// Children are matched by name. A child present on only one side is an
// Insert or a Delete of the whole subtree; a child present on both sides
// is compared recursively. Text differences are reported as Text changes
// carrying a character level diff.
//
// # Related Packages
//
//   - github.com/signadot/tagdoc/ir - document tree
//   - github.com/signadot/tagdoc/patch - JSON merge and JSON patch documents
package libdiff
