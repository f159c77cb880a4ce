// Package ir provides the in-memory document tree for tagdoc.
//
// # Overview
//
// A document is a rooted tree of [Node]s. Each node has a name, fixed at
// creation, an optional text body and a set of children keyed by name.
// A node has at most one child with a given name: inserting a second
// child with the same name overwrites the first rather than creating a
// sibling. Children are always kept in ascending name order, and every
// traversal and rendering follows that order.
//
// # Handles
//
// Search and insertion return a [Handle] rather than a bare pointer. A
// handle remembers the generation of the node it denotes; removing a
// node from its tree advances the generation of every node in the
// removed subtree, so handles taken earlier report themselves invalid
// instead of silently pointing at a detached node.
//
//	root, _ := parse.ParseString(`<root><child1>hello</child1></root>`)
//	h := root.Locate("child1", "hello")
//	root.Delete(h)   // true
//	h.Valid()        // false
//	root.Delete(h)   // false
//
// # Mutation
//
//   - [Node.Upsert] inserts or overwrites a direct child.
//   - [Node.Delete] removes any descendant denoted by a handle.
//   - [Node.Remove] removes a direct child by name.
//   - [Node.Attach] adds an existing detached subtree as a child.
//
// # Rendering
//
// [Node.Render] produces the canonical text form: one line per tag, the
// text on its own line, two spaces of indentation per level. No
// escaping is performed.
//
// # Concurrency
//
// Nodes have no internal locking. Callers that share a tree between
// goroutines must serialize access themselves.
//
// # Related Packages
//
//   - github.com/signadot/tagdoc/parse - Parse text to a tree
//   - github.com/signadot/tagdoc/encode - Encode a tree to text
package ir
