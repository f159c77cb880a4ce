// Package token provides tokenization support for tag-delimited markup.
//
// [Tokenize] scans a document left to right with a three state machine
// (outside any tag, inside a tag, inside text) and produces a flat
// sequence of open, close and text tokens, each with a [Pos].
//
// Tokenization does not check nesting; that is the job of
// github.com/signadot/tagdoc/parse.
package token
