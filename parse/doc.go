// Package parse parses tag-delimited markup into document trees.
//
// # Usage
//
//	// Parse markup
//	root, err := parse.Parse([]byte(`<root><child1>hello</child1></root>`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	root, err := parse.ParseString(`<a><b>x</b></a>`)
//
//	// Keep interior whitespace in text
//	root, err := parse.Parse(data, parse.ParseWhitespace(token.WhitespaceTrim))
//
//	// Parse the JSON object form of a document
//	root, err := parse.Parse(data, parse.ParseJSON())
//
// Parsing is all or nothing: on error no tree is returned. Malformed
// input is reported with an error wrapping [ErrMalformed]; input with no
// root element with [ErrEmptyDocument].
//
// # Related Packages
//
//   - github.com/signadot/tagdoc/ir - Document tree
//   - github.com/signadot/tagdoc/encode - Encode trees to text
//   - github.com/signadot/tagdoc/token - Tokenization
package parse
