// Package format names the document encodings tagdoc reads and writes.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	if err != nil {
//	    return err
//	}
//	node, err := parse.Parse(data, parse.ParseFormat(f))
//
// # Related Packages
//
//   - github.com/signadot/tagdoc/parse - Parse text to a document tree
//   - github.com/signadot/tagdoc/encode - Encode a document tree to text
package format
