// Package encode encodes document trees to text.
//
// # Usage
//
//	// Encode to canonical markup
//	err := encode.Encode(root, os.Stdout)
//
//	// Encode with options
//	err := encode.Encode(root, w, encode.Indent(4), encode.Depth(1))
//
//	// Encode the object form as JSON or YAML
//	err := encode.Encode(root, w, encode.EncodeFormat(format.JSONFormat))
//
// With default options markup output is identical to [ir.Node.Render]
// at depth 0.
//
// # Related Packages
//
//   - github.com/signadot/tagdoc/ir - Document tree
//   - github.com/signadot/tagdoc/parse - Parse text to trees
package encode
