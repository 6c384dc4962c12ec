// Package annotation is a goldmark extension for trailing attribute
// annotations such as
//
//	some text{.note #intro}
//	- item{data-state=open}
//	paragraph **bold**{.red} continues
//
// Processing happens in two phases:
//
//   - Scanner: an inline parser recognizes a `{...}` span (or `\{...\}` in the
//     escaped dialect) and emits an *Annotation placeholder carrying the raw
//     interior text. Anything it cannot commit to is rewound and left to the
//     rest of the markdown grammar.
//   - Transformer: after parsing, each placeholder is interpreted with
//     attrs.Parse and its properties are merged onto the node it decorates
//     (the previous sibling, the enclosing paragraph, or the enclosing list
//     item). The placeholder is then removed from the tree.
//
// Properties end up as goldmark node attributes, so any renderer that emits
// attributes picks them up. The extension also registers renderers for
// paragraphs and list items that emit every attribute with a valid HTML name.
//
// Usage:
//
//	md := goldmark.New(goldmark.WithExtensions(annotation.Extension))
//	var buf bytes.Buffer
//	if err := annotation.Convert(md, []byte("some text{.green}"), &buf); err != nil {
//	    log.Fatal(err)
//	}
//	// <p class="green">some text</p>
//
// The plain dialect never fails: a malformed span stays literal text. The
// escaped dialect (WithEscaped) reports an *UnclosedError when the input ends
// inside a span, and Parse and Convert return it.
package annotation
