// Package attrs parses the interior of an attribute annotation into an
// ordered property set.
//
// The accepted syntax is the one popularised by markdown-it-attrs:
//
//	#id          sets the id property (last one wins)
//	.class       appends to the class property (space joined, duplicates kept)
//	key=value    sets key to an unquoted value
//	key="a b"    sets key to a quoted value, no escape processing
//	key          sets key to the empty string
//
// Tokens are separated by whitespace. Parsing is permissive: fragments that
// do not form a property are skipped and Parse never fails.
//
// Usage:
//
//	props := attrs.Parse(`.note #intro data-level="2"`)
//	for _, p := range props.All() {
//	    fmt.Println(p.Key, p.Value)
//	}
package attrs
