package annotation

import (
	"github.com/yuin/goldmark/ast"
)

// Dialect selects which annotation delimiters are recognized.
type Dialect int

const (
	// Plain recognizes `{...}` on a single line, without escapes or nesting.
	Plain Dialect = iota
	// Escaped recognizes `\{...\}`, so bare braces stay literal text.
	Escaped
)

func (d Dialect) String() string {
	switch d {
	case Plain:
		return "plain"
	case Escaped:
		return "escaped"
	}
	return "unknown"
}

// KindAnnotation is the NodeKind of *Annotation.
var KindAnnotation = ast.NewNodeKind("Annotation")

// Annotation is a placeholder for a recognized span. It holds the raw
// interior until the Transformer interprets it and removes the node.
type Annotation struct {
	ast.BaseInline

	// Value is the captured interior without delimiters. It is nil until
	// the scanner closes the span.
	Value []byte

	Dialect Dialect
}

// NewAnnotation returns a placeholder carrying value.
func NewAnnotation(value []byte, dialect Dialect) *Annotation {
	return &Annotation{Value: value, Dialect: dialect}
}

// Kind implements ast.Node.Kind.
func (n *Annotation) Kind() ast.NodeKind {
	return KindAnnotation
}

// Dump implements ast.Node.Dump.
func (n *Annotation) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Value":   string(n.Value),
		"Dialect": n.Dialect.String(),
	}, nil)
}

// isAnnotation reports whether node is a placeholder.
func isAnnotation(node ast.Node) bool {
	return node != nil && node.Kind() == KindAnnotation
}
