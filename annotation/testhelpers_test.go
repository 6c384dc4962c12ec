package annotation

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
)

func newMarkdown(opts ...Option) goldmark.Markdown {
	return goldmark.New(goldmark.WithExtensions(extension.Table, New(opts...)))
}

func render(t *testing.T, src string, opts ...Option) string {
	t.Helper()
	out, err := ConvertString(newMarkdown(opts...), src)
	require.NoError(t, err)
	return out
}

func parseDoc(t *testing.T, src string, opts ...Option) ast.Node {
	t.Helper()
	doc, err := Parse(newMarkdown(opts...), []byte(src))
	require.NoError(t, err)
	return doc
}

// annotations returns every placeholder still present under root.
func annotations(root ast.Node) []*Annotation {
	var out []*Annotation
	for _, n := range collectNodes(root, isAnnotation) {
		out = append(out, n.(*Annotation))
	}
	return out
}

// firstOfKind returns the first node of kind under root in document order.
func firstOfKind(root ast.Node, kind ast.NodeKind) ast.Node {
	nodes := collectNodes(root, func(n ast.Node) bool { return n.Kind() == kind })
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}
