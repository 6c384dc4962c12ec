package annotation

import (
	"log/slog"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/manuelmeister/goldmark-attributes/attrs"
	"github.com/manuelmeister/goldmark-attributes/internal/logging"
)

// Transformer moves annotation properties onto the nodes they decorate and
// removes the placeholders.
type Transformer struct {
	logger *slog.Logger
}

// NewTransformer returns a Transformer that reports attachments to logger.
// A nil logger discards them.
func NewTransformer(logger *slog.Logger) *Transformer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Transformer{logger: logger}
}

// Transform implements parser.ASTTransformer. It does nothing when the
// scanner recorded a fatal error.
func (t *Transformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	if Err(pc) != nil {
		return
	}
	t.Attach(doc)
}

// Attach runs the attachment passes over the tree rooted at root. The order
// is fixed: each pass relies on the simplifications of the previous one.
func (t *Transformer) Attach(root ast.Node) {
	t.collapseStandalone(root)
	t.hoistListItems(root)
	t.attachSiblings(root)
}

// isParagraph reports whether node is a paragraph. Tight list items hold
// their text in a TextBlock, which counts as a paragraph here.
func isParagraph(node ast.Node) bool {
	k := node.Kind()
	return k == ast.KindParagraph || k == ast.KindTextBlock
}

func isText(node ast.Node) bool {
	k := node.Kind()
	return k == ast.KindText || k == ast.KindString
}

// collectNodes returns every node under root that satisfies match, in
// document order. Matched nodes are not descended into.
func collectNodes(root ast.Node, match func(ast.Node) bool) []ast.Node {
	var out []ast.Node
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if match(n) {
			out = append(out, n)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return out
}

// collapseStandalone replaces every paragraph whose only child is an
// annotation with that annotation.
func (t *Transformer) collapseStandalone(root ast.Node) {
	paragraphs := collectNodes(root, func(n ast.Node) bool {
		return isParagraph(n) && n.ChildCount() == 1 && isAnnotation(n.FirstChild())
	})
	for _, para := range paragraphs {
		parent := para.Parent()
		if parent == nil {
			continue
		}
		ann := para.FirstChild()
		para.RemoveChild(para, ann)
		parent.ReplaceChild(parent, para, ann)
	}
}

// hoistListItems merges the first annotation of a paragraph directly under
// a list item onto the list item.
func (t *Transformer) hoistListItems(root ast.Node) {
	paragraphs := collectNodes(root, func(n ast.Node) bool {
		return isParagraph(n) && n.Parent() != nil && n.Parent().Kind() == ast.KindListItem
	})
	for _, para := range paragraphs {
		var first *Annotation
		for c := para.FirstChild(); c != nil; c = c.NextSibling() {
			if ann, ok := c.(*Annotation); ok {
				first = ann
				break
			}
		}
		if first == nil {
			continue
		}
		t.merge(para.Parent(), first)
		para.RemoveChild(para, first)
	}
}

// attachSiblings handles annotations that follow other inline content.
// After plain text the properties decorate the parent; after any other node
// they decorate that node. Leftover annotations before it are skipped. An
// annotation with nothing else before it, or alone in its parent, is left
// in place.
func (t *Transformer) attachSiblings(root ast.Node) {
	for _, n := range collectNodes(root, isAnnotation) {
		ann := n.(*Annotation)
		parent := ann.Parent()
		if parent == nil || parent.ChildCount() < 2 {
			continue
		}
		prev := ann.PreviousSibling()
		for prev != nil && isAnnotation(prev) {
			prev = prev.PreviousSibling()
		}
		if prev == nil {
			continue
		}
		if isText(prev) {
			t.merge(parent, ann)
		} else {
			t.merge(prev, ann)
		}
		parent.RemoveChild(parent, ann)
	}
}

// merge parses the annotation and sets each property on target, replacing
// attributes of the same name.
func (t *Transformer) merge(target ast.Node, ann *Annotation) {
	props := attrs.Parse(string(ann.Value))
	for _, p := range props.All() {
		target.SetAttribute([]byte(p.Key), []byte(p.Value))
	}
	t.logger.Debug("attached annotation",
		slog.String("target", target.Kind().String()),
		slog.Int("properties", props.Len()),
		slog.String("raw", string(ann.Value)),
	)
}

// Properties returns the attributes of node as a property set. Values that
// are neither []byte nor string are skipped.
func Properties(node ast.Node) *attrs.Properties {
	props := attrs.NewProperties()
	for _, a := range node.Attributes() {
		switch v := a.Value.(type) {
		case []byte:
			props.Set(string(a.Name), string(v))
		case string:
			props.Set(string(a.Name), v)
		}
	}
	return props
}
