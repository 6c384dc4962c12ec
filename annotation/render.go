package annotation

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Renderer renders leftover placeholders as nothing, and paragraphs and
// list items with all of their attributes. goldmark's own renderers filter
// paragraph and list item attributes down to a fixed HTML allow-list.
//
// Names that are not valid HTML attribute names are never written. Event
// handler names (on*) are written only when html.WithUnsafe is set.
type Renderer struct {
	html.Config
}

// NewRenderer returns a new Renderer.
func NewRenderer() renderer.NodeRenderer {
	return &Renderer{Config: html.NewConfig()}
}

// SetOption implements renderer.SetOptioner.
func (r *Renderer) SetOption(name renderer.OptionName, value interface{}) {
	r.Config.SetOption(name, value)
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *Renderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindAnnotation, r.renderAnnotation)
	reg.Register(ast.KindParagraph, r.renderParagraph)
	reg.Register(ast.KindListItem, r.renderListItem)
}

func (r *Renderer) renderAnnotation(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	return ast.WalkSkipChildren, nil
}

func (r *Renderer) renderParagraph(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<p")
		r.renderAttributes(w, n)
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</p>\n")
	}
	return ast.WalkContinue, nil
}

func (r *Renderer) renderListItem(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<li")
		r.renderAttributes(w, n)
		_ = w.WriteByte('>')
		if fc := n.FirstChild(); fc != nil {
			if _, ok := fc.(*ast.TextBlock); !ok {
				_ = w.WriteByte('\n')
			}
		}
	} else {
		_, _ = w.WriteString("</li>\n")
	}
	return ast.WalkContinue, nil
}

// renderAttributes writes every writable attribute of n as ` name="value"`.
func (r *Renderer) renderAttributes(w util.BufWriter, n ast.Node) {
	for _, a := range n.Attributes() {
		if !r.writableName(a.Name) {
			continue
		}
		var value []byte
		switch v := a.Value.(type) {
		case []byte:
			value = v
		case string:
			value = []byte(v)
		default:
			continue
		}
		_ = w.WriteByte(' ')
		_, _ = w.Write(a.Name)
		_, _ = w.WriteString(`="`)
		_, _ = w.Write(util.EscapeHTML(value))
		_ = w.WriteByte('"')
	}
}

func (r *Renderer) writableName(name []byte) bool {
	if !validAttributeName(name) {
		return false
	}
	return r.Unsafe || !bytes.HasPrefix(bytes.ToLower(name), []byte("on"))
}

// validAttributeName matches [A-Za-z_:][-A-Za-z0-9_:.]*.
func validAttributeName(name []byte) bool {
	if len(name) == 0 {
		return false
	}
	for i, ch := range name {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch == '_', ch == ':':
		case i > 0 && (ch >= '0' && ch <= '9' || ch == '-' || ch == '.'):
		default:
			return false
		}
	}
	return true
}
