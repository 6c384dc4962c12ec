package annotation

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

const defaultPriority = 500

type config struct {
	dialect  Dialect
	logger   *slog.Logger
	priority int
}

// Option configures the extension.
type Option func(*config)

// WithEscaped selects the escaped dialect (`\{...\}`) instead of the plain
// one. Exactly one dialect is active per extension.
func WithEscaped(escaped bool) Option {
	return func(c *config) {
		if escaped {
			c.dialect = Escaped
		} else {
			c.dialect = Plain
		}
	}
}

// WithLogger sets the logger that receives attachment debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithPriority sets the goldmark priority of the inline parser, the
// transformer and the renderer.
func WithPriority(priority int) Option {
	return func(c *config) {
		c.priority = priority
	}
}

type attributesExtension struct {
	cfg config
}

// New returns a goldmark.Extender configured by opts.
func New(opts ...Option) goldmark.Extender {
	cfg := config{dialect: Plain, priority: defaultPriority}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &attributesExtension{cfg: cfg}
}

// Extension recognizes plain `{...}` annotations.
var Extension = New()

// EscapedExtension recognizes escaped `\{...\}` annotations.
var EscapedExtension = New(WithEscaped(true))

// Extend implements goldmark.Extender.
func (e *attributesExtension) Extend(m goldmark.Markdown) {
	inline := NewPlainParser()
	if e.cfg.dialect == Escaped {
		inline = NewEscapedParser()
	}
	m.Parser().AddOptions(
		parser.WithInlineParsers(util.Prioritized(inline, e.cfg.priority)),
		parser.WithASTTransformers(util.Prioritized(NewTransformer(e.cfg.logger), e.cfg.priority)),
	)
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(NewRenderer(), e.cfg.priority),
	))
}

// Parse parses source with md and returns the document, or the fatal error
// recorded by the escaped dialect.
func Parse(md goldmark.Markdown, source []byte) (ast.Node, error) {
	pc := parser.NewContext()
	doc := md.Parser().Parse(text.NewReader(source), parser.WithContext(pc))
	if err := Err(pc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Convert parses source with md and renders it to w. Nothing is written
// when parsing fails.
func Convert(md goldmark.Markdown, source []byte, w io.Writer) error {
	doc, err := Parse(md, source)
	if err != nil {
		return err
	}
	return md.Renderer().Render(w, source, doc)
}

// ConvertString is Convert for string input and output.
func ConvertString(md goldmark.Markdown, source string) (string, error) {
	var buf bytes.Buffer
	if err := Convert(md, []byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
