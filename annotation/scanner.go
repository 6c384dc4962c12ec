package annotation

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var errKey = parser.NewContextKey()

// Err returns the fatal error recorded while parsing with pc, if any.
func Err(pc parser.Context) error {
	if pc == nil {
		return nil
	}
	if err, ok := pc.Get(errKey).(error); ok {
		return err
	}
	return nil
}

// fail records the first fatal error. Later recognizer calls see it and
// stop matching.
func fail(pc parser.Context, err error) {
	if Err(pc) == nil {
		pc.Set(errKey, err)
	}
}

// savepoint is a reader position that a rejected attempt rewinds to.
type savepoint struct {
	line int
	seg  text.Segment
}

func mark(r text.Reader) savepoint {
	line, seg := r.Position()
	return savepoint{line: line, seg: seg}
}

func (s savepoint) rewind(r text.Reader) {
	r.SetPosition(s.line, s.seg)
}

func (s savepoint) offset() int {
	return s.seg.Start
}

func isLineEnd(c byte) bool {
	return c == '\n' || c == '\r'
}

type plainParser struct{}

var defaultPlainParser = &plainParser{}

// NewPlainParser returns an inline parser for `{...}` annotations.
func NewPlainParser() parser.InlineParser {
	return defaultPlainParser
}

func (p *plainParser) Trigger() []byte {
	return []byte{'{'}
}

// Parse captures a single-line span up to the first `}`. End of input, a
// line break, a backslash or a nested `{` rejects the span and the reader
// is left where it was.
func (p *plainParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	if Err(pc) != nil || block.PrecendingCharacter() == '\\' {
		return nil
	}
	start := mark(block)
	block.Advance(1) // consume '{'

	value := []byte{}
	for {
		c := block.Peek()
		switch {
		case c == text.EOF, isLineEnd(c), c == '\\', c == '{':
			start.rewind(block)
			return nil
		case c == '}':
			block.Advance(1)
			return NewAnnotation(value, Plain)
		}
		value = append(value, c)
		block.Advance(1)
	}
}

type escapedParser struct{}

var defaultEscapedParser = &escapedParser{}

// NewEscapedParser returns an inline parser for `\{...\}` annotations.
func NewEscapedParser() parser.InlineParser {
	return defaultEscapedParser
}

func (p *escapedParser) Trigger() []byte {
	return []byte{'\\'}
}

// Parse dispatches on the byte after the leading backslash: `\` may start a
// literal escaped brace, `{` opens an annotation, anything else is left to
// goldmark's own escape handling.
func (p *escapedParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	if Err(pc) != nil {
		return nil
	}
	start := mark(block)
	block.Advance(1) // consume leading '\'

	switch block.Peek() {
	case '\\':
		return p.parseLiteralBrace(block, start)
	case '{':
		block.Advance(1)
		return p.capture(block, pc, start)
	}
	start.rewind(block)
	return nil
}

// parseLiteralBrace turns `\\{` or `\\}` into a text node so the brace is
// never taken as an annotation opener or closer.
func (p *escapedParser) parseLiteralBrace(block text.Reader, start savepoint) ast.Node {
	block.Advance(1) // consume second '\'
	if c := block.Peek(); c != '{' && c != '}' {
		start.rewind(block)
		return nil
	}
	block.Advance(1)
	_, end := block.Position()
	return ast.NewTextSegment(text.NewSegment(start.offset(), end.Start))
}

// capture reads the interior up to `\}`. A bare `}` is content. A line
// break rewinds; running out of input is fatal.
func (p *escapedParser) capture(block text.Reader, pc parser.Context, start savepoint) ast.Node {
	value := []byte{}
	for {
		c := block.Peek()
		switch {
		case c == text.EOF:
			fail(pc, newUnclosedError(block.Source(), start.offset()))
			start.rewind(block)
			return nil
		case isLineEnd(c):
			start.rewind(block)
			return nil
		case c == '\\':
			closed, ok := p.matchClose(block)
			if !ok {
				fail(pc, newUnclosedError(block.Source(), start.offset()))
				start.rewind(block)
				return nil
			}
			if closed {
				return NewAnnotation(value, Escaped)
			}
			value = append(value, c)
			block.Advance(1)
			continue
		}
		value = append(value, c)
		block.Advance(1)
	}
}

// matchClose attempts the two-byte `\}` sequence at the current position.
// On a match the sequence is consumed and closed is true. Otherwise the
// reader is rewound to the backslash; ok is false when input ends right
// after it.
func (p *escapedParser) matchClose(block text.Reader) (closed, ok bool) {
	sp := mark(block)
	block.Advance(1) // consume '\'
	switch block.Peek() {
	case '}':
		block.Advance(1)
		return true, true
	case text.EOF:
		sp.rewind(block)
		return false, false
	}
	sp.rewind(block)
	return false, true
}
