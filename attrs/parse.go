package attrs

// Parse parses the interior of an annotation (braces excluded) into a
// property set. It never fails: unrecognized fragments are skipped.
func Parse(raw string) *Properties {
	s := &scanner{src: raw}
	props := NewProperties()
	for {
		s.skipWhitespace()
		if s.atEnd() {
			return props
		}
		switch s.peek() {
		case '#':
			s.advance()
			if name := s.scanName(); name != "" {
				props.Set(KeyID, name)
			}
		case '.':
			s.advance()
			props.AddClass(s.scanName())
		default:
			key, value := s.scanPair()
			props.Set(key, value)
		}
	}
}

// scanner walks the raw annotation text one byte at a time.
type scanner struct {
	src string
	pos int
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) advance() byte {
	ch := s.src[s.pos]
	s.pos++
	return ch
}

func (s *scanner) skipWhitespace() {
	for !s.atEnd() && isSpace(s.peek()) {
		s.advance()
	}
}

// scanName reads an id or class name. Names end at whitespace or at the
// start of the next id/class shorthand, so ".a.b" yields two classes.
func (s *scanner) scanName() string {
	start := s.pos
	for !s.atEnd() {
		ch := s.peek()
		if isSpace(ch) || ch == '.' || ch == '#' {
			break
		}
		s.advance()
	}
	return s.src[start:s.pos]
}

// scanPair reads key, key= or key=value. A key without '=' maps to "".
func (s *scanner) scanPair() (string, string) {
	start := s.pos
	for !s.atEnd() && !isSpace(s.peek()) && s.peek() != '=' {
		s.advance()
	}
	key := s.src[start:s.pos]
	if s.atEnd() || s.peek() != '=' {
		return key, ""
	}
	s.advance() // consume '='
	if s.atEnd() {
		return key, ""
	}
	if q := s.peek(); q == '"' || q == '\'' {
		return key, s.scanQuoted(q)
	}
	start = s.pos
	for !s.atEnd() && !isSpace(s.peek()) {
		s.advance()
	}
	return key, s.src[start:s.pos]
}

// scanQuoted reads a quoted value verbatim. An unterminated quote runs to
// the end of input.
func (s *scanner) scanQuoted(quote byte) string {
	s.advance() // consume opening quote
	start := s.pos
	for !s.atEnd() && s.peek() != quote {
		s.advance()
	}
	value := s.src[start:s.pos]
	if !s.atEnd() {
		s.advance() // consume closing quote
	}
	return value
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
