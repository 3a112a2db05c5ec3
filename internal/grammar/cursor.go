package grammar

// cursor walks a single line. Parsers advance pos on success and leave it at
// the offending byte on failure; far remembers the furthest failure seen by
// any alternative tried from this cursor.
type cursor struct {
	src string
	pos int
	far int
}

func newCursor(line string) *cursor {
	return &cursor{src: line}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

// isIdentChar reports whether b may appear in an identifier: [A-Za-z0-9_-].
func isIdentChar(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_' || b == '-'
}

// isPatternChar reports whether b may appear inside a quoted pattern: any
// printable, non-space ASCII character except quotes.
func isPatternChar(b byte) bool {
	return b > 0x20 && b < 0x7f && b != '"' && b != '\''
}

func isOctal(b byte) bool {
	return b >= '0' && b <= '7'
}

func (c *cursor) space() {
	for c.pos < len(c.src) && isSpace(c.src[c.pos]) {
		c.pos++
	}
}

// atEnd consumes trailing whitespace and reports whether the line is used up.
func (c *cursor) atEnd() bool {
	c.space()
	return c.pos == len(c.src)
}

func (c *cursor) peek(b byte) bool {
	return c.pos < len(c.src) && c.src[c.pos] == b
}

func (c *cursor) literal(s string) bool {
	if len(c.src)-c.pos < len(s) || c.src[c.pos:c.pos+len(s)] != s {
		return false
	}
	c.pos += len(s)
	return true
}

// token is a literal preceded by optional whitespace.
func (c *cursor) token(s string) bool {
	c.space()
	return c.literal(s)
}

func (c *cursor) span(accept func(byte) bool) (string, bool) {
	start := c.pos
	for c.pos < len(c.src) && accept(c.src[c.pos]) {
		c.pos++
	}
	if c.pos == start {
		return "", false
	}
	return c.src[start:c.pos], true
}

// name reads an identifier at the current position. A '-' that starts an
// arrow ends the identifier, so "a->b" reads as "a".
func (c *cursor) name() (string, bool) {
	start := c.pos
	for c.pos < len(c.src) && isIdentChar(c.src[c.pos]) {
		if c.src[c.pos] == '-' && c.pos+1 < len(c.src) && c.src[c.pos+1] == '>' {
			break
		}
		c.pos++
	}
	if c.pos == start {
		return "", false
	}
	return c.src[start:c.pos], true
}

// ident reads an identifier preceded by optional whitespace.
func (c *cursor) ident() (string, bool) {
	c.space()
	return c.name()
}

// quoted reads a double-quoted pattern preceded by optional whitespace and
// returns its content without the quotes.
func (c *cursor) quoted() (string, bool) {
	c.space()
	if !c.literal(`"`) {
		return "", false
	}
	s, ok := c.span(isPatternChar)
	if !ok {
		return "", false
	}
	if !c.literal(`"`) {
		return "", false
	}
	return s, true
}

func (c *cursor) rest() string {
	s := c.src[c.pos:]
	c.pos = len(c.src)
	return s
}

// parser reads one construct. It reports false without any partial result
// when the construct does not match.
type parser func(c *cursor) (Record, bool)

// alt tries each parser from the current position and keeps the first one
// that consumes the whole line.
func alt(parsers ...parser) parser {
	return func(c *cursor) (Record, bool) {
		for _, p := range parsers {
			try := *c
			rec, ok := p(&try)
			if ok && try.atEnd() {
				*c = try
				return rec, true
			}
			c.far = max(c.far, try.pos, try.far)
		}
		return nil, false
	}
}
