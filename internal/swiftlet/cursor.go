package swiftlet

// Cursor is a single-pass reader over a token sequence. It never rewinds, all
// grammar decisions are made on the current token plus a bounded lookahead.
type Cursor struct {
	tokens []*Token
	next   int
	cur    *Token
}

// NewCursor creates a cursor over tokens. An EOF token is appended when the
// sequence does not already end with one. The cursor must be primed with Read
// before Current is used.
func NewCursor(tokens []*Token) *Cursor {
	if n := len(tokens); n == 0 || tokens[n-1].Typ != EOF {
		line, column := 1, 1
		if n > 0 {
			last := tokens[n-1]
			line, column = last.Line, last.Column+len([]rune(last.Lexeme))
		}
		terminated := make([]*Token, n, n+1)
		copy(terminated, tokens)
		tokens = append(terminated, NewToken(EOF, "", line, column))
	}
	return &Cursor{tokens: tokens}
}

// Read makes the next token current and returns it. Reading past EOF is a bug
// in the caller and panics.
func (c *Cursor) Read() *Token {
	if c.cur != nil && c.cur.Typ == EOF {
		panic("swiftlet: read past end of input")
	}
	c.cur = c.tokens[c.next]
	c.next++
	return c.cur
}

// Current returns the token most recently returned by Read.
func (c *Cursor) Current() *Token {
	return c.cur
}

// Peek returns the token n positions after the current one without consuming
// anything. Peek(0) is the current token; lookahead past the end yields EOF.
func (c *Cursor) Peek(n int) *Token {
	i := c.next - 1 + n
	if i < 0 {
		i = 0
	}
	if i >= len(c.tokens) {
		i = len(c.tokens) - 1
	}
	return c.tokens[i]
}

// AtEOF reports whether the current token is the end marker.
func (c *Cursor) AtEOF() bool {
	return c.cur != nil && c.cur.Typ == EOF
}
