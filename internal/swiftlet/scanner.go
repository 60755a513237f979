package swiftlet

import "unicode"

// Scanner reads the input source and collects all the tokens that can be found
type Scanner struct {
	line      int
	lineStart int
	start     int
	current   int
	source    []rune
	tokens    []*Token
	reporter  Reporter
}

// NewScanner creates a new token scanner
func NewScanner(source []rune, reporter Reporter) *Scanner {
	scanner := new(Scanner)
	scanner.line = 1
	scanner.source = source
	scanner.tokens = make([]*Token, 0)
	scanner.reporter = reporter
	return scanner
}

// Scan reads the source and collect all the tokens that were found from the
// source. The returned slice always ends with an EOF token.
func (scanner *Scanner) Scan() []*Token {
	if len(scanner.tokens) != 0 {
		return scanner.tokens
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t':
		case '\n':
			scanner.newline()
		// Single character tokens
		case '(':
			scanner.addToken(L_PAREN)
		case ')':
			scanner.addToken(R_PAREN)
		case '{':
			scanner.addToken(L_BRACE)
		case '}':
			scanner.addToken(R_BRACE)
		case ':':
			scanner.addToken(COLON)
		case ',':
			scanner.addToken(COMMA)
		case '+', '*', '<', '>', '%':
			scanner.addToken(BINARY_OP)
		// Double character tokens
		case '-':
			if scanner.match('>') {
				scanner.addToken(ARROW)
			} else {
				scanner.addToken(BINARY_OP)
			}
		// Long lexemes
		case '/':
			if scanner.match('/') {
				// keep the '\n' so that line counting still happens in the main loop
				for scanner.peek() != '\n' && scanner.hasNext() {
					scanner.advance()
				}
			} else if scanner.match('*') {
				scanner.scanMultilineComment()
			} else {
				scanner.addToken(BINARY_OP)
			}
		default:
			if unicode.IsDigit(r) {
				scanner.scanNumber()
			} else if isBeginIdent(r) {
				scanner.scanIdentifier()
			} else {
				scanner.reporter.Report(
					NewScanError(scanner.line, scanner.column(), "Unexpected character."),
				)
			}
		}
	}
	scanner.start = scanner.current
	scanner.addToken(EOF)
	return scanner.tokens
}

func (scanner *Scanner) scanNumber() {
	typ := INTEGER
	for unicode.IsDigit(scanner.peek()) {
		scanner.advance()
	}
	// a '.' only belongs to the number when digits follow it
	if scanner.peek() == '.' && unicode.IsDigit(scanner.peekNext()) {
		typ = FLOAT
		scanner.advance()
		for unicode.IsDigit(scanner.peek()) {
			scanner.advance()
		}
	}
	scanner.addToken(typ)
}

func (scanner *Scanner) scanIdentifier() {
	for isAlphanumeric(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	if tokenType, isKeyword := KeywordTokens[lexeme]; isKeyword {
		scanner.addToken(tokenType)
	} else {
		scanner.addToken(IDENT)
	}
}

func (scanner *Scanner) scanMultilineComment() {
	line, column := scanner.line, scanner.column()
	for {
		for scanner.peek() != '*' && scanner.hasNext() {
			if scanner.advance() == '\n' {
				scanner.newline()
			}
		}
		if !scanner.hasNext() {
			scanner.reporter.Report(
				NewScanError(line, column, "Unterminated multiline comment."),
			)
			return
		}
		scanner.advance()
		if scanner.match('/') {
			return
		}
	}
}

// addToken appends the lexeme from `start` to `current` as a token of the
// given type
func (scanner *Scanner) addToken(typ TokenType) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := NewToken(typ, lexeme, scanner.line, scanner.column())
	scanner.tokens = append(scanner.tokens, tok)
}

// column returns the 1-based column of `start` on the current line
func (scanner *Scanner) column() int {
	return scanner.start - scanner.lineStart + 1
}

func (scanner *Scanner) newline() {
	scanner.line++
	scanner.lineStart = scanner.current
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// match checks if the rune at the current position is equal to the given rune,
// if they are equal, consumes the rune at the current position.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() {
		return false
	}
	if scanner.source[scanner.current] != expected {
		return false
	}
	scanner.current++
	return true
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

// peekNext returns the rune at the next position, but does not consume it
func (scanner *Scanner) peekNext() rune {
	if scanner.current+1 >= len(scanner.source) {
		return '\x00'
	}
	return scanner.source[scanner.current+1]
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isBeginIdent(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}
