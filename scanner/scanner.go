// Package scanner tokenizes an extended JSON dialect: standard JSON
// structure plus unquoted identifiers, slash-delimited regular expressions,
// and Date/NumberLong/ObjectId constructor literals.
package scanner

import (
	"fmt"

	"github.com/extjson-go/extjson"
)

// Scanner reads one token at a time from a Buffer. It keeps no state of its
// own between calls; the buffer position is the only cursor.
type Scanner struct {
	buf Buffer
}

// New creates a Scanner over the given buffer.
func New(buf Buffer) *Scanner {
	return &Scanner{buf: buf}
}

// Scan tokenizes input completely. The returned slice ends with the
// end-of-file token.
func Scan(input string) ([]Token, error) {
	s := New(NewStringBuffer(input))
	var tokens []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == KindEOF {
			return tokens, nil
		}
	}
}

// Next consumes and returns the next token. On return the buffer is
// positioned immediately after the lexeme, with the terminating character
// pushed back when it belongs to the next lexeme.
func (s *Scanner) Next() (Token, error) {
	c := s.buf.Read()
	for isWhitespace(c) {
		c = s.buf.Read()
	}
	if c == EOF {
		return Token{Kind: KindEOF}, nil
	}

	start := s.buf.Position() - 1
	switch c {
	case '{':
		return Token{Kind: KindBeginObject, Lexeme: "{"}, nil
	case '}':
		return Token{Kind: KindEndObject, Lexeme: "}"}, nil
	case '[':
		return Token{Kind: KindBeginArray, Lexeme: "["}, nil
	case ']':
		return Token{Kind: KindEndArray, Lexeme: "]"}, nil
	case ':':
		return Token{Kind: KindColon, Lexeme: ":"}, nil
	case ',':
		return Token{Kind: KindComma, Lexeme: ","}, nil
	case '"':
		return s.scanString(start)
	case '/':
		return s.scanRegularExpression(start)
	}

	switch {
	case c == '-' || isDigit(c):
		return s.scanNumber(c, start)
	case c == '$' || isLetter(c):
		return s.scanExtendedLiteral(start)
	}

	return Token{}, s.malformed(start, fmt.Sprintf("invalid JSON input; unexpected character %q", rune(c)))
}

const snippetLen = 20

// snippet returns up to 20 characters starting at start, with a trailing
// ellipsis when the buffer extends past the window.
func (s *Scanner) snippet(start int) string {
	window := s.buf.Substring(start, snippetLen+1)
	if len(window) > snippetLen {
		return window[:snippetLen] + "..."
	}
	return window
}

func (s *Scanner) malformed(start int, description string) error {
	msg := fmt.Sprintf("%s: '%s'", description, s.snippet(start))
	return extjson.NewError(extjson.ErrMalformedInput, msg).WithPosition(start)
}

func isWhitespace(c int) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func isDigit(c int) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c int) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isHexDigit(c int) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
