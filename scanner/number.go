package scanner

import (
	"math"

	"github.com/valyala/fastjson/fastfloat"
)

type numberState int

const (
	numLeadingMinus numberState = iota
	numLeadingZero
	numIntegerDigits
	numDecimalPoint
	numFractionDigits
	numExponentLetter
	numExponentSign
	numExponentDigits
	numDone
	numInvalid
)

// scanNumber consumes the remainder of a numeric lexeme and classifies it.
// first is the already-consumed leading character, a digit or '-'; start is
// its offset. A lexeme containing a decimal point or exponent becomes a
// double token; integers narrow to int32 when they fit the range.
func (s *Scanner) scanNumber(first, start int) (Token, error) {
	var state numberState
	switch {
	case first == '-':
		state = numLeadingMinus
	case first == '0':
		state = numLeadingZero
	default:
		state = numIntegerDigits
	}
	isDouble := false

	for state != numDone && state != numInvalid {
		c := s.buf.Read()
		switch state {
		case numLeadingMinus:
			switch {
			case c == '0':
				state = numLeadingZero
			case isDigit(c):
				state = numIntegerDigits
			default:
				state = numInvalid
			}

		case numLeadingZero:
			switch {
			case c == '.':
				state = numDecimalPoint
				isDouble = true
			case c == 'e' || c == 'E':
				state = numExponentLetter
				isDouble = true
			case isNumberTerminator(c):
				s.buf.Unread(c)
				state = numDone
			default:
				state = numInvalid
			}

		case numIntegerDigits:
			switch {
			case isDigit(c):
				// stay
			case c == '.':
				state = numDecimalPoint
				isDouble = true
			case c == 'e' || c == 'E':
				state = numExponentLetter
				isDouble = true
			case isNumberTerminator(c):
				s.buf.Unread(c)
				state = numDone
			default:
				state = numInvalid
			}

		case numDecimalPoint:
			if isDigit(c) {
				state = numFractionDigits
			} else {
				state = numInvalid
			}

		case numFractionDigits:
			switch {
			case isDigit(c):
				// stay
			case c == 'e' || c == 'E':
				state = numExponentLetter
			case isNumberTerminator(c):
				s.buf.Unread(c)
				state = numDone
			default:
				state = numInvalid
			}

		case numExponentLetter:
			switch {
			case c == '+' || c == '-':
				state = numExponentSign
			case isDigit(c):
				state = numExponentDigits
			default:
				state = numInvalid
			}

		case numExponentSign:
			if isDigit(c) {
				state = numExponentDigits
			} else {
				state = numInvalid
			}

		case numExponentDigits:
			switch {
			case isDigit(c):
				// stay
			case isNumberTerminator(c):
				s.buf.Unread(c)
				state = numDone
			default:
				state = numInvalid
			}
		}
	}

	if state == numInvalid {
		return Token{}, s.malformed(start, "invalid JSON number")
	}

	lexeme := s.buf.Substring(start, s.buf.Position()-start)
	if isDouble {
		v, err := fastfloat.Parse(lexeme)
		if err != nil {
			return Token{}, s.malformed(start, "invalid JSON number")
		}
		return Token{Kind: KindDouble, Lexeme: lexeme, value: v}, nil
	}

	n, err := fastfloat.ParseInt64(lexeme)
	if err != nil {
		// Integer too large for int64; keep the value as a double.
		v, ferr := fastfloat.Parse(lexeme)
		if ferr != nil {
			return Token{}, s.malformed(start, "invalid JSON number")
		}
		return Token{Kind: KindDouble, Lexeme: lexeme, value: v}, nil
	}
	if n >= math.MinInt32 && n <= math.MaxInt32 {
		return Token{Kind: KindInt32, Lexeme: lexeme, value: int32(n)}, nil
	}
	return Token{Kind: KindInt64, Lexeme: lexeme, value: n}, nil
}

// Numeric lexemes end at a structural separator, whitespace, or end of
// stream; the terminator is pushed back.
func isNumberTerminator(c int) bool {
	return c == EOF || c == ',' || c == '}' || c == ']' || isWhitespace(c)
}
