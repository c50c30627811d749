package scanner

import (
	"github.com/valyala/fastjson/fastfloat"

	"github.com/extjson-go/extjson/primitive"
)

// Recognized constructor literals. An identifier immediately followed by
// '(' must be one of these names; the sub-scanner takes over after the
// opening parenthesis.
var constructors = map[string]func(*Scanner, int) (Token, error){
	"Date":       (*Scanner).scanDateTimeConstructor,
	"NumberLong": (*Scanner).scanInt64Constructor,
	"ObjectId":   (*Scanner).scanObjectIDConstructor,
}

// scanExtendedLiteral consumes a bare identifier: a maximal run of letters,
// digits, and '$' whose first character sits at start and has already been
// consumed. A trailing '(' re-dispatches to a constructor sub-scanner; any
// other structural terminator yields an unquoted-string token.
func (s *Scanner) scanExtendedLiteral(start int) (Token, error) {
	c := s.buf.Read()
	for isLetter(c) || isDigit(c) || c == '$' {
		c = s.buf.Read()
	}

	end := s.buf.Position()
	if c != EOF {
		end--
	}
	name := s.buf.Substring(start, end-start)

	if c == '(' {
		scan, ok := constructors[name]
		if !ok {
			return Token{}, s.malformed(start, "unrecognized JSON constructor")
		}
		return scan(s, start)
	}

	if c == EOF || c == ':' || c == ',' || c == '}' || c == ']' || isWhitespace(c) {
		s.buf.Unread(c)
		return Token{Kind: KindUnquotedString, Lexeme: name, value: name}, nil
	}
	return Token{}, s.malformed(start, "invalid JSON literal")
}

// scanDigitRun consumes a non-empty run of decimal digits terminated by ')'
// and returns the digits. Shared by the Date and NumberLong sub-scanners.
func (s *Scanner) scanDigitRun(start int, description string) (string, error) {
	from := s.buf.Position()
	c := s.buf.Read()
	for isDigit(c) {
		c = s.buf.Read()
	}
	if c != ')' || s.buf.Position()-from < 2 {
		return "", s.malformed(start, description)
	}
	return s.buf.Substring(from, s.buf.Position()-from-1), nil
}

// scanDateTimeConstructor scans the argument of Date(...): a digit run
// interpreted as a millisecond offset from the Unix epoch.
func (s *Scanner) scanDateTimeConstructor(start int) (Token, error) {
	digits, err := s.scanDigitRun(start, "invalid JSON date")
	if err != nil {
		return Token{}, err
	}
	ms, err := fastfloat.ParseInt64(digits)
	if err != nil {
		return Token{}, s.malformed(start, "invalid JSON date")
	}
	lexeme := s.buf.Substring(start, s.buf.Position()-start)
	return Token{Kind: KindDateTime, Lexeme: lexeme, value: primitive.DateTime(ms)}, nil
}

// scanInt64Constructor scans the argument of NumberLong(...). Unlike bare
// integers the value is never narrowed to int32.
func (s *Scanner) scanInt64Constructor(start int) (Token, error) {
	digits, err := s.scanDigitRun(start, "invalid JSON number long")
	if err != nil {
		return Token{}, err
	}
	n, err := fastfloat.ParseInt64(digits)
	if err != nil {
		return Token{}, s.malformed(start, "invalid JSON number long")
	}
	lexeme := s.buf.Substring(start, s.buf.Position()-start)
	return Token{Kind: KindInt64, Lexeme: lexeme, value: n}, nil
}

// scanObjectIDConstructor scans ObjectId("<24 hex characters>").
func (s *Scanner) scanObjectIDConstructor(start int) (Token, error) {
	if c := s.buf.Read(); c != '"' {
		return Token{}, s.malformed(start, "invalid JSON object id")
	}
	from := s.buf.Position()
	for i := 0; i < 24; i++ {
		if !isHexDigit(s.buf.Read()) {
			return Token{}, s.malformed(start, "invalid JSON object id")
		}
	}
	if c := s.buf.Read(); c != '"' {
		return Token{}, s.malformed(start, "invalid JSON object id")
	}
	if c := s.buf.Read(); c != ')' {
		return Token{}, s.malformed(start, "invalid JSON object id")
	}

	id, err := primitive.ObjectIDFromHex(s.buf.Substring(from, 24))
	if err != nil {
		return Token{}, s.malformed(start, "invalid JSON object id")
	}
	lexeme := s.buf.Substring(start, s.buf.Position()-start)
	return Token{Kind: KindObjectID, Lexeme: lexeme, value: id}, nil
}
