package scanner

import (
	"github.com/extjson-go/extjson/primitive"
)

type regexState int

const (
	regexInPattern regexState = iota
	regexInEscape
	regexInOptions
	regexDone
	regexInvalid
)

// scanRegularExpression decodes a slash-delimited regular expression with a
// trailing option-letter run. The opening slash has already been consumed;
// start is its offset. Pattern escapes are kept verbatim; only 'g', 'i',
// and 'm' are accepted as options. End of stream before the closing slash
// is malformed input.
func (s *Scanner) scanRegularExpression(start int) (Token, error) {
	state := regexInPattern
	optionsStart := 0

	for state != regexDone && state != regexInvalid {
		c := s.buf.Read()
		switch state {
		case regexInPattern:
			switch c {
			case EOF:
				state = regexInvalid
			case '\\':
				state = regexInEscape
			case '/':
				state = regexInOptions
				optionsStart = s.buf.Position()
			default:
				// stay
			}

		case regexInEscape:
			if c == EOF {
				state = regexInvalid
			} else {
				state = regexInPattern
			}

		case regexInOptions:
			switch {
			case c == 'g' || c == 'i' || c == 'm':
				// stay
			case c == EOF || c == ',' || c == '}' || c == ']' || isWhitespace(c):
				s.buf.Unread(c)
				state = regexDone
			default:
				state = regexInvalid
			}
		}
	}

	if state == regexInvalid {
		return Token{}, s.malformed(start, "invalid JSON regular expression")
	}

	end := s.buf.Position()
	lexeme := s.buf.Substring(start, end-start)
	re := primitive.Regex{
		Pattern: s.buf.Substring(start+1, optionsStart-1-(start+1)),
		Options: s.buf.Substring(optionsStart, end-optionsStart),
	}
	return Token{Kind: KindRegularExpression, Lexeme: lexeme, value: re}, nil
}
