package scanner

import (
	"strconv"
	"strings"
)

// scanString decodes a double-quoted string. The opening quote has already
// been consumed; start is its offset. The token value carries the decoded
// contents, the lexeme the raw text including both quotes. Each \uNNNN
// escape decodes independently; surrogate pairs are not combined, so each
// half becomes a U+FFFD replacement character.
func (s *Scanner) scanString(start int) (Token, error) {
	var sb strings.Builder
	for {
		c := s.buf.Read()
		switch c {
		case EOF:
			return Token{}, s.malformed(start, "unterminated JSON string")

		case '"':
			lexeme := s.buf.Substring(start, s.buf.Position()-start)
			return Token{Kind: KindString, Lexeme: lexeme, value: sb.String()}, nil

		case '\\':
			esc := s.buf.Read()
			switch esc {
			case '"', '\\', '/':
				sb.WriteByte(byte(esc))
			case 'b':
				sb.WriteByte('\b')
			case 'f':
				sb.WriteByte('\f')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case 'u':
				var hex [4]byte
				n := 0
				for ; n < 4; n++ {
					h := s.buf.Read()
					if h == EOF {
						break
					}
					hex[n] = byte(h)
				}
				// A stream that ends inside the escape drops it; the EOF
				// case above then reports the unterminated string.
				if n == 4 {
					cp, err := strconv.ParseUint(string(hex[:]), 16, 32)
					if err != nil {
						return Token{}, s.malformed(start, "invalid unicode escape in JSON string")
					}
					sb.WriteRune(rune(cp))
				}
			default:
				return Token{}, s.malformed(start, "invalid escape sequence in JSON string")
			}

		default:
			sb.WriteByte(byte(c))
		}
	}
}
