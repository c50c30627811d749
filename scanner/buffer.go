package scanner

// EOF is the end-of-stream marker returned by Buffer.Read.
const EOF = -1

// Buffer is the character source consumed by the scanner. Implementations
// need exactly one character of pushback capacity: the scanner never calls
// Unread twice without an intervening Read.
type Buffer interface {
	// Read returns the next character and advances the position, or
	// returns EOF.
	Read() int
	// Unread pushes back the most recently read character. Unread(EOF) is
	// a no-op.
	Unread(c int)
	// Position returns the offset of the next character to be read.
	Position() int
	// Substring returns up to length characters starting at start without
	// moving the position.
	Substring(start, length int) string
}

// StringBuffer is an in-memory Buffer over a string.
type StringBuffer struct {
	src string
	pos int
}

// NewStringBuffer creates a buffer positioned at the start of src.
func NewStringBuffer(src string) *StringBuffer {
	return &StringBuffer{src: src}
}

func (b *StringBuffer) Read() int {
	if b.pos >= len(b.src) {
		return EOF
	}
	c := int(b.src[b.pos])
	b.pos++
	return c
}

func (b *StringBuffer) Unread(c int) {
	if c != EOF && b.pos > 0 {
		b.pos--
	}
}

func (b *StringBuffer) Position() int {
	return b.pos
}

func (b *StringBuffer) Substring(start, length int) string {
	if start < 0 || start >= len(b.src) || length <= 0 {
		return ""
	}
	end := start + length
	if end > len(b.src) {
		end = len(b.src)
	}
	return b.src[start:end]
}
