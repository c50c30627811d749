package primitive

// Regex is a regular-expression literal: the pattern text between the
// slashes, verbatim, together with its option letters in source order.
type Regex struct {
	Pattern string
	Options string
}

func (r Regex) String() string {
	return "/" + r.Pattern + "/" + r.Options
}
