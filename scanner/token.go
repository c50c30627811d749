package scanner

import (
	"fmt"

	"github.com/extjson-go/extjson/primitive"
)

// Kind classifies a token.
type Kind int

const (
	// Structural
	KindBeginObject Kind = iota // {
	KindEndObject               // }
	KindBeginArray              // [
	KindEndArray                // ]
	KindColon                   // :
	KindComma                   // ,

	// Values
	KindString            // "..." with escapes decoded
	KindUnquotedString    // bare identifier
	KindInt32             // integer in int32 range
	KindInt64             // integer outside int32 range, or NumberLong(...)
	KindDouble            // fraction or exponent present
	KindDateTime          // Date(...)
	KindObjectID          // ObjectId("...")
	KindRegularExpression // /pattern/options

	// Special
	KindEOF
)

var kindNames = map[Kind]string{
	KindBeginObject:       "BeginObject",
	KindEndObject:         "EndObject",
	KindBeginArray:        "BeginArray",
	KindEndArray:          "EndArray",
	KindColon:             "Colon",
	KindComma:             "Comma",
	KindString:            "String",
	KindUnquotedString:    "UnquotedString",
	KindInt32:             "Int32",
	KindInt64:             "Int64",
	KindDouble:            "Double",
	KindDateTime:          "DateTime",
	KindObjectID:          "ObjectID",
	KindRegularExpression: "RegularExpression",
	KindEOF:               "EOF",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one unit of lexical output: its kind, the exact source substring
// consumed (delimiters included), and for value-bearing kinds a decoded
// payload reachable through the typed accessors.
type Token struct {
	Kind   Kind
	Lexeme string
	value  any
}

// String returns a debug representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Lexeme)
}

// StringValue returns the decoded contents of a string or unquoted-string
// token, or "" for other kinds.
func (t Token) StringValue() string {
	v, _ := t.value.(string)
	return v
}

// Int32Value returns the value of an int32 token, or 0 for other kinds.
func (t Token) Int32Value() int32 {
	v, _ := t.value.(int32)
	return v
}

// Int64Value returns the value of an int64 token, or 0 for other kinds.
func (t Token) Int64Value() int64 {
	v, _ := t.value.(int64)
	return v
}

// DoubleValue returns the value of a double token, or 0 for other kinds.
func (t Token) DoubleValue() float64 {
	v, _ := t.value.(float64)
	return v
}

// DateTimeValue returns the value of a date-time token.
func (t Token) DateTimeValue() primitive.DateTime {
	v, _ := t.value.(primitive.DateTime)
	return v
}

// ObjectIDValue returns the value of an object-id token.
func (t Token) ObjectIDValue() primitive.ObjectID {
	v, _ := t.value.(primitive.ObjectID)
	return v
}

// RegexValue returns the value of a regular-expression token.
func (t Token) RegexValue() primitive.Regex {
	v, _ := t.value.(primitive.Regex)
	return v
}
