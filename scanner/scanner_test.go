package scanner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extjson-go/extjson"
)

func TestStructuralTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
	}{
		{"begin object", "{", KindBeginObject},
		{"end object", "}", KindEndObject},
		{"begin array", "[", KindBeginArray},
		{"end array", "]", KindEndArray},
		{"colon", ":", KindColon},
		{"comma", ",", KindComma},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(NewStringBuffer(tc.input))
			tok, err := s.Next()
			require.NoError(t, err)
			assert.Equal(t, tc.kind, tok.Kind)
			assert.Equal(t, tc.input, tok.Lexeme)

			tok, err = s.Next()
			require.NoError(t, err)
			assert.Equal(t, KindEOF, tok.Kind)
		})
	}
}

func TestWhitespaceSkipped(t *testing.T) {
	s := New(NewStringBuffer(" \t\r\n {"))
	tok, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, KindBeginObject, tok.Kind)
}

func TestEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		s := New(NewStringBuffer(input))
		tok, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, KindEOF, tok.Kind)

		// EOF is sticky.
		tok, err = s.Next()
		require.NoError(t, err)
		assert.Equal(t, KindEOF, tok.Kind)
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	s := New(NewStringBuffer("  #oops"))
	_, err := s.Next()
	require.Error(t, err)

	var ejErr *extjson.Error
	require.ErrorAs(t, err, &ejErr)
	assert.Equal(t, extjson.ErrMalformedInput, ejErr.Kind)
	assert.Equal(t, 2, ejErr.Position)
	assert.Contains(t, ejErr.Message, "'#'")
	assert.Contains(t, ejErr.Message, "'#oops'")
}

func TestErrorSnippetTruncation(t *testing.T) {
	input := "#" + strings.Repeat("x", 40)
	s := New(NewStringBuffer(input))
	_, err := s.Next()
	require.Error(t, err)

	var ejErr *extjson.Error
	require.ErrorAs(t, err, &ejErr)
	assert.Contains(t, ejErr.Message, "'"+input[:20]+"...'")
}

func TestErrorSnippetAtEndOfStream(t *testing.T) {
	s := New(NewStringBuffer("#ab"))
	_, err := s.Next()
	require.Error(t, err)

	var ejErr *extjson.Error
	require.ErrorAs(t, err, &ejErr)
	assert.Contains(t, ejErr.Message, "'#ab'")
	assert.NotContains(t, ejErr.Message, "...")
}

func TestScanDocument(t *testing.T) {
	input := `{
	"_id": ObjectId("507f1f77bcf86cd799439011"),
	name: "MongoDB",
	"count": NumberLong(123),
	"ratio": -0.5e2,
	"created": Date(1000),
	"pattern": /ab+c/gi,
	"tags": ["a", 2147483648],
	"flag": true
}`
	tokens, err := Scan(input)
	require.NoError(t, err)

	kinds := make([]Kind, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	expected := []Kind{
		KindBeginObject,
		KindString, KindColon, KindObjectID, KindComma,
		KindUnquotedString, KindColon, KindString, KindComma,
		KindString, KindColon, KindInt64, KindComma,
		KindString, KindColon, KindDouble, KindComma,
		KindString, KindColon, KindDateTime, KindComma,
		KindString, KindColon, KindRegularExpression, KindComma,
		KindString, KindColon, KindBeginArray, KindString, KindComma, KindInt64, KindEndArray, KindComma,
		KindString, KindColon, KindUnquotedString,
		KindEndObject,
		KindEOF,
	}
	require.Equal(t, expected, kinds)

	assert.Equal(t, "507f1f77bcf86cd799439011", tokens[3].ObjectIDValue().Hex())
	assert.Equal(t, "name", tokens[5].StringValue())
	assert.Equal(t, "MongoDB", tokens[7].StringValue())
	assert.Equal(t, int64(123), tokens[11].Int64Value())
	assert.Equal(t, -50.0, tokens[15].DoubleValue())
	assert.Equal(t, int64(1000), int64(tokens[19].DateTimeValue()))
	assert.Equal(t, "ab+c", tokens[23].RegexValue().Pattern)
	assert.Equal(t, "gi", tokens[23].RegexValue().Options)
	assert.Equal(t, int64(2147483648), tokens[30].Int64Value())
	assert.Equal(t, "true", tokens[35].StringValue())
}

func TestScanError(t *testing.T) {
	_, err := Scan(`{"a": 1, "b": @}`)
	require.Error(t, err)
}

// Rescanning a token's lexeme must yield the same kind and value.
func TestLexemeRoundTrip(t *testing.T) {
	inputs := []string{
		`"escaped A \" \\ text"`,
		`"\u0041\u00e9"`,
		`-12.5e-3`,
		`2147483648`,
		`42`,
		`/a\/b/im`,
		`ObjectId("507F1F77BCF86CD799439011")`,
		`NumberLong(9007199254740993)`,
		`Date(0)`,
		`unquoted`,
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, err := New(NewStringBuffer(input)).Next()
			require.NoError(t, err)

			second, err := New(NewStringBuffer(first.Lexeme)).Next()
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestTerminatorPushback(t *testing.T) {
	tests := []struct {
		input string
		kinds []Kind
	}{
		{`1,2`, []Kind{KindInt32, KindComma, KindInt32, KindEOF}},
		{`[1]`, []Kind{KindBeginArray, KindInt32, KindEndArray, KindEOF}},
		{`{a:1}`, []Kind{KindBeginObject, KindUnquotedString, KindColon, KindInt32, KindEndObject, KindEOF}},
		{`/x/g,1`, []Kind{KindRegularExpression, KindComma, KindInt32, KindEOF}},
		{`null ]`, []Kind{KindUnquotedString, KindEndArray, KindEOF}},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			tokens, err := Scan(tc.input)
			require.NoError(t, err)
			kinds := make([]Kind, 0, len(tokens))
			for _, tok := range tokens {
				kinds = append(kinds, tok.Kind)
			}
			assert.Equal(t, tc.kinds, kinds)
		})
	}
}
