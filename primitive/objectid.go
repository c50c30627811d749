// Package primitive provides the value types produced for the non-JSON
// literal forms of the extended dialect: object identifiers, date-time
// values, and regular expressions.
package primitive

import (
	"encoding/hex"
	"fmt"
)

// ObjectID is a 12-byte document identifier, written in text as 24
// hexadecimal characters.
type ObjectID [12]byte

// NilObjectID is the zero value for ObjectID.
var NilObjectID ObjectID

// ObjectIDFromHex parses a 24-character hexadecimal string. Both cases are
// accepted.
func ObjectIDFromHex(s string) (ObjectID, error) {
	if len(s) != 24 {
		return NilObjectID, fmt.Errorf("invalid ObjectID hex string length %d", len(s))
	}
	var id ObjectID
	if _, err := hex.Decode(id[:], []byte(s)); err != nil {
		return NilObjectID, fmt.Errorf("invalid ObjectID hex string %q: %w", s, err)
	}
	return id, nil
}

// Hex returns the lowercase hexadecimal form of the identifier.
func (id ObjectID) Hex() string {
	return hex.EncodeToString(id[:])
}

func (id ObjectID) String() string {
	return fmt.Sprintf("ObjectID(%q)", id.Hex())
}

// IsZero reports whether id is the zero value.
func (id ObjectID) IsZero() bool {
	return id == NilObjectID
}
