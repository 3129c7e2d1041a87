package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCursor indicates a cursor that cannot be decoded, belongs to a
// different collection or points at a key that no longer exists.
var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor is a position inside a keyed collection. An empty Key is the start.
type Cursor struct {
	Kind string
	Key  string
}

// Encode returns the opaque URL-safe form of c.
func (c Cursor) Encode() string {
	return base64.RawURLEncoding.EncodeToString([]byte(c.Kind + ":" + c.Key))
}

// IsZero reports whether c was decoded from an empty string.
func (c Cursor) IsZero() bool {
	return c.Kind == "" && c.Key == ""
}

// DecodeCursor parses s. An empty s yields the zero Cursor.
func DecodeCursor(s string) (Cursor, error) {
	if s == "" {
		return Cursor{}, nil
	}
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: not base64url", ErrInvalidCursor)
	}
	kind, key, ok := strings.Cut(string(b), ":")
	if !ok || kind == "" {
		return Cursor{}, fmt.Errorf("%w: malformed", ErrInvalidCursor)
	}
	return Cursor{Kind: kind, Key: key}, nil
}

// DecodeFor decodes s and checks that the cursor was issued for kind.
func DecodeFor(s, kind string) (Cursor, error) {
	c, err := DecodeCursor(s)
	if err != nil {
		return Cursor{}, err
	}
	if !c.IsZero() && c.Kind != kind {
		return Cursor{}, fmt.Errorf("%w: issued for %q", ErrInvalidCursor, c.Kind)
	}
	return c, nil
}
