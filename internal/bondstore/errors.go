package bondstore

import (
	"errors"
	"fmt"
)

// ErrParse matches every ParseError via errors.Is.
var ErrParse = errors.New("bond row parse error")

// ParseError reports a row whose fields could not be turned into a bond.
type ParseError struct {
	Line  int    // 1-based line in the input
	Field string // "term", "yield" or "row"
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid %s %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }
