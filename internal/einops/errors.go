package einops

import "fmt"

// PatternError reports a syntactically malformed rearrangement pattern:
// unbalanced or nested parentheses, misplaced ellipsis, a missing arrow,
// stray tokens. It is independent of any concrete tensor shape.
type PatternError struct {
	Reason string
}

func (e *PatternError) Error() string {
	return "bad pattern: " + e.Reason
}

func patternErrorf(format string, args ...any) *PatternError {
	return &PatternError{Reason: fmt.Sprintf(format, args...)}
}

// ShapeError reports a pattern that is semantically invalid for the concrete
// tensor shape or the supplied axis sizes: axis count mismatch, split product
// mismatch, unresolvable inference, missing repeat size, illegal drop,
// conflicting bindings.
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string {
	return e.Reason
}

func shapeErrorf(format string, args ...any) *ShapeError {
	return &ShapeError{Reason: fmt.Sprintf(format, args...)}
}
