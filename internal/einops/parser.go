package einops

import (
	"strings"

	"github.com/pkg/errors"
)

// groupKind tags the variants of a top-level axis group. Downstream stages
// switch on the tag instead of re-deriving the operation type from shapes.
type groupKind int

const (
	simpleAxis    groupKind = iota // a named axis: "h"
	compositeAxes                  // a parenthesized group: "(h w)"
	ellipsisAxes                   // the "..." placeholder
	unitAxis                       // the anonymous size-1 literal "1"
)

// axisGroup is one top-level entry of a pattern side.
type axisGroup struct {
	kind groupKind
	name string   // set for simpleAxis
	axes []string // set for compositeAxes, in declared order
}

// axisExpr is one parsed pattern side: an ordered sequence of axis groups.
type axisExpr struct {
	groups     []axisGroup
	ellipsisAt int // top-level index of the ellipsis group, -1 when absent
}

func (e axisExpr) hasEllipsis() bool {
	return e.ellipsisAt >= 0
}

// namedAxes returns every named axis of the side in declared order
// (composite members expanded in place).
func (e axisExpr) namedAxes() []string {
	var names []string
	for _, g := range e.groups {
		switch g.kind {
		case simpleAxis:
			names = append(names, g.name)
		case compositeAxes:
			names = append(names, g.axes...)
		}
	}
	return names
}

// parsePattern splits a pattern on its arrow and parses both sides.
func parsePattern(pattern string) (in, out axisExpr, err error) {
	parts := strings.Split(pattern, "->")
	if len(parts) != 2 {
		return in, out, patternErrorf("expected exactly one \"->\", got %d", len(parts)-1)
	}

	left, right := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if left == "" || right == "" {
		return in, out, patternErrorf("pattern side must not be empty")
	}

	if in, err = parseSide(left); err != nil {
		return in, out, errors.WithMessage(err, "input side")
	}
	if out, err = parseSide(right); err != nil {
		return in, out, errors.WithMessage(err, "output side")
	}
	return in, out, nil
}

var parenSpacer = strings.NewReplacer("(", " ( ", ")", " ) ")

// parseSide parses one side of a pattern into an axisExpr.
//
// Whitespace separates axis names within and across groups. "(" opens a
// composite group and ")" closes it; nesting is rejected. "..." and "1" are
// recognized only as standalone top-level tokens.
func parseSide(side string) (axisExpr, error) {
	expr := axisExpr{ellipsisAt: -1}
	seen := make(map[string]bool)

	depth := 0
	var composite []string

	for _, tok := range strings.Fields(parenSpacer.Replace(side)) {
		switch tok {
		case "(":
			if depth > 0 {
				return expr, patternErrorf("nested parentheses are not allowed")
			}
			depth++
			composite = nil
		case ")":
			if depth == 0 {
				return expr, patternErrorf("unbalanced parentheses")
			}
			depth--
			if len(composite) == 0 {
				return expr, patternErrorf("empty composite group \"()\"")
			}
			expr.groups = append(expr.groups, axisGroup{kind: compositeAxes, axes: composite})
		case "...":
			if depth > 0 {
				return expr, patternErrorf("ellipsis is not allowed inside parentheses")
			}
			if expr.hasEllipsis() {
				return expr, patternErrorf("ellipsis may appear at most once per side")
			}
			expr.ellipsisAt = len(expr.groups)
			expr.groups = append(expr.groups, axisGroup{kind: ellipsisAxes})
		case "1":
			if depth > 0 {
				return expr, patternErrorf("the unit axis \"1\" is not allowed inside parentheses")
			}
			expr.groups = append(expr.groups, axisGroup{kind: unitAxis})
		default:
			if !isAxisName(tok) {
				return expr, patternErrorf("invalid axis name %q", tok)
			}
			if seen[tok] {
				return expr, patternErrorf("duplicate axis name %q", tok)
			}
			seen[tok] = true
			if depth > 0 {
				composite = append(composite, tok)
			} else {
				expr.groups = append(expr.groups, axisGroup{kind: simpleAxis, name: tok})
			}
		}
	}

	if depth != 0 {
		return expr, patternErrorf("unbalanced parentheses")
	}
	return expr, nil
}

// isAxisName reports whether s is a valid axis identifier: a letter or
// underscore followed by letters, digits or underscores. Case-sensitive.
func isAxisName(s string) bool {
	for i, r := range s {
		switch {
		case r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z'):
		case '0' <= r && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(s) > 0
}
