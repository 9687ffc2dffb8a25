package einops

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var exprCmp = cmp.AllowUnexported(axisExpr{}, axisGroup{})

func TestParseSide(t *testing.T) {
	tests := []struct {
		name string
		side string
		want axisExpr
	}{
		{
			name: "flat axes",
			side: "b h w c",
			want: axisExpr{
				groups: []axisGroup{
					{kind: simpleAxis, name: "b"},
					{kind: simpleAxis, name: "h"},
					{kind: simpleAxis, name: "w"},
					{kind: simpleAxis, name: "c"},
				},
				ellipsisAt: -1,
			},
		},
		{
			name: "composite group",
			side: "b (c h w)",
			want: axisExpr{
				groups: []axisGroup{
					{kind: simpleAxis, name: "b"},
					{kind: compositeAxes, axes: []string{"c", "h", "w"}},
				},
				ellipsisAt: -1,
			},
		},
		{
			name: "ellipsis and unit axis",
			side: "... 1 c",
			want: axisExpr{
				groups: []axisGroup{
					{kind: ellipsisAxes},
					{kind: unitAxis},
					{kind: simpleAxis, name: "c"},
				},
				ellipsisAt: 0,
			},
		},
		{
			name: "no spaces around parentheses",
			side: "(h w)c",
			want: axisExpr{
				groups: []axisGroup{
					{kind: compositeAxes, axes: []string{"h", "w"}},
					{kind: simpleAxis, name: "c"},
				},
				ellipsisAt: -1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSide(tt.side)
			if err != nil {
				t.Fatalf("parseSide(%q) failed: %v", tt.side, err)
			}
			if diff := cmp.Diff(tt.want, got, exprCmp); diff != "" {
				t.Errorf("parseSide(%q) mismatch (-want +got):\n%s", tt.side, diff)
			}
		})
	}
}

func TestParsePattern(t *testing.T) {
	in, out, err := parsePattern(" h w ->w h ")
	if err != nil {
		t.Fatalf("parsePattern failed: %v", err)
	}

	wantIn := axisExpr{
		groups:     []axisGroup{{kind: simpleAxis, name: "h"}, {kind: simpleAxis, name: "w"}},
		ellipsisAt: -1,
	}
	wantOut := axisExpr{
		groups:     []axisGroup{{kind: simpleAxis, name: "w"}, {kind: simpleAxis, name: "h"}},
		ellipsisAt: -1,
	}
	if diff := cmp.Diff(wantIn, in, exprCmp); diff != "" {
		t.Errorf("input side mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantOut, out, exprCmp); diff != "" {
		t.Errorf("output side mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePatternErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"no arrow", "a b c"},
		{"two arrows", "a -> b -> c"},
		{"empty input side", " -> a"},
		{"empty output side", "a -> "},
		{"unbalanced open", "(a b -> a b"},
		{"unbalanced close", "a b) -> a b"},
		{"nested parentheses", "((a b) c) -> a b c"},
		{"empty composite", "a () -> a"},
		{"ellipsis in composite", "(... a) -> a"},
		{"double ellipsis", "... a ... -> a"},
		{"unit axis in composite", "(1 a) -> a"},
		{"stray token", "a b* -> b a"},
		{"numeric axis", "a 2 -> a"},
		{"duplicate name", "a a -> a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parsePattern(tt.pattern)
			if err == nil {
				t.Fatalf("parsePattern(%q) succeeded, want error", tt.pattern)
			}
			var perr *PatternError
			if !errors.As(err, &perr) {
				t.Errorf("parsePattern(%q) returned %T (%v), want *PatternError", tt.pattern, err, err)
			}
		})
	}
}

func TestIsAxisName(t *testing.T) {
	for _, valid := range []string{"h", "h1", "_tmp", "Batch", "h_out"} {
		if !isAxisName(valid) {
			t.Errorf("isAxisName(%q) = false, want true", valid)
		}
	}
	for _, invalid := range []string{"", "1h", "h-w", "h.w", "à"} {
		if isAxisName(invalid) {
			t.Errorf("isAxisName(%q) = true, want false", invalid)
		}
	}
}
