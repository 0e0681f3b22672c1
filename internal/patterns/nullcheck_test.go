package patterns

import (
	"testing"

	"github.com/lintdart/requirednamed/syntax"
)

func ident(name string) *syntax.Ident { return &syntax.Ident{Name: name} }

func notEq(x, y syntax.Expr) syntax.Expr {
	return &syntax.BinaryExpr{X: x, Op: syntax.NotEq, Y: y}
}

func TestMatchesNotNull(t *testing.T) {
	null := &syntax.NullLit{}

	tests := []struct {
		name string
		cond syntax.Expr
		want bool
	}{
		{
			name: "ident against null",
			cond: notEq(ident("a"), null),
			want: true,
		},
		{
			name: "null against ident",
			cond: notEq(null, ident("a")),
			want: true,
		},
		{
			name: "different identifier",
			cond: notEq(ident("b"), null),
			want: false,
		},
		{
			name: "equality instead of inequality",
			cond: &syntax.BinaryExpr{X: ident("a"), Op: syntax.Eq, Y: null},
			want: false,
		},
		{
			name: "no null operand",
			cond: notEq(ident("a"), ident("b")),
			want: false,
		},
		{
			name: "both operands null",
			cond: notEq(null, &syntax.NullLit{}),
			want: false,
		},
		{
			name: "parenthesized operand is not a bare identifier",
			cond: notEq(&syntax.ParenExpr{X: ident("a")}, null),
			want: false,
		},
		{
			name: "call operand",
			cond: notEq(&syntax.CallExpr{Fun: ident("a")}, null),
			want: false,
		},
		{
			name: "negated equality written differently",
			cond: &syntax.UnaryExpr{Op: "!", X: &syntax.BinaryExpr{X: ident("a"), Op: syntax.Eq, Y: null}},
			want: false,
		},
		{
			name: "non-binary condition",
			cond: ident("a"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesNotNull(tt.cond, "a"); got != tt.want {
				t.Errorf("MatchesNotNull(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestMatchesNotNullShadowedName(t *testing.T) {
	// Name matching is textual only: there is no scope analysis, so any
	// identifier with the parameter's spelling matches.
	cond := notEq(ident("a"), &syntax.NullLit{})
	if !MatchesNotNull(cond, "a") {
		t.Error("textual match expected regardless of scoping")
	}
	if MatchesNotNull(cond, "other") {
		t.Error("non-matching name must not match")
	}
}
