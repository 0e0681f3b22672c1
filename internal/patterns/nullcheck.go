package patterns

import "github.com/lintdart/requirednamed/syntax"

// MatchesNotNull reports whether cond is structurally `name != null` or
// `null != name`. Matching is deliberately conservative: only a binary `!=`
// with a null literal on one side and a bare identifier on the other counts.
// Operands are inspected as written, so `(name) != null` does not match, and
// no other way of expressing the comparison is recognized.
//
// The identifier is compared by text alone. A local variable shadowing the
// parameter name still matches; the rule performs no scope analysis.
func MatchesNotNull(cond syntax.Expr, name string) bool {
	bin, ok := cond.(*syntax.BinaryExpr)
	if !ok || bin.Op != syntax.NotEq {
		return false
	}
	return isNullAgainstIdent(bin.X, bin.Y, name) || isNullAgainstIdent(bin.Y, bin.X, name)
}

func isNullAgainstIdent(nullSide, identSide syntax.Expr, name string) bool {
	if _, ok := nullSide.(*syntax.NullLit); !ok {
		return false
	}
	ident, ok := identSide.(*syntax.Ident)
	return ok && ident.Name == name
}
