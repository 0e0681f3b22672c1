package patterns

import "github.com/lintdart/requirednamed/syntax"

// LeadingAssertions returns the conditions of the maximal leading run of
// assert statements in body, in source order. The run ends at the first
// non-assert statement; asserts after that point are never considered. A nil
// body or a non-block body (an `=> expr` form) has no statements to scan and
// yields an empty result. Conditions are unparenthesized before they are
// returned.
func LeadingAssertions(body syntax.Stmt) []syntax.Expr {
	block, ok := body.(*syntax.BlockStmt)
	if !ok {
		return nil
	}

	var conds []syntax.Expr
	for _, stmt := range block.List {
		assert, ok := stmt.(*syntax.AssertStmt)
		if !ok {
			break
		}
		conds = append(conds, Unparen(assert.Cond))
	}
	return conds
}

// Unparen strips any enclosing parentheses from e.
func Unparen(e syntax.Expr) syntax.Expr {
	for {
		paren, ok := e.(*syntax.ParenExpr)
		if !ok {
			return e
		}
		e = paren.X
	}
}
