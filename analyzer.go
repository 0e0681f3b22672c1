// Package requirednamed provides a lint rule that flags named parameters
// which a function asserts to be non-null without declaring the contract:
// the parameter has no default value and no @required annotation, yet the
// body's leading statements contain `assert(param != null)`. Authors should
// make the contract explicit with meta's @required instead of relying on a
// runtime assertion.
package requirednamed

import (
	"github.com/lintdart/requirednamed/internal/patterns"
	"github.com/lintdart/requirednamed/lint"
	"github.com/lintdart/requirednamed/syntax"
)

// Analyzer is the rule's registration value for host drivers.
var Analyzer = &lint.Analyzer{
	Name: "requirednamed",
	Doc:  "flags named parameters asserted non-null but not annotated with @required",
	Run:  run,
}

// Analyze runs the rule over a single parsed tree, reporting each violation
// to sink in source-position order. resolver is consulted only to decide
// whether a parameter annotation denotes meta.required; it may be nil, in
// which case no annotation marks a parameter required.
func Analyze(tree *syntax.File, sink lint.Reporter, resolver lint.SymbolResolver) error {
	return lint.Run(Analyzer, []*syntax.File{tree}, resolver, sink)
}

func run(pass *lint.Pass) error {
	for _, file := range pass.Files {
		syntax.Inspect(file, func(n syntax.Node) bool {
			if fn, ok := n.(syntax.FunctionLike); ok {
				checkFunction(pass, fn)
			}
			// Keep descending: nested function literals have their own
			// parameter lists and are checked independently.
			return true
		})
	}
	return nil
}

// checkFunction applies the rule to one function-like node. Shapes that do
// not match (no candidates, no leading asserts) end the check silently; the
// pass is advisory and never aborts the traversal.
func checkFunction(pass *lint.Pass, fn syntax.FunctionLike) {
	candidates := patterns.Candidates(fn.FuncParams(), pass.Resolver)
	if len(candidates) == 0 {
		return
	}

	asserts := patterns.LeadingAssertions(fn.FuncBody())
	if len(asserts) == 0 {
		return
	}

	for _, param := range candidates {
		for _, cond := range asserts {
			if patterns.MatchesNotNull(cond, param.Name.Name) {
				pass.Reportf(param.Name.Pos(),
					"named parameter %q is asserted non-null; annotate it with @required instead", param.Name.Name)
				break
			}
		}
	}
}
