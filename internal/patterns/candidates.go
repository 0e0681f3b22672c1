// Package patterns implements the structural checks behind the requirednamed
// rule: selecting candidate parameters, extracting the leading assertion
// prefix of a body, and matching `x != null` conditions.
package patterns

import (
	"github.com/lintdart/requirednamed/lint"
	"github.com/lintdart/requirednamed/syntax"
)

// The conventional required-marker symbol. An annotation counts as a
// required marker only when the host resolver maps it to this library/member
// pair.
const (
	MetaLibrary    = "meta"
	RequiredMember = "required"
)

// Candidates returns, in declaration order, the parameters the rule should
// consider: named parameters without a default value and without an
// annotation resolving to meta.required. An empty result is the normal
// "nothing to check" outcome, not an error.
func Candidates(params []*syntax.Param, resolver lint.SymbolResolver) []*syntax.Param {
	var out []*syntax.Param
	for _, p := range params {
		if p.Kind != syntax.Named || p.Default != nil {
			continue
		}
		if hasRequiredMarker(p, resolver) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// hasRequiredMarker reports whether any annotation on p resolves to the
// required marker. Unresolved annotations carry no known meaning and are
// skipped.
func hasRequiredMarker(p *syntax.Param, resolver lint.SymbolResolver) bool {
	if resolver == nil {
		return false
	}
	for _, a := range p.Annotations {
		sym, ok := resolver.ResolveAnnotation(a)
		if !ok {
			continue
		}
		if sym.Library == MetaLibrary && sym.Member == RequiredMember {
			return true
		}
	}
	return false
}
