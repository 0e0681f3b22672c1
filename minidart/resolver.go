package minidart

import (
	"github.com/lintdart/requirednamed/lint"
	"github.com/lintdart/requirednamed/syntax"
)

// MetaURI is the import URI of the conventional meta annotation library.
const MetaURI = "package:meta/meta.dart"

// metaMembers are the annotation constants the meta library exports.
var metaMembers = map[string]bool{
	"required":          true,
	"protected":         true,
	"immutable":         true,
	"visibleForTesting": true,
}

// Resolver resolves annotations against the import tables of the files it
// was built from. An annotation written `@required` resolves to meta.required
// only when its file imports the meta library unprefixed; under
// `import ... as m` the spelling must be `@m.required`. Anything else is
// unresolved.
type Resolver struct {
	imports map[string][]*syntax.Import // filename -> imports
}

// NewResolver builds a resolver over the given files' import directives.
func NewResolver(files ...*syntax.File) *Resolver {
	r := &Resolver{imports: make(map[string][]*syntax.Import)}
	for _, f := range files {
		r.imports[f.Name] = f.Imports
	}
	return r
}

// ResolveAnnotation implements lint.SymbolResolver.
func (r *Resolver) ResolveAnnotation(ann *syntax.Annotation) (lint.Symbol, bool) {
	prefix, member, ok := splitAnnotationName(ann.Name)
	if !ok || !metaMembers[member] {
		return lint.Symbol{}, false
	}

	for _, imp := range r.imports[ann.Pos().Filename] {
		if imp.URI == MetaURI && imp.Prefix == prefix {
			return lint.Symbol{Library: "meta", Member: member}, true
		}
	}
	return lint.Symbol{}, false
}

// splitAnnotationName reduces an annotation name expression to an optional
// import prefix and a member name. Deeper selector chains are unresolved.
func splitAnnotationName(name syntax.Expr) (prefix, member string, ok bool) {
	switch name := name.(type) {
	case *syntax.Ident:
		return "", name.Name, true
	case *syntax.SelectorExpr:
		base, isIdent := name.X.(*syntax.Ident)
		if !isIdent {
			return "", "", false
		}
		return base.Name, name.Sel.Name, true
	}
	return "", "", false
}
