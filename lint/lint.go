// Package lint defines the small driver surface shared by analyzers, hosts,
// and tests: analyzer registration, the per-run pass, diagnostics, and the
// annotation symbol resolver capability.
package lint

import (
	"fmt"
	"sort"

	"github.com/lintdart/requirednamed/syntax"
)

// Analyzer describes an analysis rule for host drivers.
type Analyzer struct {
	Name string
	Doc  string
	Run  func(*Pass) error
}

// Symbol identifies a library member an annotation resolves to.
type Symbol struct {
	Library string
	Member  string
}

// SymbolResolver resolves an annotation reference to the library member it
// denotes. The second result is false when the annotation cannot be resolved;
// analyzers treat unresolved annotations as carrying no known meaning.
type SymbolResolver interface {
	ResolveAnnotation(*syntax.Annotation) (Symbol, bool)
}

// Diagnostic is a single finding anchored at a source position.
type Diagnostic struct {
	Pos     syntax.Pos
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Pos, d.Message)
}

// Reporter receives diagnostics as the driver emits them.
type Reporter interface {
	Report(Diagnostic)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Pass carries one analysis run over a set of parsed files. Analyzers read
// Files and Resolver and report through Report/Reportf; they hold no state
// across passes.
type Pass struct {
	Files    []*syntax.File
	Resolver SymbolResolver

	report func(Diagnostic)
}

// Report emits a diagnostic.
func (p *Pass) Report(d Diagnostic) { p.report(d) }

// Reportf emits a diagnostic at pos with a formatted message.
func (p *Pass) Reportf(pos syntax.Pos, format string, args ...any) {
	p.report(Diagnostic{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// Run executes the analyzer over files and forwards its diagnostics to sink,
// stably sorted by source position so output is deterministic regardless of
// traversal details. The analyzer's error, if any, is returned unchanged.
func Run(a *Analyzer, files []*syntax.File, resolver SymbolResolver, sink Reporter) error {
	var diags []Diagnostic
	pass := &Pass{
		Files:    files,
		Resolver: resolver,
		report:   func(d Diagnostic) { diags = append(diags, d) },
	}

	if err := a.Run(pass); err != nil {
		return err
	}

	sort.SliceStable(diags, func(i, j int) bool {
		pi, pj := diags[i].Pos, diags[j].Pos
		if pi.Filename != pj.Filename {
			return pi.Filename < pj.Filename
		}
		return pi.Offset < pj.Offset
	})

	for _, d := range diags {
		sink.Report(d)
	}
	return nil
}
