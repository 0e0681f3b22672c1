// Package lintest runs analyzers over txtar fixture archives and checks the
// reported diagnostics against `// want` expectation comments, in the manner
// of golang.org/x/tools' analysistest (which only drives Go sources).
//
// Each file in the archive is parsed with the minidart frontend. A source
// line may carry one or more expectations:
//
//	m1({a}) { // want `asserted non-null` `second pattern`
//
// Every diagnostic must match an expectation on its line, and every
// expectation must be matched by exactly one diagnostic.
package lintest

import (
	"bytes"
	"regexp"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/lintdart/requirednamed/lint"
	"github.com/lintdart/requirednamed/minidart"
	"github.com/lintdart/requirednamed/syntax"
)

var (
	wantRe    = regexp.MustCompile("//\\s*want\\s+(.+)$")
	patternRe = regexp.MustCompile("`([^`]*)`")
)

type expectation struct {
	file    string
	line    int
	pattern *regexp.Regexp
	matched bool
}

// Run parses every file in the archive at path, runs the analyzer over the
// resulting trees with the frontend's import resolver, and reports any
// mismatch between diagnostics and expectations as test errors.
func Run(t *testing.T, path string, analyzer *lint.Analyzer) {
	t.Helper()

	archive, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("reading fixture %s: %v", path, err)
	}

	var (
		files   []*syntax.File
		expects []*expectation
	)
	for _, f := range archive.Files {
		parsed, err := minidart.Parse(f.Name, f.Data)
		if err != nil {
			t.Fatalf("parsing fixture file %s: %v", f.Name, err)
		}
		files = append(files, parsed)
		expects = append(expects, parseExpectations(t, f.Name, f.Data)...)
	}

	var diags []lint.Diagnostic
	sink := lint.ReporterFunc(func(d lint.Diagnostic) { diags = append(diags, d) })
	if err := lint.Run(analyzer, files, minidart.NewResolver(files...), sink); err != nil {
		t.Fatalf("analyzer %s failed: %v", analyzer.Name, err)
	}

	for _, d := range diags {
		if !consume(expects, d) {
			t.Errorf("%s: unexpected diagnostic: %s", d.Pos, d.Message)
		}
	}
	for _, e := range expects {
		if !e.matched {
			t.Errorf("%s:%d: no diagnostic matching %q", e.file, e.line, e.pattern)
		}
	}
}

func parseExpectations(t *testing.T, filename string, src []byte) []*expectation {
	t.Helper()

	var out []*expectation
	for i, line := range bytes.Split(src, []byte("\n")) {
		m := wantRe.FindSubmatch(line)
		if m == nil {
			continue
		}
		patterns := patternRe.FindAllSubmatch(m[1], -1)
		if patterns == nil {
			t.Fatalf("%s:%d: malformed want comment: patterns must be back-quoted", filename, i+1)
		}
		for _, pm := range patterns {
			re, err := regexp.Compile(string(pm[1]))
			if err != nil {
				t.Fatalf("%s:%d: bad want pattern: %v", filename, i+1, err)
			}
			out = append(out, &expectation{file: filename, line: i + 1, pattern: re})
		}
	}
	return out
}

func consume(expects []*expectation, d lint.Diagnostic) bool {
	for _, e := range expects {
		if e.matched || e.file != d.Pos.Filename || e.line != d.Pos.Line {
			continue
		}
		if e.pattern.MatchString(d.Message) {
			e.matched = true
			return true
		}
	}
	return false
}
