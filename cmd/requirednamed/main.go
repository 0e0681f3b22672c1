// Command requirednamed lints Dart sources for named parameters that are
// asserted non-null without being annotated with @required.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/lintdart/requirednamed"
	"github.com/lintdart/requirednamed/lint"
	"github.com/lintdart/requirednamed/minidart"
	"github.com/lintdart/requirednamed/syntax"
)

// Exit codes: 0 no findings, 1 findings reported, 2 usage or input errors.
const (
	exitClean    = 0
	exitFindings = 1
	exitError    = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("requirednamed", flag.ContinueOnError)
	flags.SetOutput(stderr)
	jsonOut := flags.Bool("json", false, "emit diagnostics as JSON")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: requirednamed [-json] <file|dir>...\n\n%s\n", requirednamed.Analyzer.Doc)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return exitError
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return exitError
	}

	paths, err := collectSources(flags.Args())
	if err != nil {
		fmt.Fprintf(stderr, "requirednamed: %v\n", err)
		return exitError
	}

	var files []*syntax.File
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "requirednamed: %v\n", err)
			return exitError
		}
		parsed, err := minidart.Parse(path, src)
		if err != nil {
			fmt.Fprintf(stderr, "requirednamed: %v\n", err)
			return exitError
		}
		files = append(files, parsed)
	}

	var diags []lint.Diagnostic
	sink := lint.ReporterFunc(func(d lint.Diagnostic) { diags = append(diags, d) })
	if err := lint.Run(requirednamed.Analyzer, files, minidart.NewResolver(files...), sink); err != nil {
		fmt.Fprintf(stderr, "requirednamed: %v\n", err)
		return exitError
	}

	if *jsonOut {
		if err := writeJSON(stdout, diags); err != nil {
			fmt.Fprintf(stderr, "requirednamed: %v\n", err)
			return exitError
		}
	} else {
		printDiagnostics(stdout, diags)
	}

	if len(diags) > 0 {
		return exitFindings
	}
	return exitClean
}

// collectSources expands the argument list into .dart files, recursing into
// directories. Files named explicitly are accepted regardless of extension.
func collectSources(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".dart") {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}

func printDiagnostics(w io.Writer, diags []lint.Diagnostic) {
	bold := color.New(color.Bold)
	for _, d := range diags {
		fmt.Fprintf(w, "%s: %s\n", bold.Sprint(d.Pos), d.Message)
	}
}

type jsonDiagnostic struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

type jsonReport struct {
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
}

func writeJSON(w io.Writer, diags []lint.Diagnostic) error {
	report := jsonReport{Diagnostics: make([]jsonDiagnostic, 0, len(diags))}
	for _, d := range diags {
		report.Diagnostics = append(report.Diagnostics, jsonDiagnostic{
			File:    d.Pos.Filename,
			Line:    d.Pos.Line,
			Column:  d.Pos.Column,
			Message: d.Message,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
