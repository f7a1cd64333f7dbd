package checker_test

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/dieterlang/dieter/internal/checker"
	"github.com/dieterlang/dieter/internal/parser"
	"github.com/dieterlang/dieter/internal/symbols"
	"github.com/dieterlang/dieter/internal/trace"
)

// runScenario parses and typechecks the source from a txtar archive's
// "source.dtr" file, returning the scan/parse diagnostics (as strings)
// and the typecheck error, if any.
func runScenario(t *testing.T, path string) (diags []string, checkErr error) {
	t.Helper()
	arc, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("parsing archive: %v", err)
	}
	var source string
	found := false
	for _, f := range arc.Files {
		if f.Name == "source.dtr" {
			source = string(f.Data)
			found = true
		}
	}
	if !found {
		t.Fatalf("archive %s has no source.dtr file", path)
	}

	prog, pdiags := parser.Parse(path, source)
	for _, d := range pdiags {
		diags = append(diags, d.Error())
	}
	if len(diags) > 0 {
		return diags, nil
	}

	root := symbols.NewGlobal()
	checkErr = checker.CheckProgram(prog, root, trace.Discard{})
	return diags, checkErr
}

func expectation(t *testing.T, path string) string {
	t.Helper()
	arc, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("parsing archive: %v", err)
	}
	for _, f := range arc.Files {
		if f.Name == "expect" {
			return strings.TrimSpace(string(f.Data))
		}
	}
	t.Fatalf("archive %s has no expect file", path)
	return ""
}

func TestScenarios(t *testing.T) {
	matches, err := filepath.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatalf("globbing testdata: %v", err)
	}
	if len(matches) == 0 {
		t.Fatal("no txtar fixtures found under testdata/")
	}

	for _, path := range matches {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			want := expectation(t, path)
			diags, checkErr := runScenario(t, path)

			switch {
			case want == "ok":
				if len(diags) > 0 {
					t.Fatalf("expected ok, got scan/parse diagnostics: %v", diags)
				}
				if checkErr != nil {
					t.Fatalf("expected ok, got typecheck error: %v", checkErr)
				}
			case strings.HasPrefix(want, "fail:"):
				wantSubstr := strings.TrimSpace(strings.TrimPrefix(want, "fail:"))
				if len(diags) > 0 {
					t.Fatalf("expected typecheck failure %q, got scan/parse diagnostics instead: %v", wantSubstr, diags)
				}
				if checkErr == nil {
					t.Fatalf("expected failure containing %q, but typecheck succeeded", wantSubstr)
				}
				if !strings.Contains(checkErr.Error(), wantSubstr) {
					t.Fatalf("typecheck error %q does not contain expected substring %q", checkErr.Error(), wantSubstr)
				}
			default:
				t.Fatalf("unrecognized expect file content: %q", want)
			}
		})
	}
}
