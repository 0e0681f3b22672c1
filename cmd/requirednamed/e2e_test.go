package main_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary once for all tests
	tmpDir, err := os.MkdirTemp("", "requirednamed-e2e-*")
	if err != nil {
		panic(err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	binaryPath = filepath.Join(tmpDir, "requirednamed")
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic(string(out) + ": " + err.Error())
	}

	os.Exit(m.Run())
}

func TestE2E_Findings(t *testing.T) {
	cmd := exec.Command(binaryPath, filepath.Join("testdata", "basic"))
	out, err := cmd.CombinedOutput()

	// Should exit with non-zero (has diagnostics)
	if err == nil {
		t.Fatal("expected non-zero exit code for code with issues")
	}

	output := string(out)
	if !strings.Contains(output, `named parameter "owner" is asserted non-null`) {
		t.Errorf("expected owner diagnostic, got:\n%s", output)
	}
	if !strings.Contains(output, `named parameter "name"`) {
		t.Errorf("expected name diagnostic, got:\n%s", output)
	}
}

func TestE2E_Clean(t *testing.T) {
	cmd := exec.Command(binaryPath, filepath.Join("testdata", "clean"))
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("expected clean exit, got %v:\n%s", err, out)
	}
	if len(out) != 0 {
		t.Errorf("expected no output, got:\n%s", out)
	}
}
