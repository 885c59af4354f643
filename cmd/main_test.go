package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fixture(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func runArgs(t *testing.T, dir string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	args = append([]string{"--config", filepath.Join(dir, "absent.json")}, args...)
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunNoInputs(t *testing.T) {
	code, _, _ := runArgs(t, t.TempDir())
	if code != 0 {
		t.Fatalf("expected clean exit without inputs, got %d", code)
	}
}

func TestRunVersion(t *testing.T) {
	code, out, _ := runArgs(t, t.TempDir(), "--version")
	if code != 0 || !strings.Contains(out, version) {
		t.Fatalf("unexpected version output %q (code %d)", out, code)
	}
}

func TestRunConvertsEachInput(t *testing.T) {
	dir := t.TempDir()
	ms := fixture(t, dir, "ms.txt", "ACGT\n((.)) t=1\n")
	kw := fixture(t, dir, "kw.out", "AUGC extra\n((.. ignored\n")
	code, _, logs := runArgs(t, dir, "-i1", ms, "--input-kinwalker", kw)
	if code != 0 {
		t.Fatalf("expected success, got %d: %s", code, logs)
	}
	got, err := os.ReadFile(filepath.Join(dir, "ms.vienna"))
	if err != nil || string(got) != "\n>multistrand_00001\nACGU\n((.))\n" {
		t.Fatalf("unexpected multistrand output %q (%v)", got, err)
	}
	got, err = os.ReadFile(filepath.Join(dir, "kw.vienna"))
	if err != nil || string(got) != "\n>kinwalker_00001\nAUGC\n((..\n" {
		t.Fatalf("unexpected kinwalker output %q (%v)", got, err)
	}
}

func TestRunFailureDoesNotStopOthers(t *testing.T) {
	dir := t.TempDir()
	bad := fixture(t, dir, "bad.txt", "no sequence\n")
	kw := fixture(t, dir, "kw.out", "AUGC\n....\n")
	code, _, logs := runArgs(t, dir, "-i2", bad, "-i3", kw)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(logs, "cannot find the sequence (drtransformer)") {
		t.Fatalf("failure not logged: %s", logs)
	}
	if _, err := os.Stat(filepath.Join(dir, "kw.vienna")); err != nil {
		t.Fatalf("kinwalker conversion should still run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "bad.vienna")); !os.IsNotExist(err) {
		t.Fatalf("failed conversion must not write output")
	}
}

func TestRunOutdirAndDryRun(t *testing.T) {
	dir := t.TempDir()
	kw := fixture(t, dir, "kw.out", "AUGC\n....\n")
	outDir := filepath.Join(dir, "converted")

	code, _, _ := runArgs(t, dir, "-i3", kw, "--outdir", outDir, "--dry-run")
	if code != 0 {
		t.Fatalf("dry run failed with %d", code)
	}
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Fatalf("dry run must not create %s", outDir)
	}

	code, _, _ = runArgs(t, dir, "-i3", kw, "--outdir", outDir)
	if code != 0 {
		t.Fatalf("conversion failed with %d", code)
	}
	if _, err := os.Stat(filepath.Join(outDir, "kw.vienna")); err != nil {
		t.Fatalf("expected output in outdir: %v", err)
	}
}

func TestRunInputsFromConfig(t *testing.T) {
	dir := t.TempDir()
	kw := fixture(t, dir, "kw.out", "AUGC\n....\n")
	cfg := fixture(t, dir, "rnaplot.yaml", "input_kinwalker: "+kw+"\nlog_level: error\n")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--config", cfg}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected success, got %d: %s", code, stderr.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "kw.vienna")); err != nil {
		t.Fatalf("config input not converted: %v", err)
	}
}

func TestRunRejectsPositionals(t *testing.T) {
	code, _, _ := runArgs(t, t.TempDir(), "stray.txt")
	if code != 2 {
		t.Fatalf("expected usage error, got %d", code)
	}
}
