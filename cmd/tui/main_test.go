package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rnaplot/internal/vienna"
)

func TestCycleMode(t *testing.T) {
	m := newModel(nil, nil)
	if m.currentMode != modeStructure {
		t.Fatalf("expected initial mode structure, got %v", m.currentMode)
	}
	m = m.cycleMode()
	if m.currentMode != modeSequence {
		t.Fatalf("expected sequence, got %v", m.currentMode)
	}
	m = m.cycleMode()
	if m.currentMode != modePaired {
		t.Fatalf("expected paired, got %v", m.currentMode)
	}
	m = m.cycleMode()
	if m.currentMode != modeStructure {
		t.Fatalf("expected structure, got %v", m.currentMode)
	}
}

func TestBuildRightLinesWrap(t *testing.T) {
	m := newModel(nil, nil)
	m.width = 60
	m.height = 40
	m.currentMode = modePaired
	rec := vienna.Records("kinwalker", strings.Repeat("AUG", 50), []string{strings.Repeat("(.)", 50)})[0]
	lines := m.buildRightLines(rec)
	// label + (sequence, structure, blank) per wrapped chunk
	chunks := (150 + m.wrapWidth() - 1) / m.wrapWidth()
	if len(lines) != 1+3*chunks {
		t.Fatalf("expected %d lines, got %d", 1+3*chunks, len(lines))
	}
}

func TestChunk(t *testing.T) {
	got := chunk("abcdefg", 3)
	if strings.Join(got, "|") != "abc|def|g" {
		t.Fatalf("unexpected chunks %q", got)
	}
	if chunk("", 3) != nil {
		t.Fatalf("expected no chunks for empty input")
	}
}

func TestLoadEntries(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.vienna")
	b := filepath.Join(dir, "b.vienna")
	if err := os.WriteFile(a, vienna.Encode(vienna.Records("multistrand", "GGAACC", []string{"......", "((..))"})), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, vienna.Encode(vienna.Records("kinwalker", "AUGC", []string{"...."})), 0o644); err != nil {
		t.Fatal(err)
	}
	entries, summaries, err := loadEntries([]string{a, b})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(entries) != 3 || entries[2].file != b || entries[1].record.Name() != "multistrand_00002" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	if summaries[a].MaxPairs != 2 || summaries[b].Steps != 1 {
		t.Fatalf("unexpected summaries: %+v", summaries)
	}
	if _, _, err := loadEntries([]string{filepath.Join(dir, "missing.vienna")}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
