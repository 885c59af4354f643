package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfigMissingFile(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing config should not fail: %v", err)
	}
	if *c != (Config{}) {
		t.Fatalf("expected empty config, got %+v", c)
	}
}

func TestLoadConfigFormats(t *testing.T) {
	want := Config{
		InputKinwalker: "walk.txt",
		OutputDir:      "out",
		LogLevel:       "debug",
	}
	files := map[string]string{
		"rnaplot.json": `{"input_kinwalker": "walk.txt", "output_dir": "out", "log_level": "debug"}`,
		"rnaplot.yaml": "input_kinwalker: walk.txt\noutput_dir: out\nlog_level: debug\n",
		"rnaplot.YML":  "input_kinwalker: walk.txt\noutput_dir: out\nlog_level: debug\n",
	}
	dir := t.TempDir()
	for name, body := range files {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		c, err := LoadConfig(p)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if diff := cmp.Diff(want, *c); diff != "" {
			t.Fatalf("%s: config mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(p, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(p); err == nil {
		t.Fatalf("expected decode error")
	}
}
