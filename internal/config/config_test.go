package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daryltucker/headway-lab/internal/model"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Defaults != model.DefaultControls() {
		t.Fatalf("defaults = %+v", cfg.Defaults)
	}
}

func TestLoadOverridesFields(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", `
defaults:
  headway: 90
  dwell: 25
  clearance: 15
  variability: 10
  ai: 0.3
random:
  headway: {min: 90, span: 60}
output_dir: out
chart_format: png
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := model.Controls{Headway: 90, Dwell: 25, Clearance: 15, Variability: 10, AI: 0.3}
	if cfg.Defaults != want {
		t.Errorf("defaults = %+v, want %+v", cfg.Defaults, want)
	}
	if cfg.Random.Headway != (model.Range{Min: 90, Span: 60}) {
		t.Errorf("headway range = %+v", cfg.Random.Headway)
	}
	if cfg.Random.Dwell != model.DefaultRanges().Dwell {
		t.Errorf("unset dwell range changed: %+v", cfg.Random.Dwell)
	}
	if cfg.OutputDir != "out" || cfg.ChartFormat != "png" || cfg.CSVFile != "sweep.csv" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadSearchesDefaultFiles(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load without files: %v", err)
	}
	if cfg.OutputDir != "." {
		t.Fatalf("expected defaults, got %+v", cfg)
	}

	writeFile(t, dir, "headway_lab.yaml", "output_dir: found\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "found" {
		t.Fatalf("output_dir = %q, want found", cfg.OutputDir)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing explicit file accepted")
	}

	bad := writeFile(t, dir, "bad.yaml", "defaults: [not, a, map]\n")
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("parse error = %v", err)
	}

	invalid := writeFile(t, dir, "invalid.yaml", `
defaults:
  headway: 0
  ai: 1.5
chart_format: gif
`)
	_, err := Load(invalid)
	if err == nil {
		t.Fatal("invalid values accepted")
	}
	for _, want := range []string{"defaults.headway", "defaults.ai", "chart_format"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}
