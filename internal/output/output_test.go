package output

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/daryltucker/headway-lab/internal/model"
)

var params = model.Parameters{Headway: 120, Dwell: 30, Clearance: 20, Variability: 0.2, AI: 0.6}

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.csv")
	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}
	if err := w.Write(params, model.SweepPoint{AI: 0.05, BaselineTPH: 21.256495, AITPH: 21.9}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if strings.Join(rows[0], ",") != strings.Join(CSVHeader, ",") {
		t.Errorf("header = %v", rows[0])
	}
	want := []string{"120", "30", "20", "0.2", "0.05", "21.2565", "21.9000"}
	if strings.Join(rows[1], ",") != strings.Join(want, ",") {
		t.Errorf("row = %v, want %v", rows[1], want)
	}
}

func TestJSONWriterAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.jsonl")
	m := model.Metrics{EffectiveHeadway: 146.18, TPH: 24.63, Stability: 97}

	for i := 0; i < 2; i++ {
		w, err := NewJSONWriter(path)
		if err != nil {
			t.Fatalf("NewJSONWriter: %v", err)
		}
		if err := w.Write(NewSnapshot(params, m, nil)); err != nil {
			t.Fatalf("Write: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	sc := bufio.NewScanner(bytes.NewReader(data))
	var ids []string
	for sc.Scan() {
		var s model.Snapshot
		if err := json.Unmarshal(sc.Bytes(), &s); err != nil {
			t.Fatalf("decode line: %v", err)
		}
		if _, err := uuid.Parse(s.RunID); err != nil {
			t.Errorf("run id %q: %v", s.RunID, err)
		}
		if s.Metrics != m || s.Parameters != params {
			t.Errorf("snapshot = %+v", s)
		}
		ids = append(ids, s.RunID)
	}
	if len(ids) != 2 || ids[0] == ids[1] {
		t.Fatalf("run ids = %v", ids)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"":      slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("unknown level accepted")
	}
}

func TestConfigure(t *testing.T) {
	prev := Logger
	defer func() { Logger = prev }()

	var buf bytes.Buffer
	Configure(&buf, slog.LevelWarn)
	Logger.Info("hidden")
	Logger.Warn("shown", "k", "v")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("log output = %q", buf.String())
	}
}
