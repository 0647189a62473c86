/*
PURPOSE:
  Writes computation snapshots to a JSON Lines file (NDJSON).

REQUIREMENTS:
  Implementation-discovered:
  - JSON Lines lets repeated sweep runs append one record each.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (sweep)
  - Consumes: internal/model.Snapshot

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.
  - Thread-safe.

USAGE:
  w, err := output.NewJSONWriter("snapshot.jsonl")
  w.Write(snapshot)
  w.Close()
*/

package output

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/daryltucker/headway-lab/internal/model"
)

// JSONWriter handles writing snapshots to a JSON Lines file.
type JSONWriter struct {
	file    *os.File
	encoder *json.Encoder
	mu      sync.Mutex
}

// NewJSONWriter creates a new JSONWriter. Records are appended when the
// file already exists.
func NewJSONWriter(path string) (*JSONWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	return &JSONWriter{
		file:    f,
		encoder: json.NewEncoder(f),
	}, nil
}

// Write writes a single snapshot as a JSON line.
func (jw *JSONWriter) Write(s model.Snapshot) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	return jw.encoder.Encode(s)
}

// Close closes the underlying file.
func (jw *JSONWriter) Close() error {
	return jw.file.Close()
}

// NewSnapshot stamps a snapshot with a fresh run id and the current time.
func NewSnapshot(p model.Parameters, m model.Metrics, sweep []model.SweepPoint) model.Snapshot {
	return model.Snapshot{
		RunID:      uuid.NewString(),
		Timestamp:  time.Now().UTC(),
		Parameters: p,
		Metrics:    m,
		Sweep:      sweep,
	}
}
