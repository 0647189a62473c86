/*
PURPOSE:
  Writes AI sweep points to a CSV file.
  Ensures data integrity by flushing writes immediately.

REQUIREMENTS:
  User-specified:
  - Export the chart data for spreadsheets.

  Implementation-discovered:
  - Each row repeats the input parameters so a file can hold several sweeps.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (sweep)
  - Consumes: internal/model.SweepPoint, internal/model.Parameters

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write.
  - Mutex guards the writer.

USAGE:
  w, err := output.NewCSVWriter("sweep.csv")
  w.Write(params, point)
  w.Close()

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update header and record together when SweepPoint changes.
*/

package output

import (
	"encoding/csv"
	"os"
	"strconv"
	"sync"

	"github.com/daryltucker/headway-lab/internal/model"
)

// CSVHeader is the first row of every sweep file.
var CSVHeader = []string{
	"headway_s", "dwell_s", "clearance_s", "variability", "ai",
	"baseline_tph", "ai_tph",
}

// CSVWriter handles writing sweep points to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter creates a new CSVWriter.
// It overwrites the file if it exists.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(CSVHeader); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write writes one sweep point to the CSV file.
func (cw *CSVWriter) Write(p model.Parameters, pt model.SweepPoint) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	record := []string{
		num(p.Headway),
		num(p.Dwell),
		num(p.Clearance),
		num(p.Variability),
		strconv.FormatFloat(pt.AI, 'f', 2, 64),
		strconv.FormatFloat(pt.BaselineTPH, 'f', 4, 64),
		strconv.FormatFloat(pt.AITPH, 'f', 4, 64),
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.file.Close()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
