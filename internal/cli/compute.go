/*
PURPOSE:
  Defines the 'compute' subcommand.
  Evaluates the throughput model once and prints the KPIs.

REQUIREMENTS:
  User-specified:
  - Same numbers as the page KPIs: "24.6 tph", "2:26 min", "97".

  Implementation-discovered:
  - --explain shows the intermediate terms, handy when checking a figure
    quoted from the page.
  - --json emits a snapshot record for scripting.

ARCHITECTURE INTEGRATION:
  - Calls: internal/metrics.Compute
  - Uses: internal/config (defaults), internal/output (snapshot)

ERROR HANDLING:
  - Returns error if config load fails or an input is out of range.

USAGE:
  headway-lab compute --headway 150 --variability 35 --ai 0.8
*/

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/daryltucker/headway-lab/internal/metrics"
	"github.com/daryltucker/headway-lab/internal/model"
	"github.com/daryltucker/headway-lab/internal/output"
	"github.com/daryltucker/headway-lab/internal/view"
	"github.com/spf13/cobra"
)

var (
	computeControls controlFlags
	computeJSON     bool
	computeExplain  bool
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute throughput for one parameter set",
	Example: `  # Page defaults (headway 120s, dwell 30s, clearance 20s, variability 20%, ai 0.6)
  headway-lab compute

  # No AI assistance, with intermediate terms
  headway-lab compute --ai 0 --explain

  # Machine-readable
  headway-lab compute --headway 90 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		controls := computeControls.resolve(cmd.Flags(), cfg.Defaults)
		if err := validateControls(controls); err != nil {
			return err
		}
		p := controls.Parameters()
		m := metrics.Compute(p)
		output.Logger.Debug("computed", "params", p, "metrics", m)

		if computeJSON {
			return writeComputeJSON(cmd.OutOrStdout(), p, m, computeExplain)
		}
		return writeComputeText(cmd.OutOrStdout(), p, m, computeExplain)
	},
}

type computeRecord struct {
	model.Snapshot
	Terms *metrics.Terms `json:"terms,omitempty"`
}

func writeComputeJSON(w io.Writer, p model.Parameters, m model.Metrics, explain bool) error {
	rec := computeRecord{Snapshot: output.NewSnapshot(p, m, nil)}
	if explain {
		terms := metrics.Breakdown(p)
		rec.Terms = &terms
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

func writeComputeText(w io.Writer, p model.Parameters, m model.Metrics, explain bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Headway\t%s\n", view.FormatSeconds(p.Headway))
	fmt.Fprintf(tw, "Dwell\t%s\n", view.FormatSeconds(p.Dwell))
	fmt.Fprintf(tw, "Clearance\t%s\n", view.FormatSeconds(p.Clearance))
	fmt.Fprintf(tw, "Variability\t%s\n", view.FormatPercent(p.Variability))
	fmt.Fprintf(tw, "AI factor\t%s\n", view.FormatFactor(p.AI))
	if explain {
		t := metrics.Breakdown(p)
		fmt.Fprintf(tw, "Technical headway\t%.2fs\n", t.TechnicalHeadway)
		fmt.Fprintf(tw, "Effective variability\t%.4f\n", t.EffectiveVariability)
		fmt.Fprintf(tw, "Buffer multiplier\t%.4f\n", t.BufferMultiplier)
		fmt.Fprintf(tw, "AI benefit\t%.4f\n", t.AIBenefit)
	}
	fmt.Fprintf(tw, "Throughput\t%s\n", view.FormatTPH(m.TPH))
	fmt.Fprintf(tw, "Effective headway\t%s min\n", metrics.FormatMinSec(m.EffectiveHeadway))
	fmt.Fprintf(tw, "Stability\t%d\n", m.Stability)
	return tw.Flush()
}

// validateControls enforces the slider domains for values typed on the
// command line.
func validateControls(c model.Controls) error {
	for _, v := range []float64{c.Headway, c.Dwell, c.Clearance, c.Variability, c.AI} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("controls must be finite, got %v", v)
		}
	}
	switch {
	case c.Headway <= 0:
		return fmt.Errorf("headway must be > 0, got %v", c.Headway)
	case c.Dwell < 0:
		return fmt.Errorf("dwell must be >= 0, got %v", c.Dwell)
	case c.Clearance < 0:
		return fmt.Errorf("clearance must be >= 0, got %v", c.Clearance)
	case c.Variability < 0 || c.Variability > 100:
		return fmt.Errorf("variability must be in [0,100], got %v", c.Variability)
	case c.AI < 0 || c.AI > 1:
		return fmt.Errorf("ai must be in [0,1], got %v", c.AI)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(computeCmd)

	computeControls.register(computeCmd.Flags())
	computeCmd.Flags().BoolVar(&computeJSON, "json", false, "Print a JSON snapshot instead of text")
	computeCmd.Flags().BoolVar(&computeExplain, "explain", false, "Include the intermediate model terms")
}
