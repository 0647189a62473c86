/*
PURPOSE:
  Defines the 'sweep' subcommand.
  Renders the page charts to files and exports the AI sweep as CSV and
  a JSON Lines snapshot.

REQUIREMENTS:
  Implementation-discovered:
  - Goes through the same view binder as the interactive demo, so the
    exported charts are exactly what the page draws.

ARCHITECTURE INTEGRATION:
  - Calls: internal/view (Init), internal/metrics.Sweep
  - Uses: internal/render, internal/output, internal/dom

ERROR HANDLING:
  - Returns error if config load fails or outputs cannot be created.
  - Chart render failures are logged by the view and do not stop the export.

IMPLEMENTATION RULES:
  - Logic: Load Config -> Override -> Render -> Export.

USAGE:
  headway-lab sweep --variability 35 -o ./out --format png
*/

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/daryltucker/headway-lab/internal/config"
	"github.com/daryltucker/headway-lab/internal/metrics"
	"github.com/daryltucker/headway-lab/internal/model"
	"github.com/daryltucker/headway-lab/internal/output"
	"github.com/daryltucker/headway-lab/internal/render"
	"github.com/daryltucker/headway-lab/internal/view"
	"github.com/spf13/cobra"
)

var (
	sweepControls  controlFlags
	sweepOutputDir string
	sweepFormat    string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Export the AI sweep and render the charts",
	Long: `Evaluates the model at 21 evenly spaced AI factors (0.00 to 1.00), once with
AI pinned to zero as the baseline. Writes:

  <output-dir>/sweep.csv         one row per AI factor
  <output-dir>/snapshot.jsonl    one appended record per run
  <output-dir>/demoChart.svg     baseline vs. AI throughput
  <output-dir>/heroChart.svg     illustrative gain curve`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if sweepOutputDir != "" {
			cfg.OutputDir = sweepOutputDir
		}
		if sweepFormat != "" {
			cfg.ChartFormat = sweepFormat
		}

		controls := sweepControls.resolve(cmd.Flags(), cfg.Defaults)
		if err := validateControls(controls); err != nil {
			return err
		}
		return runSweep(cfg, controls, cmd.OutOrStdout())
	},
}

func runSweep(cfg *config.Config, controls model.Controls, out io.Writer) error {
	format, err := render.ParseFormat(cfg.ChartFormat)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	page := newPage(controls)
	v := view.New(page, view.Options{
		NewChart: render.Factory(cfg.OutputDir, format, cfg.ChartWidth, cfg.ChartHeight),
		Defaults: &cfg.Defaults,
		Ranges:   &cfg.Random,
		Logger:   output.Logger,
	})
	v.Init()

	csvPath := filepath.Join(cfg.OutputDir, cfg.CSVFile)
	csvWriter, err := output.NewCSVWriter(csvPath)
	if err != nil {
		return fmt.Errorf("failed to init CSV writer at %s: %w", csvPath, err)
	}
	defer csvWriter.Close()

	jsonPath := filepath.Join(cfg.OutputDir, cfg.JSONFile)
	jsonWriter, err := output.NewJSONWriter(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to init JSON writer at %s: %w", jsonPath, err)
	}
	defer jsonWriter.Close()

	p := v.Controls().Parameters()
	points := metrics.Sweep(p, metrics.Axis(metrics.SweepPoints))
	for _, pt := range points {
		if err := csvWriter.Write(p, pt); err != nil {
			return fmt.Errorf("failed to write sweep row: %w", err)
		}
	}
	if err := jsonWriter.Write(output.NewSnapshot(p, metrics.Compute(p), points)); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	output.Logger.Info("Sweep exported",
		"csv", csvPath,
		"json", jsonPath,
		"demo_chart", page.Text(view.IDDemoChart),
		"hero_chart", page.Text(view.IDHeroChart),
	)
	return printKPIs(out, page)
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepControls.register(sweepCmd.Flags())
	sweepCmd.Flags().StringVarP(&sweepOutputDir, "output-dir", "o", "", "Output directory for CSV, JSON and charts")
	sweepCmd.Flags().StringVar(&sweepFormat, "format", "", "Chart image format: svg or png")
}
