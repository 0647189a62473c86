/*
PURPOSE:
  Defines the 'demo' subcommand.
  Runs the page in memory and drives it from stdin, one DOM event per
  command, re-rendering the demo chart after each.

REQUIREMENTS:
  User-specified:
  - Every interaction triggers an immediate, synchronous refresh.
  - Reset and randomize behave exactly like the page buttons.

  Implementation-discovered:
  - Commands map onto the events a browser would fire: `set` is an input
    event on the slider, `reset`/`random` are button clicks.

ARCHITECTURE INTEGRATION:
  - Calls: internal/view (via dom.Page events)
  - Uses: internal/render for the chart files

ERROR HANDLING:
  - Bad commands print a message and the session continues.
  - `set` values outside the slider domain (or not finite) are refused
    before they reach the page.
  - Returns error only if stdin fails.

USAGE:
  printf 'set ai 0.9\nrandom\nquit\n' | headway-lab demo -o ./out
*/

package cli

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/daryltucker/headway-lab/internal/dom"
	"github.com/daryltucker/headway-lab/internal/model"
	"github.com/daryltucker/headway-lab/internal/output"
	"github.com/daryltucker/headway-lab/internal/render"
	"github.com/daryltucker/headway-lab/internal/view"
	"github.com/spf13/cobra"
)

var (
	demoOutputDir string
	demoNoCharts  bool
)

const demoHelp = `commands:
  set <control> <value>   move a slider (headway, dwell, clearance, variability, ai)
  reset                   restore defaults
  random                  randomize all controls
  show                    print the current labels and KPIs
  quit                    leave`

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Drive the interactive page from the terminal",
	Long:  "Runs the throughput page in memory. Reads commands from stdin.\n\n" + demoHelp,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if demoOutputDir != "" {
			cfg.OutputDir = demoOutputDir
		}

		opts := view.Options{
			Defaults: &cfg.Defaults,
			Ranges:   &cfg.Random,
			Logger:   output.Logger,
		}
		if !demoNoCharts {
			format, err := render.ParseFormat(cfg.ChartFormat)
			if err != nil {
				return err
			}
			opts.NewChart = render.Factory(cfg.OutputDir, format, cfg.ChartWidth, cfg.ChartHeight)
		}

		page := newPage(cfg.Defaults)
		view.New(page, opts).Init()
		return runDemo(cmd.InOrStdin(), cmd.OutOrStdout(), page)
	},
}

// newPage builds an in-memory page with every element the view knows about
// and the controls set to c.
func newPage(c model.Controls) *dom.Page {
	page := dom.NewPage(view.PageIDs()...)
	page.Set(view.IDHeadway, view.FormatNumber(c.Headway))
	page.Set(view.IDDwell, view.FormatNumber(c.Dwell))
	page.Set(view.IDClearance, view.FormatNumber(c.Clearance))
	page.Set(view.IDVariability, view.FormatNumber(c.Variability))
	page.Set(view.IDAI, view.FormatNumber(c.AI))
	return page
}

// printKPIs writes the page's labels and KPI texts.
func printKPIs(w io.Writer, page *dom.Page) error {
	_, err := fmt.Fprintf(w, "headway %s  dwell %s  clearance %s  variability %s  ai %s\nthroughput %s  headway %s  stability %s\n",
		page.Text(view.LabelID(view.IDHeadway)),
		page.Text(view.LabelID(view.IDDwell)),
		page.Text(view.LabelID(view.IDClearance)),
		page.Text(view.LabelID(view.IDVariability)),
		page.Text(view.LabelID(view.IDAI)),
		page.Text(view.IDKPIThroughput),
		page.Text(view.IDKPIHeadway),
		page.Text(view.IDKPIStability),
	)
	return err
}

// candidateControls returns the page's controls with control id moved to
// raw, or an error when raw is not a number inside the slider domain.
func candidateControls(page *dom.Page, id, raw string) (model.Controls, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return model.Controls{}, fmt.Errorf("%s: %q is not a number", id, raw)
	}
	read := func(ctl string) float64 {
		if ctl == id {
			return v
		}
		return view.ParseNumber(page.Value(ctl))
	}
	c := model.Controls{
		Headway:     read(view.IDHeadway),
		Dwell:       read(view.IDDwell),
		Clearance:   read(view.IDClearance),
		Variability: read(view.IDVariability),
		AI:          read(view.IDAI),
	}
	return c, validateControls(c)
}

// runDemo reads commands from in until EOF or quit.
func runDemo(in io.Reader, out io.Writer, page *dom.Page) error {
	if err := printKPIs(out, page); err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(out, demoHelp)
			continue
		case "show":
		case "reset":
			page.Dispatch(view.IDResetButton, view.EventClick)
		case "random":
			page.Dispatch(view.IDRandomButton, view.EventClick)
		case "set":
			if len(fields) != 3 || !slices.Contains(view.ControlIDs, fields[1]) {
				fmt.Fprintln(out, "usage: set <headway|dwell|clearance|variability|ai> <value>")
				continue
			}
			if _, err := candidateControls(page, fields[1], fields[2]); err != nil {
				fmt.Fprintf(out, "rejected: %v\n", err)
				continue
			}
			page.Set(fields[1], fields[2])
			page.Dispatch(fields[1], view.EventInput)
		default:
			fmt.Fprintf(out, "unknown command %q (try help)\n", fields[0])
			continue
		}

		if err := printKPIs(out, page); err != nil {
			return err
		}
	}
	return sc.Err()
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringVarP(&demoOutputDir, "output-dir", "o", "", "Directory for the rendered charts")
	demoCmd.Flags().BoolVar(&demoNoCharts, "no-charts", false, "Skip chart rendering")
}
