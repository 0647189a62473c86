package cli

import (
	"github.com/daryltucker/headway-lab/internal/model"
	"github.com/spf13/pflag"
)

// controlFlags are the five parameter overrides shared by compute and sweep.
// Values are in widget units: variability is a percentage.
type controlFlags struct {
	values model.Controls
}

func (c *controlFlags) register(fs *pflag.FlagSet) {
	d := model.DefaultControls()
	fs.Float64Var(&c.values.Headway, "headway", d.Headway, "Minimum technical headway in seconds")
	fs.Float64Var(&c.values.Dwell, "dwell", d.Dwell, "Station dwell time in seconds")
	fs.Float64Var(&c.values.Clearance, "clearance", d.Clearance, "Safety clearance time in seconds")
	fs.Float64Var(&c.values.Variability, "variability", d.Variability, "Operational variability in percent (0-100)")
	fs.Float64Var(&c.values.AI, "ai", d.AI, "AI precision factor (0-1)")
}

// resolve starts from base (usually the config defaults) and applies only
// the flags the user set.
func (c *controlFlags) resolve(fs *pflag.FlagSet, base model.Controls) model.Controls {
	out := base
	if fs.Changed("headway") {
		out.Headway = c.values.Headway
	}
	if fs.Changed("dwell") {
		out.Dwell = c.values.Dwell
	}
	if fs.Changed("clearance") {
		out.Clearance = c.values.Clearance
	}
	if fs.Changed("variability") {
		out.Variability = c.values.Variability
	}
	if fs.Changed("ai") {
		out.AI = c.values.AI
	}
	return out
}
