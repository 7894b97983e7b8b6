package opts

import "github.com/spf13/pflag"

// Global holds the flags shared by every command.
type Global struct {
	Verbose bool
	NoColor bool
	Notify  bool
}

// AddToFlagSet registers the global flags.
func (g *Global) AddToFlagSet(set *pflag.FlagSet) {
	set.BoolVarP(&g.Verbose, "verbose", "v", false, "run in verbose mode")
	set.BoolVar(&g.NoColor, "nocolor", false, "turn off colors")
	set.BoolVar(&g.Notify, "notify", false, "send a desktop notification when a batch is done")
}
