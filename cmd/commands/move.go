package commands

import (
	"fmt"
	"io"

	"github.com/harrybrwn/hemtal/cmd/internal"
	"github.com/harrybrwn/hemtal/cmd/internal/opts"
	"github.com/harrybrwn/hemtal/pkg/mover"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newMoveCmd(globals *opts.Global, logfile io.Writer) *cobra.Command {
	var overwrite bool
	c := &cobra.Command{
		Use:   "move INPUT OUTPUT",
		Short: "Move solutions from separate folders to one single folder",
		Long: `Copy the solution file from every folder in INPUT to OUTPUT.
The copy of INPUT/<name>/` + mover.DefaultSolutionFile + ` is named OUTPUT/<name>.pdf.
The solution file name can be changed with 'solution_file' in the
config file.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd, globals, logfile)
			m := &mover.Mover{
				Input:        args[0],
				Output:       args[1],
				Overwrite:    overwrite,
				SolutionFile: Conf.SolutionFile,
				Replacements: Conf.Replacements,
				Log:          log,
			}
			report, err := m.Run()
			if errors.Cause(err) == mover.ErrNotDir {
				return internal.Fatal(err)
			}
			if err != nil {
				return err
			}
			notify(globals, log, "Solutions moved",
				fmt.Sprintf("moved %d solutions, %d missing", report.Moved, report.Missing))
			return nil
		},
	}
	c.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite solution if it already exists")
	return c
}
