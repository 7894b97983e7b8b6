package commands

import (
	"io"
	"os"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/harrybrwn/config"
	"github.com/harrybrwn/errs"
	"github.com/harrybrwn/hemtal/cmd/internal/logging"
	"github.com/harrybrwn/hemtal/cmd/internal/opts"
	"github.com/harrybrwn/hemtal/pkg/files"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Config is the layout of the config file.
type Config struct {
	Editor       string              `yaml:"editor" env:"EDITOR" default:"vim"`
	SolutionFile string              `yaml:"solution_file" default:"0.pdf"`
	Replacements []files.Replacement `yaml:"replacements"`
	SMTP         SMTPConfig          `yaml:"smtp"`
	LogFile      string              `yaml:"logfile"`
}

// SMTPConfig overrides the mail server derived from the
// sender's address.
type SMTPConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Conf is the global config filled in from the config file.
var Conf = &Config{}

// All returns all the commands.
func All(globals *opts.Global, logfile io.Writer) []*cobra.Command {
	return []*cobra.Command{
		newMoveCmd(globals, logfile),
		newEmailCmd(globals, logfile),
		newConfigCmd(),
	}
}

func newLogger(cmd *cobra.Command, globals *opts.Global, logfile io.Writer) *logrus.Logger {
	return logging.New(cmd.ErrOrStderr(), logfile, globals.Verbose, globals.NoColor)
}

func notify(globals *opts.Global, log logrus.FieldLogger, title, msg string) {
	if !globals.Notify {
		return
	}
	if err := beeep.Notify(title, msg, ""); err != nil {
		log.Debugf("could not send notification: %v", err)
	}
}

func newConfigCmd() *cobra.Command {
	var file, edit bool
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"conf"},
		RunE: func(cmd *cobra.Command, args []string) error {
			f := config.FileUsed()
			if file {
				cmd.Println(f)
				return nil
			}
			if edit {
				if f == "" {
					return errs.New("no config file found")
				}
				editor := config.GetString("editor")
				if editor == "" {
					editor = os.Getenv("EDITOR")
				}
				if editor == "" {
					editor = "vim"
				}
				ex := exec.Command(editor, f)
				ex.Stdout, ex.Stderr, ex.Stdin = os.Stdout, os.Stderr, os.Stdin
				return ex.Run()
			}
			return cmd.Usage()
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use: "get", Short: "Get a config variable",
		Run: func(c *cobra.Command, args []string) {
			for _, arg := range args {
				c.Println(config.Get(arg))
			}
		}})
	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "edit the config file")
	cmd.Flags().BoolVarP(&file, "file", "f", false, "print the config file path")
	return cmd
}
