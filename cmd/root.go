package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gen2brain/beeep"
	"github.com/harrybrwn/config"
	"github.com/harrybrwn/errs"
	"github.com/harrybrwn/hemtal/cmd/commands"
	"github.com/harrybrwn/hemtal/cmd/internal"
	"github.com/harrybrwn/hemtal/cmd/internal/opts"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

var version string

// Logger is the log file for the cmd package
var Logger = &lumberjack.Logger{
	Filename:   filepath.Join(os.TempDir(), "hemtal.log"),
	MaxSize:    25,  // megabytes
	MaxBackups: 10,  // number of spare files
	MaxAge:     365, // days
	Compress:   false,
}

// Stop will print to stderr and exit with the code carried by
// message, or 2 for unexpected errors.
func Stop(message interface{}) {
	log.Printf("%v\n", message)
	fmt.Fprintf(os.Stderr, "Error: %v\n", message)
	switch msg := message.(type) {
	case *internal.Error:
		os.Exit(msg.Code)
	default:
		os.Exit(2)
	}
}

// Execute will execute the root comand on the cli
func Execute() (err error) {
	log.SetOutput(Logger)
	defer Logger.Close()

	config.SetFilename("config.yml")
	config.SetType("yaml")
	config.AddPath("$HEMTAL_CONFIG")
	config.AddDefaultDirs("hemtal")
	config.SetConfig(commands.Conf)

	err = config.ReadConfigFile()
	switch err {
	case nil:
		break
	case config.ErrNoConfigDir, config.ErrNoConfigFile:
		log.Println(err)
	default:
		return err
	}

	if commands.Conf.LogFile != "" {
		Logger.Filename = os.ExpandEnv(commands.Conf.LogFile)
	} else if configfile := config.FileUsed(); configfile != "" {
		Logger.Filename = filepath.Join(filepath.Dir(configfile), "logs", "hemtal.log")
	}

	beeep.DefaultDuration = 800
	root := &cobra.Command{
		Use:           "hemtal <command>",
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       version,
		Short:         "Move solutions or send email to students.",
		Long: `Move student solutions from separate folders into one folder,
then email the graded solutions back to the students.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	globalFlags := opts.Global{}
	globalFlags.AddToFlagSet(root.PersistentFlags())

	root.SetUsageTemplate(commandTemplate)
	root.AddCommand(append(
		commands.All(&globalFlags, Logger),
		completionCmd,
	)...)
	err = root.Execute()
	if err != nil {
		log.Println(err)
		return err
	}
	return nil
}

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Print a completion script to stdout.",
	Long: `Use the completion command to generate a script for shell
completion. Note: for zsh you will need to use the command
'compdef _hemtal hemtal' after you source the generated script.`,
	Example:   "$ source <(hemtal completion zsh)",
	ValidArgs: []string{"zsh", "bash", "ps", "powershell", "fish"},
	Aliases:   []string{"comp"},
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		root := cmd.Root()
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			return errors.New("no shell type given")
		}
		switch args[0] {
		case "zsh":
			return root.GenZshCompletion(out)
		case "ps", "powershell":
			return root.GenPowerShellCompletion(out)
		case "bash":
			return root.GenBashCompletion(out)
		case "fish":
			return root.GenFishCompletion(out, false)
		}
		return errs.New("unknown shell type")
	},
}

var commandTemplate = `Usage:
{{if .Runnable}}
	{{.UseLine}}{{end}}{{if gt (len .Aliases) 0}}

Aliases:
	{{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
	{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
	{{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:

{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:

{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:
{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
	{{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
