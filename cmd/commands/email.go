package commands

import (
	"fmt"
	"io"

	"github.com/harrybrwn/hemtal/cmd/internal"
	"github.com/harrybrwn/hemtal/cmd/internal/opts"
	"github.com/harrybrwn/hemtal/pkg/mailer"
	"github.com/harrybrwn/hemtal/pkg/prompt"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newEmailCmd(globals *opts.Global, logfile io.Writer) *cobra.Command {
	var dryRun bool
	c := &cobra.Command{
		Use:   "email INPUT",
		Short: "Send email to students",
		Long: `Send every pdf in INPUT to the address in its name.
A file named 'hw1-alice@example.com.pdf' is sent to alice@example.com.
The subject, message, sender address and password are read from
standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dryRun {
				return printPlan(cmd, globals, args[0])
			}
			log := newLogger(cmd, globals, logfile)
			m := &mailer.Mailer{
				Dialer: &mailer.SMTPDialer{Port: Conf.SMTP.Port},
				Host:   Conf.SMTP.Host,
				Log:    log,
			}
			report, err := m.Run(args[0], prompt.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout()))
			if isFatal(err) {
				return internal.Fatal(err)
			}
			if err != nil {
				return err
			}
			notify(globals, log, "Emails sent",
				fmt.Sprintf("sent %d emails, %d failed", report.Sent, len(report.Failed)))
			return nil
		},
	}
	c.Flags().BoolVar(&dryRun, "dry-run", false, "list the recipients without sending anything")
	return c
}

func isFatal(err error) bool {
	var autherr *mailer.AuthError
	return err == mailer.ErrNotDir ||
		errors.Is(err, mailer.ErrInvalidSender) ||
		errors.As(err, &autherr)
}

func printPlan(cmd *cobra.Command, globals *opts.Global, dir string) error {
	deliveries, err := mailer.Plan(dir)
	if err != nil {
		return internal.Fatal(err)
	}
	tab := internal.NewTable(cmd.OutOrStdout())
	internal.SetTableHeader(tab, []string{"file", "recipient"}, !globals.NoColor)
	tab.SetAutoWrapText(false)
	for _, d := range deliveries {
		to := d.Recipient
		if d.Err != nil {
			to = fmt.Sprintf("(%v)", d.Err)
		}
		tab.Append([]string{d.File, to})
	}
	tab.Render()
	cmd.Println(len(deliveries), "files total.")
	return nil
}
