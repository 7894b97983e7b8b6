// Package mailer sends graded solution files to the students
// whose addresses are encoded in the file names.
package mailer

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/harrybrwn/hemtal/pkg/prompt"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	gomail "gopkg.in/gomail.v2"
)

// ErrNotDir is returned when the input path is missing or
// is not a directory.
var ErrNotDir = errors.New("INPUT needs to be a directory")

// ContentHint is printed before the message body is read.
const ContentHint = "Enter/Paste your content. Ctrl-D or Ctrl-Z (windows) to save it."

// AuthError is returned by a Dialer when the server rejects the
// login. Connection failures are not AuthErrors.
type AuthError struct {
	Host string
	Err  error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("could not authenticate with %s: %v", e.Host, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// Params are the values collected once per run and shared
// by every message.
type Params struct {
	Subject  string
	Body     string
	From     string
	Password string

	user, domain string
}

// Collect asks the provider for the subject, body, sender and
// password in that order. The sender is validated before the
// password is asked for.
func Collect(p prompt.Provider) (*Params, error) {
	var (
		params Params
		err    error
	)
	if params.Subject, err = p.Line("Subject: "); err != nil {
		return nil, err
	}
	if params.Body, err = p.Text(ContentHint); err != nil {
		return nil, err
	}
	if params.From, err = p.Line("Your email: "); err != nil {
		return nil, err
	}
	params.From = strings.TrimSpace(params.From)
	params.user, params.domain, err = ParseSender(params.From)
	if err != nil {
		return nil, err
	}
	if params.Password, err = p.Secret("Password: "); err != nil {
		return nil, err
	}
	return &params, nil
}

// Delivery is one solution file and the address it goes to.
type Delivery struct {
	File      string
	Path      string
	Recipient string
	Err       error
}

// Plan lists the pdf files directly inside dir in lexicographic
// order along with their recipients. A file whose name has no
// address gets a non-nil Err.
func Plan(dir string) ([]Delivery, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, ErrNotDir
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "could not read input folder")
	}
	var deliveries []Delivery
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)
		if !strings.HasSuffix(name, pdfExt) {
			continue
		}
		if fi, err := os.Stat(path); err != nil || fi.IsDir() {
			continue
		}
		d := Delivery{File: name, Path: path}
		d.Recipient, d.Err = Recipient(name)
		deliveries = append(deliveries, d)
	}
	sort.Slice(deliveries, func(i, j int) bool {
		return deliveries[i].File < deliveries[j].File
	})
	return deliveries, nil
}

// Mailer sends one message per solution file over a single session.
type Mailer struct {
	Dialer Dialer
	// Host overrides the default smtp.<domain> server.
	Host string
	Log  logrus.FieldLogger
}

// Report holds the results of one run.
type Report struct {
	Sent   int
	Failed []string
}

// Run collects the parameters from p, opens one session and sends
// every pdf in dir to the address in its name. Messages refused by
// the server are logged and skipped. The session is always closed
// before Run returns.
func (m *Mailer) Run(dir string, p prompt.Provider) (report *Report, err error) {
	log := m.logger()
	deliveries, err := Plan(dir)
	if err != nil {
		return nil, err
	}
	params, err := Collect(p)
	if err != nil {
		return nil, err
	}

	host := m.host(params.domain)
	log.Debugf("connecting to %s as %s", host, params.user)
	s, err := m.Dialer.Dial(host, params.user, params.Password)
	if err != nil {
		var autherr *AuthError
		if errors.As(err, &autherr) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "could not connect to %s", host)
	}
	defer func() {
		if e := s.Close(); e != nil && err == nil {
			err = errors.Wrap(e, "could not close mail session")
		}
	}()

	report = &Report{}
	for i, d := range deliveries {
		if d.Err != nil {
			log.Warnf("Could not send %s: %v", d.File, d.Err)
			report.Failed = append(report.Failed, d.File)
			continue
		}
		msg, rerr := newMessage(params, &d)
		if rerr != nil {
			log.Warnf("Could not send %s: %v", d.File, rerr)
			report.Failed = append(report.Failed, d.File)
			continue
		}
		err = s.Send(params.From, []string{d.Recipient}, msg)
		if IsRefused(err) {
			log.Warnf("Could not send %s: %v", d.File, err)
			report.Failed = append(report.Failed, d.File)
			continue
		} else if err != nil {
			return report, errors.Wrapf(err, "could not send %s", d.File)
		}
		log.Infof("%d: Sent %s", i, d.File)
		report.Sent++
	}
	log.Infof("Successfully sent %d emails.", report.Sent)
	return report, nil
}

func (m *Mailer) host(domain string) string {
	if m.Host != "" {
		return m.Host
	}
	return "smtp." + domain
}

func (m *Mailer) logger() logrus.FieldLogger {
	if m.Log == nil {
		return logrus.StandardLogger()
	}
	return m.Log
}

// newMessage reads the attachment up front so an unreadable file
// never reaches the server as a message without its attachment.
func newMessage(p *Params, d *Delivery) (*gomail.Message, error) {
	data, err := ioutil.ReadFile(d.Path)
	if err != nil {
		return nil, err
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", p.From)
	msg.SetHeader("To", d.Recipient)
	msg.SetHeader("Subject", p.Subject)
	msg.SetBody("text/plain", p.Body)
	msg.Attach(d.Path,
		gomail.Rename(d.File),
		gomail.SetHeader(map[string][]string{
			"Content-Type": {fmt.Sprintf("application/pdf; name=%q", d.File)},
		}),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}),
	)
	return msg, nil
}
