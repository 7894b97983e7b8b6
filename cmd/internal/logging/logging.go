// Package logging builds the console logger shared by every command.
package logging

import (
	"bytes"
	"io"

	"github.com/harrybrwn/hemtal/pkg/term"
	"github.com/sirupsen/logrus"
)

// New creates a logger that writes plain messages to out. If file
// is not nil every entry is also written there with a timestamp.
func New(out, file io.Writer, verbose, nocolor bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&Formatter{NoColor: nocolor})
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	if file != nil {
		l.AddHook(&FileHook{
			W: file,
			Formatter: &logrus.TextFormatter{
				DisableColors: true,
				FullTimestamp: true,
			},
		})
	}
	return l
}

// Formatter writes the message only. Warnings and errors get a
// level prefix.
type Formatter struct {
	NoColor bool
}

// Format implements logrus.Formatter
func (f *Formatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	switch e.Level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		b.WriteString(f.paint(term.BoldRed, "ERROR:"))
		b.WriteByte(' ')
	case logrus.WarnLevel:
		b.WriteString(f.paint(term.Yellow, "WARNING:"))
		b.WriteByte(' ')
	}
	if e.Level >= logrus.DebugLevel {
		b.WriteString(f.paint(term.Dim, e.Message))
	} else {
		b.WriteString(e.Message)
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func (f *Formatter) paint(color func(string) string, s string) string {
	if f.NoColor {
		return s
	}
	return color(s)
}

// FileHook copies log entries to a writer, usually a log file.
type FileHook struct {
	W         io.Writer
	Formatter logrus.Formatter
}

// Levels implements logrus.Hook
func (h *FileHook) Levels() []logrus.Level { return logrus.AllLevels }

// Fire implements logrus.Hook
func (h *FileHook) Fire(e *logrus.Entry) error {
	b, err := h.Formatter.Format(e)
	if err != nil {
		return err
	}
	_, err = h.W.Write(b)
	return err
}
