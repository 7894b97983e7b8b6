package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	var out, file bytes.Buffer
	l := New(&out, &file, false, true)
	l.Debug("hidden")
	l.Info("Successfully moved 2 solutions to out")
	l.Warn("s3/0.pdf does not exist")
	l.Error("Could not send a.pdf")

	exp := "Successfully moved 2 solutions to out\n" +
		"WARNING: s3/0.pdf does not exist\n" +
		"ERROR: Could not send a.pdf\n"
	if out.String() != exp {
		t.Errorf("wrong console output:\n%q\nwant\n%q", out.String(), exp)
	}
	logged := file.String()
	if strings.Contains(logged, "hidden") {
		t.Error("debug entries should not reach the file without verbose")
	}
	for _, s := range []string{"level=info", "level=warning", "level=error", "Could not send a.pdf"} {
		if !strings.Contains(logged, s) {
			t.Errorf("log file is missing %q", s)
		}
	}
}

func TestNew_Verbose(t *testing.T) {
	var out bytes.Buffer
	l := New(&out, nil, true, true)
	if l.Level != logrus.DebugLevel {
		t.Fatalf("wrong level %v", l.Level)
	}
	l.Debug("connecting")
	if out.String() != "connecting\n" {
		t.Errorf("got %q", out.String())
	}
}

func TestFormatter_Color(t *testing.T) {
	f := &Formatter{}
	b, err := f.Format(&logrus.Entry{Level: logrus.WarnLevel, Message: "careful"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(b), " careful\n") || !strings.Contains(string(b), "WARNING:") {
		t.Errorf("wrong format: %q", b)
	}
}
