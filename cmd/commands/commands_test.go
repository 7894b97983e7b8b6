package commands

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrybrwn/hemtal/cmd/internal"
	"github.com/harrybrwn/hemtal/cmd/internal/opts"
	"github.com/harrybrwn/hemtal/pkg/mailer"
	"github.com/pkg/errors"
)

func TestMoveCmd(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	for _, name := range []string{"s1", "s2"} {
		if err := os.Mkdir(filepath.Join(in, name), 0755); err != nil {
			t.Fatal(err)
		}
	}
	if err := ioutil.WriteFile(filepath.Join(in, "s1", "0.pdf"), []byte("pdf"), 0644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	c := newMoveCmd(&opts.Global{NoColor: true}, nil)
	c.SetArgs([]string{in, out})
	c.SetOut(&buf)
	c.SetErr(&buf)
	if err := c.Execute(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(out, "s1.pdf")); err != nil {
		t.Error(err)
	}
	output := buf.String()
	if !strings.Contains(output, "WARNING: "+filepath.Join(in, "s2", "0.pdf")) {
		t.Errorf("expected a warning for the missing solution:\n%s", output)
	}
	if !strings.Contains(output, "Successfully moved 1 solutions to "+out) {
		t.Errorf("expected a summary:\n%s", output)
	}
}

func TestMoveCmd_NotDir(t *testing.T) {
	c := newMoveCmd(&opts.Global{NoColor: true}, nil)
	c.SetArgs([]string{filepath.Join(t.TempDir(), "nope"), t.TempDir()})
	c.SetOut(ioutil.Discard)
	c.SetErr(ioutil.Discard)
	err := c.Execute()
	e, ok := err.(*internal.Error)
	if !ok {
		t.Fatalf("expected an *internal.Error; got %T %v", err, err)
	}
	if e.Code != 1 {
		t.Errorf("wrong exit code %d", e.Code)
	}
}

func TestMoveCmd_Args(t *testing.T) {
	c := newMoveCmd(&opts.Global{}, nil)
	c.SetArgs([]string{t.TempDir()})
	c.SetOut(ioutil.Discard)
	c.SetErr(ioutil.Discard)
	if err := c.Execute(); err == nil {
		t.Error("expected an argument count error")
	}
}

func TestEmailCmd_DryRun(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"hw1-bob@example.com.pdf", "hw1-alice@example.com.pdf"} {
		if err := ioutil.WriteFile(filepath.Join(dir, name), []byte("pdf"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	var buf bytes.Buffer
	c := newEmailCmd(&opts.Global{NoColor: true}, nil)
	c.SetArgs([]string{"--dry-run", dir})
	c.SetOut(&buf)
	c.SetErr(&buf)
	c.SetIn(strings.NewReader(""))
	if err := c.Execute(); err != nil {
		t.Fatal(err)
	}
	output := buf.String()
	alice := strings.Index(output, "hw1-alice@example.com.pdf")
	bob := strings.Index(output, "hw1-bob@example.com.pdf")
	if alice < 0 || bob < 0 || alice > bob {
		t.Errorf("files should be listed in order:\n%s", output)
	}
	if !strings.Contains(output, "2 files total.") {
		t.Errorf("expected a total:\n%s", output)
	}
}

func TestIsFatal(t *testing.T) {
	for _, err := range []error{
		mailer.ErrNotDir,
		errors.WithMessage(mailer.ErrInvalidSender, "\"x\""),
		&mailer.AuthError{Host: "smtp.example.com", Err: errors.New("535")},
	} {
		if !isFatal(err) {
			t.Errorf("%v should be fatal", err)
		}
	}
	if isFatal(nil) || isFatal(errors.New("connection reset")) {
		t.Error("transport errors are not fatal")
	}
}
