package mailer

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/smtp"
	"net/textproto"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// DefaultPort is the SMTP-over-TLS submission port.
const DefaultPort = 465

// Sender sends messages over an open mail session.
type Sender interface {
	Send(from string, to []string, msg io.WriterTo) error
	Close() error
}

// Dialer opens an authenticated mail session.
type Dialer interface {
	Dial(host, username, password string) (Sender, error)
}

// SMTPDialer dials an SMTP server over implicit TLS and
// authenticates with AUTH PLAIN.
type SMTPDialer struct {
	Port      int
	TLSConfig *tls.Config
	Timeout   time.Duration
}

// Dial connects to host and logs in.
func (d *SMTPDialer) Dial(host, username, password string) (Sender, error) {
	port := d.Port
	if port == 0 {
		port = DefaultPort
	}
	conf := &tls.Config{ServerName: host}
	if d.TLSConfig != nil {
		conf = d.TLSConfig.Clone()
		if conf.ServerName == "" {
			conf.ServerName = host
		}
	}
	timeout := d.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := tls.DialWithDialer(&net.Dialer{Timeout: timeout}, "tcp", addr, conf)
	if err != nil {
		return nil, err
	}
	c, err := smtp.NewClient(conn, host)
	if err != nil {
		conn.Close()
		return nil, err
	}
	if ok, _ := c.Extension("AUTH"); !ok {
		c.Close()
		return nil, &AuthError{Host: host, Err: fmt.Errorf("%s does not support authentication", host)}
	}
	if err = c.Auth(smtp.PlainAuth("", username, password, host)); err != nil {
		c.Close()
		return nil, &AuthError{Host: host, Err: err}
	}
	return &session{c: c}, nil
}

type session struct {
	c       *smtp.Client
	dropped bool
}

func (s *session) Send(from string, to []string, msg io.WriterTo) error {
	if err := s.c.Mail(from); err != nil {
		return s.reset(err)
	}
	for _, addr := range to {
		if err := s.c.Rcpt(addr); err != nil {
			return s.reset(err)
		}
	}
	w, err := s.c.Data()
	if err != nil {
		return s.reset(err)
	}
	if _, err = msg.WriteTo(w); err != nil {
		// closing w would end DATA and deliver a partial message, and
		// RSET is not allowed mid-DATA, so the connection is dropped.
		s.drop()
		return err
	}
	if err = w.Close(); err != nil {
		return s.reset(err)
	}
	return nil
}

// Close ends the session with QUIT.
func (s *session) Close() error {
	if s.dropped {
		return nil
	}
	return s.c.Quit()
}

func (s *session) drop() {
	s.dropped = true
	s.c.Close()
}

// reset clears the server's transaction state after a refusal so
// the session can be reused for the next message.
func (s *session) reset(err error) error {
	if !IsRefused(err) {
		return err
	}
	if rerr := s.c.Reset(); rerr != nil {
		return rerr
	}
	return err
}

// IsRefused reports whether err is an SMTP reply from the server
// refusing a message, as opposed to a transport failure.
func IsRefused(err error) bool {
	var perr *textproto.Error
	return errors.As(err, &perr)
}
