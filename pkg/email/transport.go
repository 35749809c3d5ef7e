package email

import (
	"errors"
	"fmt"
	"strings"

	mail "gopkg.in/mail.v2"
)

var (
	// ErrInvalidHost reports a host that cannot serve as a TLS relay target.
	ErrInvalidHost = errors.New("invalid relay host")

	// ErrDelivery reports a failed send attempt. The wrapped text carries
	// the SMTP server's reason when one was given.
	ErrDelivery = errors.New("delivery failed")
)

// Transport is a configured delivery channel for a single message.
// Construction performs no network I/O; the connection is opened lazily
// by Send and never reused.
type Transport struct {
	dialer *mail.Dialer
}

// NewTransport builds a delivery channel from SMTP settings.
//
// With useTLS the dialer runs in relay mode: mandatory STARTTLS, or
// implicit TLS when the port is 465, and the host must look like a
// resolvable relay target (ErrInvalidHost otherwise). Without useTLS
// the connection stays unencrypted and construction cannot fail.
// Credentials are attached only when both username and password are
// non-empty.
func NewTransport(host string, port int, username, password string, useTLS bool) (*Transport, error) {
	d := &mail.Dialer{Host: host, Port: port}

	if username != "" && password != "" {
		d.Username = username
		d.Password = password
	}

	if useTLS {
		if err := validateRelayHost(host); err != nil {
			return nil, err
		}
		if port == 465 {
			d.SSL = true
		} else {
			d.StartTLSPolicy = mail.MandatoryStartTLS
		}
	} else {
		d.StartTLSPolicy = mail.NoStartTLS
	}

	return &Transport{dialer: d}, nil
}

// Send performs one synchronous delivery attempt, dialing, sending and
// closing in a single shot. There is no retry.
func (t *Transport) Send(m *Message) error {
	if err := t.dialer.DialAndSend(m.msg); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	return nil
}

func validateRelayHost(host string) error {
	if strings.TrimSpace(host) == "" || strings.ContainsAny(host, " /@") {
		return fmt.Errorf("%w: %q", ErrInvalidHost, host)
	}

	return nil
}
