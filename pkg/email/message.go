// Package email builds outbound messages and delivers them over SMTP.
//
// It is the only package that touches gopkg.in/mail.v2; callers hand in
// raw payload fields and get back either a ready-to-send Message and a
// Transport, or a typed error.
package email

import (
	"encoding/base64"
	"errors"
	"fmt"
	netmail "net/mail"
	"unicode/utf8"

	mail "gopkg.in/mail.v2"
)

// Body encodings recognized in a send request. Any other value leaves
// the text untouched, matching the behavior of the original service.
const (
	EncodingPlain  = "plain"
	EncodingBase64 = "base64"
)

var (
	// ErrBadAddress reports a sender or recipient that is not a valid mailbox.
	ErrBadAddress = errors.New("invalid mailbox address")

	// ErrBadEncoding reports a body that could not be decoded as declared.
	ErrBadEncoding = errors.New("invalid body encoding")
)

// Message is a single outbound email in its canonical form, owned by
// the request that built it.
type Message struct {
	From       string
	Recipients []string
	Subject    string
	Body       string

	msg *mail.Message
}

// NewMessage validates the payload fields and assembles a message.
//
// When encoding is "base64" the text is decoded first; a decode failure
// or a decoded body that is not valid UTF-8 yields ErrBadEncoding. The
// sender and every recipient must parse as RFC 5322 mailboxes;
// recipients are checked in order and the first failure aborts with
// ErrBadAddress, leaving no partially built message behind. An empty
// recipient list is not rejected here: the dialer reports it at send
// time.
func NewMessage(from string, to []string, subject, text, encoding string) (*Message, error) {
	body := text
	if encoding == EncodingBase64 {
		raw, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadEncoding, err)
		}
		if !utf8.Valid(raw) {
			return nil, fmt.Errorf("%w: decoded body is not valid utf-8", ErrBadEncoding)
		}
		body = string(raw)
	}

	sender, err := netmail.ParseAddress(from)
	if err != nil {
		return nil, fmt.Errorf("%w: from %q: %v", ErrBadAddress, from, err)
	}

	recipients := make([]string, 0, len(to))
	for _, addr := range to {
		parsed, err := netmail.ParseAddress(addr)
		if err != nil {
			return nil, fmt.Errorf("%w: to %q: %v", ErrBadAddress, addr, err)
		}
		recipients = append(recipients, parsed.Address)
	}

	m := mail.NewMessage()
	m.SetHeader("From", sender.Address)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	return &Message{
		From:       sender.Address,
		Recipients: recipients,
		Subject:    subject,
		Body:       body,
		msg:        m,
	}, nil
}
