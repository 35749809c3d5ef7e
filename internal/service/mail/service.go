// Package mail runs the request-to-delivery pipeline: build the
// message, construct a transport from the process SMTP settings and
// perform a single send attempt.
package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/wb-go/wbf/zlog"

	"github.com/albertoielpo/mailgate/internal/api/dto"
	"github.com/albertoielpo/mailgate/internal/config"
	"github.com/albertoielpo/mailgate/pkg/email"
)

// transport is the delivery channel for a single send attempt.
type transport interface {
	Send(*email.Message) error
}

// transportFactory builds a fresh transport per request; nothing is
// pooled or reused between sends.
type transportFactory func(cfg config.SMTP) (transport, error)

// Service orchestrates message building, transport selection and
// dispatch. The SMTP configuration is fixed at construction and shared
// read-only across concurrent requests.
type Service struct {
	cfg     config.SMTP
	factory transportFactory
}

// New creates a Service bound to the given SMTP configuration.
func New(cfg config.SMTP) *Service {
	return &Service{
		cfg: cfg,
		factory: func(cfg config.SMTP) (transport, error) {
			return email.NewTransport(cfg.Host, int(cfg.Port), cfg.Username, cfg.Password, cfg.UseTLS)
		},
	}
}

// Send validates and delivers one mail, returning the success message
// for the response. Any failure aborts the request; nothing is sent
// and nothing is retried.
func (s *Service) Send(ctx context.Context, payload dto.SendMailPayload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	msg, err := email.NewMessage(payload.From, payload.To, payload.Subject, payload.Text, payload.Encoding)
	if err != nil {
		return "", fmt.Errorf("build message: %w", err)
	}

	zlog.Logger.Debug().Str("body", msg.Body).Msg("resolved mail body")

	t, err := s.factory(s.cfg)
	if err != nil {
		return "", fmt.Errorf("build transport: %w", err)
	}

	if err := t.Send(msg); err != nil {
		return "", fmt.Errorf("send mail: %w", err)
	}

	result := fmt.Sprintf("Mail sent to %s", strings.Join(payload.To, ", "))
	zlog.Logger.Info().Msg(result)

	return result, nil
}
