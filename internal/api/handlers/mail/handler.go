package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/albertoielpo/mailgate/internal/api/dto"
	"github.com/albertoielpo/mailgate/internal/api/respond"
)

const healthMessage = "Rust mail up"

// mailService defines the interface that the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/mail/mock.go -package=mocks
type mailService interface {
	Send(context.Context, dto.SendMailPayload) (string, error)
}

// Handler handles HTTP requests for health checks and mail sending.
type Handler struct {
	service   mailService
	validator *validator.Validate
}

// NewHandler creates a new Handler instance.
func NewHandler(s mailService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Health reports that the service is up. It backs both GET and HEAD on
// the root path and never depends on the SMTP configuration.
func (h *Handler) Health(c *ginext.Context) {
	respond.OK(c.Writer, healthMessage)
}

// Send handles POST /send: it decodes the payload, runs the delivery
// pipeline and maps the outcome onto the JSON envelope. Pipeline
// failures of any kind answer 500 with status "error"; a body that
// cannot be decoded at all answers 400 with status "fail".
func (h *Handler) Send(c *ginext.Context) {
	var req dto.SendMailRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	zlog.Logger.Info().Str("host", c.Request.Host).Msg("send request")

	result, err := h.service.Send(c.Request.Context(), *req.Mail)
	if err != nil {
		zlog.Logger.Error().Err(err).Strs("to", req.Mail.To).Msg("failed to send mail")
		respond.Error(c.Writer, http.StatusInternalServerError, err)
		return
	}

	respond.OK(c.Writer, result)
}
