package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/albertoielpo/mailgate/internal/api/handlers/mail"
	"github.com/albertoielpo/mailgate/internal/middlewares"
)

// New builds the HTTP routing table. Trailing slashes are normalized
// away by the engine's redirect handling.
func New(handler *mail.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.RequestID())
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.GET("/", handler.Health)
	e.HEAD("/", handler.Health)
	e.POST("/send", handler.Send)

	return e
}
