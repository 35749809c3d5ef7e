package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/zlog"
	"golang.org/x/net/netutil"

	"github.com/albertoielpo/mailgate/internal/api/handlers/mail"
	"github.com/albertoielpo/mailgate/internal/api/router"
	"github.com/albertoielpo/mailgate/internal/api/server"
	"github.com/albertoielpo/mailgate/internal/config"
	mailsvc "github.com/albertoielpo/mailgate/internal/service/mail"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	setLogLevel()

	cfg := config.New()
	val := validator.New()

	zlog.Logger.Debug().
		Str("addr", cfg.Server.Addr).
		Uint16("port", cfg.Server.Port).
		Int("workers", cfg.Server.Workers).
		Msg("server bind")
	zlog.Logger.Debug().
		Str("host", cfg.SMTP.Host).
		Uint16("port", cfg.SMTP.Port).
		Bool("use_tls", cfg.SMTP.UseTLS).
		Msg("smtp config")

	service := mailsvc.New(cfg.SMTP)
	handler := mail.NewHandler(service, val)

	r := router.New(handler)
	s := server.New(cfg.Server.Address(), r)

	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to listen")
	}

	// Cap concurrently served connections at the configured worker count.
	ln = netutil.LimitListener(ln, cfg.Server.Workers)

	go func() {
		if err := s.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	zlog.Logger.Info().Str("addr", s.Addr).Msg("HTTP mode enabled")

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}
}

// setLogLevel applies LOG_LEVEL to the global logger, defaulting to
// debug like the original service.
func setLogLevel() {
	lvl := zerolog.DebugLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if parsed, err := zerolog.ParseLevel(raw); err == nil {
			lvl = parsed
		}
	}

	zerolog.SetGlobalLevel(lvl)
}
