// Package config resolves all process configuration from environment
// variables. It is read once at startup; the resulting values are
// immutable and shared read-only across request handlers.
package config

import (
	"net"
	"runtime"
	"strconv"

	"github.com/spf13/viper"
)

const (
	defaultBindAddr = "0.0.0.0"
	defaultBindPort = 3333
	defaultSMTPHost = "localhost"
	defaultSMTPPort = 25
)

// Config holds the main configuration for the application.
type Config struct {
	Server Server
	SMTP   SMTP
}

// Server holds HTTP server bind configuration.
type Server struct {
	Addr    string // bind address
	Port    uint16 // listening port
	Workers int    // cap on concurrently served connections
}

// SMTP holds the outbound SMTP connection configuration.
//
// Username and Password are either both set or both empty; a transport
// authenticates only when credentials are complete.
type SMTP struct {
	Host     string
	Port     uint16
	Username string
	Password string
	UseTLS   bool
}

// Address returns the bind address in host:port form.
func (s Server) Address() string {
	return net.JoinHostPort(s.Addr, strconv.Itoa(int(s.Port)))
}

// New resolves the full configuration from the environment.
//
// Environment variables: BIND_ADDR, BIND_PORT, BIND_WORKERS, SMTP_HOST,
// SMTP_PORT, SMTP_USERNAME, SMTP_PASSWORD, SMTP_USE_TLS. Malformed
// numeric values silently fall back to their defaults.
func New() *Config {
	v := viper.New()
	v.AutomaticEnv()

	return &Config{
		Server: buildServerBind(v),
		SMTP:   buildSMTPConfig(v),
	}
}

func buildServerBind(v *viper.Viper) Server {
	addr := v.GetString("BIND_ADDR")
	if addr == "" {
		addr = defaultBindAddr
	}

	return Server{
		Addr:    addr,
		Port:    parsePort(v.GetString("BIND_PORT"), defaultBindPort),
		Workers: parseCount(v.GetString("BIND_WORKERS"), runtime.NumCPU()),
	}
}

func buildSMTPConfig(v *viper.Viper) SMTP {
	host := v.GetString("SMTP_HOST")
	if host == "" {
		host = defaultSMTPHost
	}

	port := parsePort(v.GetString("SMTP_PORT"), defaultSMTPPort)

	// TLS is assumed for every port except plain SMTP on 25. An explicit
	// SMTP_USE_TLS that parses as a bool always wins.
	useTLS := port != 25
	if raw := v.GetString("SMTP_USE_TLS"); raw != "" {
		if b, err := strconv.ParseBool(raw); err == nil {
			useTLS = b
		}
	}

	username := v.GetString("SMTP_USERNAME")
	password := v.GetString("SMTP_PASSWORD")
	if username == "" || password == "" {
		username, password = "", ""
	}

	return SMTP{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
		UseTLS:   useTLS,
	}
}

func parsePort(raw string, fallback uint16) uint16 {
	if raw == "" {
		return fallback
	}

	port, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return fallback
	}

	return uint16(port)
}

func parseCount(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}

	return n
}
