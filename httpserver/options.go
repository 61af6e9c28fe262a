package httpserver

import (
	"fmt"
	"log/slog"
	"time"

	"addressbook/contact"
	"addressbook/errs"
	"addressbook/pkg/config"
)

type Options func(s *Server) error

// WithConfig applies the listen port and CORS origins from cfg.
func WithConfig(cfg *config.Config) Options {
	return func(s *Server) error {
		s.Config = cfg
		if cfg.Port != 0 {
			s.Addr = fmt.Sprintf(":%d", cfg.Port)
		}
		if cfg.AllowOrigins != "" {
			s.AllowOrigins = splitOrigins(cfg.AllowOrigins)
		}
		return nil
	}
}

func WithLogger(logger *slog.Logger) Options {
	return func(s *Server) error {
		s.Logger = logger
		return nil
	}
}

func WithContactGateway(g contact.Gateway) Options {
	return func(s *Server) error {
		if g == nil {
			return errs.Errorf(errs.EINVALID, "httpserver: contact gateway is required")
		}
		s.ContactGateway = g
		return nil
	}
}

func WithRequestTimeout(d time.Duration) Options {
	return func(s *Server) error {
		if d <= 0 {
			return errs.Errorf(errs.EINVALID, "httpserver: request timeout must be positive")
		}
		s.RequestTimeout = d
		return nil
	}
}
