package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"addressbook/contact"
	"addressbook/errs"
	"addressbook/memory"
	"addressbook/pkg/config"
	"addressbook/pkg/sentry"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	Config *config.Config
	Logger *slog.Logger

	// ContactGateway is the contact source every request reads from.
	ContactGateway contact.Gateway

	// RequestTimeout bounds how long a request waits for the gateway.
	RequestTimeout time.Duration
}

func New(options ...Options) (*Server, error) {
	s := Server{
		Router:         echo.New(),
		Addr:           ":8080",
		AllowOrigins:   []string{"*"},
		Config:         config.Empty,
		Logger:         slog.Default(),
		ContactGateway: memory.NewArrayGateway(),
		RequestTimeout: 10 * time.Second,
	}

	for _, fn := range options {
		if err := fn(&s); err != nil {
			return nil, err
		}
	}

	s.Router.HideBanner = true
	s.Router.HTTPErrorHandler = s.customHTTPErrorHandler
	s.RegisterGlobalMiddlewares()
	s.RegisterHealthRoutes()
	s.RegisterContactRoutes(s.Router.Group("/api/contacts"))

	return &s, nil
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	s.Router.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(20)))

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
		}))
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

// customHTTPErrorHandler maps application errors to appropriate HTTP status codes
func (s *Server) customHTTPErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := "Internal server error"

	// Check if it's an Echo HTTPError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	} else {
		// Map application error codes to HTTP status codes
		switch errs.ErrorCode(err) {
		case errs.EINVALID:
			code = http.StatusBadRequest
			message = errs.ErrorMessage(err)
		case errs.ENOTFOUND:
			code = http.StatusNotFound
			message = errs.ErrorMessage(err)
		case errs.ECONFLICT:
			code = http.StatusConflict
			message = errs.ErrorMessage(err)
		case errs.EUNAUTHORIZED:
			code = http.StatusUnauthorized
			message = errs.ErrorMessage(err)
		case errs.ENOTIMPLEMENTED:
			code = http.StatusNotImplemented
			message = errs.ErrorMessage(err)
		case errs.ENOTACCESSIBLE:
			code = http.StatusServiceUnavailable
			message = errs.ErrorMessage(err)
		case errs.EUNKNOWN:
			code = http.StatusBadGateway
			message = errs.ErrorMessage(err)
		case errs.EINTERNAL:
			code = http.StatusInternalServerError
			message = "Internal server error"
		}
	}

	if code >= http.StatusInternalServerError {
		s.Logger.Error(err.Error(), "request_id", requestID(c), "status", code)
		sentry.WithContext(c).Error(err)
	}

	// Don't write response if already committed
	if !c.Response().Committed {
		if err := writeError(c, code, message, "", err); err != nil {
			s.Logger.Error("cannot write error response", "error", err)
		}
	}
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

func splitOrigins(origins string) []string {
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
