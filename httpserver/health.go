package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterHealthRoutes() {
	s.Router.GET("/healthz", s.healthCheck)
}

func (s *Server) healthCheck(c echo.Context) error {
	return writeSuccess(c, http.StatusOK, map[string]string{
		"status":  http.StatusText(http.StatusOK),
		"message": "Service is up and running",
	})
}
