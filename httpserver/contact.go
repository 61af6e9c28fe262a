package httpserver

import (
	"context"
	"net/http"
	"runtime"

	"addressbook/contact"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterContactRoutes(g *echo.Group) {
	g.GET("", s.handleListContacts)
}

// requestBinder is the UI side of the pipeline for a single request. It
// receives either the bound view models or the failure reported by the
// presenter, whichever comes first.
type requestBinder struct {
	bound  chan []contact.ViewModel
	failed chan error
}

func newRequestBinder() *requestBinder {
	return &requestBinder{
		bound:  make(chan []contact.ViewModel, 1),
		failed: make(chan error, 1),
	}
}

func (b *requestBinder) Bind(viewModels []contact.ViewModel) {
	select {
	case b.bound <- viewModels:
	default:
	}
}

func (b *requestBinder) Report(err error) {
	select {
	case b.failed <- err:
	default:
	}
}

func (s *Server) handleListContacts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), s.RequestTimeout)
	defer cancel()

	b := newRequestBinder()
	component := contact.NewComponent(s.ContactGateway,
		contact.WithLogger(s.Logger.With("request_id", requestID(c))),
		contact.WithFailureReporter(b),
	)
	contact.AttachBinder(component.Presenter(), b)
	interactor := component.Interactor()
	interactor.All(ctx)

	var (
		viewModels []contact.ViewModel
		err        error
	)
	select {
	case viewModels = <-b.bound:
	case err = <-b.failed:
	case <-ctx.Done():
		err = echo.NewHTTPError(http.StatusGatewayTimeout, "contacts request timed out")
	}
	runtime.KeepAlive(interactor)
	runtime.KeepAlive(b)

	if err != nil {
		return err
	}
	return writeList(c, http.StatusOK, viewModels)
}
