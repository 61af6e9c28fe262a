package contact

import (
	"context"
	"fmt"
	"log/slog"

	"addressbook/result"
)

// Gateway fetches every contact of a source. done is called exactly once,
// either synchronously or from another goroutine, with the unfiltered list
// or a fetch error.
type Gateway interface {
	All(ctx context.Context, done func(result.Result[[]Contact]))
}

// RepositoryGateway runs a Repository off the caller's goroutine and reports
// through the Gateway callback.
type RepositoryGateway struct {
	r      Repository
	logger *slog.Logger
}

type RepositoryGatewayOption func(g *RepositoryGateway)

func WithGatewayLogger(logger *slog.Logger) RepositoryGatewayOption {
	return func(g *RepositoryGateway) {
		g.logger = logger
	}
}

func NewRepositoryGateway(r Repository, opts ...RepositoryGatewayOption) *RepositoryGateway {
	g := &RepositoryGateway{
		r:      r,
		logger: slog.Default(),
	}
	for _, fn := range opts {
		fn(g)
	}
	return g
}

func (g *RepositoryGateway) All(ctx context.Context, done func(result.Result[[]Contact])) {
	go func() {
		done(g.fetch(ctx))
	}()
}

func (g *RepositoryGateway) fetch(ctx context.Context) (res result.Result[[]Contact]) {
	defer func() {
		if rec := recover(); rec != nil {
			g.logger.Error("contact source panicked", "panic", fmt.Sprint(rec))
			res = result.Failure[[]Contact](ErrUnknown)
		}
	}()

	contacts, err := g.r.AllContacts(ctx)
	if err != nil {
		g.logger.Warn("cannot fetch contacts", "error", err)
		return result.Failure[[]Contact](AsFetchError(err))
	}
	if contacts == nil {
		contacts = []Contact{}
	}
	return result.Success(contacts)
}
