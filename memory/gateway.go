// Package memory provides contact gateways backed by in-process data. They
// answer synchronously and are the default wiring when no source is
// configured.
package memory

import (
	"context"
	"slices"

	"addressbook/contact"
	"addressbook/result"
)

// ArrayGateway answers every request with a copy of a fixed list.
type ArrayGateway struct {
	contacts []contact.Contact
}

// DefaultContacts is the single record served by NewArrayGateway.
func DefaultContacts() []contact.Contact {
	return []contact.Contact{
		{Street: "Rua da Vala, 666", City: "São Paulo", State: "SP", Country: contact.Country("BR")},
	}
}

func NewArrayGateway() *ArrayGateway {
	return NewGateway(DefaultContacts())
}

func NewGateway(contacts []contact.Contact) *ArrayGateway {
	return &ArrayGateway{contacts: slices.Clone(contacts)}
}

func (g *ArrayGateway) All(_ context.Context, done func(result.Result[[]contact.Contact])) {
	contacts := slices.Clone(g.contacts)
	if contacts == nil {
		contacts = []contact.Contact{}
	}
	done(result.Success(contacts))
}

// FailingGateway answers every request with the same fetch error.
type FailingGateway struct {
	err error
}

// NewFailingGateway folds err into the fetch errors. A nil err fails with
// contact.ErrUnknown.
func NewFailingGateway(err error) *FailingGateway {
	err = contact.AsFetchError(err)
	if err == nil {
		err = contact.ErrUnknown
	}
	return &FailingGateway{err: err}
}

func (g *FailingGateway) All(_ context.Context, done func(result.Result[[]contact.Contact])) {
	done(result.Failure[[]contact.Contact](g.err))
}
