package memory

import (
	"context"
	"slices"
	"sync"

	"addressbook/contact"
)

// ContactRepository keeps contacts in a slice. It implements
// contact.Repository for local runs and tests.
type ContactRepository struct {
	mu       sync.RWMutex
	contacts []contact.Contact
}

func NewContactRepository(contacts ...contact.Contact) *ContactRepository {
	return &ContactRepository{contacts: slices.Clone(contacts)}
}

func (r *ContactRepository) CreateContact(ctx context.Context, c contact.Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.contacts = append(r.contacts, c)
	return nil
}

func (r *ContactRepository) AllContacts(ctx context.Context) ([]contact.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	contacts := slices.Clone(r.contacts)
	if contacts == nil {
		contacts = []contact.Contact{}
	}
	return contacts, nil
}
