package contact_test

import (
	"context"
	"sync"

	"addressbook/contact"
	"addressbook/result"

	"github.com/stretchr/testify/mock"
)

type MockPresenter struct {
	mock.Mock
}

func (m *MockPresenter) Found(contacts []contact.Contact) {
	m.Called(contacts)
}

func (m *MockPresenter) Failed(err error) {
	m.Called(err)
}

type MockBinder struct {
	mock.Mock
}

func (m *MockBinder) Bind(viewModels []contact.ViewModel) {
	m.Called(viewModels)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) All(ctx context.Context, done func(result.Result[[]contact.Contact])) {
	args := m.Called(ctx)
	done(args.Get(0).(result.Result[[]contact.Contact]))
}

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) CreateContact(ctx context.Context, c contact.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepository) AllContacts(ctx context.Context) ([]contact.Contact, error) {
	args := m.Called(ctx)
	contacts, _ := args.Get(0).([]contact.Contact)
	return contacts, args.Error(1)
}

// deferredGateway holds callbacks until resolve is called, like a source
// answering from another goroutine.
type deferredGateway struct {
	mu      sync.Mutex
	pending []func(result.Result[[]contact.Contact])
}

func (g *deferredGateway) All(_ context.Context, done func(result.Result[[]contact.Contact])) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = append(g.pending, done)
}

func (g *deferredGateway) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.pending)
}

func (g *deferredGateway) resolve(r result.Result[[]contact.Contact]) {
	g.mu.Lock()
	pending := g.pending
	g.pending = nil
	g.mu.Unlock()

	for _, done := range pending {
		done(r)
	}
}

// countingBinder records binds into storage that outlives the binder itself.
type countingBinder struct {
	mu    *sync.Mutex
	binds *[][]contact.ViewModel
}

func newCountingBinder() (*countingBinder, func() [][]contact.ViewModel) {
	b := &countingBinder{
		mu:    new(sync.Mutex),
		binds: new([][]contact.ViewModel),
	}
	mu, binds := b.mu, b.binds
	return b, func() [][]contact.ViewModel {
		mu.Lock()
		defer mu.Unlock()
		return append([][]contact.ViewModel(nil), *binds...)
	}
}

func (b *countingBinder) Bind(viewModels []contact.ViewModel) {
	b.mu.Lock()
	defer b.mu.Unlock()
	*b.binds = append(*b.binds, viewModels)
}

func saoPaulo() contact.Contact {
	return contact.Contact{Street: "Rua da Vala, 666", City: "São Paulo", State: "SP", Country: contact.Country("BR")}
}

func withoutCountry() contact.Contact {
	return contact.Contact{Street: "Av. Paulista, 1000", City: "São Paulo", State: "SP"}
}
