package contact

import "context"

// Repository is the synchronous port implemented by storage adapters.
type Repository interface {
	CreateContact(ctx context.Context, c Contact) error
	AllContacts(ctx context.Context) ([]Contact, error)
}

type Service interface {
	AddContact(ctx context.Context, c Contact) error
}

// Usecase writes contacts into a source. Reading goes through the
// Gateway/Interactor pipeline instead.
type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) AddContact(ctx context.Context, c Contact) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return uc.r.CreateContact(ctx, c)
}
