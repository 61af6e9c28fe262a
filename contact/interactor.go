package contact

import (
	"context"
	"weak"

	"addressbook/result"
)

// Presenter receives the outcome of one Interactor request.
type Presenter interface {
	Found(contacts []Contact)
	Failed(err error)
}

// Interactor lists the contacts that can be displayed.
type Interactor struct {
	gateway   Gateway
	presenter Presenter
}

func NewInteractor(g Gateway, p Presenter) *Interactor {
	return &Interactor{
		gateway:   g,
		presenter: p,
	}
}

// All requests every contact and reports the valid ones to the presenter.
// The gateway callback only holds a weak reference to the interactor: once
// the interactor is collected, a late callback is dropped.
func (uc *Interactor) All(ctx context.Context) {
	self := weak.Make(uc)

	uc.gateway.All(ctx, func(r result.Result[[]Contact]) {
		live := self.Value()
		if live == nil {
			return
		}

		r.OnFailure(live.presenter.Failed)
		r.OnSuccess(func(all []Contact) {
			live.presenter.Found(FilterValid(all))
		})
	})
}

// FilterValid keeps the contacts that have a country, in their original order.
func FilterValid(contacts []Contact) []Contact {
	valid := make([]Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.HasCountry() {
			valid = append(valid, c)
		}
	}
	return valid
}
