package contact

import (
	"log/slog"
	"sync"
	"weak"
)

// Binder is the UI side of the pipeline. Every Bind replaces what was
// previously displayed.
type Binder interface {
	Bind(viewModels []ViewModel)
}

// FailureReporter is notified of every failed request.
type FailureReporter interface {
	Report(err error)
}

// ViewModelPresenter turns contacts into view models for its binder. The
// binder is held weakly so the presenter never keeps a screen alive.
type ViewModelPresenter struct {
	logger    *slog.Logger
	reporters []FailureReporter

	mu     sync.RWMutex
	binder func() Binder
}

type PresenterOption func(p *ViewModelPresenter)

func WithLogger(logger *slog.Logger) PresenterOption {
	return func(p *ViewModelPresenter) {
		p.logger = logger
	}
}

// WithFailureReporter adds r to the reporters notified by Failed.
func WithFailureReporter(r FailureReporter) PresenterOption {
	return func(p *ViewModelPresenter) {
		if r != nil {
			p.reporters = append(p.reporters, r)
		}
	}
}

func NewPresenter(opts ...PresenterOption) *ViewModelPresenter {
	p := &ViewModelPresenter{
		logger: slog.Default(),
	}
	for _, fn := range opts {
		fn(p)
	}
	return p
}

// AttachBinder registers b without retaining it. Passing nil detaches.
func AttachBinder[T any, B interface {
	*T
	Binder
}](p *ViewModelPresenter, b B) {
	if b == nil {
		p.DetachBinder()
		return
	}

	ref := weak.Make((*T)(b))
	lookup := func() Binder {
		v := ref.Value()
		if v == nil {
			return nil
		}
		return B(v)
	}

	p.mu.Lock()
	p.binder = lookup
	p.mu.Unlock()
}

func (p *ViewModelPresenter) DetachBinder() {
	p.mu.Lock()
	p.binder = nil
	p.mu.Unlock()
}

// Binder returns the attached binder, or nil when none is attached or it has
// been released.
func (p *ViewModelPresenter) Binder() Binder {
	p.mu.RLock()
	lookup := p.binder
	p.mu.RUnlock()

	if lookup == nil {
		return nil
	}
	return lookup()
}

func (p *ViewModelPresenter) Found(contacts []Contact) {
	viewModels := make([]ViewModel, len(contacts))
	for i, c := range contacts {
		viewModels[i] = ViewModel{FullAddress: FormatAddress(c)}
	}

	b := p.Binder()
	if b == nil {
		p.logger.Debug("no binder attached, dropping contacts", "count", len(viewModels))
		return
	}
	b.Bind(viewModels)
}

// Failed records the failure. It never touches the binder, so the screen
// keeps whatever it displayed last.
func (p *ViewModelPresenter) Failed(err error) {
	p.logger.Warn("contacts request failed", "error", err)
	for _, r := range p.reporters {
		r.Report(err)
	}
}
