package contact

import "sync"

// Component assembles the pipeline for one screen. The presenter is shared
// by every interactor of the component and lives as long as the component.
type Component struct {
	gateway Gateway
	opts    []PresenterOption

	once      sync.Once
	presenter *ViewModelPresenter
}

func NewComponent(g Gateway, opts ...PresenterOption) *Component {
	return &Component{
		gateway: g,
		opts:    opts,
	}
}

func (c *Component) Gateway() Gateway {
	return c.gateway
}

func (c *Component) Presenter() *ViewModelPresenter {
	c.once.Do(func() {
		c.presenter = NewPresenter(c.opts...)
	})
	return c.presenter
}

func (c *Component) Interactor() *Interactor {
	return NewInteractor(c.gateway, c.Presenter())
}
