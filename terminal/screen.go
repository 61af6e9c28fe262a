// Package terminal renders the contact list on a text terminal.
package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"addressbook/contact"
	"addressbook/errs"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Interactor starts a contact request.
type Interactor interface {
	All(ctx context.Context)
}

// Screen is a list screen bound to one contact component. It keeps the last
// bound view models and redraws them on every Bind.
type Screen struct {
	out    io.Writer
	styles styles
	plain  bool

	presenterOpts []contact.PresenterOption
	component     *contact.Component
	interactor    Interactor
	start         sync.Once

	mu         sync.Mutex
	viewModels []contact.ViewModel
	lastErr    error
	settled    chan struct{}
	settleOnce sync.Once
}

type Option func(s *Screen)

// WithPlainOutput forces unstyled one-line-per-contact output.
func WithPlainOutput(plain bool) Option {
	return func(s *Screen) {
		s.plain = plain
	}
}

func WithPresenterOptions(opts ...contact.PresenterOption) Option {
	return func(s *Screen) {
		s.presenterOpts = append(s.presenterOpts, opts...)
	}
}

// NewScreen builds the screen and its own contact component on top of g.
// The screen binds itself to the component's presenter and also acts as its
// failure reporter.
func NewScreen(g contact.Gateway, out io.Writer, opts ...Option) *Screen {
	s := &Screen{
		out:     out,
		plain:   !isTerminal(out),
		settled: make(chan struct{}),
	}
	for _, fn := range opts {
		fn(s)
	}
	s.styles = newStyles(lipgloss.NewRenderer(out))

	presenterOpts := append(s.presenterOpts, contact.WithFailureReporter(s))
	s.component = contact.NewComponent(g, presenterOpts...)
	s.interactor = s.component.Interactor()
	contact.AttachBinder(s.component.Presenter(), s)
	return s
}

// Start requests the contacts. Only the first call has an effect.
func (s *Screen) Start(ctx context.Context) {
	s.start.Do(func() {
		s.interactor.All(ctx)
	})
}

// Settled is closed once the first request has been answered.
func (s *Screen) Settled() <-chan struct{} {
	return s.settled
}

func (s *Screen) Bind(viewModels []contact.ViewModel) {
	s.mu.Lock()
	s.viewModels = append([]contact.ViewModel(nil), viewModels...)
	s.lastErr = nil
	view := s.render()
	s.mu.Unlock()

	fmt.Fprint(s.out, view)
	s.settle()
}

// Report shows a failed request without clearing the current list.
func (s *Screen) Report(err error) {
	s.mu.Lock()
	s.lastErr = err
	view := s.render()
	s.mu.Unlock()

	fmt.Fprint(s.out, view)
	s.settle()
}

func (s *Screen) ViewModels() []contact.ViewModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]contact.ViewModel(nil), s.viewModels...)
}

func (s *Screen) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Screen) settle() {
	s.settleOnce.Do(func() {
		close(s.settled)
	})
}

func (s *Screen) render() string {
	if s.plain {
		return s.renderPlain()
	}

	var b strings.Builder
	b.WriteString(s.styles.title.Render(fmt.Sprintf("Contacts (%d)", len(s.viewModels))))
	b.WriteString("\n")
	if len(s.viewModels) == 0 {
		b.WriteString(s.styles.empty.Render("No contacts to display"))
		b.WriteString("\n")
	}
	for i, vm := range s.viewModels {
		b.WriteString(s.styles.index.Render(fmt.Sprintf("%3d", i+1)))
		b.WriteString(s.styles.row.Render(vm.FullAddress))
		b.WriteString("\n")
	}
	if s.lastErr != nil {
		b.WriteString(s.styles.err.Render(errorLine(s.lastErr)))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *Screen) renderPlain() string {
	var b strings.Builder
	for _, vm := range s.viewModels {
		b.WriteString(vm.FullAddress)
		b.WriteString("\n")
	}
	if s.lastErr != nil {
		b.WriteString(errorLine(s.lastErr))
		b.WriteString("\n")
	}
	return b.String()
}

func errorLine(err error) string {
	return "error: " + errs.ErrorMessage(err)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
