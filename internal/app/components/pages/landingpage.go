package pages

import (
	"context"
	"sync"
	"time"

	"github.com/vcrobe/dataflow/console"
	"github.com/vcrobe/dataflow/internal/content"
	"github.com/vcrobe/dataflow/internal/landing"
	"github.com/vcrobe/dataflow/internal/scroll"
	"github.com/vcrobe/dataflow/internal/submit"
	"github.com/vcrobe/dataflow/runtime"
)

// LandingPage is the whole DataFlow marketing page. It owns all UI state;
// every handler turns a DOM event into a landing.Event and re-renders when
// the state actually changed.
type LandingPage struct {
	runtime.ComponentBase

	Content   *content.Page
	Scroll    scroll.Source
	Submitter submit.Submitter
	Now       func() time.Time

	mu                sync.Mutex
	state             landing.State
	unsubscribeScroll func()
	cancelSubmit      context.CancelFunc
}

// NewLandingPage creates the page in its initial state.
func NewLandingPage(page *content.Page, src scroll.Source, sub submit.Submitter) *LandingPage {
	return &LandingPage{
		Content:   page,
		Scroll:    src,
		Submitter: sub,
		Now:       time.Now,
		state:     landing.Initial(),
	}
}

// State returns a snapshot of the current view state.
func (c *LandingPage) State() landing.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// OnMount subscribes to scroll offsets for the header style.
func (c *LandingPage) OnMount() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.unsubscribeScroll != nil {
		c.unsubscribeScroll()
	}
	c.unsubscribeScroll = c.Scroll.Subscribe(func(offset float64) {
		c.dispatch(landing.Scrolled{Offset: offset})
	})
}

// OnUnmount releases the scroll subscription and abandons any submission
// still in flight.
func (c *LandingPage) OnUnmount() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.unsubscribeScroll != nil {
		c.unsubscribeScroll()
		c.unsubscribeScroll = nil
	}
	if c.cancelSubmit != nil {
		c.cancelSubmit()
		c.cancelSubmit = nil
	}
}

// dispatch applies ev and re-renders if anything visible changed.
func (c *LandingPage) dispatch(ev landing.Event) (prev, next landing.State) {
	c.mu.Lock()
	prev, next = c.applyLocked(ev)
	c.mu.Unlock()

	c.renderIfChanged(prev, next)
	return prev, next
}

// applyLocked runs the transition for ev. c.mu must be held.
func (c *LandingPage) applyLocked(ev landing.Event) (prev, next landing.State) {
	prev = c.state
	next = landing.Apply(prev, ev, len(c.Content.FAQs))
	c.state = next
	return prev, next
}

func (c *LandingPage) renderIfChanged(prev, next landing.State) {
	if next != prev && c.Mounted() {
		c.StateHasChanged()
	}
}

// ToggleMenu opens or closes the mobile navigation.
func (c *LandingPage) ToggleMenu() {
	c.dispatch(landing.MenuToggled{})
}

// CloseMenu is bound to every mobile navigation link.
func (c *LandingPage) CloseMenu() {
	c.dispatch(landing.NavLinkSelected{})
}

// SelectFaq expands FAQ entry i, or collapses it if it is already open.
func (c *LandingPage) SelectFaq(i int) {
	c.dispatch(landing.FaqSelected{Index: i})
}

// SetField records an edit to one of the contact form inputs.
func (c *LandingPage) SetField(f landing.Field, value string) {
	c.dispatch(landing.FieldChanged{Field: f, Value: value})
}

// Submit starts sending the contact form. Incomplete forms and repeat
// submits while one is in flight are ignored.
func (c *LandingPage) Submit() {
	c.mu.Lock()
	prev, next := c.applyLocked(landing.SubmitRequested{})
	if !landing.StartsSubmission(prev, next) {
		c.mu.Unlock()
		return
	}
	// Installed with the transition so OnUnmount always sees it.
	ctx, cancel := context.WithCancel(context.Background())
	c.cancelSubmit = cancel
	c.mu.Unlock()

	c.renderIfChanged(prev, next)

	f := next.Form
	lead := submit.NewLead(f.Name, f.Email, f.Company, f.Message, c.Now())

	go func() {
		defer cancel()
		err := c.Submitter.Submit(ctx, lead)
		if err != nil {
			console.Error("lead submission failed:", err.Error())
		} else {
			console.Log("lead submitted:", lead.ID.String())
		}

		c.mu.Lock()
		c.cancelSubmit = nil
		c.mu.Unlock()

		c.dispatch(landing.SubmitCompleted{Err: err})
	}()
}
