// Package submit is the boundary between the contact form and whatever
// receives leads. Today that is a fixed delay; a real backend implements
// Submitter without the form changing.
package submit

import (
	"context"
	"fmt"
	"time"
)

// DefaultDelay is how long the stand-in submission takes.
const DefaultDelay = 1200 * time.Millisecond

// Submitter delivers a lead. It blocks until delivery finishes or ctx is done.
type Submitter interface {
	Submit(ctx context.Context, lead Lead) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, lead Lead) error

func (f SubmitterFunc) Submit(ctx context.Context, lead Lead) error {
	return f(ctx, lead)
}

// Delay stands in for a network call: it waits Duration and succeeds.
type Delay struct {
	Duration time.Duration
}

var _ Submitter = Delay{}

// NewDelay returns the stand-in with DefaultDelay.
func NewDelay() Delay {
	return Delay{Duration: DefaultDelay}
}

func (d Delay) Submit(ctx context.Context, lead Lead) error {
	t := time.NewTimer(d.Duration)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("submit lead %s: %w", lead.ID, ctx.Err())
	}
}
