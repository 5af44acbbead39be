// Package scroll delivers the viewport's vertical scroll offset.
package scroll

import "github.com/vcrobe/dataflow/signals"

// Source notifies subscribers of the current vertical scroll offset.
// The returned unsubscribe func releases the subscription and is safe to
// call more than once.
type Source interface {
	Subscribe(fn func(offset float64)) (unsubscribe func())
}

// SignalSource is a Source fed by explicit Set calls. Tests drive it
// directly; it also stands in for the window outside the browser.
type SignalSource struct {
	offset *signals.Signal[float64]
}

var _ Source = (*SignalSource)(nil)

func NewSignalSource() *SignalSource {
	return &SignalSource{offset: signals.NewSignal(0.0)}
}

// Set publishes a new offset.
func (s *SignalSource) Set(offset float64) {
	s.offset.Set(offset)
}

func (s *SignalSource) Subscribe(fn func(offset float64)) (unsubscribe func()) {
	return s.offset.Subscribe(fn)
}

// Subscribers returns the number of live subscriptions.
func (s *SignalSource) Subscribers() int {
	return s.offset.Subscribers()
}
