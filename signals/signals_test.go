package signals

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSignal_SetNotifiesInOrder(t *testing.T) {
	s := NewSignal(0)

	var got []string
	s.Subscribe(func(v int) { got = append(got, "a") })
	s.Subscribe(func(v int) { got = append(got, "b") })

	s.Set(42)

	if s.Get() != 42 {
		t.Errorf("Expected value 42, got %d", s.Get())
	}
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("Notification order mismatch (-want +got):\n%s", diff)
	}
}

func TestSignal_UnsubscribeOutOfOrder(t *testing.T) {
	s := NewSignal("")

	var got []string
	unsubA := s.Subscribe(func(v string) { got = append(got, "a:"+v) })
	unsubB := s.Subscribe(func(v string) { got = append(got, "b:"+v) })
	s.Subscribe(func(v string) { got = append(got, "c:"+v) })

	unsubA()
	unsubB()
	unsubB() // second call is a no-op

	s.Set("x")

	if diff := cmp.Diff([]string{"c:x"}, got); diff != "" {
		t.Errorf("Unexpected notifications (-want +got):\n%s", diff)
	}
	if s.Subscribers() != 1 {
		t.Errorf("Expected 1 subscriber, got %d", s.Subscribers())
	}
}
