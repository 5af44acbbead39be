// Package events defines the arguments Go handlers receive from DOM events
// and the adapters that bind those handlers to elements.
//
// Under wasm the adapters return func(js.Value) so vdom can attach them with
// addEventListener. Native builds return the handler unchanged, which lets
// tests fire events by calling the function stored on a VNode.
package events

// ChangeEventArgs carries the current value of an input, textarea or select.
type ChangeEventArgs struct {
	Value string
}

// FormEventArgs is passed to submit handlers. The default navigation has
// already been prevented by the time the handler runs.
type FormEventArgs struct{}
