//go:build js || wasm

package events

import "syscall/js"

// AdaptNoArgEvent wraps a handler that ignores the DOM event.
func AdaptNoArgEvent(handler func()) func(js.Value) {
	return func(js.Value) {
		handler()
	}
}

// AdaptChangeEvent reads event.target.value and passes it to handler.
func AdaptChangeEvent(handler func(ChangeEventArgs)) func(js.Value) {
	return func(e js.Value) {
		value := ""
		if target := e.Get("target"); target.Truthy() {
			value = target.Get("value").String()
		}
		handler(ChangeEventArgs{Value: value})
	}
}

// AdaptFormEvent prevents the browser's form navigation, then calls handler.
// The browser only dispatches submit once native validation has passed.
func AdaptFormEvent(handler func(FormEventArgs)) func(js.Value) {
	return func(e js.Value) {
		e.Call("preventDefault")
		handler(FormEventArgs{})
	}
}
