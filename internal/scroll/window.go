//go:build js || wasm

package scroll

import (
	"sync"
	"syscall/js"
)

// WindowSource reports window.scrollY on every scroll event.
type WindowSource struct{}

var _ Source = WindowSource{}

// Window returns the browser window's scroll source.
func Window() WindowSource {
	return WindowSource{}
}

// Subscribe adds a passive scroll listener to window. Unsubscribing removes
// the listener and releases its js.Func.
func (WindowSource) Subscribe(fn func(offset float64)) (unsubscribe func()) {
	window := js.Global().Get("window")
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(window.Get("scrollY").Float())
		return nil
	})
	opts := map[string]any{"passive": true}
	window.Call("addEventListener", "scroll", cb, opts)

	var once sync.Once
	return func() {
		once.Do(func() {
			window.Call("removeEventListener", "scroll", cb, opts)
			cb.Release()
		})
	}
}
