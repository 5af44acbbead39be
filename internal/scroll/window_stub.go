//go:build !wasm

package scroll

// Window returns a source that never fires outside the browser.
func Window() *SignalSource {
	return NewSignalSource()
}
