//go:build !wasm
// +build !wasm

package events

// Stub file for non-WASM builds to allow component code to compile.
// The actual implementation is in events_wasm.go with js/wasm build tags.

// AdaptNoArgEvent returns handler unchanged.
func AdaptNoArgEvent(handler func()) func() {
	return handler
}

// AdaptChangeEvent returns handler unchanged.
func AdaptChangeEvent(handler func(ChangeEventArgs)) func(ChangeEventArgs) {
	return handler
}

// AdaptFormEvent returns handler unchanged.
func AdaptFormEvent(handler func(FormEventArgs)) func(FormEventArgs) {
	return handler
}
