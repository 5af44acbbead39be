//go:build (js || wasm) && dev
// +build js wasm
// +build dev

package runtime

// In dev mode, lifecycle panics propagate to aid debugging and fast failure.

func (r *RendererImpl) callOnMount(m Mounter, key string) {
	m.OnMount()
}

func (r *RendererImpl) callOnParametersSet(ps ParametersSetter, key string) {
	ps.OnParametersSet()
}

func (r *RendererImpl) callOnUnmount(u Unmounter, key string) {
	u.OnUnmount()
}
