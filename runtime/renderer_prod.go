//go:build (js || wasm) && !dev
// +build js wasm
// +build !dev

package runtime

import (
	"fmt"

	"github.com/vcrobe/dataflow/console"
)

// In production mode, lifecycle panics are recovered and logged so one
// misbehaving component does not take the page down.

func (r *RendererImpl) callOnMount(m Mounter, key string) {
	defer recoverHook("OnMount", key)
	m.OnMount()
}

func (r *RendererImpl) callOnParametersSet(ps ParametersSetter, key string) {
	defer recoverHook("OnParametersSet", key)
	ps.OnParametersSet()
}

func (r *RendererImpl) callOnUnmount(u Unmounter, key string) {
	defer recoverHook("OnUnmount", key)
	u.OnUnmount()
}

func recoverHook(hook, key string) {
	if rec := recover(); rec != nil {
		console.Error(fmt.Sprintf("ERROR: %s panic in component %s: %v", hook, key, rec))
	}
}
