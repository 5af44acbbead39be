//go:build js || wasm
// +build js wasm

package runtime

import (
	"github.com/vcrobe/dataflow/vdom"
)

// rootKey identifies the root component in the lifecycle maps.
const rootKey = "__root__"

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl is the concrete implementation of the Renderer interface.
// It manages the component instance tree and handles rendering lifecycle.
// The browser runs Go on a single thread, so renders never overlap.
type RendererImpl struct {
	instances        map[string]Component
	activeKeys       map[string]bool // Track which components are active in the current render
	currentComponent Component
	currentKey       string
	mounted          bool
	mountID          string
	prevVDOM         *vdom.VNode // Previous VDOM tree for patching
}

// NewRenderer creates a new runtime renderer that renders into the element
// matching mountID.
func NewRenderer(mountID string) *RendererImpl {
	return &RendererImpl{
		instances:  make(map[string]Component),
		activeKeys: make(map[string]bool),
		mountID:    mountID,
	}
}

// SetCurrentComponent sets the root component to be rendered. Replacing an
// existing root unmounts it first.
func (r *RendererImpl) SetCurrentComponent(comp Component, key string) {
	if r.currentComponent != nil && r.currentKey != key {
		r.Unmount()
	}
	r.currentComponent = comp
	r.currentKey = key
}

// RenderRoot starts the rendering process for the entire application.
func (r *RendererImpl) RenderRoot() {
	if r.currentComponent == nil {
		return
	}

	r.activeKeys = make(map[string]bool)

	r.currentComponent.SetRenderer(r)

	if !r.mounted {
		if m, ok := r.currentComponent.(Mounter); ok {
			r.callOnMount(m, rootKey)
		}
		r.mounted = true
	}

	if ps, ok := r.currentComponent.(ParametersSetter); ok {
		r.callOnParametersSet(ps, rootKey)
	}

	newVDOM := r.currentComponent.Render(r)
	newVDOM.ComponentKey = r.currentKey

	if r.prevVDOM == nil {
		vdom.Clear(r.mountID, nil)
		vdom.RenderToSelector(r.mountID, newVDOM)
	} else {
		vdom.Patch(r.mountID, r.prevVDOM, newVDOM)
	}

	r.prevVDOM = newVDOM

	r.cleanupUnmountedComponents()
}

// RenderChild renders a child component, reusing the instance stored under
// key so its state survives re-renders. A reused instance receives the new
// props through PropUpdater.
func (r *RendererImpl) RenderChild(key string, child Component) *vdom.VNode {
	r.activeKeys[key] = true

	instance, exists := r.instances[key]
	if !exists {
		instance = child
		r.instances[key] = instance
	} else if updater, ok := instance.(PropUpdater); ok {
		updater.ApplyProps(child)
	}

	instance.SetRenderer(r)

	if !exists {
		if m, ok := instance.(Mounter); ok {
			r.callOnMount(m, key)
		}
	}

	if ps, ok := instance.(ParametersSetter); ok {
		r.callOnParametersSet(ps, key)
	}

	node := instance.Render(r)
	if node != nil {
		node.ComponentKey = key
	}
	return node
}

// cleanupUnmountedComponents removes components that are no longer in the tree
// and calls their OnUnmount lifecycle method.
func (r *RendererImpl) cleanupUnmountedComponents() {
	for key, instance := range r.instances {
		if !r.activeKeys[key] {
			r.unmountInstance(key, instance)
		}
	}
}

func (r *RendererImpl) unmountInstance(key string, instance Component) {
	instance.SetRenderer(nil)
	if u, ok := instance.(Unmounter); ok {
		r.callOnUnmount(u, key)
	}
	delete(r.instances, key)
}

// Unmount tears down the whole tree: every child and the root receive
// OnUnmount, all event callbacks are released and the mount point is emptied.
func (r *RendererImpl) Unmount() {
	for key, instance := range r.instances {
		r.unmountInstance(key, instance)
	}

	if r.currentComponent != nil && r.mounted {
		r.currentComponent.SetRenderer(nil)
		if u, ok := r.currentComponent.(Unmounter); ok {
			r.callOnUnmount(u, rootKey)
		}
	}

	vdom.Clear(r.mountID, r.prevVDOM)
	r.prevVDOM = nil
	r.mounted = false
}

// ReRender patches the DOM with minimal changes.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}
