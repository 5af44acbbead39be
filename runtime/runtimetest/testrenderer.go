// Package runtimetest provides an in-memory renderer for testing
// components without a browser or WASM.
package runtimetest

import (
	"slices"
	"sync"

	"github.com/vcrobe/dataflow/runtime"
	"github.com/vcrobe/dataflow/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer.
//
// It captures VDOM output from component renders and allows tests to:
// - Mount and unmount components, running their lifecycle hooks
// - Trigger re-renders via StateHasChanged()
// - Render keyed child components, reused across renders like the browser renderer
// - Inspect the resulting VDOM tree
//
// Re-renders may arrive from other goroutines (async completions). Renders
// are serialised, so the stored tree is always the one rendered last.
// Lifecycle hooks of children run inside a render and must not call
// StateHasChanged synchronously.
type TestRenderer struct {
	// renderMu serialises renders and guards children and active.
	renderMu sync.Mutex
	children map[string]runtime.Component
	active   map[string]bool

	mu          sync.Mutex
	currentVDOM *vdom.VNode
	component   runtime.Component
	mounted     bool
	renders     int
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component: comp,
		children:  make(map[string]runtime.Component),
		active:    make(map[string]bool),
	}
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs the initial render of the component, calling OnMount
// first if the component has not been mounted yet.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.mu.Lock()
	first := !r.mounted
	r.mounted = true
	r.mu.Unlock()

	if first {
		r.component.SetRenderer(r)
		if m, ok := r.component.(runtime.Mounter); ok {
			m.OnMount()
		}
	}

	r.ReRender()
	return r.GetCurrentVDOM()
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.renderMu.Lock()
	defer r.renderMu.Unlock()

	r.active = make(map[string]bool)

	if ps, ok := r.component.(runtime.ParametersSetter); ok {
		ps.OnParametersSet()
	}
	node := r.component.Render(r)

	for key, child := range r.children {
		if !r.active[key] {
			delete(r.children, key)
			unmount(child)
		}
	}

	r.mu.Lock()
	r.currentVDOM = node
	r.renders++
	r.mu.Unlock()
}

// Unmount runs OnUnmount on every child and the root and detaches them.
// A later RenderRoot mounts the root again.
func (r *TestRenderer) Unmount() {
	r.mu.Lock()
	wasMounted := r.mounted
	r.mounted = false
	r.mu.Unlock()

	if !wasMounted {
		return
	}

	// Detach first so work finishing during OnUnmount cannot re-render.
	r.component.SetRenderer(nil)

	r.renderMu.Lock()
	children := r.children
	r.children = make(map[string]runtime.Component)
	r.renderMu.Unlock()

	for _, child := range children {
		unmount(child)
	}
	if u, ok := r.component.(runtime.Unmounter); ok {
		u.OnUnmount()
	}
}

func unmount(c runtime.Component) {
	c.SetRenderer(nil)
	if u, ok := c.(runtime.Unmounter); ok {
		u.OnUnmount()
	}
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentVDOM
}

// RenderCount returns how many renders have happened so far.
func (r *TestRenderer) RenderCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renders
}

// ChildKeys returns the keys of the live child instances, sorted.
func (r *TestRenderer) ChildKeys() []string {
	r.renderMu.Lock()
	defer r.renderMu.Unlock()

	keys := make([]string, 0, len(r.children))
	for k := range r.children {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// RenderChild renders the child instance stored under key, creating it from
// child on first use. It is meant to be called from a component's Render
// during ReRender.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	r.active[key] = true

	instance, exists := r.children[key]
	if !exists {
		instance = child
		r.children[key] = instance
	} else if updater, ok := instance.(runtime.PropUpdater); ok {
		updater.ApplyProps(child)
	}

	instance.SetRenderer(r)

	if !exists {
		if m, ok := instance.(runtime.Mounter); ok {
			m.OnMount()
		}
	}
	if ps, ok := instance.(runtime.ParametersSetter); ok {
		ps.OnParametersSet()
	}

	node := instance.Render(r)
	if node != nil {
		node.ComponentKey = key
	}
	return node
}
