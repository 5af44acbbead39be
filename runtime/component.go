package runtime

import "github.com/vcrobe/dataflow/vdom"

// Component interface defines the structure for all components in the framework.
// This interface has NO build tags, making it available to both WASM and native test builds.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	// The renderer parameter provides access to framework services like RenderChild.
	Render(r Renderer) *vdom.VNode

	// SetRenderer is called by the framework to attach the renderer to the component.
	// This enables StateHasChanged() to trigger re-renders. A nil renderer detaches it.
	SetRenderer(r Renderer)
}

// Mounter is implemented by components that acquire resources when they
// enter the tree. OnMount runs once, before the first render.
type Mounter interface {
	OnMount()
}

// ParametersSetter is implemented by components that derive state from
// their props. OnParametersSet runs before every render.
type ParametersSetter interface {
	OnParametersSet()
}

// Unmounter is implemented by components that must release what OnMount
// acquired. OnUnmount runs once, when the component leaves the tree.
type Unmounter interface {
	OnUnmount()
}

// PropUpdater is implemented by components rendered through RenderChild.
// When an instance already lives under the key, the renderer keeps it and
// passes the freshly built value so the instance can copy its props.
type PropUpdater interface {
	ApplyProps(next Component)
}
