package runtime

import "github.com/vcrobe/pagebuilder/vdom"

// Component interface defines the structure for all components in the framework.
// This interface has NO build tags, making it available to both WASM and native test builds.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	// The renderer parameter provides access to framework services like RenderChild.
	Render(r Renderer) *vdom.VNode

	// SetRenderer is called by the framework to attach the renderer to the component.
	// This enables StateHasChanged() to trigger re-renders.
	SetRenderer(r Renderer)
}

// Renderer defines the minimal set of runtime operations used by Render() code.
type Renderer interface {
	// RenderChild renders a child component. The key uniquely identifies the
	// component instance; the first instance seen under a key is kept and
	// reused on later renders so its state survives re-rendering.
	RenderChild(key string, childWithProps Component) *vdom.VNode

	// ReRender requests that the renderer re-run the render cycle.
	// Used by StateHasChanged() when component state changes.
	ReRender()
}

// Mounter is implemented by components that need setup before their first render.
type Mounter interface {
	OnMount()
}

// ParameterReceiver is implemented by components that react to new props.
// OnParametersSet runs before every render, including the first.
type ParameterReceiver interface {
	OnParametersSet()
}

// Unmounter is implemented by components that release resources when they
// leave the tree.
type Unmounter interface {
	OnUnmount()
}

// PropUpdater copies props from a freshly constructed component onto the
// retained instance. Fields not copied keep the instance's local state.
type PropUpdater interface {
	ApplyProps(source Component)
}
