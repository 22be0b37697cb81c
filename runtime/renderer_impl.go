//go:build js && wasm

package runtime

import (
	"github.com/vcrobe/pagebuilder/vdom"
)

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl is the browser implementation of the Renderer interface.
// It keeps the component instance tree and patches the DOM under mountID.
type RendererImpl struct {
	tree     *Tree
	mountID  string
	prevVDOM *vdom.VNode // Previous VDOM tree for patching
}

// NewRenderer creates a new runtime renderer mounted at the CSS selector mountID.
func NewRenderer(mountID string) *RendererImpl {
	return &RendererImpl{
		tree:    NewTree(),
		mountID: mountID,
	}
}

// SetCurrentComponent sets the root component to be rendered.
func (r *RendererImpl) SetCurrentComponent(comp Component) {
	r.tree.SetRoot(comp)
}

// RenderRoot runs a render cycle and writes the result to the DOM.
func (r *RendererImpl) RenderRoot() {
	newVDOM := r.tree.Render(r)
	if newVDOM == nil {
		return
	}

	if r.prevVDOM == nil {
		vdom.Clear(r.mountID, nil)
		vdom.RenderToSelector(r.mountID, newVDOM)
	} else {
		vdom.Patch(r.mountID, r.prevVDOM, newVDOM)
	}

	r.prevVDOM = newVDOM
}

// RenderChild is called from Render code to render a child component.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	return r.tree.Child(r, key, childWithProps)
}

// ReRender patches the DOM with minimal changes.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}
