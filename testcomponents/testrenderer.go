package testcomponents

import (
	"github.com/vcrobe/pagebuilder/runtime"
	"github.com/vcrobe/pagebuilder/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It shares the instance tree with the browser renderer, so child instances
// are retained by key and lifecycle hooks run in the same order. Tests can:
// - Attach a root component to the renderer
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree and dispatch events into it
type TestRenderer struct {
	tree        *runtime.Tree
	currentVDOM *vdom.VNode
	renders     int
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{tree: runtime.NewTree()}
	r.tree.SetRoot(comp)
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs the initial render of the component.
// This should be called at the start of a test to get the initial VDOM.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.ReRender()
	return r.currentVDOM
}

// ReRender performs a re-render of the whole tree.
// This is called by StateHasChanged() when a component requests a re-render.
func (r *TestRenderer) ReRender() {
	if vnode := r.tree.Render(r); vnode != nil {
		r.currentVDOM = vnode
		r.renders++
	}
}

// RenderChild renders a child through the shared instance tree.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	return r.tree.Child(r, key, child)
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
// Tests use this to inspect the component's output after renders.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// RenderCount returns how many completed render cycles the renderer ran.
func (r *TestRenderer) RenderCount() int {
	return r.renders
}

// Instance returns the component retained under key.
func (r *TestRenderer) Instance(key string) (runtime.Component, bool) {
	return r.tree.Instance(key)
}

// InstanceCount returns the number of retained instances, the root included.
func (r *TestRenderer) InstanceCount() int {
	return r.tree.Len()
}
