package runtime

import (
	"github.com/vcrobe/pagebuilder/console"
	"github.com/vcrobe/pagebuilder/vdom"
)

// RootKey is the instance key of the root component.
const RootKey = "__root__"

// maxPasses bounds how often a single render may be repeated because a
// component asked for another render while the tree was being built.
const maxPasses = 10

// Tree owns the root component and the keyed child instances of a renderer.
// It implements instance retention and lifecycle ordering without touching
// the DOM, so the browser renderer and the test renderer behave the same.
type Tree struct {
	root      Component
	instances map[string]Component
	active    map[string]bool
	rendering bool
	dirty     bool
}

// NewTree creates an empty instance tree.
func NewTree() *Tree {
	return &Tree{
		instances: make(map[string]Component),
		active:    make(map[string]bool),
	}
}

// SetRoot replaces the root component. Instances of the previous root's
// subtree are unmounted on the next render.
func (t *Tree) SetRoot(c Component) {
	if t.root != nil && t.root != c {
		if prev, ok := t.instances[RootKey]; ok {
			if u, ok := prev.(Unmounter); ok {
				callHook(RootKey, "OnUnmount", u.OnUnmount)
			}
			delete(t.instances, RootKey)
		}
	}
	t.root = c
}

// Root returns the current root component.
func (t *Tree) Root() Component {
	return t.root
}

// Instance returns the retained component for key.
func (t *Tree) Instance(key string) (Component, bool) {
	c, ok := t.instances[key]
	return c, ok
}

// Len returns the number of retained instances, the root included.
func (t *Tree) Len() int {
	return len(t.instances)
}

// Render runs a full render cycle against r. When a component requests a
// re-render while the cycle is running, the cycle is repeated and only the
// final tree is returned. A nested call made during a cycle returns nil.
func (t *Tree) Render(r Renderer) *vdom.VNode {
	if t.root == nil {
		return nil
	}
	if t.rendering {
		t.dirty = true
		return nil
	}

	var out *vdom.VNode
	for pass := 0; pass < maxPasses; pass++ {
		t.dirty = false
		out = t.cycle(r)
		if !t.dirty {
			return out
		}
	}
	console.Warn("render still dirty after", maxPasses, "passes")
	return out
}

// Child resolves the instance for key, runs its lifecycle hooks and
// renders it. It must be called from inside Render.
func (t *Tree) Child(r Renderer, key string, childWithProps Component) *vdom.VNode {
	instance := t.resolve(r, key, childWithProps)
	node := instance.Render(r)
	if node != nil {
		node.ComponentKey = key
	}
	return node
}

func (t *Tree) cycle(r Renderer) *vdom.VNode {
	t.rendering = true
	defer func() { t.rendering = false }()

	t.active = make(map[string]bool)
	node := t.Child(r, RootKey, t.root)
	t.sweep()
	return node
}

func (t *Tree) resolve(r Renderer, key string, childWithProps Component) Component {
	t.active[key] = true

	instance, exists := t.instances[key]
	if !exists {
		instance = childWithProps
		t.instances[key] = instance
	} else if instance != childWithProps {
		if updater, ok := instance.(PropUpdater); ok {
			updater.ApplyProps(childWithProps)
		}
	}

	instance.SetRenderer(r)

	if !exists {
		if m, ok := instance.(Mounter); ok {
			callHook(key, "OnMount", m.OnMount)
		}
	}

	if p, ok := instance.(ParameterReceiver); ok {
		callHook(key, "OnParametersSet", p.OnParametersSet)
	}

	return instance
}

// sweep unmounts instances that were not rendered in the last cycle.
func (t *Tree) sweep() {
	for key, instance := range t.instances {
		if t.active[key] {
			continue
		}
		if u, ok := instance.(Unmounter); ok {
			callHook(key, "OnUnmount", u.OnUnmount)
		}
		delete(t.instances, key)
	}
}
