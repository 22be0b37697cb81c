//go:build js && wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/pagebuilder/console"
	"github.com/vcrobe/pagebuilder/events"
)

// listener pairs a registered js.Func with the event it listens to.
type listener struct {
	event string
	fn    js.Func
}

// releaseCallbacks releases all js.Func objects stored in a VNode.
func releaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	for _, cb := range v.GetEventCallbacks() {
		if l, ok := cb.(listener); ok {
			l.fn.Release()
		}
	}
	v.ClearEventCallbacks()
}

// deepReleaseCallbacks recursively releases all callbacks in the entire VNode tree.
func deepReleaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	releaseCallbacks(v)

	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

func mountPoint(selector string) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined()
	}

	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
		return js.Undefined()
	}
	return mount
}

// Clear empties the mount element and releases the callbacks of prevVDOM.
func Clear(selector string, prevVDOM *VNode) {
	if selector == "" {
		return
	}

	if prevVDOM != nil {
		deepReleaseCallbacks(prevVDOM)
	}

	mount := mountPoint(selector)
	if !mount.Truthy() {
		return
	}
	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}

	mount := mountPoint(selector)
	if !mount.Truthy() {
		return
	}

	if el := createElement(n); el.Truthy() {
		mount.Call("appendChild", el)
	}
}

// setAttributeValue sets an attribute on an element, handling boolean attributes.
func setAttributeValue(el js.Value, key string, value any) {
	if boolVal, ok := value.(bool); ok {
		if boolVal {
			el.Call("setAttribute", key, "")
		} else {
			el.Call("removeAttribute", key)
		}
		return
	}

	el.Call("setAttribute", key, attrString(value))
}

// attachEventListeners wraps every Go handler of vnode in a js.Func and
// stores the callback on the node for later release.
func attachEventListeners(el js.Value, vnode *VNode) {
	for name, handler := range vnode.Events {
		if handler == nil {
			continue
		}

		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			var native js.Value
			if len(args) > 0 {
				native = args[0]
			}
			handler(events.FromJS(name, native))
			return nil
		})

		el.Call("addEventListener", name, cb)
		vnode.AddEventCallback(listener{event: name, fn: cb})
	}
}

// detachEventListeners removes the listeners added by attachEventListeners.
func detachEventListeners(el js.Value, vnode *VNode) {
	for _, cb := range vnode.GetEventCallbacks() {
		if l, ok := cb.(listener); ok {
			el.Call("removeEventListener", l.event, l.fn)
		}
	}
	releaseCallbacks(vnode)
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if n.Tag == TextTag {
		return doc.Call("createTextNode", n.Content)
	}

	el := doc.Call("createElement", n.Tag)

	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}
	attachEventListeners(el, n)

	if isFormField(n.Tag) {
		el.Set("value", n.Content)
		return el
	}

	if n.Content != "" {
		el.Set("textContent", n.Content)
	}

	for _, child := range n.Children {
		if childEl := createElement(child); childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}

	return el
}

// Patch updates the DOM by comparing old and new VDOM trees and applying minimal changes.
func Patch(mountSelector string, oldVNode, newVNode *VNode) {
	if oldVNode == nil || newVNode == nil {
		return
	}

	mount := mountPoint(mountSelector)
	if !mount.Truthy() {
		return
	}

	rootElement := mount.Get("firstChild")
	if !rootElement.Truthy() {
		RenderToSelector(mountSelector, newVNode)
		return
	}

	patchElement(rootElement, oldVNode, newVNode)
}

func replaceElement(domElement js.Value, oldVNode, newVNode *VNode) {
	deepReleaseCallbacks(oldVNode)

	newElement := createElement(newVNode)
	if !newElement.Truthy() {
		return
	}
	if parent := domElement.Get("parentNode"); parent.Truthy() {
		parent.Call("replaceChild", newElement, domElement)
	}
}

// patchElement updates a single DOM element based on VDOM differences.
func patchElement(domElement js.Value, oldVNode, newVNode *VNode) {
	if !domElement.Truthy() || oldVNode == nil || newVNode == nil {
		return
	}

	if oldVNode.ComponentKey != newVNode.ComponentKey || oldVNode.Tag != newVNode.Tag {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	if newVNode.Tag == TextTag {
		if oldVNode.Content != newVNode.Content {
			domElement.Set("nodeValue", newVNode.Content)
		}
		return
	}

	patchAttributes(domElement, oldVNode.Attributes, newVNode.Attributes)

	detachEventListeners(domElement, oldVNode)
	attachEventListeners(domElement, newVNode)

	if isFormField(newVNode.Tag) {
		// Leave a focused field alone so the caret does not jump while typing.
		isFocused := domElement.Call("matches", ":focus").Bool()
		if !isFocused && domElement.Get("value").String() != newVNode.Content {
			domElement.Set("value", newVNode.Content)
		}
		return
	}

	// Setting textContent wipes out all child nodes.
	if len(newVNode.Children) == 0 && oldVNode.Content != newVNode.Content {
		domElement.Set("textContent", newVNode.Content)
	}

	patchChildren(domElement, oldVNode.Children, newVNode.Children)
}

// patchAttributes updates the attributes of a DOM element.
func patchAttributes(domElement js.Value, oldAttrs, newAttrs map[string]any) {
	for key := range oldAttrs {
		if _, exists := newAttrs[key]; !exists {
			domElement.Call("removeAttribute", key)
		}
	}

	for key, value := range newAttrs {
		if old, ok := oldAttrs[key]; !ok || old != value {
			setAttributeValue(domElement, key, value)
		}
	}
}

// patchChildren updates the children of a DOM element. Nil entries are
// skipped on both sides, so a conditional child produces no DOM node.
func patchChildren(domElement js.Value, oldChildren, newChildren []*VNode) {
	oldChildren = compact(oldChildren)
	newChildren = compact(newChildren)

	oldLen := len(oldChildren)
	newLen := len(newChildren)
	minLen := min(oldLen, newLen)

	domChildren := domElement.Get("childNodes")

	for i := 0; i < minLen; i++ {
		if childElement := domChildren.Call("item", i); childElement.Truthy() {
			patchElement(childElement, oldChildren[i], newChildren[i])
		}
	}

	for i := oldLen; i < newLen; i++ {
		if newChild := createElement(newChildren[i]); newChild.Truthy() {
			domElement.Call("appendChild", newChild)
		}
	}

	for i := oldLen - 1; i >= newLen; i-- {
		deepReleaseCallbacks(oldChildren[i])

		if childElement := domChildren.Call("item", i); childElement.Truthy() {
			domElement.Call("removeChild", childElement)
		}
	}
}

func compact(nodes []*VNode) []*VNode {
	out := make([]*VNode, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
