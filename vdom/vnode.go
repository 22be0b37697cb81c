package vdom

import (
	"sort"
	"strings"

	"github.com/vcrobe/pagebuilder/events"
)

// TextTag marks a bare text node with no element wrapper.
const TextTag = "#text"

// Handler receives DOM events bound to a VNode.
type Handler func(e events.Event)

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string             // The HTML tag name
	Attributes map[string]any     // The attributes of the node
	Children   []*VNode           // The child nodes
	Content    string             // Text content, or the value of form fields
	Events     map[string]Handler // Event handlers keyed by DOM event name

	// ComponentKey identifies the component instance that produced this subtree.
	ComponentKey string

	eventCallbacks []any
}

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
	}
}

// On binds handler to the named DOM event and returns the node for chaining.
func (v *VNode) On(event string, handler Handler) *VNode {
	if v.Events == nil {
		v.Events = make(map[string]Handler)
	}
	v.Events[event] = handler
	return v
}

// Attr returns the attribute value as a string, or "" when unset.
func (v *VNode) Attr(key string) string {
	if v == nil || v.Attributes == nil {
		return ""
	}
	val, ok := v.Attributes[key]
	if !ok {
		return ""
	}
	return attrString(val)
}

// AddEventCallback stores a platform callback so it can be released later.
func (v *VNode) AddEventCallback(cb any) {
	v.eventCallbacks = append(v.eventCallbacks, cb)
}

// GetEventCallbacks returns the stored platform callbacks.
func (v *VNode) GetEventCallbacks() []any {
	return v.eventCallbacks
}

// ClearEventCallbacks drops all stored platform callbacks.
func (v *VNode) ClearEventCallbacks() {
	v.eventCallbacks = nil
}

// Dispatch invokes the handler bound to event on node.
// It reports whether a handler was found.
func Dispatch(node *VNode, event string, e events.Event) bool {
	if node == nil || node.Events == nil {
		return false
	}
	h, ok := node.Events[event]
	if !ok || h == nil {
		return false
	}
	if e.Type == "" {
		e.Type = event
	}
	h(e)
	return true
}

// Style renders CSS declarations in a stable order.
func Style(decls map[string]string) string {
	keys := make([]string, 0, len(decls))
	for k := range decls {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(decls[k])
		b.WriteString(";")
	}
	return b.String()
}

// Text creates a bare text node.
func Text(content string) *VNode {
	return NewVNode(TextTag, nil, nil, content)
}

// Paragraph creates a <p> VNode with the given text as its child and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Label creates a <label> VNode.
func Label(text string, attrs map[string]any) *VNode {
	return NewVNode("label", attrs, nil, text)
}

// Input returns a VNode representing an <input> of the given type whose
// value is carried in Content.
func Input(inputType, value string, attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["type"] = inputType
	return NewVNode("input", attrs, nil, value)
}

// InputText returns a VNode representing an <input type="text"> element.
func InputText(value string, attrs map[string]any) *VNode {
	return Input("text", value, attrs)
}

// InputNumber returns a VNode representing an <input type="number"> element.
// The value is kept as the raw string the user typed.
func InputNumber(value string, attrs map[string]any) *VNode {
	return Input("number", value, attrs)
}

// Img creates an <img> VNode.
func Img(src string, attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["src"] = src
	return NewVNode("img", attrs, nil, "")
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}
