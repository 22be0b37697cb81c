package vdom

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML serializes a VNode tree to HTML markup.
// Event handlers are not serialized; attributes are written in sorted order
// so the output is stable across renders.
func RenderHTML(n *VNode) (string, error) {
	if n == nil {
		return "", nil
	}

	var b strings.Builder
	if err := html.Render(&b, toHTMLNode(n)); err != nil {
		return "", fmt.Errorf("render %s: %w", n.Tag, err)
	}
	return b.String(), nil
}

func toHTMLNode(n *VNode) *html.Node {
	if n.Tag == TextTag {
		return &html.Node{Type: html.TextNode, Data: n.Content}
	}

	node := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}

	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	if isFormField(n.Tag) && n.Content != "" {
		if _, ok := n.Attributes["value"]; !ok {
			keys = append(keys, "value")
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		if k == "value" && isFormField(n.Tag) {
			if _, ok := n.Attributes[k]; !ok {
				node.Attr = append(node.Attr, html.Attribute{Key: k, Val: n.Content})
				continue
			}
		}
		v := n.Attributes[k]
		if bv, ok := v.(bool); ok {
			if bv {
				node.Attr = append(node.Attr, html.Attribute{Key: k})
			}
			continue
		}
		node.Attr = append(node.Attr, html.Attribute{Key: k, Val: attrString(v)})
	}

	if n.Content != "" && !isFormField(n.Tag) {
		node.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		node.AppendChild(toHTMLNode(child))
	}
	return node
}

// isFormField reports whether Content holds the element's value rather than text.
func isFormField(tag string) bool {
	return tag == "input" || tag == "textarea"
}

func attrString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
