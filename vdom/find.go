package vdom

// Match reports whether a node satisfies a lookup.
type Match func(n *VNode) bool

// ByTag matches nodes with the given tag.
func ByTag(tag string) Match {
	return func(n *VNode) bool { return n.Tag == tag }
}

// ByAttr matches nodes whose attribute key equals value.
func ByAttr(key, value string) Match {
	return func(n *VNode) bool {
		if n.Attributes == nil {
			return false
		}
		if _, ok := n.Attributes[key]; !ok {
			return false
		}
		return n.Attr(key) == value
	}
}

// Find returns the first node in depth-first order matching m, or nil.
func Find(root *VNode, m Match) *VNode {
	if root == nil {
		return nil
	}
	if m(root) {
		return root
	}
	for _, child := range root.Children {
		if found := Find(child, m); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node matching m in depth-first order.
func FindAll(root *VNode, m Match) []*VNode {
	var out []*VNode
	var walk func(n *VNode)
	walk = func(n *VNode) {
		if n == nil {
			return
		}
		if m(n) {
			out = append(out, n)
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(root)
	return out
}
