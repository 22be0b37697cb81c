package runtime

import (
	"testing"

	"github.com/vcrobe/pagebuilder/vdom"
)

// treeRenderer is the smallest Renderer over a Tree.
type treeRenderer struct {
	tree *Tree
	last *vdom.VNode
}

func (r *treeRenderer) RenderChild(key string, c Component) *vdom.VNode {
	return r.tree.Child(r, key, c)
}

func (r *treeRenderer) ReRender() {
	if n := r.tree.Render(r); n != nil {
		r.last = n
	}
}

type probe struct {
	ComponentBase
	Label   string
	log     *[]string
	mounted int
}

func (p *probe) OnMount() { p.mounted++; *p.log = append(*p.log, "mount "+p.Label) }
func (p *probe) OnParametersSet() { *p.log = append(*p.log, "params "+p.Label) }
func (p *probe) OnUnmount() { *p.log = append(*p.log, "unmount "+p.Label) }
func (p *probe) ApplyProps(c Component) { p.Label = c.(*probe).Label }

func (p *probe) Render(r Renderer) *vdom.VNode {
	return vdom.Paragraph(p.Label, nil)
}

type parent struct {
	ComponentBase
	children []string
	log      *[]string
}

func (p *parent) Render(r Renderer) *vdom.VNode {
	nodes := make([]*vdom.VNode, 0, len(p.children))
	for _, key := range p.children {
		nodes = append(nodes, r.RenderChild(key, &probe{Label: key, log: p.log}))
	}
	return vdom.Div(nil, nodes...)
}

func TestTree_RetainsInstancesByKey(t *testing.T) {
	var log []string
	root := &parent{children: []string{"a", "b"}, log: &log}
	r := &treeRenderer{tree: NewTree()}
	r.tree.SetRoot(root)
	root.SetRenderer(r)

	r.ReRender()
	first, _ := r.tree.Instance("a")

	r.ReRender()
	second, _ := r.tree.Instance("a")

	if first != second {
		t.Errorf("Instance under key 'a' should be reused")
	}
	if first.(*probe).mounted != 1 {
		t.Errorf("OnMount should run once, ran %d times", first.(*probe).mounted)
	}
	if r.tree.Len() != 3 {
		t.Errorf("Expected root and two children retained, got %d", r.tree.Len())
	}
	if got := r.last.Children[0].ComponentKey; got != "a" {
		t.Errorf("Expected child node key 'a', got '%s'", got)
	}
}

func TestTree_UnmountsMissingChildren(t *testing.T) {
	var log []string
	root := &parent{children: []string{"a", "b"}, log: &log}
	r := &treeRenderer{tree: NewTree()}
	r.tree.SetRoot(root)
	root.SetRenderer(r)
	r.ReRender()

	log = nil
	root.children = []string{"b"}
	r.ReRender()

	if _, ok := r.tree.Instance("a"); ok {
		t.Errorf("Instance 'a' should be removed")
	}
	want := []string{"params b", "unmount a"}
	if len(log) != len(want) || log[0] != want[0] || log[1] != want[1] {
		t.Errorf("Expected lifecycle %v, got %v", want, log)
	}
}

type reentrant struct {
	ComponentBase
	renders int
}

func (c *reentrant) Render(r Renderer) *vdom.VNode {
	c.renders++
	if c.renders == 1 {
		// a state change during render schedules one more pass
		c.StateHasChanged()
	}
	return vdom.Text("x")
}

func TestTree_ReRenderDuringRender(t *testing.T) {
	c := &reentrant{}
	r := &treeRenderer{tree: NewTree()}
	r.tree.SetRoot(c)
	c.SetRenderer(r)

	r.ReRender()

	if c.renders != 2 {
		t.Errorf("Expected exactly 2 passes, got %d", c.renders)
	}
	if r.last == nil {
		t.Errorf("Expected a rendered tree")
	}
}

type panicsOnMount struct {
	ComponentBase
}

func (c *panicsOnMount) OnMount() { panic("boom") }

func (c *panicsOnMount) Render(r Renderer) *vdom.VNode { return vdom.Text("ok") }

func TestTree_LifecyclePanicRecovered(t *testing.T) {
	c := &panicsOnMount{}
	r := &treeRenderer{tree: NewTree()}
	r.tree.SetRoot(c)
	c.SetRenderer(r)

	r.ReRender()

	if r.last == nil || r.last.Content != "ok" {
		t.Errorf("Render should continue after a recovered OnMount panic")
	}
}
