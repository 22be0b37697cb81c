package components

import (
	"testing"

	"github.com/vcrobe/pagebuilder/events"
	"github.com/vcrobe/pagebuilder/internal/builder"
	"github.com/vcrobe/pagebuilder/testcomponents"
	"github.com/vcrobe/pagebuilder/vdom"
)

// mustFind returns the first node with data-role role, failing the test otherwise.
func mustFind(t *testing.T, root *vdom.VNode, role string) *vdom.VNode {
	t.Helper()
	n := vdom.Find(root, vdom.ByAttr("data-role", role))
	if n == nil {
		t.Fatalf("No node with data-role %q in tree", role)
	}
	return n
}

func paletteItem(t *testing.T, root *vdom.VNode, kind builder.Kind) *vdom.VNode {
	t.Helper()
	for _, n := range vdom.FindAll(root, vdom.ByAttr("data-role", "palette-item")) {
		if n.Attr("data-kind") == string(kind) {
			return n
		}
	}
	t.Fatalf("No palette item for kind %q", kind)
	return nil
}

// dragKind performs a complete drag from the palette token of kind onto the canvas.
func dragKind(t *testing.T, r *testcomponents.TestRenderer, kind builder.Kind) {
	t.Helper()
	item := paletteItem(t, r.GetCurrentVDOM(), kind)
	vdom.Dispatch(item, events.DragStart, events.NewDrag(events.DragStart, ""))

	canvas := mustFind(t, r.GetCurrentVDOM(), "canvas")
	vdom.Dispatch(canvas, events.DragOver, events.NewDrag(events.DragOver, ""))
	canvas = mustFind(t, r.GetCurrentVDOM(), "canvas")
	vdom.Dispatch(canvas, events.Drop, events.NewDrag(events.Drop, string(kind)))

	// dragend fires on the source once the drop has been handled
	vdom.Dispatch(paletteItem(t, r.GetCurrentVDOM(), kind), events.DragEnd, events.NewDrag(events.DragEnd, ""))
}

func canvasItems(root *vdom.VNode) []*vdom.VNode {
	return vdom.FindAll(root, vdom.ByAttr("data-role", "canvas-item"))
}
