package components

import (
	"github.com/vcrobe/pagebuilder/console"
	"github.com/vcrobe/pagebuilder/dnd"
	"github.com/vcrobe/pagebuilder/events"
	"github.com/vcrobe/pagebuilder/internal/builder"
	"github.com/vcrobe/pagebuilder/runtime"
	"github.com/vcrobe/pagebuilder/vdom"
)

// Canvas is the drop region. Every accepted drop appends a record to the
// sequence and the canvas renders one instance per record.
type Canvas struct {
	runtime.ComponentBase

	Sequence *builder.Sequence
	Manager  *dnd.Manager[builder.Payload]

	target *dnd.Target[builder.Payload]
}

func (c *Canvas) OnMount() {
	c.target = c.Manager.RegisterTarget(c.place, builder.ItemButton)
}

func (c *Canvas) OnUnmount() {
	if c.target != nil {
		c.target.Unregister()
	}
}

// IsOver reports whether a compatible drag hovers over the canvas.
func (c *Canvas) IsOver() bool {
	return c.target != nil && c.target.IsOver()
}

// place is the drop callback. Kinds other than image and text are dropped silently.
func (c *Canvas) place(p builder.Payload) {
	if _, ok := c.Sequence.Append(p.Kind); !ok {
		console.Log("canvas: ignoring drop of kind", string(p.Kind))
	}
}

func (c *Canvas) HandleDragOver(e events.Event) {
	c.target.Hover()
}

func (c *Canvas) HandleDragLeave(e events.Event) {
	c.target.Leave()
}

func (c *Canvas) HandleDrop(e events.Event) {
	c.target.Drop()
}

func (c *Canvas) Render(r runtime.Renderer) *vdom.VNode {
	background := "white"
	if c.IsOver() {
		background = "#f7f7f7"
	}

	records := c.Sequence.Records()
	children := make([]*vdom.VNode, 0, len(records))
	for _, rec := range records {
		children = append(children, vdom.Div(map[string]any{
			"data-role": "canvas-item",
			"data-kind": string(rec.Kind),
			"style": vdom.Style(map[string]string{
				"margin":  "10px",
				"padding": "10px",
				"border":  "1px solid black",
			}),
		}, renderRecord(r, rec)))
	}

	node := vdom.Div(map[string]any{
		"data-role": "canvas",
		"style": vdom.Style(map[string]string{
			"width":            "100%",
			"height":           "100%",
			"min-height":       "400px",
			"border":           "2px dashed #ddd",
			"background-color": background,
		}),
	}, children...)

	return node.
		On(events.DragEnter, c.HandleDragOver).
		On(events.DragOver, c.HandleDragOver).
		On(events.DragLeave, c.HandleDragLeave).
		On(events.Drop, c.HandleDrop)
}

// renderRecord renders the instance for rec. A fresh component is passed on
// every render; the renderer keeps the first one it saw for the record's key.
func renderRecord(r runtime.Renderer, rec builder.ComponentRecord) *vdom.VNode {
	switch rec.Kind {
	case builder.KindImage:
		return r.RenderChild(rec.Key(), NewImageComponent())
	default:
		return r.RenderChild(rec.Key(), NewTextComponent())
	}
}
