package components

import (
	"github.com/vcrobe/pagebuilder/console"
	"github.com/vcrobe/pagebuilder/dnd"
	"github.com/vcrobe/pagebuilder/events"
	"github.com/vcrobe/pagebuilder/internal/builder"
	"github.com/vcrobe/pagebuilder/runtime"
	"github.com/vcrobe/pagebuilder/vdom"
)

// PaletteItem is one draggable token of the palette.
type PaletteItem struct {
	runtime.ComponentBase

	Token   builder.PaletteToken
	Manager *dnd.Manager[builder.Payload]

	source *dnd.Source[builder.Payload]
}

func (c *PaletteItem) OnMount() {
	c.source = c.Manager.RegisterSource(builder.ItemButton, builder.Payload{Kind: c.Token.Kind})
}

func (c *PaletteItem) OnUnmount() {
	if c.source != nil {
		c.source.Unregister()
	}
}

// IsDragging reports whether this token started the active drag.
func (c *PaletteItem) IsDragging() bool {
	return c.source != nil && c.source.IsDragging()
}

// HandleDragStart begins a drag carrying this token's kind.
func (c *PaletteItem) HandleDragStart(e events.Event) {
	e.SetTransferData(string(c.Token.Kind))
	if err := c.source.BeginDrag(); err != nil {
		console.Warn("drag start ignored:", err.Error())
	}
}

// HandleDragEnd ends the drag. After a drop on the canvas this is a no-op.
func (c *PaletteItem) HandleDragEnd(e events.Event) {
	c.source.EndDrag()
}

func (c *PaletteItem) Render(r runtime.Renderer) *vdom.VNode {
	opacity := "1"
	if c.IsDragging() {
		opacity = "0.5"
	}

	node := vdom.NewVNode("div", map[string]any{
		"draggable": "true",
		"data-role": "palette-item",
		"data-kind": string(c.Token.Kind),
		"style": vdom.Style(map[string]string{
			"opacity":          opacity,
			"cursor":           "move",
			"padding":          "10px",
			"border":           "1px solid black",
			"margin-bottom":    "10px",
			"background-color": "#f0f0f0",
		}),
	}, nil, c.Token.Label)

	return node.
		On(events.DragStart, c.HandleDragStart).
		On(events.DragEnd, c.HandleDragEnd)
}

// Palette renders the fixed list of palette tokens.
type Palette struct {
	runtime.ComponentBase

	Tokens  []builder.PaletteToken
	Manager *dnd.Manager[builder.Payload]
}

func (c *Palette) Render(r runtime.Renderer) *vdom.VNode {
	items := make([]*vdom.VNode, 0, len(c.Tokens))
	for _, tok := range c.Tokens {
		items = append(items, r.RenderChild("palette/"+string(tok.Kind), &PaletteItem{
			Token:   tok,
			Manager: c.Manager,
		}))
	}
	return vdom.Div(map[string]any{"data-role": "palette"}, items...)
}
