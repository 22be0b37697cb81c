package components

import (
	"github.com/vcrobe/pagebuilder/events"
	"github.com/vcrobe/pagebuilder/runtime"
	"github.com/vcrobe/pagebuilder/vdom"
)

// TextComponent is a single text field mirrored into a paragraph.
type TextComponent struct {
	runtime.ComponentBase

	Value string
}

func NewTextComponent() *TextComponent {
	return &TextComponent{}
}

func (c *TextComponent) HandleInput(e events.Event) {
	c.Value = e.Change().Value
	c.StateHasChanged()
}

func (c *TextComponent) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(nil,
		vdom.InputText(c.Value, map[string]any{
			"placeholder": "Enter text",
			"data-role":   "text-input",
			"style":       vdom.Style(map[string]string{"width": "100%", "margin-bottom": "10px"}),
		}).On(events.Input, c.HandleInput),
		vdom.Paragraph(c.Value, map[string]any{"data-role": "text-display"}),
	)
}
