package components

import (
	"github.com/vcrobe/pagebuilder/events"
	"github.com/vcrobe/pagebuilder/runtime"
	"github.com/vcrobe/pagebuilder/vdom"
)

// Image defaults for a freshly placed instance.
const (
	DefaultImageURL    = "https://picsum.photos/300/300"
	DefaultImageWidth  = "300"
	DefaultImageHeight = "300"
)

// ImageMode is the edit state of an ImageComponent.
type ImageMode int

const (
	Viewing ImageMode = iota
	Editing
)

func (m ImageMode) String() string {
	if m == Editing {
		return "editing"
	}
	return "viewing"
}

// ImageComponent previews an image and, while editing, exposes its URL and
// pixel size as form fields. Width and height are raw strings and are not
// validated.
type ImageComponent struct {
	runtime.ComponentBase

	URL    string
	Width  string
	Height string
	Mode   ImageMode
}

// NewImageComponent returns an instance in the Viewing state with default fields.
func NewImageComponent() *ImageComponent {
	return &ImageComponent{
		URL:    DefaultImageURL,
		Width:  DefaultImageWidth,
		Height: DefaultImageHeight,
		Mode:   Viewing,
	}
}

// IsEditing reports whether the edit fields are shown.
func (c *ImageComponent) IsEditing() bool {
	return c.Mode == Editing
}

// ToggleEditing flips between Viewing and Editing.
func (c *ImageComponent) ToggleEditing() {
	if c.Mode == Editing {
		c.Mode = Viewing
	} else {
		c.Mode = Editing
	}
	c.StateHasChanged()
}

func (c *ImageComponent) HandleURLInput(e events.Event) {
	c.URL = e.Change().Value
	c.StateHasChanged()
}

func (c *ImageComponent) HandleWidthInput(e events.Event) {
	c.Width = e.Change().Value
	c.StateHasChanged()
}

func (c *ImageComponent) HandleHeightInput(e events.Event) {
	c.Height = e.Change().Value
	c.StateHasChanged()
}

func (c *ImageComponent) Render(r runtime.Renderer) *vdom.VNode {
	preview := vdom.Img(c.URL, map[string]any{
		"alt":       "Preview",
		"data-role": "image-preview",
		"style": vdom.Style(map[string]string{
			"width":  c.Width + "px",
			"height": c.Height + "px",
			"border": "1px solid #ddd",
			"cursor": "pointer",
		}),
	}).On(events.Click, func(events.Event) { c.ToggleEditing() })

	if !c.IsEditing() {
		return vdom.Div(map[string]any{"data-mode": c.Mode.String()}, preview)
	}

	urlField := vdom.Div(map[string]any{"style": "margin-bottom: 10px;"},
		vdom.Label("Image URL: ", nil),
		vdom.InputText(c.URL, map[string]any{
			"data-role": "image-url",
			"style":     "width: 100%;",
		}).On(events.Input, c.HandleURLInput),
	)

	sizeFields := vdom.Div(nil,
		vdom.Label("Width: ", nil),
		vdom.InputNumber(c.Width, map[string]any{
			"data-role": "image-width",
			"style":     vdom.Style(map[string]string{"width": "100px", "margin-right": "10px"}),
		}).On(events.Input, c.HandleWidthInput),
		vdom.Label("Height: ", nil),
		vdom.InputNumber(c.Height, map[string]any{
			"data-role": "image-height",
			"style":     "width: 100px;",
		}).On(events.Input, c.HandleHeightInput),
	)

	return vdom.Div(map[string]any{"data-mode": c.Mode.String()},
		preview,
		vdom.Div(map[string]any{"style": "margin-top: 10px;"}, urlField, sizeFields),
	)
}
