// Package components contains the page builder view: the palette of
// draggable tokens, the canvas drop region and the editable instances.
package components

import (
	"github.com/vcrobe/pagebuilder/dnd"
	"github.com/vcrobe/pagebuilder/internal/builder"
	"github.com/vcrobe/pagebuilder/runtime"
	"github.com/vcrobe/pagebuilder/vdom"
)

// App is the root view. It owns the canvas sequence and the drag monitor
// and re-renders whenever either changes.
type App struct {
	runtime.ComponentBase

	Sequence *builder.Sequence
	Manager  *dnd.Manager[builder.Payload]

	unsubscribe []func()
}

// NewApp returns an App with an empty canvas.
func NewApp() *App {
	return &App{
		Sequence: builder.NewSequence(),
		Manager:  dnd.NewManager[builder.Payload](),
	}
}

func (c *App) OnMount() {
	c.unsubscribe = append(c.unsubscribe,
		c.Sequence.Subscribe(c.StateHasChanged),
		c.Manager.OnChange(c.StateHasChanged),
	)
}

func (c *App) OnUnmount() {
	for _, fn := range c.unsubscribe {
		fn()
	}
	c.unsubscribe = nil
}

func (c *App) Render(r runtime.Renderer) *vdom.VNode {
	palette := r.RenderChild("palette", &Palette{
		Tokens:  builder.DefaultPalette(),
		Manager: c.Manager,
	})

	canvas := r.RenderChild("canvas", &Canvas{
		Sequence: c.Sequence,
		Manager:  c.Manager,
	})

	return vdom.Div(map[string]any{"style": "display: flex;"},
		vdom.Div(map[string]any{
			"style": vdom.Style(map[string]string{
				"width":        "20%",
				"padding":      "10px",
				"border-right": "1px solid #ddd",
				"overflow-y":   "auto",
			}),
		}, palette),
		vdom.Div(map[string]any{"style": "flex: 1; padding: 10px;"}, canvas),
	)
}
