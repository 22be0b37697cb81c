//go:build js && wasm

package main

import (
	"github.com/vcrobe/pagebuilder/console"
	"github.com/vcrobe/pagebuilder/internal/components"
	"github.com/vcrobe/pagebuilder/runtime"
)

func main() {
	// 1. Create the root view with an empty canvas
	app := components.NewApp()

	// 2. Create the Renderer mounted at #app and attach the root
	renderer := runtime.NewRenderer("#app")
	renderer.SetCurrentComponent(app)

	// 3. Trigger the first render; later renders come from StateHasChanged
	renderer.RenderRoot()
	console.Log("pagebuilder mounted")

	// Keep the Go program running
	select {}
}
