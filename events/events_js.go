//go:build js && wasm

package events

import "syscall/js"

// FromJS converts a native browser event into an Event.
// dragenter, dragover and drop are default-prevented, otherwise the
// browser refuses the drop.
func FromJS(eventType string, v js.Value) Event {
	e := Event{Type: eventType}
	if !v.Truthy() {
		return e
	}

	switch eventType {
	case DragEnter, DragOver, Drop:
		v.Call("preventDefault")
	}

	if target := v.Get("target"); target.Truthy() {
		if value := target.Get("value"); value.Type() == js.TypeString {
			e.Value = value.String()
		}
	}

	if dt := v.Get("dataTransfer"); dt.Truthy() {
		if eventType == Drop {
			e.Data = dt.Call("getData", TransferFormat).String()
		}
		if eventType == DragStart {
			dt.Set("effectAllowed", "copy")
			e.setData = func(data string) {
				dt.Call("setData", TransferFormat, data)
			}
		}
	}

	return e
}
