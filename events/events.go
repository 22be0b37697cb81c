package events

// DOM event names bound through vdom.VNode.On.
const (
	Click     = "click"
	Input     = "input"
	DragStart = "dragstart"
	DragEnd   = "dragend"
	DragEnter = "dragenter"
	DragOver  = "dragover"
	DragLeave = "dragleave"
	Drop      = "drop"
)

// TransferFormat is the dataTransfer format used for drag payloads.
const TransferFormat = "text/plain"

// Event is the platform-neutral view of a DOM event handed to Go handlers.
// This type has no build tags so components and their tests share it.
type Event struct {
	Type string

	// Value holds target.value for input and change events.
	Value string

	// Data holds dataTransfer.getData("text/plain") for drag events.
	Data string

	setData func(data string)
}

// ChangeEventArgs carries the new value of a form field.
type ChangeEventArgs struct {
	Value string
}

// DragEventArgs carries the data attached to a drag gesture.
type DragEventArgs struct {
	Data string
}

// Change returns the change view of the event.
func (e Event) Change() ChangeEventArgs {
	return ChangeEventArgs{Value: e.Value}
}

// Drag returns the drag view of the event.
func (e Event) Drag() DragEventArgs {
	return DragEventArgs{Data: e.Data}
}

// SetTransferData attaches data to the native drag operation.
// It is a no-op for events that did not come from a browser.
func (e Event) SetTransferData(data string) {
	if e.setData != nil {
		e.setData(data)
	}
}

// NewInput builds an input event with the given field value.
func NewInput(value string) Event {
	return Event{Type: Input, Value: value}
}

// NewDrag builds a drag event of the given type carrying data.
func NewDrag(eventType, data string) Event {
	return Event{Type: eventType, Data: data}
}
