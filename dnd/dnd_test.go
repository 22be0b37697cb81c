package dnd

import (
	"errors"
	"testing"
)

const button ItemType = "button"

type item struct{ kind string }

func TestManager_DropDeliversExactlyOnce(t *testing.T) {
	m := NewManager[item]()
	src := m.RegisterSource(button, item{kind: "image"})

	var got []item
	tgt := m.RegisterTarget(func(it item) { got = append(got, it) }, button)

	if err := src.BeginDrag(); err != nil {
		t.Fatalf("BeginDrag failed: %v", err)
	}
	if !src.IsDragging() {
		t.Errorf("Expected source to report dragging")
	}

	if !tgt.Drop() {
		t.Fatalf("Expected first drop to be delivered")
	}
	if tgt.Drop() {
		t.Errorf("Second drop of the same drag must not be delivered")
	}
	src.EndDrag()

	if len(got) != 1 || got[0].kind != "image" {
		t.Errorf("Expected exactly one delivery of image, got %v", got)
	}
	if m.Dragging() {
		t.Errorf("Drag should be over after drop")
	}
}

func TestManager_NoDeliveryOnMiss(t *testing.T) {
	m := NewManager[item]()
	src := m.RegisterSource(button, item{kind: "text"})

	calls := 0
	tgt := m.RegisterTarget(func(item) { calls++ }, button)

	if err := src.BeginDrag(); err != nil {
		t.Fatalf("BeginDrag failed: %v", err)
	}
	tgt.Hover()
	tgt.Leave()
	src.EndDrag()

	if tgt.Drop() {
		t.Errorf("Drop after a cancelled drag must not be delivered")
	}
	if calls != 0 {
		t.Errorf("Expected no callback, got %d", calls)
	}
}

func TestManager_DropWithoutDrag(t *testing.T) {
	m := NewManager[item]()
	calls := 0
	tgt := m.RegisterTarget(func(item) { calls++ }, button)

	if tgt.Drop() {
		t.Errorf("Drop with no active drag must be refused")
	}
	if calls != 0 {
		t.Errorf("Expected no callback, got %d", calls)
	}
}

func TestManager_TargetRejectsOtherTypes(t *testing.T) {
	m := NewManager[item]()
	src := m.RegisterSource("card", item{kind: "image"})
	calls := 0
	tgt := m.RegisterTarget(func(item) { calls++ }, button)

	if err := src.BeginDrag(); err != nil {
		t.Fatalf("BeginDrag failed: %v", err)
	}
	tgt.Hover()
	if tgt.IsOver() {
		t.Errorf("Incompatible drag must not highlight the target")
	}
	if tgt.Drop() {
		t.Errorf("Incompatible drop must be refused")
	}
	if !m.Dragging() {
		t.Errorf("Refused drop must leave the drag active")
	}
	if calls != 0 {
		t.Errorf("Expected no callback, got %d", calls)
	}
}

func TestManager_HoverState(t *testing.T) {
	m := NewManager[item]()
	src := m.RegisterSource(button, item{})
	a := m.RegisterTarget(nil, button)
	b := m.RegisterTarget(nil, button)

	changes := 0
	m.OnChange(func() { changes++ })

	a.Hover()
	if a.IsOver() {
		t.Errorf("Hover without an active drag must be ignored")
	}

	_ = src.BeginDrag()
	a.Hover()
	a.Hover() // unchanged, no notification
	if !a.IsOver() || b.IsOver() {
		t.Errorf("Expected only target a to be hovered")
	}

	b.Leave() // not hovered, ignored
	if !a.IsOver() {
		t.Errorf("Leave on another target must not clear hover")
	}

	a.Leave()
	if a.IsOver() {
		t.Errorf("Expected hover cleared after Leave")
	}

	// begin, hover a, leave a
	if changes != 3 {
		t.Errorf("Expected 3 state changes, got %d", changes)
	}
}

func TestManager_SingleActiveDrag(t *testing.T) {
	m := NewManager[item]()
	first := m.RegisterSource(button, item{kind: "image"})
	second := m.RegisterSource(button, item{kind: "text"})

	if err := first.BeginDrag(); err != nil {
		t.Fatalf("BeginDrag failed: %v", err)
	}
	if err := second.BeginDrag(); !errors.Is(err, ErrDragInProgress) {
		t.Errorf("Expected ErrDragInProgress, got %v", err)
	}

	second.EndDrag()
	if !first.IsDragging() {
		t.Errorf("EndDrag from a source that is not dragging must not cancel the drag")
	}
}

func TestManager_Unregister(t *testing.T) {
	m := NewManager[item]()
	src := m.RegisterSource(button, item{kind: "image"})
	calls := 0
	tgt := m.RegisterTarget(func(item) { calls++ }, button)

	tgt.Unregister()
	_ = src.BeginDrag()
	if tgt.Drop() {
		t.Errorf("Unregistered target must not receive drops")
	}

	src.Unregister()
	if m.Dragging() {
		t.Errorf("Unregistering the dragging source must cancel the drag")
	}
	if err := src.BeginDrag(); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("Expected ErrUnknownHandle, got %v", err)
	}
	if calls != 0 {
		t.Errorf("Expected no callback, got %d", calls)
	}
}
