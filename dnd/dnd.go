// Package dnd implements the drag-and-drop monitor used by components.
//
// A Manager tracks at most one active drag. Sources begin a drag carrying an
// item; targets that accept the item's type may be hovered and dropped on.
// A successful drop hands the item to the target's callback exactly once and
// ends the drag. A drag that ends anywhere else delivers nothing.
//
// The Manager has no build tags. Browser events are mapped onto it by the
// components that own the handles, and tests drive it directly.
package dnd

import (
	"errors"
	"slices"

	"github.com/vcrobe/pagebuilder/signals"
)

// ItemType tags drag items so targets can declare what they accept.
type ItemType string

var (
	// ErrDragInProgress is returned by BeginDrag while another drag is active.
	ErrDragInProgress = errors.New("dnd: drag already in progress")
	// ErrUnknownHandle is returned for handles that are not registered.
	ErrUnknownHandle = errors.New("dnd: handle not registered")
)

// DragSource is the capability a draggable element holds.
type DragSource[T any] interface {
	Type() ItemType
	Item() T
	IsDragging() bool
	BeginDrag() error
	EndDrag()
}

// DropTarget is the capability a drop region holds.
type DropTarget[T any] interface {
	Accepts(t ItemType) bool
	IsOver() bool
	Hover()
	Leave()
	Drop() bool
}

// State is the observable monitor state. Zero ids mean none.
type State struct {
	Source int
	Target int
}

// Manager coordinates drags between registered sources and targets.
// It is driven from a single event loop and is not safe for concurrent use.
type Manager[T any] struct {
	nextID  int
	sources map[int]*Source[T]
	targets map[int]*Target[T]
	item    T
	state   *signals.Signal[State]
}

// NewManager creates a Manager with no registrations.
func NewManager[T any]() *Manager[T] {
	return &Manager[T]{
		sources: make(map[int]*Source[T]),
		targets: make(map[int]*Target[T]),
		state:   signals.NewSignal(State{}),
	}
}

// RegisterSource registers a drag source producing item under itemType.
func (m *Manager[T]) RegisterSource(itemType ItemType, item T) *Source[T] {
	m.nextID++
	s := &Source[T]{m: m, id: m.nextID, itemType: itemType, item: item}
	m.sources[s.id] = s
	return s
}

// RegisterTarget registers a drop target accepting the given types. onDrop
// receives the item of every successful drop on the target.
func (m *Manager[T]) RegisterTarget(onDrop func(item T), accept ...ItemType) *Target[T] {
	m.nextID++
	t := &Target[T]{m: m, id: m.nextID, accept: slices.Clone(accept), onDrop: onDrop}
	m.targets[t.id] = t
	return t
}

// OnChange registers fn to run whenever the dragging or hover state changes.
func (m *Manager[T]) OnChange(fn func()) (unsubscribe func()) {
	return m.state.Subscribe(fn)
}

// State returns the current monitor state.
func (m *Manager[T]) State() State {
	return m.state.Get()
}

// Dragging reports whether a drag is active.
func (m *Manager[T]) Dragging() bool {
	return m.state.Get().Source != 0
}

// BeginDrag starts a drag from s.
func (m *Manager[T]) BeginDrag(s *Source[T]) error {
	if s == nil || m.sources[s.id] != s {
		return ErrUnknownHandle
	}
	if m.Dragging() {
		return ErrDragInProgress
	}
	m.item = s.item
	m.state.Set(State{Source: s.id})
	return nil
}

// Hover marks t as the hovered target if it accepts the active drag.
func (m *Manager[T]) Hover(t *Target[T]) {
	st := m.state.Get()
	if st.Source == 0 || t == nil || m.targets[t.id] != t {
		return
	}
	if !t.Accepts(m.activeType()) || st.Target == t.id {
		return
	}
	m.state.Set(State{Source: st.Source, Target: t.id})
}

// Leave clears the hover state if t is the hovered target.
func (m *Manager[T]) Leave(t *Target[T]) {
	st := m.state.Get()
	if t == nil || st.Target != t.id {
		return
	}
	m.state.Set(State{Source: st.Source})
}

// Drop ends the active drag on t and delivers the item to t's callback.
// It returns false, invoking nothing, when no drag is active, t is not
// registered, or t does not accept the item type.
func (m *Manager[T]) Drop(t *Target[T]) bool {
	st := m.state.Get()
	if st.Source == 0 || t == nil || m.targets[t.id] != t {
		return false
	}
	if !t.Accepts(m.activeType()) {
		return false
	}

	item := m.item
	m.reset()
	if t.onDrop != nil {
		t.onDrop(item)
	}
	return true
}

// EndDrag ends the active drag without delivering it anywhere.
func (m *Manager[T]) EndDrag() {
	if !m.Dragging() {
		return
	}
	m.reset()
}

func (m *Manager[T]) activeType() ItemType {
	if s, ok := m.sources[m.state.Get().Source]; ok {
		return s.itemType
	}
	return ""
}

func (m *Manager[T]) reset() {
	var zero T
	m.item = zero
	m.state.Set(State{})
}

func (m *Manager[T]) unregisterSource(s *Source[T]) {
	if m.sources[s.id] != s {
		return
	}
	if m.state.Get().Source == s.id {
		m.reset()
	}
	delete(m.sources, s.id)
}

func (m *Manager[T]) unregisterTarget(t *Target[T]) {
	if m.targets[t.id] != t {
		return
	}
	delete(m.targets, t.id)
	m.Leave(t)
}
