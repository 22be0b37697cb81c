package dnd

import "slices"

// Source is a registered drag source handle.
type Source[T any] struct {
	m        *Manager[T]
	id       int
	itemType ItemType
	item     T
}

var _ DragSource[struct{}] = (*Source[struct{}])(nil)

func (s *Source[T]) Type() ItemType { return s.itemType }

func (s *Source[T]) Item() T { return s.item }

// IsDragging reports whether this source started the active drag.
func (s *Source[T]) IsDragging() bool {
	return s.m.state.Get().Source == s.id
}

// BeginDrag starts a drag from this source.
func (s *Source[T]) BeginDrag() error {
	return s.m.BeginDrag(s)
}

// EndDrag ends the drag if this source started it. After a successful drop
// the drag is already over and EndDrag does nothing.
func (s *Source[T]) EndDrag() {
	if s.IsDragging() {
		s.m.EndDrag()
	}
}

// Unregister removes the source, cancelling its drag if one is active.
func (s *Source[T]) Unregister() {
	s.m.unregisterSource(s)
}

// Target is a registered drop target handle.
type Target[T any] struct {
	m      *Manager[T]
	id     int
	accept []ItemType
	onDrop func(item T)
}

var _ DropTarget[struct{}] = (*Target[struct{}])(nil)

// Accepts reports whether the target takes items of type it.
func (t *Target[T]) Accepts(it ItemType) bool {
	return slices.Contains(t.accept, it)
}

// IsOver reports whether a compatible drag is hovering over the target.
func (t *Target[T]) IsOver() bool {
	return t.m.state.Get().Target == t.id
}

func (t *Target[T]) Hover() { t.m.Hover(t) }

func (t *Target[T]) Leave() { t.m.Leave(t) }

// Drop delivers the active drag to this target. See Manager.Drop.
func (t *Target[T]) Drop() bool {
	return t.m.Drop(t)
}

// Unregister removes the target. Later drops on it deliver nothing.
func (t *Target[T]) Unregister() {
	t.m.unregisterTarget(t)
}
