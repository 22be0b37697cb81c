// Package builder holds the page builder data model: the component kinds the
// palette offers and the append-only sequence of records placed on the canvas.
package builder

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vcrobe/pagebuilder/dnd"
)

// Kind identifies a placeable component type.
type Kind string

const (
	KindImage Kind = "image"
	KindText  Kind = "text"
)

// ItemButton is the drag type shared by palette tokens and the canvas.
const ItemButton dnd.ItemType = "button"

// ErrUnknownKind is returned for kinds other than image and text.
var ErrUnknownKind = errors.New("unknown component kind")

// Valid reports whether k is a kind the canvas can place.
func (k Kind) Valid() bool {
	return k == KindImage || k == KindText
}

// ParseKind converts drag data into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Payload is the data attached to a palette drag.
type Payload struct {
	Kind Kind
}

// PaletteToken describes one draggable palette entry.
type PaletteToken struct {
	Kind  Kind
	Label string
}

// DefaultPalette returns the palette entries in display order.
func DefaultPalette() []PaletteToken {
	return []PaletteToken{
		{Kind: KindImage, Label: "Image Component"},
		{Kind: KindText, Label: "Text Component"},
	}
}

// ComponentRecord is a component placed on the canvas. Its fields are set
// once at drop time; editing happens in the rendered instance and is never
// written back here.
type ComponentRecord struct {
	ID   uuid.UUID
	Kind Kind
	Src  string // image only
}

// Key is the renderer instance key for the record.
func (r ComponentRecord) Key() string {
	return "record/" + r.ID.String()
}

// NewRecord builds the default record for kind.
func NewRecord(kind Kind) (ComponentRecord, error) {
	switch kind {
	case KindImage:
		return ComponentRecord{ID: uuid.New(), Kind: KindImage, Src: ""}, nil
	case KindText:
		return ComponentRecord{ID: uuid.New(), Kind: KindText}, nil
	default:
		return ComponentRecord{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
