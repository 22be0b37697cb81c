package builder

import (
	"github.com/vcrobe/pagebuilder/signals"
)

// Sequence is the ordered, append-only list of records on the canvas.
// Records are never removed or reordered and duplicates are allowed.
type Sequence struct {
	records *signals.Signal[[]ComponentRecord]
}

// NewSequence returns an empty sequence.
func NewSequence() *Sequence {
	return &Sequence{records: signals.NewSignal[[]ComponentRecord](nil)}
}

// Append adds the default record for kind. Unknown kinds are ignored and
// reported with ok == false; subscribers are not notified for them.
func (s *Sequence) Append(kind Kind) (rec ComponentRecord, ok bool) {
	rec, err := NewRecord(kind)
	if err != nil {
		return ComponentRecord{}, false
	}

	s.records.Update(func(cur []ComponentRecord) []ComponentRecord {
		next := make([]ComponentRecord, len(cur), len(cur)+1)
		copy(next, cur)
		return append(next, rec)
	})
	return rec, true
}

// Len returns the number of records.
func (s *Sequence) Len() int {
	return len(s.records.Get())
}

// At returns the record at position i.
func (s *Sequence) At(i int) (ComponentRecord, bool) {
	recs := s.records.Get()
	if i < 0 || i >= len(recs) {
		return ComponentRecord{}, false
	}
	return recs[i], true
}

// Records returns a snapshot of the records in insertion order.
func (s *Sequence) Records() []ComponentRecord {
	recs := s.records.Get()
	out := make([]ComponentRecord, len(recs))
	copy(out, recs)
	return out
}

// Kinds returns the kind of every record in insertion order.
func (s *Sequence) Kinds() []Kind {
	recs := s.records.Get()
	out := make([]Kind, len(recs))
	for i, r := range recs {
		out[i] = r.Kind
	}
	return out
}

// Subscribe registers fn to run after every successful Append.
func (s *Sequence) Subscribe(fn func()) (unsubscribe func()) {
	return s.records.Subscribe(fn)
}
