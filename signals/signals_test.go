package signals

import "testing"

func TestSignal_SetNotifiesInOrder(t *testing.T) {
	s := NewSignal(1)

	var calls []string
	s.Subscribe(func() { calls = append(calls, "a") })
	s.Subscribe(func() { calls = append(calls, "b") })

	s.Set(2)

	if got := s.Get(); got != 2 {
		t.Errorf("Expected value 2, got %d", got)
	}
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Errorf("Expected subscribers called in order [a b], got %v", calls)
	}
}

func TestSignal_Unsubscribe(t *testing.T) {
	s := NewSignal("x")

	first, second := 0, 0
	unsubFirst := s.Subscribe(func() { first++ })
	s.Subscribe(func() { second++ })

	unsubFirst()
	unsubFirst() // second call is a no-op
	s.Set("y")

	if first != 0 {
		t.Errorf("Unsubscribed callback fired %d time(s)", first)
	}
	if second != 1 {
		t.Errorf("Expected remaining subscriber to fire once, fired %d time(s)", second)
	}
}

func TestSignal_Update(t *testing.T) {
	s := NewSignal([]int{1})

	s.Update(func(cur []int) []int { return append(cur, 2) })

	if got := s.Get(); len(got) != 2 || got[1] != 2 {
		t.Errorf("Expected [1 2], got %v", got)
	}
}
