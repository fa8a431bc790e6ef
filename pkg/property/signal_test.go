package property

import "testing"

func TestSignal_AddListenerAndEmit(t *testing.T) {
	s := NewSignal()
	received := 0
	s.AddListener(func(Change) { received++ })
	s.AddListener(func(Change) { received++ })

	s.emit(Change{})

	if received != 2 {
		t.Errorf("Expected both listeners to fire, got %d", received)
	}
}

func TestSignal_Unsubscribe(t *testing.T) {
	s := NewSignal()
	received := 0
	unsub := s.AddListener(func(Change) { received++ })

	if s.ListenerCount() != 1 {
		t.Errorf("Expected 1 listener, got %d", s.ListenerCount())
	}

	unsub()

	if s.ListenerCount() != 0 {
		t.Errorf("Expected 0 listeners after unsubscribe, got %d", s.ListenerCount())
	}

	s.emit(Change{})
	if received != 0 {
		t.Errorf("Unsubscribed listener must not fire, got %d", received)
	}
}

func TestSignal_UnsubscribeTwiceIsSafe(t *testing.T) {
	s := NewSignal()
	unsub := s.AddListener(func(Change) {})

	unsub()
	unsub()

	if s.ListenerCount() != 0 {
		t.Errorf("Expected 0 listeners, got %d", s.ListenerCount())
	}
}
