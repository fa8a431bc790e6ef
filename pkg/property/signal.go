package property

// Change describes one committed property mutation. It is delivered to
// [Signal] listeners and [Observer] owners after the value table was updated
// and after the descriptor's Changed callback ran.
type Change struct {
	// Descriptor identifies which property changed.
	Descriptor Key
	// Owner is the object whose slot changed.
	Owner any
	// Old and New are the compared values; New is already coerced.
	Old any
	New any
}

// Observer is implemented by owner types that want to hear about changes to
// any of their attached properties. It is consulted only for descriptors
// without a configured Signal.
type Observer interface {
	PropertyChanged(Change)
}

// Signal is a bindable change-notification channel. One Signal is shared by
// every owner of the descriptors it is attached to; listeners receive the
// owner in the [Change] payload.
//
// Signal is not thread-safe. Like the rest of the package it assumes a
// single logical thread of execution.
type Signal struct {
	listeners      map[int]func(Change)
	nextListenerID int
}

// NewSignal creates a signal with no listeners.
func NewSignal() *Signal {
	return &Signal{listeners: make(map[int]func(Change))}
}

// AddListener adds a callback that fires for every emitted change.
// Returns an unsubscribe function.
func (s *Signal) AddListener(fn func(Change)) func() {
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = fn
	return func() {
		delete(s.listeners, id)
	}
}

// ListenerCount returns the number of registered listeners.
func (s *Signal) ListenerCount() int {
	return len(s.listeners)
}

func (s *Signal) emit(change Change) {
	for _, listener := range s.listeners {
		listener(change)
	}
}
