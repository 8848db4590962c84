package booking

import (
	"readycleans/models"
)

// Listener is called with the new selection after every change.
type Listener func(models.BookingSelection)

// Store owns one in-progress BookingSelection and the Sequencer that drives
// the wizard over it. All mutation goes through Update or Reset.
//
// A Store is meant for a single wizard and is not safe for concurrent use.
type Store struct {
	selection models.BookingSelection
	seq       *Sequencer
	listeners map[int]Listener
	nextID    int
}

func NewStore() *Store {
	return &Store{
		selection: models.DefaultBookingSelection(),
		seq:       NewSequencer(),
		listeners: make(map[int]Listener),
	}
}

// Read returns a copy of the current selection.
func (s *Store) Read() models.BookingSelection {
	return s.selection.Clone()
}

// Update merges p into the selection and notifies listeners. Fields set on
// later steps survive navigation back to earlier ones.
func (s *Store) Update(p models.BookingPatch) {
	s.selection = p.Apply(s.selection)
	s.notify()
}

// Reset restores every field to its default and rewinds the wizard.
func (s *Store) Reset() {
	s.selection = models.DefaultBookingSelection()
	s.seq.Reset()
	s.notify()
}

// Sequencer exposes the step state machine attached to this store.
func (s *Store) Sequencer() *Sequencer {
	return s.seq
}

// Subscribe registers fn and returns a func that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		delete(s.listeners, id)
	}
}

func (s *Store) notify() {
	for _, fn := range s.listeners {
		fn(s.selection.Clone())
	}
}
