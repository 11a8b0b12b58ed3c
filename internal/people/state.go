package people

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("person not found")
	ErrCorruptState = errors.New("corrupt application state")
)

// State is the persisted application aggregate: the committed records plus
// the add-dialog mode flag and its edit buffer.
type State struct {
	People     []Person `json:"people"`
	DialogOpen bool     `json:"add_person_modal_open"`
	Draft      Person   `json:"mut_person"`
}

// NewState returns an empty state with a closed dialog and default draft.
func NewState() *State {
	return &State{People: []Person{}, Draft: Default()}
}

// Add appends p. Any field values are accepted.
func (s *State) Add(p Person) {
	s.People = append(s.People, p)
}

// FindIndex returns the position of the first person match accepts.
func (s *State) FindIndex(match func(Person) bool) (int, bool) {
	for i, p := range s.People {
		if match(p) {
			return i, true
		}
	}
	return -1, false
}

// IndexOf returns the lowest index structurally equal to p.
func (s *State) IndexOf(p Person) (int, bool) {
	return s.FindIndex(p.Equal)
}

// RemoveAt deletes the person at i, keeping the order of the rest.
func (s *State) RemoveAt(i int) (Person, error) {
	if i < 0 || i >= len(s.People) {
		return Person{}, fmt.Errorf("remove index %d of %d: %w", i, len(s.People), ErrNotFound)
	}
	removed := s.People[i]
	s.People = append(s.People[:i], s.People[i+1:]...)
	return removed, nil
}

// Snapshot copies the record list so callers can iterate while mutating s.
func (s *State) Snapshot() []Person {
	out := make([]Person, len(s.People))
	copy(out, s.People)
	return out
}

// Reset closes the dialog and drops the draft back to defaults.
func (s *State) Reset() {
	s.DialogOpen = false
	s.Draft = Default()
}

// UnmarshalJSON keeps NewState values for any field missing from data.
func (s *State) UnmarshalJSON(data []byte) error {
	type plain State
	out := plain(*NewState())
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	if out.People == nil {
		out.People = []Person{}
	}
	*s = State(out)
	return nil
}

// Encode serializes s as a single blob.
func Encode(s *State) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// Decode parses a blob written by Encode. Unknown fields are ignored and
// missing ones take their defaults.
func Decode(data []byte) (*State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return &s, nil
}
