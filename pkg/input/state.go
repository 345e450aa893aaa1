// Package input tracks which keys are currently held down.
package input

// SpecialKey identifies a non-printable key such as an arrow or function key
type SpecialKey int

const (
	SpecialUnknown SpecialKey = iota
	SpecialUp
	SpecialDown
	SpecialLeft
	SpecialRight
	SpecialPageUp
	SpecialPageDown
	SpecialHome
	SpecialEnd
	SpecialInsert
	SpecialF1
	SpecialF2
	SpecialF3
	SpecialF4
	SpecialF5
	SpecialF6
	SpecialF7
	SpecialF8
	SpecialF9
	SpecialF10
	SpecialF11
	SpecialF12
)

// Printable keys with no visible glyph
const (
	KeyBackspace rune = '\b'
	KeyTab       rune = '\t'
	KeyEnter     rune = '\r'
	KeyEscape    rune = '\x1b'
)

// State holds the held flag of every printable and special key seen so far.
// Keys that were never reported are not held.
type State struct {
	keys    map[rune]bool
	special map[SpecialKey]bool
}

// NewState creates an empty input state
func NewState() *State {
	return &State{
		keys:    make(map[rune]bool),
		special: make(map[SpecialKey]bool),
	}
}

// OnKeyDown marks a printable key as held
func (s *State) OnKeyDown(key rune) {
	s.keys[key] = true
}

// OnKeyUp marks a printable key as released
func (s *State) OnKeyUp(key rune) {
	s.keys[key] = false
}

// OnSpecialDown marks a special key as held
func (s *State) OnSpecialDown(code SpecialKey) {
	s.special[code] = true
}

// OnSpecialUp marks a special key as released
func (s *State) OnSpecialUp(code SpecialKey) {
	s.special[code] = false
}

// IsHeld reports whether a printable key is currently held
func (s *State) IsHeld(key rune) bool {
	return s.keys[key]
}

// IsSpecialHeld reports whether a special key is currently held
func (s *State) IsSpecialHeld(code SpecialKey) bool {
	return s.special[code]
}

// Reset releases every key, e.g. after the window lost focus and release events were missed
func (s *State) Reset() {
	clear(s.keys)
	clear(s.special)
}
