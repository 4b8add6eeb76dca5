package form

import "sync"

// Session carries a one-shot preselection from the pricing table to the
// form that opens next, such as the package a visitor clicked on.
type Session struct {
	mu    sync.Mutex
	field string
	value string
	set   bool
}

// Preselect stores a choice for the next form, replacing any earlier one.
func (s *Session) Preselect(field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.field, s.value, s.set = field, value, true
}

// TakePreselection returns the stored choice once and clears it.
func (s *Session) TakePreselection() (field, value string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.set {
		return "", "", false
	}
	field, value = s.field, s.value
	s.field, s.value, s.set = "", "", false
	return field, value, true
}
