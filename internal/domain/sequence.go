package domain

// Sequence hands out task identifiers in creation order. Identifiers start
// at 1 and are never reused for the lifetime of the Sequence.
type Sequence struct {
	last int
}

// NewSequence creates a sequence whose first identifier is 1
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next identifier
func (s *Sequence) Next() int {
	s.last++
	return s.last
}

// Peek returns the last identifier handed out, 0 if none
func (s *Sequence) Peek() int {
	return s.last
}
