package sets

// Set is an unordered collection of unique, comparable elements.
// Elements may be of any dynamic type; the zero value of *Set (nil)
// behaves as an empty set for all read operations.
type Set struct {
	m map[any]struct{}
}

// New builds a Set containing the given items. Duplicates collapse.
func New(items ...any) *Set {
	s := &Set{m: make(map[any]struct{}, len(items))}
	for _, item := range items {
		s.m[item] = struct{}{}
	}
	return s
}

// items returns the backing map, tolerating a nil receiver.
// Every read path goes through it so that nil means "empty set".
func (s *Set) items() map[any]struct{} {
	if s == nil {
		return nil
	}
	return s.m
}

// Add inserts item and reports whether the set was modified.
// The receiver must have been built with New.
func (s *Set) Add(item any) (modified bool) {
	if _, found := s.m[item]; !found {
		s.m[item] = struct{}{}
		modified = true
	}
	return modified
}

// Remove deletes item and reports whether it was present.
func (s *Set) Remove(item any) (modified bool) {
	if _, found := s.m[item]; found {
		delete(s.m, item)
		modified = true
	}
	return modified
}

// Has reports whether item is a member of s.
func (s *Set) Has(item any) bool {
	_, ok := s.items()[item]
	return ok
}

// Len returns the number of elements in s.
func (s *Set) Len() int {
	return len(s.items())
}

// Elems returns a snapshot slice of the elements in unspecified order.
func (s *Set) Elems() []any {
	elems := make([]any, 0, s.Len())
	for item := range s.items() {
		elems = append(elems, item)
	}
	return elems
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	out := &Set{m: make(map[any]struct{}, s.Len())}
	for item := range s.items() {
		out.m[item] = struct{}{}
	}
	return out
}

// Equal reports whether s and other contain exactly the same elements.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for item := range s.items() {
		if !other.Has(item) {
			return false
		}
	}
	return true
}
