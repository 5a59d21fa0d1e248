package sets

// Union returns a new set with every element of s and other.
func (s *Set) Union(other *Set) *Set {
	out := &Set{m: make(map[any]struct{}, s.Len()+other.Len())}
	for item := range s.items() {
		out.m[item] = struct{}{}
	}
	for item := range other.items() {
		out.m[item] = struct{}{}
	}
	return out
}

// Intersect returns a new set with the elements present in both s and other.
func (s *Set) Intersect(other *Set) *Set {
	// Iterate the smaller operand.
	small, large := s, other
	if large.Len() < small.Len() {
		small, large = large, small
	}
	out := &Set{m: make(map[any]struct{}, small.Len())}
	for item := range small.items() {
		if large.Has(item) {
			out.m[item] = struct{}{}
		}
	}
	return out
}

// Difference returns a new set with the elements of s that are not in other.
func (s *Set) Difference(other *Set) *Set {
	out := &Set{m: make(map[any]struct{}, s.Len())}
	for item := range s.items() {
		if !other.Has(item) {
			out.m[item] = struct{}{}
		}
	}
	return out
}

// SymmetricDifference returns a new set with the elements present in
// exactly one of s and other.
func (s *Set) SymmetricDifference(other *Set) *Set {
	out := &Set{m: make(map[any]struct{}, s.Len()+other.Len())}
	for item := range s.items() {
		if !other.Has(item) {
			out.m[item] = struct{}{}
		}
	}
	for item := range other.items() {
		if !s.Has(item) {
			out.m[item] = struct{}{}
		}
	}
	return out
}

// IsSupersetOf reports whether every element of other is also in s.
func (s *Set) IsSupersetOf(other *Set) bool {
	if other.Len() > s.Len() {
		return false
	}
	for item := range other.items() {
		if !s.Has(item) {
			return false
		}
	}
	return true
}
