package set

// Set is an unordered collection of unique elements.
type Set[T comparable] struct {
	items map[T]struct{}
}

// New creates and returns a new empty Set.
func New[T comparable]() *Set[T] {
	return &Set[T]{
		items: make(map[T]struct{}),
	}
}

// FromSlice creates a new Set from the provided items.
// Duplicates are only represented once.
func FromSlice[T comparable](items []T) *Set[T] {
	set := New[T]()
	for _, item := range items {
		set.Add(item)
	}
	return set
}

// Add adds an item to the Set.
func (s *Set[T]) Add(item T) {
	s.items[item] = struct{}{}
}

// Remove removes an item from the Set. Missing items are ignored.
func (s *Set[T]) Remove(item T) {
	delete(s.items, item)
}

// Contains reports whether the item exists in the Set.
// A nil Set contains nothing.
func (s *Set[T]) Contains(item T) bool {
	if s == nil {
		return false
	}
	_, exists := s.items[item]
	return exists
}

// Size returns the number of items in the Set.
func (s *Set[T]) Size() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// IsEmpty reports whether the Set holds no items.
func (s *Set[T]) IsEmpty() bool {
	return s.Size() == 0
}

// ToSlice returns all the items in the Set as a slice.
// The order of items in the returned slice is not guaranteed.
func (s *Set[T]) ToSlice() []T {
	if s == nil {
		return []T{}
	}
	result := make([]T, 0, len(s.items))
	for item := range s.items {
		result = append(result, item)
	}
	return result
}

// Clone returns a copy of the Set.
func (s *Set[T]) Clone() *Set[T] {
	result := New[T]()
	if s == nil {
		return result
	}
	for item := range s.items {
		result.Add(item)
	}
	return result
}

// Union returns a new Set containing all elements from both Sets.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	result := s.Clone()
	if other == nil {
		return result
	}
	for item := range other.items {
		result.Add(item)
	}
	return result
}

// Intersection returns a new Set containing only elements that exist in both Sets.
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	result := New[T]()
	if s == nil {
		return result
	}
	for item := range s.items {
		if other.Contains(item) {
			result.Add(item)
		}
	}
	return result
}

// Difference returns a new Set with the elements of s that are not in other.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	result := New[T]()
	if s == nil {
		return result
	}
	for item := range s.items {
		if !other.Contains(item) {
			result.Add(item)
		}
	}
	return result
}

// Equal reports whether both Sets hold exactly the same elements.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.Size() != other.Size() {
		return false
	}
	if s == nil {
		return true
	}
	for item := range s.items {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}
