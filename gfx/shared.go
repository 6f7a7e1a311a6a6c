package gfx

import "sync"

// Shared is a surface with more than one holder, such as an image several
// tilemaps draw their tiles from. Access is serialized by a mutex; the
// surface lives as long as any holder keeps the Shared.
type Shared[T any] struct {
	mu sync.Mutex
	v  *T
}

func NewShared[T any](v *T) *Shared[T] {
	return &Shared[T]{v: v}
}

// Lock acquires exclusive access. Call the returned func to release it.
func (s *Shared[T]) Lock() (*T, func()) {
	s.mu.Lock()
	return s.v, s.mu.Unlock
}

func (s *Shared[T]) With(fn func(*T)) {
	v, unlock := s.Lock()
	defer unlock()
	fn(v)
}

// Holds reports whether s wraps v. It doesn't lock: the wrapped pointer
// never changes.
func (s *Shared[T]) Holds(v *T) bool {
	return s.v == v
}
