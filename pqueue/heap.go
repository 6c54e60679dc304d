package pqueue

import (
	"container/heap"
	"fmt"
)

// Heap is an indexed binary min-heap. The zero value is not usable; call New.
type Heap[K comparable, V any] struct {
	s *store[K, V]
}

// New returns an empty heap ordered by less.
func New[K comparable, V any](less Less[V]) *Heap[K, V] {
	return &Heap[K, V]{s: &store[K, V]{less: less, index: make(map[K]int)}}
}

// Len returns the number of queued values.
func (h *Heap[K, V]) Len() int { return len(h.s.items) }

// Contains reports whether key is queued.
func (h *Heap[K, V]) Contains(key K) bool {
	_, ok := h.s.index[key]

	return ok
}

// Get returns the value queued under key.
func (h *Heap[K, V]) Get(key K) (V, bool) {
	i, ok := h.s.index[key]
	if !ok {
		var zero V
		return zero, false
	}

	return h.s.items[i].val, true
}

// Push queues val under key.
func (h *Heap[K, V]) Push(key K, val V) error {
	if _, dup := h.s.index[key]; dup {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	heap.Push(h.s, item[K, V]{key: key, val: val})

	return nil
}

// Peek returns the minimum without removing it.
func (h *Heap[K, V]) Peek() (K, V, error) {
	if len(h.s.items) == 0 {
		var (
			k K
			v V
		)
		return k, v, ErrEmpty
	}
	top := h.s.items[0]

	return top.key, top.val, nil
}

// Pop removes and returns the minimum.
func (h *Heap[K, V]) Pop() (K, V, error) {
	if len(h.s.items) == 0 {
		var (
			k K
			v V
		)
		return k, v, ErrEmpty
	}
	top := heap.Pop(h.s).(item[K, V])

	return top.key, top.val, nil
}

// Update replaces the value under key and restores heap order, moving the
// slot up or down as needed.
func (h *Heap[K, V]) Update(key K, val V) error {
	i, ok := h.s.index[key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	h.s.items[i].val = val
	heap.Fix(h.s, i)

	return nil
}

// Remove deletes key and returns its value.
func (h *Heap[K, V]) Remove(key K) (V, error) {
	i, ok := h.s.index[key]
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	it := heap.Remove(h.s, i).(item[K, V])

	return it.val, nil
}

// store implements heap.Interface and keeps index in sync with every move.
type store[K comparable, V any] struct {
	items []item[K, V]
	index map[K]int // key → slot in items
	less  Less[V]
}

func (s *store[K, V]) Len() int { return len(s.items) }

func (s *store[K, V]) Less(i, j int) bool { return s.less(s.items[i].val, s.items[j].val) }

func (s *store[K, V]) Swap(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
	s.index[s.items[i].key] = i
	s.index[s.items[j].key] = j
}

// Push is called by heap.Push; x must be an item[K, V].
func (s *store[K, V]) Push(x any) {
	it := x.(item[K, V])
	s.index[it.key] = len(s.items)
	s.items = append(s.items, it)
}

// Pop is called by heap.Pop and heap.Remove after the target was swapped last.
func (s *store[K, V]) Pop() any {
	n := len(s.items)
	it := s.items[n-1]
	var zero item[K, V]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	delete(s.index, it.key)

	return it
}
