package pqueue

import "errors"

// Sentinel errors returned by Heap.
var (
	// ErrEmpty indicates Pop or Peek on an empty heap.
	ErrEmpty = errors.New("pqueue: heap is empty")

	// ErrDuplicateKey indicates Push of a key that is already queued.
	ErrDuplicateKey = errors.New("pqueue: duplicate key")

	// ErrKeyNotFound indicates Update or Remove of a key that is not queued.
	ErrKeyNotFound = errors.New("pqueue: key not found")
)

// Less reports whether a must be popped before b.
type Less[V any] func(a, b V) bool

// item is one heap slot.
type item[K comparable, V any] struct {
	key K
	val V
}
