// Package pqueue provides an indexed binary min-heap with decrease-key.
//
// Heap[K, V] stores one value per key and orders values with a comparator
// supplied at construction time. Because every key maps to its current slot,
// a value can be re-prioritised in place (Update) or removed (Remove) in
// O(log n), instead of pushing duplicates and skipping stale entries later.
//
// Complexity:
//
//   - Push, Pop, Update, Remove: O(log n)
//   - Peek, Get, Contains, Len:  O(1)
//   - Space: O(n)
//
// Errors (sentinel):
//
//   - ErrEmpty:        Pop or Peek on an empty heap.
//   - ErrDuplicateKey: Push of a key already present.
//   - ErrKeyNotFound:  Update or Remove of a key not present.
//
// A Heap is not safe for concurrent use; callers keep one per goroutine.
//
// Example:
//
//	h := pqueue.New[string, int](func(a, b int) bool { return a < b })
//	_ = h.Push("b", 5)
//	_ = h.Push("a", 7)
//	_ = h.Update("a", 1)
//	k, v, _ := h.Pop() // "a", 1
package pqueue
