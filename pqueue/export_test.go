package pqueue

// Valid reports whether the heap property and the key index are consistent.
func (h *Heap[K, V]) Valid() bool {
	s := h.s
	if len(s.index) != len(s.items) {
		return false
	}
	for i, it := range s.items {
		if s.index[it.key] != i {
			return false
		}
		for _, c := range []int{2*i + 1, 2*i + 2} {
			if c < len(s.items) && s.less(s.items[c].val, it.val) {
				return false
			}
		}
	}

	return true
}
