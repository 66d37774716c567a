package tree

import (
	"container/heap"
	"sort"
)

// Heap is a binary heap ordered by less; the root is the least element.
type Heap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h *Heap[T]) Len() int {
	return len(h.items)
}

func (h *Heap[T]) Less(i, j int) bool {
	return h.less(h.items[i], h.items[j])
}

func (h *Heap[T]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *Heap[T]) Push(x interface{}) {
	h.items = append(h.items, x.(T))
}

func (h *Heap[T]) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero // avoid memory leak
	h.items = old[0 : n-1]
	return item
}

func (h *Heap[T]) Top() T {
	return h.items[0]
}

// ReplaceTop swaps the root for item and restores heap order.
func (h *Heap[T]) ReplaceTop(item T) {
	h.items[0] = item
	heap.Fix(h, 0)
}

func NewHeap[T any](initSize int, less func(a, b T) bool) *Heap[T] {
	h := &Heap[T]{
		items: make([]T, 0, initSize),
		less:  less,
	}
	heap.Init(h)
	return h
}

// TopK returns the k best items of candidates, best first. better must be a
// strict total order. candidates is reordered in place when it is fully
// sorted; otherwise it is left untouched.
func TopK[T any](candidates []T, k int, better func(a, b T) bool) []T {
	if k <= 0 {
		return []T{}
	}
	if len(candidates) <= k {
		sort.Slice(candidates, func(i, j int) bool {
			return better(candidates[i], candidates[j])
		})
		return candidates
	}

	// Root holds the worst of the k items retained so far.
	h := NewHeap(k, func(a, b T) bool { return better(b, a) })
	for _, c := range candidates {
		if h.Len() < k {
			heap.Push(h, c)
		} else if better(c, h.Top()) {
			h.ReplaceTop(c)
		}
	}

	result := make([]T, h.Len())
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = heap.Pop(h).(T)
	}
	return result
}
