package aoc

import (
	"container/heap"
	"fmt"
)

// PQI is an item in a PQ.
type PQI[T any] struct {
	V T
	P int

	ix  int    // position in the heap, -1 once popped
	seq uint64 // push order, breaks priority ties
}

func (i *PQI[T]) String() string {
	return fmt.Sprintf("%v:%v", i.V, i.P)
}

// Index returns the position of i in its queue, or -1 if it is not queued.
func (i *PQI[T]) Index() int {
	return i.ix
}

// MinQueue returns a queue that pops the lowest priority first.
func MinQueue[T any]() *PQ[T] {
	return &PQ[T]{h: itemHeap[T]{higher: func(a, b int) bool { return a < b }}}
}

// MaxQueue returns a queue that pops the highest priority first.
func MaxQueue[T any]() *PQ[T] {
	return &PQ[T]{h: itemHeap[T]{higher: func(a, b int) bool { return a > b }}}
}

// PQ is a priority queue. Items with equal priority pop in the order they
// were pushed.
type PQ[T any] struct {
	h    itemHeap[T]
	next uint64
}

func (q *PQ[T]) Push(it *PQI[T]) {
	q.next++
	it.seq = q.next
	heap.Push(&q.h, it)
}

// PushValue pushes v with priority p.
func (q *PQ[T]) PushValue(v T, p int) {
	q.Push(&PQI[T]{V: v, P: p})
}

func (q *PQ[T]) Pop() *PQI[T] {
	return heap.Pop(&q.h).(*PQI[T])
}

// Update restores the heap order after it.P was changed in place.
func (q *PQ[T]) Update(it *PQI[T]) {
	heap.Fix(&q.h, it.ix)
}

// Peek returns the next item without removing it, or nil.
func (q *PQ[T]) Peek() *PQI[T] {
	if len(q.h.items) == 0 {
		return nil
	}
	return q.h.items[0]
}

func (q *PQ[T]) Len() int {
	return len(q.h.items)
}

// itemHeap implements heap.Interface.
type itemHeap[T any] struct {
	items  []*PQI[T]
	higher func(a, b int) bool
}

func (h itemHeap[T]) Len() int { return len(h.items) }

func (h itemHeap[T]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.P == b.P {
		return a.seq < b.seq
	}
	return h.higher(a.P, b.P)
}

func (h itemHeap[T]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].ix, h.items[j].ix = i, j
}

func (h *itemHeap[T]) Push(x any) {
	it := x.(*PQI[T])
	it.ix = len(h.items)
	h.items = append(h.items, it)
}

func (h *itemHeap[T]) Pop() any {
	last := len(h.items) - 1
	it := h.items[last]
	h.items[last] = nil
	h.items = h.items[:last]
	it.ix = -1
	return it
}

// Queue is a FIFO queue.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns a queue holding a copy of in.
func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{items: append([]T(nil), in...)}
}

func (q *Queue[T]) Len() int {
	return len(q.items) - q.head
}

func (q *Queue[T]) Push(v T) {
	q.items = append(q.items, v)
}

// Pop removes the oldest item. ok is false if the queue is empty.
func (q *Queue[T]) Pop() (v T, ok bool) {
	if q.head == len(q.items) {
		return v, false
	}
	v = q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	if q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
	}
	return v, true
}

// While pops items and calls f on each until the queue is empty or f
// returns false. f may push more items.
func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok || !f(v) {
			return
		}
	}
}
