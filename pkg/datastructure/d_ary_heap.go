package datastructure

import (
	"errors"
)

type PriorityQueueNode[T comparable] struct {
	rank    float64
	item    T
	itemPos int
}

func (p *PriorityQueueNode[T]) GetItem() T {
	return p.item
}

func (p *PriorityQueueNode[T]) GetRank() float64 {
	return p.rank
}

func (p *PriorityQueueNode[T]) SetRank(rank float64) {
	p.rank = rank
}

func (p *PriorityQueueNode[T]) SetPos(i int) {
	p.itemPos = i
}

func (p *PriorityQueueNode[T]) GetPos() int {
	return p.itemPos
}

func NewPriorityQueueNode[T comparable](rank float64, item T) *PriorityQueueNode[T] {
	return &PriorityQueueNode[T]{rank: rank, item: item}
}

// MinHeap d-ary heap priority queue
type MinHeap[T comparable] struct {
	heap []*PriorityQueueNode[T]
	d    int
}

func NewBinaryHeap[T comparable]() *MinHeap[T] {
	return NewdAryHeap[T](2)
}

func NewFourAryHeap[T comparable]() *MinHeap[T] {
	return NewdAryHeap[T](4)
}

func NewdAryHeap[T comparable](d int) *MinHeap[T] {
	return &MinHeap[T]{
		heap: make([]*PriorityQueueNode[T], 0),
		d:    d,
	}
}

func (h *MinHeap[T]) Preallocate(maxSearchSize int) {
	h.heap = make([]*PriorityQueueNode[T], 0, maxSearchSize)
}

func (h *MinHeap[T]) parent(index int) int {
	return (index - 1) / h.d
}

// heapifyUp restore the heap property upwards. O(logN) tree height.
func (h *MinHeap[T]) heapifyUp(index int) {
	for index != 0 && h.heap[index].rank < h.heap[h.parent(index)].rank {
		h.Swap(index, h.parent(index))
		index = h.parent(index)
	}
}

// heapifyDown restore the heap property downwards. O(d*logN).
func (h *MinHeap[T]) heapifyDown(index int) {
	for {
		smallest := index
		leftMostChild := index*h.d + 1

		for child := leftMostChild; child < leftMostChild+h.d && child < len(h.heap); child++ {
			if h.heap[child].rank < h.heap[smallest].rank {
				smallest = child
			}
		}

		if smallest == index {
			return
		}

		h.Swap(index, smallest)
		index = smallest
	}
}

func (h *MinHeap[T]) Swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.heap[i].SetPos(i)
	h.heap[j].SetPos(j)
}

func (h *MinHeap[T]) Insert(node *PriorityQueueNode[T]) {
	h.heap = append(h.heap, node)
	node.SetPos(len(h.heap) - 1)
	h.heapifyUp(len(h.heap) - 1)
}

func (h *MinHeap[T]) ExtractMin() (T, error) {
	var zero T
	if h.IsEmpty() {
		return zero, errors.New("heap is empty")
	}

	min := h.heap[0]
	h.Swap(0, len(h.heap)-1)
	h.heap = h.heap[:len(h.heap)-1]
	if len(h.heap) > 0 {
		h.heapifyDown(0)
	}
	return min.GetItem(), nil
}

// DecreaseKey lower the rank of a node already in the queue.
func (h *MinHeap[T]) DecreaseKey(node *PriorityQueueNode[T], newRank float64) {
	if newRank >= node.rank {
		return
	}
	node.SetRank(newRank)
	h.heapifyUp(node.GetPos())
}

func (h *MinHeap[T]) IsEmpty() bool {
	return len(h.heap) == 0
}

func (h *MinHeap[T]) Size() int {
	return len(h.heap)
}
