package pathfinding

import (
	"errors"
)

// PriorityQueueNode is one open-set entry. Rank is the f-score. Tie is the
// heuristic estimate to the goal and breaks f-score ties in favor of nodes
// closer to the goal, which pins down the route among equally short paths.
type PriorityQueueNode[T comparable] struct {
	Rank int
	Tie  int
	Item T
}

// MinHeap binary heap priorityqueue. Keeps a position index per item so
// DecreaseKey runs in O(logN).
type MinHeap[T comparable] struct {
	heap []PriorityQueueNode[T]
	pos  map[T]int
}

func NewMinHeap[T comparable]() *MinHeap[T] {
	return &MinHeap[T]{
		heap: make([]PriorityQueueNode[T], 0),
		pos:  make(map[T]int),
	}
}

func less[T comparable](a, b PriorityQueueNode[T]) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return a.Tie < b.Tie
}

func (h *MinHeap[T]) parent(index int) int {
	return (index - 1) / 2
}

func (h *MinHeap[T]) leftChild(index int) int {
	return 2*index + 1
}

func (h *MinHeap[T]) rightChild(index int) int {
	return 2*index + 2
}

func (h *MinHeap[T]) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.pos[h.heap[i].Item] = i
	h.pos[h.heap[j].Item] = j
}

// heapifyUp restores the heap property upward from index. O(logN) tree height.
func (h *MinHeap[T]) heapifyUp(index int) {
	for index != 0 && less(h.heap[index], h.heap[h.parent(index)]) {
		h.swap(index, h.parent(index))
		index = h.parent(index)
	}
}

// heapifyDown restores the heap property downward from index. O(logN) tree height.
func (h *MinHeap[T]) heapifyDown(index int) {
	smallest := index
	left := h.leftChild(index)
	right := h.rightChild(index)

	if left < len(h.heap) && less(h.heap[left], h.heap[smallest]) {
		smallest = left
	}
	if right < len(h.heap) && less(h.heap[right], h.heap[smallest]) {
		smallest = right
	}
	if smallest != index {
		h.swap(index, smallest)
		h.heapifyDown(smallest)
	}
}

func (h *MinHeap[T]) isEmpty() bool {
	return len(h.heap) == 0
}

func (h *MinHeap[T]) Size() int {
	return len(h.heap)
}

// Contains reports whether item is currently queued.
func (h *MinHeap[T]) Contains(item T) bool {
	_, ok := h.pos[item]
	return ok
}

// GetMin returns the minimum node without removing it.
func (h *MinHeap[T]) GetMin() (PriorityQueueNode[T], error) {
	if h.isEmpty() {
		return PriorityQueueNode[T]{}, errors.New("heap is empty")
	}
	return h.heap[0], nil
}

// Insert pushes a new node. Each item may only be queued once; use
// DecreaseKey to reprioritize.
func (h *MinHeap[T]) Insert(key PriorityQueueNode[T]) {
	h.heap = append(h.heap, key)
	index := h.Size() - 1
	h.pos[key.Item] = index
	h.heapifyUp(index)
}

// ExtractMin removes and returns the minimum node. O(logN).
func (h *MinHeap[T]) ExtractMin() (PriorityQueueNode[T], error) {
	if h.isEmpty() {
		return PriorityQueueNode[T]{}, errors.New("heap is empty")
	}
	root := h.heap[0]
	last := h.Size() - 1
	h.heap[0] = h.heap[last]
	h.pos[h.heap[0].Item] = 0
	h.heap = h.heap[:last]
	delete(h.pos, root.Item)
	h.heapifyDown(0)
	return root, nil
}

// DecreaseKey lowers the priority of an already-queued item. O(logN).
func (h *MinHeap[T]) DecreaseKey(item PriorityQueueNode[T]) error {
	index, ok := h.pos[item.Item]
	if !ok || less(h.heap[index], item) {
		return errors.New("invalid item or new value")
	}
	h.heap[index] = item
	h.heapifyUp(index)
	return nil
}
