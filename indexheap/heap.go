package indexheap

import (
	"errors"
	"fmt"
)

// Sentinel errors for indexed-heap operations.
var (
	// ErrBadNodeCount indicates New was given a negative capacity.
	ErrBadNodeCount = errors.New("indexheap: node count must be non-negative")
	// ErrNodeOutOfRange indicates a node id outside [0, n).
	ErrNodeOutOfRange = errors.New("indexheap: node id out of range")
	// ErrDuplicateNode indicates Insert of a node already in the heap.
	ErrDuplicateNode = errors.New("indexheap: node already present")
	// ErrNodeAbsent indicates an operation on a node not in the heap.
	ErrNodeAbsent = errors.New("indexheap: node not present")
	// ErrWorsePriority indicates DecreaseKey with a priority above the current one.
	ErrWorsePriority = errors.New("indexheap: new priority is worse than current")
	// ErrHeapEmpty indicates PopMin on an empty heap.
	ErrHeapEmpty = errors.New("indexheap: heap is empty")
)

// absent marks a node with no heap slot in the position map.
const absent = -1

// Heap is an indexed binary min-heap over node ids [0, n).
//
// heap holds the node ids in heap order; pos maps a node id to its
// slot in heap (or absent); prio holds the current priority of every
// present node. The three arrays are mutated only together, keeping
// the pos↔slot bijection intact across every operation.
type Heap struct {
	heap []int   // node ids in heap order
	pos  []int   // pos[node] = slot in heap, or absent
	prio []int64 // prio[node] = current priority (valid while present)
}

// New creates an empty heap able to hold nodes [0, n).
// Complexity: O(n).
func New(n int) (*Heap, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadNodeCount, n)
	}
	pos := make([]int, n)
	for i := range pos {
		pos[i] = absent
	}

	return &Heap{
		heap: make([]int, 0, n),
		pos:  pos,
		prio: make([]int64, n),
	}, nil
}

// Len returns the number of nodes currently in the heap.
func (h *Heap) Len() int { return len(h.heap) }

// Contains reports whether node is currently in the heap.
// Complexity: O(1).
func (h *Heap) Contains(node int) bool {
	return node >= 0 && node < len(h.pos) && h.pos[node] != absent
}

// PriorityOf returns the current priority of node.
// Complexity: O(1).
func (h *Heap) PriorityOf(node int) (int64, error) {
	if err := h.check(node); err != nil {
		return 0, err
	}
	if h.pos[node] == absent {
		return 0, fmt.Errorf("%w: %d", ErrNodeAbsent, node)
	}

	return h.prio[node], nil
}

// Insert places node into the heap with the given priority.
// The node must not already be present.
// Complexity: O(log n).
func (h *Heap) Insert(node int, priority int64) error {
	if err := h.check(node); err != nil {
		return err
	}
	if h.pos[node] != absent {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, node)
	}
	h.prio[node] = priority
	h.heap = append(h.heap, node)
	h.pos[node] = len(h.heap) - 1
	h.up(len(h.heap) - 1)

	return nil
}

// DecreaseKey lowers the priority of a present node and sifts it up.
// Equal priority is accepted as a no-op improvement; a strictly worse
// priority is rejected with ErrWorsePriority, leaving the heap intact.
// Complexity: O(log n).
func (h *Heap) DecreaseKey(node int, priority int64) error {
	if err := h.check(node); err != nil {
		return err
	}
	i := h.pos[node]
	if i == absent {
		return fmt.Errorf("%w: %d", ErrNodeAbsent, node)
	}
	if priority > h.prio[node] {
		return fmt.Errorf("%w: node %d, %d > %d", ErrWorsePriority, node, priority, h.prio[node])
	}
	h.prio[node] = priority
	h.up(i)

	return nil
}

// Update inserts node with the given priority, or reprioritizes it in
// either direction if already present (sifting up on improvement, down
// on worsening).
// Complexity: O(log n).
func (h *Heap) Update(node int, priority int64) error {
	if err := h.check(node); err != nil {
		return err
	}
	i := h.pos[node]
	if i == absent {
		return h.Insert(node, priority)
	}
	old := h.prio[node]
	h.prio[node] = priority
	if priority < old {
		h.up(i)
	} else {
		h.down(i)
	}

	return nil
}

// PopMin removes and returns the node with the minimal priority.
// Complexity: O(log n).
func (h *Heap) PopMin() (node int, priority int64, err error) {
	if len(h.heap) == 0 {
		return 0, 0, ErrHeapEmpty
	}
	root := h.heap[0]
	priority = h.prio[root]
	h.pos[root] = absent

	last := h.heap[len(h.heap)-1]
	h.heap = h.heap[:len(h.heap)-1]
	if len(h.heap) > 0 && root != last {
		h.heap[0] = last
		h.pos[last] = 0
		h.down(0)
	}

	return root, priority, nil
}

// up restores heap order from slot i toward the root.
func (h *Heap) up(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.less(i, p) {
			break
		}
		h.swap(i, p)
		i = p
	}
}

// down restores heap order from slot i toward the leaves.
func (h *Heap) down(i int) {
	n := len(h.heap)
	for {
		l := 2*i + 1
		r := l + 1
		m := i
		if l < n && h.less(l, m) {
			m = l
		}
		if r < n && h.less(r, m) {
			m = r
		}
		if m == i {
			return
		}
		h.swap(i, m)
		i = m
	}
}

// less compares the priorities stored at heap slots i and j.
// Strict comparison: equal priorities never reorder.
func (h *Heap) less(i, j int) bool {
	return h.prio[h.heap[i]] < h.prio[h.heap[j]]
}

// swap exchanges heap slots i and j, updating pos for both nodes.
func (h *Heap) swap(i, j int) {
	a, b := h.heap[i], h.heap[j]
	h.heap[i], h.heap[j] = b, a
	h.pos[a] = j
	h.pos[b] = i
}

func (h *Heap) check(node int) error {
	if node < 0 || node >= len(h.pos) {
		return fmt.Errorf("%w: %d (n=%d)", ErrNodeOutOfRange, node, len(h.pos))
	}

	return nil
}
