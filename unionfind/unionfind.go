package unionfind

import (
	"errors"
	"fmt"
)

// Sentinel errors for disjoint-set operations.
var (
	// ErrBadNodeCount indicates New was given a negative node count.
	ErrBadNodeCount = errors.New("unionfind: node count must be non-negative")
	// ErrNodeOutOfRange indicates a node id outside [0, n).
	ErrNodeOutOfRange = errors.New("unionfind: node id out of range")
)

// DisjointSet tracks a partition of [0, n) into disjoint sets,
// supporting union by size and path compression.
type DisjointSet struct {
	parent []int // parent[x] = parent of x; roots point to themselves
	size   []int // size[r] = set size, valid only while r is a root
	count  int   // number of live sets
}

// New creates n singleton sets over nodes [0, n).
// Complexity: O(n).
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadNodeCount, n)
	}
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}

	return &DisjointSet{parent: parent, size: size, count: n}, nil
}

// Len returns the node count n.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the current number of disjoint sets.
func (d *DisjointSet) Count() int { return d.count }

// Find returns the canonical representative of x's set, compressing
// the walked path as a side effect.
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Find(x int) (int, error) {
	if err := d.check(x); err != nil {
		return 0, err
	}

	return d.find(x), nil
}

// find walks up to the root, halving the path as it goes:
// every visited node is repointed to its grandparent.
func (d *DisjointSet) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets containing x and y, attaching the smaller
// set's root under the larger one. Returns whether a merge occurred
// (false when x and y were already connected).
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Union(x, y int) (bool, error) {
	if err := d.check(x); err != nil {
		return false, err
	}
	if err := d.check(y); err != nil {
		return false, err
	}
	rx, ry := d.find(x), d.find(y)
	if rx == ry {
		return false, nil
	}
	// attach the smaller tree under the larger root
	if d.size[rx] < d.size[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	d.size[rx] += d.size[ry]
	d.count--

	return true, nil
}

// Connected reports whether x and y are in the same set.
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Connected(x, y int) (bool, error) {
	if err := d.check(x); err != nil {
		return false, err
	}
	if err := d.check(y); err != nil {
		return false, err
	}

	return d.find(x) == d.find(y), nil
}

// SizeOf returns the size of the set containing x.
// Complexity: amortized O(α(n)).
func (d *DisjointSet) SizeOf(x int) (int, error) {
	if err := d.check(x); err != nil {
		return 0, err
	}

	return d.size[d.find(x)], nil
}

func (d *DisjointSet) check(x int) error {
	if x < 0 || x >= len(d.parent) {
		return fmt.Errorf("%w: %d (n=%d)", ErrNodeOutOfRange, x, len(d.parent))
	}

	return nil
}
